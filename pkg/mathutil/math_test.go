package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		val      int
		expected int
	}{
		{name: "positive", val: 7, expected: 7},
		{name: "negative", val: -7, expected: 7},
		{name: "zero", val: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Abs(tt.val))
		})
	}
}

func TestAbsInt64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(124), Abs(int64(206-330)))
}

func TestSign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		val      int
		expected int
	}{
		{name: "positive", val: 3, expected: 1},
		{name: "negative", val: -3, expected: -1},
		{name: "zero_is_positive", val: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Sign(tt.val))
		})
	}
}
