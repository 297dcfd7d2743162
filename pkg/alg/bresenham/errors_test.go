package bresenham_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/stretch/pkg/alg/bresenham"
	"github.com/Sumatoshi-tech/stretch/pkg/safeconv"
)

func TestCheckSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		wantErr        bool
	}{
		{name: "small", x1: 330, y1: 8, x2: 206, y2: 33},
		{name: "zero", x1: 0, y1: 0, x2: 0, y2: 0},
		{name: "largest_doubled_x", x1: 0, y1: 0, x2: safeconv.MaxInt / 2, y2: 0},
		{name: "x_delta_too_large_to_double", x1: 0, y1: 0, x2: safeconv.MaxInt/2 + 1, y2: 0, wantErr: true},
		{name: "y_delta_too_large_to_double", x1: 0, y1: 0, x2: 1, y2: safeconv.MaxInt/2 + 1, wantErr: true},
		{name: "x_delta_wraps", x1: safeconv.MinInt, y1: 0, x2: safeconv.MaxInt, y2: 0, wantErr: true},
		{name: "y_delta_wraps", x1: 0, y1: safeconv.MaxInt, x2: 1, y2: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := bresenham.CheckSpan(tt.x1, tt.y1, tt.x2, tt.y2)
			if !tt.wantErr {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, bresenham.ErrOverflow)
			assert.NotErrorIs(t, err, bresenham.ErrInvalidArgument)
		})
	}
}
