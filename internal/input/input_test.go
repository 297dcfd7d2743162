package input_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/stretch/internal/input"
)

func TestReadSeries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    []float64
		wantErr error
	}{
		{name: "integers", in: "[1, 2, 3]", want: []float64{1, 2, 3}},
		{name: "mixed", in: "[0.5, -2, 1e3]", want: []float64{0.5, -2, 1000}},
		{name: "single", in: "[42]", want: []float64{42}},
		{name: "empty_array", in: "[]", wantErr: input.ErrInvalidSeries},
		{name: "object", in: `{"a": 1}`, wantErr: input.ErrInvalidSeries},
		{name: "string_item", in: `[1, "two"]`, wantErr: input.ErrInvalidSeries},
		{name: "malformed", in: "[1, 2", wantErr: input.ErrInvalidSeries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := input.ReadSeries(strings.NewReader(tt.in))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "series.json")
	require.NoError(t, os.WriteFile(path, []byte("[3, 1, 4, 1, 5]"), 0o600))

	got, err := input.ReadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 4, 1, 5}, got)
}

func TestReadFile_Stdin(t *testing.T) {
	t.Parallel()

	got, err := input.ReadFile(input.StdinPath, strings.NewReader("[9, 8]"))
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 8}, got)
}

func TestReadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := input.ReadFile(filepath.Join(t.TempDir(), "missing.json"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		want    []float64
		wantErr bool
	}{
		{name: "ascending", expr: "0..4", want: []float64{0, 1, 2, 3, 4}},
		{name: "descending", expr: "3..1", want: []float64{3, 2, 1}},
		{name: "single", expr: "7..7", want: []float64{7}},
		{name: "negative", expr: "-2..1", want: []float64{-2, -1, 0, 1}},
		{name: "spaces", expr: " 1 .. 2 ", want: []float64{1, 2}},
		{name: "no_separator", expr: "10", wantErr: true},
		{name: "bad_number", expr: "a..3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := input.ParseRange(tt.expr)
			if tt.wantErr {
				require.ErrorIs(t, err, input.ErrInvalidRange)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRange_Large(t *testing.T) {
	t.Parallel()

	got, err := input.ParseRange("0..275")
	require.NoError(t, err)
	require.Len(t, got, 276)
	assert.InDelta(t, 275.0, got[275], 0)
}
