package bresenham

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/stretch/pkg/mathutil"
)

func TestStretch_KnownSequences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		expected       []int
	}{
		{name: "steep_partition_walk", x1: 0, y1: 0, x2: 3, y2: 55, expected: []int{0, 18, 37, 55}},
		{name: "steep", x1: 0, y1: 0, x2: 4, y2: 10, expected: []int{0, 3, 5, 8, 10}},
		{name: "shallow", x1: 0, y1: 0, x2: 10, y2: 4, expected: []int{0, 0, 1, 1, 2, 2, 2, 3, 3, 4, 4}},
		{name: "identity", x1: 0, y1: 0, x2: 4, y2: 4, expected: []int{0, 1, 2, 3, 4}},
		{name: "flat", x1: -2, y1: 4, x2: 1, y2: 4, expected: []int{4, 4, 4, 4}},
		{name: "descending_y", x1: 0, y1: 10, x2: 6, y2: 0, expected: []int{10, 8, 7, 5, 3, 2, 0}},
		{name: "both_reversed", x1: 5, y1: -3, x2: 0, y2: -9, expected: []int{-3, -4, -5, -7, -8, -9}},
		{name: "degenerate", x1: 7, y1: 2, x2: 7, y2: 2, expected: []int{2}},
		{name: "degenerate_vertical", x1: 7, y1: 2, x2: 7, y2: 90, expected: []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Stretch(tt.x1, tt.y1, tt.x2, tt.y2)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStretch_ReversedXWalk(t *testing.T) {
	t.Parallel()

	// Draw a line between (330, 8) and (206, 33): y = line[330 - x].
	got := Stretch(330, 8, 206, 33)

	require.Len(t, got, 125)
	assert.Equal(t, 8, got[0])
	assert.Equal(t, 33, got[len(got)-1])
	assert.Equal(t, []int{8, 8, 8, 9, 9, 9, 9, 9, 10, 10, 10, 10}, got[:12])
	assert.Equal(t, 21, got[62])
	assert.True(t, slices.IsSorted(got))
}

func TestStretch_LengthAndEndpoints(t *testing.T) {
	t.Parallel()

	for x1 := -3; x1 <= 3; x1++ {
		for x2 := -6; x2 <= 6; x2++ {
			for y1 := -5; y1 <= 5; y1++ {
				for y2 := -20; y2 <= 20; y2++ {
					got := Stretch(x1, y1, x2, y2)

					require.Len(t, got, mathutil.Abs(x2-x1)+1)
					require.Equal(t, y1, got[0])

					if x1 != x2 {
						require.Equal(t, y2, got[len(got)-1], "(%d,%d)->(%d,%d)", x1, y1, x2, y2)
					}
				}
			}
		}
	}
}

func TestStretch_StepsBoundedByRatio(t *testing.T) {
	t.Parallel()

	for dx := 1; dx <= 20; dx++ {
		for dy := 0; dy <= 60; dy++ {
			got := Stretch(0, 0, dx, dy)
			maxJump := (dy + dx - 1) / dx

			for i := 1; i < len(got); i++ {
				jump := got[i] - got[i-1]
				require.GreaterOrEqual(t, jump, 0)
				require.LessOrEqual(t, jump, maxJump+1)
			}
		}
	}
}

func TestStretch_DirectionSymmetry(t *testing.T) {
	t.Parallel()

	t.Run("x_direction_does_not_matter", func(t *testing.T) {
		t.Parallel()

		for dx := 0; dx < 30; dx++ {
			for dy := 0; dy < 40; dy++ {
				require.Equal(t, Stretch(0, 0, dx, dy), Stretch(0, 0, -dx, dy))
			}
		}
	})

	t.Run("negated_y_negates_output", func(t *testing.T) {
		t.Parallel()

		for dx := 0; dx < 30; dx++ {
			for dy := 0; dy < 40; dy++ {
				up := Stretch(0, 0, dx, dy)
				down := Stretch(0, 0, dx, -dy)

				for i := range up {
					up[i] = -up[i]
				}

				require.Equal(t, up, down)
			}
		}
	})

	t.Run("translation_shifts_output", func(t *testing.T) {
		t.Parallel()

		for dx := 0; dx < 30; dx++ {
			for dy := -20; dy < 20; dy++ {
				base := Stretch(3, 0, 3+dx, dy)
				moved := Stretch(-2, 7, -2+dx, 7+dy)

				for i := range base {
					base[i] += 7
				}

				require.Equal(t, base, moved)
			}
		}
	})

	t.Run("reversed_endpoints_within_one", func(t *testing.T) {
		t.Parallel()

		for dx := 1; dx < 30; dx++ {
			for dy := 0; dy < 40; dy++ {
				forward := Stretch(0, 0, dx, dy)
				backward := Stretch(dx, dy, 0, 0)
				slices.Reverse(backward)

				require.Len(t, backward, len(forward))

				for i := range forward {
					require.LessOrEqual(t, mathutil.Abs(forward[i]-backward[i]), 1)
				}
			}
		}
	})
}

func TestStretchInto(t *testing.T) {
	t.Parallel()

	t.Run("reuses_capacity", func(t *testing.T) {
		t.Parallel()

		buf := make([]int, 0, 16)
		got := StretchInto(buf, 0, 0, 4, 10)

		assert.Equal(t, []int{0, 3, 5, 8, 10}, got)
		assert.Equal(t, 16, cap(got))
		assert.Same(t, &buf[:1][0], &got[0])
	})

	t.Run("grows_when_too_small", func(t *testing.T) {
		t.Parallel()

		buf := make([]int, 2)
		got := StretchInto(buf, 0, 0, 4, 10)

		assert.Equal(t, []int{0, 3, 5, 8, 10}, got)
		assert.Equal(t, []int{0, 0}, buf)
	})

	t.Run("shrinks_longer_buffer", func(t *testing.T) {
		t.Parallel()

		buf := []int{9, 9, 9, 9, 9, 9}
		got := StretchInto(buf, 2, 5, 2, 1)

		assert.Equal(t, []int{5}, got)
	})
}

func TestSteps(t *testing.T) {
	t.Parallel()

	t.Run("matches_stretch", func(t *testing.T) {
		t.Parallel()

		var xs, ys []int

		for x, y := range Steps(330, 8, 206, 33) {
			xs = append(xs, x)
			ys = append(ys, y)
		}

		assert.Equal(t, Stretch(330, 8, 206, 33), ys)
		require.Len(t, xs, 125)
		assert.Equal(t, 330, xs[0])
		assert.Equal(t, 206, xs[len(xs)-1])
		assert.Equal(t, 329, xs[1])
	})

	t.Run("degenerate_yields_once", func(t *testing.T) {
		t.Parallel()

		count := 0

		for x, y := range Steps(4, 1, 4, 9) {
			assert.Equal(t, 4, x)
			assert.Equal(t, 1, y)

			count++
		}

		assert.Equal(t, 1, count)
	})

	t.Run("early_stop", func(t *testing.T) {
		t.Parallel()

		var ys []int

		for _, y := range Steps(0, 0, 10, 4) {
			if len(ys) == 3 {
				break
			}

			ys = append(ys, y)
		}

		assert.Equal(t, []int{0, 0, 1}, ys)
	})
}
