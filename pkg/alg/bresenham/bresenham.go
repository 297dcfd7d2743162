// Package bresenham maps one integer index range onto another with the
// incremental error-accumulation walk of Bresenham's line algorithm.
//
// The walk is axis-driven: exactly one value is produced per unit step of the
// x distance, holding the y of the rasterized line at that step. It is not a
// symmetric line drawer. When |dy| > |dx| the y value jumps by more than one
// per step, so callers pass the index domain they want one output per element
// of as (x1, x2) and the value domain being mapped into it as (y1, y2).
//
// All arithmetic is integer-only. Coordinates whose doubled deltas overflow an
// int produce garbage; callers that cannot bound their input use [CheckSpan].
package bresenham

import (
	"iter"

	"github.com/Sumatoshi-tech/stretch/pkg/mathutil"
)

// Stretch returns, for each integer x from x1 to x2 inclusive, the y that the
// digital line from (x1, y1) to (x2, y2) passes through.
//
// The result has |x2-x1|+1 elements, starts with y1 and ends with y2.
// When x1 == x2 the result is [y1] regardless of y2.
func Stretch(x1, y1, x2, y2 int) []int {
	return StretchInto(nil, x1, y1, x2, y2)
}

// StretchInto is Stretch writing into dst.
// dst is reused when its capacity suffices, otherwise a new slice is allocated.
// The returned slice always has length |x2-x1|+1.
func StretchInto(dst []int, x1, y1, x2, y2 int) []int {
	dx := mathutil.Abs(x2 - x1)
	dy := y2 - y1
	sy := mathutil.Sign(dy)
	dy = mathutil.Abs(dy)

	dst = resize(dst, dx+1)
	dst[0] = y1

	if dx == 0 {
		return dst
	}

	dx2 := dx + dx
	dy2 := dy + dy
	e := dy2 - dx
	y := y1

	for i := 1; i <= dx; i++ {
		for e >= 0 {
			y += sy
			e -= dx2
		}

		e += dy2
		dst[i] = y
	}

	return dst
}

// Steps returns an iterator over the (x, y) pairs of the walk Stretch
// performs, with x moving one unit at a time from x1 toward x2.
func Steps(x1, y1, x2, y2 int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		dx := x2 - x1
		sx := mathutil.Sign(dx)
		dx = mathutil.Abs(dx)

		dy := y2 - y1
		sy := mathutil.Sign(dy)
		dy = mathutil.Abs(dy)

		x, y := x1, y1

		if !yield(x, y) || dx == 0 {
			return
		}

		dx2 := dx + dx
		dy2 := dy + dy
		e := dy2 - dx

		for range dx {
			for e >= 0 {
				y += sy
				e -= dx2
			}

			e += dy2
			x += sx

			if !yield(x, y) {
				return
			}
		}
	}
}

// resize returns a slice of length n, reusing dst's backing array if it can.
func resize(dst []int, n int) []int {
	if cap(dst) >= n {
		return dst[:n]
	}

	return make([]int, n)
}
