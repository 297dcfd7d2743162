// Package partition splits the index range [0, n) into k contiguous ranges
// whose sizes differ by at most one, for handing to k independent workers.
//
// The split is the Bresenham walk from (0, 0) to (k, n): boundary t is the
// y value at step t. Ranges are disjoint and cover [0, n) exactly, so workers
// writing to their own range need no synchronization. When k > n some ranges
// are empty and workers are expected to skip them.
package partition

import (
	"fmt"

	"github.com/Sumatoshi-tech/stretch/pkg/alg/bresenham"
)

// Sentinel validation errors. Both match bresenham.ErrInvalidArgument.
var (
	ErrInvalidCount  = fmt.Errorf("%w: partition count must be positive", bresenham.ErrInvalidArgument)
	ErrNegativeTotal = fmt.Errorf("%w: element count must not be negative", bresenham.ErrInvalidArgument)
)

// Range is the half-open index range [Start, End) owned by one partition.
type Range struct {
	Start int // Inclusive index.
	End   int // Exclusive index.
}

// Len returns the number of indices in the range.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range holds no indices.
func (r Range) Empty() bool { return r.End <= r.Start }

// Last returns the index of the final element, End-1.
// The result is meaningless for an empty range.
func (r Range) Last() int { return r.End - 1 }

// Bounds returns k+1 non-decreasing boundaries splitting [0, n) into k ranges.
// The first boundary is 0 and the last is n; partition t owns
// [bounds[t], bounds[t+1]).
func Bounds(n, k int) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, k)
	}

	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTotal, n)
	}

	err := bresenham.CheckSpan(0, 0, k, n)
	if err != nil {
		return nil, fmt.Errorf("partition %d elements into %d: %w", n, k, err)
	}

	return bresenham.Stretch(0, 0, k, n), nil
}

// Ranges is Bounds expressed as k Range values, one per partition.
func Ranges(n, k int) ([]Range, error) {
	bounds, err := Bounds(n, k)
	if err != nil {
		return nil, err
	}

	return FromBounds(bounds), nil
}

// FromBounds converts a boundary list into the ranges between consecutive
// boundaries. Fewer than two boundaries yield no ranges.
func FromBounds(bounds []int) []Range {
	if len(bounds) < 2 {
		return nil
	}

	ranges := make([]Range, len(bounds)-1)

	for i := range ranges {
		ranges[i] = Range{Start: bounds[i], End: bounds[i+1]}
	}

	return ranges
}

// NonEmpty returns the ranges that hold at least one index, in order.
func NonEmpty(ranges []Range) []Range {
	result := make([]Range, 0, len(ranges))

	for _, r := range ranges {
		if r.Empty() {
			continue
		}

		result = append(result, r)
	}

	return result
}

// Sizes returns the size of each partition described by bounds.
func Sizes(bounds []int) []int {
	ranges := FromBounds(bounds)
	sizes := make([]int, len(ranges))

	for i, r := range ranges {
		sizes[i] = r.Len()
	}

	return sizes
}
