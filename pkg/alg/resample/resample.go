// Package resample changes the length of a sequence by picking elements at
// indices laid out by a Bresenham walk. Shrinking skips elements, growing
// repeats them; the first and last source elements are always kept.
package resample

import (
	"fmt"

	"github.com/Sumatoshi-tech/stretch/pkg/alg/bresenham"
)

// Sentinel validation errors. Both match bresenham.ErrInvalidArgument.
var (
	ErrEmptyInput    = fmt.Errorf("%w: empty input sequence", bresenham.ErrInvalidArgument)
	ErrInvalidLength = fmt.Errorf("%w: target length must be positive", bresenham.ErrInvalidArgument)
)

// Indices returns the source index to copy into each of the n output slots
// when resampling a sequence of srcLen elements.
// The plan starts at 0 and, for n >= 2, ends at srcLen-1.
func Indices(srcLen, n int) ([]int, error) {
	if srcLen < 1 {
		return nil, fmt.Errorf("%w: length %d", ErrEmptyInput, srcLen)
	}

	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	return bresenham.Stretch(0, 0, n-1, srcLen-1), nil
}

// Resample returns a new sequence of n elements drawn from src.
// src is not modified. n may be smaller than, equal to or larger than len(src).
//
// A single-slot result holds src[0]; otherwise the result starts with src[0]
// and ends with src[len(src)-1].
func Resample[S ~[]E, E any](src S, n int) (S, error) {
	idx, err := Indices(len(src), n)
	if err != nil {
		return nil, err
	}

	out := make(S, len(idx))

	for i, j := range idx {
		out[i] = src[j]
	}

	return out, nil
}

// InPlace replaces *s with its resampled version of length n.
// On error *s is left untouched.
func InPlace[E any](s *[]E, n int) error {
	out, err := Resample(*s, n)
	if err != nil {
		return err
	}

	*s = out

	return nil
}
