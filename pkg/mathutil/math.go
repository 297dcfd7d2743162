// Package mathutil provides generic integer math helper functions.
package mathutil

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of v.
// The minimum value of T has no positive counterpart and is returned unchanged.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Sign returns +1 for non-negative v and -1 otherwise.
// Zero counts as positive so a zero-length walk still has a direction.
func Sign[T constraints.Signed](v T) T {
	if v < 0 {
		return -1
	}

	return 1
}
