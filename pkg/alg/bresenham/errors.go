package bresenham

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/stretch/pkg/safeconv"
)

// Sentinel errors shared by the packages built on the walk.
var (
	// ErrInvalidArgument indicates a length, count or sequence outside the accepted domain.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOverflow indicates coordinate deltas too large for the error accumulator.
	ErrOverflow = errors.New("arithmetic overflow")
)

// CheckSpan reports ErrOverflow when the walk from (x1, y1) to (x2, y2) would
// overflow an int: the deltas, their doubled magnitudes and the output length
// must all be representable.
func CheckSpan(x1, y1, x2, y2 int) error {
	dx, err := span("x", x1, x2)
	if err != nil {
		return err
	}

	if _, ok := safeconv.Add(dx, 1); !ok {
		return fmt.Errorf("%w: output length for x span %d", ErrOverflow, dx)
	}

	_, err = span("y", y1, y2)

	return err
}

// span returns |b-a| after checking that 2*|b-a| fits an int.
func span(axis string, a, b int) (int, error) {
	delta, ok := safeconv.Sub(b, a)
	if !ok {
		return 0, fmt.Errorf("%w: %s delta %d-%d", ErrOverflow, axis, b, a)
	}

	delta, ok = safeconv.Abs(delta)
	if !ok {
		return 0, fmt.Errorf("%w: %s delta magnitude", ErrOverflow, axis)
	}

	if _, ok = safeconv.Double(delta); !ok {
		return 0, fmt.Errorf("%w: doubled %s delta %d", ErrOverflow, axis, delta)
	}

	return delta, nil
}
