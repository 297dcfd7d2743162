// Package safeconv provides overflow-checked integer arithmetic.
package safeconv

// MaxInt is the maximum value for int type (platform-dependent).
const MaxInt = int(^uint(0) >> 1)

// MinInt is the minimum value for int type (platform-dependent).
const MinInt = -MaxInt - 1

// Sub returns a-b and reports whether the result fits an int.
func Sub(a, b int) (int, bool) {
	diff := a - b

	if (a >= 0) != (b >= 0) && (diff >= 0) != (a >= 0) {
		return 0, false
	}

	return diff, true
}

// Add returns a+b and reports whether the result fits an int.
func Add(a, b int) (int, bool) {
	sum := a + b

	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		return 0, false
	}

	return sum, true
}

// Abs returns |v| and reports whether it fits an int. Only MinInt fails.
func Abs(v int) (int, bool) {
	if v == MinInt {
		return 0, false
	}

	if v < 0 {
		return -v, true
	}

	return v, true
}

// Double returns 2*v and reports whether the result fits an int.
func Double(v int) (int, bool) {
	if v > MaxInt/2 || v < MinInt/2 {
		return 0, false
	}

	return v + v, true
}
