// Package intmath provides overflow-aware integer arithmetic used when sizing
// queue buffers.
package intmath

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned if a return value would have overflowed its type.
var ErrOverflow = errors.New("overflow")

// Mul returns `a*b`, or [ErrOverflow] if the product does not fit in T.
func Mul[T constraints.Unsigned](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a {
		return 0, ErrOverflow
	}
	return c, nil
}

// ScaleFloor returns `floor(n*f)` for a non-negative n and a factor f >= 0.
// [ErrOverflow] is returned if the result does not fit in an int.
func ScaleFloor(n int, f float64) (int, error) {
	if n < 0 || f < 0 || math.IsNaN(f) {
		return 0, ErrOverflow
	}
	x := math.Floor(float64(n) * f)
	// float64(math.MaxInt) rounds up to 2^63, which is itself out of range.
	if x >= math.MaxInt {
		return 0, ErrOverflow
	}
	return int(x), nil
}
