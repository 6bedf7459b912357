package queue

import "github.com/randomizedcoder/phiqueue/internal/intmath"

// Phi is the golden ratio, the factor by which a full Queue grows.
const Phi = 1.6180339887498948482

// DefaultCapacity is the number of slots allocated by New.
const DefaultCapacity = 10

// shouldGrow reports whether a queue with no free tail slot should grow
// rather than compact its live elements to the front of the buffer.
func shouldGrow(length, capacity int) bool {
	return float64(length)*Phi > float64(capacity)
}

// nextCapacity returns floor(capacity*Phi). Capacities small enough that the
// product truncates back to capacity grow by one slot instead.
func nextCapacity(capacity int) (int, error) {
	n, err := intmath.ScaleFloor(capacity, Phi)
	if err != nil {
		return 0, err
	}
	if n <= capacity {
		n = capacity + 1
	}
	return n, nil
}
