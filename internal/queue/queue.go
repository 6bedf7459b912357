// Package queue provides growable FIFO queues.
//
// The main implementation is Queue, a single-owner FIFO backed by one
// contiguous buffer that grows by the golden ratio φ and compacts in place
// when enough slots at the front have been vacated:
//   - Queue: golden-ratio growth with in-place compaction
//
// Two baselines implement the same FIFO interface for comparison:
//   - ChannelQueue: Standard library approach using a buffered channel
//   - RingQueue: Power-of-two ring that doubles when full
//
// # Ownership (IMPORTANT)
//
// Queue is NOT safe for concurrent use. Exactly one goroutine may call its
// methods at a time. Concurrent Push or Pop calls are detected by a runtime
// guard and panic.
//
// A destroyed Queue is poisoned: Push, Pop and Destroy return ErrDestroyed,
// Len and Cap panic.
package queue

import "errors"

var (
	// ErrEmpty is returned by Pop on a queue holding no elements.
	ErrEmpty = errors.New("queue: empty")
	// ErrOutOfMemory is returned when a buffer cannot be allocated.
	ErrOutOfMemory = errors.New("queue: out of memory")
	// ErrDestroyed is returned by operations on a destroyed Queue.
	ErrDestroyed = errors.New("queue: use after destroy")
	// ErrFull is returned by bounded baselines when no slot is free.
	ErrFull = errors.New("queue: full")
	// ErrInvalidOption is returned by New for out-of-range options.
	ErrInvalidOption = errors.New("queue: invalid option")
)

// FIFO is a first-in first-out queue.
type FIFO[T any] interface {
	// Push adds an item to the tail of the queue.
	Push(T) error

	// Pop removes and returns the item at the head of the queue.
	// Returns ErrEmpty if the queue is empty.
	Pop() (T, error)

	// Len returns the number of items in the queue.
	Len() int
}
