package queue

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/randomizedcoder/phiqueue/internal/intmath"
	"github.com/randomizedcoder/phiqueue/internal/logger"
)

// Queue is an unbounded FIFO backed by a single contiguous buffer.
//
// Live elements occupy buf[read:read+n]. When the tail reaches the end of the
// buffer, Push either grows the buffer by Phi or, if the queue has drained
// enough that growth is not justified, moves the live elements back to the
// start of the buffer.
//
// WARNING: Queue is NOT safe for concurrent use.
type Queue[T any] struct {
	buf      []T     // len(buf) == capacity; nil once destroyed
	read     int     // index of the head element
	n        int     // 0 <= n && read+n <= len(buf)
	elemSize uintptr // fixed at creation

	memoryLimit uint64
	log         logger.Logger
	stats       Stats

	guard ownerGuard
}

// Stats counts buffer management events over a Queue's lifetime.
type Stats struct {
	Grows       int
	Compactions int
}

var _ FIFO[int] = (*Queue[int])(nil)

// New creates an empty Queue with DefaultCapacity slots, unless overridden by
// WithInitialCapacity.
//
// Returns ErrOutOfMemory if the initial buffer cannot be allocated and
// ErrInvalidOption if an option is out of range.
func New[T any](opts ...Option) (*Queue[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt.apply(&cfg); err != nil {
			return nil, err
		}
	}

	var zero T
	q := &Queue[T]{
		elemSize:    unsafe.Sizeof(zero),
		memoryLimit: cfg.memoryLimit,
		log:         cfg.log,
	}

	buf, err := q.alloc(cfg.capacity)
	if err != nil {
		return nil, err
	}
	q.buf = buf
	return q, nil
}

// Push adds v to the tail of the queue.
//
// If growth is required and the new buffer cannot be allocated, Push returns
// ErrOutOfMemory and leaves the queue exactly as it was.
func (q *Queue[T]) Push(v T) error {
	q.guard.acquire("Push")
	defer q.guard.release()

	if q.buf == nil {
		return ErrDestroyed
	}

	if q.read+q.n >= len(q.buf) {
		if shouldGrow(q.n, len(q.buf)) {
			if err := q.grow(); err != nil {
				return err
			}
		} else {
			q.compact()
		}
	}

	q.buf[q.read+q.n] = v
	q.n++
	return nil
}

// Pop removes and returns the element at the head of the queue.
// Returns ErrEmpty if the queue is empty.
func (q *Queue[T]) Pop() (T, error) {
	q.guard.acquire("Pop")
	defer q.guard.release()

	var zero T
	if q.buf == nil {
		return zero, ErrDestroyed
	}
	if q.n == 0 {
		return zero, ErrEmpty
	}

	v := q.buf[q.read]
	// Drop the reference so the vacated slot doesn't keep v alive.
	q.buf[q.read] = zero
	q.read++
	q.n--
	return v, nil
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	if q.buf == nil {
		panic("queue: Len on destroyed Queue")
	}
	return q.n
}

// Cap returns the number of element slots currently allocated.
func (q *Queue[T]) Cap() int {
	if q.buf == nil {
		panic("queue: Cap on destroyed Queue")
	}
	return len(q.buf)
}

// Stats returns the growth and compaction counts so far.
func (q *Queue[T]) Stats() Stats {
	return q.stats
}

// Destroy releases the buffer. Any further use of the queue is an error, and
// calling Destroy again returns ErrDestroyed.
func (q *Queue[T]) Destroy() error {
	q.guard.acquire("Destroy")
	defer q.guard.release()

	if q.buf == nil {
		return ErrDestroyed
	}
	q.log.Debug("queue destroyed", "cap", len(q.buf), "len", q.n)
	q.buf = nil
	q.read, q.n = 0, 0
	return nil
}

// grow replaces the buffer with one Phi times larger. The read position is
// carried over unchanged, as are all slots before it.
func (q *Queue[T]) grow() error {
	capacity, err := nextCapacity(len(q.buf))
	if err != nil {
		q.log.Warn("queue growth overflow", "cap", len(q.buf), "err", err)
		return fmt.Errorf("%w: grow beyond %d elements: %w", ErrOutOfMemory, len(q.buf), err)
	}

	buf, err := q.alloc(capacity)
	if err != nil {
		return err
	}
	copy(buf, q.buf[:q.read+q.n])

	q.log.Debug("queue grown", "from", len(q.buf), "to", capacity, "len", q.n)
	q.buf = buf
	q.stats.Grows++
	return nil
}

// compact moves the live elements to the start of the buffer.
func (q *Queue[T]) compact() {
	copy(q.buf, q.buf[q.read:q.read+q.n])
	clear(q.buf[q.n : q.read+q.n])

	q.log.Debug("queue compacted", "reclaimed", q.read, "len", q.n, "cap", len(q.buf))
	q.read = 0
	q.stats.Compactions++
}

// alloc returns a buffer of n slots, or ErrOutOfMemory if the byte size
// overflows, exceeds the configured limit, or is rejected by the runtime.
func (q *Queue[T]) alloc(n int) (buf []T, err error) {
	size, err := intmath.Mul(uint64(n), uint64(q.elemSize))
	if err != nil {
		q.log.Warn("queue allocation overflow", "elements", n, "elemSize", q.elemSize)
		return nil, fmt.Errorf("%w: %d elements of %d bytes: %w", ErrOutOfMemory, n, q.elemSize, err)
	}
	if q.memoryLimit > 0 && size > q.memoryLimit {
		q.log.Warn("queue allocation over limit", "elements", n, "bytes", size, "limit", q.memoryLimit)
		return nil, fmt.Errorf("%w: %d bytes for %d elements exceeds limit of %d bytes", ErrOutOfMemory, size, n, q.memoryLimit)
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		// Only impossible lengths are recoverable; exhausting the heap is
		// fatal to the process.
		if rerr, ok := r.(runtime.Error); ok {
			q.log.Warn("queue allocation rejected", "elements", n, "err", rerr)
			buf, err = nil, fmt.Errorf("%w: %d elements: %w", ErrOutOfMemory, n, rerr)
			return
		}
		panic(r)
	}()
	return make([]T, n), nil
}
