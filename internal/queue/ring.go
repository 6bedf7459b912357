package queue

// RingQueue is an unbounded FIFO over a power-of-two ring buffer.
//
// When the ring is full its capacity is doubled and the live elements are
// unwrapped to the start of the new ring. Like Queue, it is NOT safe for
// concurrent use, but it carries no runtime guard.
type RingQueue[T any] struct {
	buf  []T
	mask int
	head int // index of the head element, always masked
	n    int
}

var _ FIFO[int] = (*RingQueue[int])(nil)

// NewRing creates a RingQueue with the specified initial size.
// Size will be rounded up to the next power of 2.
func NewRing[T any](size int) *RingQueue[T] {
	n := 1
	for n < size {
		n <<= 1
	}
	return &RingQueue[T]{
		buf:  make([]T, n),
		mask: n - 1,
	}
}

// Push adds an item to the tail of the queue, doubling the ring if full.
func (r *RingQueue[T]) Push(v T) error {
	if r.n == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.n)&r.mask] = v
	r.n++
	return nil
}

// Pop removes and returns the item at the head of the queue.
// Returns ErrEmpty if the queue is empty.
func (r *RingQueue[T]) Pop() (T, error) {
	var zero T
	if r.n == 0 {
		return zero, ErrEmpty
	}
	i := r.head & r.mask
	v := r.buf[i]
	r.buf[i] = zero
	r.head = (r.head + 1) & r.mask
	r.n--
	return v, nil
}

// Len returns the current number of items in the queue.
func (r *RingQueue[T]) Len() int {
	return r.n
}

// Cap returns the capacity of the ring.
func (r *RingQueue[T]) Cap() int {
	return len(r.buf)
}

func (r *RingQueue[T]) grow() {
	b := make([]T, 2*len(r.buf))
	k := copy(b, r.buf[r.head:])
	copy(b[k:], r.buf[:r.head])

	r.buf = b
	r.mask = len(b) - 1
	r.head = 0
}
