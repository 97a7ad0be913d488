package xcontainer

import "iter"

// DefaultRingCap is the capacity of a Ring created by NewRing, and
// the capacity a zero-value Ring allocates on first use.
const DefaultRingCap = 32

// A Ring is a FIFO queue backed by a circular buffer that doubles in
// capacity when it fills. One slot of the buffer is kept free as a
// sentinel so that a full buffer can be told apart from an empty one
// using only the two indices, which means a Ring with capacity c
// holds up to c-1 elements before it grows.
//
// The zero value of a Ring is an empty queue that allocates at
// DefaultRingCap on the first enqueue.
type Ring[T any] struct {
	buf  []T
	head int
	tail int
}

// NewRing returns an empty Ring with the default capacity.
func NewRing[T any]() *Ring[T] {
	return NewRingCap[T](DefaultRingCap)
}

// NewRingCap returns an empty Ring with capacity c. This is mostly
// useful if the queue is known in advance to get large, or to stay
// very small.
//
// NewRingCap panics if c is less than 2: the sentinel consumes one
// slot, so a smaller buffer could never hold an element.
func NewRingCap[T any](c int) *Ring[T] {
	if c < 2 {
		panic("xcontainer: ring capacity must be at least 2")
	}
	return &Ring[T]{buf: make([]T, c)}
}

// Enqueue adds v at the tail of the queue. If only the sentinel slot
// is left, the buffer is grown first, so an enqueue never fails.
func (r *Ring[T]) Enqueue(v T) {
	if !r.hasSpace() {
		r.grow()
	}
	r.buf[r.tail] = v
	r.tail = (r.tail + 1) % len(r.buf)
}

// Dequeue removes and returns the value at the head of the queue. It
// returns false if the queue is empty.
func (r *Ring[T]) Dequeue() (v T, ok bool) {
	if r.Empty() {
		return v, false
	}

	v = r.buf[r.head]
	var zero T
	// Clear the slot so the buffer does not keep the element alive.
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)

	return v, true
}

// Empty reports whether the queue has no elements.
func (r *Ring[T]) Empty() bool {
	return r.head == r.tail
}

// Len returns the number of elements in the queue. It is exact even
// while the contents wrap around the end of the buffer.
func (r *Ring[T]) Len() int {
	if r.head > r.tail {
		return len(r.buf) - r.head + r.tail
	}
	return r.tail - r.head
}

// Cap returns the current capacity of the buffer, including the
// sentinel slot.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Drain returns a one-shot iterator that dequeues each element as it
// is yielded. Running the iterator to exhaustion leaves the queue
// empty. Stopping early leaves the remaining elements in place.
func (r *Ring[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := r.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (r *Ring[T]) hasSpace() bool {
	return len(r.buf) != 0 && r.head != (r.tail+1)%len(r.buf)
}

// grow replaces the buffer with one of twice the capacity, copying
// the contents so that the head of the queue lands at index 0. The
// contents may occupy either one contiguous run or two runs split
// across the end of the old buffer.
func (r *Ring[T]) grow() {
	if r.buf == nil {
		r.buf = make([]T, DefaultRingCap)
		return
	}

	buf := make([]T, 2*len(r.buf))
	var n int
	if r.head <= r.tail {
		n = copy(buf, r.buf[r.head:r.tail])
	} else {
		n = copy(buf, r.buf[r.head:])
		n += copy(buf[n:], r.buf[:r.tail])
	}

	r.buf = buf
	r.head = 0
	r.tail = n
}
