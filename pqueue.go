package xcontainer

import (
	"cmp"
	"iter"
)

// A PriorityQueue yields its elements in ascending order regardless
// of the order they were inserted in. It is backed by a [List] that
// is kept sorted on insert. The zero value of a PriorityQueue is an
// empty queue ready to use.
type PriorityQueue[T cmp.Ordered] struct {
	list List[T]
}

// Insert adds v to the queue, keeping the backing list in
// non-decreasing order. A value equal to one already in the queue is
// placed after it, so equal values leave the queue in the order they
// were inserted.
func (q *PriorityQueue[T]) Insert(v T) {
	// The walk descends while v >= the current value and splices in
	// at the first position where that fails. The condition must
	// stay in this form: for a NaN v it is false at the head, which
	// places incomparable values up front instead of looping.
	if q.list.head == nil || !(v >= q.list.head.Val) {
		q.list.Push(v)
		return
	}

	prev := q.list.head
	for prev.next != nil && v >= prev.next.Val {
		prev = prev.next
	}
	if prev.next == nil {
		q.list.Append(v)
		return
	}

	prev.next = &listNode[T]{Val: v, next: prev.next}
	q.list.size++
}

// Pop removes and returns the smallest element in the queue. It
// returns false if the queue is empty.
func (q *PriorityQueue[T]) Pop() (T, bool) {
	return q.list.Pop()
}

// Peek returns the smallest element in the queue without removing
// it. It returns false if the queue is empty.
func (q *PriorityQueue[T]) Peek() (T, bool) {
	return q.list.Peek()
}

// Len returns the number of elements in the queue.
func (q *PriorityQueue[T]) Len() int {
	return q.list.Len()
}

// Empty reports whether the queue has no elements.
func (q *PriorityQueue[T]) Empty() bool {
	return q.list.Empty()
}

// Drain returns a one-shot iterator that pops elements from the
// queue in ascending order as they are yielded, the same way
// [List.Drain] does.
func (q *PriorityQueue[T]) Drain() iter.Seq[T] {
	return q.list.Drain()
}
