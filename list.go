package xcontainer

import "iter"

// A List is a singly-linked list that also contains a reference to
// its last node for quick inserts at both the head and the tail. The
// zero value of a List is an empty list ready to use.
type List[T any] struct {
	head, tail *listNode[T]
	size       int
}

// CollectList builds a new List from the values of seq, appending
// them in the order the sequence produces them.
func CollectList[T any](seq iter.Seq[T]) *List[T] {
	ls := new(List[T])
	ls.AppendSeq(seq)
	return ls
}

// Append adds v as a new node at the tail of the list.
func (ls *List[T]) Append(v T) {
	n := ls.tail.insert()
	n.Val = v
	ls.tail = n

	if ls.head == nil {
		ls.head = n
	}
	ls.size++
}

// AppendSeq appends the values of seq at the tail of the list in the
// order the sequence produces them.
func (ls *List[T]) AppendSeq(seq iter.Seq[T]) {
	for v := range seq {
		ls.Append(v)
	}
}

// Push adds v as the new head of the list, shifting the existing
// chain down one position.
func (ls *List[T]) Push(v T) {
	ls.head = &listNode[T]{Val: v, next: ls.head}
	if ls.tail == nil {
		ls.tail = ls.head
	}
	ls.size++
}

// Pop detaches the head node from the list and returns its value,
// promoting the next node to head. It returns false if the list is
// empty.
func (ls *List[T]) Pop() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}

	n := ls.head
	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	}
	n.next = nil
	ls.size--

	return n.Val, true
}

// Peek returns the value of the head node without removing it. It
// returns false if the list is empty.
func (ls *List[T]) Peek() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}
	return ls.head.Val, true
}

// Insert splices v into the list so that it becomes the n-th element,
// counting from zero. If n is past the end of the list, v is appended
// at the tail instead.
func (ls *List[T]) Insert(v T, n int) {
	if n <= 0 || ls.head == nil {
		ls.Push(v)
		return
	}

	prev := ls.head
	for i := 1; i < n && prev.next != nil; i++ {
		prev = prev.next
	}
	if prev.next == nil {
		ls.Append(v)
		return
	}

	prev.next = &listNode[T]{Val: v, next: prev.next}
	ls.size++
}

// Len returns the number of elements in the list.
func (ls *List[T]) Len() int {
	return ls.size
}

// Empty reports whether the list has no elements.
func (ls *List[T]) Empty() bool {
	return ls.head == nil
}

// Drain returns a one-shot iterator that pops each element from the
// head of the list as it is yielded. Running the iterator to
// exhaustion leaves the list empty. Stopping early leaves the
// remaining elements in place, but elements already yielded are gone.
func (ls *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := ls.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// listNode is a node of a [List].
type listNode[T any] struct {
	Val  T
	next *listNode[T]
}

func (n *listNode[T]) insert() *listNode[T] {
	if n == nil {
		return new(listNode[T])
	}

	n.next = &listNode[T]{next: n.next}
	return n.next
}
