package xcontainer

// A Stack is a LIFO view of a [List]. It is a pure alias: a Stack is
// used by calling only Push and Pop, which interact exclusively with
// the head of the underlying list.
type Stack[T any] = List[T]
