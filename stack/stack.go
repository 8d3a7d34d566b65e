package stack

import (
	"github.com/npillmayer/lists/maybe"
)

// Stack is a LIFO stack of elements of type T. The backing chain is
// exclusively owned: every node has exactly one predecessor (the stack header
// or another node), and no two chain cells ever alias.
//
// The zero value is an empty stack ready for use.
type Stack[T any] struct {
	head   *node[T]
	length int
}

type node[T any] struct {
	elem T
	next *node[T]
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Len returns the number of elements currently on the stack.
func (st *Stack[T]) Len() int {
	return st.length
}

// Push puts elem on top of the stack. The new node takes over the current
// chain as its successor.
func (st *Stack[T]) Push(elem T) {
	st.head = &node[T]{elem: elem, next: st.head}
	st.length++
	tracer().Debugf("pushed %v, stack length now %d", elem, st.length)
}

// Pop removes the top element and transfers it to the caller, or returns
// Nothing if the stack is empty. No reference to a popped element remains
// inside the stack.
func (st *Stack[T]) Pop() maybe.Maybe[T] {
	if st.head == nil {
		return maybe.Nothing[T]()
	}
	n := st.head
	st.head = n.next
	n.next = nil // n is detached from the chain
	st.length--
	return maybe.Just(n.elem)
}

// Peek returns the top element without removing it, or Nothing if the stack
// is empty.
func (st *Stack[T]) Peek() maybe.Maybe[T] {
	if st.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(st.head.elem)
}

// PeekMut returns a writable view of the top element without removing it, or
// Nothing if the stack is empty. Writes through the returned pointer are
// visible to subsequent Peek and Pop calls. The pointer must not be used once
// the element has been popped.
func (st *Stack[T]) PeekMut() maybe.Maybe[*T] {
	if st.head == nil {
		return maybe.Nothing[*T]()
	}
	return maybe.Just(&st.head.elem)
}

// Release empties the stack, unlinking the chain node by node. Teardown walks
// a cursor along the chain in a loop rather than descending into next-links,
// keeping call depth constant regardless of chain length. A released stack is
// empty and may be reused; releasing it again is a no-op.
func (st *Stack[T]) Release() {
	cur := st.head
	st.head = nil
	st.length = 0
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}
	tracer().Debugf("stack released")
}
