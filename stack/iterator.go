package stack

import (
	"github.com/npillmayer/lists/maybe"
)

// A collection type should come with three kinds of cursors: one handing out
// the elements themselves, one handing out mutable views, and one handing out
// read-only views. All three walk the chain front to back, are lazy, one-shot
// and cannot be restarted. A cursor's state is the next node to visit, if any.
//
// Go does not enforce borrow rules at compile time, so the single-writer/
// multiple-readers discipline is a documented precondition here: while an
// IterMut over a stack is live, no other cursor over the same stack may be
// live and the stack must not be touched through any other handle. Any number
// of Iters may coexist as long as nothing mutates the stack. IntoIter consumes
// the stack outright.

// IntoIter is a consuming cursor: advancing it pops the stack, transferring
// ownership of each element to the caller. When the cursor is exhausted, the
// stack is empty.
type IntoIter[T any] struct {
	st *Stack[T]
}

// IntoIter turns the stack into a consuming cursor. The stack must not be
// used through any other handle afterwards.
func (st *Stack[T]) IntoIter() *IntoIter[T] {
	return &IntoIter[T]{st: st}
}

// Next pops and returns the next element, or Nothing at the end of the chain.
func (it *IntoIter[T]) Next() maybe.Maybe[T] {
	return it.st.Pop()
}

// IterMut is a cursor handing out writable views of the elements. It borrows
// the stack exclusively for its lifetime (see the precondition above). The
// chain structure is never changed; only element slots may be written.
type IterMut[T any] struct {
	next *node[T]
}

// IterMut returns a mutable cursor positioned at the top of the stack.
func (st *Stack[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{next: st.head}
}

// Next returns a pointer to the next element slot, or Nothing at the end of
// the chain.
func (it *IterMut[T]) Next() maybe.Maybe[*T] {
	if it.next == nil {
		return maybe.Nothing[*T]()
	}
	n := it.next
	it.next = n.next
	return maybe.Just(&n.elem)
}

// Iter is a read-only cursor handing out copies of the elements.
type Iter[T any] struct {
	next *node[T]
}

// Iter returns a read-only cursor positioned at the top of the stack.
func (st *Stack[T]) Iter() *Iter[T] {
	return &Iter[T]{next: st.head}
}

// Next returns the next element, or Nothing at the end of the chain.
func (it *Iter[T]) Next() maybe.Maybe[T] {
	if it.next == nil {
		return maybe.Nothing[T]()
	}
	n := it.next
	it.next = n.next
	return maybe.Just(n.elem)
}
