package list

import (
	"github.com/npillmayer/lists/maybe"
)

// List is an immutable singly-linked list. A List value holds one ownership
// share of its head node; all “modifying” operations produce a new List and
// leave the receiver untouched.
//
// The zero value is the empty list.
type List[T any] struct {
	head *node[T]
}

// New creates an empty list.
func New[T any]() List[T] {
	return List[T]{}
}

// Empty reports whether l has no elements.
func (l List[T]) Empty() bool {
	return l.head == nil
}

// Prepend returns a new list with elem in front of l's chain. The new head
// node takes one ownership share of l's chain; l itself remains a valid,
// independent owner.
func (l List[T]) Prepend(elem T) List[T] {
	n := &node[T]{elem: elem, next: l.head.share(), owners: 1}
	tracer().Debugf("prepended %v onto %s", elem, l)
	return List[T]{head: n}
}

// Tail returns a list of l's second element onward, sharing every node with
// l. The tail of an empty or one-element list is the empty list; taking the
// tail of an empty list any number of times stays empty.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return List[T]{}
	}
	return List[T]{head: l.head.next.share()}
}

// Head returns the first element, or Nothing for the empty list.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.elem)
}

// Len walks the chain and counts elements.
func (l List[T]) Len() int {
	length := 0
	for n := l.head; n != nil; n = n.next {
		length++
	}
	return length
}

// Map returns a fresh list carrying f applied to each of l's elements, in
// order. l is unchanged and shares no storage with the result.
func Map[T, S any](l List[T], f func(T) S) List[S] {
	var head, last *node[S]
	for n := l.head; n != nil; n = n.next {
		fresh := &node[S]{elem: f(n.elem), owners: 1}
		if last == nil {
			head = fresh
		} else {
			last.next = fresh
		}
		last = fresh
	}
	return List[S]{head: head}
}

// Release gives up l's ownership share of its chain, decrementing one owner
// count per node. The walk stops at the first node that still has owners
// left: that node is reachable from another list, and a surviving owner keeps
// the entire suffix behind it alive, so nothing past it may be touched. Nodes
// whose count reaches zero are severed and the walk continues to their
// successor.
//
// Like the exclusive stack's teardown, the walk is a loop, never recursion —
// chain length does not translate into call depth.
//
// Release empties l; releasing an empty (or already released) list is a
// no-op.
func (l *List[T]) Release() {
	n := l.head
	l.head = nil
	for n != nil {
		n.owners--
		assertThat(n.owners >= 0, "owner count of node ⟨%v⟩ dropped below zero", n.elem)
		if n.owners > 0 {
			tracer().Debugf("release stopped at shared node ⟨%v⟩, %d owners left", n.elem, n.owners)
			return
		}
		next := n.next
		n.next = nil
		n = next
	}
	tracer().Debugf("released whole chain")
}

// --- Iteration ---------------------------------------------------------------

// Iter is a read-only cursor over a shared chain, handing out copies of the
// elements front to back. Safe to use next to any number of other cursors,
// because persistent nodes are never mutated after creation. A cursor borrows
// the chain: it must not be advanced once every list sharing the chain has
// been released.
type Iter[T any] struct {
	next *node[T]
}

// Iter returns a cursor positioned at l's first element.
func (l List[T]) Iter() *Iter[T] {
	return &Iter[T]{next: l.head}
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
