/*
Package lists provides a small family of singly-linked list types, each built
around a different ownership discipline for its node storage:

▪︎ Package stack implements a mutable LIFO stack which owns its chain of nodes
exclusively, together with three cursor types over it (consuming, mutable,
read-only).

▪︎ Package persistent/list implements an immutable list which shares node
storage between list values derived from one another, with explicit counted
ownership of every node.

Operations that may come up empty return maybe.Maybe values rather than
booleans or sentinel zero values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lists

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}
