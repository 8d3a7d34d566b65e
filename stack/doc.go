/*
Package stack implements a mutable LIFO stack backed by a singly-linked chain
of nodes which the stack owns exclusively.

All structural change happens at the head: Push allocates a node in front of
the chain, Pop detaches the head node and hands its element to the caller.
Both are O(1). Peek and PeekMut expose the head element without removing it,
the latter as a writable slot.

Three cursor types walk the chain (see IntoIter, IterMut and Iter). They
differ only in the relationship the cursor has to the stack's data: handing
out the elements themselves, mutable views, or read-only views.

Chains may grow arbitrarily long, so the stack never tears its chain down by
recursing into next-links; see Release.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.stack'.
func tracer() tracing.Trace {
	return tracing.Select("lists.stack")
}
