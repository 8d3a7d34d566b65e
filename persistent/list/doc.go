/*
Package list implements an immutable singly-linked list with structural
sharing.

Prepend and Tail are non-destructive: they produce a new List value and leave
the receiver untouched. Lists derived from a common ancestor share every node
from their point of divergence down to the common end of the chain; no suffix
is ever copied. Nodes are never written through after creation, which is what
makes handing out shared read access safe without any locking.

Since multiple list values jointly keep a node alive, each node carries an
explicit ownership count. A list gives up its share of the chain through
Release; storage behind a node that is still owned elsewhere stays intact.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.list'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.list")
}
