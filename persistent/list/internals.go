package list

import (
	"fmt"
	"strings"
)

// node is one cell of a shared chain. A node is jointly owned by every List
// value whose head it is and by at most one predecessor node linking to it;
// owners counts these references. Nodes are never written through after
// creation — elem and next are fixed for the node's lifetime, only owners
// moves.
type node[T any] struct {
	elem   T
	next   *node[T]
	owners int
}

// share registers one more owner of n. Sharing nil (the empty chain) is legal
// and does nothing.
func (n *node[T]) share() *node[T] {
	if n != nil {
		n.owners++
	}
	return n
}

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", n.elem))
	}
	b.WriteByte(')')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
