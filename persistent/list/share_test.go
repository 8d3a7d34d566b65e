package list

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

// Owner-count bookkeeping for two branches converging on a shared suffix.
func TestSharedNodeRetention(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.list")
	defer teardown()
	//
	base := New[string]().Prepend("suffix")
	left := base.Prepend("L")
	right := base.Prepend("R")
	t.Logf(printChains(left, right))

	suffix := base.head
	if left.head.next != suffix || right.head.next != suffix {
		t.Fatal("expected both branches to link to base's node, don't")
	}
	// base itself + one link from each branch
	if suffix.owners != 3 {
		t.Errorf("expected suffix node to have 3 owners, has %d", suffix.owners)
	}

	left.Release()
	if !left.Empty() {
		t.Error("expected released branch to be empty, isn't")
	}
	if suffix.owners != 2 {
		t.Errorf("expected suffix node to have 2 owners after one release, has %d", suffix.owners)
	}
	if v, _ := right.Head().Unwrap(); v != "R" {
		t.Errorf("expected surviving branch to read R, reads %q", v)
	}
	tl := right.Tail() // hands out one more share of the suffix node
	if v, _ := tl.Head().Unwrap(); v != "suffix" {
		t.Errorf("expected surviving branch to still reach the suffix, reads %q", v)
	}
	if suffix.owners != 3 {
		t.Errorf("expected Tail to register a new owner, count is %d", suffix.owners)
	}

	right.Release()
	base.Release()
	if suffix.owners != 1 {
		t.Errorf("expected suffix node to have 1 owner left, has %d", suffix.owners)
	}
	// tl is the last owner standing and still reads the retained storage
	if v, _ := tl.Head().Unwrap(); v != "suffix" {
		t.Errorf("expected last owner to read retained node, reads %q", v)
	}
	tl.Release()
	if suffix.owners != 0 {
		t.Errorf("expected suffix node to be fully released, count is %d", suffix.owners)
	}
}

// Releasing the only owner of a whole chain severs every node.
func TestReleaseSeversChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.list")
	defer teardown()
	//
	l := New[int]()
	for i := 1; i <= 3; i++ {
		next := l.Prepend(i)
		l.Release()
		l = next
	}
	first, second := l.head, l.head.next
	l.Release()
	if first.owners != 0 || second.owners != 0 {
		t.Errorf("expected all owner counts to drop to 0, are %d and %d",
			first.owners, second.owners)
	}
	if first.next != nil {
		t.Error("expected released nodes to be severed, aren't")
	}
}

// --- Print chains ------------------------------------------------------------

func printChains[T any](branches ...List[T]) string {
	printer := tp.New()
	for i, l := range branches {
		branch := printer.AddBranch(fmt.Sprintf("list #%d", i+1))
		for n := l.head; n != nil; n = n.next {
			branch = branch.AddBranch(fmt.Sprintf("⟨%v⟩ ×%d", n.elem, n.owners))
		}
	}
	return "\n" + printer.String()
}
