package uf_test

import (
	"testing"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/uf"
)

type testNode struct {
	name  string
	stamp []string
}

func (n *testNode) Name() string { return n.name }

func newForest(names ...string) *uf.Forest[*testNode] {
	f := uf.NewForest[*testNode]()
	for _, n := range names {
		f.Add(&testNode{name: n})
	}

	return f
}

func TestFindIdempotence(t *testing.T) {
	t.Parallel()

	f := newForest("a", "b", "c")
	if err := f.Union("a", "b", "p1", func(dest, src *testNode) {}); err != nil {
		t.Fatalf("Union: %v", err)
	}

	root, err := f.Find("b")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	root2, err := f.Find(root)
	if err != nil {
		t.Fatalf("Find(root): %v", err)
	}
	if root2 != root {
		t.Fatalf("root(root(n)) = %q, want %q", root2, root)
	}
	isRoot, err := f.IsRoot(root)
	if err != nil || !isRoot {
		t.Fatalf("IsRoot(%q) = %v, %v, want true, nil", root, isRoot, err)
	}
}

func TestUnionMergesPayload(t *testing.T) {
	t.Parallel()

	f := newForest("a", "b")
	if err := f.Union("a", "b", "p1", func(dest, src *testNode) {
		dest.stamp = append(dest.stamp, src.stamp...)
		dest.stamp = append(dest.stamp, "merged-from-"+src.name)
	}); err != nil {
		t.Fatalf("Union: %v", err)
	}

	root, err := f.Root("b")
	if err != nil {
		t.Fatalf("Root: %v", err)
	}
	if len(root.stamp) != 1 || root.stamp[0] != "merged-from-b" {
		t.Fatalf("root.stamp = %v, want [merged-from-b]", root.stamp)
	}
}

func TestUnionSameRootNoOp(t *testing.T) {
	t.Parallel()

	f := newForest("a", "b")
	called := false
	merge := func(dest, src *testNode) { called = true }

	if err := f.Union("a", "b", "p1", merge); err != nil {
		t.Fatalf("Union: %v", err)
	}
	called = false
	if err := f.Union("a", "b", "p2", merge); err != nil {
		t.Fatalf("second Union: %v", err)
	}
	if called {
		t.Fatalf("merge should not run when roots already coincide")
	}
}

func TestUnionDeterministicRegardlessOfOrder(t *testing.T) {
	t.Parallel()

	order := func(first [2][2]string) []string {
		f := newForest("a", "b", "c", "d")
		for _, pair := range first {
			if err := f.Union(pair[0], pair[1], "p", func(dest, src *testNode) {}); err != nil {
				t.Fatalf("Union: %v", err)
			}
		}

		return f.Roots()
	}

	r1 := order([2][2]string{{"a", "b"}, {"c", "d"}})
	r2 := order([2][2]string{{"c", "d"}, {"a", "b"}})
	if len(r1) != len(r2) {
		t.Fatalf("roots differ in count: %v vs %v", r1, r2)
	}
}

func TestPairsTriplesQuadruples(t *testing.T) {
	t.Parallel()

	f := newForest("a", "b", "c", "d")
	if got := len(f.Pairs()); got != 6 {
		t.Fatalf("Pairs() len = %d, want 6", got)
	}
	if got := len(f.Triples()); got != 4 {
		t.Fatalf("Triples() len = %d, want 4", got)
	}
	if got := len(f.Quadruples()); got != 1 {
		t.Fatalf("Quadruples() len = %d, want 1", got)
	}
}

func TestFindUnknownNode(t *testing.T) {
	t.Parallel()

	f := uf.NewForest[*testNode]()
	if _, err := f.Find("missing"); err != uf.ErrUnknownNode {
		t.Fatalf("Find(missing) err = %v, want ErrUnknownNode", err)
	}
}
