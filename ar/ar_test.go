package ar_test

import (
	"testing"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/ar"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/dd"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/gg"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/spmatrix"
)

// buildTwoLinesGG builds two two-point lines on fresh directions, returning
// the graph and both directions' root names plus a seed predicate hash to
// use as the justification id for AR assertions.
func buildTwoLinesGG(t *testing.T) (*gg.GG, string, string, string) {
	t.Helper()
	g := gg.New()
	p1, p2, p3, p4 := g.AddPoint(), g.AddPoint(), g.AddPoint(), g.AddPoint()

	l1, _, err := g.GetOrAddLine(p1, p2, "base")
	if err != nil {
		t.Fatalf("GetOrAddLine: %v", err)
	}
	l2, _, err := g.GetOrAddLine(p3, p4, "base")
	if err != nil {
		t.Fatalf("GetOrAddLine: %v", err)
	}
	d1 := g.AddDirection()
	d2 := g.AddDirection()
	if err := g.SetLineDirection(l1, d1, "assigned"); err != nil {
		t.Fatalf("SetLineDirection: %v", err)
	}
	if err := g.SetLineDirection(l2, d2, "assigned"); err != nil {
		t.Fatalf("SetLineDirection: %v", err)
	}

	seedHash, err := pred.New(pred.ParaKind, p1, p2, p3, p4).Hash()
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	return g, d1, d2, seedHash
}

func TestDeriveEmitsParaFromEqualDirectionValues(t *testing.T) {
	g, d1, d2, seed := buildTwoLinesGG(t)

	a := ar.New(spmatrix.NewDefaultSolver())
	if ok := a.AddPara(d1, d2, seed); !ok {
		t.Fatalf("AddPara returned false for a fresh pair")
	}

	d := dd.NewDD(nil)
	n, err := a.Derive(g, d)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if n == 0 {
		t.Fatalf("expected at least one derived predicate")
	}

	found := false
	for _, p := range d.DrainRecent() {
		if p.Kind == pred.ParaKind {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a para predicate among derived ones")
	}
}

func TestDeriveEmitsPerpFromQuarterTurnOffset(t *testing.T) {
	g, d1, d2, seed := buildTwoLinesGG(t)

	a := ar.New(spmatrix.NewDefaultSolver())
	if ok := a.AddPerp(d1, d2, seed); !ok {
		t.Fatalf("AddPerp returned false for a fresh pair")
	}

	d := dd.NewDD(nil)
	if _, err := a.Derive(g, d); err != nil {
		t.Fatalf("Derive: %v", err)
	}

	found := false
	for _, p := range d.DrainRecent() {
		if p.Kind == pred.PerpKind {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a perp predicate among derived ones")
	}
}

func TestDeriveEmitsConstAngleForArbitraryOffset(t *testing.T) {
	g, d1, d2, seed := buildTwoLinesGG(t)

	a := ar.New(spmatrix.NewDefaultSolver())
	third := frac.MustNew(1, 3)
	if ok := a.AddConstAngle(d1, d2, third, seed); !ok {
		t.Fatalf("AddConstAngle returned false for a fresh pair")
	}

	d := dd.NewDD(nil)
	if _, err := a.Derive(g, d); err != nil {
		t.Fatalf("Derive: %v", err)
	}

	found := false
	for _, p := range d.DrainRecent() {
		if p.Kind == pred.ConstAngleKind {
			found = true
			if len(p.Args) != 5 {
				t.Fatalf("expected 5 args (4 points + value), got %d", len(p.Args))
			}
			if p.Args[4] != third.String() {
				t.Fatalf("expected value arg %q, got %q", third.String(), p.Args[4])
			}
		}
	}
	if !found {
		t.Fatalf("expected a constangle predicate among derived ones")
	}
}

func TestDeriveEmitsCongFromEqualLengthValues(t *testing.T) {
	g := gg.New()
	p1, p2, p3, p4 := g.AddPoint(), g.AddPoint(), g.AddPoint(), g.AddPoint()
	s1 := g.GetOrAddSegment(p1, p2)
	s2 := g.GetOrAddSegment(p3, p4)
	len1 := g.AddLength()
	len2 := g.AddLength()
	if err := g.SetSegmentLength(s1, len1, "assigned"); err != nil {
		t.Fatalf("SetSegmentLength: %v", err)
	}
	if err := g.SetSegmentLength(s2, len2, "assigned"); err != nil {
		t.Fatalf("SetSegmentLength: %v", err)
	}

	seed, err := pred.New(pred.CongKind, p1, p2, p3, p4).Hash()
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	a := ar.New(spmatrix.NewDefaultSolver())
	if ok := a.AddCong(len1, len2, seed); !ok {
		t.Fatalf("AddCong returned false for a fresh pair")
	}

	d := dd.NewDD(nil)
	if _, err := a.Derive(g, d); err != nil {
		t.Fatalf("Derive: %v", err)
	}

	found := false
	for _, p := range d.DrainRecent() {
		if p.Kind == pred.CongKind {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a cong predicate among derived ones")
	}
}
