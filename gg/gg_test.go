package gg

import "testing"

func TestMergePointIdempotentAndRootUnique(t *testing.T) {
	g := New()
	a := g.AddPoint()
	b := g.AddPoint()

	if err := g.MergePoint(a, b, "p1"); err != nil {
		t.Fatalf("MergePoint: %v", err)
	}
	if err := g.MergePoint(a, b, "p1"); err != nil {
		t.Fatalf("repeat MergePoint: %v", err)
	}
	ra, err := g.RootPoint(a)
	if err != nil {
		t.Fatalf("RootPoint(a): %v", err)
	}
	rb, err := g.RootPoint(b)
	if err != nil {
		t.Fatalf("RootPoint(b): %v", err)
	}
	if ra != rb {
		t.Fatalf("expected a and b to share a root, got %q and %q", ra, rb)
	}
}

func TestAddPointToLineSymmetricIncidence(t *testing.T) {
	g := New()
	p1 := g.AddPoint()
	p2 := g.AddPoint()
	l, created, err := g.GetOrAddLine(p1, p2, "base")
	if err != nil {
		t.Fatalf("GetOrAddLine: %v", err)
	}
	if !created {
		t.Fatalf("expected a fresh line to be created")
	}

	ok, err := g.CheckColl(p1, p2)
	if err != nil {
		t.Fatalf("CheckColl: %v", err)
	}
	if !ok {
		t.Fatalf("expected p1, p2 collinear on %s", l)
	}

	l2, found := g.TryGetLine(p2, p1)
	if !found || l2 != l {
		t.Fatalf("expected TryGetLine(p2,p1) to return %s, got %s (found=%v)", l, l2, found)
	}
}

func TestSetPerpIsInvolution(t *testing.T) {
	g := New()
	d1 := g.AddDirection()
	d2 := g.AddDirection()

	if err := g.SetPerp(d1, d2, "perp1"); err != nil {
		t.Fatalf("SetPerp: %v", err)
	}

	l1 := g.AddLine()
	l2 := g.AddLine()
	if err := g.SetLineDirection(l1, d1, "w1"); err != nil {
		t.Fatalf("SetLineDirection(l1): %v", err)
	}
	if err := g.SetLineDirection(l2, d2, "w2"); err != nil {
		t.Fatalf("SetLineDirection(l2): %v", err)
	}

	ok, err := g.CheckPerp(l1, l2)
	if err != nil {
		t.Fatalf("CheckPerp(l1,l2): %v", err)
	}
	if !ok {
		t.Fatalf("expected l1 perp l2")
	}
	ok, err = g.CheckPerp(l2, l1)
	if err != nil {
		t.Fatalf("CheckPerp(l2,l1): %v", err)
	}
	if !ok {
		t.Fatalf("expected perp to be symmetric: l2 perp l1")
	}
}

func TestSetPerpSelfIsRejected(t *testing.T) {
	g := New()
	d1 := g.AddDirection()
	if err := g.SetPerp(d1, d1, "bad"); err != ErrIncompatiblePerp {
		t.Fatalf("expected ErrIncompatiblePerp, got %v", err)
	}
}

func TestMergePointUnionDeterministicRegardlessOfOrder(t *testing.T) {
	build := func(order [][2]int) (string, string, string) {
		g := New()
		pts := make([]string, 3)
		for i := range pts {
			pts[i] = g.AddPoint()
		}
		for _, pair := range order {
			if err := g.MergePoint(pts[pair[0]], pts[pair[1]], "w"); err != nil {
				t.Fatalf("MergePoint: %v", err)
			}
		}
		r0, _ := g.RootPoint(pts[0])
		r1, _ := g.RootPoint(pts[1])
		r2, _ := g.RootPoint(pts[2])

		return r0, r1, r2
	}

	a0, a1, a2 := build([][2]int{{0, 1}, {1, 2}})
	b0, b1, b2 := build([][2]int{{1, 2}, {0, 1}})

	if (a0 == a1) != (b0 == b1) || (a1 == a2) != (b1 == b2) {
		t.Fatalf("expected same equivalence classes regardless of union order")
	}
}

func TestRewriteTrianglesForPointMergeDetectsDegeneracy(t *testing.T) {
	g := New()
	a := g.AddPoint()
	b := g.AddPoint()
	c := g.AddPoint()
	g.AddTriangle(a, b, c)

	if err := g.MergePoint(a, b, "collapse"); err != ErrDegenerateTriangle {
		t.Fatalf("expected ErrDegenerateTriangle, got %v", err)
	}
}

func TestMergeLineMigratesPointsAndDirection(t *testing.T) {
	g := New()
	p1 := g.AddPoint()
	p2 := g.AddPoint()
	p3 := g.AddPoint()
	l1, _, err := g.GetOrAddLine(p1, p2, "w1")
	if err != nil {
		t.Fatalf("GetOrAddLine(l1): %v", err)
	}
	l2 := g.AddLine()
	if err := g.AddPointToLine(l2, p3, "w2"); err != nil {
		t.Fatalf("AddPointToLine: %v", err)
	}
	d := g.AddDirection()
	if err := g.SetLineDirection(l2, d, "w3"); err != nil {
		t.Fatalf("SetLineDirection: %v", err)
	}

	if err := g.MergeLine(l1, l2, "merge"); err != nil {
		t.Fatalf("MergeLine: %v", err)
	}

	ok, err := g.CheckColl(p1, p3)
	if err != nil {
		t.Fatalf("CheckColl: %v", err)
	}
	if !ok {
		t.Fatalf("expected p1 and p3 collinear after line merge")
	}

	rl1, _ := g.RootLine(l1)
	lp, err := g.lines.Root(rl1)
	if err != nil {
		t.Fatalf("Root(l1): %v", err)
	}
	if lp.direction == "" {
		t.Fatalf("expected merged line to carry l2's direction")
	}
}

func TestCheckCongAfterLengthUnion(t *testing.T) {
	g := New()
	a := g.AddPoint()
	b := g.AddPoint()
	c := g.AddPoint()
	d := g.AddPoint()

	s1 := g.GetOrAddSegment(a, b)
	s2 := g.GetOrAddSegment(c, d)
	l1 := g.AddLength()
	l2 := g.AddLength()

	sp1, err := g.segments.Root(s1)
	if err != nil {
		t.Fatalf("segments.Root: %v", err)
	}
	sp1.length = l1
	sp2, err := g.segments.Root(s2)
	if err != nil {
		t.Fatalf("segments.Root: %v", err)
	}
	sp2.length = l2

	ok, err := g.CheckCong(a, b, c, d)
	if err != nil {
		t.Fatalf("CheckCong: %v", err)
	}
	if ok {
		t.Fatalf("expected segments not congruent before length merge")
	}

	if err := g.lengths.Union(l1, l2, "cong", func(dl, sl *Length) {
		for seg := range sl.segments {
			dl.segments[seg] = true
		}
	}); err != nil {
		t.Fatalf("lengths.Union: %v", err)
	}

	ok, err = g.CheckCong(a, b, c, d)
	if err != nil {
		t.Fatalf("CheckCong after merge: %v", err)
	}
	if !ok {
		t.Fatalf("expected segments congruent after length merge")
	}
}
