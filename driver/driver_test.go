package driver

import (
	"testing"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/ar"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/dd"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/gg"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/kinderr"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/spmatrix"
)

func midpointRule(t *testing.T) *dd.Rule {
	t.Helper()
	r, err := dd.NewRule(
		"midp_implies_coll",
		[][2]interface{}{
			{pred.MidpKind, []string{"M", "A", "B"}},
		},
		pred.CollKind, []string{"M", "A", "B"},
	)
	if err != nil {
		t.Fatalf("NewRule: %v", err)
	}

	return r
}

func buildMidpointGG(t *testing.T) (*gg.GG, string, string, string) {
	t.Helper()
	g := gg.New()
	m := g.AddPoint()
	a := g.AddPoint()
	b := g.AddPoint()

	if _, _, err := g.GetOrAddLine(a, b, "base"); err != nil {
		t.Fatalf("GetOrAddLine: %v", err)
	}
	l, ok := g.TryGetLine(a, b)
	if !ok {
		t.Fatalf("expected line through %s,%s", a, b)
	}
	if err := g.AddPointToLine(l, m, "on-line"); err != nil {
		t.Fatalf("AddPointToLine: %v", err)
	}

	sMA := g.GetOrAddSegment(m, a)
	sMB := g.GetOrAddSegment(m, b)
	lenMA := g.AddLength()
	lenMB := g.AddLength()
	if err := g.SetSegmentLength(sMA, lenMA, "assigned"); err != nil {
		t.Fatalf("SetSegmentLength(MA): %v", err)
	}
	if err := g.SetSegmentLength(sMB, lenMB, "assigned"); err != nil {
		t.Fatalf("SetSegmentLength(MB): %v", err)
	}
	if err := g.MergeLength(lenMA, lenMB, "cong"); err != nil {
		t.Fatalf("MergeLength: %v", err)
	}

	return g, m, a, b
}

func buildTemplate(t *testing.T, kind pred.Kind, names []string) *pred.Template {
	t.Helper()
	r, err := dd.NewRule("goal", nil, kind, names)
	if err != nil {
		t.Fatalf("buildTemplate: %v", err)
	}

	return r.Conclusion
}

func TestRunProvesMidpointConclusion(t *testing.T) {
	g, m, a, b := buildMidpointGG(t)

	conclusion := buildTemplate(t, pred.CollKind, []string{"M", "A", "B"})
	d := dd.NewDD(conclusion)
	d.AddRule(midpointRule(t))
	engine := ar.New(spmatrix.NewDefaultSolver())

	verdict, err := Run(g, d, engine, 10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if verdict != Proved {
		t.Fatalf("expected PROVED for midpoint %s of %s,%s, got %s", m, a, b, verdict)
	}
}

func TestRunUnsolvedWithNoApplicableRule(t *testing.T) {
	g := gg.New()
	p1, p2, p3 := g.AddPoint(), g.AddPoint(), g.AddPoint()

	conclusion := buildTemplate(t, pred.CollKind, []string{"X", "Y", "Z"})
	d := dd.NewDD(conclusion)
	engine := ar.New(spmatrix.NewDefaultSolver())

	verdict, err := Run(g, d, engine, 5)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if verdict != Unsolved {
		t.Fatalf("expected UNSOLVED for unrelated points %s,%s,%s, got %s", p1, p2, p3, verdict)
	}
}

func TestRunSurfacesContradictionForParaThenPerp(t *testing.T) {
	g := gg.New()
	p1, p2, p3, p4 := g.AddPoint(), g.AddPoint(), g.AddPoint(), g.AddPoint()

	d := dd.NewDD(nil)
	if _, err := d.InsertPredicate(pred.New(pred.ParaKind, p1, p2, p3, p4)); err != nil {
		t.Fatalf("InsertPredicate(para): %v", err)
	}
	if _, err := d.InsertPredicate(pred.New(pred.PerpKind, p1, p2, p3, p4)); err != nil {
		t.Fatalf("InsertPredicate(perp): %v", err)
	}
	engine := ar.New(spmatrix.NewDefaultSolver())

	_, err := Run(g, d, engine, 5)
	if err == nil {
		t.Fatalf("expected a contradiction error for conflicting para/perp on the same line pair")
	}
	if !kinderr.Is(err, kinderr.Contradiction) {
		t.Fatalf("expected kinderr.Contradiction, got %v", err)
	}
}
