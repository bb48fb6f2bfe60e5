package artable_test

import (
	"testing"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/artable"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/expr"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/spmatrix"
)

func newTable(t *testing.T) *artable.Table {
	t.Helper()

	return artable.NewTable("one", spmatrix.NewDefaultSolver())
}

func TestAddFreeThenAddEq2(t *testing.T) {
	t.Parallel()

	tb := newTable(t)
	tb.AddFree("a")
	tb.AddFree("b")

	changed := tb.AddEq2("a", "b", "pred1")
	if !changed {
		t.Fatalf("expected AddEq2 to change table state")
	}

	img, ok := tb.Expr("b")
	if !ok {
		t.Fatalf("expected b to be known")
	}
	if !img.Coeff("a").Equal(frac.One()) {
		t.Fatalf("b's image = %v, want {a: 1}", img)
	}
}

func TestAddExprSolvesForLexLargest(t *testing.T) {
	t.Parallel()

	tb := newTable(t)
	// a - b + one = 0  =>  b should become the subject (lex largest of a,b).
	e := expr.New(map[string]frac.Fraction{
		"a":   frac.MustNew(1, 1),
		"b":   frac.MustNew(-1, 1),
		"one": frac.MustNew(1, 1),
	})
	if !tb.AddExpr(e) {
		t.Fatalf("expected new state from AddExpr")
	}
	img, ok := tb.Expr("b")
	if !ok {
		t.Fatalf("expected b to be known")
	}
	if !img.Coeff("a").Equal(frac.One()) || !img.Coeff("one").Equal(frac.One()) {
		t.Fatalf("b's image = %v, want {a:1, one:1}", img)
	}
}

func TestAddExprNoNewInfoReturnsFalse(t *testing.T) {
	t.Parallel()

	tb := newTable(t)
	tb.AddFree("a")
	tb.AddFree("b")
	tb.AddEq2("a", "b", "pred1")

	// a - b = 0 is already implied; re-asserting should not change state.
	e := expr.New(map[string]frac.Fraction{
		"a": frac.MustNew(1, 1),
		"b": frac.MustNew(-1, 1),
	})
	if tb.AddExpr(e) {
		t.Fatalf("expected no new state from a redundant assertion")
	}
}

func TestGetAllEqsClassifiesEq2Eq3(t *testing.T) {
	t.Parallel()

	tb := newTable(t)
	tb.AddFree("a")
	tb.AddFree("b")
	tb.AddFree("c")

	tb.AddEq2("a", "b", "p-eq2")
	tb.AddEq3("a", "c", frac.MustNew(3, 1), "p-eq3")

	all := tb.GetAllEqs()
	if len(all.Eq2s) != 1 || all.Eq2s[0].V1 != "a" || all.Eq2s[0].V2 != "b" {
		t.Fatalf("eq2s = %v, want one pair (a,b)", all.Eq2s)
	}
	foundEq3 := false
	for _, e3 := range all.Eq3s {
		if e3.V1 == "a" && e3.V2 == "c" && e3.F.Equal(frac.MustNew(3, 1)) {
			foundEq3 = true
		}
		if e3.V1 == "b" && e3.V2 == "c" && e3.F.Equal(frac.MustNew(3, 1)) {
			foundEq3 = true
		}
	}
	if !foundEq3 {
		t.Fatalf("eq3s = %v, want a pair with offset 3", all.Eq3s)
	}

	// Calling again with no new assertions should surface nothing further.
	again := tb.GetAllEqs()
	if len(again.Eq2s) != 0 || len(again.Eq3s) != 0 || len(again.Eq4s) != 0 {
		t.Fatalf("second GetAllEqs call = %+v, want empty", again)
	}
}

func TestGetAllEqsEmitsGenuineEq4(t *testing.T) {
	t.Parallel()

	tb := newTable(t)
	for _, v := range []string{"x1", "x2", "y1", "y2"} {
		tb.AddFree(v)
	}

	// x1 - x2 = 2*z (not reducible to a pure constant), y1 - y2 = 2*z as well:
	// both residuals depend on the free variable z, so they should coincide
	// and be reported as an eq4 link.
	tb.AddFree("z")
	e1 := expr.New(map[string]frac.Fraction{
		"x1": frac.MustNew(1, 1),
		"x2": frac.MustNew(-1, 1),
		"z":  frac.MustNew(-2, 1),
	})
	e2 := expr.New(map[string]frac.Fraction{
		"y1": frac.MustNew(1, 1),
		"y2": frac.MustNew(-1, 1),
		"z":  frac.MustNew(-2, 1),
	})
	tb.AddExpr(e1)
	tb.AddExpr(e2)

	all := tb.GetAllEqs()
	if len(all.Eq4s) != 1 {
		t.Fatalf("eq4s = %+v, want exactly one link", all.Eq4s)
	}
}

func TestWhyReturnsPredicatesForDerivedEquality(t *testing.T) {
	t.Parallel()

	tb := newTable(t)
	tb.AddFree("a")
	tb.AddFree("b")
	tb.AddFree("c")

	tb.AddEq2("a", "b", "p1")
	tb.AddEq2("b", "c", "p2")

	e := expr.New(map[string]frac.Fraction{
		"a": frac.MustNew(1, 1),
		"c": frac.MustNew(-1, 1),
	})
	deps, err := tb.Why(e)
	if err != nil {
		t.Fatalf("Why: %v", err)
	}
	if len(deps) == 0 {
		t.Fatalf("expected a non-empty witness for a - c = 0")
	}
}

func TestWhyUnknownVariable(t *testing.T) {
	t.Parallel()

	tb := newTable(t)
	tb.AddFree("a")
	tb.AddEq2("a", "a", "p1")

	e := expr.Single("never-registered", frac.One())
	_, err := tb.Why(e)
	if err != artable.ErrUnknownVariable {
		t.Fatalf("Why err = %v, want ErrUnknownVariable", err)
	}
}

func TestWithWhyDisabledShortCircuits(t *testing.T) {
	t.Parallel()

	tb := artable.NewTable("one", nil, artable.WithWhyDisabled())
	tb.AddFree("a")
	tb.AddFree("b")
	tb.AddEq2("a", "b", "p1")

	deps, err := tb.Why(expr.Single("a", frac.One()))
	if err != nil || deps != nil {
		t.Fatalf("Why with disabled solver = (%v, %v), want (nil, nil)", deps, err)
	}
}
