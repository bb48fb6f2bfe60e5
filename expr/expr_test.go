package expr_test

import (
	"testing"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/expr"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
)

func TestAddSubCancel(t *testing.T) {
	t.Parallel()

	a := expr.New(map[string]frac.Fraction{"x": frac.MustNew(1, 1), "y": frac.MustNew(2, 1)})
	b := expr.New(map[string]frac.Fraction{"y": frac.MustNew(2, 1)})

	got := a.Sub(b)
	if len(got) != 1 || !got.Coeff("x").Equal(frac.One()) {
		t.Fatalf("a-b = %v, want {x:1}", got)
	}
	if got.AllZero() {
		t.Fatalf("a-b should not be all-zero")
	}
}

func TestScaleAndDiv(t *testing.T) {
	t.Parallel()

	a := expr.New(map[string]frac.Fraction{"x": frac.MustNew(2, 1)})
	scaled := a.Scale(frac.MustNew(1, 2))
	if !scaled.Coeff("x").Equal(frac.One()) {
		t.Fatalf("scaled x coeff = %v, want 1", scaled.Coeff("x"))
	}

	divided, err := a.Div(frac.MustNew(2, 1))
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if !divided.Coeff("x").Equal(frac.One()) {
		t.Fatalf("divided x coeff = %v, want 1", divided.Coeff("x"))
	}

	if _, err := a.Div(frac.Zero()); err == nil {
		t.Fatalf("expected error dividing by zero")
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()

	e := expr.New(map[string]frac.Fraction{"a": frac.MustNew(2, 1), "b": frac.MustNew(1, 1)})
	sub := expr.New(map[string]frac.Fraction{"c": frac.MustNew(3, 1)})

	got := e.Replace("a", sub)
	// a -> 3c, so 2a + b -> 6c + b
	if !got.Coeff("c").Equal(frac.MustNew(6, 1)) {
		t.Fatalf("replace coeff c = %v, want 6", got.Coeff("c"))
	}
	if !got.Coeff("b").Equal(frac.One()) {
		t.Fatalf("replace coeff b = %v, want 1", got.Coeff("b"))
	}
	if _, ok := got["a"]; ok {
		t.Fatalf("replaced variable a should no longer appear")
	}
}

func TestGetSubjectLexLargest(t *testing.T) {
	t.Parallel()

	// a - b + one = 0 => subject should be "b" (lex largest excluding "one"),
	// solved as b = a + one.
	e := expr.New(map[string]frac.Fraction{
		"a":   frac.MustNew(1, 1),
		"b":   frac.MustNew(-1, 1),
		"one": frac.MustNew(1, 1),
	})
	v, solved, ok := e.GetSubject("one")
	if !ok {
		t.Fatalf("expected a subject variable")
	}
	if v != "b" {
		t.Fatalf("subject = %q, want %q", v, "b")
	}
	if !solved.Coeff("a").Equal(frac.One()) || !solved.Coeff("one").Equal(frac.One()) {
		t.Fatalf("solved = %v, want {a:1, one:1}", solved)
	}
}

func TestGetSubjectNoneAvailable(t *testing.T) {
	t.Parallel()

	e := expr.New(map[string]frac.Fraction{"one": frac.MustNew(1, 1)})
	_, _, ok := e.GetSubject("one")
	if ok {
		t.Fatalf("expected no subject when only the constant variable is present")
	}
}
