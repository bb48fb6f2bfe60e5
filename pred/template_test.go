package pred_test

import (
	"testing"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

func TestHoleSetPointContract(t *testing.T) {
	t.Parallel()

	h := pred.NewHole("a")
	if got := h.SetPoint("P1"); got != pred.SetSuccessful {
		t.Fatalf("first SetPoint = %v, want SetSuccessful", got)
	}
	if got := h.SetPoint("P1"); got != pred.SetUnchanged {
		t.Fatalf("repeat SetPoint with same value = %v, want SetUnchanged", got)
	}
	if got := h.SetPoint("P2"); got != pred.SetUnsuccessful {
		t.Fatalf("SetPoint with clashing value = %v, want SetUnsuccessful", got)
	}

	h.Clear()
	if h.Kind() != pred.HoleEmpty {
		t.Fatalf("Clear did not reset hole to empty")
	}
}

func TestTemplateFilledMaskAndInstantiate(t *testing.T) {
	t.Parallel()

	tmpl := pred.NewTemplate(pred.CollKind, "a", "b", "c")
	if tmpl.FilledMask() != 0 {
		t.Fatalf("fresh template should have empty mask")
	}

	tmpl.HoleByName("a").SetPoint("A")
	tmpl.HoleByName("b").SetPoint("B")
	if tmpl.AllBound() {
		t.Fatalf("template should not be all-bound yet")
	}
	if tmpl.FilledMask() != 0b011 {
		t.Fatalf("mask = %b, want 0b011", tmpl.FilledMask())
	}

	tmpl.HoleByName("c").SetPoint("C")
	if !tmpl.AllBound() {
		t.Fatalf("template should be all-bound")
	}

	p, ok := tmpl.Instantiate()
	if !ok {
		t.Fatalf("Instantiate failed on fully-bound template")
	}
	if p.Kind != pred.CollKind || len(p.Args) != 3 {
		t.Fatalf("instantiated predicate = %+v, unexpected shape", p)
	}
}

func TestTemplateCloneIsIndependent(t *testing.T) {
	t.Parallel()

	tmpl := pred.NewTemplate(pred.ParaKind, "a", "b")
	tmpl.HoleByName("a").SetPoint("A")

	clone := tmpl.Clone()
	clone.HoleByName("b").SetPoint("B")

	if tmpl.HoleByName("b").Kind() != pred.HoleEmpty {
		t.Fatalf("mutating the clone should not affect the original")
	}
}
