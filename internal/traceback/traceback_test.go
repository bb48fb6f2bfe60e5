package traceback

import (
	"strings"
	"testing"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/dd"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

func mustInsert(t *testing.T, d *dd.DD, p *pred.Predicate, why ...string) *pred.Predicate {
	t.Helper()
	p.Why = why
	if _, err := d.InsertPredicate(p); err != nil {
		t.Fatalf("InsertPredicate: %v", err)
	}

	return p
}

func TestTraceCollectsAncestry(t *testing.T) {
	d := dd.NewDD(nil)

	base := mustInsert(t, d, pred.New(pred.MidpKind, "M", "A", "B"))
	baseHash, err := base.Hash()
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	goal := mustInsert(t, d, pred.New(pred.CollKind, "M", "A", "B"), baseHash)

	chain, err := Trace(d, goal)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if len(chain) != 2 {
		t.Fatalf("expected 2 predicates in the chain, got %d: %+v", len(chain), chain)
	}

	var sawMidp, sawColl bool
	for _, p := range chain {
		switch p.Kind {
		case pred.MidpKind:
			sawMidp = true
		case pred.CollKind:
			sawColl = true
		}
	}
	if !sawMidp || !sawColl {
		t.Fatalf("expected both midp and coll in the chain, got %+v", chain)
	}
}

func TestTraceIgnoresUnknownWhyHash(t *testing.T) {
	d := dd.NewDD(nil)
	goal := mustInsert(t, d, pred.New(pred.CollKind, "M", "A", "B"), "coll#999999")

	chain, err := Trace(d, goal)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if len(chain) != 1 {
		t.Fatalf("expected exactly goal itself, got %+v", chain)
	}
}

func TestWriteOutputFormat(t *testing.T) {
	p := pred.New(pred.CollKind, "M", "A", "B")
	var b strings.Builder
	if err := WriteOutput(&b, "sample_problem", []*pred.Predicate{p}, []string{"pt0", "pt1", "pt2"}); err != nil {
		t.Fatalf("WriteOutput: %v", err)
	}

	out := b.String()
	if !strings.HasPrefix(out, "Problem: sample_problem\n") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "Predicate: coll A B M\n") {
		t.Fatalf("missing predicate line: %q", out)
	}
	if !strings.Contains(out, "Points: pt0 pt1 pt2\n") {
		t.Fatalf("missing points block: %q", out)
	}
	if !strings.HasSuffix(out, "\n\n") {
		t.Fatalf("expected a trailing blank line: %q", out)
	}
}
