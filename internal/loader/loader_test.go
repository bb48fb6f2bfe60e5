package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

func TestParseRulesMidpointImpliesColl(t *testing.T) {
	rules, err := ParseRules(strings.NewReader("M A B : midp M A B => coll M A B\n"))
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	if len(rules[0].Premises) != 1 || rules[0].Premises[0].Kind != pred.MidpKind {
		t.Fatalf("unexpected premises: %+v", rules[0].Premises)
	}
	if rules[0].Conclusion.Kind != pred.CollKind {
		t.Fatalf("unexpected conclusion kind: %v", rules[0].Conclusion.Kind)
	}
}

func TestParseRulesAccumulatesMalformedLines(t *testing.T) {
	const src = "# a comment\nA B : bogus A B => coll A B\nA B C midp A B => coll A B C\n"
	_, err := ParseRules(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected an error for two malformed lines")
	}
	if !strings.Contains(err.Error(), "line 2") || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected both malformed lines reported, got: %v", err)
	}
}

func TestParseRulesWithConstant(t *testing.T) {
	const src = "A B C D : constangle A B C D 1/3 => constangle A B C D 1/3\n"
	rules, err := ParseRules(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
}

func TestParseRulesRejectsSameSideAsPremise(t *testing.T) {
	const src = "A B C D E F : sameside A B C D E F => coll A B C\n"
	_, err := ParseRules(strings.NewReader(src))
	if !errors.Is(err, ErrUnmatchablePremiseKind) {
		t.Fatalf("expected ErrUnmatchablePremiseKind, got: %v", err)
	}
}

func TestParseRulesAllowsConvexAsConclusion(t *testing.T) {
	const src = "A B C D : coll A B C => convex A B C D\n"
	rules, err := ParseRules(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	if len(rules) != 1 || rules[0].Conclusion.Kind != pred.ConvexKind {
		t.Fatalf("unexpected rule: %+v", rules)
	}
}

const midpointConstructionFile = `
freepoint x :



midpoint m : a b

midp m a b

`

func TestParseConstructionsMidpoint(t *testing.T) {
	cs, err := ParseConstructions(strings.NewReader(midpointConstructionFile))
	if err != nil {
		t.Fatalf("ParseConstructions: %v", err)
	}
	c, ok := cs["midpoint"]
	if !ok {
		t.Fatalf("expected a midpoint construction, got %v", cs)
	}
	if len(c.newArgs) != 1 || c.newArgs[0] != "m" {
		t.Fatalf("unexpected newArgs: %v", c.newArgs)
	}
	if len(c.existingArgs) != 2 || c.existingArgs[0] != "a" || c.existingArgs[1] != "b" {
		t.Fatalf("unexpected existingArgs: %v", c.existingArgs)
	}
	if len(c.postconditions) != 1 || c.postconditions[0].kind != pred.MidpKind {
		t.Fatalf("unexpected postconditions: %+v", c.postconditions)
	}
}

func TestParseConstructionsRejectsTrailingIncompleteGroup(t *testing.T) {
	_, err := ParseConstructions(strings.NewReader("midpoint m : a b\n\nmidp m a b\n"))
	if err == nil {
		t.Fatal("expected an error for a truncated construction group")
	}
}

const midpointRuleFile = "M A B : midp M A B => coll M A B\n"

const midpointProblemFile = `
midpoint_coll
p q = freepoint, freepoint ; m = midpoint p q
? coll m p q

`

func TestLoadMidpointProblem(t *testing.T) {
	g, d, points, err := Load(
		strings.NewReader(midpointRuleFile),
		strings.NewReader(midpointConstructionFile),
		strings.NewReader(midpointProblemFile),
		"midpoint_coll",
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g == nil || d == nil {
		t.Fatal("expected a non-nil graph and database")
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 point labels, got %v", points)
	}

	recent := d.DrainRecent()
	if len(recent) != 1 || recent[0].Kind != pred.MidpKind {
		t.Fatalf("expected exactly one inserted midp predicate, got %+v", recent)
	}
}

func TestLoadUnknownProblemName(t *testing.T) {
	_, _, _, err := Load(
		strings.NewReader(midpointRuleFile),
		strings.NewReader(midpointConstructionFile),
		strings.NewReader(midpointProblemFile),
		"no_such_problem",
	)
	if err == nil {
		t.Fatal("expected an error for an unknown problem name")
	}
}
