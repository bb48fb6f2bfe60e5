package dd

import (
	"sort"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

// arity gives each predicate kind's expected hole count, used to validate
// rule/construction files as they are loaded (spec §6's rule-file grammar).
// constangle/constratio carry one trailing Rational hole in addition to
// their point holes.
var arity = map[pred.Kind]int{
	pred.CollKind:       3,
	pred.CyclicKind:     4,
	pred.ParaKind:       4,
	pred.PerpKind:       4,
	pred.CongKind:       4,
	pred.EqAngleKind:    8,
	pred.EqRatioKind:    8,
	pred.MidpKind:       3,
	pred.ContriKind:     6,
	pred.SimTriKind:     6,
	pred.ConstAngleKind: 5,
	pred.ConstRatioKind: 5,
	pred.NEqKind:        2,
	pred.NCollKind:      3,
	pred.SameSideKind:   6,
	pred.ConvexKind:     4,
}

// Rule is a theorem or construction: an ordered premise clause and a single
// conclusion template, sharing one hole name-space (spec §4.7's Clause,
// §4.8's rule/construction template store). Holes with the same Name are
// the *same* *pred.Hole object across every template in Premises and in
// Conclusion, so binding one premise's hole is immediately visible to every
// other template that names it.
type Rule struct {
	Name       string
	ArgNames   []string
	Premises   pred.Clause
	Conclusion *pred.Template

	// constNames holds the name of every hole that was pre-bound to a
	// literal rational at load time (a rule-file token like "1/3" rather
	// than a placeholder). ClearAll leaves these bound across matches: a
	// rule-file constant is fixed for the rule's whole lifetime, not a
	// trial binding to unwind.
	constNames map[string]bool
}

// NewRule builds a Rule from kind/holeNames pairs: premiseSpecs describes
// each premise template as (kind, hole-name-tuple); conclusionSpec is the
// single conclusion template. Hole objects are shared across every spec
// that repeats a hole name, establishing the rule's argument name-space.
// Fails with ErrArityMismatch if any spec's hole count disagrees with its
// Kind's expected arity.
func NewRule(name string, premiseSpecs [][2]interface{}, conclusionKind pred.Kind, conclusionHoles []string) (*Rule, error) {
	return NewRuleWithConstants(name, premiseSpecs, conclusionKind, conclusionHoles, nil)
}

// NewRuleWithConstants is NewRule, additionally binding every hole name
// present in constants to its rational value immediately, and keeping that
// binding fixed across every future ClearAll (internal/loader uses this for
// a rule-file token that parses as a literal fraction rather than a
// placeholder name).
func NewRuleWithConstants(name string, premiseSpecs [][2]interface{}, conclusionKind pred.Kind, conclusionHoles []string, constants map[string]frac.Fraction) (*Rule, error) {
	shared := make(map[string]*pred.Hole)
	holeFor := func(n string) *pred.Hole {
		if h, ok := shared[n]; ok {
			return h
		}
		h := pred.NewHole(n)
		shared[n] = h

		return h
	}

	build := func(kind pred.Kind, names []string) (*pred.Template, error) {
		if want, ok := arity[kind]; ok && want != len(names) {
			return nil, ErrArityMismatch
		}
		holes := make([]*pred.Hole, len(names))
		for i, n := range names {
			holes[i] = holeFor(n)
		}

		return &pred.Template{Kind: kind, Holes: holes}, nil
	}

	premises := make(pred.Clause, 0, len(premiseSpecs))
	for _, spec := range premiseSpecs {
		kind := spec[0].(pred.Kind)
		names := spec[1].([]string)
		t, err := build(kind, names)
		if err != nil {
			return nil, err
		}
		premises = append(premises, t)
	}

	conclusion, err := build(conclusionKind, conclusionHoles)
	if err != nil {
		return nil, err
	}

	constNames := make(map[string]bool, len(constants))
	for n, v := range constants {
		h, ok := shared[n]
		if !ok {
			return nil, ErrArityMismatch
		}
		if h.SetRational(v) == pred.SetUnsuccessful {
			return nil, ErrArityMismatch
		}
		constNames[n] = true
	}

	argNames := make([]string, 0, len(shared))
	for n := range shared {
		argNames = append(argNames, n)
	}
	sort.Strings(argNames)

	return &Rule{Name: name, ArgNames: argNames, Premises: premises, Conclusion: conclusion, constNames: constNames}, nil
}

// ClearAll resets every non-constant hole shared across r's premises and
// conclusion to HoleEmpty, so r can be matched again from a clean slate.
func (r *Rule) ClearAll() {
	seen := make(map[*pred.Hole]bool)
	clear := func(h *pred.Hole) {
		if seen[h] {
			return
		}
		seen[h] = true
		if r.constNames[h.Name] {
			return
		}
		h.Clear()
	}
	for _, t := range r.Premises {
		for _, h := range t.Holes {
			clear(h)
		}
	}
	for _, h := range r.Conclusion.Holes {
		clear(h)
	}
}
