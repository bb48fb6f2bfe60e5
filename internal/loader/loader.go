package loader

import (
	"io"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/dd"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/gg"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/kinderr"
)

// Load builds a ready-to-run *gg.GG and *dd.DD from a rule file, a
// construction file, and the named section of a problem file. Construction
// postconditions are asserted directly as base predicates (mirroring
// original_source/src/DD/Construction.cpp's construct_no_checks, which
// never re-verifies a postcondition numerically) rather than registered as
// matchable templates, so they are picked up by driver.Run's very first
// synthesis round like any other freshly inserted predicate.
//
// Every failure here is a parse failure (spec §7's InvalidTextualInput):
// the solver never starts. The returned []string is the problem's point
// labels in declaration order, for a caller's own output formatting.
func Load(ruleFile, constructionFile, problemFile io.Reader, problemName string) (*gg.GG, *dd.DD, []string, error) {
	rules, err := ParseRules(ruleFile)
	if err != nil {
		return nil, nil, nil, kinderr.Wrap(kinderr.InvalidTextualInput, err, "rule file")
	}

	constructions, err := ParseConstructions(constructionFile)
	if err != nil {
		return nil, nil, nil, kinderr.Wrap(kinderr.InvalidTextualInput, err, "construction file")
	}

	g := gg.New()
	d := dd.NewDD(nil)
	for _, r := range rules {
		d.AddRule(r)
	}

	points, err := LoadProblem(problemFile, problemName, constructions, g, d)
	if err != nil {
		return nil, nil, nil, kinderr.Wrap(kinderr.InvalidTextualInput, err, "problem file")
	}

	return g, d, points, nil
}
