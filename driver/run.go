package driver

import (
	"github.com/sirupsen/logrus"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/ar"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/dd"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/gg"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/kinderr"
)

// Run drives the top-level proof loop (spec §4.10): alternating rule search
// and algebraic derivation, each folded back into g and a, until the goal
// conclusion matches or a round adds nothing new. maxSteps bounds the
// number of rounds; it is not itself a correctness parameter, only a
// runaway guard for rule sets that never reach a fixpoint.
//
// A Contradiction (an invariant violation surfaced while folding a
// derived predicate back into g, e.g. an incompatible perpendicular
// assertion) aborts the loop immediately and is returned as the error,
// never as a Verdict.
func Run(g *gg.GG, d *dd.DD, a *ar.AR, maxSteps int) (Verdict, error) {
	for step := 0; step < maxSteps; step++ {
		log := logrus.WithField("round", step)

		searched, err := d.Search(g)
		if err != nil {
			return Unsolved, kinderr.Wrap(kinderr.DDInternal, err, "rule search")
		}
		synthSearched, err := synthesiseFromRecent(g, d, a)
		if err != nil {
			return Unsolved, err
		}

		derived, err := a.Derive(g, d)
		if err != nil {
			return Unsolved, kinderr.Wrap(kinderr.ARInternal, err, "algebraic derivation")
		}
		synthDerived, err := synthesiseFromRecent(g, d, a)
		if err != nil {
			return Unsolved, err
		}

		log.WithFields(logrus.Fields{
			"rule_matches": searched,
			"synth_rules":  synthSearched,
			"ar_derived":   derived,
			"synth_ar":     synthDerived,
		}).Debug("round complete")

		proved, err := d.CheckConclusion(g)
		if err != nil {
			return Unsolved, kinderr.Wrap(kinderr.DDInternal, err, "check conclusion")
		}
		if proved {
			return Proved, nil
		}

		if searched == 0 && derived == 0 {
			return Unsolved, nil
		}
	}

	return Unsolved, nil
}
