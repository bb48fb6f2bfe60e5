// Command geoprove runs the prover end to end: it loads a rule file, a
// construction file, and one named section of a problem file, drives the
// proof loop, and writes the outcome to an output file (spec §6).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/ar"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/dd"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/driver"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/internal/loader"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/internal/traceback"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/kinderr"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/spmatrix"
)

// defaultMaxSteps bounds the proof loop's round count (driver.Run's
// maxSteps). It is not a spec-level flag: §6's CLI table lists five flags
// and no round budget, so the bound lives here as a runaway guard rather
// than something a caller tunes per invocation.
const defaultMaxSteps = 10_000

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("geoprove", flag.ContinueOnError)

	var problemFile, problemName, ruleFile, constructionFile, outputFile string
	fs.StringVar(&problemFile, "f", "", "problem file path (required)")
	fs.StringVar(&problemFile, "problem_file", "", "problem file path (required)")
	fs.StringVar(&problemName, "p", "", "problem section name (required)")
	fs.StringVar(&problemName, "problem_name", "", "problem section name (required)")
	fs.StringVar(&ruleFile, "r", "rules.txt", "rule file path")
	fs.StringVar(&ruleFile, "rule_file", "rules.txt", "rule file path")
	fs.StringVar(&constructionFile, "c", "constructions.txt", "construction file path")
	fs.StringVar(&constructionFile, "construction_file", "constructions.txt", "construction file path")
	fs.StringVar(&outputFile, "o", "", "output file path (required)")
	fs.StringVar(&outputFile, "output_file", "", "output file path (required)")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if problemFile == "" || problemName == "" || outputFile == "" {
		fmt.Fprintln(fs.Output(), "geoprove: -f/--problem_file, -p/--problem_name, and -o/--output_file are required")

		return 1
	}

	log := logrus.WithFields(logrus.Fields{
		"problem_file": problemFile,
		"problem_name": problemName,
	})

	if err := solve(ruleFile, constructionFile, problemFile, problemName, outputFile); err != nil {
		log.WithError(err).Error("geoprove: failed")

		return 1
	}

	return 0
}

func solve(ruleFile, constructionFile, problemFile, problemName, outputFile string) error {
	rf, err := os.Open(ruleFile)
	if err != nil {
		return kinderr.Wrap(kinderr.InvalidTextualInput, err, "opening rule file")
	}
	defer rf.Close()

	cf, err := os.Open(constructionFile)
	if err != nil {
		return kinderr.Wrap(kinderr.InvalidTextualInput, err, "opening construction file")
	}
	defer cf.Close()

	pf, err := os.Open(problemFile)
	if err != nil {
		return kinderr.Wrap(kinderr.InvalidTextualInput, err, "opening problem file")
	}
	defer pf.Close()

	g, d, points, err := loader.Load(rf, cf, pf, problemName)
	if err != nil {
		return err
	}

	a := ar.New(spmatrix.NewDefaultSolver())

	verdict, err := driver.Run(g, d, a, defaultMaxSteps)
	if err != nil {
		return err
	}

	of, err := os.Create(outputFile)
	if err != nil {
		return kinderr.Wrap(kinderr.InvalidTextualInput, err, "creating output file")
	}
	defer of.Close()

	return writeResult(of, problemName, verdict, d, points)
}

// writeResult renders verdict's outcome: on Proved, the goal's derivation
// ancestry (internal/traceback.Trace); on Unsolved, every predicate d has
// derived so far, since there is no single conclusion chain to narrow to.
func writeResult(w *os.File, problemName string, verdict driver.Verdict, d *dd.DD, points []string) error {
	if verdict == driver.Unsolved {
		return traceback.WriteOutput(w, problemName, d.AllPredicates(), points)
	}

	goal, ok := d.ConclusionPredicate()
	if !ok {
		return traceback.WriteOutput(w, problemName, d.AllPredicates(), points)
	}

	chain, err := traceback.Trace(d, goal)
	if err != nil {
		return err
	}

	return traceback.WriteOutput(w, problemName, chain, points)
}
