package traceback

import (
	"fmt"
	"io"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

// WriteOutput renders the §6 output file format: one "Problem: <name>"
// line, one "Predicate:" line per entry of preds (already in the order the
// caller wants — see Trace for the proved case), an optional "Points:"
// block naming every point id in points, then a trailing blank line.
func WriteOutput(w io.Writer, problemName string, preds []*pred.Predicate, points []string) error {
	if _, err := fmt.Fprintf(w, "Problem: %s\n", problemName); err != nil {
		return err
	}
	for _, p := range preds {
		if _, err := fmt.Fprintf(w, "Predicate: %s\n", p.String()); err != nil {
			return err
		}
	}
	if len(points) > 0 {
		if _, err := fmt.Fprint(w, "Points:"); err != nil {
			return err
		}
		for _, pt := range points {
			if _, err := fmt.Fprintf(w, " %s", pt); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)

	return err
}
