package loader

import (
	"fmt"
	"strings"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

// parsePredSpec parses one "<kind> <arg> <arg> …" token into its Kind and
// hole-name tuple. An argument that parses as a frac.Fraction literal (e.g.
// constangle/constratio's trailing rational) is not a placeholder: it is
// assigned a synthesized, rule-unique hole name and recorded in consts, so
// the caller can bind it once via dd.NewRuleWithConstants and never clear
// it again.
func parsePredSpec(spec string, litCounter *int) (pred.Kind, []string, map[string]frac.Fraction, error) {
	fields := strings.Fields(spec)
	if len(fields) < 1 {
		return 0, nil, nil, ErrMalformedLine
	}
	kind, ok := pred.ParseKind(fields[0])
	if !ok {
		return 0, nil, nil, errorf(ErrUnknownPredicateKind, fields[0])
	}

	names := make([]string, 0, len(fields)-1)
	consts := make(map[string]frac.Fraction)
	for _, f := range fields[1:] {
		if v, err := frac.Parse(f); err == nil {
			name := fmt.Sprintf("@lit%d", *litCounter)
			*litCounter++
			consts[name] = v
			names = append(names, name)

			continue
		}
		names = append(names, f)
	}

	return kind, names, consts, nil
}

// errorf wraps base with a ": token" suffix without pulling in pkg/errors'
// formatted constructors for a single extra token.
func errorf(base error, token string) error {
	return fmt.Errorf("%w: %s", base, token)
}
