package loader

import (
	"strings"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
)

// splitTrim splits s on sep and trims whitespace from every piece,
// dropping empty pieces produced by trailing separators.
func splitTrim(s, sep string) []string {
	raw := strings.Split(s, sep)
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r != "" {
			out = append(out, r)
		}
	}

	return out
}

// fieldSet returns s's whitespace-separated fields as a lookup set.
func fieldSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, f := range strings.Fields(s) {
		set[f] = true
	}

	return set
}

// checkArgsDeclared reports ErrMalformedLine if any of names — other than a
// synthesized literal-constant name, which never appears in the point-args
// list — is absent from declared.
func checkArgsDeclared(names []string, consts map[string]frac.Fraction, declared map[string]bool) error {
	for _, n := range names {
		if _, isConst := consts[n]; isConst {
			continue
		}
		if !declared[n] {
			return ErrMalformedLine
		}
	}

	return nil
}

// mergeConstants copies every entry of src into dst.
func mergeConstants(dst, src map[string]frac.Fraction) {
	for k, v := range src {
		dst[k] = v
	}
}
