package gg

import "sort"

// sortedSet returns the keys of a string-set map in ascending order, for
// deterministic iteration wherever this package walks a root's collection
// (spec §5's ordering guarantee).
func sortedSet(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
