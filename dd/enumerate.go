package dd

import (
	"github.com/DavidToh2/GeometryTheoremProver-sub000/gg"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

// enumerableHoles returns the indices of t's Point-kind holes that are
// still empty and therefore candidates for enumeration. constangle/
// constratio's trailing Rational hole is never a candidate: it is bound
// once, from the rule file's literal degree/ratio, before matching starts.
func enumerableHoles(t *pred.Template) []int {
	var idxs []int
	last := len(t.Holes) - 1
	for i, h := range t.Holes {
		if h.Kind() != pred.HoleEmpty {
			continue
		}
		if (t.Kind == pred.ConstAngleKind || t.Kind == pred.ConstRatioKind) && i == last {
			continue
		}
		idxs = append(idxs, i)
	}

	return idxs
}

// matchIter drives one matchTemplate enumeration. Next mirrors bufio.
// Scanner's Scan/Err split: it returns (ok, more) for each completion
// tried, false,false ends the enumeration either because every completion
// was exhausted or because a matcher errored, and Err distinguishes the
// two — the caller must check it once Next returns false,false.
type matchIter struct {
	next func() (bool, bool)
	err  error
}

func (m *matchIter) Next() (bool, bool) { return m.next() }
func (m *matchIter) Err() error         { return m.err }

// matchTemplate enumerates every way of completing t's still-empty Point
// holes against g's current points, yielding true each time the completed
// template verifies (spec §4.8.1's uniform bound/partial/unbound dispatch,
// collapsed into one generate-and-test search: candidates are proposed via
// a plain cartesian walk over AllPoints() rather than a per-kind pivot
// optimization — see DESIGN.md). Between yields, and once exhausted, every
// hole this call bound is cleared, so t's shared holes are left exactly as
// found for whichever caller enumerates next.
//
// Guard kinds (ncoll, neq) with any still-empty enumerable hole are treated
// as vacuously satisfied (yielded once, no binding attempted): spec §4.8.1
// says guards act as filters evaluated only once their arguments are
// otherwise bound by the clause's other premises.
//
// A verify error (e.g. an unrecognized premise kind reaching the matcher
// dispatch) stops enumeration immediately and is surfaced through Err,
// rather than being treated as a failed match — spec §7's propagation
// policy has matcher errors unwind the whole search.
func matchTemplate(g *gg.GG, t *pred.Template) *matchIter {
	idxs := enumerableHoles(t)
	m := &matchIter{}

	if t.Kind.IsGuard() && len(idxs) > 0 {
		done := false
		m.next = func() (bool, bool) {
			if done {
				return false, false
			}
			done = true

			return true, true
		}

		return m
	}

	if len(idxs) == 0 {
		done := false
		m.next = func() (bool, bool) {
			if done {
				return false, false
			}
			done = true
			ok, err := verify(g, t)
			if err != nil {
				m.err = err

				return false, false
			}

			return ok, true
		}

		return m
	}

	points := g.AllPoints()
	n := len(idxs)
	counters := make([]int, n)
	exhausted := len(points) == 0
	started := false

	clear := func() {
		for _, idx := range idxs {
			t.Holes[idx].Clear()
		}
	}

	m.next = func() (bool, bool) {
		for {
			if exhausted {
				clear()

				return false, false
			}
			if started {
				pos := n - 1
				for pos >= 0 {
					counters[pos]++
					if counters[pos] < len(points) {
						break
					}
					counters[pos] = 0
					pos--
				}
				if pos < 0 {
					exhausted = true
					clear()

					return false, false
				}
			}
			started = true

			clear()
			for k, idx := range idxs {
				t.Holes[idx].SetPoint(points[counters[k]])
			}
			ok, err := verify(g, t)
			if err != nil {
				m.err = err
				exhausted = true
				clear()

				return false, false
			}
			if ok {
				return true, true
			}
		}
	}

	return m
}
