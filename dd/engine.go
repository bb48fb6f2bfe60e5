package dd

import (
	"sort"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/gg"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

// DD is the deductive database: the rule-file template store, the uniqued
// predicate pool, and the FIFO of predicates inserted since the last drain
// (spec §4.8). Construction-file postconditions are not templates here —
// internal/loader asserts them directly via InsertPredicate as a problem's
// stages run, so Search never needs to match against them.
type DD struct {
	rules      []*Rule
	conclusion *pred.Template

	predicates map[string]*pred.Predicate
	recent     []*pred.Predicate
}

// NewDD builds an empty DD with the given goal conclusion template.
func NewDD(conclusion *pred.Template) *DD {
	return &DD{
		conclusion: conclusion,
		predicates: make(map[string]*pred.Predicate),
	}
}

// SetConclusion replaces d's goal template, for a loader that only learns
// the goal's point bindings after running a problem file's construction
// stages.
func (d *DD) SetConclusion(t *pred.Template) { d.conclusion = t }

// AddRule registers a theorem rule, consulted during Search.
func (d *DD) AddRule(r *Rule) { d.rules = append(d.rules, r) }

// InsertPredicate uniques p by hash: if new, it is recorded and appended to
// the recent-predicates FIFO; if already known, it is dropped. Returns
// whether p was new.
func (d *DD) InsertPredicate(p *pred.Predicate) (bool, error) {
	h, err := p.Hash()
	if err != nil {
		return false, err
	}
	if _, ok := d.predicates[h]; ok {
		return false, nil
	}
	d.predicates[h] = p
	d.recent = append(d.recent, p)

	return true, nil
}

// DrainRecent returns every predicate inserted since the last drain, in
// insertion order, and clears the FIFO.
func (d *DD) DrainRecent() []*pred.Predicate {
	out := d.recent
	d.recent = nil

	return out
}

// Predicate looks up a previously inserted predicate by its hash.
func (d *DD) Predicate(hash string) (*pred.Predicate, bool) {
	p, ok := d.predicates[hash]

	return p, ok
}

// Search runs every registered rule to exhaustion against g's current
// state, inserting every newly derivable predicate. Returns the number of
// genuinely new predicates inserted this call (driver's "no fact was added
// this round" check, spec §4.10).
func (d *DD) Search(g *gg.GG) (int, error) {
	added := 0
	for _, r := range d.rules {
		n, err := d.searchRule(g, r)
		if err != nil {
			return added, err
		}
		added += n
	}

	return added, nil
}

func (d *DD) searchRule(g *gg.GG, r *Rule) (int, error) {
	r.ClearAll()
	added := 0
	var walk func(i int) error
	walk = func(i int) error {
		if i == len(r.Premises) {
			return d.emit(r)
		}
		t := r.Premises[i]
		it := matchTemplate(g, t)
		for {
			ok, more := it.Next()
			if !more {
				return it.Err()
			}
			if ok {
				if err := walk(i + 1); err != nil {
					return err
				}
			}
		}
	}
	before := len(d.recent)
	if err := walk(0); err != nil {
		return added, err
	}
	added = len(d.recent) - before

	return added, nil
}

// emit instantiates r's conclusion under its premises' current bindings and
// inserts it, attaching the supporting premise predicates' hashes as Why.
func (d *DD) emit(r *Rule) error {
	p, ok := r.Conclusion.Instantiate()
	if !ok {
		return nil
	}
	why := make([]string, 0, len(r.Premises))
	for _, t := range r.Premises {
		if t.Kind.IsGuard() {
			continue
		}
		prem, ok := t.Instantiate()
		if !ok {
			continue
		}
		h, err := prem.Hash()
		if err != nil {
			return err
		}
		why = append(why, h)
	}
	sort.Strings(why)
	p.Why = why

	_, err := d.InsertPredicate(p)

	return err
}

// ConclusionPredicate instantiates d's goal template and looks it up in the
// predicate pool, returning the stored Predicate (with its Why ancestry, if
// any) rather than a freshly-built one. Returns false if the template has
// unbound holes or was never inserted into the pool.
func (d *DD) ConclusionPredicate() (*pred.Predicate, bool) {
	if d.conclusion == nil {
		return nil, false
	}
	candidate, ok := d.conclusion.Instantiate()
	if !ok {
		return nil, false
	}
	h, err := candidate.Hash()
	if err != nil {
		return nil, false
	}

	return d.Predicate(h)
}

// AllPredicates returns every predicate d has stored, in deterministic
// hash order — the caller's fallback when there is no single goal ancestry
// to narrow to (an Unsolved run's output).
func (d *DD) AllPredicates() []*pred.Predicate {
	out := make([]*pred.Predicate, 0, len(d.predicates))
	for _, p := range d.predicates {
		out = append(out, p)
	}
	_ = pred.SortByHash(out)

	return out
}

// CheckConclusion reports whether d's goal conclusion template currently
// matches g (spec §4.8.3): true iff any completion of its still-empty
// holes verifies.
func (d *DD) CheckConclusion(g *gg.GG) (bool, error) {
	if d.conclusion == nil {
		return false, nil
	}
	it := matchTemplate(g, d.conclusion)
	for {
		ok, more := it.Next()
		if !more {
			return false, it.Err()
		}
		if ok {
			return true, nil
		}
	}
}
