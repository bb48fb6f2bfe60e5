package pred

// Template is a predicate shape awaiting bindings: a Kind plus an ordered
// sequence of Holes. Per spec §9's Open Question resolution, Template has a
// single constructor (NewTemplate) built from an explicit hole list — the
// source's second, overlapping constructor is not carried forward.
type Template struct {
	Kind  Kind
	Holes []*Hole
}

// NewTemplate builds a Template for kind with one fresh, unbound Hole per
// name in holeNames.
func NewTemplate(kind Kind, holeNames ...string) *Template {
	holes := make([]*Hole, len(holeNames))
	for i, name := range holeNames {
		holes[i] = NewHole(name)
	}

	return &Template{Kind: kind, Holes: holes}
}

// Clone returns a deep copy of t, independent for binding.
func (t *Template) Clone() *Template {
	holes := make([]*Hole, len(t.Holes))
	for i, h := range t.Holes {
		holes[i] = h.Clone()
	}

	return &Template{Kind: t.Kind, Holes: holes}
}

// FilledMask returns a bitmask with bit i set iff Holes[i] is bound — the
// dispatch key matchers use to pick the all-bound / some-bound / none-bound
// sub-case (spec §4.8.1).
func (t *Template) FilledMask() uint64 {
	var mask uint64
	for i, h := range t.Holes {
		if h.Kind() != HoleEmpty {
			mask |= 1 << uint(i)
		}
	}

	return mask
}

// AllBound reports whether every hole in t is bound.
func (t *Template) AllBound() bool {
	for _, h := range t.Holes {
		if h.Kind() == HoleEmpty {
			return false
		}
	}

	return true
}

// HoleByName returns the hole named name, or nil if t has no such hole.
func (t *Template) HoleByName(name string) *Hole {
	for _, h := range t.Holes {
		if h.Name == name {
			return h
		}
	}

	return nil
}

// Instantiate renders t as a Predicate using each bound hole's Point name
// (the form needed once every hole is bound to a Point, as conclusion
// templates are per spec §4.8.2). Returns false if any hole is not bound to
// a Point.
func (t *Template) Instantiate() (*Predicate, bool) {
	args := make([]string, len(t.Holes))
	for i, h := range t.Holes {
		if h.Kind() != HolePoint {
			return nil, false
		}
		args[i] = h.Point()
	}

	return New(t.Kind, args...), true
}

// Clause is an ordered list of templates sharing one argument name-space:
// the precondition list of a rule or construction (spec §4.7).
type Clause []*Template
