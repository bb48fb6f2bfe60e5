package pred

import "github.com/DavidToh2/GeometryTheoremProver-sub000/frac"

// HoleKind is the tagged-variant discriminator for a Hole's current
// binding, matching spec §9's "Dynamic variant argument" design note: a
// Hole carries one of {Empty, Point, Rational, Literal}.
type HoleKind int

const (
	HoleEmpty HoleKind = iota
	HolePoint
	HoleRational
	HoleLiteral
)

// SetResult is the 3-valued outcome of a Hole binding attempt, used by
// templates to short-circuit unification without an error-returning call at
// every site (spec §9).
type SetResult int

const (
	// SetUnsuccessful: the hole is already bound to a different value.
	SetUnsuccessful SetResult = iota
	// SetUnchanged: the hole was already bound to exactly this value.
	SetUnchanged
	// SetSuccessful: the hole was empty and is now bound.
	SetSuccessful
)

// Hole is one argument slot of a Template: a name plus its current binding.
type Hole struct {
	Name string

	kind     HoleKind
	point    string
	rational frac.Fraction
	literal  string
}

// NewHole returns an unbound hole named name.
func NewHole(name string) *Hole {
	return &Hole{Name: name, kind: HoleEmpty}
}

// Kind reports the hole's current binding variant.
func (h *Hole) Kind() HoleKind { return h.kind }

// Point returns the bound point name (valid only if Kind() == HolePoint).
func (h *Hole) Point() string { return h.point }

// Rational returns the bound rational (valid only if Kind() == HoleRational).
func (h *Hole) Rational() frac.Fraction { return h.rational }

// Literal returns the bound literal (valid only if Kind() == HoleLiteral).
func (h *Hole) Literal() string { return h.literal }

// SetPoint binds h to a Point name. Succeeds if h is empty, or is
// idempotent (SetUnchanged) if already bound to the same point; otherwise
// SetUnsuccessful (a unification clash).
func (h *Hole) SetPoint(name string) SetResult {
	switch h.kind {
	case HoleEmpty:
		h.kind, h.point = HolePoint, name
		return SetSuccessful
	case HolePoint:
		if h.point == name {
			return SetUnchanged
		}
		return SetUnsuccessful
	default:
		return SetUnsuccessful
	}
}

// SetRational binds h to a rational constant, with the same
// empty/unchanged/clash contract as SetPoint.
func (h *Hole) SetRational(v frac.Fraction) SetResult {
	switch h.kind {
	case HoleEmpty:
		h.kind, h.rational = HoleRational, v
		return SetSuccessful
	case HoleRational:
		if h.rational.Equal(v) {
			return SetUnchanged
		}
		return SetUnsuccessful
	default:
		return SetUnsuccessful
	}
}

// SetLiteral binds h to an opaque literal token (e.g. a triangle vertex
// label), with the same empty/unchanged/clash contract as SetPoint.
func (h *Hole) SetLiteral(v string) SetResult {
	switch h.kind {
	case HoleEmpty:
		h.kind, h.literal = HoleLiteral, v
		return SetSuccessful
	case HoleLiteral:
		if h.literal == v {
			return SetUnchanged
		}
		return SetUnsuccessful
	default:
		return SetUnsuccessful
	}
}

// Clear resets h to HoleEmpty, used when a matcher unwinds a trial binding
// after yielding (spec §4.8.1: "bind the free holes, yield, unbind").
func (h *Hole) Clear() {
	h.kind = HoleEmpty
	h.point = ""
	h.rational = frac.Zero()
	h.literal = ""
}

// Clone returns an independent copy of h.
func (h *Hole) Clone() *Hole {
	cp := *h

	return &cp
}
