package expr

import (
	"sort"
	"strings"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
)

// Expr is a linear combination of named variables with exact rational
// coefficients: Σ coeff[v]·v. A well-formed Expr never stores an explicit
// zero coefficient (see Strip); the zero Expr is represented by an empty (or
// nil) map.
type Expr map[string]frac.Fraction

// New builds an Expr from a coefficient map, cloning it and stripping any
// zero entries so the result is always well-formed.
func New(coeffs map[string]frac.Fraction) Expr {
	e := make(Expr, len(coeffs))
	for v, c := range coeffs {
		if !c.IsZero() {
			e[v] = c
		}
	}

	return e
}

// Single builds the one-term Expr {v: coeff}.
func Single(v string, coeff frac.Fraction) Expr {
	if coeff.IsZero() {
		return Expr{}
	}

	return Expr{v: coeff}
}

// Clone returns an independent copy of e.
func (e Expr) Clone() Expr {
	out := make(Expr, len(e))
	for v, c := range e {
		out[v] = c
	}

	return out
}

// Vars returns e's variable names in ascending lexicographic order — the
// iteration order mandated throughout the specification for determinism.
func (e Expr) Vars() []string {
	out := make([]string, 0, len(e))
	for v := range e {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Coeff returns the coefficient of v in e (zero if absent).
func (e Expr) Coeff(v string) frac.Fraction {
	if c, ok := e[v]; ok {
		return c
	}

	return frac.Zero()
}

// Strip removes entries whose coefficient is exactly zero. Coefficients in
// this package are always exact Fractions (never approximate), so "magnitude
// < TOL" from the specification's floating-point formulation collapses to
// "is exactly zero" here; Strip exists chiefly so every entry point into the
// algebra stays well-formed even after Add/Sub cancellation.
func Strip(e Expr) Expr {
	out := make(Expr, len(e))
	for v, c := range e {
		if !c.IsZero() {
			out[v] = c
		}
	}

	return out
}

// Fix snaps each coefficient to its nearest rational within tolerance. Since
// every coefficient in this package is already an exact frac.Fraction (never
// a float), there is nothing to snap — Fix is an identity pass-through,
// retained so callers that mirror the specification's strip-then-fix
// pipeline (e.g. Table.getAllEqs) compile unchanged regardless of which
// representation backs Expr.
func Fix(e Expr) Expr {
	return e.Clone()
}

// AllZero reports whether every coefficient in e is zero (equivalently,
// whether Strip(e) is empty).
func (e Expr) AllZero() bool {
	for _, c := range e {
		if !c.IsZero() {
			return false
		}
	}

	return true
}

// Add returns e + o, pointwise on coefficients.
func (e Expr) Add(o Expr) Expr {
	out := e.Clone()
	for v, c := range o {
		out[v] = out.Coeff(v).Add(c)
	}

	return Strip(out)
}

// Sub returns e - o, pointwise on coefficients.
func (e Expr) Sub(o Expr) Expr {
	out := e.Clone()
	for v, c := range o {
		out[v] = out.Coeff(v).Sub(c)
	}

	return Strip(out)
}

// Scale returns e with every coefficient multiplied by k.
func (e Expr) Scale(k frac.Fraction) Expr {
	if k.IsZero() {
		return Expr{}
	}
	out := make(Expr, len(e))
	for v, c := range e {
		out[v] = c.Mul(k)
	}

	return out
}

// Div returns e with every coefficient divided by k.
// Fails with ErrZeroScale if k is zero.
func (e Expr) Div(k frac.Fraction) (Expr, error) {
	if k.IsZero() {
		return nil, ErrZeroScale
	}
	out := make(Expr, len(e))
	for v, c := range e {
		q, err := c.Div(k)
		if err != nil {
			return nil, err
		}
		out[v] = q
	}

	return out, nil
}

// Neg returns -e.
func (e Expr) Neg() Expr {
	return e.Scale(frac.MustNew(-1, 1))
}

// Replace substitutes variable v throughout e by the expression sub,
// returning a new Expr. If v does not occur in e, Replace returns a clone of
// e unchanged.
func (e Expr) Replace(v string, sub Expr) Expr {
	c, ok := e[v]
	if !ok {
		return e.Clone()
	}
	out := e.Clone()
	delete(out, v)
	for sv, sc := range sub {
		out[sv] = out.Coeff(sv).Add(sc.Mul(c))
	}

	return Strip(out)
}

// GetSubject implements the lexicographically-largest-variable pivot rule
// (spec §4.3, required by I-Table in the artable package): given
// Σ vᵢ·cᵢ = 0 (i.e. e, interpreted as "= 0"), return the lexicographically
// largest variable other than the designated constant variable constVar,
// solved for: that variable equals -(the rest of e)/its own coefficient.
//
// Returns ok=false if e has no variable other than constVar (there is
// nothing to make a subject of).
func (e Expr) GetSubject(constVar string) (v string, solved Expr, ok bool) {
	candidate := ""
	for name, c := range e {
		if name == constVar || c.IsZero() {
			continue
		}
		if candidate == "" || strings.Compare(name, candidate) > 0 {
			candidate = name
		}
	}
	if candidate == "" {
		return "", nil, false
	}

	coeff := e[candidate]
	rest := e.Clone()
	delete(rest, candidate)
	// coeff is non-zero by construction above, so Reciprocal cannot fail.
	recip, _ := coeff.Neg().Reciprocal()
	solved = rest.Scale(recip)

	return candidate, Strip(solved), true
}

// String renders e as a sorted, human-readable sum of terms, e.g.
// "2*a + 1/3*b - one".
func (e Expr) String() string {
	vars := e.Vars()
	if len(vars) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, v := range vars {
		c := e[v]
		if i > 0 {
			if c.Num < 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		} else if c.Num < 0 {
			b.WriteString("-")
		}
		mag := c.Abs()
		if mag.Equal(frac.One()) {
			b.WriteString(v)
		} else {
			b.WriteString(mag.String())
			b.WriteString("*")
			b.WriteString(v)
		}
	}

	return b.String()
}
