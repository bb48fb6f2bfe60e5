package artable

import (
	"sort"
	"strings"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/expr"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/spmatrix"
)

// whyColumnCapacity bounds how many non-zero rows a single justification
// column (a +e or -e pair from RegisterExpr) may touch. Asserted equalities
// in this domain involve a handful of variables at most, so a modest fixed
// capacity keeps the matrix dense-enough without per-column reallocation.
const whyColumnCapacity = 8

// Option configures a Table at construction time.
type Option func(*Table)

// WithWhyDisabled short-circuits Why to always return (nil, nil) without
// consulting the LP solver. The specification's worked examples show
// Table::why returning an empty witness ahead of any solver call in at least
// one trace; callers that only need the derived equalities (GetAllEqs) and
// never need a minimal justification can use this to skip the matrix upkeep
// cost entirely.
func WithWhyDisabled() Option {
	return func(t *Table) { t.shortCircuitWhy = true }
}

// Table is the row-reduced system of linear equalities described in spec
// §4.4: a map from variable name to the expression it currently equals,
// maintained so that every variable appearing in an image is
// lexicographically smaller than the key that maps to it (I-Table).
//
// A Table also tracks, internally, the set of (expression, justifying
// predicate) pairs asserted so far, as a sparse matrix of +e/-e columns, so
// that Why can later ask an LP solver which subset of predicates combines
// (by addition) to reconstruct a queried equality.
type Table struct {
	constVar  string
	varToExpr map[string]expr.Expr

	shortCircuitWhy bool

	solver spmatrix.Solver
	arena  *spmatrix.Matrix
	rowOf  map[string]int
	costs  []float64
	deps   []string

	eq2Seen map[string]bool
	eq3Seen map[string]bool

	eq4Group  map[string]string // canonical residual key -> representative pair key
	eq4Member map[string]bool   // pair key -> already folded into a group
	eq4Seen   map[string]bool   // canonical quadruple key -> already emitted
}

// NewTable creates an empty Table. constVar names the designated constant
// variable (spec's "one"): it is exempt from I-Table's ordering constraint
// and never itself becomes a subject. solver is the LP back-end used by Why;
// it may be nil if the Table is constructed with WithWhyDisabled().
func NewTable(constVar string, solver spmatrix.Solver, opts ...Option) *Table {
	arena, _ := spmatrix.NewMatrix(1, whyColumnCapacity)
	t := &Table{
		constVar:  constVar,
		varToExpr: make(map[string]expr.Expr),
		solver:    solver,
		arena:     arena,
		rowOf:     make(map[string]int),
		eq2Seen:   make(map[string]bool),
		eq3Seen:   make(map[string]bool),
		eq4Group:  make(map[string]string),
		eq4Member: make(map[string]bool),
		eq4Seen:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// ConstVar returns the designated constant variable name this Table was
// constructed with.
func (t *Table) ConstVar() string { return t.constVar }

// Known reports whether v currently has an entry in var_to_expr (either a
// substitution target or a free/self-mapped row).
func (t *Table) Known(v string) bool {
	_, ok := t.varToExpr[v]

	return ok
}

// Expr returns the current image of v under var_to_expr, or (nil, false) if
// v has no entry.
func (t *Table) Expr(v string) (expr.Expr, bool) {
	e, ok := t.varToExpr[v]

	return e, ok
}

// AddFree registers v as a free variable, mapped to itself. This is the
// degenerate base case: a self-mapped row does not count as an eliminated
// substitution, so it never violates I-Table (no other variable appears in
// its image).
func (t *Table) AddFree(v string) {
	if _, ok := t.varToExpr[v]; ok {
		return
	}
	t.varToExpr[v] = expr.Single(v, frac.One())
}

// AddExpr folds the equality "e = 0" into the table, maintaining I-Table.
// It returns true if the table's state changed (a new variable became known,
// or an existing free variable was newly eliminated).
//
// e is first reduced by substituting every variable already known in
// var_to_expr, producing r. If r is all-zero, or mentions no variable
// besides constVar, nothing new is implied and the state is unchanged.
// Otherwise r is solved via GetSubject for its lexicographically largest
// variable other than constVar, whether that variable is new or a free
// self-mapping, and the result is installed and propagated into every
// existing row that mentions it. Other variables of r that are not yet in
// the table are left unregistered (they are not added as free variables).
func (t *Table) AddExpr(e expr.Expr) bool {
	r := t.reduce(e)
	if expr.Fix(r).AllZero() {
		return false
	}

	v, solved, ok := r.GetSubject(t.constVar)
	if !ok {
		return false
	}

	t.install(v, solved)

	return true
}

// reduce replaces every known variable in e by its current image, repeating
// until no further substitution applies. Images stored in var_to_expr are
// already fully reduced in terms of lexicographically smaller variables (or
// constVar), so in practice this converges in a single pass over e's
// original variables plus whatever free variables their images introduce.
func (t *Table) reduce(e expr.Expr) expr.Expr {
	r := e.Clone()
	pending := r.Vars()
	visited := make(map[string]bool, len(pending))
	for len(pending) > 0 {
		v := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if visited[v] {
			continue
		}
		visited[v] = true

		img, ok := t.varToExpr[v]
		if !ok || (len(img) == 1 && img.Coeff(v).Equal(frac.One())) {
			// unknown, or a free self-mapping: nothing to substitute.
			continue
		}
		r = r.Replace(v, img)
		for _, nv := range r.Vars() {
			if !visited[nv] {
				pending = append(pending, nv)
			}
		}
	}

	return expr.Strip(r)
}

// install sets var_to_expr[v] = solved and propagates the substitution into
// every other row that mentions v, preserving I-Table.
func (t *Table) install(v string, solved expr.Expr) {
	t.varToExpr[v] = solved
	for other, img := range t.varToExpr {
		if other == v {
			continue
		}
		if _, mentions := img[v]; mentions {
			t.varToExpr[other] = expr.Strip(img.Replace(v, solved))
		}
	}
}

// AddEq2 asserts v1 == v2, registering the equality against predID for Why,
// and folds it into the table via AddExpr.
func (t *Table) AddEq2(v1, v2, predID string) bool {
	e := expr.Single(v1, frac.One()).Sub(expr.Single(v2, frac.One()))
	t.RegisterExpr(e, predID)

	return t.AddExpr(e)
}

// AddEq3 asserts v1 - v2 == f, registering the equality against predID for
// Why, and folds it into the table via AddExpr.
func (t *Table) AddEq3(v1, v2 string, f frac.Fraction, predID string) bool {
	e := expr.Single(v1, frac.One()).Sub(expr.Single(v2, frac.One())).Sub(expr.Single(t.constVar, f))
	t.RegisterExpr(e, predID)

	return t.AddExpr(e)
}

// AddEq4 asserts (a1 - a2) == (b1 - b2), registering the equality against
// predID for Why, and folds it into the table via AddExpr.
func (t *Table) AddEq4(a1, a2, b1, b2, predID string) bool {
	e := expr.Single(a1, frac.One()).Sub(expr.Single(a2, frac.One())).
		Sub(expr.Single(b1, frac.One())).Add(expr.Single(b2, frac.One()))
	t.RegisterExpr(e, predID)

	return t.AddExpr(e)
}

// GetAllEqs enumerates every unordered pair of known variables (excluding
// constVar), classifies the reduced difference of their images, and returns
// the consequences — equalities, constant offsets, and quadruple links —
// that have not previously been surfaced by a call to GetAllEqs.
//
// Per spec §4.4, only eq_4 links are deduplicated by grouping pairs sharing
// a residual expression into a star rooted at the first pair seen for that
// residual, emitting a new 4-tuple only when a pair joins an existing
// group's representative for the first time. eq_2 and eq_3 pairs are
// reported at most once each via flat seen-sets.
func (t *Table) GetAllEqs() AllEqs {
	var out AllEqs

	vars := make([]string, 0, len(t.varToExpr))
	for v := range t.varToExpr {
		if v != t.constVar {
			vars = append(vars, v)
		}
	}
	sort.Strings(vars)

	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			v1, v2 := vars[i], vars[j]
			diff := expr.Fix(expr.Strip(t.varToExpr[v1].Sub(t.varToExpr[v2])))
			key := pairKey(v1, v2)

			switch {
			case diff.AllZero():
				if !t.eq2Seen[key] {
					t.eq2Seen[key] = true
					out.Eq2s = append(out.Eq2s, Eq2{V1: v1, V2: v2})
				}
			case isConstOnly(diff, t.constVar):
				if !t.eq3Seen[key] {
					t.eq3Seen[key] = true
					out.Eq3s = append(out.Eq3s, Eq3{V1: v1, V2: v2, F: diff.Coeff(t.constVar)})
				}
			default:
				t.foldEq4(v1, v2, diff, key, &out)
			}
		}
	}

	return out
}

// foldEq4 folds the pair (v1, v2), whose residual is diff, into the
// star-topology grouping of equal residuals, emitting a new 4-tuple when it
// links to an already-established group representative for the first time.
func (t *Table) foldEq4(v1, v2 string, diff expr.Expr, key string, out *AllEqs) {
	if t.eq4Member[key] {
		return
	}

	rkey := residualKey(diff)
	rep, exists := t.eq4Group[rkey]
	t.eq4Member[key] = true

	if !exists {
		t.eq4Group[rkey] = key
		return
	}

	a1, a2 := unpackPair(rep)
	qkey := quadKey(a1, a2, v1, v2)
	if t.eq4Seen[qkey] {
		return
	}
	t.eq4Seen[qkey] = true
	out.Eq4s = append(out.Eq4s, Eq4{A1: a1, A2: a2, B1: v1, B2: v2})
}

// RegisterExpr appends the equality "e = 0" to the internal justification
// matrix as a +e/-e column pair, attributing both columns to predID. Every
// variable appearing in e that has not yet been seen is assigned a fresh
// matrix row.
func (t *Table) RegisterExpr(e expr.Expr, predID string) {
	if t.shortCircuitWhy {
		return
	}

	for _, v := range e.Vars() {
		if _, ok := t.rowOf[v]; !ok {
			row := len(t.rowOf)
			if row >= t.arena.Rows() {
				t.arena.ExtendRows(row - t.arena.Rows() + 1)
			}
			t.rowOf[v] = row
		}
	}

	pos := make(map[int]float64, len(e))
	neg := make(map[int]float64, len(e))
	for v, c := range e {
		row := t.rowOf[v]
		pos[row] = c.ToFloat()
		neg[row] = c.Neg().ToFloat()
	}

	t.arena.ExtendColumnFromMap(pos)
	t.arena.ExtendColumnFromMap(neg)

	t.costs = append(t.costs, 1.0, 1.0)
	t.deps = append(t.deps, predID, predID)
}

// Why asks which subset of previously-registered predicates, combined by
// addition, reconstructs the equality "e = 0". It returns the deduplicated,
// sorted list of predicate IDs involved, or (nil, nil) if the LP reports
// infeasibility (spec's "report empty witness" contract — not a Go error).
//
// Why returns ErrUnknownVariable if e mentions a variable that was never
// passed to RegisterExpr: per spec §7 this is an ARInternal condition, fatal
// to the current solve, distinct from ordinary LP infeasibility.
func (t *Table) Why(e expr.Expr) ([]string, error) {
	if t.shortCircuitWhy {
		return nil, nil
	}

	b := make([]float64, t.arena.Rows())
	for v, c := range e {
		row, ok := t.rowOf[v]
		if !ok {
			return nil, ErrUnknownVariable
		}
		b[row] = c.ToFloat()
	}

	x, err := t.solver.Solve(t.arena, b, t.costs)
	if err == spmatrix.ErrInfeasible {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(x))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		seen[t.deps[i]] = true
	}

	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)

	return out, nil
}

func pairKey(v1, v2 string) string {
	if v1 <= v2 {
		return v1 + "\x00" + v2
	}

	return v2 + "\x00" + v1
}

func unpackPair(key string) (string, string) {
	parts := strings.SplitN(key, "\x00", 2)

	return parts[0], parts[1]
}

// residualKey gives a canonical string encoding of a reduced expression,
// suitable as a map key for grouping pairs with an identical residual.
func residualKey(e expr.Expr) string {
	var b strings.Builder
	for _, v := range e.Vars() {
		b.WriteString(v)
		b.WriteByte('=')
		b.WriteString(e[v].String())
		b.WriteByte(';')
	}

	return b.String()
}

// isConstOnly reports whether e's only possible non-zero coefficient is on
// constVar (i.e. e - e[constVar]*constVar is all-zero).
func isConstOnly(e expr.Expr, constVar string) bool {
	for v, c := range e {
		if v != constVar && !c.IsZero() {
			return false
		}
	}

	return true
}

// quadKey canonicalizes a 4-tuple under the symmetry group stated in spec
// §4.4 — (a1,a2,b1,b2), (a2,a1,b2,b1), (b1,b2,a1,a2), (b2,b1,a2,a1) all name
// the same link — by choosing the lexicographically smallest of the four
// encodings as the dedup key.
func quadKey(a1, a2, b1, b2 string) string {
	variants := [][4]string{
		{a1, a2, b1, b2},
		{a2, a1, b2, b1},
		{b1, b2, a1, a2},
		{b2, b1, a2, a1},
	}
	best := ""
	for i, v := range variants {
		enc := v[0] + "\x00" + v[1] + "\x00" + v[2] + "\x00" + v[3]
		if i == 0 || enc < best {
			best = enc
		}
	}

	return best
}
