package artable

import "github.com/DavidToh2/GeometryTheoremProver-sub000/frac"

// Eq2 is a newly-discovered pair of variables with provably equal value
// (var_to_expr[V1] - var_to_expr[V2] strips to zero).
type Eq2 struct {
	V1, V2 string
}

// Eq3 is a newly-discovered pair of variables whose difference is the exact
// rational constant F (var_to_expr[V1] - var_to_expr[V2] strips to F·one).
type Eq3 struct {
	V1, V2 string
	F      frac.Fraction
}

// Eq4 is a newly-discovered link between two pairs of variables whose
// differences coincide: (A1 - A2) == (B1 - B2). The pair (A1, A2) is the
// pre-existing representative of the equal-residual group that (B1, B2) was
// just found to belong to (spec §4.4's "minimal link set").
type Eq4 struct {
	A1, A2, B1, B2 string
}

// AllEqs is the result of one GetAllEqs pass: every new consequence
// discovered since the Table was last asked, bucketed by kind.
type AllEqs struct {
	Eq2s []Eq2
	Eq3s []Eq3
	Eq4s []Eq4
}
