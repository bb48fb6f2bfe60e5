package ar

import (
	"github.com/DavidToh2/GeometryTheoremProver-sub000/artable"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
)

// registerFree marks every one of vars as known in t if it isn't already, via
// a self-mapped AddFree row. GetAllEqs only ever compares pairs of variables
// that already have an entry in the table, so a variable touched by only one
// assertion (and eliminated as the other side's subject) would otherwise
// never surface as a newly-equal pair once a second assertion links it to a
// third variable.
func registerFree(t *artable.Table, vars ...string) {
	for _, v := range vars {
		t.AddFree(v)
	}
}

// AddPara asserts that root directions d1 and d2 carry the same angle value
// (the lines built on them are parallel), justified by predID.
func (a *AR) AddPara(d1, d2, predID string) bool {
	registerFree(a.angle, d1, d2)

	return a.angle.AddEq3(d1, d2, frac.Zero(), predID)
}

// AddPerp asserts that root directions d1 and d2 differ by a quarter turn.
func (a *AR) AddPerp(d1, d2, predID string) bool {
	registerFree(a.angle, d1, d2)

	return a.angle.AddEq3(d1, d2, perpOffset, predID)
}

// AddConstAngle asserts that root directions d1 and d2 differ by exactly
// halfTurns half-turn units (1 unit == 180 degrees).
func (a *AR) AddConstAngle(d1, d2 string, halfTurns frac.Fraction, predID string) bool {
	registerFree(a.angle, d1, d2)

	return a.angle.AddEq3(d1, d2, halfTurns, predID)
}

// AddEqAngle asserts that the angle from d1 to d2 equals the angle from d3
// to d4.
func (a *AR) AddEqAngle(d1, d2, d3, d4, predID string) bool {
	registerFree(a.angle, d1, d2, d3, d4)

	return a.angle.AddEq4(d1, d2, d3, d4, predID)
}

// AddCong asserts that root lengths l1 and l2 are equal.
func (a *AR) AddCong(l1, l2, predID string) bool {
	registerFree(a.ratio, l1, l2)

	return a.ratio.AddEq2(l1, l2, predID)
}

// AddConstRatio asserts that root length l1 divided by root length l2 equals
// value.
func (a *AR) AddConstRatio(l1, l2 string, value frac.Fraction, predID string) bool {
	registerFree(a.ratio, l1, l2)

	return a.ratio.AddEq3(l1, l2, value, predID)
}

// AddEqRatio asserts that the ratio l1/l2 equals the ratio l3/l4.
func (a *AR) AddEqRatio(l1, l2, l3, l4, predID string) bool {
	registerFree(a.ratio, l1, l2, l3, l4)

	return a.ratio.AddEq4(l1, l2, l3, l4, predID)
}
