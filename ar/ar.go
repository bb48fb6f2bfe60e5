package ar

import (
	"github.com/DavidToh2/GeometryTheoremProver-sub000/artable"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/spmatrix"
)

// angleConstVar and ratioConstVar name the two tables' designated constant
// variables. Angle values are carried in half-turn units throughout this
// package: 1 unit == 180 degrees, so a right angle is 1/2 and a straight
// angle is 1.
const (
	angleConstVar = "pi"
	ratioConstVar = "1"
)

// perpOffset is the half-turn-unit difference between two perpendicular
// directions.
var perpOffset = frac.MustNew(1, 2)

// AR is the algebraic reasoning engine: an angle table keyed by Direction
// root names and a ratio table keyed by Length root names.
type AR struct {
	angle *artable.Table
	ratio *artable.Table
}

// New builds an AR backed by solver for both of its tables' Why queries.
func New(solver spmatrix.Solver) *AR {
	return &AR{
		angle: artable.NewTable(angleConstVar, solver),
		ratio: artable.NewTable(ratioConstVar, solver),
	}
}

// AngleTable exposes the underlying direction-equation table, for callers
// that need direct access (driver's per-round row-count logging).
func (a *AR) AngleTable() *artable.Table { return a.angle }

// RatioTable exposes the underlying length-equation table.
func (a *AR) RatioTable() *artable.Table { return a.ratio }
