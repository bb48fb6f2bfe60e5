package ar

import (
	"github.com/DavidToh2/GeometryTheoremProver-sub000/artable"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/dd"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/expr"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/gg"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

// Derive drains both tables' newly-provable consequences via GetAllEqs,
// translates each one back into a point-based predicate by resolving its
// variables' representative points in g, and inserts it into d. Returns the
// number of genuinely new predicates inserted.
func (a *AR) Derive(g *gg.GG, d *dd.DD) (int, error) {
	added := 0

	n, err := a.deriveAngle(g, d)
	added += n
	if err != nil {
		return added, err
	}

	n, err = a.deriveRatio(g, d)
	added += n
	if err != nil {
		return added, err
	}

	return added, nil
}

func (a *AR) deriveAngle(g *gg.GG, d *dd.DD) (int, error) {
	added := 0
	eqs := a.angle.GetAllEqs()

	for _, e2 := range eqs.Eq2s {
		ok, err := a.emitLinePairPredicate(g, d, pred.ParaKind, e2.V1, e2.V2, eq2Query(e2.V1, e2.V2))
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	for _, e3 := range eqs.Eq3s {
		query := eq3Query(a.angle, e3.V1, e3.V2, e3.F)
		var ok bool
		var err error
		if e3.F.Abs().Equal(perpOffset) {
			ok, err = a.emitLinePairPredicate(g, d, pred.PerpKind, e3.V1, e3.V2, query)
		} else {
			ok, err = a.emitConstPredicate(g, d, pred.ConstAngleKind, e3.V1, e3.V2, e3.F, query, a.directionPoints)
		}
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	for _, e4 := range eqs.Eq4s {
		ok, err := a.emitQuadPredicate(g, d, pred.EqAngleKind, e4.A1, e4.A2, e4.B1, e4.B2,
			eq4Query(e4.A1, e4.A2, e4.B1, e4.B2), a.directionPoints)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}

	return added, nil
}

func (a *AR) deriveRatio(g *gg.GG, d *dd.DD) (int, error) {
	added := 0
	eqs := a.ratio.GetAllEqs()

	for _, e2 := range eqs.Eq2s {
		ok, err := a.emitLengthPairPredicate(g, d, pred.CongKind, e2.V1, e2.V2, eq2Query(e2.V1, e2.V2))
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	for _, e3 := range eqs.Eq3s {
		ok, err := a.emitConstPredicate(g, d, pred.ConstRatioKind, e3.V1, e3.V2, e3.F, eq3Query(a.ratio, e3.V1, e3.V2, e3.F), a.lengthPoints)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	for _, e4 := range eqs.Eq4s {
		ok, err := a.emitQuadPredicate(g, d, pred.EqRatioKind, e4.A1, e4.A2, e4.B1, e4.B2,
			eq4Query(e4.A1, e4.A2, e4.B1, e4.B2), a.lengthPoints)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}

	return added, nil
}

// directionPoints resolves a direction variable (a root name at the time it
// was registered, possibly since merged elsewhere by g) to two of its
// current representative points.
func (a *AR) directionPoints(g *gg.GG, v string) (string, string, bool, error) {
	root, err := g.RootDirection(v)
	if err != nil {
		return "", "", false, err
	}

	return g.RepresentativePointsForDirection(root)
}

// lengthPoints is directionPoints' analog over length variables.
func (a *AR) lengthPoints(g *gg.GG, v string) (string, string, bool, error) {
	root, err := g.RootLength(v)
	if err != nil {
		return "", "", false, err
	}

	return g.RepresentativePointsForLength(root)
}

type pointsOf func(g *gg.GG, v string) (string, string, bool, error)

func (a *AR) emitLinePairPredicate(g *gg.GG, d *dd.DD, kind pred.Kind, v1, v2 string, query expr.Expr) (bool, error) {
	p1a, p1b, ok, err := a.directionPoints(g, v1)
	if err != nil || !ok {
		return false, err
	}
	p2a, p2b, ok, err := a.directionPoints(g, v2)
	if err != nil || !ok {
		return false, err
	}

	return a.insertWithWhy(d, a.angle, pred.New(kind, p1a, p1b, p2a, p2b), query)
}

func (a *AR) emitLengthPairPredicate(g *gg.GG, d *dd.DD, kind pred.Kind, v1, v2 string, query expr.Expr) (bool, error) {
	p1a, p1b, ok, err := a.lengthPoints(g, v1)
	if err != nil || !ok {
		return false, err
	}
	p2a, p2b, ok, err := a.lengthPoints(g, v2)
	if err != nil || !ok {
		return false, err
	}

	return a.insertWithWhy(d, a.ratio, pred.New(kind, p1a, p1b, p2a, p2b), query)
}

func (a *AR) emitConstPredicate(g *gg.GG, d *dd.DD, kind pred.Kind, v1, v2 string, f frac.Fraction, query expr.Expr, resolve pointsOf) (bool, error) {
	p1a, p1b, ok, err := resolve(g, v1)
	if err != nil || !ok {
		return false, err
	}
	p2a, p2b, ok, err := resolve(g, v2)
	if err != nil || !ok {
		return false, err
	}
	table := a.angle
	if kind == pred.ConstRatioKind {
		table = a.ratio
	}

	return a.insertWithWhy(d, table, pred.New(kind, p1a, p1b, p2a, p2b, f.String()), query)
}

func (a *AR) emitQuadPredicate(g *gg.GG, d *dd.DD, kind pred.Kind, a1, a2, b1, b2 string, query expr.Expr, resolve pointsOf) (bool, error) {
	p1a, p1b, ok, err := resolve(g, a1)
	if err != nil || !ok {
		return false, err
	}
	p2a, p2b, ok, err := resolve(g, a2)
	if err != nil || !ok {
		return false, err
	}
	p3a, p3b, ok, err := resolve(g, b1)
	if err != nil || !ok {
		return false, err
	}
	p4a, p4b, ok, err := resolve(g, b2)
	if err != nil || !ok {
		return false, err
	}
	table := a.angle
	if kind == pred.EqRatioKind {
		table = a.ratio
	}

	return a.insertWithWhy(d, table, pred.New(kind, p1a, p1b, p2a, p2b, p3a, p3b, p4a, p4b), query)
}

func (a *AR) insertWithWhy(d *dd.DD, table *artable.Table, p *pred.Predicate, query expr.Expr) (bool, error) {
	why, err := table.Why(query)
	if err != nil {
		return false, err
	}
	p.Why = why

	return d.InsertPredicate(p)
}

// eq2Query, eq3Query and eq4Query mirror artable.Table's internal
// AddEq2/AddEq3/AddEq4 query formulas, so Why is asked about exactly the
// equality GetAllEqs discovered.
func eq2Query(v1, v2 string) expr.Expr {
	return expr.Single(v1, frac.One()).Sub(expr.Single(v2, frac.One()))
}

func eq3Query(t *artable.Table, v1, v2 string, f frac.Fraction) expr.Expr {
	return expr.Single(v1, frac.One()).Sub(expr.Single(v2, frac.One())).Sub(expr.Single(t.ConstVar(), f))
}

func eq4Query(a1, a2, b1, b2 string) expr.Expr {
	return expr.Single(a1, frac.One()).Sub(expr.Single(a2, frac.One())).
		Sub(expr.Single(b1, frac.One())).Add(expr.Single(b2, frac.One()))
}
