package dd

import (
	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/gg"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

// verify checks a fully-bound template against g directly (spec §4.8.1's
// "all bound" sub-case). It is also the single source of truth the
// enumerating sub-cases fall back on once they've tried a full binding.
func verify(g *gg.GG, t *pred.Template) (bool, error) {
	pts := func(i int) string { return t.Holes[i].Point() }

	switch t.Kind {
	case pred.CollKind:
		return g.CheckColl(pts(0), pts(1), pts(2))
	case pred.NCollKind:
		ok, err := g.CheckColl(pts(0), pts(1), pts(2))
		return !ok, err
	case pred.CyclicKind:
		return g.CheckCyclic(pts(0), pts(1), pts(2), pts(3))
	case pred.ParaKind:
		return checkLinePairRelation(g, pts(0), pts(1), pts(2), pts(3), g.CheckPara)
	case pred.PerpKind:
		return checkLinePairRelation(g, pts(0), pts(1), pts(2), pts(3), g.CheckPerp)
	case pred.CongKind:
		return g.CheckCong(pts(0), pts(1), pts(2), pts(3))
	case pred.EqAngleKind:
		return checkAngleQuad(g, pts(0), pts(1), pts(2), pts(3), pts(4), pts(5), pts(6), pts(7))
	case pred.EqRatioKind:
		return checkRatioQuad(g, pts(0), pts(1), pts(2), pts(3), pts(4), pts(5), pts(6), pts(7))
	case pred.MidpKind:
		return checkMidpoint(g, pts(0), pts(1), pts(2))
	case pred.ContriKind:
		return checkSameGroup(g, [3]string{pts(0), pts(1), pts(2)}, [3]string{pts(3), pts(4), pts(5)}, false)
	case pred.SimTriKind:
		return checkSameGroup(g, [3]string{pts(0), pts(1), pts(2)}, [3]string{pts(3), pts(4), pts(5)}, true)
	case pred.ConstAngleKind:
		return checkConstAngle(g, pts(0), pts(1), pts(2), pts(3), t.Holes[4].Rational())
	case pred.ConstRatioKind:
		return checkConstRatio(g, pts(0), pts(1), pts(2), pts(3), t.Holes[4].Rational())
	case pred.NEqKind:
		r1, err := g.RootPoint(pts(0))
		if err != nil {
			return false, err
		}
		r2, err := g.RootPoint(pts(1))
		if err != nil {
			return false, err
		}

		return r1 != r2, nil
	default:
		return false, ErrUnknownKind
	}
}

func checkLinePairRelation(g *gg.GG, a, b, c, d string, rel func(l1, l2 string) (bool, error)) (bool, error) {
	l1, ok := g.TryGetLine(a, b)
	if !ok {
		return false, nil
	}
	l2, ok := g.TryGetLine(c, d)
	if !ok {
		return false, nil
	}

	return rel(l1, l2)
}

func lineDirection(g *gg.GG, a, b string) (string, bool, error) {
	l, ok := g.TryGetLine(a, b)
	if !ok {
		return "", false, nil
	}

	return g.LineDirection(l)
}

func checkAngleQuad(g *gg.GG, a1, a2, b1, b2, c1, c2, d1, d2 string) (bool, error) {
	da1, ok, err := lineDirection(g, a1, a2)
	if err != nil || !ok {
		return false, err
	}
	da2, ok, err := lineDirection(g, b1, b2)
	if err != nil || !ok {
		return false, err
	}
	da3, ok, err := lineDirection(g, c1, c2)
	if err != nil || !ok {
		return false, err
	}
	da4, ok, err := lineDirection(g, d1, d2)
	if err != nil || !ok {
		return false, err
	}

	return g.CheckEqAngle(da1, da2, da3, da4)
}

func checkRatioQuad(g *gg.GG, a1, a2, b1, b2, c1, c2, d1, d2 string) (bool, error) {
	la, ok, err := segmentLengthOf(g, a1, a2)
	if err != nil || !ok {
		return false, err
	}
	lb, ok, err := segmentLengthOf(g, b1, b2)
	if err != nil || !ok {
		return false, err
	}
	lc, ok, err := segmentLengthOf(g, c1, c2)
	if err != nil || !ok {
		return false, err
	}
	ld, ok, err := segmentLengthOf(g, d1, d2)
	if err != nil || !ok {
		return false, err
	}

	return g.CheckEqRatio(la, lb, lc, ld)
}

// segmentLengthOf returns the Length currently assigned to the segment
// (p1,p2), without allocating a Segment/Length if none exists yet (verify
// must not mutate GG).
func segmentLengthOf(g *gg.GG, p1, p2 string) (string, bool, error) {
	ok, err := g.CheckCong(p1, p2, p1, p2)
	if err != nil || !ok {
		return "", false, err
	}
	s := g.GetOrAddSegment(p1, p2)
	ln, ok, err := g.SegmentLength(s)
	if err != nil || !ok {
		return "", false, err
	}
	rl, err := g.RootLength(ln)
	if err != nil {
		return "", false, err
	}

	return rl, true, nil
}

func checkMidpoint(g *gg.GG, m, a, b string) (bool, error) {
	coll, err := g.CheckColl(m, a, b)
	if err != nil || !coll {
		return false, err
	}

	return g.CheckCong(m, a, m, b)
}

func checkSameGroup(g *gg.GG, t1, t2 [3]string, similar bool) (bool, error) {
	tr1, ok1 := g.TryGetTriangle(t1)
	tr2, ok2 := g.TryGetTriangle(t2)
	if !ok1 || !ok2 {
		return false, nil
	}
	if similar {
		s1, ok, err := g.TriangleShape(tr1)
		if err != nil || !ok {
			return false, err
		}
		s2, ok, err := g.TriangleShape(tr2)
		if err != nil || !ok {
			return false, err
		}

		return s1 == s2, nil
	}
	d1, ok, err := g.TriangleDimension(tr1)
	if err != nil || !ok {
		return false, err
	}
	d2, ok, err := g.TriangleDimension(tr2)
	if err != nil || !ok {
		return false, err
	}

	return d1 == d2, nil
}

func checkConstAngle(g *gg.GG, a1, a2, b1, b2 string, halfTurns frac.Fraction) (bool, error) {
	d1, ok, err := lineDirection(g, a1, a2)
	if err != nil || !ok {
		return false, err
	}
	d2, ok, err := lineDirection(g, b1, b2)
	if err != nil || !ok {
		return false, err
	}
	ang, ok := g.TryGetAngle(d1, d2)
	if !ok {
		return false, nil
	}
	m, ok, err := g.AngleMeasure(ang)
	if err != nil || !ok {
		return false, err
	}
	v, ok, err := g.MeasureValue(m)
	if err != nil || !ok {
		return false, err
	}

	return v.Equal(halfTurns), nil
}

func checkConstRatio(g *gg.GG, a1, a2, b1, b2 string, value frac.Fraction) (bool, error) {
	la, ok, err := segmentLengthOf(g, a1, a2)
	if err != nil || !ok {
		return false, err
	}
	lb, ok, err := segmentLengthOf(g, b1, b2)
	if err != nil || !ok {
		return false, err
	}
	r, ok := g.TryGetRatio(la, lb)
	if !ok {
		return false, nil
	}
	f, ok, err := g.RatioFraction(r)
	if err != nil || !ok {
		return false, err
	}
	v, ok, err := g.FracNodeValue(f)
	if err != nil || !ok {
		return false, err
	}

	return v.Equal(value), nil
}
