package driver

import (
	"github.com/DavidToh2/GeometryTheoremProver-sub000/ar"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/dd"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/gg"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/kinderr"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

// synthesiseFromRecent drains d's recent-predicate FIFO and, for each one,
// folds its consequence into g (merging the entities it implies) and, for
// the angle/ratio-bearing kinds, asserts the corresponding equality into a.
// Returns the number of predicates processed, for the driver's round log.
//
// This is spec §4.10's "GG.synthesise_from_recent(AR)" step. It cannot live
// as a method on gg.GG itself: gg is imported by dd, and dd/ar predicates
// are exactly what this step consumes, so placing it in gg would create an
// import cycle. driver already depends on all three, so it is the natural
// home for the translation.
func synthesiseFromRecent(g *gg.GG, d *dd.DD, a *ar.AR) (int, error) {
	recent := d.DrainRecent()
	for _, p := range recent {
		why, err := p.Hash()
		if err != nil {
			return 0, kinderr.Wrap(kinderr.DDInternal, err, "hash predicate for synthesis")
		}
		if err := applyPredicate(g, a, p, why); err != nil {
			return 0, err
		}
	}

	return len(recent), nil
}

func applyPredicate(g *gg.GG, a *ar.AR, p *pred.Predicate, why string) error {
	switch p.Kind {
	case pred.CollKind:
		return applyColl(g, p.Args[0], p.Args[1], p.Args[2], why)
	case pred.CyclicKind:
		return applyCyclic(g, p.Args[0], p.Args[1], p.Args[2], p.Args[3], why)
	case pred.ParaKind:
		return applyPara(g, a, p.Args[0], p.Args[1], p.Args[2], p.Args[3], why)
	case pred.PerpKind:
		return applyPerp(g, a, p.Args[0], p.Args[1], p.Args[2], p.Args[3], why)
	case pred.CongKind:
		return applyCong(g, a, p.Args[0], p.Args[1], p.Args[2], p.Args[3], why)
	case pred.EqAngleKind:
		return applyEqAngle(g, a, p.Args, why)
	case pred.EqRatioKind:
		return applyEqRatio(g, a, p.Args, why)
	case pred.MidpKind:
		return applyMidp(g, p.Args[0], p.Args[1], p.Args[2], why)
	case pred.ConstAngleKind:
		return applyConstAngle(g, a, p.Args, why)
	case pred.ConstRatioKind:
		return applyConstRatio(g, a, p.Args, why)
	case pred.ContriKind:
		return applySameGroup(g, p.Args, why, false)
	case pred.SimTriKind:
		return applySameGroup(g, p.Args, why, true)
	case pred.NCollKind, pred.NEqKind, pred.SameSideKind, pred.ConvexKind:
		// Guards and configuration witnesses: recorded in DD's predicate
		// pool already; no GG entity merge or AR equality follows from
		// them.
		return nil
	default:
		return kinderr.New(kinderr.DDInternal, "synthesise: unhandled predicate kind "+p.Kind.String())
	}
}

func applyColl(g *gg.GG, p1, p2, p3, why string) error {
	l, _, err := g.GetOrAddLine(p1, p2, why)
	if err != nil {
		return wrapGraph(err)
	}

	return wrapGraph(g.AddPointToLine(l, p3, why))
}

func applyCyclic(g *gg.GG, p1, p2, p3, p4, why string) error {
	c, err := ensureCircleThrough3(g, p1, p2, p3, why)
	if err != nil {
		return wrapGraph(err)
	}

	return wrapGraph(g.AddPointToCircle(c, p4, why))
}

func applyPara(g *gg.GG, a *ar.AR, p1, p2, p3, p4, why string) error {
	d1, d2, err := linePairDirections(g, p1, p2, p3, p4, why)
	if err != nil {
		return err
	}
	if err := g.MergeDirection(d1, d2, why); err != nil {
		return wrapGraph(err)
	}
	a.AddPara(d1, d2, why)

	return nil
}

func applyPerp(g *gg.GG, a *ar.AR, p1, p2, p3, p4, why string) error {
	d1, d2, err := linePairDirections(g, p1, p2, p3, p4, why)
	if err != nil {
		return err
	}
	if err := g.SetPerp(d1, d2, why); err != nil {
		return wrapGraph(err)
	}
	a.AddPerp(d1, d2, why)

	return nil
}

func applyCong(g *gg.GG, a *ar.AR, p1, p2, p3, p4, why string) error {
	ln1, err := ensureSegmentLength(g, g.GetOrAddSegment(p1, p2), why)
	if err != nil {
		return wrapGraph(err)
	}
	ln2, err := ensureSegmentLength(g, g.GetOrAddSegment(p3, p4), why)
	if err != nil {
		return wrapGraph(err)
	}
	if err := g.MergeLength(ln1, ln2, why); err != nil {
		return wrapGraph(err)
	}
	a.AddCong(ln1, ln2, why)

	return nil
}

func applyEqAngle(g *gg.GG, a *ar.AR, args []string, why string) error {
	d1, d2, err := linePairDirections(g, args[0], args[1], args[2], args[3], why)
	if err != nil {
		return err
	}
	d3, d4, err := linePairDirections(g, args[4], args[5], args[6], args[7], why)
	if err != nil {
		return err
	}
	a.AddEqAngle(d1, d2, d3, d4, why)

	return nil
}

func applyEqRatio(g *gg.GG, a *ar.AR, args []string, why string) error {
	ln1, ln2, err := segmentPairLengths(g, args[0], args[1], args[2], args[3], why)
	if err != nil {
		return err
	}
	ln3, ln4, err := segmentPairLengths(g, args[4], args[5], args[6], args[7], why)
	if err != nil {
		return err
	}
	a.AddEqRatio(ln1, ln2, ln3, ln4, why)

	return nil
}

func applyMidp(g *gg.GG, m, p1, p2, why string) error {
	l, _, err := g.GetOrAddLine(p1, p2, why)
	if err != nil {
		return wrapGraph(err)
	}
	if err := g.AddPointToLine(l, m, why); err != nil {
		return wrapGraph(err)
	}
	ln1, err := ensureSegmentLength(g, g.GetOrAddSegment(m, p1), why)
	if err != nil {
		return wrapGraph(err)
	}
	ln2, err := ensureSegmentLength(g, g.GetOrAddSegment(m, p2), why)
	if err != nil {
		return wrapGraph(err)
	}

	return wrapGraph(g.MergeLength(ln1, ln2, why))
}

func applyConstAngle(g *gg.GG, a *ar.AR, args []string, why string) error {
	d1, d2, err := linePairDirections(g, args[0], args[1], args[2], args[3], why)
	if err != nil {
		return err
	}
	f, err := frac.Parse(args[4])
	if err != nil {
		return kinderr.Wrap(kinderr.ARInternal, err, "parse constangle value")
	}
	a.AddConstAngle(d1, d2, f, why)

	return nil
}

func applyConstRatio(g *gg.GG, a *ar.AR, args []string, why string) error {
	ln1, ln2, err := segmentPairLengths(g, args[0], args[1], args[2], args[3], why)
	if err != nil {
		return err
	}
	f, err := frac.Parse(args[4])
	if err != nil {
		return kinderr.Wrap(kinderr.ARInternal, err, "parse constratio value")
	}
	a.AddConstRatio(ln1, ln2, f, why)

	return nil
}

func applySameGroup(g *gg.GG, args []string, why string, similar bool) error {
	t1 := ensureTriangle(g, [3]string{args[0], args[1], args[2]})
	t2 := ensureTriangle(g, [3]string{args[3], args[4], args[5]})

	d1, err := ensureTriangleDimension(g, t1, why)
	if err != nil {
		return wrapGraph(err)
	}
	d2, err := ensureTriangleDimension(g, t2, why)
	if err != nil {
		return wrapGraph(err)
	}
	if !similar {
		return wrapGraph(g.MergeDimension(d1, d2, why))
	}

	s1, err := ensureDimensionShape(g, d1, why)
	if err != nil {
		return wrapGraph(err)
	}
	s2, err := ensureDimensionShape(g, d2, why)
	if err != nil {
		return wrapGraph(err)
	}

	return wrapGraph(g.MergeShape(s1, s2, why))
}

// linePairDirections resolves (and allocates, if necessary) the directions
// of the two lines (p1,p2) and (p3,p4).
func linePairDirections(g *gg.GG, p1, p2, p3, p4, why string) (string, string, error) {
	l1, _, err := g.GetOrAddLine(p1, p2, why)
	if err != nil {
		return "", "", wrapGraph(err)
	}
	l2, _, err := g.GetOrAddLine(p3, p4, why)
	if err != nil {
		return "", "", wrapGraph(err)
	}
	d1, err := ensureDirection(g, l1, why)
	if err != nil {
		return "", "", wrapGraph(err)
	}
	d2, err := ensureDirection(g, l2, why)
	if err != nil {
		return "", "", wrapGraph(err)
	}

	return d1, d2, nil
}

// segmentPairLengths resolves (and allocates, if necessary) the lengths of
// segments (p1,p2) and (p3,p4).
func segmentPairLengths(g *gg.GG, p1, p2, p3, p4, why string) (string, string, error) {
	ln1, err := ensureSegmentLength(g, g.GetOrAddSegment(p1, p2), why)
	if err != nil {
		return "", "", wrapGraph(err)
	}
	ln2, err := ensureSegmentLength(g, g.GetOrAddSegment(p3, p4), why)
	if err != nil {
		return "", "", wrapGraph(err)
	}

	return ln1, ln2, nil
}

func ensureDirection(g *gg.GG, l, why string) (string, error) {
	if d, ok, err := g.LineDirection(l); err != nil {
		return "", err
	} else if ok {
		return d, nil
	}
	d := g.AddDirection()

	return d, g.SetLineDirection(l, d, why)
}

func ensureSegmentLength(g *gg.GG, s, why string) (string, error) {
	if ln, ok, err := g.SegmentLength(s); err != nil {
		return "", err
	} else if ok {
		return ln, nil
	}
	ln := g.AddLength()

	return ln, g.SetSegmentLength(s, ln, why)
}

func ensureTriangle(g *gg.GG, verts [3]string) string {
	if t, ok := g.TryGetTriangle(verts); ok {
		return t
	}

	return g.AddTriangle(verts[0], verts[1], verts[2])
}

func ensureTriangleDimension(g *gg.GG, t, why string) (string, error) {
	if d, ok, err := g.TriangleDimension(t); err != nil {
		return "", err
	} else if ok {
		return d, nil
	}
	d := g.AddDimension()

	return d, g.SetTriangleDimension(t, d, why)
}

func ensureDimensionShape(g *gg.GG, dim, why string) (string, error) {
	if s, ok, err := g.DimensionShape(dim); err != nil {
		return "", err
	} else if ok {
		return s, nil
	}
	s := g.AddShape()

	return s, g.SetDimensionShape(dim, s, why)
}

func ensureCircleThrough3(g *gg.GG, p1, p2, p3, why string) (string, error) {
	for _, c := range g.AllCircles() {
		pts, err := g.CirclePoints(c)
		if err != nil {
			return "", err
		}
		if containsPoint(pts, p1) && containsPoint(pts, p2) {
			return c, g.AddPointToCircle(c, p3, why)
		}
	}

	c := g.AddCircle()
	for _, p := range [...]string{p1, p2, p3} {
		if err := g.AddPointToCircle(c, p, why); err != nil {
			return "", err
		}
	}

	return c, nil
}

func containsPoint(pts []string, p string) bool {
	for _, x := range pts {
		if x == p {
			return true
		}
	}

	return false
}

// wrapGraph tags err (if non-nil) as GGraphInternal, except for
// ErrIncompatiblePerp, which spec §7 classes as a Contradiction rather than
// an ordinary invariant violation.
func wrapGraph(err error) error {
	if err == nil {
		return nil
	}
	if err == gg.ErrIncompatiblePerp {
		return kinderr.Wrap(kinderr.Contradiction, err, "incompatible perpendicular relation")
	}

	return kinderr.Wrap(kinderr.GGraphInternal, err, "graph synthesis")
}
