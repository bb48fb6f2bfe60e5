package gg

import "github.com/DavidToh2/GeometryTheoremProver-sub000/frac"

// SetLineDirection assigns root direction d to root line l. If l already
// carries a (possibly different) direction, the two directions are merged
// instead of overwritten, so a line keeps at most one direction class.
func (g *GG) SetLineDirection(l, d, why string) error {
	rl, err := g.lines.Find(l)
	if err != nil {
		return err
	}
	rd, err := g.directions.Find(d)
	if err != nil {
		return err
	}
	lp, err := g.lines.Root(rl)
	if err != nil {
		return err
	}
	if lp.direction == "" {
		lp.direction = rd
		lp.directionWhy = why
		dp, err := g.directions.Root(rd)
		if err != nil {
			return err
		}
		dp.rootLines[rl] = true

		return nil
	}
	if lp.direction == rd {
		return nil
	}

	return g.MergeDirection(lp.direction, rd, why)
}

// SetSegmentLength assigns root length ln to root segment s, merging
// lengths instead of overwriting if s already carries one. This is how a
// cong fact (two segments equal) is recorded: callers resolve or allocate
// both segments' Length nodes and call this once per side, letting the
// merge unify them into one congruence class.
func (g *GG) SetSegmentLength(s, ln, why string) error {
	rs, err := g.segments.Find(s)
	if err != nil {
		return err
	}
	rl, err := g.lengths.Find(ln)
	if err != nil {
		return err
	}
	sp, err := g.segments.Root(rs)
	if err != nil {
		return err
	}
	if sp.length == "" {
		sp.length = rl
		lp, err := g.lengths.Root(rl)
		if err != nil {
			return err
		}
		lp.segments[rs] = true

		return nil
	}
	if sp.length == rl {
		return nil
	}

	return g.MergeLength(sp.length, rl, why)
}

// MergeLength merges src into dst, unioning segment membership.
func (g *GG) MergeLength(dst, src, why string) error {
	rd, err := g.lengths.Find(dst)
	if err != nil {
		return err
	}
	rs, err := g.lengths.Find(src)
	if err != nil {
		return err
	}
	if rd == rs {
		return nil
	}

	srcPayload, err := g.lengths.Root(rs)
	if err != nil {
		return err
	}
	srcSegments := sortedSet(srcPayload.segments)

	if err := g.lengths.Union(rd, rs, why, func(ld, ls *Length) {
		for seg := range ls.segments {
			ld.segments[seg] = true
		}
	}); err != nil {
		return err
	}

	for _, segName := range srcSegments {
		sr, err := g.segments.Find(segName)
		if err != nil {
			continue
		}
		sp, err := g.segments.Root(sr)
		if err != nil {
			continue
		}
		sp.length = rd
	}

	return nil
}

// SetAngleMeasure assigns root measure m to root angle a, merging measures
// instead of overwriting if a already carries one.
func (g *GG) SetAngleMeasure(a, m, why string) error {
	ra, err := g.angles.Find(a)
	if err != nil {
		return err
	}
	rm, err := g.measures.Find(m)
	if err != nil {
		return err
	}
	ap, err := g.angles.Root(ra)
	if err != nil {
		return err
	}
	if ap.measure == "" {
		ap.measure = rm
		mp, err := g.measures.Root(rm)
		if err != nil {
			return err
		}
		mp.angles[ra] = true

		return nil
	}
	if ap.measure == rm {
		return nil
	}

	return g.MergeMeasure(ap.measure, rm, why)
}

// SetRatioFraction assigns root fraction node f to root ratio r, merging
// fraction nodes instead of overwriting if r already carries one.
func (g *GG) SetRatioFraction(r, f, why string) error {
	rr, err := g.ratios.Find(r)
	if err != nil {
		return err
	}
	rf, err := g.fracNodes.Find(f)
	if err != nil {
		return err
	}
	rp, err := g.ratios.Root(rr)
	if err != nil {
		return err
	}
	if rp.fraction == "" {
		rp.fraction = rf
		fp, err := g.fracNodes.Root(rf)
		if err != nil {
			return err
		}
		fp.ratios[rr] = true

		return nil
	}
	if rp.fraction == rf {
		return nil
	}

	return g.MergeFracNode(rp.fraction, rf, why)
}

// SetTriangleDimension assigns root dimension d to root triangle t, merging
// dimensions instead of overwriting if t already carries one.
func (g *GG) SetTriangleDimension(t, d, why string) error {
	rt, err := g.triangles.Find(t)
	if err != nil {
		return err
	}
	rd, err := g.dimensions.Find(d)
	if err != nil {
		return err
	}
	tp, err := g.triangles.Root(rt)
	if err != nil {
		return err
	}
	if tp.dim == "" {
		tp.dim = rd
		dp, err := g.dimensions.Root(rd)
		if err != nil {
			return err
		}
		dp.triangles[rt] = true

		return nil
	}
	if tp.dim == rd {
		return nil
	}

	return g.MergeDimension(tp.dim, rd, why)
}

// SetDimensionShape assigns root shape s to root dimension d, merging shapes
// instead of overwriting if d already carries one.
func (g *GG) SetDimensionShape(d, s, why string) error {
	rd, err := g.dimensions.Find(d)
	if err != nil {
		return err
	}
	rs, err := g.shapes.Find(s)
	if err != nil {
		return err
	}
	dp, err := g.dimensions.Root(rd)
	if err != nil {
		return err
	}
	if dp.shape == "" {
		dp.shape = rs
		sp, err := g.shapes.Root(rs)
		if err != nil {
			return err
		}
		sp.dimensions[rd] = true

		return nil
	}
	if dp.shape == rs {
		return nil
	}

	return g.MergeShape(dp.shape, rs, why)
}

// MergeMeasure merges src into dst, unioning angle membership and adopting
// src's constant value if dst has none (a conflicting constant value is left
// for the caller's numeric-consistency layer to flag).
func (g *GG) MergeMeasure(dst, src, why string) error {
	rd, err := g.measures.Find(dst)
	if err != nil {
		return err
	}
	rs, err := g.measures.Find(src)
	if err != nil {
		return err
	}
	if rd == rs {
		return nil
	}

	srcPayload, err := g.measures.Root(rs)
	if err != nil {
		return err
	}
	srcAngles := sortedSet(srcPayload.angles)

	if err := g.measures.Union(rd, rs, why, func(md, ms *Measure) {
		for a := range ms.angles {
			md.angles[a] = true
		}
		if md.value == nil {
			md.value = ms.value
		}
	}); err != nil {
		return err
	}

	for _, aname := range srcAngles {
		ar, err := g.angles.Find(aname)
		if err != nil {
			continue
		}
		ap, err := g.angles.Root(ar)
		if err != nil {
			continue
		}
		ap.measure = rd
	}

	return nil
}

// MergeFracNode is MergeMeasure's analog over ratios.
func (g *GG) MergeFracNode(dst, src, why string) error {
	rd, err := g.fracNodes.Find(dst)
	if err != nil {
		return err
	}
	rs, err := g.fracNodes.Find(src)
	if err != nil {
		return err
	}
	if rd == rs {
		return nil
	}

	srcPayload, err := g.fracNodes.Root(rs)
	if err != nil {
		return err
	}
	srcRatios := sortedSet(srcPayload.ratios)

	if err := g.fracNodes.Union(rd, rs, why, func(fd, fs *FracNode) {
		for r := range fs.ratios {
			fd.ratios[r] = true
		}
		if fd.value == nil {
			fd.value = fs.value
		}
	}); err != nil {
		return err
	}

	for _, rname := range srcRatios {
		rr, err := g.ratios.Find(rname)
		if err != nil {
			continue
		}
		rp, err := g.ratios.Root(rr)
		if err != nil {
			continue
		}
		rp.fraction = rd
	}

	return nil
}

// MergeDimension merges src into dst, unioning triangle membership and
// adopting src's shape if dst has none.
func (g *GG) MergeDimension(dst, src, why string) error {
	rd, err := g.dimensions.Find(dst)
	if err != nil {
		return err
	}
	rs, err := g.dimensions.Find(src)
	if err != nil {
		return err
	}
	if rd == rs {
		return nil
	}

	srcPayload, err := g.dimensions.Root(rs)
	if err != nil {
		return err
	}
	srcTriangles := sortedSet(srcPayload.triangles)
	srcShape := srcPayload.shape

	if err := g.dimensions.Union(rd, rs, why, func(dd, ds *Dimension) {
		for t := range ds.triangles {
			dd.triangles[t] = true
		}
	}); err != nil {
		return err
	}

	for _, tname := range srcTriangles {
		tr, err := g.triangles.Find(tname)
		if err != nil {
			continue
		}
		tp, err := g.triangles.Root(tr)
		if err != nil {
			continue
		}
		tp.dim = rd
	}

	if srcShape == "" {
		return nil
	}
	dstPayload, err := g.dimensions.Root(rd)
	if err != nil {
		return err
	}
	if dstPayload.shape == "" {
		dstPayload.shape = srcShape
		sp, err := g.shapes.Root(srcShape)
		if err != nil {
			return err
		}
		sp.dimensions[rd] = true

		return nil
	}
	if dstPayload.shape == srcShape {
		return nil
	}

	return g.MergeShape(dstPayload.shape, srcShape, why)
}

// MergeShape merges src into dst, unioning dimension membership.
func (g *GG) MergeShape(dst, src, why string) error {
	rd, err := g.shapes.Find(dst)
	if err != nil {
		return err
	}
	rs, err := g.shapes.Find(src)
	if err != nil {
		return err
	}
	if rd == rs {
		return nil
	}

	srcPayload, err := g.shapes.Root(rs)
	if err != nil {
		return err
	}
	srcDims := sortedSet(srcPayload.dimensions)

	if err := g.shapes.Union(rd, rs, why, func(sd, ss *Shape) {
		for d := range ss.dimensions {
			sd.dimensions[d] = true
		}
	}); err != nil {
		return err
	}

	for _, dname := range srcDims {
		dr, err := g.dimensions.Find(dname)
		if err != nil {
			continue
		}
		dp, err := g.dimensions.Root(dr)
		if err != nil {
			continue
		}
		dp.shape = rd
	}

	return nil
}

// SetMeasureValue records a constant rational measure value for root measure
// m, as an exact half-turn fraction (1 == 180 degrees). A conflicting
// pre-existing value is overwritten; numeric consistency across conflicting
// assignments is checked by the caller, not this package.
func (g *GG) SetMeasureValue(m string, v frac.Fraction) error {
	rm, err := g.measures.Find(m)
	if err != nil {
		return err
	}
	mp, err := g.measures.Root(rm)
	if err != nil {
		return err
	}
	mp.value = &v

	return nil
}

// SetFracNodeValue is SetMeasureValue's analog for a constant ratio value.
func (g *GG) SetFracNodeValue(f string, v frac.Fraction) error {
	rf, err := g.fracNodes.Find(f)
	if err != nil {
		return err
	}
	fp, err := g.fracNodes.Root(rf)
	if err != nil {
		return err
	}
	fp.value = &v

	return nil
}

// MeasureValue returns the constant value recorded for root measure m, if
// any.
func (g *GG) MeasureValue(m string) (frac.Fraction, bool, error) {
	rm, err := g.measures.Find(m)
	if err != nil {
		return frac.Fraction{}, false, err
	}
	mp, err := g.measures.Root(rm)
	if err != nil {
		return frac.Fraction{}, false, err
	}
	if mp.value == nil {
		return frac.Fraction{}, false, nil
	}

	return *mp.value, true, nil
}

// FracNodeValue returns the constant value recorded for root fraction node
// f, if any.
func (g *GG) FracNodeValue(f string) (frac.Fraction, bool, error) {
	rf, err := g.fracNodes.Find(f)
	if err != nil {
		return frac.Fraction{}, false, err
	}
	fp, err := g.fracNodes.Root(rf)
	if err != nil {
		return frac.Fraction{}, false, err
	}
	if fp.value == nil {
		return frac.Fraction{}, false, nil
	}

	return *fp.value, true, nil
}
