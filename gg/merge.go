package gg

// MergePoint merges src into dst (spec §4.6.1). Both names are resolved to
// their current roots first; if they already coincide, this is a no-op.
func (g *GG) MergePoint(dst, src, why string) error {
	rd, err := g.points.Find(dst)
	if err != nil {
		return err
	}
	rs, err := g.points.Find(src)
	if err != nil {
		return err
	}
	if rd == rs {
		return nil
	}

	srcPayload, err := g.points.Root(rs)
	if err != nil {
		return err
	}
	srcLines := sortedSet(srcPayload.rootLines)
	srcCircles := sortedSet(srcPayload.rootCircles)

	if err := g.points.Union(rd, rs, why, func(pd, ps *Point) {
		for l, w := range ps.onLine {
			if _, ok := pd.onLine[l]; !ok {
				pd.onLine[l] = w
			}
		}
		for c, w := range ps.onCircle {
			if _, ok := pd.onCircle[c]; !ok {
				pd.onCircle[c] = w
			}
		}
		for l := range ps.rootLines {
			pd.rootLines[l] = true
		}
		for c := range ps.rootCircles {
			pd.rootCircles[c] = true
		}
	}); err != nil {
		return err
	}

	for _, lname := range srcLines {
		lr, err := g.lines.Find(lname)
		if err != nil {
			continue
		}
		lp, err := g.lines.Root(lr)
		if err != nil {
			continue
		}
		delete(lp.points, rs)
		lp.points[rd] = true
	}
	for _, cname := range srcCircles {
		cr, err := g.circles.Find(cname)
		if err != nil {
			continue
		}
		cp, err := g.circles.Root(cr)
		if err != nil {
			continue
		}
		delete(cp.points, rs)
		cp.points[rd] = true
	}

	if err := g.mergeLinesSharingTwoPoints(rd, why); err != nil {
		return err
	}
	if err := g.mergeCirclesSharingThreePoints(rd, why); err != nil {
		return err
	}

	return g.rewriteTrianglesForPointMerge(rs, rd)
}

// mergeLinesSharingTwoPoints implements spec §4.6.1's "any two root lines
// that now share two distinct points on p_dst must be merged": after a
// point merge, every pair of root lines through the merged point is
// checked for a second shared point, and merged if found.
func (g *GG) mergeLinesSharingTwoPoints(pRoot, why string) error {
	pd, err := g.points.Root(pRoot)
	if err != nil {
		return err
	}
	lines := sortedSet(pd.rootLines)
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			l1r, err := g.lines.Find(lines[i])
			if err != nil {
				continue
			}
			l2r, err := g.lines.Find(lines[j])
			if err != nil {
				continue
			}
			if l1r == l2r {
				continue
			}
			if g.linesShareAnotherPoint(l1r, l2r, pRoot) {
				if err := g.MergeLine(l1r, l2r, why); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// mergeCirclesSharingThreePoints is mergeLinesSharingTwoPoints's circle
// analog: two circles through the merged point sharing two further points
// (three in total) must be the same circle.
func (g *GG) mergeCirclesSharingThreePoints(pRoot, why string) error {
	pd, err := g.points.Root(pRoot)
	if err != nil {
		return err
	}
	circles := sortedSet(pd.rootCircles)
	for i := 0; i < len(circles); i++ {
		for j := i + 1; j < len(circles); j++ {
			c1r, err := g.circles.Find(circles[i])
			if err != nil {
				continue
			}
			c2r, err := g.circles.Find(circles[j])
			if err != nil {
				continue
			}
			if c1r == c2r {
				continue
			}
			if g.circlesShareTwoOtherPoints(c1r, c2r, pRoot) {
				if err := g.MergeCircle(c1r, c2r, why); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// linesShareAnotherPoint reports whether root lines l1/l2 have some common
// point other than except.
func (g *GG) linesShareAnotherPoint(l1, l2, except string) bool {
	p1, err := g.lines.Root(l1)
	if err != nil {
		return false
	}
	p2, err := g.lines.Root(l2)
	if err != nil {
		return false
	}
	for p := range p1.points {
		if p == except {
			continue
		}
		if p2.points[p] {
			return true
		}
	}

	return false
}

// circlesShareTwoOtherPoints reports whether circle roots c1/c2 have at
// least two common points besides except.
func (g *GG) circlesShareTwoOtherPoints(c1, c2, except string) bool {
	p1, err := g.circles.Root(c1)
	if err != nil {
		return false
	}
	p2, err := g.circles.Root(c2)
	if err != nil {
		return false
	}
	count := 0
	for p := range p1.points {
		if p == except {
			continue
		}
		if p2.points[p] {
			count++
		}
	}

	return count >= 2
}

// rewriteTrianglesForPointMerge resolves every triangle's vertices to their
// current root and replaces any occurrence of rs by rd. If two vertices
// collapse into one, the triangle is degenerate: ErrDegenerateTriangle is
// returned so the caller can surface it as a Contradiction/ncoll violation
// (spec §4.6.1, §7) rather than silently keep an invalid triangle.
func (g *GG) rewriteTrianglesForPointMerge(rs, rd string) error {
	for _, tname := range g.triangles.SortedKeys() {
		tr, err := g.triangles.Find(tname)
		if err != nil {
			continue
		}
		tp, err := g.triangles.Root(tr)
		if err != nil {
			continue
		}
		changed := false
		for i, v := range tp.vertices {
			vr, err := g.points.Find(v)
			if err != nil {
				continue
			}
			if vr != v {
				changed = true
			}
			tp.vertices[i] = vr
		}
		if !changed {
			continue
		}
		if tp.vertices[0] == tp.vertices[1] || tp.vertices[1] == tp.vertices[2] || tp.vertices[0] == tp.vertices[2] {
			return ErrDegenerateTriangle
		}
		g.recomputeIsoMask(tp)
	}

	return nil
}

// recomputeIsoMask sets tp's isosceles-side bitmask from the current
// congruence of its three side-pairs (original_source's recompute trigger,
// documented in DESIGN.md).
func (g *GG) recomputeIsoMask(tp *Triangle) {
	a, b, c := tp.vertices[0], tp.vertices[1], tp.vertices[2]
	var mask uint8
	if ok, _ := g.CheckCong(a, b, a, c); ok {
		mask |= 1
	}
	if ok, _ := g.CheckCong(b, a, b, c); ok {
		mask |= 2
	}
	if ok, _ := g.CheckCong(c, a, c, b); ok {
		mask |= 4
	}
	tp.isoMask = mask
}

// MergeLine merges src into dst (spec §4.6.2).
func (g *GG) MergeLine(dst, src, why string) error {
	rd, err := g.lines.Find(dst)
	if err != nil {
		return err
	}
	rs, err := g.lines.Find(src)
	if err != nil {
		return err
	}
	if rd == rs {
		return nil
	}

	srcPayload, err := g.lines.Root(rs)
	if err != nil {
		return err
	}
	srcPoints := sortedSet(srcPayload.points)
	srcDir := srcPayload.direction
	srcDirWhy := srcPayload.directionWhy

	if err := g.lines.Union(rd, rs, why, func(ld, ls *Line) {
		for p := range ls.points {
			ld.points[p] = true
		}
	}); err != nil {
		return err
	}

	for _, pname := range srcPoints {
		pr, err := g.points.Find(pname)
		if err != nil {
			continue
		}
		pp, err := g.points.Root(pr)
		if err != nil {
			continue
		}
		delete(pp.rootLines, rs)
		pp.rootLines[rd] = true
	}

	if srcDir == "" {
		return nil
	}
	dstPayload, err := g.lines.Root(rd)
	if err != nil {
		return err
	}
	if dstPayload.direction == "" {
		dstPayload.direction = srcDir
		dstPayload.directionWhy = srcDirWhy
		dp, err := g.directions.Root(srcDir)
		if err != nil {
			return err
		}
		dp.rootLines[rd] = true

		return nil
	}

	return g.MergeDirection(dstPayload.direction, srcDir, why)
}

// MergeCircle merges src into dst, the Circle analog of MergeLine (spec
// §4.6 describes the point-merge trigger only; the merge itself mirrors
// Line's: migrate points, adopt or merge centers).
func (g *GG) MergeCircle(dst, src, why string) error {
	rd, err := g.circles.Find(dst)
	if err != nil {
		return err
	}
	rs, err := g.circles.Find(src)
	if err != nil {
		return err
	}
	if rd == rs {
		return nil
	}

	srcPayload, err := g.circles.Root(rs)
	if err != nil {
		return err
	}
	srcPoints := sortedSet(srcPayload.points)
	srcCenter := srcPayload.center
	srcCenterWhy := srcPayload.centerWhy

	if err := g.circles.Union(rd, rs, why, func(cd, cs *Circle) {
		for p := range cs.points {
			cd.points[p] = true
		}
	}); err != nil {
		return err
	}

	for _, pname := range srcPoints {
		pr, err := g.points.Find(pname)
		if err != nil {
			continue
		}
		pp, err := g.points.Root(pr)
		if err != nil {
			continue
		}
		delete(pp.rootCircles, rs)
		pp.rootCircles[rd] = true
	}

	if srcCenter == "" {
		return nil
	}
	dstPayload, err := g.circles.Root(rd)
	if err != nil {
		return err
	}
	if dstPayload.center == "" {
		dstPayload.center = srcCenter
		dstPayload.centerWhy = srcCenterWhy
	} else if dstPayload.center != srcCenter {
		return g.MergePoint(dstPayload.center, srcCenter, why)
	}

	return nil
}

// MergeDirection merges src into dst (spec §4.6.3). If both sides carry a
// perpendicular relation to a (possibly different) direction, those two
// perpendicular directions are merged recursively; this terminates because
// perp is an involution and each recursive call strictly reduces the
// number of distinct direction roots.
func (g *GG) MergeDirection(dst, src, why string) error {
	rd, err := g.directions.Find(dst)
	if err != nil {
		return err
	}
	rs, err := g.directions.Find(src)
	if err != nil {
		return err
	}
	if rd == rs {
		return nil
	}

	dstPerpBefore, err := g.directions.Root(rd)
	if err != nil {
		return err
	}
	if dstPerpBefore.perp == rs {
		return ErrIncompatiblePerp
	}

	srcPayload, err := g.directions.Root(rs)
	if err != nil {
		return err
	}
	srcLines := sortedSet(srcPayload.rootLines)
	srcPerp := srcPayload.perp

	if err := g.directions.Union(rd, rs, why, func(dd, ds *Direction) {
		for l := range ds.rootLines {
			dd.rootLines[l] = true
		}
	}); err != nil {
		return err
	}

	for _, lname := range srcLines {
		lr, err := g.lines.Find(lname)
		if err != nil {
			continue
		}
		lp, err := g.lines.Root(lr)
		if err != nil {
			continue
		}
		lp.direction = rd
	}

	if srcPerp == "" {
		return nil
	}
	dstPayload, err := g.directions.Root(rd)
	if err != nil {
		return err
	}
	if dstPayload.perp == "" {
		dstPayload.perp = srcPerp
		pr, err := g.directions.Find(srcPerp)
		if err != nil {
			return err
		}
		pp, err := g.directions.Root(pr)
		if err != nil {
			return err
		}
		pp.perp = rd

		return nil
	}
	if dstPayload.perp == srcPerp {
		return nil
	}

	return g.MergeDirection(dstPayload.perp, srcPerp, why)
}

// SetPerp records that directions d1 and d2 are perpendicular (I3: an
// involution). If either already has a different perpendicular partner, the
// two partners are merged so the involution keeps holding with one
// direction per side.
func (g *GG) SetPerp(d1, d2, why string) error {
	rd1, err := g.directions.Find(d1)
	if err != nil {
		return err
	}
	rd2, err := g.directions.Find(d2)
	if err != nil {
		return err
	}
	if rd1 == rd2 {
		return ErrIncompatiblePerp
	}

	p1, err := g.directions.Root(rd1)
	if err != nil {
		return err
	}
	p2, err := g.directions.Root(rd2)
	if err != nil {
		return err
	}

	if p1.perp != "" && p1.perp != rd2 {
		if err := g.MergeDirection(p1.perp, rd2, why); err != nil {
			return err
		}
		rd2, _ = g.directions.Find(rd2)
	}
	if p2.perp != "" && p2.perp != rd1 {
		if err := g.MergeDirection(p2.perp, rd1, why); err != nil {
			return err
		}
		rd1, _ = g.directions.Find(rd1)
	}

	p1, err = g.directions.Root(rd1)
	if err != nil {
		return err
	}
	p2, err = g.directions.Root(rd2)
	if err != nil {
		return err
	}
	p1.perp = rd2
	p2.perp = rd1

	return nil
}
