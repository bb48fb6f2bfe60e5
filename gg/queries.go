package gg

// TryGetLine looks for a root line already passing through both root points
// p1 and p2, returning ("", false) if none exists yet.
func (g *GG) TryGetLine(p1, p2 string) (string, bool) {
	for _, p := range []string{p1, p2} {
		if _, err := g.points.Find(p); err != nil {
			return "", false
		}
	}
	for _, lname := range g.lines.Roots() {
		lp, err := g.lines.Root(lname)
		if err != nil {
			continue
		}
		if lp.points[p1] && lp.points[p2] {
			return lname, true
		}
	}

	return "", false
}

// GetOrAddLine finds the root line through p1 and p2 or, if none exists,
// allocates a fresh one and adds both points to it. It never emits a
// predicate itself: created reports whether a new line was allocated so the
// caller (the deductive layer) can decide whether a base coll predicate is
// warranted.
func (g *GG) GetOrAddLine(p1, p2, why string) (name string, created bool, err error) {
	if l, ok := g.TryGetLine(p1, p2); ok {
		return l, false, nil
	}
	l := g.AddLine()
	if err := g.AddPointToLine(l, p1, why); err != nil {
		return "", false, err
	}
	if err := g.AddPointToLine(l, p2, why); err != nil {
		return "", false, err
	}

	return l, true, nil
}

// AddPointToLine records that root point p lies on root line l, justified by
// why, merging l with any other root line through p that now shares a
// second point.
func (g *GG) AddPointToLine(l, p, why string) error {
	rl, err := g.lines.Find(l)
	if err != nil {
		return err
	}
	rp, err := g.points.Find(p)
	if err != nil {
		return err
	}
	lp, err := g.lines.Root(rl)
	if err != nil {
		return err
	}
	if lp.points[rp] {
		return nil
	}
	lp.points[rp] = true
	pp, err := g.points.Root(rp)
	if err != nil {
		return err
	}
	pp.onLine[rl] = why
	pp.rootLines[rl] = true

	return g.mergeLinesSharingTwoPoints(rp, why)
}

// AddPointToCircle records that root point p lies on root circle c,
// justified by why, merging c with any other root circle through p that now
// shares two further points.
func (g *GG) AddPointToCircle(c, p, why string) error {
	rc, err := g.circles.Find(c)
	if err != nil {
		return err
	}
	rp, err := g.points.Find(p)
	if err != nil {
		return err
	}
	cp, err := g.circles.Root(rc)
	if err != nil {
		return err
	}
	if cp.points[rp] {
		return nil
	}
	cp.points[rp] = true
	pp, err := g.points.Root(rp)
	if err != nil {
		return err
	}
	pp.onCircle[rc] = why
	pp.rootCircles[rc] = true

	return g.mergeCirclesSharingThreePoints(rp, why)
}

// CheckColl reports whether a common root line already passes through all of
// the given root points (spec §4.7's coll query).
func (g *GG) CheckColl(points ...string) (bool, error) {
	if len(points) < 2 {
		return true, nil
	}
	roots := make([]string, len(points))
	for i, p := range points {
		r, err := g.points.Find(p)
		if err != nil {
			return false, err
		}
		roots[i] = r
	}
	for _, lname := range g.lines.Roots() {
		lp, err := g.lines.Root(lname)
		if err != nil {
			continue
		}
		all := true
		for _, r := range roots {
			if !lp.points[r] {
				all = false
				break
			}
		}
		if all {
			return true, nil
		}
	}

	return false, nil
}

// CheckPara reports whether root lines l1 and l2 share a direction.
func (g *GG) CheckPara(l1, l2 string) (bool, error) {
	p1, err := g.lines.Root(l1)
	if err != nil {
		return false, err
	}
	p2, err := g.lines.Root(l2)
	if err != nil {
		return false, err
	}
	if p1.direction == "" || p2.direction == "" {
		return false, nil
	}
	d1, err := g.directions.Find(p1.direction)
	if err != nil {
		return false, err
	}
	d2, err := g.directions.Find(p2.direction)
	if err != nil {
		return false, err
	}

	return d1 == d2, nil
}

// CheckPerp reports whether root lines l1 and l2 have perpendicular
// directions.
func (g *GG) CheckPerp(l1, l2 string) (bool, error) {
	p1, err := g.lines.Root(l1)
	if err != nil {
		return false, err
	}
	p2, err := g.lines.Root(l2)
	if err != nil {
		return false, err
	}
	if p1.direction == "" || p2.direction == "" {
		return false, nil
	}
	dp1, err := g.directions.Root(p1.direction)
	if err != nil {
		return false, err
	}
	if dp1.perp == "" {
		return false, nil
	}
	perpRoot, err := g.directions.Find(dp1.perp)
	if err != nil {
		return false, err
	}
	d2, err := g.directions.Find(p2.direction)
	if err != nil {
		return false, err
	}

	return perpRoot == d2, nil
}

// CheckCyclic reports whether a common root circle already passes through
// all of the given root points.
func (g *GG) CheckCyclic(points ...string) (bool, error) {
	if len(points) < 3 {
		return true, nil
	}
	roots := make([]string, len(points))
	for i, p := range points {
		r, err := g.points.Find(p)
		if err != nil {
			return false, err
		}
		roots[i] = r
	}
	for _, cname := range g.circles.Roots() {
		cp, err := g.circles.Root(cname)
		if err != nil {
			continue
		}
		all := true
		for _, r := range roots {
			if !cp.points[r] {
				all = false
				break
			}
		}
		if all {
			return true, nil
		}
	}

	return false, nil
}

// CheckCong reports whether segments (a1,a2) and (b1,b2) are known to have
// equal length, without allocating a new Segment or Length if either is
// unknown.
func (g *GG) CheckCong(a1, a2, b1, b2 string) (bool, error) {
	s1, ok1 := g.tryFindSegment(a1, a2)
	s2, ok2 := g.tryFindSegment(b1, b2)
	if !ok1 || !ok2 {
		return false, nil
	}
	sp1, err := g.segments.Root(s1)
	if err != nil {
		return false, err
	}
	sp2, err := g.segments.Root(s2)
	if err != nil {
		return false, err
	}
	if sp1.length == "" || sp2.length == "" {
		return false, nil
	}
	l1, err := g.lengths.Find(sp1.length)
	if err != nil {
		return false, err
	}
	l2, err := g.lengths.Find(sp2.length)
	if err != nil {
		return false, err
	}

	return l1 == l2, nil
}

// CheckEqAngle reports whether angle (d1,d2) and angle (d3,d4), each over
// root directions, are known to have equal measure.
func (g *GG) CheckEqAngle(d1, d2, d3, d4 string) (bool, error) {
	a1, ok1 := g.tryFindAngle(d1, d2)
	a2, ok2 := g.tryFindAngle(d3, d4)
	if !ok1 || !ok2 {
		return false, nil
	}
	ap1, err := g.angles.Root(a1)
	if err != nil {
		return false, err
	}
	ap2, err := g.angles.Root(a2)
	if err != nil {
		return false, err
	}
	if ap1.measure == "" || ap2.measure == "" {
		return false, nil
	}
	m1, err := g.measures.Find(ap1.measure)
	if err != nil {
		return false, err
	}
	m2, err := g.measures.Find(ap2.measure)
	if err != nil {
		return false, err
	}

	return m1 == m2, nil
}

// CheckEqRatio reports whether ratio (l1,l2) and ratio (l3,l4), each over
// root lengths, are known to be equal.
func (g *GG) CheckEqRatio(l1, l2, l3, l4 string) (bool, error) {
	r1, ok1 := g.tryFindRatio(l1, l2)
	r2, ok2 := g.tryFindRatio(l3, l4)
	if !ok1 || !ok2 {
		return false, nil
	}
	rp1, err := g.ratios.Root(r1)
	if err != nil {
		return false, err
	}
	rp2, err := g.ratios.Root(r2)
	if err != nil {
		return false, err
	}
	if rp1.fraction == "" || rp2.fraction == "" {
		return false, nil
	}
	f1, err := g.fracNodes.Find(rp1.fraction)
	if err != nil {
		return false, err
	}
	f2, err := g.fracNodes.Find(rp2.fraction)
	if err != nil {
		return false, err
	}

	return f1 == f2, nil
}

func (g *GG) tryFindSegment(p1, p2 string) (string, bool) {
	key1, key2 := p1, p2
	if key2 < key1 {
		key1, key2 = key2, key1
	}
	for _, name := range g.segments.SortedKeys() {
		s, err := g.segments.Root(name)
		if err != nil {
			continue
		}
		if s.p1 == key1 && s.p2 == key2 {
			root, _ := g.segments.Find(name)
			return root, true
		}
	}

	return "", false
}

func (g *GG) tryFindAngle(d1, d2 string) (string, bool) {
	for _, name := range g.angles.SortedKeys() {
		a, err := g.angles.Root(name)
		if err != nil {
			continue
		}
		if a.dir1 == d1 && a.dir2 == d2 {
			root, _ := g.angles.Find(name)
			return root, true
		}
	}

	return "", false
}

func (g *GG) tryFindRatio(l1, l2 string) (string, bool) {
	for _, name := range g.ratios.SortedKeys() {
		r, err := g.ratios.Root(name)
		if err != nil {
			continue
		}
		if r.len1 == l1 && r.len2 == l2 {
			root, _ := g.ratios.Find(name)
			return root, true
		}
	}

	return "", false
}

// TryGetAngle looks up the existing Angle node over root directions
// (d1,d2), without allocating a fresh one.
func (g *GG) TryGetAngle(d1, d2 string) (string, bool) { return g.tryFindAngle(d1, d2) }

// TryGetRatio looks up the existing Ratio node over root lengths (l1,l2),
// without allocating a fresh one.
func (g *GG) TryGetRatio(l1, l2 string) (string, bool) { return g.tryFindRatio(l1, l2) }

// TryGetSegment looks up the existing Segment node over root points
// (p1,p2), without allocating a fresh one.
func (g *GG) TryGetSegment(p1, p2 string) (string, bool) { return g.tryFindSegment(p1, p2) }

// AngleMeasure returns the root measure assigned to root angle a, if any.
func (g *GG) AngleMeasure(a string) (string, bool, error) {
	ap, err := g.angles.Root(a)
	if err != nil {
		return "", false, err
	}

	return ap.measure, ap.measure != "", nil
}

// RatioFraction returns the root fraction node assigned to root ratio r, if
// any.
func (g *GG) RatioFraction(r string) (string, bool, error) {
	rp, err := g.ratios.Root(r)
	if err != nil {
		return "", false, err
	}

	return rp.fraction, rp.fraction != "", nil
}

// TryGetTriangle looks up the existing Triangle node whose current root
// vertices equal verts in order, without allocating a fresh one.
func (g *GG) TryGetTriangle(verts [3]string) (string, bool) {
	roots := [3]string{}
	for i, v := range verts {
		r, err := g.points.Find(v)
		if err != nil {
			return "", false
		}
		roots[i] = r
	}
	for _, name := range g.triangles.SortedKeys() {
		tp, err := g.triangles.Root(name)
		if err != nil {
			continue
		}
		if tp.vertices == roots {
			root, _ := g.triangles.Find(name)
			return root, true
		}
	}

	return "", false
}

// TriangleShape returns the root shape assigned (via the triangle's
// dimension) to root triangle t, if any.
func (g *GG) TriangleShape(t string) (string, bool, error) {
	tp, err := g.triangles.Root(t)
	if err != nil {
		return "", false, err
	}
	if tp.dim == "" {
		return "", false, nil
	}
	dp, err := g.dimensions.Root(tp.dim)
	if err != nil {
		return "", false, err
	}

	return dp.shape, dp.shape != "", nil
}
