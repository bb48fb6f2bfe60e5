package gg

// AllPoints returns every root point name, sorted.
func (g *GG) AllPoints() []string { return g.points.Roots() }

// AllLines returns every root line name, sorted.
func (g *GG) AllLines() []string { return g.lines.Roots() }

// AllCircles returns every root circle name, sorted.
func (g *GG) AllCircles() []string { return g.circles.Roots() }

// AllDirections returns every root direction name, sorted.
func (g *GG) AllDirections() []string { return g.directions.Roots() }

// AllLengths returns every root length name, sorted.
func (g *GG) AllLengths() []string { return g.lengths.Roots() }

// AllTriangles returns every root triangle name, sorted.
func (g *GG) AllTriangles() []string { return g.triangles.Roots() }

// LinePoints returns the sorted root point names lying on root line l.
func (g *GG) LinePoints(l string) ([]string, error) {
	lp, err := g.lines.Root(l)
	if err != nil {
		return nil, err
	}

	return sortedSet(lp.points), nil
}

// CirclePoints returns the sorted root point names lying on root circle c.
func (g *GG) CirclePoints(c string) ([]string, error) {
	cp, err := g.circles.Root(c)
	if err != nil {
		return nil, err
	}

	return sortedSet(cp.points), nil
}

// DirectionLines returns the sorted root line names carrying root direction
// d.
func (g *GG) DirectionLines(d string) ([]string, error) {
	dp, err := g.directions.Root(d)
	if err != nil {
		return nil, err
	}

	return sortedSet(dp.rootLines), nil
}

// LineDirection returns the root direction assigned to root line l, if any.
func (g *GG) LineDirection(l string) (string, bool, error) {
	lp, err := g.lines.Root(l)
	if err != nil {
		return "", false, err
	}

	return lp.direction, lp.direction != "", nil
}

// TriangleVertices returns the current root vertices of root triangle t.
func (g *GG) TriangleVertices(t string) ([3]string, error) {
	tp, err := g.triangles.Root(t)
	if err != nil {
		return [3]string{}, err
	}

	return tp.vertices, nil
}

// TriangleDimension returns the root dimension assigned to root triangle t,
// if any.
func (g *GG) TriangleDimension(t string) (string, bool, error) {
	tp, err := g.triangles.Root(t)
	if err != nil {
		return "", false, err
	}

	return tp.dim, tp.dim != "", nil
}

// DimensionShape returns the root shape assigned to root dimension d, if any.
func (g *GG) DimensionShape(d string) (string, bool, error) {
	dp, err := g.dimensions.Root(d)
	if err != nil {
		return "", false, err
	}

	return dp.shape, dp.shape != "", nil
}

// SegmentPoints returns the two (lexicographically sorted) root points of
// root segment s.
func (g *GG) SegmentPoints(s string) (string, string, error) {
	sp, err := g.segments.Root(s)
	if err != nil {
		return "", "", err
	}

	return sp.p1, sp.p2, nil
}

// SegmentLength returns the root length assigned to root segment s, if any.
func (g *GG) SegmentLength(s string) (string, bool, error) {
	sp, err := g.segments.Root(s)
	if err != nil {
		return "", false, err
	}

	return sp.length, sp.length != "", nil
}

// RepresentativePointsForLine returns two distinct points lying on root line
// l, if at least two are known.
func (g *GG) RepresentativePointsForLine(l string) (string, string, bool, error) {
	pts, err := g.LinePoints(l)
	if err != nil {
		return "", "", false, err
	}
	if len(pts) < 2 {
		return "", "", false, nil
	}

	return pts[0], pts[1], true, nil
}

// RepresentativePointsForDirection returns two points naming a line that
// carries root direction d, picking the lexicographically first such line
// that has at least two points on it. Used to translate an algebraic
// direction-variable equality back into a point-based predicate.
func (g *GG) RepresentativePointsForDirection(d string) (string, string, bool, error) {
	lines, err := g.DirectionLines(d)
	if err != nil {
		return "", "", false, err
	}
	for _, l := range lines {
		p1, p2, ok, err := g.RepresentativePointsForLine(l)
		if err != nil {
			return "", "", false, err
		}
		if ok {
			return p1, p2, true, nil
		}
	}

	return "", "", false, nil
}

// RepresentativePointsForLength returns the endpoints of the
// lexicographically first segment assigned root length ln. Used to translate
// an algebraic length-variable equality back into a point-based predicate.
func (g *GG) RepresentativePointsForLength(ln string) (string, string, bool, error) {
	rl, err := g.lengths.Root(ln)
	if err != nil {
		return "", "", false, err
	}
	segs := sortedSet(rl.segments)
	if len(segs) == 0 {
		return "", "", false, nil
	}
	p1, p2, err := g.SegmentPoints(segs[0])
	if err != nil {
		return "", "", false, err
	}

	return p1, p2, true, nil
}
