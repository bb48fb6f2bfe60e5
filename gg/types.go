package gg

import (
	"fmt"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
)

// Point is the root state of a Point node (spec §3): the lines and circles
// it lies on, tracked both as a direct-key witness map (on_line/on_circle,
// which predicate justified the incidence) and as deduplicated root sets
// (rootLines/rootCircles) used by incidence queries.
type Point struct {
	idx int

	onLine   map[string]string // line name -> justifying predicate hash
	onCircle map[string]string // circle name -> justifying predicate hash

	rootLines   map[string]bool
	rootCircles map[string]bool
}

func newPoint(idx int) *Point {
	return &Point{
		idx:         idx,
		onLine:      make(map[string]string),
		onCircle:    make(map[string]string),
		rootLines:   make(map[string]bool),
		rootCircles: make(map[string]bool),
	}
}

// Name implements uf.Node.
func (p *Point) Name() string { return fmt.Sprintf("pt%d", p.idx) }

// Line is the root state of a Line node: the (root) points on it, and an
// optional direction pointer with its justification.
type Line struct {
	idx int

	points map[string]bool // root point names

	direction    string
	directionWhy string
}

func newLine(idx int) *Line {
	return &Line{idx: idx, points: make(map[string]bool)}
}

// Name implements uf.Node.
func (l *Line) Name() string { return fmt.Sprintf("ln%d", l.idx) }

// HasDirection reports whether l has a direction assigned.
func (l *Line) HasDirection() bool { return l.direction != "" }

// Circle is the root state of a Circle node: the (root) points on it, and
// an optional center with its justification.
type Circle struct {
	idx int

	points map[string]bool

	center    string
	centerWhy string
}

func newCircle(idx int) *Circle {
	return &Circle{idx: idx, points: make(map[string]bool)}
}

// Name implements uf.Node.
func (c *Circle) Name() string { return fmt.Sprintf("ci%d", c.idx) }

// Triangle is an ordered triple of (root) points with a Dimension
// back-reference and an isosceles-side bitmask (bit 0: AB==AC, bit 1:
// BA==BC, bit 2: CA==CB — recomputed whenever a point merge rewrites one of
// the triangle's vertices to a new root; a merge that makes two vertices
// coincide returns ErrDegenerateTriangle instead).
type Triangle struct {
	idx int

	vertices [3]string
	dim      string
	isoMask  uint8
}

func newTriangle(idx int, vertices [3]string) *Triangle {
	return &Triangle{idx: idx, vertices: vertices}
}

// Name implements uf.Node.
func (t *Triangle) Name() string { return fmt.Sprintf("tr%d", t.idx) }

// Direction is the value node for parallel lines: the (root) lines sharing
// it, and an optional perpendicular counterpart.
type Direction struct {
	idx int

	rootLines map[string]bool
	perp      string
}

func newDirection(idx int) *Direction {
	return &Direction{idx: idx, rootLines: make(map[string]bool)}
}

// Name implements uf.Node.
func (d *Direction) Name() string { return fmt.Sprintf("dir%d", d.idx) }

// Length is the value node for congruent segments: the (root) segments of
// equal length.
type Length struct {
	idx      int
	segments map[string]bool
}

func newLength(idx int) *Length {
	return &Length{idx: idx, segments: make(map[string]bool)}
}

// Name implements uf.Node.
func (l *Length) Name() string { return fmt.Sprintf("len%d", l.idx) }

// Angle is an Object2 node: an ordered pair of (root) directions, with an
// optional Measure back-reference.
type Angle struct {
	idx      int
	dir1     string
	dir2     string
	measure  string
}

func newAngle(idx int, dir1, dir2 string) *Angle {
	return &Angle{idx: idx, dir1: dir1, dir2: dir2}
}

// Name implements uf.Node.
func (a *Angle) Name() string { return fmt.Sprintf("ang%d", a.idx) }

// Ratio is an Object2 node: an ordered pair of (root) lengths, with an
// optional Fraction back-reference.
type Ratio struct {
	idx      int
	len1     string
	len2     string
	fraction string
}

func newRatio(idx int, len1, len2 string) *Ratio {
	return &Ratio{idx: idx, len1: len1, len2: len2}
}

// Name implements uf.Node.
func (r *Ratio) Name() string { return fmt.Sprintf("rat%d", r.idx) }

// Segment is an Object2 node: an unordered pair of (root) points, with a
// Length back-reference.
type Segment struct {
	idx    int
	p1, p2 string // stored with p1 <= p2 lexicographically
	length string
}

func newSegment(idx int, p1, p2 string) *Segment {
	if p2 < p1 {
		p1, p2 = p2, p1
	}

	return &Segment{idx: idx, p1: p1, p2: p2}
}

// Name implements uf.Node.
func (s *Segment) Name() string { return fmt.Sprintf("seg%d", s.idx) }

// Measure is a Value2 node over Angles: the set of equal-measure (root)
// angles, with an exact rational value when the angle is known to be
// constant (half-turn units: 1 == 180 degrees).
type Measure struct {
	idx    int
	angles map[string]bool
	value  *frac.Fraction
}

func newMeasure(idx int) *Measure {
	return &Measure{idx: idx, angles: make(map[string]bool)}
}

// Name implements uf.Node.
func (m *Measure) Name() string { return fmt.Sprintf("mea%d", m.idx) }

// FracNode is a Value2 node over Ratios: the set of equal-ratio (root)
// ratios, with an exact rational value when the ratio is known to be
// constant. Named FracNode (rather than Fraction) to avoid colliding with
// the frac package's Fraction type.
type FracNode struct {
	idx    int
	ratios map[string]bool
	value  *frac.Fraction
}

func newFracNode(idx int) *FracNode {
	return &FracNode{idx: idx, ratios: make(map[string]bool)}
}

// Name implements uf.Node.
func (f *FracNode) Name() string { return fmt.Sprintf("frn%d", f.idx) }

// Dimension groups Triangles congruent under a fixed vertex labeling.
type Dimension struct {
	idx       int
	triangles map[string]bool
	shape     string
}

func newDimension(idx int) *Dimension {
	return &Dimension{idx: idx, triangles: make(map[string]bool)}
}

// Name implements uf.Node.
func (d *Dimension) Name() string { return fmt.Sprintf("dim%d", d.idx) }

// Shape groups Dimensions that are similar.
type Shape struct {
	idx        int
	dimensions map[string]bool
}

func newShape(idx int) *Shape {
	return &Shape{idx: idx, dimensions: make(map[string]bool)}
}

// Name implements uf.Node.
func (s *Shape) Name() string { return fmt.Sprintf("shp%d", s.idx) }
