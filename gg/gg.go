package gg

import (
	"github.com/DavidToh2/GeometryTheoremProver-sub000/uf"
)

// GG is the Geometric Graph: one union-find forest per entity kind, plus
// the allocation counters used to mint fresh stable names.
type GG struct {
	points     *uf.Forest[*Point]
	lines      *uf.Forest[*Line]
	circles    *uf.Forest[*Circle]
	triangles  *uf.Forest[*Triangle]
	directions *uf.Forest[*Direction]
	lengths    *uf.Forest[*Length]
	angles     *uf.Forest[*Angle]
	ratios     *uf.Forest[*Ratio]
	segments   *uf.Forest[*Segment]
	measures   *uf.Forest[*Measure]
	fracNodes  *uf.Forest[*FracNode]
	dimensions *uf.Forest[*Dimension]
	shapes     *uf.Forest[*Shape]

	nextPoint, nextLine, nextCircle, nextTriangle int
	nextDirection, nextLength                     int
	nextAngle, nextRatio, nextSegment              int
	nextMeasure, nextFracNode                      int
	nextDimension, nextShape                       int
}

// New constructs an empty Geometric Graph.
func New() *GG {
	return &GG{
		points:     uf.NewForest[*Point](),
		lines:      uf.NewForest[*Line](),
		circles:    uf.NewForest[*Circle](),
		triangles:  uf.NewForest[*Triangle](),
		directions: uf.NewForest[*Direction](),
		lengths:    uf.NewForest[*Length](),
		angles:     uf.NewForest[*Angle](),
		ratios:     uf.NewForest[*Ratio](),
		segments:   uf.NewForest[*Segment](),
		measures:   uf.NewForest[*Measure](),
		fracNodes:  uf.NewForest[*FracNode](),
		dimensions: uf.NewForest[*Dimension](),
		shapes:     uf.NewForest[*Shape](),
	}
}

// AddPoint allocates and registers a fresh Point, returning its stable name.
func (g *GG) AddPoint() string {
	p := newPoint(g.nextPoint)
	g.nextPoint++
	g.points.Add(p)

	return p.Name()
}

// AddLine allocates and registers a fresh, point-less Line.
func (g *GG) AddLine() string {
	l := newLine(g.nextLine)
	g.nextLine++
	g.lines.Add(l)

	return l.Name()
}

// AddCircle allocates and registers a fresh, point-less Circle.
func (g *GG) AddCircle() string {
	c := newCircle(g.nextCircle)
	g.nextCircle++
	g.circles.Add(c)

	return c.Name()
}

// AddTriangle allocates and registers a Triangle over the given (already
// root) point names.
func (g *GG) AddTriangle(p1, p2, p3 string) string {
	t := newTriangle(g.nextTriangle, [3]string{p1, p2, p3})
	g.nextTriangle++
	g.triangles.Add(t)

	return t.Name()
}

// AddDirection allocates and registers a fresh, line-less Direction.
func (g *GG) AddDirection() string {
	d := newDirection(g.nextDirection)
	g.nextDirection++
	g.directions.Add(d)

	return d.Name()
}

// AddLength allocates and registers a fresh, segment-less Length.
func (g *GG) AddLength() string {
	l := newLength(g.nextLength)
	g.nextLength++
	g.lengths.Add(l)

	return l.Name()
}

// GetOrAddAngle finds-or-creates the Angle node for the ordered pair of
// root direction names (d1, d2).
func (g *GG) GetOrAddAngle(d1, d2 string) string {
	for _, name := range g.angles.SortedKeys() {
		a, err := g.angles.Root(name)
		if err != nil {
			continue
		}
		if a.dir1 == d1 && a.dir2 == d2 {
			root, _ := g.angles.Find(name)
			return root
		}
	}
	a := newAngle(g.nextAngle, d1, d2)
	g.nextAngle++
	g.angles.Add(a)

	return a.Name()
}

// GetOrAddRatio finds-or-creates the Ratio node for the ordered pair of
// root length names (l1, l2).
func (g *GG) GetOrAddRatio(l1, l2 string) string {
	for _, name := range g.ratios.SortedKeys() {
		r, err := g.ratios.Root(name)
		if err != nil {
			continue
		}
		if r.len1 == l1 && r.len2 == l2 {
			root, _ := g.ratios.Find(name)
			return root
		}
	}
	r := newRatio(g.nextRatio, l1, l2)
	g.nextRatio++
	g.ratios.Add(r)

	return r.Name()
}

// GetOrAddSegment finds-or-creates the Segment node for the unordered pair
// of root point names (p1, p2).
func (g *GG) GetOrAddSegment(p1, p2 string) string {
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
			return root
		}
	}
	s := newSegment(g.nextSegment, p1, p2)
	g.nextSegment++
	g.segments.Add(s)

	return s.Name()
}

// AddMeasure allocates and registers a fresh, angle-less Measure.
func (g *GG) AddMeasure() string {
	m := newMeasure(g.nextMeasure)
	g.nextMeasure++
	g.measures.Add(m)

	return m.Name()
}

// AddFracNode allocates and registers a fresh, ratio-less FracNode.
func (g *GG) AddFracNode() string {
	f := newFracNode(g.nextFracNode)
	g.nextFracNode++
	g.fracNodes.Add(f)

	return f.Name()
}

// AddDimension allocates and registers a fresh, triangle-less Dimension.
func (g *GG) AddDimension() string {
	d := newDimension(g.nextDimension)
	g.nextDimension++
	g.dimensions.Add(d)

	return d.Name()
}

// AddShape allocates and registers a fresh, dimension-less Shape.
func (g *GG) AddShape() string {
	s := newShape(g.nextShape)
	g.nextShape++
	g.shapes.Add(s)

	return s.Name()
}

// RootPoint, RootLine, ... resolve a name to its root name.

func (g *GG) RootPoint(name string) (string, error)     { return g.points.Find(name) }
func (g *GG) RootLine(name string) (string, error)      { return g.lines.Find(name) }
func (g *GG) RootCircle(name string) (string, error)     { return g.circles.Find(name) }
func (g *GG) RootDirection(name string) (string, error)  { return g.directions.Find(name) }
func (g *GG) RootLength(name string) (string, error)     { return g.lengths.Find(name) }
func (g *GG) RootAngle(name string) (string, error)      { return g.angles.Find(name) }
func (g *GG) RootRatio(name string) (string, error)      { return g.ratios.Find(name) }
func (g *GG) RootSegment(name string) (string, error)    { return g.segments.Find(name) }
func (g *GG) RootMeasure(name string) (string, error)     { return g.measures.Find(name) }
func (g *GG) RootFracNode(name string) (string, error)    { return g.fracNodes.Find(name) }
func (g *GG) RootDimension(name string) (string, error)   { return g.dimensions.Find(name) }
func (g *GG) RootShape(name string) (string, error)       { return g.shapes.Find(name) }
