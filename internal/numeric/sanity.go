package numeric

import (
	"crypto/rand"
	"math"
	"math/big"
	mrand "math/rand"
	"sync"
)

var (
	seedOnce sync.Once
	process  *mrand.Rand
)

// processRand returns the package's single PRNG, seeded from crypto/rand
// the first time it is touched and never reseeded afterward (spec §5's
// "initialized once per process from a non-deterministic seed").
func processRand() *mrand.Rand {
	seedOnce.Do(func() {
		seed := int64(1)
		if n, err := rand.Int(rand.Reader, big.NewInt(1<<62)); err == nil {
			seed = n.Int64()
		}
		process = mrand.New(mrand.NewSource(seed))
	})

	return process
}

// Point is a floating-point coordinate, used only for the sanity filter —
// the deductive core never reasons about coordinates.
type Point struct {
	X, Y float64
}

// Sanity is the optional non-degeneracy filter a construction step may
// consult before accepting a randomized point placement. A disabled Sanity
// accepts everything, matching the "gated behind a constructor flag"
// requirement.
type Sanity struct {
	enabled bool
	rng     *mrand.Rand
}

// NewSanity builds a Sanity filter. When enabled is false, Check always
// passes and RandomPoint still returns coordinates (callers that want no
// randomization at all should simply not call this package).
func NewSanity(enabled bool) *Sanity {
	return &Sanity{enabled: enabled, rng: processRand()}
}

// Enabled reports whether s actually filters.
func (s *Sanity) Enabled() bool { return s.enabled }

// RandomPoint returns a point with both coordinates uniform in
// [-box, box], for placing a construction's points before degeneracy
// testing.
func (s *Sanity) RandomPoint(box float64) Point {
	return Point{
		X: (s.rng.Float64()*2 - 1) * box,
		Y: (s.rng.Float64()*2 - 1) * box,
	}
}

// epsilon bounds the floating-point slack tolerated before three/four
// points are treated as genuinely collinear/concyclic rather than merely
// close after rounding.
const epsilon = 1e-9

// Collinear reports whether a, b, c lie on a common line within epsilon.
func Collinear(a, b, c Point) bool {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)

	return math.Abs(cross) < epsilon
}

// Concyclic reports whether a, b, c, d lie on a common circle within
// epsilon, via the standard 4x4 determinant test.
func Concyclic(a, b, c, d Point) bool {
	row := func(p Point) [3]float64 {
		return [3]float64{p.X, p.Y, p.X*p.X + p.Y*p.Y}
	}
	ra, rb, rc, rd := row(a), row(b), row(c), row(d)

	// Determinant of the 4x4 matrix [x y x²+y² 1] for each point, expanded
	// along the constant last column.
	det3 := func(m [3][3]float64) float64 {
		return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
			m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
			m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	}

	d0 := det3([3][3]float64{rb, rc, rd})
	d1 := det3([3][3]float64{ra, rc, rd})
	d2 := det3([3][3]float64{ra, rb, rd})
	d3 := det3([3][3]float64{ra, rb, rc})

	det := -d0 + d1 - d2 + d3

	return math.Abs(det) < epsilon
}

// Check reports whether a candidate placement is acceptable: true
// unconditionally when s is disabled, otherwise true iff none of the given
// degeneracy flags fired.
func (s *Sanity) Check(degenerate ...bool) bool {
	if !s.enabled {
		return true
	}
	for _, d := range degenerate {
		if d {
			return false
		}
	}

	return true
}
