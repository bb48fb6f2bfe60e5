package frac

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultTolerance is the TOL referenced throughout the specification for
// float-to-fraction conversion and for deciding when a coefficient or
// residual should be treated as zero.
const DefaultTolerance = 1e-9

// maxFromFloatIterations bounds the search in FromFloatTol so that a decimal
// that never converges (e.g. an irrational approximation) fails fast with
// ErrNumericNonConvergent instead of looping forever.
const maxFromFloatIterations = 1_000_000

// Fraction is an exact rational number num/den, always stored reduced to
// lowest terms with Den > 0. The zero value Fraction{} is NOT a valid
// fraction (Den == 0); always construct via New, Zero, or arithmetic on an
// existing valid Fraction.
type Fraction struct {
	Num int64 // numerator, carries the sign
	Den int64 // denominator, always > 0 after construction
}

// Zero is the additive identity, 0/1.
func Zero() Fraction { return Fraction{Num: 0, Den: 1} }

// One is the multiplicative identity, 1/1.
func One() Fraction { return Fraction{Num: 1, Den: 1} }

// New constructs a reduced Fraction num/den.
// Fails with ErrZeroDenominator if den == 0.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	if num == 0 {
		return Fraction{Num: 0, Den: 1}, nil
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs64(num), den)

	return Fraction{Num: num / g, Den: den / g}, nil
}

// MustNew is like New but panics on error. Reserved for call sites
// constructing a Fraction from a compile-time-known, non-zero denominator.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return f
}

// FromFloat converts a decimal to the smallest exact Fraction that reproduces
// it within DefaultTolerance.
func FromFloat(d float64) (Fraction, error) {
	return FromFloatTol(d, DefaultTolerance)
}

// FromFloatTol converts a decimal to the smallest exact Fraction that
// reproduces it within the given tolerance.
//
// Algorithm (per spec §4.1): find the smallest positive integer k such that
// k·d is within tol of an integer; num := round(k·d), den := k.
func FromFloatTol(d float64, tol float64) (Fraction, error) {
	if tol <= 0 {
		return Fraction{}, ErrInvalidTolerance
	}
	if math.Abs(d) < tol {
		return Zero(), nil
	}
	for k := int64(1); k <= maxFromFloatIterations; k++ {
		scaled := d * float64(k)
		rounded := math.Round(scaled)
		if math.Abs(scaled-rounded) <= tol {
			return New(int64(rounded), k)
		}
	}

	return Fraction{}, ErrNumericNonConvergent
}

// ToFloat returns a lossy float64 approximation of f.
func (f Fraction) ToFloat() float64 {
	return float64(f.Num) / float64(f.Den)
}

// IsZero reports whether f is exactly zero.
func (f Fraction) IsZero() bool { return f.Num == 0 }

// Neg returns -f.
func (f Fraction) Neg() Fraction { return Fraction{Num: -f.Num, Den: f.Den} }

// Abs returns |f|.
func (f Fraction) Abs() Fraction {
	if f.Num < 0 {
		return f.Neg()
	}

	return f
}

// Add returns f + o. Both operands carry Den > 0, so the result is always
// constructible; no error path is reachable.
func (f Fraction) Add(o Fraction) Fraction {
	r, _ := New(f.Num*o.Den+o.Num*f.Den, f.Den*o.Den)

	return r
}

// Sub returns f - o.
func (f Fraction) Sub(o Fraction) Fraction {
	r, _ := New(f.Num*o.Den-o.Num*f.Den, f.Den*o.Den)

	return r
}

// Mul returns f * o.
func (f Fraction) Mul(o Fraction) Fraction {
	r, _ := New(f.Num*o.Num, f.Den*o.Den)

	return r
}

// Reciprocal returns 1/f. Fails with ErrZeroDenominator if f is zero.
func (f Fraction) Reciprocal() (Fraction, error) {
	if f.Num == 0 {
		return Fraction{}, ErrZeroDenominator
	}

	return New(f.Den, f.Num)
}

// Div returns f / o. Fails with ErrZeroDenominator if o is zero.
func (f Fraction) Div(o Fraction) (Fraction, error) {
	if o.Num == 0 {
		return Fraction{}, ErrZeroDenominator
	}

	return New(f.Num*o.Den, f.Den*o.Num)
}

// Cmp returns -1, 0, or +1 as f is less than, equal to, or greater than o.
// Cross-multiplication is safe because both denominators are positive.
func (f Fraction) Cmp(o Fraction) int {
	lhs := f.Num * o.Den
	rhs := o.Num * f.Den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Less reports whether f < o.
func (f Fraction) Less(o Fraction) bool { return f.Cmp(o) < 0 }

// Equal reports whether f == o (after reduction, this is just field equality,
// but Cmp is used so unreduced callers constructed via struct literal still
// compare correctly).
func (f Fraction) Equal(o Fraction) bool { return f.Cmp(o) == 0 }

// String renders f as "num/den", collapsing integral fractions to "num".
func (f Fraction) String() string {
	if f.Den == 1 {
		return fmt.Sprintf("%d", f.Num)
	}

	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Parse inverts String: "num" or "num/den" becomes the corresponding
// reduced Fraction. Fails with ErrInvalidLiteral if s is not one of those
// two shapes, or ErrZeroDenominator if den parses as 0.
func Parse(s string) (Fraction, error) {
	num, den, ok := strings.Cut(s, "/")
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return Fraction{}, ErrInvalidLiteral
	}
	if !ok {
		return New(n, 1)
	}
	d, err := strconv.ParseInt(den, 10, 64)
	if err != nil {
		return Fraction{}, ErrInvalidLiteral
	}

	return New(n, d)
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// gcd computes the greatest common divisor of two non-negative int64 values,
// with gcd(0, 0) defined as 1 so callers never divide by zero when reducing.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}

	return a
}
