package frac_test

import (
	"errors"
	"math"
	"testing"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
)

func TestNewReduces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		num, den     int64
		wantNum      int64
		wantDen      int64
	}{
		{"already reduced", 3, 4, 3, 4},
		{"common factor", 6, 8, 3, 4},
		{"negative denominator", 3, -4, -3, 4},
		{"both negative", -6, -8, 3, 4},
		{"zero numerator", 0, 5, 0, 1},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := frac.New(tc.num, tc.den)
			if err != nil {
				t.Fatalf("New(%d,%d) returned error: %v", tc.num, tc.den, err)
			}
			if got.Num != tc.wantNum || got.Den != tc.wantDen {
				t.Errorf("New(%d,%d) = %d/%d, want %d/%d", tc.num, tc.den, got.Num, got.Den, tc.wantNum, tc.wantDen)
			}
		})
	}
}

func TestNewZeroDenominator(t *testing.T) {
	t.Parallel()

	_, err := frac.New(1, 0)
	if !errors.Is(err, frac.ErrZeroDenominator) {
		t.Fatalf("expected ErrZeroDenominator, got %v", err)
	}
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := frac.MustNew(1, 2)
	b := frac.MustNew(1, 3)

	if got := a.Add(b); !got.Equal(frac.MustNew(5, 6)) {
		t.Errorf("1/2 + 1/3 = %s, want 5/6", got)
	}
	if got := a.Sub(b); !got.Equal(frac.MustNew(1, 6)) {
		t.Errorf("1/2 - 1/3 = %s, want 1/6", got)
	}
	if got := a.Mul(b); !got.Equal(frac.MustNew(1, 6)) {
		t.Errorf("1/2 * 1/3 = %s, want 1/6", got)
	}
	got, err := a.Div(b)
	if err != nil {
		t.Fatalf("1/2 / 1/3 returned error: %v", err)
	}
	if !got.Equal(frac.MustNew(3, 2)) {
		t.Errorf("1/2 / 1/3 = %s, want 3/2", got)
	}
}

func TestDivByZero(t *testing.T) {
	t.Parallel()

	a := frac.MustNew(1, 2)
	_, err := a.Div(frac.Zero())
	if !errors.Is(err, frac.ErrZeroDenominator) {
		t.Fatalf("expected ErrZeroDenominator, got %v", err)
	}
}

func TestCmpAndOrdering(t *testing.T) {
	t.Parallel()

	half := frac.MustNew(1, 2)
	third := frac.MustNew(1, 3)
	if !third.Less(half) {
		t.Errorf("expected 1/3 < 1/2")
	}
	if !half.Equal(frac.MustNew(2, 4)) {
		t.Errorf("expected 1/2 == 2/4")
	}
}

func TestFromFloatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, d := range []float64{0, 0.5, 0.25, 1.0 / 3.0, -0.75, 2.0} {
		f, err := frac.FromFloat(d)
		if err != nil {
			t.Fatalf("FromFloat(%v) returned error: %v", d, err)
		}
		if math.Abs(f.ToFloat()-d) > frac.DefaultTolerance {
			t.Errorf("FromFloat(%v).ToFloat() = %v, want within tolerance", d, f.ToFloat())
		}
	}
}

func TestFromFloatInvalidTolerance(t *testing.T) {
	t.Parallel()

	_, err := frac.FromFloatTol(0.5, 0)
	if !errors.Is(err, frac.ErrInvalidTolerance) {
		t.Fatalf("expected ErrInvalidTolerance, got %v", err)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if got := frac.MustNew(3, 1).String(); got != "3" {
		t.Errorf("String() for integral fraction = %q, want \"3\"", got)
	}
	if got := frac.MustNew(3, 4).String(); got != "3/4" {
		t.Errorf("String() = %q, want \"3/4\"", got)
	}
}
