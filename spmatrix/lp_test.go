package spmatrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/spmatrix"
)

func TestDefaultSolverFeasible(t *testing.T) {
	t.Parallel()

	// x0 + x1 = 3, x0 - x1 = 1 => x0=2, x1=1; minimize x0+x1 (any feasible
	// point has the same cost here since both equations pin the solution).
	m, _ := spmatrix.NewMatrix(2, 2)
	m.ExtendColumns(2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(1, 0, 1)
	_ = m.Set(0, 1, 1)
	_ = m.Set(1, 1, -1)

	solver := spmatrix.NewDefaultSolver()
	x, err := solver.Solve(m, []float64{3, 1}, []float64{1, 1})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if math.Abs(x[0]-2) > 1e-6 || math.Abs(x[1]-1) > 1e-6 {
		t.Fatalf("x = %v, want [2 1]", x)
	}
}

func TestDefaultSolverInfeasible(t *testing.T) {
	t.Parallel()

	// x0 = 1 and x0 = -1 simultaneously is infeasible for x0 >= 0 in either
	// case, but more directly: x0+x1=1, x0+x1=5 is a contradictory system.
	m, _ := spmatrix.NewMatrix(2, 2)
	m.ExtendColumns(2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(1, 0, 1)
	_ = m.Set(0, 1, 1)
	_ = m.Set(1, 1, 1)

	solver := spmatrix.NewDefaultSolver()
	_, err := solver.Solve(m, []float64{1, 5}, []float64{1, 1})
	if !errors.Is(err, spmatrix.ErrInfeasible) {
		t.Fatalf("expected ErrInfeasible, got %v", err)
	}
}

func TestDefaultSolverDimensionMismatch(t *testing.T) {
	t.Parallel()

	m, _ := spmatrix.NewMatrix(2, 2)
	m.ExtendColumns(1)
	solver := spmatrix.NewDefaultSolver()
	_, err := solver.Solve(m, []float64{1}, []float64{1, 2})
	if !errors.Is(err, spmatrix.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}
