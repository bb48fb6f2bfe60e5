package spmatrix

// Solver abstracts the external linear-program back-end referenced by the
// specification: given an equality system Ax = b and a cost vector c, it
// returns a non-negative x minimizing cᵀx, or reports infeasibility.
//
// The AR engine's "why" explanation (see the artable package) asks this
// question once per derived equality: which subset of registered predicate
// columns can certify it. Implementations MUST be deterministic so that two
// runs over the same input produce bit-identical witnesses (spec §5).
type Solver interface {
	// Solve returns a non-negative x of length A.Cols() with A·x = b
	// minimizing cᵀx, or ErrInfeasible if no such x exists.
	// Fails with ErrDimensionMismatch if len(b) != A.Rows() or
	// len(c) != A.Cols().
	Solve(a *Matrix, b, c []float64) ([]float64, error)
}

// simplexEps is the numeric tolerance used to treat reduced costs, pivot
// elements, and objective values as zero. It intentionally matches the
// tolerance used for Fraction<->float conversion elsewhere in the solver so
// that witness selection is consistent across the float/rational boundary.
const simplexEps = 1e-9

// maxSimplexPivots bounds the pivot loop. Bland's anti-cycling rule
// guarantees termination, but a generous cap avoids an unbounded loop should
// a caller feed a malformed system.
const maxSimplexPivots = 100_000

// DefaultSolver is a deterministic two-phase primal simplex. Phase 1
// minimizes the sum of artificial variables to find an initial feasible
// basis (or prove infeasibility); phase 2 then minimizes the caller's actual
// cost over that basis. Both phases use Bland's rule (smallest-index
// entering/leaving variable) so the sequence of pivots — and hence the
// returned witness — is identical for identical input on every run.
type DefaultSolver struct{}

// NewDefaultSolver constructs the package's built-in deterministic solver.
func NewDefaultSolver() *DefaultSolver { return &DefaultSolver{} }

// Solve implements Solver.
func (s *DefaultSolver) Solve(a *Matrix, b, c []float64) ([]float64, error) {
	m := a.Rows()
	n := a.Cols()
	if len(b) != m {
		return nil, ErrDimensionMismatch
	}
	if len(c) != n {
		return nil, ErrDimensionMismatch
	}
	if m == 0 {
		// No constraints: x=0 trivially minimizes any cost subject to x>=0,
		// as long as n>=0.
		return make([]float64, n), nil
	}

	dense := a.Dense()

	// Stage 1: normalize so every RHS is non-negative (flip row sign).
	rows := make([][]float64, m)
	rhs := make([]float64, m)
	for i := 0; i < m; i++ {
		row := make([]float64, n)
		copy(row, dense[i])
		bi := b[i]
		if bi < 0 {
			for j := range row {
				row[j] = -row[j]
			}
			bi = -bi
		}
		rows[i] = row
		rhs[i] = bi
	}

	// Stage 2: build the phase-1 tableau with one artificial identity column
	// appended per row, and basis initialized to those artificials.
	total := n + m
	tableau := make([][]float64, m)
	for i := 0; i < m; i++ {
		r := make([]float64, total+1)
		copy(r, rows[i])
		r[n+i] = 1
		r[total] = rhs[i]
		tableau[i] = r
	}
	basis := make([]int, m)
	for i := range basis {
		basis[i] = n + i
	}

	phase1Cost := make([]float64, total)
	for j := n; j < total; j++ {
		phase1Cost[j] = 1
	}
	objRow := buildObjectiveRow(tableau, basis, phase1Cost, total)

	if err := runSimplex(tableau, objRow, basis, total); err != nil {
		return nil, err
	}
	if -objRow[total] > simplexEps {
		return nil, ErrInfeasible
	}

	// Stage 3: phase 2, minimizing the caller's actual cost over the
	// feasible basis found in phase 1. Artificial columns are dropped from
	// consideration as entering candidates (they stay out of the reduced
	// tableau entirely); any artificial still basic must carry value ~0.
	phase2Cost := make([]float64, n)
	copy(phase2Cost, c)
	obj2 := buildObjectiveRowN(tableau, basis, phase2Cost, n)
	trimColumns(tableau, n)

	if err := runSimplex(tableau, obj2, basis, n); err != nil {
		return nil, err
	}

	x := make([]float64, n)
	for i := 0; i < m; i++ {
		if basis[i] < n {
			x[basis[i]] = tableau[i][n]
		}
	}

	return x, nil
}

// buildObjectiveRow computes the reduced-cost row obj[j] = cost[j] -
// sum_i cost[basis[i]]*tableau[i][j], over all total+1 columns (the last
// being the running objective value, negated).
func buildObjectiveRow(tableau [][]float64, basis []int, cost []float64, total int) []float64 {
	obj := make([]float64, total+1)
	copy(obj, cost)
	for i, bi := range basis {
		cb := cost[bi]
		if cb == 0 {
			continue
		}
		row := tableau[i]
		for j := 0; j <= total; j++ {
			obj[j] -= cb * row[j]
		}
	}

	return obj
}

// buildObjectiveRowN is buildObjectiveRow restricted to the first n
// structural columns (plus the RHS/objective column at index n), used when
// re-entering phase 2 with artificial columns no longer considered.
func buildObjectiveRowN(tableau [][]float64, basis []int, cost []float64, n int) []float64 {
	obj := make([]float64, n+1)
	copy(obj, cost)
	for i, bi := range basis {
		var cb float64
		if bi < n {
			cb = cost[bi]
		}
		if cb == 0 {
			continue
		}
		row := tableau[i]
		for j := 0; j < n; j++ {
			obj[j] -= cb * row[j]
		}
		obj[n] -= cb * row[len(row)-1]
	}

	return obj
}

// trimColumns mutates tableau in place, keeping only the first n structural
// columns plus the trailing RHS column and discarding artificial columns
// (which phase 2 never re-enters).
func trimColumns(tableau [][]float64, n int) {
	for i, row := range tableau {
		rhsVal := row[len(row)-1]
		r := make([]float64, n+1)
		copy(r, row[:n])
		r[n] = rhsVal
		tableau[i] = r
	}
}

// runSimplex drives the tableau to optimality in place using Bland's rule:
// the entering column is the smallest-index column with a negative reduced
// cost, and the leaving row is chosen by the minimum ratio test, ties broken
// by the smallest basic-variable index. This guarantees termination without
// cycling, and makes the pivot sequence (hence any witness read off the
// final basis) independent of floating-point iteration order.
func runSimplex(tableau [][]float64, obj []float64, basis []int, nCols int) error {
	m := len(tableau)
	for iter := 0; iter < maxSimplexPivots; iter++ {
		enter := -1
		for j := 0; j < nCols; j++ {
			if obj[j] < -simplexEps {
				enter = j
				break
			}
		}
		if enter == -1 {
			return nil // optimal
		}

		leave := -1
		bestRatio := 0.0
		for i := 0; i < m; i++ {
			aij := tableau[i][enter]
			if aij <= simplexEps {
				continue
			}
			ratio := tableau[i][len(tableau[i])-1] / aij
			switch {
			case leave == -1:
				leave, bestRatio = i, ratio
			case ratio < bestRatio-simplexEps:
				leave, bestRatio = i, ratio
			case ratio < bestRatio+simplexEps && basis[i] < basis[leave]:
				leave, bestRatio = i, ratio
			}
		}
		if leave == -1 {
			// Unbounded: cannot happen for a well-formed equality/witness
			// system derived from a finite predicate set, but report rather
			// than loop.
			return ErrInfeasible
		}

		pivot(tableau, obj, leave, enter)
		basis[leave] = enter
	}

	return ErrInfeasible
}

// pivot performs a single Gauss-Jordan elimination step around (leave,
// enter): the pivot row is normalized to 1 at the pivot column, then every
// other row (including the objective row) has the appropriate multiple of
// the pivot row subtracted so that column `enter` becomes a unit column.
func pivot(tableau [][]float64, obj []float64, leave, enter int) {
	row := tableau[leave]
	pv := row[enter]
	for j := range row {
		row[j] /= pv
	}
	for i, other := range tableau {
		if i == leave {
			continue
		}
		factor := other[enter]
		if factor == 0 {
			continue
		}
		for j := range other {
			other[j] -= factor * row[j]
		}
	}
	factor := obj[enter]
	if factor != 0 {
		for j := range obj {
			obj[j] -= factor * row[j]
		}
	}
}
