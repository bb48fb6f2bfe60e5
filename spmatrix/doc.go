// Package spmatrix implements the column-major sparse matrix that backs the
// algebraic reasoning engine's "why" explanations (spec §4.2), plus a thin
// adapter over an external linear-program solver.
//
// Each column is stored as a fixed-capacity pair of parallel arrays
// (row indices, values); a row index of -1 marks an empty slot. This mirrors
// how every derivation registered with the Table (see the artable package)
// appends exactly two columns (+e and -e) to keep the LP's variables
// non-negative, so columns grow far more often than rows and the
// per-column capacity for non-zero entries stays small and fixed.
//
// The LP back-end itself — solve(A, b, c) -> x minimizing cᵀx subject to
// Ax=b, x>=0 — is treated as a replaceable collaborator behind the Solver
// interface; DefaultSolver provides a deterministic two-phase simplex so the
// engine runs standalone, but tests may substitute a fake for reproducible
// witness selection.
package spmatrix
