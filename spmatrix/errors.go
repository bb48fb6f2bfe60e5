package spmatrix

import "errors"

// Sentinel errors for the spmatrix package.
var (
	// ErrBadShape is returned when a non-positive row/column count or
	// capacity is requested.
	ErrBadShape = errors.New("spmatrix: invalid shape")

	// ErrOutOfRange is returned by Set/At when the row or column index is
	// outside the current bounds.
	ErrOutOfRange = errors.New("spmatrix: index out of range")

	// ErrColumnFull is returned by Set when the target column's capacity is
	// exhausted and no existing/zero slot can absorb the write.
	ErrColumnFull = errors.New("spmatrix: column at capacity")

	// ErrIncompatibleDonor is returned by ExtendColumnsFrom when the donor
	// matrix's rows or per-column capacity exceed the receiver's.
	ErrIncompatibleDonor = errors.New("spmatrix: donor matrix incompatible")

	// ErrDimensionMismatch is returned by the LP adapter when b's length does
	// not match the matrix's row count, or c's length does not match its
	// column count.
	ErrDimensionMismatch = errors.New("spmatrix: dimension mismatch")

	// ErrInfeasible is returned by Solve when no non-negative x satisfies
	// Ax = b. Callers (Table.why) must treat this as "not a consequence",
	// not as an internal error.
	ErrInfeasible = errors.New("spmatrix: linear program is infeasible")
)
