package gg

import "errors"

// Sentinel errors for the gg package. The driver reports ErrIncompatiblePerp
// as a Contradiction and every other gg error as GGraphInternal; either is
// fatal to the current solve.
var (
	// ErrUnknownEntity is returned when an operation names an entity not
	// present in its arena.
	ErrUnknownEntity = errors.New("gg: unknown entity")

	// ErrDegenerateTriangle is returned when a point merge would collapse
	// two of a triangle's three vertices into one.
	ErrDegenerateTriangle = errors.New("gg: degenerate triangle after merge")

	// ErrIncompatiblePerp is returned when merging two directions would
	// require a direction to be perpendicular to itself, violating I3.
	ErrIncompatiblePerp = errors.New("gg: incompatible perpendicular relation")
)
