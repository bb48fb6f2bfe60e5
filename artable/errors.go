package artable

import "errors"

// Sentinel errors for the artable package. Per spec §7, an error here maps
// to the ARInternal error kind and is fatal to the current solve.
var (
	// ErrUnknownVariable is returned by Why when the expression to explain
	// references a variable that was never registered via RegisterExpr
	// (i.e. never appeared in an AddEq2/AddEq3/AddEq4 assertion).
	ErrUnknownVariable = errors.New("artable: unknown variable in why")
)
