package pred

import "errors"

// Sentinel errors for the pred package.
var (
	// ErrUnificationFailed names a hole-binding clash. Hole.SetPoint,
	// SetRational and SetLiteral do not return it: they report a clash as
	// SetUnsuccessful.
	ErrUnificationFailed = errors.New("pred: unification failed")
)
