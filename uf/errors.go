package uf

import "errors"

// Sentinel errors for the uf package.
var (
	// ErrUnknownNode is returned by Find/Union/Root when asked about a name
	// that was never registered via Add.
	ErrUnknownNode = errors.New("uf: unknown node")
)
