package dd

import "github.com/pkg/errors"

// ErrUnknownKind is returned when a matcher is requested for a Kind with no
// registered matcher.
var ErrUnknownKind = errors.New("dd: no matcher registered for this predicate kind")

// ErrArityMismatch is returned when a rule or construction template is built
// with a hole count that does not match its Kind's expected arity.
var ErrArityMismatch = errors.New("dd: argument count does not match predicate kind")
