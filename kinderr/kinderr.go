// Package kinderr implements the error-kind taxonomy of spec §7: a small set
// of named failure categories (parse, graph-invariant, deduction,
// algebraic, numeric, contradiction) wrapped over github.com/pkg/errors so
// callers can both get a human-readable chain and recover the kind via
// KindOf.
package kinderr

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Kind names one of the failure categories spec §7 distinguishes. These are
// kinds, not Go types: every Kind is carried by the same wrapper, recovered
// with KindOf.
type Kind int

const (
	// InvalidTextualInput is a parse failure in a rule/construction/problem
	// file. The solver does not start.
	InvalidTextualInput Kind = iota
	// GGraphInternal is an invariant violation discovered while merging
	// Geometric Graph entities. Fatal to the current solve.
	GGraphInternal
	// DDInternal is a template referencing an undefined argument or
	// predicate kind. Fatal, normally caught at rule-file load.
	DDInternal
	// ARInternal is an algebraic-reasoning failure: an unknown variable in
	// a Why query, or a matrix indexing error. Fatal to the current solve.
	ARInternal
	// Numeric is a Frac division-by-zero or an irresolvable coordinate in
	// the (out-of-scope) numeric sanity module. Fatal to the current solve.
	Numeric
	// Contradiction is a derivation that produced a known-false fact (e.g.
	// perp where para already holds). Not fatal in the ordinary sense: the
	// caller may treat it as a proof by contradiction or as problem
	// inconsistency.
	Contradiction
)

var kindNames = [...]string{
	InvalidTextualInput: "invalid_textual_input",
	GGraphInternal:      "ggraph_internal",
	DDInternal:          "dd_internal",
	ARInternal:          "ar_internal",
	Numeric:             "numeric",
	Contradiction:       "contradiction",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// kindedError pairs a Kind with the underlying pkg/errors-wrapped chain.
type kindedError struct {
	kind Kind
	err  error
}

func (e *kindedError) Error() string { return e.kind.String() + ": " + e.err.Error() }
func (e *kindedError) Unwrap() error { return e.err }

// New builds a fresh error of the given kind.
func New(kind Kind, msg string) error {
	return &kindedError{kind: kind, err: errors.New(msg)}
}

// Wrap attaches kind and msg to err, or returns nil if err is nil.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}

	return &kindedError{kind: kind, err: errors.Wrap(err, msg)}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(kind Kind, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	return &kindedError{kind: kind, err: errors.Wrapf(err, format, args...)}
}

// KindOf recovers the Kind attached to err by New/Wrap/Wrapf, anywhere in
// err's unwrap chain.
func KindOf(err error) (Kind, bool) {
	var ke *kindedError
	if stderrors.As(err, &ke) {
		return ke.kind, true
	}

	return 0, false
}

// Is reports whether err was tagged with kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)

	return ok && k == kind
}
