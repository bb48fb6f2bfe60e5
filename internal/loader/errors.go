package loader

import "github.com/pkg/errors"

// ErrUnknownConstruction is returned when a problem file invokes a
// construction name absent from the loaded construction file.
var ErrUnknownConstruction = errors.New("loader: unknown construction name")

// ErrUnknownPredicateKind is returned when a rule/construction template
// line names a predicate token not in pred.Kind's 16 recognized kinds.
var ErrUnknownPredicateKind = errors.New("loader: unrecognized predicate kind token")

// ErrMalformedLine is returned for a rule/construction/problem line that
// does not match its expected grammar.
var ErrMalformedLine = errors.New("loader: malformed line")

// ErrUnknownProblem is returned when the requested problem name has no
// matching section in the problem file.
var ErrUnknownProblem = errors.New("loader: unknown problem name")

// ErrUnmatchablePremiseKind is returned when a rule-file premise names
// sameside or convex: dd/matchers.go's verify has no case for either kind
// (DESIGN.md documents both as conclusion-only, synthesizing to a no-op),
// so a rule that tried to match one as a premise would fail every Search
// call with dd.ErrUnknownKind. Rejecting the rule file at load time turns
// that into an upfront InvalidTextualInput instead of a deferred DDInternal
// surfacing only once the rule is actually searched.
var ErrUnmatchablePremiseKind = errors.New("loader: sameside/convex cannot be used as a rule premise")
