package frac

import "errors"

// Sentinel errors for the frac package. Callers MUST use errors.Is to branch
// on semantics rather than comparing error strings.
var (
	// ErrZeroDenominator is returned when a Fraction would be constructed,
	// or a division performed, with a zero denominator/divisor.
	ErrZeroDenominator = errors.New("frac: zero denominator")

	// ErrInvalidTolerance is returned when FromFloat/FromFloatTol is called
	// with a non-positive tolerance.
	ErrInvalidTolerance = errors.New("frac: tolerance must be positive")

	// ErrNumericNonConvergent is returned when FromFloat cannot find a
	// denominator within maxFromFloatIterations that reproduces the decimal
	// within tolerance. This maps to the Numeric error kind.
	ErrNumericNonConvergent = errors.New("frac: decimal did not converge to a fraction")

	// ErrInvalidLiteral is returned when Parse is given a string that is not
	// "num" or "num/den".
	ErrInvalidLiteral = errors.New("frac: invalid fraction literal")
)
