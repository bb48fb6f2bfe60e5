// Package frac provides exact rational arithmetic for the geometry prover.
//
// Every coefficient that flows through the algebraic reasoning engine — angle
// and ratio variables, table rows, LP witnesses — is a Fraction rather than a
// floating-point value, so that row reduction and equality tests never drift
// under accumulated rounding error. A Fraction is always stored reduced
// (gcd(num, den) == 1) with a strictly positive denominator.
//
// The one place floating point is unavoidable is ingestion from the
// out-of-scope numeric sanity module: FromFloat converts a decimal within a
// tolerance into the smallest exact fraction that reproduces it.
package frac
