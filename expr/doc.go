// Package expr implements the linear-combination algebra (spec §4.3) that
// underlies the algebraic reasoning engine: an Expr is a mapping from
// variable name to an exact rational coefficient (see the frac package),
// always iterated in sorted (lexicographic) key order so that every
// consumer — the Table's row reduction, the LP witness encoding — sees a
// canonical, deterministic form.
//
// Expr values are immutable by convention: every operation (Add, Sub, Scale,
// Replace, Strip) returns a new Expr rather than mutating its receiver.
package expr
