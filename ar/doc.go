// Package ar implements the algebraic reasoning engine: two artable.Table
// instances (one over direction variables in half-turn units, one over
// length variables as plain ratios) that accumulate asserted linear
// equalities and periodically surface newly provable consequences back as
// geometric predicates (spec §4.9).
package ar
