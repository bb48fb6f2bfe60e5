// Package driver implements the top-level proof loop (spec §4.10): it
// alternates the deductive database's rule search with the algebraic
// reasoning engine's derivation pass, folding each round's newly found
// predicates back into the Geometric Graph and both artable.Tables, until
// the goal predicate is matched or a round adds nothing new.
package driver
