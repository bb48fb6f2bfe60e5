// Package numeric implements the out-of-scope numeric sanity filter (spec
// §5): a minimal non-degeneracy check over floating-point coordinates,
// consulted only as an optional filter before a construction step is
// accepted. It never feeds the deductive core — gg/dd/ar never import it.
package numeric
