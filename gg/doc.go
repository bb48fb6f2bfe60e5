// Package gg implements the Geometric Graph (spec §4.6): points, lines,
// circles, triangles, and the derived value nodes (direction, length,
// angle, ratio, segment, measure, fraction, dimension, shape) that together
// carry the prover's evolving set of equivalence classes and incidence
// relations.
//
// Each entity kind is held in its own uf.Forest, keyed by stable string
// names minted from a per-kind counter ("pt0", "ln3", ...), so that merging
// two entities of the same kind is a union-find operation with an
// entity-specific payload transfer callback. Cross-
// kind references (a Line's Direction, a Triangle's Dimension, ...) are
// plain string names into the referenced kind's forest, never pointers, so
// the inherent cycles between kinds (Point↔Line, Line↔Direction,
// Triangle↔Dimension) need no special cycle-breaking.
package gg
