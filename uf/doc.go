// Package uf implements the generic union-find (disjoint-set) forest
// underlying every entity kind in the gg package: path-compressed root
// resolution, union with a caller-supplied merge callback, and deterministic
// iteration helpers (sorted keys, roots, and pairs/triples/quadruples of
// keys) used throughout the DD and AR engines to keep enumeration order
// reproducible across runs.
//
// uf itself knows nothing about geometry: the entity-specific merge rules
// (point/line/direction merging, isosceles-mask recomputation, and so on)
// live in gg and are supplied to Union as a plain function.
package uf
