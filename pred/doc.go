// Package pred implements the predicate/template layer (spec §4.7): the 16
// geometric predicate kinds, a Predicate as (kind, argument tuple) with a
// canonical structural hash as its identity, a Template describing a
// predicate shape with unbound holes, and a Clause — an ordered list of
// templates sharing one argument name-space, used as a rule's or
// construction's precondition list.
package pred
