// Package dd implements the deductive database: the template store,
// predicate uniquing, matcher dispatch, and recursive rule matching that
// turn a Geometric Graph's current facts into newly derivable predicates.
package dd
