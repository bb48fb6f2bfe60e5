// Package artable implements the Table (spec §4.4): the row-reduced system
// of linear equalities over expr.Expr that is the algebraic core of the
// algebraic reasoning (AR) engine.
//
// A Table maintains var_to_expr, a map from variable name to the expression
// it currently equals, subject to I-Table: every variable appearing in
// var_to_expr[v] is lexicographically smaller than v (or is the table's
// designated constant variable). Adding an equality (AddEq2/3/4, or the
// lower-level AddExpr) folds it into this reduced form; GetAllEqs then
// enumerates the consequences — pairs of equal variables, pairs whose
// difference is a constant, and quadruples whose differences coincide —
// that have not yet been surfaced to callers.
//
// Table also owns the "why" machinery: RegisterExpr appends the asserted
// equality (as a +e/-e column pair, per spec §4.4) to an internal sparse
// matrix together with the predicate that justified it, so that Why can
// later ask an LP solver which subset of registered predicates reconstructs
// a derived equality by addition.
package artable
