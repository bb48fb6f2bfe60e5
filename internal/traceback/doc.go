// Package traceback renders a proved goal's derivation chain for the
// output file (spec §6). It is presentation over data the core already
// maintains (Predicate.Why edges) — no deductive logic lives here.
package traceback
