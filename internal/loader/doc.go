// Package loader parses the three line-oriented text file formats (spec
// §6): the rule file, the construction file, and the problem file. It
// builds a ready-to-run *dd.DD and *gg.GG from them, asserting each
// construction stage's postconditions as base predicates for the driver's
// first synthesis round to fold in.
package loader
