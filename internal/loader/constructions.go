package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cast"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

// postcondSpec is one postcondition predicate template: a Kind plus its
// hole names in construction-argument order, with any literal rational
// argument already split out into constants.
type postcondSpec struct {
	kind      pred.Kind
	names     []string
	constants map[string]frac.Fraction
}

// numericHint is one "<outs> = <kind> <args>" block from a construction's
// numerics line: the coordinate-placement recipe original_source/'s
// engine would evaluate. internal/numeric's sanity filter consults
// floatArgs as a permissive, best-effort reading of the literal
// coordinates/lengths named — it never drives the deductive core.
type numericHint struct {
	outs      []string
	kind      string
	args      []string
	floatArgs []float64
}

// construction is a parsed construction-file entry (spec §6): the
// placeholder argument names a problem-file invocation binds, plus its
// postcondition templates. Preconditions and numerics are parsed (so a
// malformed line is still caught) but not evaluated against coordinates:
// preconditions are an instantiation-time precheck the loader always
// treats as satisfied (construct_no_checks semantics,
// original_source/src/DD/Construction.cpp), and numeric placement is out
// of the deductive core's scope (spec's Non-goals).
type construction struct {
	name           string
	newArgs        []string
	existingArgs   []string
	postconditions []postcondSpec
	numerics       []numericHint
}

// ParseConstructions reads a construction file and returns every
// construction keyed by name.
func ParseConstructions(r io.Reader) (map[string]*construction, error) {
	out := make(map[string]*construction)
	var errs *multierror.Error

	groups, err := constructionGroups(r)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	for _, grp := range groups {
		c, err := parseConstructionGroup(grp.lines)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("construction file group at line %d: %w", grp.startLine, err))
		} else {
			out[c.name] = c
		}
	}

	return out, errs.ErrorOrNil()
}

func parseConstructionGroup(group []string) (*construction, error) {
	name, newArgs, existingArgs, err := parseDecl(group[0])
	if err != nil {
		return nil, err
	}

	declared := make(map[string]bool, len(newArgs)+len(existingArgs))
	for _, n := range newArgs {
		declared[n] = true
	}
	for _, n := range existingArgs {
		declared[n] = true
	}

	// Preconditions (group[1]) are parsed only for grammar validation; see
	// construction's doc comment for why they are not enforced.
	litCounter := 0
	for _, spec := range splitTrim(group[1], ",") {
		if _, names, consts, err := parsePredSpec(spec, &litCounter); err != nil {
			return nil, err
		} else if err := checkArgsDeclared(names, consts, declared); err != nil {
			return nil, err
		}
	}

	var posts []postcondSpec
	for _, spec := range splitTrim(group[2], ",") {
		kind, names, consts, err := parsePredSpec(spec, &litCounter)
		if err != nil {
			return nil, err
		}
		if err := checkArgsDeclared(names, consts, declared); err != nil {
			return nil, err
		}
		posts = append(posts, postcondSpec{kind: kind, names: names, constants: consts})
	}

	var numerics []numericHint
	for _, block := range splitTrim(group[3], ";") {
		hint, err := parseNumericHint(block)
		if err != nil {
			return nil, err
		}
		numerics = append(numerics, hint)
	}

	return &construction{name: name, newArgs: newArgs, existingArgs: existingArgs, postconditions: posts, numerics: numerics}, nil
}

// parseNumericHint parses one "<outs> = <kind> <args>" numerics block.
// Every arg is offered to cast.ToFloat64E; those that coerce cleanly are
// kept as floatArgs for internal/numeric, and a non-numeric arg is simply a
// named reference rather than a malformed token.
func parseNumericHint(block string) (numericHint, error) {
	outsPart, rhs, ok := strings.Cut(block, "=")
	if !ok {
		return numericHint{}, ErrMalformedLine
	}
	fields := strings.Fields(strings.TrimSpace(rhs))
	if len(fields) < 1 {
		return numericHint{}, ErrMalformedLine
	}

	args := fields[1:]
	var floatArgs []float64
	for _, a := range args {
		if f, err := cast.ToFloat64E(a); err == nil {
			floatArgs = append(floatArgs, f)
		}
	}

	return numericHint{
		outs:      strings.Fields(strings.TrimSpace(outsPart)),
		kind:      fields[0],
		args:      args,
		floatArgs: floatArgs,
	}, nil
}

// parseDecl parses "<name> <new-args…> : <existing-args…>" (spec §6),
// shared by both the construction file's declaration line and a problem
// file's per-invocation decl (original_source/src/DD/Construction.cpp's
// parse_decl_string).
func parseDecl(line string) (name string, newArgs, existingArgs []string, err error) {
	colon := strings.Index(line, ":")
	var head string
	if colon < 0 {
		head = line
	} else {
		head = line[:colon]
		existingArgs = strings.Fields(strings.TrimSpace(line[colon+1:]))
	}
	fields := strings.Fields(strings.TrimSpace(head))
	if len(fields) < 1 {
		return "", nil, nil, ErrMalformedLine
	}

	return fields[0], fields[1:], existingArgs, nil
}

// constructionGroup is one construction's four physical lines (decl,
// preconditions, postconditions, numerics) plus its starting line number,
// for error messages.
type constructionGroup struct {
	lines     []string
	startLine int
}

// constructionGroups splits a construction file into fixed four-line
// groups. Comment lines are dropped outright; a blank line is only treated
// as an inter-group separator when it appears where a declaration line is
// expected, since the preconditions and numerics lines are themselves
// legitimately empty for a construction that has none.
func constructionGroups(r io.Reader) ([]constructionGroup, error) {
	var lines []string
	lineNos := []int{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, trimmed)
		lineNos = append(lineNos, lineNo)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	var groups []constructionGroup
	var trailing error
	i := 0
	for i < len(lines) {
		if lines[i] == "" {
			i++

			continue
		}
		if i+4 > len(lines) {
			trailing = fmt.Errorf("construction file: trailing incomplete group starting at line %d", lineNos[i])

			break
		}
		groups = append(groups, constructionGroup{lines: lines[i : i+4], startLine: lineNos[i]})
		i += 4
	}

	return groups, trailing
}
