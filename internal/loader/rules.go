package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/dd"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/frac"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

// ParseRules reads a rule file (spec §6: "<point-args> : <premises> =>
// <conclusion>" per non-comment line) and returns every rule it names. Every
// malformed line is accumulated into a single multierror rather than
// stopping at the first one, so a rule-file author sees every mistake in
// one pass.
func ParseRules(r io.Reader) ([]*dd.Rule, error) {
	var rules []*dd.Rule
	var errs *multierror.Error

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rule, err := parseRuleLine(lineNo, line)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("rule file line %d: %w", lineNo, err))

			continue
		}
		rules = append(rules, rule)
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}

	return rules, errs.ErrorOrNil()
}

func parseRuleLine(lineNo int, line string) (*dd.Rule, error) {
	colon := strings.Index(line, ":")
	arrow := strings.Index(line, "=>")
	if colon < 0 || arrow < 0 || arrow < colon {
		return nil, ErrMalformedLine
	}

	pointArgs := fieldSet(line[:colon])
	premisesPart := strings.TrimSpace(line[colon+1 : arrow])
	conclusionPart := strings.TrimSpace(line[arrow+2:])

	litCounter := 0
	constants := make(map[string]frac.Fraction)

	var premiseSpecs [][2]interface{}
	for _, spec := range splitTrim(premisesPart, ",") {
		kind, names, consts, err := parsePredSpec(spec, &litCounter)
		if err != nil {
			return nil, err
		}
		if kind == pred.SameSideKind || kind == pred.ConvexKind {
			return nil, ErrUnmatchablePremiseKind
		}
		if err := checkArgsDeclared(names, consts, pointArgs); err != nil {
			return nil, err
		}
		mergeConstants(constants, consts)
		premiseSpecs = append(premiseSpecs, [2]interface{}{kind, names})
	}

	concKind, concNames, concConsts, err := parsePredSpec(conclusionPart, &litCounter)
	if err != nil {
		return nil, err
	}
	if err := checkArgsDeclared(concNames, concConsts, pointArgs); err != nil {
		return nil, err
	}
	mergeConstants(constants, concConsts)

	return dd.NewRuleWithConstants(fmt.Sprintf("rule_line_%d", lineNo), premiseSpecs, concKind, concNames, constants)
}
