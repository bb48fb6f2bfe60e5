package loader

import (
	"bufio"
	"io"
	"strings"

	"github.com/DavidToh2/GeometryTheoremProver-sub000/dd"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/gg"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

// extractSection returns the body of problem file section name (spec §6):
// a line equal to name introduces the section, and every following
// non-comment line up to the next blank line, section header or EOF is its
// body, joined with a single space.
func extractSection(r io.Reader, name string) (string, error) {
	var body []string
	found := false
	inSection := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			if inSection {
				break
			}

			continue
		}
		if strings.HasPrefix(raw, "#") {
			continue
		}
		if !strings.ContainsAny(raw, "=;?:") {
			// A bare token line is a section header.
			if inSection {
				break
			}
			if raw == name {
				found = true
				inSection = true
			}

			continue
		}
		if inSection {
			body = append(body, raw)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	if !found {
		return "", errorf(ErrUnknownProblem, name)
	}

	return strings.Join(body, " "), nil
}

// LoadProblem executes a problem file's named section against the given
// constructions: it allocates a fresh gg.GG point per distinct point label
// named in the construction stages, instantiates every invoked
// construction's postconditions as base predicates inserted into d, and
// sets d's goal conclusion from the trailing "? <goal-predicate>" clause.
// It returns the problem-level point labels in declaration order, for a
// caller that wants to name points in its own output (cmd/geoprove's
// Points: block).
func LoadProblem(r io.Reader, problemName string, constructions map[string]*construction, g *gg.GG, d *dd.DD) ([]string, error) {
	body, err := extractSection(r, problemName)
	if err != nil {
		return nil, err
	}

	stagesPart, goalPart, ok := strings.Cut(body, "?")
	if !ok {
		return nil, ErrMalformedLine
	}

	labels := make(map[string]string)
	var order []string
	for _, stage := range splitTrim(stagesPart, ";") {
		if err := runStage(stage, constructions, g, d, labels, &order); err != nil {
			return nil, err
		}
	}

	goalKind, goalNames, goalConsts, err := parsePredSpec(strings.TrimSpace(goalPart), new(int))
	if err != nil {
		return nil, err
	}
	tmpl := pred.NewTemplate(goalKind, goalNames...)
	for _, h := range tmpl.Holes {
		if lit, isLit := goalConsts[h.Name]; isLit {
			h.SetRational(lit)

			continue
		}
		id, ok := labels[h.Name]
		if !ok {
			return nil, errorf(ErrMalformedLine, h.Name)
		}
		h.SetPoint(id)
	}
	d.SetConclusion(tmpl)

	return order, nil
}

// runStage executes one "<new-points> = <name> <args>, …" construction
// stage (spec §6), mutating labels (problem-level point label -> internal
// gg point id) and *order (labels in first-seen order) and inserting every
// invoked construction's postconditions into d.
func runStage(stage string, constructions map[string]*construction, g *gg.GG, d *dd.DD, labels map[string]string, order *[]string) error {
	newPointsPart, invocationsPart, ok := strings.Cut(stage, "=")
	if !ok {
		return ErrMalformedLine
	}

	queue := strings.Fields(newPointsPart)

	for _, invocation := range splitTrim(invocationsPart, ",") {
		fields := strings.Fields(invocation)
		if len(fields) < 1 {
			return ErrMalformedLine
		}
		def, ok := constructions[fields[0]]
		if !ok {
			return errorf(ErrUnknownConstruction, fields[0])
		}
		existingArgs := fields[1:]
		if len(existingArgs) != len(def.existingArgs) {
			return ErrMalformedLine
		}
		if len(queue) < len(def.newArgs) {
			return ErrMalformedLine
		}

		local := make(map[string]string, len(def.newArgs)+len(def.existingArgs))
		for _, placeholder := range def.newArgs {
			label := queue[0]
			queue = queue[1:]
			if _, seen := labels[label]; !seen {
				labels[label] = g.AddPoint()
				*order = append(*order, label)
			}
			local[placeholder] = labels[label]
		}
		for i, placeholder := range def.existingArgs {
			label := existingArgs[i]
			id, ok := labels[label]
			if !ok {
				return errorf(ErrMalformedLine, label)
			}
			local[placeholder] = id
		}

		for _, post := range def.postconditions {
			args := make([]string, len(post.names))
			for i, n := range post.names {
				if lit, isLit := post.constants[n]; isLit {
					args[i] = lit.String()

					continue
				}
				id, ok := local[n]
				if !ok {
					return errorf(ErrMalformedLine, n)
				}
				args[i] = id
			}
			if _, err := d.InsertPredicate(pred.New(post.kind, args...)); err != nil {
				return err
			}
		}
	}

	return nil
}
