package traceback

import (
	"github.com/DavidToh2/GeometryTheoremProver-sub000/dd"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/kinderr"
	"github.com/DavidToh2/GeometryTheoremProver-sub000/pred"
)

// Trace walks goal's Why edges backward through d's predicate pool,
// collecting goal and every predicate it transitively depends on, and
// returns them in deterministic sorted-hash order (original_source/'s
// GTPEngine.cpp prints every stored predicate on solve; this narrows that
// to goal's actual derivation chain).
func Trace(d *dd.DD, goal *pred.Predicate) ([]*pred.Predicate, error) {
	visited := make(map[string]*pred.Predicate)

	var walk func(p *pred.Predicate) error
	walk = func(p *pred.Predicate) error {
		h, err := p.Hash()
		if err != nil {
			return kinderr.Wrap(kinderr.DDInternal, err, "traceback: hashing predicate")
		}
		if _, ok := visited[h]; ok {
			return nil
		}
		visited[h] = p

		for _, parentHash := range p.Why {
			parent, ok := d.Predicate(parentHash)
			if !ok {
				continue
			}
			if err := walk(parent); err != nil {
				return err
			}
		}

		return nil
	}

	if err := walk(goal); err != nil {
		return nil, err
	}

	out := make([]*pred.Predicate, 0, len(visited))
	for _, p := range visited {
		out = append(out, p)
	}
	if err := pred.SortByHash(out); err != nil {
		return nil, kinderr.Wrap(kinderr.DDInternal, err, "traceback: sorting predicates")
	}

	return out, nil
}
