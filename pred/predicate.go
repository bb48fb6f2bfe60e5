package pred

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
)

// Predicate is an atomic geometric fact: a Kind plus its argument tuple,
// where arguments are the root-node names of the entities involved (spec
// §4.7, §3's Predicate entity). Two Predicates are equal iff their Hash
// values are equal.
type Predicate struct {
	Kind Kind
	Args []string

	// Why lists the predicates that justify this one, forming the edges of
	// an implicit derivation DAG (spec §3). Empty for base facts asserted
	// directly from a construction.
	Why []string
}

// New builds a Predicate. args are copied so the caller's slice can be
// reused. For the point-set kinds (coll, cyclic, ncoll) args are sorted so
// that two constructions naming the same points in a different order hash
// identically; every other kind keeps its argument order, since position
// carries meaning (e.g. para's first pair is one line, the second another).
func New(kind Kind, args ...string) *Predicate {
	cp := make([]string, len(args))
	copy(cp, args)
	if isUnorderedPointSet(kind) {
		sort.Strings(cp)
	}

	return &Predicate{Kind: kind, Args: cp}
}

func isUnorderedPointSet(k Kind) bool {
	return k == CollKind || k == CyclicKind || k == NCollKind
}

// canonicalArgs is the hashable/printable view of a Predicate.
func (p *Predicate) canonicalArgs() []string {
	return p.Args
}

// Hash returns the canonical structural hash string identifying p: its Kind
// name, "#", and a decimal digest of (Kind, Args), with Args taken as given
// (callers are responsible for resolving arguments to root-node names before
// calling New/Hash — pred has no access to a uf.Forest).
//
// The hash is computed with mitchellh/hashstructure over the
// (Kind, Args) pair rather than naive string concatenation, so that two
// Predicates with the same kind and args collide even if constructed via
// different code paths, and so the textual "space-joined root names" form
// required for the output file (spec §6) can be produced independently via
// String().
func (p *Predicate) Hash() (string, error) {
	type hashable struct {
		Kind Kind
		Args []string
	}
	h, err := hashstructure.Hash(hashable{Kind: p.Kind, Args: p.canonicalArgs()}, hashstructure.FormatV2, nil)
	if err != nil {
		return "", err
	}

	return p.Kind.String() + "#" + strconv.FormatUint(h, 10), nil
}

// String renders p in the output file's "kind arg arg ..." canonical
// textual form (spec §6).
func (p *Predicate) String() string {
	var b strings.Builder
	b.WriteString(p.Kind.String())
	for _, a := range p.canonicalArgs() {
		b.WriteByte(' ')
		b.WriteString(a)
	}

	return b.String()
}

// SortByHash sorts predicates by their hash string, for deterministic
// output-file ordering (spec §6) and traceback rendering.
func SortByHash(preds []*Predicate) error {
	hashes := make(map[*Predicate]string, len(preds))
	for _, p := range preds {
		h, err := p.Hash()
		if err != nil {
			return err
		}
		hashes[p] = h
	}
	sort.Slice(preds, func(i, j int) bool {
		return hashes[preds[i]] < hashes[preds[j]]
	})

	return nil
}
