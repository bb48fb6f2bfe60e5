package uf

import "sort"

// Node is the minimal contract a union-find payload must satisfy: a stable
// name used as the map key throughout the forest.
type Node interface {
	Name() string
}

// Forest is a generic union-find (disjoint-set) structure over payloads of
// type T. Each name starts as its own root; Union redirects one root's
// parent to the other and hands both payloads to a caller-supplied merge
// function so that entity-specific state transfer (spec §4.5's "transfer
// src's state into dest per the entity-specific merge rules") stays outside
// this package.
//
// Per spec's ROOT invariant: only a root's payload is authoritative. Once a
// name stops being a root, Forest no longer allows its payload to be
// fetched except via the root it was merged into.
type Forest[T Node] struct {
	parent    map[string]string
	parentWhy map[string]string
	payload   map[string]T
	order     map[string]int
	nextOrder int
}

// NewForest constructs an empty Forest.
func NewForest[T Node]() *Forest[T] {
	return &Forest[T]{
		parent:    make(map[string]string),
		parentWhy: make(map[string]string),
		payload:   make(map[string]T),
		order:     make(map[string]int),
	}
}

// Add registers n as a new root node. A no-op if n.Name() is already known.
func (f *Forest[T]) Add(n T) {
	name := n.Name()
	if _, ok := f.parent[name]; ok {
		return
	}
	f.parent[name] = name
	f.payload[name] = n
	f.order[name] = f.nextOrder
	f.nextOrder++
}

// Find returns the root name of name, path-compressing along the way.
// Fails with ErrUnknownNode if name was never added.
func (f *Forest[T]) Find(name string) (string, error) {
	p, ok := f.parent[name]
	if !ok {
		return "", ErrUnknownNode
	}
	if p == name {
		return name, nil
	}
	root, err := f.Find(p)
	if err != nil {
		return "", err
	}
	f.parent[name] = root

	return root, nil
}

// IsRoot reports whether name is currently its own root.
func (f *Forest[T]) IsRoot(name string) (bool, error) {
	root, err := f.Find(name)
	if err != nil {
		return false, err
	}

	return root == name, nil
}

// Root returns the authoritative payload for name's equivalence class
// (i.e. the payload stored at name's root).
func (f *Forest[T]) Root(name string) (T, error) {
	var zero T
	root, err := f.Find(name)
	if err != nil {
		return zero, err
	}

	return f.payload[root], nil
}

// ParentWhy returns the justifying predicate ID recorded when name's parent
// link was last set (empty string if name is a root or was never merged).
func (f *Forest[T]) ParentWhy(name string) string {
	return f.parentWhy[name]
}

// Union merges src's equivalence class into dest's. If they already share a
// root, Union is a no-op (step 1 of spec §4.5's merge algorithm). Otherwise
// src's root is redirected to dest's root, and merge(destPayload, srcPayload)
// is invoked so the caller can transfer entity-specific state; src's payload
// is then dropped (it is no longer a root, so it must not be read again).
func (f *Forest[T]) Union(dest, src, why string, merge func(dest, src T)) error {
	rd, err := f.Find(dest)
	if err != nil {
		return err
	}
	rs, err := f.Find(src)
	if err != nil {
		return err
	}
	if rd == rs {
		return nil
	}

	destPayload := f.payload[rd]
	srcPayload := f.payload[rs]
	merge(destPayload, srcPayload)

	f.parent[rs] = rd
	f.parentWhy[rs] = why
	delete(f.payload, rs)

	return nil
}

// SortedKeys returns every name currently known to the forest (root or not)
// in ascending lexicographic order, breaking ties (there are none, since
// names are unique) by creation order — used wherever deterministic
// enumeration over "all keys of a map" is required.
func (f *Forest[T]) SortedKeys() []string {
	out := make([]string, 0, len(f.parent))
	for name := range f.parent {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i] != out[j] {
			return out[i] < out[j]
		}

		return f.order[out[i]] < f.order[out[j]]
	})

	return out
}

// Roots returns the deduplicated, sorted set of root names currently in the
// forest.
func (f *Forest[T]) Roots() []string {
	seen := make(map[string]bool)
	for _, name := range f.SortedKeys() {
		root, err := f.Find(name)
		if err != nil {
			continue
		}
		seen[root] = true
	}
	out := make([]string, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Strings(out)

	return out
}

// Pairs returns every unordered pair (keys[i], keys[j]) with i < j over the
// forest's sorted key order — deterministic indexing into that order, per
// spec §4.5's "indexing into sorted order so the enumeration is
// deterministic."
func (f *Forest[T]) Pairs() [][2]string {
	keys := f.SortedKeys()
	out := make([][2]string, 0)
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			out = append(out, [2]string{keys[i], keys[j]})
		}
	}

	return out
}

// Triples returns every unordered triple (keys[i], keys[j], keys[k]) with
// i < j < k over the forest's sorted key order.
func (f *Forest[T]) Triples() [][3]string {
	keys := f.SortedKeys()
	out := make([][3]string, 0)
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			for k := j + 1; k < len(keys); k++ {
				out = append(out, [3]string{keys[i], keys[j], keys[k]})
			}
		}
	}

	return out
}

// Quadruples returns every unordered quadruple over the forest's sorted key
// order, i < j < k < l.
func (f *Forest[T]) Quadruples() [][4]string {
	keys := f.SortedKeys()
	out := make([][4]string, 0)
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			for k := j + 1; k < len(keys); k++ {
				for l := k + 1; l < len(keys); l++ {
					out = append(out, [4]string{keys[i], keys[j], keys[k], keys[l]})
				}
			}
		}
	}

	return out
}
