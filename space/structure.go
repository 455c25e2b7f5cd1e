package space

import "github.com/kst-dev/kst/domain"

// Atoms returns the minimal non-empty states: A is an atom iff A ≠ ∅ and no
// state K ∈ K(family) satisfies ∅ ⊊ K ⊊ A. Computed by scanning non-empty
// states in increasing cardinality and checking, for each candidate, whether
// any already-seen smaller state is a proper subset of it.
func (s *Space) Atoms() []domain.KnowledgeState {
	var seen []domain.KnowledgeState // non-empty states with smaller cardinality, in scan order
	var atoms []domain.KnowledgeState
	for _, k := range s.states {
		if k.IsEmpty() {
			continue
		}
		isAtom := true
		for _, prev := range seen {
			if prev.Cardinality() < k.Cardinality() && prev.IsSubsetOf(k) {
				isAtom = false
				break
			}
		}
		if isAtom {
			atoms = append(atoms, k)
		}
		seen = append(seen, k)
	}
	return atoms
}

// Gradation partitions the family by cardinality into levels 0..|Q|. Level i
// may be empty if no state of that cardinality belongs to the family.
func (s *Space) Gradation() [][]domain.KnowledgeState {
	levels := make([][]domain.KnowledgeState, s.dom.Len()+1)
	for _, k := range s.states {
		c := k.Cardinality()
		levels[c] = append(levels[c], k)
	}
	return levels
}

// Cover is one edge of the covering relation: L ⋖ K, meaning |K| = |L|+1,
// L ⊂ K, and ItemAdded is the single item distinguishing them.
type Cover struct {
	Lower     domain.KnowledgeState
	Upper     domain.KnowledgeState
	ItemAdded string
}

// CoveringEdges returns every (L, K) pair with |K|=|L|+1, L ⊂ K, both in the
// family, computed by grouping states by cardinality and comparing each
// consecutive pair of levels (spec §4.2).
func (s *Space) CoveringEdges() []Cover {
	levels := s.Gradation()
	var out []Cover
	for c := 0; c+1 < len(levels); c++ {
		for _, l := range levels[c] {
			for _, u := range levels[c+1] {
				if l.IsSubsetOf(u) {
					diff := u.Difference(l)
					ids := diff.IDs()
					out = append(out, Cover{Lower: l, Upper: u, ItemAdded: ids[0]})
				}
			}
		}
	}
	return out
}
