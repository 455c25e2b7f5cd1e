package domain

import (
	"sort"

	"github.com/kst-dev/kst/internal/kutil"
)

// KnowledgeState is an immutable subset of a Domain, interpreted as the
// items mastered. Internally backed by a fixed-width bitset (spec §9:
// "canonical bitset representation... Union/intersection/symmetric
// difference become bitwise ops"). Two states are only comparable if they
// share the same *Domain; every operation here assumes that invariant and
// does not re-validate it per call (callers never construct a KnowledgeState
// except through Domain methods or these set operations).
type KnowledgeState struct {
	domain *Domain
	bits   kutil.Bitset
}

// Domain returns the owning domain.
func (k KnowledgeState) Domain() *Domain { return k.domain }

// Cardinality returns |K|.
func (k KnowledgeState) Cardinality() int { return k.bits.Count() }

// IsEmpty reports whether K = ∅.
func (k KnowledgeState) IsEmpty() bool { return k.bits.IsEmpty() }

// Contains reports whether item id is in the state.
func (k KnowledgeState) Contains(id string) bool {
	i, ok := k.domain.IndexOf(id)
	return ok && k.bits.Test(i)
}

// ContainsIndex reports whether the item at bit position i is in the state.
func (k KnowledgeState) ContainsIndex(i int) bool { return k.bits.Test(i) }

// IDs returns the ids of items in the state, in canonical id order.
func (k KnowledgeState) IDs() []string {
	idx := k.bits.Bits()
	out := make([]string, len(idx))
	for n, i := range idx {
		out[n] = k.domain.items[i].ID
	}
	return out
}

// Union returns K ∪ L. Panics if k and l have different domains.
func (k KnowledgeState) Union(l KnowledgeState) KnowledgeState {
	k.mustSameDomain(l)
	return KnowledgeState{domain: k.domain, bits: kutil.Union(k.bits, l.bits)}
}

// Intersect returns K ∩ L.
func (k KnowledgeState) Intersect(l KnowledgeState) KnowledgeState {
	k.mustSameDomain(l)
	return KnowledgeState{domain: k.domain, bits: kutil.Intersect(k.bits, l.bits)}
}

// Difference returns K \ L.
func (k KnowledgeState) Difference(l KnowledgeState) KnowledgeState {
	k.mustSameDomain(l)
	return KnowledgeState{domain: k.domain, bits: kutil.Difference(k.bits, l.bits)}
}

// SymmetricDifference returns K Δ L.
func (k KnowledgeState) SymmetricDifference(l KnowledgeState) KnowledgeState {
	k.mustSameDomain(l)
	return KnowledgeState{domain: k.domain, bits: kutil.SymmetricDifference(k.bits, l.bits)}
}

// IsSubsetOf reports whether K ⊆ L.
func (k KnowledgeState) IsSubsetOf(l KnowledgeState) bool {
	k.mustSameDomain(l)
	return kutil.IsSubsetOf(k.bits, l.bits)
}

// Equal reports whether K = L (as sets).
func (k KnowledgeState) Equal(l KnowledgeState) bool {
	k.mustSameDomain(l)
	return kutil.Equal(k.bits, l.bits)
}

// withIndex returns K ∪ {item at bit position i}. i must already be a valid
// domain position; callers use Domain.IndexOf to get it.
func (k KnowledgeState) withIndex(i int) KnowledgeState {
	return KnowledgeState{domain: k.domain, bits: k.bits.Set(i)}
}

// withoutIndex returns K \ {item at bit position i}.
func (k KnowledgeState) withoutIndex(i int) KnowledgeState {
	return KnowledgeState{domain: k.domain, bits: k.bits.Clear(i)}
}

// WithItem returns K ∪ {id}.
func (k KnowledgeState) WithItem(id string) KnowledgeState {
	i := k.domain.MustIndexOf(id)
	return k.withIndex(i)
}

// WithoutItem returns K \ {id}.
func (k KnowledgeState) WithoutItem(id string) KnowledgeState {
	i := k.domain.MustIndexOf(id)
	return k.withoutIndex(i)
}

// Key returns a value suitable for use as a map key identifying this exact
// state (used to hash-index a state family; spec §4.2 fringe/covering
// computation is "O(n) per state given K hashed").
func (k KnowledgeState) Key() string { return k.bits.Key() }

// Less defines the canonical deterministic order over states: by
// cardinality, then lexicographically by bit pattern. Used wherever spec
// §4.2's "Tie-breaks" rule applies.
func Less(a, b KnowledgeState) bool { return kutil.Less(a.bits, b.bits) }

func (k KnowledgeState) mustSameDomain(l KnowledgeState) {
	if k.domain != l.domain {
		panic("kst: knowledge states belong to different domains")
	}
}

// SortStates sorts states in place using the canonical Less order.
func SortStates(states []KnowledgeState) {
	sort.Slice(states, func(i, j int) bool { return Less(states[i], states[j]) })
}
