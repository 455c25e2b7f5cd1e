package domain

import (
	"sort"

	"github.com/kst-dev/kst/internal/kutil"
	"github.com/kst-dev/kst/kerrors"
)

// Domain is a non-empty, finite, id-ordered set of items. Items are indexed
// 0..n-1 by their position in id-sorted order; that index is the bit
// position every KnowledgeState, SurmiseRelation, and PrerequisiteGraph in
// this codebase uses internally, so every package that touches states must
// go through the same *Domain to stay consistent.
type Domain struct {
	items  []Item         // id-sorted
	index  map[string]int // item id -> bit position
	name   string
	about  string
}

// NewDomain validates ids (non-empty, unique) and constructs a Domain with
// items sorted and indexed by id.
func NewDomain(name, description string, items []Item) (*Domain, error) {
	if len(items) == 0 {
		return nil, kerrors.New(kerrors.KindEmptyDomain, "domain must contain at least one item", nil)
	}
	cp := make([]Item, len(items))
	copy(cp, items)
	ByID(cp)

	index := make(map[string]int, len(cp))
	for i, it := range cp {
		if _, ok := index[it.ID]; ok {
			return nil, kerrors.New(kerrors.KindDuplicateItemID, "duplicate item id in domain", it.ID)
		}
		index[it.ID] = i
	}

	return &Domain{items: cp, index: index, name: name, about: description}, nil
}

// Name returns the domain's display name.
func (d *Domain) Name() string { return d.name }

// Description returns the domain's optional description.
func (d *Domain) Description() string { return d.about }

// Len returns the number of items in the domain (|Q|).
func (d *Domain) Len() int { return len(d.items) }

// Items returns the domain's items in canonical id order. The returned
// slice must not be mutated by callers.
func (d *Domain) Items() []Item { return d.items }

// IDs returns the domain's item ids in canonical order.
func (d *Domain) IDs() []string {
	ids := make([]string, len(d.items))
	for i, it := range d.items {
		ids[i] = it.ID
	}
	return ids
}

// IndexOf returns the bit position of item id within this domain, or
// (-1, false) if the id is not in the domain.
func (d *Domain) IndexOf(id string) (int, bool) {
	i, ok := d.index[id]
	if !ok {
		return -1, false
	}
	return i, true
}

// MustIndexOf is IndexOf but panics instead of returning a not-found flag;
// used internally where the id has already been validated.
func (d *Domain) MustIndexOf(id string) int {
	i, ok := d.index[id]
	if !ok {
		panic("kst: item id not present in domain: " + id)
	}
	return i
}

// Has reports whether id is present in the domain.
func (d *Domain) Has(id string) bool {
	_, ok := d.index[id]
	return ok
}

// Empty returns the empty knowledge state over this domain.
func (d *Domain) Empty() KnowledgeState {
	return KnowledgeState{domain: d, bits: kutil.NewBitset(len(d.items))}
}

// Full returns the full knowledge state Q over this domain.
func (d *Domain) Full() KnowledgeState {
	b := kutil.NewBitset(len(d.items))
	for i := range d.items {
		b = b.Set(i)
	}
	return KnowledgeState{domain: d, bits: b}
}

// StateFromIDs builds a KnowledgeState containing exactly the given item ids.
// Returns UnknownItem if any id is not in the domain.
func (d *Domain) StateFromIDs(ids ...string) (KnowledgeState, error) {
	b := kutil.NewBitset(len(d.items))
	for _, id := range ids {
		i, ok := d.index[id]
		if !ok {
			return KnowledgeState{}, kerrors.New(kerrors.KindUnknownItem, "unknown item id", id)
		}
		b = b.Set(i)
	}
	return KnowledgeState{domain: d, bits: b}, nil
}

// StateFromBitset wraps a raw bitset (already sized for this domain) as a
// KnowledgeState. Used by packages (algebra's downset enumeration, space's
// covering/fringe computation) that compute states via bitwise operations
// directly and need to hand the result back as a domain.KnowledgeState.
func (d *Domain) StateFromBitset(b kutil.Bitset) KnowledgeState {
	return KnowledgeState{domain: d, bits: b}
}

// BitsetOf exposes the raw bitset behind a state for packages that need to
// keep operating on bitsets directly (e.g. algebra's closure operator).
func BitsetOf(k KnowledgeState) kutil.Bitset { return k.bits }

// sortedIDs returns an id-sorted copy of ids, leaving the input unchanged.
func sortedIDs(ids []string) []string {
	cp := make([]string, len(ids))
	copy(cp, ids)
	sort.Strings(cp)
	return cp
}
