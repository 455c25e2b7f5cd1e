// Package domain holds the foundational value types shared by every other
// KST package: Item, Domain, and KnowledgeState. All three are constructed
// once through validating constructors and are immutable afterwards (spec
// §3 "Lifecycle"); every later package treats *Domain as a borrow, never a
// copy, following the teacher's "cyclic references... use plain ownership"
// guidance from spec §9.
package domain

import (
	"sort"
	"strings"

	"github.com/kst-dev/kst/kerrors"
)

// Item is an atomic learnable unit. Equality and hashing are based solely on
// ID; Label is display-only.
type Item struct {
	ID    string
	Label string
}

// NewItem validates and constructs an Item. ID must be non-empty and not
// whitespace-only.
func NewItem(id, label string) (Item, error) {
	if strings.TrimSpace(id) == "" {
		return Item{}, kerrors.New(kerrors.KindInvalidItem, "item id must not be empty or whitespace", id)
	}
	return Item{ID: id, Label: label}, nil
}

// ByID sorts items in-place by ID, the canonical order every enumeration in
// this codebase uses for reproducibility (spec §4.2 "Tie-breaks").
func ByID(items []Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}
