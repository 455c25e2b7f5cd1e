package algebra

import (
	"github.com/kst-dev/kst/domain"
	"github.com/kst-dev/kst/internal/kutil"
	"github.com/kst-dev/kst/kerrors"
)

// SurmiseRelation is a quasi-order (reflexive + transitive) on a Domain,
// represented as a bitset per item: reach[i] is the set of items q with
// i ≼ q (i.e. i is a prerequisite of q, including i itself).
type SurmiseRelation struct {
	dom   *domain.Domain
	reach []kutil.Bitset // reach[i]: items reachable from i (i ≼ q), reflexive
}

// Domain returns the relation's owning domain.
func (r *SurmiseRelation) Domain() *domain.Domain { return r.dom }

// PrerequisitesOf returns {p : p ≼ q}, the ids of q's prerequisites
// (including q itself, by reflexivity).
func (r *SurmiseRelation) PrerequisitesOf(q string) []string {
	qi := r.dom.MustIndexOf(q)
	items := r.dom.Items()
	var out []string
	for p := 0; p < r.dom.Len(); p++ {
		if r.reach[p].Test(qi) {
			out = append(out, items[p].ID)
		}
	}
	return out
}

// DependentsOf returns {r : q ≼ r}, the ids of q's dependents (including q).
func (r *SurmiseRelation) DependentsOf(q string) []string {
	qi := r.dom.MustIndexOf(q)
	items := r.dom.Items()
	out := make([]string, 0, r.reach[qi].Count())
	for _, idx := range r.reach[qi].Bits() {
		out = append(out, items[idx].ID)
	}
	return out
}

// Precedes reports whether p ≼ q under this relation.
func (r *SurmiseRelation) Precedes(p, q string) bool {
	pi := r.dom.MustIndexOf(p)
	qi := r.dom.MustIndexOf(q)
	return r.reach[pi].Test(qi)
}

// IsDownset reports whether K is closed under taking prerequisites:
// q ∈ K ⇒ prerequisites_of(q) ⊆ K.
func (r *SurmiseRelation) IsDownset(k domain.KnowledgeState) bool {
	for _, id := range k.IDs() {
		i := r.dom.MustIndexOf(id)
		for p := 0; p < r.dom.Len(); p++ {
			if r.reach[p].Test(i) && !k.ContainsIndex(p) {
				return false
			}
		}
	}
	return true
}

// TransitiveClosure computes the surmise relation induced by g: reflexive
// pairs plus every (p, q) with a directed path p →* q. Implemented as one
// DFS per source node, O(n·(n+e)) as spec §4.1 requires.
func TransitiveClosure(g *PrerequisiteGraph) *SurmiseRelation {
	n := g.dom.Len()
	reach := make([]kutil.Bitset, n)
	for i := 0; i < n; i++ {
		b := kutil.NewBitset(n).Set(i) // reflexive
		var dfs func(u int)
		visited := make([]bool, n)
		dfs = func(u int) {
			for _, v := range g.children[u] {
				if !b.Test(v) {
					b = b.Set(v)
				}
				if !visited[v] {
					visited[v] = true
					dfs(v)
				}
			}
		}
		visited[i] = true
		dfs(i)
		reach[i] = b
	}
	return &SurmiseRelation{dom: g.dom, reach: reach}
}

// ValidateQuasiOrder checks that pairs forms a reflexive, transitively
// closed relation over dom, returning NotAQuasiOrder if not. Used when a
// surmise relation is supplied directly (rather than derived from a graph)
// as spec §4.1/§7 requires for external inputs.
func ValidateQuasiOrder(dom *domain.Domain, pairs [][2]string) (*SurmiseRelation, error) {
	n := dom.Len()
	reach := make([]kutil.Bitset, n)
	for i := range reach {
		reach[i] = kutil.NewBitset(n)
	}
	for _, p := range pairs {
		pi, ok := dom.IndexOf(p[0])
		if !ok {
			return nil, kerrors.New(kerrors.KindUnknownItem, "surmise pair references unknown item", p[0])
		}
		qi, ok := dom.IndexOf(p[1])
		if !ok {
			return nil, kerrors.New(kerrors.KindUnknownItem, "surmise pair references unknown item", p[1])
		}
		reach[pi] = reach[pi].Set(qi)
	}
	for i := 0; i < n; i++ {
		if !reach[i].Test(i) {
			return nil, kerrors.New(kerrors.KindNotAQuasiOrder, "relation is not reflexive", dom.Items()[i].ID)
		}
	}
	for i := 0; i < n; i++ {
		for _, j := range reach[i].Bits() {
			if !kutil.IsSubsetOf(reach[j], reach[i]) {
				return nil, kerrors.New(kerrors.KindNotAQuasiOrder, "relation is not transitively closed", [2]string{dom.Items()[i].ID, dom.Items()[j].ID})
			}
		}
	}
	return &SurmiseRelation{dom: dom, reach: reach}, nil
}
