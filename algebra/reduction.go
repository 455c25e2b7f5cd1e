package algebra

import "github.com/kst-dev/kst/internal/kutil"

// TransitiveReduction returns the minimum-edge DAG inducing the same
// reachability as g: an edge (p, q) survives iff there is no intermediate
// item r with p ≼ r ≼ q, r ≠ p, r ≠ q.
func TransitiveReduction(g *PrerequisiteGraph) *PrerequisiteGraph {
	sr := TransitiveClosure(g)
	n := g.dom.Len()
	parents := make([][]int, n)
	children := make([][]int, n)

	for q := 0; q < n; q++ {
		for _, p := range g.parents[q] {
			redundant := false
			for _, r := range g.parents[q] {
				if r == p {
					continue
				}
				if sr.reach[p].Test(r) {
					redundant = true
					break
				}
			}
			if !redundant {
				parents[q] = append(parents[q], p)
				children[p] = append(children[p], q)
			}
		}
	}
	return &PrerequisiteGraph{dom: g.dom, parents: parents, children: children}
}

// closureEdgeSet returns the full set of (p,q) pairs (p != q) implied by the
// closure of g, used by tests asserting "reduction then closure equals the
// original closure" (spec §8).
func closureEdgeSet(sr *SurmiseRelation) map[[2]int]struct{} {
	out := make(map[[2]int]struct{})
	n := sr.dom.Len()
	for p := 0; p < n; p++ {
		for _, q := range sr.reach[p].Bits() {
			if p != q {
				out[[2]int{p, q}] = struct{}{}
			}
		}
	}
	return out
}

// Equivalent reports whether two surmise relations induce the same
// reachability over the same domain (used to verify
// reduce-then-close == close, spec §8).
func Equivalent(a, b *SurmiseRelation) bool {
	if a.dom != b.dom {
		return false
	}
	for i := range a.reach {
		if !kutil.Equal(a.reach[i], b.reach[i]) {
			return false
		}
	}
	return true
}
