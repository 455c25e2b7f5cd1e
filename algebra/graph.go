// Package algebra implements the prerequisite algebra (spec §4.1): building
// a prerequisite DAG from a domain and edge set, converting it to a surmise
// relation (quasi-order) and back via transitive closure/reduction,
// enumerating topological orders, and enumerating the downset family that
// corresponds to a quasi-order under the Birkhoff correspondence.
//
// The DAG itself is a plain adjacency-list structure over domain bit
// positions, grounded on nume-crypto-gnark's internal/dag.DAG (parents/
// children slices indexed by node id) but kept single-threaded: spec §5
// classifies graph construction as a bounded, synchronous operation, not one
// of the embarrassingly-parallel ones.
package algebra

import (
	"sort"

	"github.com/kst-dev/kst/domain"
	"github.com/kst-dev/kst/kerrors"
)

// PrerequisiteGraph is a DAG over a Domain's items whose edges represent
// direct prerequisites: an edge (p, q) means p is a direct prerequisite of
// q.
type PrerequisiteGraph struct {
	dom      *domain.Domain
	parents  [][]int // parents[i] = direct prerequisites of item i
	children [][]int // children[i] = direct dependents of item i
}

// Domain returns the graph's owning domain.
func (g *PrerequisiteGraph) Domain() *domain.Domain { return g.dom }

// BuildPrerequisiteGraph constructs a PrerequisiteGraph from a domain and a
// set of (src, tgt) id edges meaning src is a direct prerequisite of tgt.
// Fails with UnknownItem if an endpoint is not in the domain, and with
// CyclicPrerequisites if the edge set contains a directed cycle (including
// a self-loop, which is always a length-1 cycle per spec §4.1 edge cases).
func BuildPrerequisiteGraph(dom *domain.Domain, edges [][2]string) (*PrerequisiteGraph, error) {
	n := dom.Len()
	parents := make([][]int, n)
	children := make([][]int, n)

	for _, e := range edges {
		pi, ok := dom.IndexOf(e[0])
		if !ok {
			return nil, kerrors.New(kerrors.KindUnknownItem, "prerequisite edge source not in domain", e[0])
		}
		qi, ok := dom.IndexOf(e[1])
		if !ok {
			return nil, kerrors.New(kerrors.KindUnknownItem, "prerequisite edge target not in domain", e[1])
		}
		if pi == qi {
			return nil, kerrors.New(kerrors.KindCyclicPrerequisites, "self-loop is a length-1 cycle", []string{e[0], e[1]})
		}
		parents[qi] = append(parents[qi], pi)
		children[pi] = append(children[pi], qi)
	}
	for i := range parents {
		sort.Ints(parents[i])
		sort.Ints(children[i])
	}

	g := &PrerequisiteGraph{dom: dom, parents: parents, children: children}
	if cycle, ok := g.findCycle(); ok {
		ids := make([]string, len(cycle))
		for i, idx := range cycle {
			ids[i] = dom.Items()[idx].ID
		}
		return nil, kerrors.New(kerrors.KindCyclicPrerequisites, "prerequisite edges contain a cycle", ids)
	}
	return g, nil
}

// DirectPredecessors returns the ids of q's direct prerequisites.
func (g *PrerequisiteGraph) DirectPredecessors(id string) []string {
	return g.idsOf(g.parents[g.dom.MustIndexOf(id)])
}

// DirectSuccessors returns the ids of q's direct dependents.
func (g *PrerequisiteGraph) DirectSuccessors(id string) []string {
	return g.idsOf(g.children[g.dom.MustIndexOf(id)])
}

func (g *PrerequisiteGraph) idsOf(idxs []int) []string {
	out := make([]string, len(idxs))
	items := g.dom.Items()
	for i, idx := range idxs {
		out[i] = items[idx].ID
	}
	return out
}

// findCycle runs a DFS-based topological check (white/gray/black coloring):
// gray means "on the current recursion stack"; revisiting a gray node means
// a cycle closes through it. Returns the cycle (as domain indices, in
// traversal order) if one exists.
func (g *PrerequisiteGraph) findCycle() ([]int, bool) {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	n := len(g.parents)
	color := make([]int, n)
	stack := make([]int, 0, n)

	var visit func(i int) ([]int, bool)
	visit = func(i int) ([]int, bool) {
		color[i] = gray
		stack = append(stack, i)
		for _, c := range g.children[i] {
			switch color[c] {
			case gray:
				// cycle: extract the portion of stack from c's position onward
				for k, s := range stack {
					if s == c {
						cyc := append([]int{}, stack[k:]...)
						cyc = append(cyc, c)
						return cyc, true
					}
				}
				return []int{c}, true
			case white:
				if cyc, found := visit(c); found {
					return cyc, true
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[i] = black
		return nil, false
	}

	for i := 0; i < n; i++ {
		if color[i] == white {
			if cyc, found := visit(i); found {
				return cyc, true
			}
		}
	}
	return nil, false
}

// topoOrder returns one valid topological order (domain indices) via
// Kahn's algorithm, breaking ties by ascending index for determinism.
func (g *PrerequisiteGraph) topoOrder() []int {
	n := len(g.parents)
	indeg := make([]int, n)
	for i := range g.parents {
		indeg[i] = len(g.parents[i])
	}
	var ready []int
	for i, d := range indeg {
		if d == 0 {
			ready = append(ready, i)
		}
	}
	sort.Ints(ready)

	order := make([]int, 0, n)
	for len(ready) > 0 {
		sort.Ints(ready)
		i := ready[0]
		ready = ready[1:]
		order = append(order, i)
		for _, c := range g.children[i] {
			indeg[c]--
			if indeg[c] == 0 {
				ready = append(ready, c)
			}
		}
	}
	return order
}

// LongestPath returns the ids along one longest directed path in the graph
// and its length (number of edges). Isolated items count as length-0 paths
// (spec §4.1 edge cases).
func (g *PrerequisiteGraph) LongestPath() ([]string, int) {
	order := g.topoOrder()
	n := len(g.parents)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range prev {
		prev[i] = -1
	}
	for _, u := range order {
		for _, v := range g.children[u] {
			if dist[u]+1 > dist[v] {
				dist[v] = dist[u] + 1
				prev[v] = u
			}
		}
	}
	best, bestLen := 0, -1
	for i, d := range dist {
		if d > bestLen {
			bestLen = d
			best = i
		}
	}
	// walk back from best
	var rev []int
	for cur := best; cur != -1; cur = prev[cur] {
		rev = append(rev, cur)
	}
	ids := make([]string, len(rev))
	items := g.dom.Items()
	for i := range rev {
		ids[i] = items[rev[len(rev)-1-i]].ID
	}
	return ids, bestLen
}
