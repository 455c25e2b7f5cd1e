package algebra

// TopologicalOrders enumerates every topological order of g, in
// lexicographic (by item id) order among the choices available at each
// step, stopping once maxOrders orders have been produced (0 means
// unbounded). For every order produced, every prefix is a downset of the
// induced surmise relation (spec §4.1).
//
// Enumeration uses recursive backtracking over the "available" frontier
// (items whose prerequisites have already been placed). The orders are
// collected into one slice that is returned when enumeration stops, so all
// produced orders are held in memory together; only maxOrders bounds that.
func (g *PrerequisiteGraph) TopologicalOrders(maxOrders int) [][]string {
	n := g.dom.Len()
	indeg := make([]int, n)
	for i := range g.parents {
		indeg[i] = len(g.parents[i])
	}
	placed := make([]bool, n)
	current := make([]int, 0, n)
	var out [][]string
	items := g.dom.Items()

	toIDs := func(order []int) []string {
		ids := make([]string, len(order))
		for i, idx := range order {
			ids[i] = items[idx].ID
		}
		return ids
	}

	var backtrack func()
	backtrack = func() {
		if maxOrders > 0 && len(out) >= maxOrders {
			return
		}
		if len(current) == n {
			ord := make([]int, n)
			copy(ord, current)
			out = append(out, toIDs(ord))
			return
		}
		// candidates: unplaced nodes with indeg 0, visited in ascending
		// item-id order for deterministic, reproducible enumeration.
		for i := 0; i < n; i++ {
			if placed[i] || indeg[i] != 0 {
				continue
			}
			placed[i] = true
			current = append(current, i)
			for _, c := range g.children[i] {
				indeg[c]--
			}

			backtrack()

			for _, c := range g.children[i] {
				indeg[c]++
			}
			current = current[:len(current)-1]
			placed[i] = false

			if maxOrders > 0 && len(out) >= maxOrders {
				return
			}
		}
	}
	backtrack()
	return out
}
