package space

import "github.com/kst-dev/kst/domain"

// LearningPath is a maximal chain ∅ = K0 ⋖ K1 ⋖ ... ⋖ Kn = Q, recorded as
// the ordered sequence of items acquired at each step.
type LearningPath struct {
	Items  []string
	States []domain.KnowledgeState // K0..Kn inclusive
}

// LearningPaths enumerates learning paths depth-first from ∅, branching at
// each state on its outer fringe in ascending item-id order (spec §4.2
// "Tie-breaks": canonical lexicographic order). A path terminates on
// reaching Q. Enumeration stops once maxPaths paths have been produced (0
// means unbounded) — callers must supply a cap to bound the potentially
// factorial number of paths through a wide antichain, per spec §4.2.
func (s *Space) LearningPaths(maxPaths int) []LearningPath {
	full := s.dom.Full()
	var out []LearningPath

	var walk func(cur domain.KnowledgeState, items []string, states []domain.KnowledgeState)
	walk = func(cur domain.KnowledgeState, items []string, states []domain.KnowledgeState) {
		if maxPaths > 0 && len(out) >= maxPaths {
			return
		}
		if cur.Equal(full) {
			out = append(out, LearningPath{Items: append([]string{}, items...), States: append([]domain.KnowledgeState{}, states...)})
			return
		}
		for _, id := range s.OuterFringe(cur) {
			next := cur.WithItem(id)
			walk(next, append(items, id), append(states, next))
			if maxPaths > 0 && len(out) >= maxPaths {
				return
			}
		}
	}
	walk(s.dom.Empty(), nil, []domain.KnowledgeState{s.dom.Empty()})
	return out
}
