package algebra

import "github.com/kst-dev/kst/domain"

// BirkhoffStates converts a quasi-order into the knowledge-state family
// corresponding to it under the Birkhoff correspondence: every downset of
// sr, as a domain.KnowledgeState. This is the bridge from C2 (prerequisite
// algebra) into C3 (space engine): space.BuildKnowledgeSpace consumes
// exactly this kind of state family.
func BirkhoffStates(sr *SurmiseRelation, maxSets int) []domain.KnowledgeState {
	sets := AllDownsets(sr, maxSets)
	out := make([]domain.KnowledgeState, len(sets))
	for i, b := range sets {
		out[i] = sr.dom.StateFromBitset(b)
	}
	return out
}
