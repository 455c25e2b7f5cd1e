package markov

import (
	"sort"

	"github.com/kst-dev/kst/domain"
)

// ValueFunction maps each state's Key() to its optimal expected remaining
// steps V*(K).
type ValueFunction map[string]float64

// OptimalValues solves the Bellman equation V*(Q)=0, V*(K)=1+min_{q∈K^O}
// V*(K∪{q}) by backward induction over states in cardinality-descending
// order (spec §4.5), so every successor of K has already been valued by the
// time K is processed.
func (m *Model) OptimalValues() ValueFunction {
	full := m.sp.Domain().Full()
	byDescendingCard := append([]domain.KnowledgeState{}, m.order...)
	sort.Slice(byDescendingCard, func(i, j int) bool {
		return byDescendingCard[i].Cardinality() > byDescendingCard[j].Cardinality()
	})

	v := make(ValueFunction, len(byDescendingCard))
	v[full.Key()] = 0
	for _, k := range byDescendingCard {
		if k.Equal(full) {
			continue
		}
		best := -1.0
		for _, q := range m.sp.OuterFringe(k) {
			cand := v[k.WithItem(q).Key()]
			if best < 0 || cand < best {
				best = cand
			}
		}
		v[k.Key()] = 1 + best
	}
	return v
}

// TeachingPlan is the ordered sequence of items an optimal-teaching policy
// presents, starting from a given state.
type TeachingPlan struct {
	Items  []string
	States []domain.KnowledgeState
}

// OptimalPlan greedily follows arg min_{q∈K^O} V*(K∪{q}) from start until
// reaching full mastery (spec §4.5).
func (m *Model) OptimalPlan(start domain.KnowledgeState) TeachingPlan {
	v := m.OptimalValues()
	full := m.sp.Domain().Full()

	cur := start
	plan := TeachingPlan{States: []domain.KnowledgeState{cur}}
	for !cur.Equal(full) {
		fringe := m.sp.OuterFringe(cur)
		if len(fringe) == 0 {
			break
		}
		bestQ := fringe[0]
		bestV := v[cur.WithItem(bestQ).Key()]
		for _, q := range fringe[1:] {
			if cand := v[cur.WithItem(q).Key()]; cand < bestV {
				bestV = cand
				bestQ = q
			}
		}
		cur = cur.WithItem(bestQ)
		plan.Items = append(plan.Items, bestQ)
		plan.States = append(plan.States, cur)
	}
	return plan
}
