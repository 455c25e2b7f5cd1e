package markov

import "github.com/kst-dev/kst/domain"

// defaultSafetyCap bounds trajectory simulation when a model's rates make
// absorption implausibly slow (spec §4.5).
const defaultSafetyCap = 1000

// Trajectory is a simulated learning path: the sequence of states visited,
// starting at the caller-supplied (or default empty) start state, and
// whether it reached full mastery before the safety cap.
type Trajectory struct {
	States   []domain.KnowledgeState
	Absorbed bool
}

// Simulate draws a trajectory starting at start (the empty state if the
// zero value is passed), repeatedly sampling the next item from the outer
// fringe's rate-proportional distribution via next, a uniform-in-[0,1)
// source, until absorption at Q or safetyCap steps elapse. safetyCap<=0
// uses defaultSafetyCap.
func (m *Model) Simulate(start domain.KnowledgeState, safetyCap int, next func() float64) Trajectory {
	if safetyCap <= 0 {
		safetyCap = defaultSafetyCap
	}
	full := m.sp.Domain().Full()
	if start.Cardinality() == 0 && start.Domain() == nil {
		start = m.sp.Domain().Empty()
	}

	states := []domain.KnowledgeState{start}
	cur := start
	for step := 0; step < safetyCap; step++ {
		if cur.Equal(full) {
			return Trajectory{States: states, Absorbed: true}
		}
		fringe := m.sp.OuterFringe(cur)
		if len(fringe) == 0 {
			break
		}
		total := 0.0
		for _, q := range fringe {
			total += m.rates[q]
		}
		draw := next() * total
		chosen := fringe[len(fringe)-1]
		acc := 0.0
		for _, q := range fringe {
			acc += m.rates[q]
			if draw < acc {
				chosen = q
				break
			}
		}
		cur = cur.WithItem(chosen)
		states = append(states, cur)
	}
	return Trajectory{States: states, Absorbed: cur.Equal(full)}
}
