// Package markov implements the learning-trajectory model (spec §4.5): a
// continuous-choice Markov chain over a learning space's states, expected
// steps to mastery via the fundamental matrix, optimal teaching by value
// iteration, trajectory simulation, and rate tuning from observed
// trajectories.
package markov

import (
	"sort"

	"github.com/kst-dev/kst/domain"
	"github.com/kst-dev/kst/kerrors"
	"github.com/kst-dev/kst/space"
)

// Model is a learning space paired with per-item learning rates λ_q,
// governing the probability of acquiring q next from any state where q is
// in the outer fringe.
type Model struct {
	sp     *space.Space
	order  []domain.KnowledgeState // states sorted by cardinality, then id-sorted tuple
	index  map[string]int          // state Key() -> position in order
	rates  map[string]float64
}

// NewModel validates rates (one positive value per domain item) and builds
// the canonical state ordering used by the transition matrix.
func NewModel(sp *space.Space, rates map[string]float64) (*Model, error) {
	dom := sp.Domain()
	for _, id := range dom.IDs() {
		r, ok := rates[id]
		if !ok {
			return nil, kerrors.New(kerrors.KindParameterOutOfRange, "missing learning rate for item", id)
		}
		if r <= 0 {
			return nil, kerrors.New(kerrors.KindParameterOutOfRange, "learning rate must be positive", id)
		}
	}

	order := orderedStates(sp.States())
	index := make(map[string]int, len(order))
	for i, k := range order {
		index[k.Key()] = i
	}

	return &Model{sp: sp, order: order, index: index, rates: cloneRates(rates)}, nil
}

// Model returns the underlying learning space.
func (m *Model) Model() *space.Space { return m.sp }

// States returns the model's canonical state ordering (cardinality, then
// id-sorted tuple), the order used by TransitionMatrix (spec §4.5).
func (m *Model) States() []domain.KnowledgeState { return m.order }

// Rate returns λ_q.
func (m *Model) Rate(id string) float64 { return m.rates[id] }

func (m *Model) indexOf(k domain.KnowledgeState) int { return m.index[k.Key()] }

// orderedStates sorts states by cardinality ascending, breaking ties by the
// lexicographic order of each state's sorted id list (spec §4.5 "Index
// states by cardinality then by id-sorted ordering").
func orderedStates(states []domain.KnowledgeState) []domain.KnowledgeState {
	out := append([]domain.KnowledgeState{}, states...)
	sort.Slice(out, func(i, j int) bool {
		ci, cj := out[i].Cardinality(), out[j].Cardinality()
		if ci != cj {
			return ci < cj
		}
		return idTupleLess(out[i].IDs(), out[j].IDs())
	})
	return out
}

func idTupleLess(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func cloneRates(m map[string]float64) map[string]float64 {
	cp := make(map[string]float64, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// UniformRates returns a rate map assigning every domain item the same λ.
func UniformRates(dom *domain.Domain, lambda float64) map[string]float64 {
	m := make(map[string]float64, dom.Len())
	for _, id := range dom.IDs() {
		m[id] = lambda
	}
	return m
}
