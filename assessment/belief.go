package assessment

import (
	"math"

	"github.com/kst-dev/kst/domain"
	"github.com/kst-dev/kst/kerrors"
)

// logSpaceThreshold is the |K| beyond which belief updates are performed in
// log space for numerical stability (spec §4.3/§9).
const logSpaceThreshold = 64

// probTolerance is the mass-sums-to-one tolerance (spec §3).
const probTolerance = 1e-6

// BeliefState is a probability distribution over an ordered sequence of
// knowledge states. Immutable: every update returns a new BeliefState.
type BeliefState struct {
	states []domain.KnowledgeState
	probs  []float64 // sums to 1 within probTolerance
}

// NewBeliefState validates and constructs a BeliefState: probs must be
// non-negative and sum to 1 within probTolerance, and len(states) ==
// len(probs).
func NewBeliefState(states []domain.KnowledgeState, probs []float64) (BeliefState, error) {
	if len(states) != len(probs) {
		return BeliefState{}, kerrors.New(kerrors.KindParameterOutOfRange, "states and probs must have equal length", nil)
	}
	sum := 0.0
	for _, p := range probs {
		if p < 0 {
			return BeliefState{}, kerrors.New(kerrors.KindParameterOutOfRange, "belief probabilities must be non-negative", p)
		}
		sum += p
	}
	if math.Abs(sum-1) > probTolerance {
		return BeliefState{}, kerrors.New(kerrors.KindParameterOutOfRange, "belief probabilities must sum to 1", sum)
	}
	s := make([]domain.KnowledgeState, len(states))
	copy(s, states)
	p := make([]float64, len(probs))
	copy(p, probs)
	return BeliefState{states: s, probs: p}, nil
}

// UniformBelief returns a belief distributing mass equally over states.
func UniformBelief(states []domain.KnowledgeState) BeliefState {
	n := len(states)
	probs := make([]float64, n)
	for i := range probs {
		probs[i] = 1.0 / float64(n)
	}
	s := make([]domain.KnowledgeState, n)
	copy(s, states)
	return BeliefState{states: s, probs: probs}
}

// States returns the belief's ordered state sequence.
func (b BeliefState) States() []domain.KnowledgeState { return b.states }

// Probs returns the belief's probability vector, index-aligned with States().
func (b BeliefState) Probs() []float64 { return b.probs }

// ProbOf returns π(K) for the given state, or 0 if K is not in the belief's
// support.
func (b BeliefState) ProbOf(k domain.KnowledgeState) float64 {
	for i, s := range b.states {
		if s.Equal(k) {
			return b.probs[i]
		}
	}
	return 0
}

// Entropy returns the Shannon entropy of the belief in bits, with the
// convention 0·log0 = 0.
func (b BeliefState) Entropy() float64 {
	h := 0.0
	for _, p := range b.probs {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// MAP returns the state with maximal posterior probability, breaking ties
// by the canonical state order (domain.Less) for determinism.
func (b BeliefState) MAP() domain.KnowledgeState {
	best := 0
	for i := 1; i < len(b.probs); i++ {
		if b.probs[i] > b.probs[best] || (b.probs[i] == b.probs[best] && domain.Less(b.states[i], b.states[best])) {
			best = i
		}
	}
	return b.states[best]
}

// Update performs the Bayesian single-item belief update (spec §4.3): for
// each state K, multiply π(K) by P(r|q,K) and renormalise. Above
// logSpaceThreshold states it accumulates in log space before exponentiating
// and renormalising, avoiding underflow on long response sequences. Returns
// InconsistentObservation if the total mass collapses to zero.
func (b BeliefState) Update(params *BLIMParameters, itemID string, r bool) (BeliefState, error) {
	n := len(b.states)
	if n > logSpaceThreshold {
		return b.updateLogSpace(params, itemID, r)
	}

	weighted := make([]float64, n)
	total := 0.0
	for i, k := range b.states {
		lik := params.ResponseLikelihood(itemID, k, r)
		weighted[i] = b.probs[i] * lik
		total += weighted[i]
	}
	if total == 0 {
		return BeliefState{}, kerrors.New(kerrors.KindInconsistentObservation, "observation has zero total mass under current belief", itemID)
	}
	for i := range weighted {
		weighted[i] /= total
	}
	return BeliefState{states: b.states, probs: weighted}, nil
}

func (b BeliefState) updateLogSpace(params *BLIMParameters, itemID string, r bool) (BeliefState, error) {
	n := len(b.states)
	logw := make([]float64, n)
	maxLog := math.Inf(-1)
	for i, k := range b.states {
		lik := params.ResponseLikelihood(itemID, k, r)
		if b.probs[i] == 0 || lik == 0 {
			logw[i] = math.Inf(-1)
		} else {
			logw[i] = math.Log(b.probs[i]) + math.Log(lik)
		}
		if logw[i] > maxLog {
			maxLog = logw[i]
		}
	}
	if math.IsInf(maxLog, -1) {
		return BeliefState{}, kerrors.New(kerrors.KindInconsistentObservation, "observation has zero total mass under current belief", itemID)
	}
	// log-sum-exp normalisation
	sumExp := 0.0
	for _, lw := range logw {
		if !math.IsInf(lw, -1) {
			sumExp += math.Exp(lw - maxLog)
		}
	}
	logZ := maxLog + math.Log(sumExp)
	probs := make([]float64, n)
	for i, lw := range logw {
		if math.IsInf(lw, -1) {
			probs[i] = 0
		} else {
			probs[i] = math.Exp(lw - logZ)
		}
	}
	return BeliefState{states: b.states, probs: probs}, nil
}

// InformationGain computes I(q; π) = H(π) - p1·H(π|r=1) - p0·H(π|r=0) for
// item q under the current belief (spec §4.3).
func InformationGain(params *BLIMParameters, belief BeliefState, itemID string) (float64, error) {
	p1 := 0.0
	for i, k := range belief.states {
		lik := params.ResponseLikelihood(itemID, k, true)
		p1 += belief.probs[i] * lik
	}
	p0 := 1 - p1

	h := belief.Entropy()
	conditional := 0.0
	if p1 > 0 {
		b1, err := belief.Update(params, itemID, true)
		if err != nil {
			return 0, err
		}
		conditional += p1 * b1.Entropy()
	}
	if p0 > 0 {
		b0, err := belief.Update(params, itemID, false)
		if err != nil {
			return 0, err
		}
		conditional += p0 * b0.Entropy()
	}
	return h - conditional, nil
}
