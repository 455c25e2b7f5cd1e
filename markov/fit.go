package markov

import (
	"math"

	"github.com/kst-dev/kst/domain"
	"github.com/kst-dev/kst/kerrors"
	"github.com/kst-dev/kst/space"
)

// ObservedTrajectory is a sequence of states whose consecutive pairs must
// be covers of sp (spec §4.5 "Rate tuning").
type ObservedTrajectory []domain.KnowledgeState

// FitRates estimates learning rates λ_q from observed trajectories by
// maximising Σ_t log(λ_{q_t} / Σ_{q'∈K_t^O} λ_q') (spec §4.5), via the
// Hunter MM fixed-point update for Luce's choice model: the same style of
// monotone fixed-point iteration as EM's, reusing its convergence
// criterion. Initial rates are uniform; final rates are normalised to mean
// 1 for reporting.
func FitRates(sp *space.Space, trajectories []ObservedTrajectory, maxIter int, tol float64) (map[string]float64, error) {
	dom := sp.Domain()
	ids := dom.IDs()

	// choices[q] = number of times q was the item acquired
	// exposures: for each step, the outer fringe it was chosen from
	type step struct {
		fringe []string
		chosen string
	}
	var steps []step
	for _, traj := range trajectories {
		for t := 0; t+1 < len(traj); t++ {
			cur, next := traj[t], traj[t+1]
			diff := next.Difference(cur)
			if diff.Cardinality() != 1 || !cur.IsSubsetOf(next) {
				return nil, kerrors.New(kerrors.KindParameterOutOfRange, "trajectory step is not a cover", t)
			}
			chosen := diff.IDs()[0]
			fringe := sp.OuterFringe(cur)
			steps = append(steps, step{fringe: fringe, chosen: chosen})
		}
	}

	rates := UniformRates(dom, 1.0)
	if len(steps) == 0 {
		return rates, nil
	}

	counts := make(map[string]float64, len(ids))
	for _, st := range steps {
		counts[st.chosen]++
	}

	prevLL := math.Inf(-1)
	for iter := 0; iter < maxIter; iter++ {
		exposure := make(map[string]float64, len(ids))
		ll := 0.0
		for _, st := range steps {
			total := 0.0
			for _, q := range st.fringe {
				total += rates[q]
			}
			ll += math.Log(rates[st.chosen] / total)
			for _, q := range st.fringe {
				exposure[q] += 1.0 / total
			}
		}

		next := make(map[string]float64, len(ids))
		for _, id := range ids {
			if exposure[id] > 0 {
				next[id] = counts[id] / exposure[id]
			} else {
				next[id] = rates[id]
			}
			if next[id] <= 0 {
				next[id] = 1e-9
			}
		}
		rates = next

		if iter > 0 && ll-prevLL < tol {
			prevLL = ll
			break
		}
		prevLL = ll
	}

	return normalizeToMeanOne(rates, ids), nil
}

func normalizeToMeanOne(rates map[string]float64, ids []string) map[string]float64 {
	sum := 0.0
	for _, id := range ids {
		sum += rates[id]
	}
	mean := sum / float64(len(ids))
	out := make(map[string]float64, len(ids))
	for _, id := range ids {
		out[id] = rates[id] / mean
	}
	return out
}
