package estimation

import (
	"math"

	"github.com/kst-dev/kst/domain"
)

// GoodnessOfFit computes the G² statistic and its degrees of freedom for an
// estimate against observed data (spec §4.4):
//
//	G² = 2·Σ_R N_R·log(N_R/(N·P̂(R)))
//	df = (distinct patterns) - 1 - (|K| - 1 + 2n), floored at 0
func GoodnessOfFit(dom *domain.Domain, data []ResponsePattern, est *Estimate) (float64, int) {
	counts := make(map[string]int)
	order := make([]string, 0)
	reps := make(map[string]ResponsePattern)
	for _, pattern := range data {
		key := patternKey(dom, pattern)
		if counts[key] == 0 {
			order = append(order, key)
			reps[key] = pattern
		}
		counts[key]++
	}

	N := float64(len(data))
	g2 := 0.0
	for _, key := range order {
		NR := float64(counts[key])
		phat := predictedProb(reps[key], est)
		if phat <= 0 {
			continue // a zero-probability observed pattern contributes no finite term; caller sees it via LogLikelihood being -Inf upstream
		}
		g2 += 2 * NR * math.Log(NR/(N*phat))
	}

	df := len(order) - 1 - (len(est.States) - 1 + 2*dom.Len())
	if df < 0 {
		df = 0
	}
	return g2, df
}

func predictedProb(pattern ResponsePattern, est *Estimate) float64 {
	total := 0.0
	for k, state := range est.States {
		total += est.Pi[k] * patternLikelihoodRaw(pattern, state, est)
	}
	return total
}

// patternLikelihoodRaw mirrors assessment.BLIMParameters.PatternLikelihood
// without constructing a BLIMParameters, since est.Beta/Eta are already
// validated by the Fit that produced est.
func patternLikelihoodRaw(pattern ResponsePattern, k domain.KnowledgeState, est *Estimate) float64 {
	prob := 1.0
	for _, id := range k.Domain().IDs() {
		mastered := k.Contains(id)
		beta, eta := est.Beta[id], est.Eta[id]
		r := pattern[id]
		switch {
		case mastered && r:
			prob *= 1 - beta
		case mastered && !r:
			prob *= beta
		case !mastered && r:
			prob *= eta
		default:
			prob *= 1 - eta
		}
	}
	return prob
}

func patternKey(dom *domain.Domain, pattern ResponsePattern) string {
	b := make([]byte, dom.Len())
	for i, id := range dom.IDs() {
		if pattern[id] {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}
