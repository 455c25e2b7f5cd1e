// Package estimation implements EM parameter fitting for the BLIM model
// (spec §4.4): E-step responsibilities, M-step updates, multi-restart
// calibration with an identifiability check, and the G² goodness-of-fit
// statistic.
package estimation

import (
	"math"

	"github.com/kst-dev/kst/assessment"
	"github.com/kst-dev/kst/domain"
	"github.com/kst-dev/kst/kerrors"
)

// clampLo and clampHi bound β and η so the model stays identifiable and the
// log-likelihood finite (spec §4.4).
const (
	clampLo = 1e-6
	clampHi = 0.5 - 1e-6
)

// ResponsePattern is one learner's observed response map, keyed by item id.
type ResponsePattern map[string]bool

// Estimate is the result of one EM fit: the fitted prior over states, the
// per-item slip/guess parameters, the final log-likelihood, and convergence
// bookkeeping.
type Estimate struct {
	States        []domain.KnowledgeState
	Pi            []float64 // index-aligned with States
	Beta          map[string]float64
	Eta           map[string]float64
	LogLikelihood float64
	Iterations    int
	Converged     bool
}

// Params builds the BLIMParameters implied by this estimate's fitted β, η.
func (e *Estimate) Params(dom *domain.Domain) (*assessment.BLIMParameters, error) {
	return assessment.NewBLIMParameters(dom, e.Beta, e.Eta)
}

// Fit runs EM to convergence or maxIter, starting from the given initial
// prior and parameters (spec §4.4). tol is the log-likelihood improvement
// threshold below which the fit is considered converged.
func Fit(dom *domain.Domain, states []domain.KnowledgeState, data []ResponsePattern, maxIter int, tol float64, initPi []float64, initBeta, initEta map[string]float64) (*Estimate, error) {
	n := len(states)
	pi := append([]float64{}, initPi...)
	beta := cloneFloatMap(initBeta)
	eta := cloneFloatMap(initEta)
	ids := dom.IDs()

	prevLL := math.Inf(-1)
	converged := false
	iter := 0

	for ; iter < maxIter; iter++ {
		params, err := assessment.NewBLIMParameters(dom, beta, eta)
		if err != nil {
			return nil, kerrors.New(kerrors.KindEMDiverged, "invalid parameters during fit", err.Error())
		}

		w, ll := eStep(params, states, data, pi)
		if math.IsNaN(ll) || math.IsInf(ll, 0) {
			return nil, kerrors.New(kerrors.KindEMDiverged, "log-likelihood diverged", ll)
		}

		pi, beta, eta = mStep(states, ids, data, w, beta, eta)

		if iter > 0 && ll-prevLL < tol {
			prevLL = ll
			converged = true
			iter++
			break
		}
		prevLL = ll
	}
	if !converged {
		// one final E-step to report the log-likelihood under the last M-step's parameters
		params, err := assessment.NewBLIMParameters(dom, beta, eta)
		if err != nil {
			return nil, kerrors.New(kerrors.KindEMDiverged, "invalid parameters during fit", err.Error())
		}
		_, prevLL = eStep(params, states, data, pi)
	}

	_ = n
	return &Estimate{
		States:        states,
		Pi:            pi,
		Beta:          beta,
		Eta:           eta,
		LogLikelihood: prevLL,
		Iterations:    iter,
		Converged:     converged,
	}, nil
}

// eStep computes per-learner responsibilities w[j][k] = P(K | R_j) via
// log-sum-exp, and returns the total log-likelihood sum_j log Z_j.
func eStep(params *assessment.BLIMParameters, states []domain.KnowledgeState, data []ResponsePattern, pi []float64) ([][]float64, float64) {
	n := len(states)
	w := make([][]float64, len(data))
	ll := 0.0

	for j, pattern := range data {
		logw := make([]float64, n)
		maxLog := math.Inf(-1)
		for k, state := range states {
			lik := params.PatternLikelihood(pattern, state)
			if pi[k] == 0 || lik == 0 {
				logw[k] = math.Inf(-1)
			} else {
				logw[k] = math.Log(pi[k]) + math.Log(lik)
			}
			if logw[k] > maxLog {
				maxLog = logw[k]
			}
		}
		sumExp := 0.0
		for _, lw := range logw {
			if !math.IsInf(lw, -1) {
				sumExp += math.Exp(lw - maxLog)
			}
		}
		logZ := maxLog + math.Log(sumExp)
		row := make([]float64, n)
		for k, lw := range logw {
			if math.IsInf(lw, -1) {
				row[k] = 0
			} else {
				row[k] = math.Exp(lw - logZ)
			}
		}
		w[j] = row
		ll += logZ
	}
	return w, ll
}

// mStep updates π, β, η from the E-step responsibilities (spec §4.4),
// clamping β and η to keep the model identifiable.
func mStep(states []domain.KnowledgeState, ids []string, data []ResponsePattern, w [][]float64, prevBeta, prevEta map[string]float64) (pi []float64, beta, eta map[string]float64) {
	n := len(states)
	N := float64(len(data))

	pi = make([]float64, n)
	for k := range states {
		sum := 0.0
		for j := range data {
			sum += w[j][k]
		}
		pi[k] = sum / N
	}

	beta = make(map[string]float64, len(ids))
	eta = make(map[string]float64, len(ids))
	for _, q := range ids {
		var betaNum, betaDen, etaNum, etaDen float64
		for k, state := range states {
			mastered := state.Contains(q)
			for j, pattern := range data {
				wjk := w[j][k]
				if mastered {
					betaDen += wjk
					if !pattern[q] {
						betaNum += wjk
					}
				} else {
					etaDen += wjk
					if pattern[q] {
						etaNum += wjk
					}
				}
			}
		}
		beta[q] = clamp(safeDiv(betaNum, betaDen, prevBeta[q]))
		eta[q] = clamp(safeDiv(etaNum, etaDen, prevEta[q]))
	}
	return pi, beta, eta
}

func safeDiv(num, den, fallback float64) float64 {
	if den == 0 {
		return fallback
	}
	return num / den
}

func clamp(v float64) float64 {
	if v < clampLo {
		return clampLo
	}
	if v > clampHi {
		return clampHi
	}
	return v
}

func cloneFloatMap(m map[string]float64) map[string]float64 {
	cp := make(map[string]float64, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
