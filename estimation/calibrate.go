package estimation

import (
	"math"

	"github.com/kst-dev/kst/domain"
	"github.com/kst-dev/kst/internal/kutil"
)

// CalibrationResult is the outcome of a multi-restart calibration run (spec
// §4.4): the best-fitting estimate, the per-restart estimates it was chosen
// from (in restart order), and whether the fit is identifiable.
type CalibrationResult struct {
	Best         *Estimate
	Restarts     []*Estimate
	Identifiable bool
}

// Calibrate runs Fit restarts times from seeded random initialisations,
// drawn from next (a caller-supplied uniform-in-[0,1) source, spec §5 "no
// global RNG"), and selects the restart with the highest log-likelihood.
// Identifiable is true iff the across-restart standard deviation of every
// β_q and η_q is below identifiabilityTol.
func Calibrate(dom *domain.Domain, states []domain.KnowledgeState, data []ResponsePattern, restarts int, maxIter int, tol float64, identifiabilityTol float64, next func() float64) (*CalibrationResult, error) {
	ids := dom.IDs()

	// Random inits are drawn from next sequentially, in restart order, so the
	// calibration run stays bit-for-bit reproducible for a given seeded RNG
	// regardless of how the independent Fit calls below are scheduled (spec
	// §5: "preserve the deterministic tie-breaks... reducing results in
	// item-id / learner-index order").
	type init struct {
		pi        []float64
		beta, eta map[string]float64
	}
	inits := make([]init, restarts)
	for r := 0; r < restarts; r++ {
		inits[r] = init{
			pi:   randomSimplex(len(states), next),
			beta: randomParamMap(ids, next),
			eta:  randomParamMap(ids, next),
		}
	}

	// Each restart's Fit is independent (spec §5 "independent EM restarts");
	// ParallelMap runs them concurrently and hands back results in restart
	// order so selection below is deterministic.
	raw := kutil.ParallelMap(inits, func(in init) (*Estimate, error) {
		return Fit(dom, states, data, maxIter, tol, in.pi, in.beta, in.eta)
	})

	results := make([]*Estimate, 0, restarts)
	for _, r := range raw {
		if r.Err != nil {
			// a diverged restart doesn't invalidate the others (spec §7 "Propagation")
			continue
		}
		results = append(results, r.Value)
	}

	if len(results) == 0 {
		return &CalibrationResult{Restarts: results}, nil
	}

	best := results[0]
	for _, est := range results[1:] {
		if est.LogLikelihood > best.LogLikelihood {
			best = est
		}
	}

	return &CalibrationResult{
		Best:         best,
		Restarts:     results,
		Identifiable: isIdentifiable(ids, results, identifiabilityTol),
	}, nil
}

func isIdentifiable(ids []string, results []*Estimate, tol float64) bool {
	if len(results) < 2 {
		return true
	}
	for _, q := range ids {
		if stddev(betaValues(results, q)) >= tol {
			return false
		}
		if stddev(etaValues(results, q)) >= tol {
			return false
		}
	}
	return true
}

func betaValues(results []*Estimate, id string) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Beta[id]
	}
	return out
}

func etaValues(results []*Estimate, id string) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Eta[id]
	}
	return out
}

func stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	variance := 0.0
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(xs))
	return math.Sqrt(variance)
}

// randomSimplex draws a Dirichlet(1,...,1) sample (normalised exponentials)
// so every restart's prior is a genuine point on the probability simplex.
func randomSimplex(n int, next func() float64) []float64 {
	draws := make([]float64, n)
	total := 0.0
	for i := range draws {
		u := next()
		if u <= 0 {
			u = 1e-12
		}
		draws[i] = -math.Log(u)
		total += draws[i]
	}
	for i := range draws {
		draws[i] /= total
	}
	return draws
}

// randomParamMap draws each item's parameter uniformly from a band clear of
// the [0, 0.5) boundary, so restarts start from genuinely different points
// without immediately clamping.
func randomParamMap(ids []string, next func() float64) map[string]float64 {
	m := make(map[string]float64, len(ids))
	for _, id := range ids {
		m[id] = 0.02 + next()*0.4 // in [0.02, 0.42)
	}
	return m
}
