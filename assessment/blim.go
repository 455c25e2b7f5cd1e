// Package assessment implements the BLIM-based adaptive assessment engine
// (spec §4.3): belief distributions over knowledge states, Bayesian
// single-item updates, entropy-based item selection, and the adaptive
// session state machine.
package assessment

import (
	"github.com/kst-dev/kst/domain"
	"github.com/kst-dev/kst/kerrors"
)

// BLIMParameters holds per-item slip (β) and lucky-guess (η) probabilities
// for the Basic Local Independence Model. Keys must exactly match the
// domain's item ids (spec §3).
type BLIMParameters struct {
	dom  *domain.Domain
	beta map[string]float64
	eta  map[string]float64
}

// NewBLIMParameters validates and constructs BLIMParameters: both maps must
// have exactly the domain's id set as keys, and every value must lie in
// [0, 0.5).
func NewBLIMParameters(dom *domain.Domain, beta, eta map[string]float64) (*BLIMParameters, error) {
	for _, id := range dom.IDs() {
		b, ok := beta[id]
		if !ok {
			return nil, kerrors.New(kerrors.KindParameterOutOfRange, "missing slip parameter for item", id)
		}
		if b < 0 || b >= 0.5 {
			return nil, kerrors.New(kerrors.KindParameterOutOfRange, "slip (beta) must be in [0, 0.5)", id)
		}
		e, ok := eta[id]
		if !ok {
			return nil, kerrors.New(kerrors.KindParameterOutOfRange, "missing lucky-guess parameter for item", id)
		}
		if e < 0 || e >= 0.5 {
			return nil, kerrors.New(kerrors.KindParameterOutOfRange, "lucky-guess (eta) must be in [0, 0.5)", id)
		}
	}
	return &BLIMParameters{dom: dom, beta: cloneMap(beta), eta: cloneMap(eta)}, nil
}

// UniformBLIMParameters builds BLIMParameters with the same β and η applied
// to every item.
func UniformBLIMParameters(dom *domain.Domain, beta, eta float64) (*BLIMParameters, error) {
	b := make(map[string]float64, dom.Len())
	e := make(map[string]float64, dom.Len())
	for _, id := range dom.IDs() {
		b[id] = beta
		e[id] = eta
	}
	return NewBLIMParameters(dom, b, e)
}

// Slip returns β_q.
func (p *BLIMParameters) Slip(id string) float64 { return p.beta[id] }

// Guess returns η_q.
func (p *BLIMParameters) Guess(id string) float64 { return p.eta[id] }

func cloneMap(m map[string]float64) map[string]float64 {
	cp := make(map[string]float64, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// ResponseLikelihood computes P(r | q, K) per spec §4.3's four-case table.
func (p *BLIMParameters) ResponseLikelihood(id string, k domain.KnowledgeState, r bool) float64 {
	mastered := k.Contains(id)
	beta, eta := p.beta[id], p.eta[id]
	switch {
	case mastered && r:
		return 1 - beta
	case mastered && !r:
		return beta
	case !mastered && r:
		return eta
	default: // !mastered && !r
		return 1 - eta
	}
}

// PatternLikelihood computes P(R | K) for a full response pattern R (a map
// from every domain item id to an observed boolean), factorising across
// items under local independence.
func (p *BLIMParameters) PatternLikelihood(pattern map[string]bool, k domain.KnowledgeState) float64 {
	prob := 1.0
	for _, id := range p.dom.IDs() {
		prob *= p.ResponseLikelihood(id, k, pattern[id])
	}
	return prob
}
