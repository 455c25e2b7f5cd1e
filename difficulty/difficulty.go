// Package difficulty computes per-item difficulty scores (spec §4.6):
// structural (prerequisite count), empirical (observed error rate), and
// BLIM-based (slip plus miss-guess), each normalised to [0,1] and combined
// by averaging whichever measures are available.
package difficulty

import (
	"github.com/kst-dev/kst/algebra"
	"github.com/kst-dev/kst/assessment"
	"github.com/kst-dev/kst/domain"
)

// Measures holds the per-item scores for whichever difficulty dimensions
// were computed; a nil map means that dimension was not supplied.
type Measures struct {
	Structural map[string]float64
	Empirical  map[string]float64
	BLIM       map[string]float64
}

// StructuralDifficulty scores each item by its prerequisite count, |{p :
// p precedes q, p != q}|, normalised by the maximum count across items.
// PrerequisitesOf includes q itself by reflexivity, so it is excluded here.
func StructuralDifficulty(dom *domain.Domain, sr *algebra.SurmiseRelation) map[string]float64 {
	raw := make(map[string]float64, dom.Len())
	max := 0.0
	for _, id := range dom.IDs() {
		n := float64(len(sr.PrerequisitesOf(id)) - 1)
		raw[id] = n
		if n > max {
			max = n
		}
	}
	return normalize(raw, max)
}

// EmpiricalDifficulty scores each item by its fraction of incorrect
// responses across an observed response dataset.
func EmpiricalDifficulty(dom *domain.Domain, data []map[string]bool) map[string]float64 {
	out := make(map[string]float64, dom.Len())
	for _, id := range dom.IDs() {
		total, incorrect := 0, 0
		for _, pattern := range data {
			r, ok := pattern[id]
			if !ok {
				continue
			}
			total++
			if !r {
				incorrect++
			}
		}
		if total > 0 {
			out[id] = float64(incorrect) / float64(total)
		}
	}
	return out
}

// BLIMDifficulty scores each item as β_q+(1-η_q), clamped to [0,1]: a high
// slip rate raises the score and a high lucky-guess rate lowers it.
func BLIMDifficulty(dom *domain.Domain, params *assessment.BLIMParameters) map[string]float64 {
	out := make(map[string]float64, dom.Len())
	for _, id := range dom.IDs() {
		v := params.Slip(id) + (1 - params.Guess(id))
		if v > 1 {
			v = 1
		}
		if v < 0 {
			v = 0
		}
		out[id] = v
	}
	return out
}

func normalize(raw map[string]float64, max float64) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for id, v := range raw {
		if max > 0 {
			out[id] = v / max
		} else {
			out[id] = 0
		}
	}
	return out
}

// Aggregate averages the available measures per item (spec §4.6). An item
// missing from every measure is left out of the result.
func Aggregate(dom *domain.Domain, m Measures) map[string]float64 {
	out := make(map[string]float64, dom.Len())
	for _, id := range dom.IDs() {
		sum, n := 0.0, 0
		if v, ok := lookup(m.Structural, id); ok {
			sum += v
			n++
		}
		if v, ok := lookup(m.Empirical, id); ok {
			sum += v
			n++
		}
		if v, ok := lookup(m.BLIM, id); ok {
			sum += v
			n++
		}
		if n > 0 {
			out[id] = sum / float64(n)
		}
	}
	return out
}

func lookup(m map[string]float64, id string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m[id]
	return v, ok
}
