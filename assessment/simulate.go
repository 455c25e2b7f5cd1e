package assessment

import "github.com/kst-dev/kst/domain"

// ResponseSimulator draws a response for an item from a fixed true state:
// correct with probability 1-β if the item is in the true state, correct
// (lucky guess) with probability η otherwise. next is the PRNG step, the
// same next-float64-in-[0,1) shape as the rest of this codebase uses for
// seeded, reproducible sampling (see estimation's restart sampler).
type ResponseSimulator struct {
	params    *BLIMParameters
	trueState domain.KnowledgeState
	next      func() float64
}

// NewResponseSimulator builds a simulator that answers as a learner in
// trueState would, drawing randomness from next.
func NewResponseSimulator(params *BLIMParameters, trueState domain.KnowledgeState, next func() float64) *ResponseSimulator {
	return &ResponseSimulator{params: params, trueState: trueState, next: next}
}

// Respond draws the simulated response for itemID.
func (r *ResponseSimulator) Respond(itemID string) bool {
	mastered := r.trueState.Contains(itemID)
	draw := r.next()
	if mastered {
		return draw >= r.params.Slip(itemID) // correct unless slip fires
	}
	return draw < r.params.Guess(itemID) // correct only on a lucky guess
}
