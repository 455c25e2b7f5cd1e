package assessment

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kst-dev/kst/domain"
	"github.com/kst-dev/kst/internal/kutil"
	"github.com/kst-dev/kst/kerrors"
)

// Status is the adaptive session's state-machine state (spec §4.3):
//
//	Idle ──start──▸ Open ──observe──▸ Open' ──done──▸ Complete
//
// There is no explicit Idle value — a session only exists once started.
type Status int

const (
	StatusOpen Status = iota
	StatusComplete
	StatusFailed
)

// StepRecord is one entry of the session's ordered step log (spec §4.3
// Summary): the item asked, the observed outcome, entropy before/after, and
// the MAP estimate immediately after the observation.
type StepRecord struct {
	ItemID        string
	Outcome       bool
	EntropyBefore float64
	EntropyAfter  float64
	MAPAfter      []string
}

// Summary reports the outcome of a completed or failed session.
type Summary struct {
	TotalQuestions int
	Steps          []StepRecord
	FinalMAP       []string
	Confidence     float64 // 1 - H(π)/log2(|K|)
}

// AssessmentSession is the adaptive assessment handle (spec §3): a domain,
// state family, BLIM parameters, current belief, and the set of items
// already asked. Values are immutable; Observe returns a new session rather
// than mutating the receiver, the same "mutation via new value" discipline
// as BeliefState.
type AssessmentSession struct {
	ID     uuid.UUID
	dom    *domain.Domain
	states []domain.KnowledgeState
	params *BLIMParameters
	belief BeliefState
	asked  map[string]bool
	status Status

	entropyThreshold float64
	steps            []StepRecord
	log              *zap.SugaredLogger
}

// StartSession begins a new adaptive assessment session with a uniform
// prior over states. entropyThreshold is the entropy (in bits) at or below
// which the session is considered complete, even if unasked items remain.
func StartSession(dom *domain.Domain, states []domain.KnowledgeState, params *BLIMParameters, entropyThreshold float64) *AssessmentSession {
	return StartSessionWithLogger(dom, states, params, entropyThreshold, nil)
}

// StartSessionWithLogger is StartSession with an injected logger (nil
// defaults to a no-op logger, spec §5 "no global mutable state").
func StartSessionWithLogger(dom *domain.Domain, states []domain.KnowledgeState, params *BLIMParameters, entropyThreshold float64, log *zap.SugaredLogger) *AssessmentSession {
	if log == nil {
		log = kutil.NopLogger()
	}
	return &AssessmentSession{
		ID:               uuid.New(),
		dom:              dom,
		states:           states,
		params:           params,
		belief:           UniformBelief(states),
		asked:            map[string]bool{},
		status:           StatusOpen,
		entropyThreshold: entropyThreshold,
		log:              log,
	}
}

// Belief returns the session's current belief distribution.
func (s *AssessmentSession) Belief() BeliefState { return s.belief }

// Status returns the session's current state-machine status.
func (s *AssessmentSession) Status() Status { return s.status }

// clone returns a shallow copy of s with an independent asked map and steps
// slice, so callers mutate the copy, never the receiver.
func (s *AssessmentSession) clone() *AssessmentSession {
	cp := *s
	cp.asked = make(map[string]bool, len(s.asked))
	for k, v := range s.asked {
		cp.asked[k] = v
	}
	cp.steps = append([]StepRecord{}, s.steps...)
	return &cp
}

// SelectItem picks the unasked item maximising information gain, breaking
// ties by ascending item id (spec §4.3 "Item selector"). Returns
// NoRemainingItems if every item has been asked.
func (s *AssessmentSession) SelectItem() (string, error) {
	candidates := s.remainingItems()
	if len(candidates) == 0 {
		return "", kerrors.ErrNoRemainingItems
	}

	best := ""
	bestGain := -1.0
	for _, id := range candidates { // candidates is already id-sorted
		gain, err := InformationGain(s.params, s.belief, id)
		if err != nil {
			return "", err
		}
		if gain > bestGain {
			bestGain = gain
			best = id
		}
	}
	return best, nil
}

func (s *AssessmentSession) remainingItems() []string {
	ids := s.dom.IDs() // already id-sorted
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !s.asked[id] {
			out = append(out, id)
		}
	}
	return out
}

// Observe folds an observed response for itemID into the belief and returns
// a new session reflecting it. Observing an item not in the domain, an item
// already asked, or calling Observe after completion are all programmer
// errors (spec §4.3) returned as UnknownItem, AlreadyAsked, or
// ErrSessionComplete respectively; on any such error the returned session is
// placed in the Failed state (spec §7 "Propagation").
func (s *AssessmentSession) Observe(itemID string, r bool) (*AssessmentSession, error) {
	if s.status != StatusOpen {
		failed := s.clone()
		failed.status = StatusFailed
		return failed, kerrors.ErrSessionComplete
	}
	if !s.dom.Has(itemID) {
		failed := s.clone()
		failed.status = StatusFailed
		return failed, kerrors.New(kerrors.KindUnknownItem, "observed item not in domain", itemID)
	}
	if s.asked[itemID] {
		failed := s.clone()
		failed.status = StatusFailed
		return failed, kerrors.ErrAlreadyAsked
	}

	before := s.belief.Entropy()
	updated, err := s.belief.Update(s.params, itemID, r)
	if err != nil {
		failed := s.clone()
		failed.status = StatusFailed
		return failed, err
	}

	next := s.clone()
	next.belief = updated
	next.asked[itemID] = true
	next.steps = append(next.steps, StepRecord{
		ItemID:        itemID,
		Outcome:       r,
		EntropyBefore: before,
		EntropyAfter:  updated.Entropy(),
		MAPAfter:      updated.MAP().IDs(),
	})
	next.log.Debugw("observed item", "item", itemID, "outcome", r, "entropy_after", updated.Entropy())

	if next.isDone() {
		next.status = StatusComplete
	}
	return next, nil
}

func (s *AssessmentSession) isDone() bool {
	if len(s.asked) == s.dom.Len() {
		return true
	}
	return s.belief.Entropy() <= s.entropyThreshold
}

// RunBatch folds a complete response map through the Bayesian update in
// fixed item-id order, returning the resulting (completed) session. This is
// semantically equivalent to calling Observe repeatedly in that order (spec
// §4.3 "Batch (non-adaptive) mode").
func RunBatch(dom *domain.Domain, states []domain.KnowledgeState, params *BLIMParameters, responses map[string]bool, entropyThreshold float64) (*AssessmentSession, error) {
	sess := StartSession(dom, states, params, entropyThreshold)
	ids := dom.IDs()
	sort.Strings(ids)
	for _, id := range ids {
		r, ok := responses[id]
		if !ok {
			continue
		}
		var err error
		sess, err = sess.Observe(id, r)
		if err != nil {
			return sess, err
		}
	}
	return sess, nil
}

// RunAdaptive drives the session to completion, at each step selecting the
// highest-information item and asking respond for its outcome, until the
// session reaches Complete or every item has been asked.
func RunAdaptive(dom *domain.Domain, states []domain.KnowledgeState, params *BLIMParameters, entropyThreshold float64, respond func(itemID string) bool) (*AssessmentSession, error) {
	sess := StartSession(dom, states, params, entropyThreshold)
	for sess.Status() == StatusOpen {
		id, err := sess.SelectItem()
		if err != nil {
			if kerrors.Of(err, kerrors.KindNoRemainingItems) {
				break
			}
			return sess, err
		}
		r := respond(id)
		sess, err = sess.Observe(id, r)
		if err != nil {
			return sess, err
		}
	}
	return sess, nil
}

// Summarize produces the session's Summary (spec §4.3).
func (s *AssessmentSession) Summarize() Summary {
	maxEntropy := 0.0
	if n := len(s.states); n > 1 {
		maxEntropy = math.Log2(float64(n))
	}
	confidence := 1.0
	if maxEntropy > 0 {
		confidence = 1 - s.belief.Entropy()/maxEntropy
	}
	return Summary{
		TotalQuestions: len(s.steps),
		Steps:          append([]StepRecord{}, s.steps...),
		FinalMAP:       s.belief.MAP().IDs(),
		Confidence:     confidence,
	}
}
