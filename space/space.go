// Package space implements the space engine (spec §4.2): constructing and
// validating a KnowledgeSpace / LearningSpace from a domain and a family of
// states, and deriving fringes, atoms, gradation, the covering relation, and
// learning paths from it.
package space

import (
	"sort"

	"github.com/kst-dev/kst/domain"
	"github.com/kst-dev/kst/kerrors"
	"github.com/kst-dev/kst/validation"
)

// Space is a validated (Q, K) pair: a domain and a family of knowledge
// states. Learning reports whether accessibility (spec §3 LearningSpace)
// was additionally checked and held at construction time.
type Space struct {
	dom      *domain.Domain
	states   []domain.KnowledgeState // canonical order (domain.Less)
	byKey    map[string]int
	learning bool
}

// Domain returns the space's owning domain.
func (s *Space) Domain() *domain.Domain { return s.dom }

// States returns the state family in canonical order. Callers must not
// mutate the returned slice.
func (s *Space) States() []domain.KnowledgeState { return s.states }

// Len returns |K|, the number of states in the family.
func (s *Space) Len() int { return len(s.states) }

// Contains reports whether k is a member of the family.
func (s *Space) Contains(k domain.KnowledgeState) bool {
	_, ok := s.byKey[k.Key()]
	return ok
}

// IsLearningSpace reports whether this Space was validated with
// accessibility (i.e. built via BuildLearningSpace in strict mode, or via
// BuildKnowledgeSpace followed by a passing ValidateLearningSpace).
func (s *Space) IsLearningSpace() bool { return s.learning }

func indexStates(dom *domain.Domain, states []domain.KnowledgeState) ([]domain.KnowledgeState, map[string]int) {
	cp := make([]domain.KnowledgeState, len(states))
	copy(cp, states)
	domain.SortStates(cp)
	idx := make(map[string]int, len(cp))
	for i, k := range cp {
		idx[k.Key()] = i
	}
	return cp, idx
}

// BuildKnowledgeSpace validates states as a knowledge space (S1, S2, S3,
// subset) against dom. In strict mode a failing validation returns
// AxiomViolation; in reporting mode it always returns a *Space (possibly
// invalid) alongside a Report describing what failed.
func BuildKnowledgeSpace(dom *domain.Domain, states []domain.KnowledgeState, strict bool) (*Space, validation.Report, error) {
	ordered, idx := indexStates(dom, states)
	sp := &Space{dom: dom, states: ordered, byKey: idx}
	report := ValidateKnowledgeSpace(sp)
	if strict && !report.IsValid {
		c, _ := report.FirstFailure()
		return nil, report, kerrors.New(kerrors.KindAxiomViolation, c.Message, c.Reference)
	}
	return sp, report, nil
}

// BuildLearningSpace validates states as a knowledge space plus
// accessibility. In strict mode any failure (axiom or accessibility)
// produces an error; the corresponding error kind for an accessibility
// failure is InaccessibleState, carrying the offending state as witness.
func BuildLearningSpace(dom *domain.Domain, states []domain.KnowledgeState, strict bool) (*Space, validation.Report, error) {
	ordered, idx := indexStates(dom, states)
	sp := &Space{dom: dom, states: ordered, byKey: idx}
	report := ValidateLearningSpace(sp)
	if report.IsValid {
		sp.learning = true
	}
	if strict && !report.IsValid {
		c, _ := report.FirstFailure()
		kind := kerrors.KindAxiomViolation
		if c.Name == "accessibility" {
			kind = kerrors.KindInaccessibleState
		}
		return nil, report, kerrors.New(kind, c.Message, c.Reference)
	}
	return sp, report, nil
}

// ValidateKnowledgeSpace runs the S1/S2/S3/subset axiom checks against sp
// and returns a Report; it never mutates sp.
func ValidateKnowledgeSpace(sp *Space) validation.Report {
	var checks []validation.Check

	empty := sp.dom.Empty()
	full := sp.dom.Full()

	checks = append(checks, validation.Check{
		Name: "S1", Passed: sp.Contains(empty),
		Message: "empty state must belong to the family",
	})
	checks = append(checks, validation.Check{
		Name: "S2", Passed: sp.Contains(full),
		Message: "full state Q must belong to the family",
	})
	// subset is automatically guaranteed by domain.KnowledgeState's bitset
	// representation (no index beyond |Q| can ever be set), but the check
	// is still reported so every axiom in spec §3 has a visible check.
	checks = append(checks, validation.Check{
		Name: "subset", Passed: true,
		Message: "every state is a subset of Q by construction",
	})

	ok, counterexample, found := findUnionClosureViolation(sp.states)
	check := validation.Check{Name: "S3", Passed: ok, Message: "family must be closed under union"}
	if !ok && found {
		check.Reference = [2][]string{counterexample[0].IDs(), counterexample[1].IDs()}
		check.Message = "family is not closed under union"
	}
	checks = append(checks, check)

	return validation.NewReport(checks)
}

// ValidateLearningSpace runs the knowledge-space axioms plus accessibility.
func ValidateLearningSpace(sp *Space) validation.Report {
	base := ValidateKnowledgeSpace(sp)
	checks := append([]validation.Check{}, base.Checks...)

	ok, witness, found := findAccessibilityViolation(sp)
	check := validation.Check{Name: "accessibility", Passed: ok, Message: "every non-empty state must have an item whose removal stays in the family"}
	if !ok && found {
		check.Reference = witness.IDs()
		check.Message = "state is not accessible: no single-item removal stays in the family"
	}
	checks = append(checks, check)

	return validation.NewReport(checks)
}

// findUnionClosureViolation implements the naive O(m²·n) S3 check (spec
// §4.2): tests every unordered pair with hashed state lookup. States are
// iterated in ascending-cardinality canonical order (domain.Less), so the
// first violation encountered is, in practice, among the smallest-
// cardinality counterexamples — the debugging aid spec §4.2 asks for.
func findUnionClosureViolation(states []domain.KnowledgeState) (ok bool, counterexample [2]domain.KnowledgeState, found bool) {
	byKey := make(map[string]bool, len(states))
	for _, s := range states {
		byKey[s.Key()] = true
	}
	for i := 0; i < len(states); i++ {
		for j := i + 1; j < len(states); j++ {
			u := states[i].Union(states[j])
			if !byKey[u.Key()] {
				return false, [2]domain.KnowledgeState{states[i], states[j]}, true
			}
		}
	}
	return true, [2]domain.KnowledgeState{}, false
}

// findAccessibilityViolation implements the O(m·n) accessibility check.
func findAccessibilityViolation(sp *Space) (ok bool, witness domain.KnowledgeState, found bool) {
	empty := sp.dom.Empty()
	for _, k := range sp.states {
		if k.Equal(empty) {
			continue
		}
		accessible := false
		for _, id := range k.IDs() {
			if sp.Contains(k.WithoutItem(id)) {
				accessible = true
				break
			}
		}
		if !accessible {
			return false, k, true
		}
	}
	return true, domain.KnowledgeState{}, false
}

// InnerFringe returns K^I = {q ∈ K : K\{q} ∈ K(family)}.
func (s *Space) InnerFringe(k domain.KnowledgeState) []string {
	var out []string
	for _, id := range k.IDs() {
		if s.Contains(k.WithoutItem(id)) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// OuterFringe returns K^O = {q ∈ Q\K : K∪{q} ∈ K(family)}.
func (s *Space) OuterFringe(k domain.KnowledgeState) []string {
	var out []string
	for _, id := range s.dom.IDs() {
		if k.Contains(id) {
			continue
		}
		if s.Contains(k.WithItem(id)) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
