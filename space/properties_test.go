package space

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/kst-dev/kst/algebra"
	"github.com/kst-dev/kst/domain"
)

// propertyDomain is the fixed domain every generator below draws prerequisite
// graphs over.
func propertyDomain(t *testing.T) *domain.Domain {
	t.Helper()
	return testDomain(t, "a", "b", "c", "d", "e")
}

// forwardPairs lists every (i, j) with i < j over n indices.
func forwardPairs(n int) [][2]int {
	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}

// genLearningSpace builds a gopter generator that draws a random acyclic
// prerequisite graph over dom, closes it, and derives its Birkhoff state
// family — a generated learning space, standing in for the five hand-built
// fixtures that otherwise cover spec §4's S1/S2/S3/accessibility invariants
// (spec §8 "property-based coverage... over generated domains/states").
func genLearningSpace(t *testing.T, dom *domain.Domain) gopter.Gen {
	pairs := forwardPairs(dom.Len())
	ids := dom.IDs()
	return gen.SliceOfN(len(pairs), gen.Bool()).Map(func(chosen []bool) *Space {
		var edges [][2]string
		for k, include := range chosen {
			if include {
				p, q := pairs[k][0], pairs[k][1]
				edges = append(edges, [2]string{ids[p], ids[q]})
			}
		}
		g, err := algebra.BuildPrerequisiteGraph(dom, edges)
		if err != nil {
			t.Fatal(err)
		}
		sr := algebra.TransitiveClosure(g)
		states := algebra.BirkhoffStates(sr, 0)
		sp, _, err := BuildLearningSpace(dom, states, true)
		if err != nil {
			t.Fatal(err)
		}
		return sp
	})
}

// TestGeneratedLearningSpacesSatisfyAxioms checks spec §4's S1/S2/S3 plus
// accessibility over every Birkhoff-derived family the generator produces,
// not just diamondSpace's one hand-built fixture.
func TestGeneratedLearningSpacesSatisfyAxioms(t *testing.T) {
	dom := propertyDomain(t)
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("every birkhoff-derived family is a valid learning space", prop.ForAll(
		func(sp *Space) bool {
			report := ValidateLearningSpace(sp)
			return report.IsValid && sp.IsLearningSpace()
		},
		genLearningSpace(t, dom),
	))

	properties.TestingRun(t)
}

// TestInnerFringeNonEmptyForNonEmptyStates checks spec §4.2's fringe
// invariant: every non-empty state in a learning space has at least one item
// whose removal stays in the family (that's exactly accessibility, restated
// in fringe terms).
func TestInnerFringeNonEmptyForNonEmptyStates(t *testing.T) {
	dom := propertyDomain(t)
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("every non-empty state has a non-empty inner fringe", prop.ForAll(
		func(sp *Space) bool {
			empty := sp.Domain().Empty()
			for _, k := range sp.States() {
				if k.Equal(empty) {
					continue
				}
				if len(sp.InnerFringe(k)) == 0 {
					return false
				}
			}
			return true
		},
		genLearningSpace(t, dom),
	))

	properties.TestingRun(t)
}

// TestOuterFringeNonEmptyExceptAtFull checks spec §4.2: every state short of
// Q has at least one item whose addition stays in the family.
func TestOuterFringeNonEmptyExceptAtFull(t *testing.T) {
	dom := propertyDomain(t)
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("every state short of Q has a non-empty outer fringe", prop.ForAll(
		func(sp *Space) bool {
			full := sp.Domain().Full()
			for _, k := range sp.States() {
				if k.Equal(full) {
					continue
				}
				if len(sp.OuterFringe(k)) == 0 {
					return false
				}
			}
			return true
		},
		genLearningSpace(t, dom),
	))

	properties.TestingRun(t)
}

// TestGradationCoversEveryState checks spec §4.2's gradation invariant: every
// state in the family appears at exactly its cardinality's level, and the
// levels partition the family exactly (no state lost or duplicated).
func TestGradationCoversEveryState(t *testing.T) {
	dom := propertyDomain(t)
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("gradation levels partition the family by cardinality", prop.ForAll(
		func(sp *Space) bool {
			levels := sp.Gradation()
			count := 0
			for c, level := range levels {
				for _, k := range level {
					if k.Cardinality() != c {
						return false
					}
					count++
				}
			}
			return count == sp.Len()
		},
		genLearningSpace(t, dom),
	))

	properties.TestingRun(t)
}

// TestLearningPathsAreMaximalChainsOfSingleItemSteps checks spec §4.2's
// learning-path invariant: each path starts at ∅, ends at Q, every
// intermediate state belongs to the space, and each consecutive pair differs
// by exactly one item.
func TestLearningPathsAreMaximalChainsOfSingleItemSteps(t *testing.T) {
	dom := propertyDomain(t)
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("every learning path is a maximal chain of single-item steps", prop.ForAll(
		func(sp *Space) bool {
			empty := sp.Domain().Empty()
			full := sp.Domain().Full()
			for _, path := range sp.LearningPaths(64) {
				if len(path.States) < 2 {
					return false
				}
				if !path.States[0].Equal(empty) {
					return false
				}
				if !path.States[len(path.States)-1].Equal(full) {
					return false
				}
				for i, k := range path.States {
					if !sp.Contains(k) {
						return false
					}
					if i == 0 {
						continue
					}
					prev := path.States[i-1]
					if !prev.IsSubsetOf(k) {
						return false
					}
					if k.Difference(prev).Cardinality() != 1 {
						return false
					}
				}
				if len(path.Items) != len(path.States)-1 {
					return false
				}
			}
			return true
		},
		genLearningSpace(t, dom),
	))

	properties.TestingRun(t)
}

// TestCoveringEdgesFormASingleItemDag checks spec §4.2: every covering edge
// adds exactly one item, and the relation never cycles back (Lower is always
// a strict subset of Upper, so no edge can reverse another).
func TestCoveringEdgesFormASingleItemDag(t *testing.T) {
	dom := propertyDomain(t)
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("every covering edge adds exactly one item and strictly grows the state", prop.ForAll(
		func(sp *Space) bool {
			for _, c := range sp.CoveringEdges() {
				if !c.Lower.IsSubsetOf(c.Upper) || c.Lower.Equal(c.Upper) {
					return false
				}
				if c.Upper.Difference(c.Lower).Cardinality() != 1 {
					return false
				}
				if !c.Upper.Contains(c.ItemAdded) || c.Lower.Contains(c.ItemAdded) {
					return false
				}
			}
			return true
		},
		genLearningSpace(t, dom),
	))

	properties.TestingRun(t)
}
