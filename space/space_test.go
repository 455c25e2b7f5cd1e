package space

import (
	"errors"
	"testing"

	"github.com/kst-dev/kst/domain"
	"github.com/kst-dev/kst/kerrors"
)

func testDomain(t *testing.T, ids ...string) *domain.Domain {
	t.Helper()
	items := make([]domain.Item, len(ids))
	for i, id := range ids {
		it, err := domain.NewItem(id, "")
		if err != nil {
			t.Fatal(err)
		}
		items[i] = it
	}
	dom, err := domain.NewDomain("d", "", items)
	if err != nil {
		t.Fatal(err)
	}
	return dom
}

func mustState(t *testing.T, dom *domain.Domain, ids ...string) domain.KnowledgeState {
	t.Helper()
	k, err := dom.StateFromIDs(ids...)
	if err != nil {
		t.Fatal(err)
	}
	return k
}

// diamondSpace builds the knowledge space over {a,b,c} where a must be
// learned first and b, c are independently acquirable afterward (a "fork",
// not a join): the small general-purpose fixture used throughout this
// package's tests. The literal 4-item join-diamond from spec §8 scenario 2
// (a -> b, a -> c, b -> d, c -> d) is built separately in scenarios_test.go.
func diamondSpace(t *testing.T) (*domain.Domain, []domain.KnowledgeState) {
	t.Helper()
	dom := testDomain(t, "a", "b", "c")
	return dom, []domain.KnowledgeState{
		mustState(t, dom),
		mustState(t, dom, "a"),
		mustState(t, dom, "a", "b"),
		mustState(t, dom, "a", "c"),
		mustState(t, dom, "a", "b", "c"),
	}
}

func TestBuildKnowledgeSpaceValid(t *testing.T) {
	dom, states := diamondSpace(t)
	sp, report, err := BuildKnowledgeSpace(dom, states, true)
	if err != nil {
		t.Fatal(err)
	}
	if !report.IsValid {
		t.Fatal("expected a valid report")
	}
	if sp.Len() != len(states) {
		t.Fatalf("Len() = %d, want %d", sp.Len(), len(states))
	}
}

func TestBuildKnowledgeSpaceMissingEmptyStateFails(t *testing.T) {
	dom := testDomain(t, "a", "b")
	states := []domain.KnowledgeState{mustState(t, dom, "a", "b")}
	_, report, err := BuildKnowledgeSpace(dom, states, false)
	if err != nil {
		t.Fatal(err)
	}
	if report.IsValid {
		t.Fatal("expected S1 violation to be reported")
	}

	_, _, err = BuildKnowledgeSpace(dom, states, true)
	if !errors.Is(err, kerrors.New(kerrors.KindAxiomViolation, "", nil)) {
		t.Fatalf("expected AxiomViolation in strict mode, got %v", err)
	}
}

func TestBuildKnowledgeSpaceNotUnionClosedFails(t *testing.T) {
	dom := testDomain(t, "a", "b", "c")
	states := []domain.KnowledgeState{
		mustState(t, dom),
		mustState(t, dom, "a"),
		mustState(t, dom, "b"),
		mustState(t, dom, "a", "b", "c"),
		// missing {a,b}, the union of {a} and {b}
	}
	_, report, err := BuildKnowledgeSpace(dom, states, false)
	if err != nil {
		t.Fatal(err)
	}
	if report.IsValid {
		t.Fatal("expected S3 violation to be reported")
	}
}

func TestBuildLearningSpaceAccessibility(t *testing.T) {
	dom, states := diamondSpace(t)
	sp, report, err := BuildLearningSpace(dom, states, true)
	if err != nil {
		t.Fatal(err)
	}
	if !sp.IsLearningSpace() {
		t.Fatal("expected IsLearningSpace to be true")
	}
	if !report.IsValid {
		t.Fatal("expected a valid report")
	}
}

func TestBuildLearningSpaceInaccessibleStateFails(t *testing.T) {
	dom := testDomain(t, "a", "b")
	states := []domain.KnowledgeState{
		mustState(t, dom),
		mustState(t, dom, "a", "b"), // jumps straight to full mastery, no single-item path in
	}
	_, report, err := BuildLearningSpace(dom, states, false)
	if err != nil {
		t.Fatal(err)
	}
	if report.IsValid {
		t.Fatal("expected accessibility violation to be reported")
	}

	_, _, err = BuildLearningSpace(dom, states, true)
	if !errors.Is(err, kerrors.New(kerrors.KindInaccessibleState, "", nil)) {
		t.Fatalf("expected InaccessibleState in strict mode, got %v", err)
	}
}

func TestFringes(t *testing.T) {
	dom, states := diamondSpace(t)
	sp, _, err := BuildLearningSpace(dom, states, true)
	if err != nil {
		t.Fatal(err)
	}
	abc := mustState(t, dom, "a", "b", "c")
	if inner := sp.InnerFringe(abc); len(inner) != 2 || inner[0] != "b" || inner[1] != "c" {
		t.Fatalf("InnerFringe(abc) = %v, want [b c]", inner)
	}
	a := mustState(t, dom, "a")
	if outer := sp.OuterFringe(a); len(outer) != 2 || outer[0] != "b" || outer[1] != "c" {
		t.Fatalf("OuterFringe(a) = %v, want [b c]", outer)
	}
}
