package algebra

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

func TestBuildPrerequisiteGraphLinearChain(t *testing.T) {
	dom := testDomain(t, "a", "b", "c")
	g, err := BuildPrerequisiteGraph(dom, [][2]string{{"a", "b"}, {"b", "c"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.DirectPredecessors("b"); len(got) != 1 || got[0] != "a" {
		t.Fatalf("DirectPredecessors(b) = %v", got)
	}
	if got := g.DirectSuccessors("a"); len(got) != 1 || got[0] != "b" {
		t.Fatalf("DirectSuccessors(a) = %v", got)
	}
	ids, length := g.LongestPath()
	if length != 2 || ids[0] != "a" || ids[2] != "c" {
		t.Fatalf("LongestPath() = %v, %d", ids, length)
	}
}

func TestBuildPrerequisiteGraphRejectsUnknownItem(t *testing.T) {
	dom := testDomain(t, "a", "b")
	if _, err := BuildPrerequisiteGraph(dom, [][2]string{{"a", "z"}}); !errors.Is(err, kerrors.New(kerrors.KindUnknownItem, "", nil)) {
		t.Fatalf("expected UnknownItem, got %v", err)
	}
}

func TestBuildPrerequisiteGraphRejectsSelfLoop(t *testing.T) {
	dom := testDomain(t, "a")
	if _, err := BuildPrerequisiteGraph(dom, [][2]string{{"a", "a"}}); !errors.Is(err, kerrors.New(kerrors.KindCyclicPrerequisites, "", nil)) {
		t.Fatalf("expected CyclicPrerequisites, got %v", err)
	}
}

func TestBuildPrerequisiteGraphRejectsCycle(t *testing.T) {
	dom := testDomain(t, "a", "b", "c")
	_, err := BuildPrerequisiteGraph(dom, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	if !errors.Is(err, kerrors.New(kerrors.KindCyclicPrerequisites, "", nil)) {
		t.Fatalf("expected CyclicPrerequisites, got %v", err)
	}
}

func TestLongestPathIsolatedItem(t *testing.T) {
	dom := testDomain(t, "a")
	g, err := BuildPrerequisiteGraph(dom, nil)
	if err != nil {
		t.Fatal(err)
	}
	ids, length := g.LongestPath()
	if length != 0 || len(ids) != 1 {
		t.Fatalf("LongestPath() = %v, %d, want single isolated item length 0", ids, length)
	}
}
