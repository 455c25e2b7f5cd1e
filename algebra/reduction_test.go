package algebra

import "testing"

func TestTransitiveReductionDropsRedundantEdge(t *testing.T) {
	// a -> b, b -> c, and a redundant direct a -> c edge.
	dom := testDomain(t, "a", "b", "c")
	g, err := BuildPrerequisiteGraph(dom, [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}})
	if err != nil {
		t.Fatal(err)
	}
	reduced := TransitiveReduction(g)

	if got := reduced.DirectPredecessors("c"); len(got) != 1 || got[0] != "b" {
		t.Fatalf("DirectPredecessors(c) after reduction = %v, want [b]", got)
	}
}

func TestReduceThenCloseEqualsClose(t *testing.T) {
	dom := testDomain(t, "a", "b", "c", "d")
	g, err := BuildPrerequisiteGraph(dom, [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}, {"a", "d"}})
	if err != nil {
		t.Fatal(err)
	}
	original := TransitiveClosure(g)
	reduced := TransitiveReduction(g)
	reclosed := TransitiveClosure(reduced)

	if !Equivalent(original, reclosed) {
		t.Fatal("reduce-then-close should equal the original closure")
	}

	originalEdges := closureEdgeSet(original)
	reclosedEdges := closureEdgeSet(reclosed)
	if len(originalEdges) != len(reclosedEdges) {
		t.Fatalf("closure edge sets differ in size: %d vs %d", len(originalEdges), len(reclosedEdges))
	}
	for e := range originalEdges {
		if _, ok := reclosedEdges[e]; !ok {
			t.Fatalf("edge %v present in original closure but not reclosed one", e)
		}
	}
}
