package algebra

import "testing"

func TestBirkhoffStatesRoundTrip(t *testing.T) {
	dom := testDomain(t, "a", "b", "c")
	g, err := BuildPrerequisiteGraph(dom, [][2]string{{"a", "b"}, {"b", "c"}})
	if err != nil {
		t.Fatal(err)
	}
	sr := TransitiveClosure(g)

	states := BirkhoffStates(sr, 0)
	if len(states) != 4 {
		t.Fatalf("expected 4 states, got %d", len(states))
	}
	for _, k := range states {
		if k.Domain() != dom {
			t.Fatal("every state must reference the original domain")
		}
		if !sr.IsDownset(k) {
			t.Fatal("every state produced by Birkhoff must be a downset")
		}
	}
}
