package algebra

import "testing"

func TestTopologicalOrdersLinearChainIsUnique(t *testing.T) {
	dom := testDomain(t, "a", "b", "c")
	g, err := BuildPrerequisiteGraph(dom, [][2]string{{"a", "b"}, {"b", "c"}})
	if err != nil {
		t.Fatal(err)
	}
	orders := g.TopologicalOrders(0)
	if len(orders) != 1 {
		t.Fatalf("expected exactly 1 order for a linear chain, got %d", len(orders))
	}
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if orders[0][i] != id {
			t.Fatalf("order = %v, want %v", orders[0], want)
		}
	}
}

func TestTopologicalOrdersAntichainIsFactorial(t *testing.T) {
	dom := testDomain(t, "a", "b", "c")
	g, err := BuildPrerequisiteGraph(dom, nil)
	if err != nil {
		t.Fatal(err)
	}
	orders := g.TopologicalOrders(0)
	if len(orders) != 6 {
		t.Fatalf("expected 3! = 6 orders for a 3-item antichain, got %d", len(orders))
	}
}

func TestTopologicalOrdersRespectsMaxOrders(t *testing.T) {
	dom := testDomain(t, "a", "b", "c")
	g, err := BuildPrerequisiteGraph(dom, nil)
	if err != nil {
		t.Fatal(err)
	}
	orders := g.TopologicalOrders(2)
	if len(orders) != 2 {
		t.Fatalf("expected exactly 2 orders when capped, got %d", len(orders))
	}
}
