package pargraph

import "testing"

func TestAddNodeAndIndex(t *testing.T) {
	space := NewLabelSpace()
	g := NewGraph(space)

	l1 := space.AllocateLabel()
	l2 := space.AllocateLabel()

	a := g.AddNode(l1, "a")
	b := g.AddNode(l2, "b")
	b.AddAlternateLabel(l1)

	if g.NumNodes() != 2 {
		t.Fatalf("NumNodes() = %d; want 2", g.NumNodes())
	}

	// Before indexing, queries yield empty results, not errors.
	if n := g.CountWithLabel(l1); n != 0 {
		t.Errorf("CountWithLabel before indexing = %d; want 0", n)
	}

	g.IndexNodesByLabel()

	if got := g.CountWithLabel(l1); got != 2 {
		t.Errorf("CountWithLabel(l1) = %d; want 2 (primary + alternate)", got)
	}
	// Primary-label entries come before alternate-label entries.
	first, err := g.NodeByLabelAndIndex(l1, 0)
	if err != nil {
		t.Fatalf("NodeByLabelAndIndex error = %v", err)
	}
	if first != a {
		t.Errorf("NodeByLabelAndIndex(l1, 0) = %v; want the primary holder (a)", first.Payload)
	}
	second, err := g.NodeByLabelAndIndex(l1, 1)
	if err != nil {
		t.Fatalf("NodeByLabelAndIndex error = %v", err)
	}
	if second != b {
		t.Errorf("NodeByLabelAndIndex(l1, 1) = %v; want the alternate holder (b)", second.Payload)
	}

	if _, err := g.NodeByLabelAndIndex(l1, 2); err != ErrLabelIndexOutOfRange {
		t.Errorf("out-of-range lookup err = %v; want ErrLabelIndexOutOfRange", err)
	}
}

func TestNodeByLabelAndIndexBeforeIndexing(t *testing.T) {
	g := NewGraph(NewLabelSpace())
	if _, err := g.NodeByLabelAndIndex(0, 0); err != ErrLabelNotIndexed {
		t.Errorf("err = %v; want ErrLabelNotIndexed", err)
	}
}

func TestAddEdgeAndNumEdges(t *testing.T) {
	space := NewLabelSpace()
	g := NewGraph(space)
	a := g.AddNode(space.AllocateLabel(), nil)
	b := g.AddNode(space.AllocateLabel(), nil)
	a.AddEdge("o", b, "i")

	if got := g.NumEdges(); got != 1 {
		t.Errorf("NumEdges() = %d; want 1", got)
	}
	edges := a.Edges()
	if len(edges) != 1 || edges[0].Src != a || edges[0].Dst != b {
		t.Errorf("a.Edges() = %+v; want one edge a->b", edges)
	}
}

func TestAddEdgeCrossGraphPanics(t *testing.T) {
	space := NewLabelSpace()
	g1 := NewGraph(space)
	g2 := NewGraph(space)
	a := g1.AddNode(space.AllocateLabel(), nil)
	x := g2.AddNode(space.AllocateLabel(), nil)

	defer func() {
		if recover() == nil {
			t.Error("AddEdge across graphs did not panic")
		}
	}()
	a.AddEdge("o", x, "i")
}

func TestRelabelBeforeAndAfterIndexing(t *testing.T) {
	space := NewLabelSpace()
	g := NewGraph(space)
	l1 := space.AllocateLabel()
	l2 := space.AllocateLabel()
	n := g.AddNode(l1, nil)

	if err := n.Relabel(l2); err != nil {
		t.Fatalf("Relabel before indexing: err = %v", err)
	}
	if n.Label() != l2 {
		t.Errorf("Label() = %v; want %v", n.Label(), l2)
	}

	g.IndexNodesByLabel()
	if err := n.Relabel(l1); err != ErrGraphAlreadyIndexed {
		t.Errorf("Relabel after indexing: err = %v; want ErrGraphAlreadyIndexed", err)
	}
}

func TestMateAndHasLabel(t *testing.T) {
	space := NewLabelSpace()
	netlist := NewGraph(space)
	device := NewGraph(space)
	l := space.AllocateLabel()
	n := netlist.AddNode(l, nil)
	d := device.AddNode(l, nil)

	if n.Mate() != nil {
		t.Fatal("fresh node should be unmated")
	}
	n.SetMate(d)
	if n.Mate() != d {
		t.Errorf("Mate() = %v; want %v", n.Mate(), d)
	}
	if !d.HasLabel(l) {
		t.Error("HasLabel(l) should be true for primary label")
	}
}
