package export

import (
	"strings"
	"testing"

	"github.com/parforge/parforge/pargraph"
)

func buildSampleGraph() *pargraph.Graph {
	space := pargraph.NewLabelSpace()
	g := pargraph.NewGraph(space)
	a := g.AddNode(space.AllocateLabel(), "a")
	b := g.AddNode(space.AllocateLabel(), "b")
	a.AddEdge("out", b, "in")
	return g
}

func TestDumpDOTContainsNodesAndEdge(t *testing.T) {
	g := buildSampleGraph()
	var b strings.Builder
	if err := DumpDOT(&b, g); err != nil {
		t.Fatalf("DumpDOT() error = %v", err)
	}
	out := b.String()

	if !strings.HasPrefix(out, "digraph pargraph {\n") {
		t.Errorf("missing digraph header: %q", out)
	}
	if !strings.Contains(out, `n0:"out" -> n1:"in";`) {
		t.Errorf("missing edge statement, got: %s", out)
	}
}

func TestDumpDOTDeterministic(t *testing.T) {
	g := buildSampleGraph()
	var b1, b2 strings.Builder
	if err := DumpDOT(&b1, g); err != nil {
		t.Fatal(err)
	}
	if err := DumpDOT(&b2, g); err != nil {
		t.Fatal(err)
	}
	if b1.String() != b2.String() {
		t.Error("DumpDOT produced different output across repeated calls on the same graph")
	}
}
