package fixtures

import (
	"strings"
	"testing"
)

const samplePair = `
2
1
10
1
out 1 in
1
10
0

1
1
10
0
`

func TestReadGraphPair(t *testing.T) {
	device, netlist, space, err := ReadGraphPair(strings.NewReader(samplePair))
	if err != nil {
		t.Fatalf("ReadGraphPair() error = %v", err)
	}
	if device.NumNodes() != 2 {
		t.Errorf("device.NumNodes() = %d; want 2", device.NumNodes())
	}
	if device.NumEdges() != 1 {
		t.Errorf("device.NumEdges() = %d; want 1", device.NumEdges())
	}
	if netlist.NumNodes() != 1 {
		t.Errorf("netlist.NumNodes() = %d; want 1", netlist.NumNodes())
	}

	device.IndexNodesByLabel()
	netlist.IndexNodesByLabel()

	devNode0 := device.Nodes()[0]
	netNode0 := netlist.Nodes()[0]
	if devNode0.Label() != netNode0.Label() {
		t.Error("raw label 10 did not intern to the same pargraph.Label across device and netlist blocks")
	}
	if space.Len() == 0 {
		t.Error("expected at least one label allocated in the shared space")
	}
}

func TestReadGraphPairMalformed(t *testing.T) {
	_, _, _, err := ReadGraphPair(strings.NewReader("not-a-number"))
	if err == nil {
		t.Fatal("expected an error for malformed input")
	}
}
