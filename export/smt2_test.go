package export

import (
	"strings"
	"testing"

	"github.com/parforge/parforge/pargraph"
)

func TestWriteSMT2DeviceAndNetlist(t *testing.T) {
	space := pargraph.NewLabelSpace()
	device := pargraph.NewGraph(space)
	netlist := pargraph.NewGraph(space)

	lA := space.AllocateLabel()
	da := device.AddNode(lA, "da")
	db := device.AddNode(lA, "db")
	da.AddEdge("route", db, "route")

	na := netlist.AddNode(lA, "na")

	portNames := make(map[string]int)
	var devBuf strings.Builder
	if err := WriteSMT2Device(&devBuf, device, portNames); err != nil {
		t.Fatalf("WriteSMT2Device() error = %v", err)
	}
	devOut := devBuf.String()
	if !strings.Contains(devOut, "(declare-const dev-node-0 node)") {
		t.Errorf("missing device node declaration: %s", devOut)
	}
	if !strings.Contains(devOut, "device-has-edge") {
		t.Errorf("missing device-has-edge predicate: %s", devOut)
	}

	var netBuf strings.Builder
	if err := WriteSMT2Netlist(&netBuf, netlist, portNames, device.NumNodes()); err != nil {
		t.Fatalf("WriteSMT2Netlist() error = %v", err)
	}
	netOut := netBuf.String()
	if !strings.Contains(netOut, "(declare-const net-node-0 node)") {
		t.Errorf("missing netlist node declaration: %s", netOut)
	}
	if !strings.Contains(netOut, "device-acceptable-label net-node-0") {
		t.Errorf("missing label-acceptance assertion: %s", netOut)
	}
	_ = na
}
