package export

import (
	"fmt"
	"io"

	"github.com/parforge/parforge/pargraph"
)

// WriteSMT2Device emits an SMT2 feasibility encoding of g as a device
// graph: one declare-const per node, a distinct assertion over all nodes,
// a device-acceptable-label predicate covering primary and alternate
// labels, and a device-has-edge predicate covering every edge.
//
// portNames interns port name strings to small integers, assigning a
// fresh index the first time a port name is encountered while walking
// g's nodes and edges in arena order. The same interning map must be
// passed to WriteSMT2Netlist so both encodings agree on port indices.
func WriteSMT2Device(w io.Writer, g *pargraph.Graph, portNames map[string]int) error {
	nodes := g.Nodes()
	index := make(map[*pargraph.Node]int, len(nodes))

	bw := &errWriter{w: w}

	for i := range nodes {
		fmt.Fprintf(bw, "(declare-const dev-node-%d node)\n", i)
	}
	fmt.Fprint(bw, "(assert (distinct\n")
	for i := range nodes {
		fmt.Fprintf(bw, "\tdev-node-%d\n", i)
	}
	fmt.Fprint(bw, "))\n\n")

	fmt.Fprint(bw, "(define-fun device-acceptable-label ((n node) (l Int)) Bool (or\n")
	for i, n := range nodes {
		index[n] = i
		fmt.Fprintf(bw, "\t(and (= n dev-node-%d) (= l %d))\n", i, n.Label())
		for _, alt := range n.AlternateLabels() {
			fmt.Fprintf(bw, "\t(and (= n dev-node-%d) (= l %d))\n", i, alt)
		}
	}
	fmt.Fprint(bw, "))\n\n")

	fmt.Fprint(bw, "(define-fun device-has-edge ((n1 node) (p1 Int) (n2 node) (p2 Int)) Bool (or\n")
	for _, n := range nodes {
		for _, e := range n.Edges() {
			srcIdx := internPort(portNames, e.SrcPort)
			dstIdx := internPort(portNames, e.DstPort)
			fmt.Fprintf(bw, "\t(and (= n1 dev-node-%d) (= p1 %d) (= n2 dev-node-%d) (= p2 %d))\n",
				index[e.Src], srcIdx, index[e.Dst], dstIdx)
		}
	}
	fmt.Fprint(bw, "))\n\n")

	return bw.err
}

// WriteSMT2Netlist emits an SMT2 feasibility encoding of g as a netlist
// graph: one declare-const per node constrained to the device node set,
// pairwise-distinct assertions, label-acceptance assertions against
// device-acceptable-label, and edge-mapping assertions against
// device-has-edge. portNames must be the map used by the paired
// WriteSMT2Device call, and devNodeCount the node count of the device
// graph passed to it.
func WriteSMT2Netlist(w io.Writer, g *pargraph.Graph, portNames map[string]int, devNodeCount int) error {
	nodes := g.Nodes()
	index := make(map[*pargraph.Node]int, len(nodes))

	bw := &errWriter{w: w}

	for i, n := range nodes {
		index[n] = i
		fmt.Fprintf(bw, "(declare-const net-node-%d node)\n", i)
		fmt.Fprint(bw, "(assert (not (distinct ")
		for j := 0; j < devNodeCount; j++ {
			fmt.Fprintf(bw, "dev-node-%d ", j)
		}
		fmt.Fprintf(bw, "net-node-%d", i)
		fmt.Fprint(bw, ")))\n")
	}
	fmt.Fprint(bw, "\n")

	for i := range nodes {
		for j := range nodes {
			if i != j {
				fmt.Fprintf(bw, "(assert (not (= net-node-%d net-node-%d)))\n", i, j)
			}
		}
	}
	fmt.Fprint(bw, "\n")

	fmt.Fprint(bw, "(assert (and\n")
	for i, n := range nodes {
		fmt.Fprintf(bw, "\t(device-acceptable-label net-node-%d %d)\n", i, n.Label())
	}
	fmt.Fprint(bw, "))\n\n")

	fmt.Fprint(bw, "(assert (and\n")
	for _, n := range nodes {
		for _, e := range n.Edges() {
			srcIdx := internPort(portNames, e.SrcPort)
			dstIdx := internPort(portNames, e.DstPort)
			fmt.Fprintf(bw, "\t(device-has-edge net-node-%d %d net-node-%d %d)\n",
				index[e.Src], srcIdx, index[e.Dst], dstIdx)
		}
	}
	fmt.Fprint(bw, "))\n\n")

	return bw.err
}

// internPort returns name's interned index in names, assigning the next
// available index the first time name is seen.
func internPort(names map[string]int, name string) int {
	if idx, ok := names[name]; ok {
		return idx
	}
	idx := len(names)
	names[name] = idx
	return idx
}

// errWriter accumulates the first write error so callers can check it
// once at the end of a long sequence of Fprintf calls instead of after
// every individual write.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
