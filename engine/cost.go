package engine

import "github.com/parforge/parforge/pargraph"

// evaluateCost recomputes e.unroutable and returns the total placement
// cost: (unroutable count * UnroutablePenalty) + congestion cost. Timing
// cost is a future hook with no current weighting, so it is omitted from
// the sum rather than faked with a placeholder computation.
func (e *Engine) evaluateCost() uint64 {
	e.unroutable = findUnroutableEdges(e.netlist)

	unroutableCost := uint64(len(e.unroutable)) * e.opts.UnroutablePenalty
	congestionCost := e.policy.ComputeCongestionCost(e)

	return unroutableCost + congestionCost
}

// findUnroutableEdges scans every netlist edge and reports those with no
// legal realization in the current placement: either endpoint is unmated,
// or the device graph has no directed edge between the two mates whose
// ports exactly match the netlist edge's ports.
func findUnroutableEdges(netlist *pargraph.Graph) []UnroutableEdge {
	var bad []UnroutableEdge
	for _, n := range netlist.Nodes() {
		mate := n.Mate()
		for _, edge := range n.Edges() {
			if mate == nil {
				bad = append(bad, UnroutableEdge{Netlist: n, Edge: edge})
				continue
			}
			dstMate := edge.Dst.Mate()
			if dstMate == nil || !deviceEdgeExists(mate, dstMate, edge.SrcPort, edge.DstPort) {
				bad = append(bad, UnroutableEdge{Netlist: n, Edge: edge})
			}
		}
	}
	return bad
}

// deviceEdgeExists reports whether the device graph has a directed edge
// from src to dst whose source/dest ports exactly match srcPort/dstPort.
// Device routes are directed and port-specific, like netlist edges; a
// swapped-direction or mismatched-port device edge does not realize the
// netlist connection.
func deviceEdgeExists(src, dst *pargraph.Node, srcPort, dstPort string) bool {
	for _, e := range src.Edges() {
		if e.Dst == dst && e.SrcPort == srcPort && e.DstPort == dstPort {
			return true
		}
	}
	return false
}
