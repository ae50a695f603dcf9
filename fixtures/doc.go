// Package fixtures loads device/netlist graph pairs from a compact
// line-oriented text format, for use in engine and pargraph tests without
// hand-constructing a pargraph.Graph node by node.
//
// Format (per graph block, repeated twice: device block then netlist
// block):
//
//	<node count>
//	for each node, in order:
//	    <label count>
//	    <label count> lines, one integer label each (first is primary,
//	    remaining are alternate labels)
//	    <edge count>
//	    <edge count> lines, each "<src port> <dst node index> <dst port>"
//
// Label integers are local to the text file, not pargraph.Label values:
// ReadGraphPair interns each distinct integer to a freshly allocated
// Label from a single shared LabelSpace the first time it is seen,
// across both the device and netlist blocks, so that a label written as
// "3" in both blocks ends up as the same pargraph.Label in both graphs.
package fixtures
