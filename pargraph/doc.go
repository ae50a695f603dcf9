// Package pargraph provides the labeled bipartite graph abstraction that the
// place-and-route engine (package engine) operates on.
//
// A PAR problem involves exactly two graphs built with a shared LabelSpace:
// a netlist graph (nodes are logic primitives, edges are signal
// connections) and a device graph (nodes are hardware sites, edges are
// routable paths). A Label is an opaque compatibility tag: a netlist node
// may be mated to any device node whose primary or alternate labels
// include the netlist node's primary label.
//
// This package knows nothing about what a Label, a Node, or an Edge
// represents in the domain: no LUTs, flip-flops, I/O buffers, macrocells,
// ZIAs, or matrices. It is a dumb, thread-unsafe container. The engine
// that consumes it is itself single-threaded and synchronous (see package
// engine).
//
//	space := pargraph.NewLabelSpace()
//	netlist := pargraph.NewGraph(space)
//	device := pargraph.NewGraph(space)
//	l := space.AllocateLabel()
//	a := netlist.AddNode(l, nil)
//	x := device.AddNode(l, nil)
//	netlist.IndexNodesByLabel()
//	device.IndexNodesByLabel()
package pargraph
