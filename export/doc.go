// Package export renders a pargraph.Graph as a Graphviz DOT diagram or an
// SMT2 feasibility encoding, for diagnostics and external solver
// cross-checking.
//
// Both emitters are deterministic, so that two calls against the same graph
// agree byte-for-byte rather than depending on map iteration order: the
// DOT emitter sorts each node's port-name sets before emitting them, and
// the SMT2 emitters walk nodes and edges in arena order and intern port
// names in first-seen order.
package export
