package engine

import "github.com/parforge/parforge/pargraph"

// Status classifies how a PlaceAndRoute run ended.
type Status int

const (
	// StatusSolved means the search converged on a fully routable,
	// zero-unroutable-cost placement before exhausting its budget.
	StatusSolved Status = iota

	// StatusUnrouted means the iteration budget or the stall budget was
	// exhausted with nonzero best cost remaining.
	StatusUnrouted

	// StatusCancelled means Options.Cancel fired before convergence.
	StatusCancelled

	// StatusTimedOut means Options.Deadline passed before convergence.
	StatusTimedOut
)

// String renders a Status for logging and diagnostics.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnrouted:
		return "unrouted"
	case StatusCancelled:
		return "cancelled"
	case StatusTimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}

// UnroutableEdge names one netlist edge that has no legal realization in
// the current placement: the edge's endpoints are mated to device nodes
// with no device-graph edge connecting them (or one endpoint is unmated).
type UnroutableEdge struct {
	Netlist *pargraph.Node
	Edge    pargraph.Edge
}
