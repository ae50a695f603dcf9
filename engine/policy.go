package engine

import "github.com/parforge/parforge/pargraph"

// Policy supplies the six domain-specific hooks the annealing loop defers
// to. Callers compose behavior by embedding DefaultPolicy and overriding
// only the hooks that differ, rather than implementing all six from
// scratch.
type Policy interface {
	// InitialPlacement assigns every netlist node an initial mate in the
	// device graph, reports whether a legal assignment was found for
	// every node, and returns an error only for conditions the hook
	// cannot recover from internally.
	InitialPlacement(e *Engine) (bool, error)

	// FindSubOptimalPlacements returns the current "bad" netlist nodes:
	// candidates for the next pivot selection. Must be non-empty
	// whenever the engine's current cost is nonzero.
	FindSubOptimalPlacements(e *Engine) ([]*pargraph.Node, error)

	// GetNewPlacementForNode proposes a new device-graph mate for pivot,
	// or nil if no legal candidate exists.
	GetNewPlacementForNode(e *Engine, pivot *pargraph.Node) (*pargraph.Node, error)

	// CanMoveNode reports whether reassigning node from oldMate to
	// newMate is legal. oldMate is nil when node is currently unmated.
	CanMoveNode(e *Engine, node, oldMate, newMate *pargraph.Node) bool

	// ComputeCongestionCost returns the domain-specific congestion
	// contribution to the current placement's cost. DefaultPolicy
	// returns 0; weighting congestion against unroutability is left to
	// the caller's Policy.
	ComputeCongestionCost(e *Engine) uint64

	// PrintUnroutes is a diagnostic hook invoked after every iteration
	// that tries a move, and once more when a run ends unrouted, with the
	// current unroutable edge set, for callers that want progress
	// reporting beyond the engine's own logger.
	PrintUnroutes(e *Engine, unroutable []UnroutableEdge)
}

// DefaultPolicy implements Policy with baseline behavior for when no
// domain-specific override is needed: greedy label-bucket initial
// placement, bad-node selection by nonzero incident-edge cost,
// uniform-random candidate selection from the label bucket, unconditional
// move legality, zero congestion cost, and silent unroute reporting.
//
// Embed DefaultPolicy in a caller-defined type to override only the hooks
// that differ; unembedded methods fall through to these defaults.
type DefaultPolicy struct{}

var _ Policy = DefaultPolicy{}

// InitialPlacement assigns each netlist node the first not-yet-taken
// device node whose label set includes the netlist node's primary label,
// scanning the netlist's node arena in insertion order for determinism.
func (DefaultPolicy) InitialPlacement(e *Engine) (bool, error) {
	taken := make(map[*pargraph.Node]bool)
	ok := true
	for _, n := range e.netlist.Nodes() {
		if n.Mate() != nil {
			continue
		}
		placed := false
		count := e.device.CountWithLabel(n.Label())
		for i := 0; i < count; i++ {
			cand, err := e.device.NodeByLabelAndIndex(n.Label(), i)
			if err != nil {
				return false, err
			}
			if taken[cand] {
				continue
			}
			if !e.policy.CanMoveNode(e, n, nil, cand) {
				continue
			}
			n.SetMate(cand)
			cand.SetMate(n)
			taken[cand] = true
			placed = true
			break
		}
		if !placed {
			ok = false
		}
	}
	return ok, nil
}

// FindSubOptimalPlacements returns every netlist node incident to a
// currently unroutable edge, as either its source or its destination.
func (DefaultPolicy) FindSubOptimalPlacements(e *Engine) ([]*pargraph.Node, error) {
	bad := make([]*pargraph.Node, 0)
	seen := make(map[*pargraph.Node]bool)
	add := func(n *pargraph.Node) {
		if !seen[n] {
			seen[n] = true
			bad = append(bad, n)
		}
	}
	for _, u := range e.UnroutableEdges() {
		add(u.Netlist)
		add(u.Edge.Dst)
	}
	return bad, nil
}

// GetNewPlacementForNode picks a uniformly random starting index in the
// device label bucket for pivot's label, using the engine's caller-seeded
// Rand for determinism, and returns the first device node from there
// (wrapping around) that is not pivot's current mate. The choice is not
// uniform when the current mate is in the bucket: the entry after the
// mate is returned twice as often as each other entry.
func (DefaultPolicy) GetNewPlacementForNode(e *Engine, pivot *pargraph.Node) (*pargraph.Node, error) {
	count := e.device.CountWithLabel(pivot.Label())
	if count == 0 {
		return nil, nil
	}
	start := e.rand.Intn(count)
	for i := 0; i < count; i++ {
		idx := (start + i) % count
		cand, err := e.device.NodeByLabelAndIndex(pivot.Label(), idx)
		if err != nil {
			return nil, err
		}
		if cand == pivot.Mate() {
			continue
		}
		return cand, nil
	}
	return nil, nil
}

// CanMoveNode always permits the move; domain-specific legality
// constraints (pin locking, exclusivity zones, etc.) belong to a
// caller-supplied Policy.
func (DefaultPolicy) CanMoveNode(e *Engine, node, oldMate, newMate *pargraph.Node) bool {
	return true
}

// ComputeCongestionCost reports no congestion; callers modeling routing
// resource contention override this hook.
func (DefaultPolicy) ComputeCongestionCost(e *Engine) uint64 {
	return 0
}

// PrintUnroutes is a no-op; callers wanting progress output should log
// through Options.Logger or override this hook.
func (DefaultPolicy) PrintUnroutes(e *Engine, unroutable []UnroutableEdge) {}
