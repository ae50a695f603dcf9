// Package engine implements a simulated-annealing place-and-route search
// over a pargraph.Graph pair: a netlist graph whose nodes need device-graph
// mates, and a device graph supplying the candidate sites.
//
// The search is driven entirely by a caller-supplied Policy (see policy.go)
// plus a fixed cost model: each unroutable netlist edge contributes a fixed
// penalty, and a domain-specific congestion term is left to the Policy.
// Determinism is a first-class property: given the same netlist, device,
// Options.Rand seed, and Policy, two runs produce bit-identical mate
// assignments, because the only sources of variation (pivot selection,
// candidate selection, Metropolis acceptance) all draw from the one
// caller-seeded *rand.Rand.
//
//	space := pargraph.NewLabelSpace()
//	netlist := pargraph.NewGraph(space)
//	device := pargraph.NewGraph(space)
//	// ... populate netlist and device ...
//	opts := engine.DefaultOptions()
//	opts.Rand = rand.New(rand.NewSource(1))
//	e, err := engine.New(netlist, device, labelMap, opts, engine.DefaultPolicy{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	status, err := e.PlaceAndRoute()
package engine
