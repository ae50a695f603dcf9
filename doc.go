// Package parforge is a generic, graph-based place-and-route toolchain
// core: mate a netlist graph onto a device graph using simulated
// annealing, then inspect the result.
//
// What is parforge?
//
//	A small, dependency-embracing toolkit that brings together:
//		• pargraph  — the labeled bipartite graph abstraction both the
//		  netlist and the device are built from
//		• engine    — the annealing place-and-route search: initial
//		  placement, cost evaluation, move proposal, Metropolis
//		  acceptance, cooling, and best-seen restore
//		• export    — DOT diagrams and SMT2 feasibility encodings for
//		  diagnosing a placement outside the engine
//		• fixtures  — a compact text format for loading graph pairs in
//		  tests without hand-building node arenas
//		• metrics   — Prometheus instrumentation for long-running
//		  searches
//		• config    — TOML-driven overrides of the annealing schedule
//
// Why this shape?
//
//   - Domain-agnostic: pargraph knows nothing about LUTs, flip-flops,
//     I/O buffers, macrocells, ZIAs, or routing matrices; a caller's
//     Policy supplies whatever domain legality and cost rules apply.
//   - Deterministic: a fixed (netlist, device, seed, Policy) always
//     produces the same mate assignment, because every source of
//     randomness in the search draws from one caller-seeded *rand.Rand.
//   - Pure Go, real third-party deps where they earn their place. No
//     cgo, no hand-rolled logging/config/metrics where an ecosystem
//     library already does the job well.
//
// Quick ASCII example of what gets mated:
//
//	netlist graph            device graph
//	   A───B        mate        X───Y
//	   (labels pick which device nodes A and B may legally become)
//
//	go get github.com/parforge/parforge/engine
package parforge
