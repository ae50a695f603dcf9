// Package metrics instruments place-and-route engine runs with Prometheus
// gauges and counters, keyed by a caller-supplied run_id label so that
// concurrent or sequential runs against the same process registry stay
// distinguishable.
//
// This is ambient observability, not a feature of the placement algorithm
// itself: a long-running annealing search reports its own progress to a
// metrics backend the way any long-running service loop does.
package metrics
