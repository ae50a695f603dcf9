// Package config loads an engine.Options annealing schedule from a TOML
// file, so the open tuning constants (temperature schedule, cooling
// ratio, unroutable penalty, iteration budgets) can be adjusted without
// recompiling.
//
// Unset fields keep engine.DefaultOptions()'s values: Load starts from
// the defaults and overlays only the keys present in the file, using
// pointer fields to distinguish "unset" from "explicitly zero."
package config
