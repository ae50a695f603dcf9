package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/parforge/parforge/engine"
)

// schedule mirrors the subset of engine.Options that is meaningfully
// expressed as static configuration: Rand, Logger, Cancel, Deadline, and
// Metrics are runtime values supplied by the caller, not file content.
type schedule struct {
	MaxIterations        *int     `toml:"max_iterations"`
	MaxStalledIterations *int     `toml:"max_stalled_iterations"`
	TemperatureInitial   *float64 `toml:"temperature_initial"`
	TemperatureFinal     *float64 `toml:"temperature_final"`
	CoolingRatio         *float64 `toml:"cooling_ratio"`
	UnroutablePenalty    *uint64  `toml:"unroutable_penalty"`
}

// Load reads path as TOML and overlays any keys it sets onto
// engine.DefaultOptions(). Keys absent from the file leave the default
// untouched; Rand, Logger, Cancel, Deadline, and Metrics are never
// touched by Load. Rand is left nil and must be set by the caller
// afterward; Logger and Metrics keep DefaultOptions' silent defaults.
func Load(path string) (engine.Options, error) {
	opts := engine.DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}

	var s schedule
	if err := toml.Unmarshal(data, &s); err != nil {
		return opts, err
	}

	if s.MaxIterations != nil {
		opts.MaxIterations = *s.MaxIterations
	}
	if s.MaxStalledIterations != nil {
		opts.MaxStalledIterations = *s.MaxStalledIterations
	}
	if s.TemperatureInitial != nil {
		opts.TemperatureInitial = *s.TemperatureInitial
	}
	if s.TemperatureFinal != nil {
		opts.TemperatureFinal = *s.TemperatureFinal
	}
	if s.CoolingRatio != nil {
		opts.CoolingRatio = *s.CoolingRatio
	}
	if s.UnroutablePenalty != nil {
		opts.UnroutablePenalty = *s.UnroutablePenalty
	}

	return opts, nil
}
