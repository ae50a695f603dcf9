// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the engine package.
//
// Error policy: only sentinel variables are exposed; callers branch on
// semantics with errors.Is, never on message text. Struct error types
// (LabelCapacityError) are used only where a caller needs structured
// context (the offending label, counts) alongside errors.Is matching via
// Unwrap.
package engine

import (
	"errors"
	"fmt"

	"github.com/parforge/parforge/pargraph"
)

var (
	// ErrNilRand is returned by New when Options.Rand is nil. A
	// caller-seeded *rand.Rand is a required input, not a convenience
	// default: for a fixed (netlist, device, seed, hook set), the mate
	// snapshot produced must be bit-identical across runs, which only
	// holds if the caller controls the seed.
	ErrNilRand = errors.New("engine: options.Rand must be non-nil")

	// ErrNilPolicy is returned by New when policy is nil.
	ErrNilPolicy = errors.New("engine: policy must be non-nil")

	// ErrLabelCapacity is the sentinel wrapped by LabelCapacityError.
	ErrLabelCapacity = errors.New("engine: device graph cannot host netlist label")

	// ErrNoCandidate indicates the new-placement hook returned nil for
	// every bad node across a full stalling window: a failure to
	// converge, surfaced with the current unroutable set.
	ErrNoCandidate = errors.New("engine: no placement candidate available for any bad node")

	// ErrEmptyBadNodes indicates FindSubOptimalPlacements returned an
	// empty list while cost was nonzero, which violates the hook's
	// contract of returning a nonempty candidate set whenever cost > 0.
	ErrEmptyBadNodes = errors.New("engine: FindSubOptimalPlacements returned no candidates with nonzero cost")
)

// LabelCapacityError reports that the device graph cannot possibly host
// every netlist node using a given label.
type LabelCapacityError struct {
	Label     pargraph.Label
	LabelName string // resolved via labelMap; equals the numeric label if unresolved
	Required  int
	Available int
}

func (e *LabelCapacityError) Error() string {
	return fmt.Sprintf("engine: label %s needs %d device site(s), only %d available",
		e.LabelName, e.Required, e.Available)
}

func (e *LabelCapacityError) Unwrap() error { return ErrLabelCapacity }
