package engine

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/parforge/parforge/metrics"
)

// Sentinel errors whose messages the validating Options panic with when
// given an invalid value. They are never returned through New: an
// invalid literal passed to a functional option is a programmer error,
// not a runtime condition a caller should have to check for.
var (
	ErrBadMaxIterations   = errors.New("engine: MaxIterations must be positive")
	ErrBadStallIterations = errors.New("engine: MaxStalledIterations must be positive")
	ErrBadTemperature     = errors.New("engine: TemperatureInitial and TemperatureFinal must be positive, and initial must exceed final")
	ErrBadCoolingRatio    = errors.New("engine: CoolingRatio must satisfy 0 < ratio < 1")
)

// Options configures a PlaceAndRoute run.
//
//   - MaxIterations        – hard cap on annealing iterations. Default 100000.
//   - MaxStalledIterations – iterations without an improvement of the
//     best-seen cost before the run gives up and restores the best-seen
//     snapshot. Default 2000.
//   - TemperatureInitial   – starting Metropolis temperature. Default 100.0.
//   - TemperatureFinal     – temperature floor; cooling stops here. Default 0.01.
//   - CoolingRatio          – geometric per-iteration multiplier, 0<ratio<1.
//     Default 0.999.
//   - UnroutablePenalty    – fixed per-edge cost contribution of an
//     unroutable netlist edge. Default 1000.
//   - Rand                 – caller-seeded source of randomness; required
//     (see ErrNilRand).
//   - Logger                – charmbracelet/log sink; nil becomes a
//     logger writing to io.Discard.
//   - Cancel                – optional cooperative cancellation channel.
//   - Deadline              – optional wall-clock budget; zero value means
//     none.
//   - Metrics               – optional Prometheus recorder; nil becomes
//     metrics.NoopRecorder().
type Options struct {
	MaxIterations        int
	MaxStalledIterations int
	TemperatureInitial   float64
	TemperatureFinal     float64
	CoolingRatio         float64
	UnroutablePenalty    uint64
	Rand                 *rand.Rand
	Logger               *log.Logger
	Cancel               <-chan struct{}
	Deadline             time.Time
	Metrics              *metrics.Recorder
}

// Option is a functional option for Options.
type Option func(*Options)

// DefaultOptions returns the package's baseline annealing schedule. Rand is
// left nil: callers must supply one via WithRand or by setting the field
// directly, since New refuses a nil Rand.
func DefaultOptions() Options {
	return Options{
		MaxIterations:        100000,
		MaxStalledIterations: 2000,
		TemperatureInitial:   100.0,
		TemperatureFinal:     0.01,
		CoolingRatio:         0.999,
		UnroutablePenalty:    1000,
		Logger:               log.New(io.Discard),
		Metrics:              metrics.NoopRecorder(),
	}
}

// WithMaxIterations overrides the hard iteration cap. n must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithMaxStalledIterations overrides the stall-detection window. n must be
// positive.
func WithMaxStalledIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadStallIterations.Error())
		}
		o.MaxStalledIterations = n
	}
}

// WithTemperature overrides the annealing schedule. initial must exceed
// final, both must be positive, and coolingRatio must lie in (0, 1).
func WithTemperature(initial, final, coolingRatio float64) Option {
	return func(o *Options) {
		if initial <= 0 || final <= 0 || initial <= final {
			panic(ErrBadTemperature.Error())
		}
		if coolingRatio <= 0 || coolingRatio >= 1 {
			panic(ErrBadCoolingRatio.Error())
		}
		o.TemperatureInitial = initial
		o.TemperatureFinal = final
		o.CoolingRatio = coolingRatio
	}
}

// WithUnroutablePenalty overrides the fixed per-edge unroutable cost.
func WithUnroutablePenalty(p uint64) Option {
	return func(o *Options) {
		o.UnroutablePenalty = p
	}
}

// WithRand sets the random source. rand must be non-nil; New rejects a
// nil Rand regardless of whether this option was used.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithLogger overrides the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithCancel installs a cooperative cancellation channel, checked between
// annealing iterations.
func WithCancel(ch <-chan struct{}) Option {
	return func(o *Options) {
		o.Cancel = ch
	}
}

// WithDeadline installs a wall-clock budget, checked between annealing
// iterations.
func WithDeadline(t time.Time) Option {
	return func(o *Options) {
		o.Deadline = t
	}
}

// WithMetrics installs a Prometheus recorder for run progress.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) {
		o.Metrics = r
	}
}
