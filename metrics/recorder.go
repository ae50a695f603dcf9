package metrics

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// bestCost tracks the best-seen placement cost for a run.
	bestCost = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "parforge_best_cost",
			Help: "Best-seen placement cost for a place-and-route run",
		},
		[]string{"run_id"},
	)

	// temperature tracks the current annealing temperature for a run.
	temperature = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "parforge_temperature",
			Help: "Current simulated-annealing temperature for a run",
		},
		[]string{"run_id"},
	)

	// iterationsTotal counts annealing iterations performed.
	iterationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parforge_iterations_total",
			Help: "Annealing iterations performed by a place-and-route run",
		},
		[]string{"run_id"},
	)

	// unroutableEdges tracks the size of the current unroutable set.
	unroutableEdges = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "parforge_unroutable_edges",
			Help: "Size of the current unroutable edge set for a run",
		},
		[]string{"run_id"},
	)
)

func init() {
	prometheus.MustRegister(bestCost)
	prometheus.MustRegister(temperature)
	prometheus.MustRegister(iterationsTotal)
	prometheus.MustRegister(unroutableEdges)
}

// Recorder reports place-and-route progress for one run, identified by
// runID, to the package's registered Prometheus vectors.
type Recorder struct {
	runID string
	noop  bool
}

// NewRecorder returns a Recorder that reports under the given run_id
// label. Callers with no natural correlation id of their own should use
// NewRunID to generate one.
func NewRecorder(runID string) *Recorder {
	return &Recorder{runID: runID}
}

// NewRunID returns a fresh run correlation id suitable for NewRecorder,
// so that concurrent or sequential engine runs against the same process
// registry report under distinguishable run_id labels.
func NewRunID() string {
	return uuid.NewString()
}

// NoopRecorder returns a Recorder whose methods have no effect. It is the
// default used when engine.Options.Metrics is nil, so the hot annealing
// loop never has to branch on a nil recorder.
func NoopRecorder() *Recorder {
	return &Recorder{noop: true}
}

// SetBestCost reports the current best-seen cost.
func (r *Recorder) SetBestCost(cost uint64) {
	if r.noop {
		return
	}
	bestCost.WithLabelValues(r.runID).Set(float64(cost))
}

// SetTemperature reports the current annealing temperature.
func (r *Recorder) SetTemperature(t float64) {
	if r.noop {
		return
	}
	temperature.WithLabelValues(r.runID).Set(t)
}

// IncIterations increments the iteration counter by one.
func (r *Recorder) IncIterations() {
	if r.noop {
		return
	}
	iterationsTotal.WithLabelValues(r.runID).Inc()
}

// SetUnroutableEdges reports the current unroutable-set size.
func (r *Recorder) SetUnroutableEdges(n int) {
	if r.noop {
		return
	}
	unroutableEdges.WithLabelValues(r.runID).Set(float64(n))
}
