package engine

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/parforge/parforge/metrics"
	"github.com/parforge/parforge/pargraph"
)

// Engine holds the state of one place-and-route run: the two graphs being
// mated, the hook set steering the search, and the annealing bookkeeping
// (temperature, iteration counters, best-seen snapshot).
//
// An Engine is single-use: construct one with New per run. It is not safe
// for concurrent use, mirroring pargraph.Graph's own single-threaded
// contract.
type Engine struct {
	netlist  *pargraph.Graph
	device   *pargraph.Graph
	labelMap map[pargraph.Label]string
	opts     Options
	policy   Policy
	rand     *rand.Rand
	logger   *log.Logger
	metrics  *metrics.Recorder

	status     Status
	iteration  int
	stalled    int
	temp       float64
	cost       uint64
	bestCost   uint64
	unroutable []UnroutableEdge
	bestMates  map[*pargraph.Node]*pargraph.Node
}

// New validates opts and policy against netlist and device, runs a
// label-capacity preflight check, and returns a ready-to-run Engine. It
// performs no placement; call PlaceAndRoute to run the search.
//
// Both netlist and device must already have IndexNodesByLabel called: the
// preflight check and every placement hook query the label index, and
// pargraph.Graph.CountWithLabel reports zero for every label on an
// unbuilt index rather than erroring, so a caller who forgets would see
// a misleading ErrLabelCapacity for every label instead of a clear fault.
func New(netlist, device *pargraph.Graph, labelMap map[pargraph.Label]string, opts Options, policy Policy) (*Engine, error) {
	if opts.Rand == nil {
		return nil, ErrNilRand
	}
	if policy == nil {
		return nil, ErrNilPolicy
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NoopRecorder()
	}

	if err := checkLabelCapacity(netlist, device, labelMap); err != nil {
		return nil, err
	}

	return &Engine{
		netlist:  netlist,
		device:   device,
		labelMap: labelMap,
		opts:     opts,
		policy:   policy,
		rand:     opts.Rand,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		temp:     opts.TemperatureInitial,
		status:   StatusUnrouted,
	}, nil
}

// checkLabelCapacity verifies that, for every label present among netlist
// nodes, the device graph has at least as many acceptor sites (primary or
// alternate holders of that label) as the netlist has nodes carrying it.
func checkLabelCapacity(netlist, device *pargraph.Graph, labelMap map[pargraph.Label]string) error {
	required := make(map[pargraph.Label]int)
	for _, n := range netlist.Nodes() {
		required[n.Label()]++
	}
	for label, need := range required {
		have := device.CountWithLabel(label)
		if have < need {
			return &LabelCapacityError{
				Label:     label,
				LabelName: labelName(labelMap, label),
				Required:  need,
				Available: have,
			}
		}
	}
	return nil
}

func labelName(labelMap map[pargraph.Label]string, l pargraph.Label) string {
	if labelMap != nil {
		if name, ok := labelMap[l]; ok {
			return name
		}
	}
	return fmt.Sprintf("%d", uint64(l))
}

// Netlist returns the netlist graph this engine is placing.
func (e *Engine) Netlist() *pargraph.Graph { return e.netlist }

// Device returns the device graph nodes are being mated into.
func (e *Engine) Device() *pargraph.Graph { return e.device }

// Status reports how the most recent PlaceAndRoute call ended. Before the
// first call it is StatusUnrouted.
func (e *Engine) Status() Status { return e.status }

// BestCost returns the lowest total cost observed across the run.
func (e *Engine) BestCost() uint64 { return e.bestCost }

// Iterations returns the number of annealing iterations performed.
func (e *Engine) Iterations() int { return e.iteration }

// Temperature returns the current annealing temperature.
func (e *Engine) Temperature() float64 { return e.temp }

// UnroutableEdges returns the unroutable netlist edges as of the most
// recent cost evaluation.
func (e *Engine) UnroutableEdges() []UnroutableEdge {
	return e.unroutable
}

// Policy returns the hook set this engine was constructed with.
func (e *Engine) Policy() Policy { return e.policy }

// Logger returns the engine's diagnostic logger.
func (e *Engine) Logger() *log.Logger { return e.logger }
