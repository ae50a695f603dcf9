package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parforge/parforge/pargraph"
)

func buildSolvablePair() (netlist, device *pargraph.Graph) {
	space := pargraph.NewLabelSpace()
	netlist = pargraph.NewGraph(space)
	device = pargraph.NewGraph(space)

	lA := space.AllocateLabel()
	lB := space.AllocateLabel()

	na := netlist.AddNode(lA, "a")
	nb := netlist.AddNode(lB, "b")
	na.AddEdge("out", nb, "in")

	// Two device sites per label so the annealer has room to move.
	da1 := device.AddNode(lA, "da1")
	da2 := device.AddNode(lA, "da2")
	db1 := device.AddNode(lB, "db1")
	db2 := device.AddNode(lB, "db2")

	// Only da1->db1 and da2->db2 are wired, with ports matching the
	// netlist edge exactly; the engine must discover a consistent pairing.
	da1.AddEdge("out", db1, "in")
	da2.AddEdge("out", db2, "in")

	device.IndexNodesByLabel()
	netlist.IndexNodesByLabel()

	return netlist, device
}

func TestNewRejectsNilRand(t *testing.T) {
	netlist, device := buildSolvablePair()
	opts := DefaultOptions()
	_, err := New(netlist, device, nil, opts, DefaultPolicy{})
	require.ErrorIs(t, err, ErrNilRand)
}

func TestNewRejectsNilPolicy(t *testing.T) {
	netlist, device := buildSolvablePair()
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(1))
	_, err := New(netlist, device, nil, opts, nil)
	require.ErrorIs(t, err, ErrNilPolicy)
}

func TestNewLabelCapacityError(t *testing.T) {
	space := pargraph.NewLabelSpace()
	netlist := pargraph.NewGraph(space)
	device := pargraph.NewGraph(space)
	l := space.AllocateLabel()
	netlist.AddNode(l, "a")
	netlist.AddNode(l, "b")
	device.AddNode(l, "x") // only one site for two netlist nodes
	device.IndexNodesByLabel()
	netlist.IndexNodesByLabel()

	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(1))
	_, err := New(netlist, device, nil, opts, DefaultPolicy{})

	var capErr *LabelCapacityError
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, 2, capErr.Required)
	require.Equal(t, 1, capErr.Available)
}

func TestPlaceAndRouteSolves(t *testing.T) {
	netlist, device := buildSolvablePair()
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(42))
	opts.MaxIterations = 500
	opts.MaxStalledIterations = 100

	e, err := New(netlist, device, nil, opts, DefaultPolicy{})
	require.NoError(t, err)

	status, err := e.PlaceAndRoute()
	require.NoError(t, err)
	require.Equal(t, StatusSolved, status, "bestCost=%d unroutable=%d", e.BestCost(), len(e.UnroutableEdges()))
	require.Zero(t, e.BestCost())
}

func TestPlaceAndRouteDeterministic(t *testing.T) {
	run := func(seed int64) (Status, uint64) {
		netlist, device := buildSolvablePair()
		opts := DefaultOptions()
		opts.Rand = rand.New(rand.NewSource(seed))
		opts.MaxIterations = 500
		e, err := New(netlist, device, nil, opts, DefaultPolicy{})
		require.NoError(t, err)
		status, err := e.PlaceAndRoute()
		require.NoError(t, err)
		return status, e.BestCost()
	}

	s1, c1 := run(7)
	s2, c2 := run(7)
	require.Equal(t, s1, s2)
	require.Equal(t, c1, c2)
}
