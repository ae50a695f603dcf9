package pargraph

// Graph owns a node arena and a lazily built label index. It draws its
// labels from a *LabelSpace shared with its partner graph (see doc.go):
// a label allocated while building the netlist graph can never collide
// with one allocated while building the device graph.
//
// Graph is not safe for concurrent use. The engine that consumes it is
// itself single-threaded and synchronous; see package engine and
// DESIGN.md for why no internal locking is added here.
type Graph struct {
	space   *LabelSpace
	nodes   []*Node
	byLabel map[Label][]*Node
	indexed bool
}

// NewGraph returns an empty graph drawing labels from space. Pass the same
// *LabelSpace to both the netlist and device Graph for a PAR problem.
func NewGraph(space *LabelSpace) *Graph {
	return &Graph{space: space}
}

// AllocateLabel mints a fresh label from the graph's shared label space.
func (g *Graph) AllocateLabel() Label {
	return g.space.AllocateLabel()
}

// AddNode creates, adds, and returns a new node with the given primary
// label and payload. The node is appended to the graph's arena; its
// position there is its stable index for the lifetime of the graph.
func (g *Graph) AddNode(primary Label, payload any) *Node {
	n := &Node{owner: g, primary: primary, Payload: payload}
	g.nodes = append(g.nodes, n)
	g.indexed = false
	return n
}

// Nodes returns the graph's nodes in insertion order. The returned slice
// must not be mutated by the caller; it aliases the graph's internal
// arena, which is safe because this package never reorders or removes
// nodes after AddNode.
func (g *Graph) Nodes() []*Node { return g.nodes }

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the total number of outbound edges across all nodes.
func (g *Graph) NumEdges() int {
	var n int
	for _, node := range g.nodes {
		n += node.EdgeCount()
	}
	return n
}

// IndexNodesByLabel (re)builds the label index: for every label, the list
// of nodes whose primary or alternate labels include it, primary-label
// entries first (insertion order), then alternate-label entries (insertion
// order). It must be called after all nodes have their final label sets
// and before any CountWithLabel/NodeByLabelAndIndex call; it is also the
// point after which Node.Relabel is no longer permitted.
func (g *Graph) IndexNodesByLabel() {
	g.byLabel = make(map[Label][]*Node, g.space.Len())

	for _, n := range g.nodes {
		g.byLabel[n.primary] = append(g.byLabel[n.primary], n)
	}
	for _, n := range g.nodes {
		for _, alt := range n.alternate {
			g.byLabel[alt] = append(g.byLabel[alt], n)
		}
	}

	g.indexed = true
}

// CountWithLabel returns the number of nodes carrying label l (primary or
// alternate), per the label index. Before IndexNodesByLabel has been
// called this returns 0 for every label, matching the package's contract
// that querying an unbuilt index yields empty results rather than an
// error.
func (g *Graph) CountWithLabel(l Label) int {
	return len(g.byLabel[l])
}

// NodeByLabelAndIndex returns the idx-th node carrying label l (primary
// entries before alternate entries). It returns ErrLabelNotIndexed if
// IndexNodesByLabel has not yet been called, and ErrLabelIndexOutOfRange
// if idx is outside [0, CountWithLabel(l)).
func (g *Graph) NodeByLabelAndIndex(l Label, idx int) (*Node, error) {
	if !g.indexed {
		return nil, ErrLabelNotIndexed
	}
	bucket := g.byLabel[l]
	if idx < 0 || idx >= len(bucket) {
		return nil, ErrLabelIndexOutOfRange
	}
	return bucket[idx], nil
}
