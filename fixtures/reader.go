package fixtures

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/parforge/parforge/pargraph"
)

// ErrMalformedFixture is returned when a graph-pair text stream does not
// match the format documented in doc.go.
var ErrMalformedFixture = errors.New("fixtures: malformed graph text")

type parsedEdge struct {
	srcPort string
	dstIdx  int
	dstPort string
}

type parsedNode struct {
	labels []int
	edges  []parsedEdge
}

// ReadGraphPair reads two consecutive graph blocks from r (a device graph
// followed by a netlist graph) and returns both as pargraph.Graph values
// sharing one LabelSpace.
func ReadGraphPair(r io.Reader) (device, netlist *pargraph.Graph, space *pargraph.LabelSpace, err error) {
	sc := newTokenScanner(r)
	space = pargraph.NewLabelSpace()
	labelOf := internLabels(space)

	device, err = readGraphBlock(sc, space, labelOf)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fixtures: reading device block: %w", err)
	}
	netlist, err = readGraphBlock(sc, space, labelOf)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fixtures: reading netlist block: %w", err)
	}
	return device, netlist, space, nil
}

// internLabels returns a function mapping a raw text-format integer to a
// stable pargraph.Label, allocating a fresh label from space the first
// time a given integer is seen.
func internLabels(space *pargraph.LabelSpace) func(raw int) pargraph.Label {
	seen := make(map[int]pargraph.Label)
	return func(raw int) pargraph.Label {
		if l, ok := seen[raw]; ok {
			return l
		}
		l := space.AllocateLabel()
		seen[raw] = l
		return l
	}
}

func readGraphBlock(sc *tokenScanner, space *pargraph.LabelSpace, labelOf func(int) pargraph.Label) (*pargraph.Graph, error) {
	numNodes, err := sc.nextInt()
	if err != nil {
		return nil, err
	}

	parsed := make([]parsedNode, numNodes)
	for i := 0; i < numNodes; i++ {
		numLabels, err := sc.nextInt()
		if err != nil {
			return nil, err
		}
		pn := parsedNode{labels: make([]int, numLabels)}
		for j := 0; j < numLabels; j++ {
			v, err := sc.nextInt()
			if err != nil {
				return nil, err
			}
			pn.labels[j] = v
		}

		numEdges, err := sc.nextInt()
		if err != nil {
			return nil, err
		}
		pn.edges = make([]parsedEdge, numEdges)
		for j := 0; j < numEdges; j++ {
			srcPort, err := sc.nextToken()
			if err != nil {
				return nil, err
			}
			dstIdx, err := sc.nextInt()
			if err != nil {
				return nil, err
			}
			dstPort, err := sc.nextToken()
			if err != nil {
				return nil, err
			}
			pn.edges[j] = parsedEdge{srcPort: srcPort, dstIdx: dstIdx, dstPort: dstPort}
		}

		parsed[i] = pn
	}

	g := pargraph.NewGraph(space)
	nodes := make([]*pargraph.Node, numNodes)
	for i, pn := range parsed {
		if len(pn.labels) == 0 {
			return nil, fmt.Errorf("%w: node %d has no labels", ErrMalformedFixture, i)
		}
		n := g.AddNode(labelOf(pn.labels[0]), nil)
		for _, raw := range pn.labels[1:] {
			n.AddAlternateLabel(labelOf(raw))
		}
		nodes[i] = n
	}
	for i, pn := range parsed {
		for _, e := range pn.edges {
			if e.dstIdx < 0 || e.dstIdx >= numNodes {
				return nil, fmt.Errorf("%w: node %d edge references out-of-range node %d", ErrMalformedFixture, i, e.dstIdx)
			}
			nodes[i].AddEdge(e.srcPort, nodes[e.dstIdx], e.dstPort)
		}
	}

	return g, nil
}

// tokenScanner reads whitespace/newline-separated tokens, matching
// testcsp.py's line-oriented grammar without depending on exact line
// boundaries (the grammar is unambiguous token-by-token).
type tokenScanner struct {
	sc *bufio.Scanner
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenScanner{sc: sc}
}

func (t *tokenScanner) nextToken() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of input", ErrMalformedFixture)
	}
	return t.sc.Text(), nil
}

func (t *tokenScanner) nextInt() (int, error) {
	tok, err := t.nextToken()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: expected integer, got %q", ErrMalformedFixture, tok)
	}
	return v, nil
}
