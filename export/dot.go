package export

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/parforge/parforge/pargraph"
)

// DumpDOT renders g as a Graphviz DOT digraph: one record-shaped node per
// graph node (inbound ports | label(s) | outbound ports compartments) and
// one edge statement per graph edge.
//
// Node identity in the rendered graph is the node's position in g.Nodes(),
// not its pointer value: pointer-derived identifiers would vary across
// runs and defeat golden-file comparison of the diagram.
func DumpDOT(w io.Writer, g *pargraph.Graph) error {
	nodes := g.Nodes()
	index := make(map[*pargraph.Node]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}

	inbound := make(map[*pargraph.Node]map[string]bool, len(nodes))
	for _, n := range nodes {
		for _, e := range n.Edges() {
			if inbound[e.Dst] == nil {
				inbound[e.Dst] = make(map[string]bool)
			}
			inbound[e.Dst][e.DstPort] = true
		}
	}

	var b strings.Builder
	b.WriteString("digraph pargraph {\n")
	b.WriteString("node [shape=record];\n")

	for i, n := range nodes {
		b.WriteString("n" + strconv.Itoa(i) + " [label=\"")

		if ports := sortedKeys(inbound[n]); len(ports) > 0 {
			b.WriteString("{")
			for j, p := range ports {
				if j > 0 {
					b.WriteString("|")
				}
				b.WriteString("<" + p + "> " + p)
			}
			b.WriteString("}|")
		}

		b.WriteString(strconv.FormatUint(uint64(n.Label()), 10))
		if alt := n.AlternateLabels(); len(alt) > 0 {
			b.WriteString(" (")
			for j, l := range alt {
				if j > 0 {
					b.WriteString(", ")
				}
				b.WriteString(strconv.FormatUint(uint64(l), 10))
			}
			b.WriteString(")")
		}

		edges := n.Edges()
		if len(edges) > 0 {
			outbound := make(map[string]bool, len(edges))
			for _, e := range edges {
				outbound[e.SrcPort] = true
			}
			ports := sortedKeys(outbound)
			b.WriteString("|{")
			for j, p := range ports {
				if j > 0 {
					b.WriteString("|")
				}
				b.WriteString("<" + p + "> " + p)
			}
			b.WriteString("}")
		}

		b.WriteString("\"];\n")
	}

	for _, n := range nodes {
		for _, e := range n.Edges() {
			fmt.Fprintf(&b, "n%d:\"%s\" -> n%d:\"%s\";\n",
				index[e.Src], e.SrcPort, index[e.Dst], e.DstPort)
		}
	}

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
