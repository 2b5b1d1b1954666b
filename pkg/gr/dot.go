package gr

import (
	"bytes"
	"fmt"
)

// DOTOptions configures DOT conversion.
type DOTOptions struct {
	// ShowWeights adds edge weight labels to the diagram.
	ShowWeights bool
}

// ToDOT converts a graph to Graphviz DOT format for preview rendering.
// The resulting DOT string can be rendered with [github.com/grfixtures/grgen/pkg/render].
//
// Every node in [1, NumNodes] is emitted, including isolated ones, so the
// preview reflects the declared node count rather than just edge endpoints.
func ToDOT(g *Graph, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for i := 1; i <= g.NumNodes; i++ {
		fmt.Fprintf(&buf, "  %d;\n", i)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if opts.ShowWeights {
			fmt.Fprintf(&buf, "  %d -> %d [label=\"%d\"];\n", e.From, e.To, e.Weight)
		} else {
			fmt.Fprintf(&buf, "  %d -> %d;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
