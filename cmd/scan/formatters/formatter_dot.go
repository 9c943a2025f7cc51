package formatters

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/incmap/incgraph"
)

// DOTFormatter renders the include graph's edges as Graphviz DOT, one line per
// parent→child link.
type DOTFormatter struct{}

func (f *DOTFormatter) Format(g *incgraph.Graph) (string, error) {
	edges, err := g.Edges()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("digraph includes {\n")

	if len(edges) == 0 {
		// A graph with no includes still renders its root node.
		sb.WriteString(fmt.Sprintf("  %q;\n", g.Root()))
	}
	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("  %q -> %q;\n", e.Parent, e.Child))
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}
