package formatters

import (
	"strings"

	"github.com/LegacyCodeHQ/incmap/incgraph"
)

// TextFormatter renders the human-readable summary: the root path and the
// three result lists as labeled one-path-per-line blocks, in accessor order.
type TextFormatter struct{}

func (f *TextFormatter) Format(g *incgraph.Graph) (string, error) {
	var sb strings.Builder

	writeBlock(&sb, "root", []string{g.Root()})
	sb.WriteString("\n")
	writeBlock(&sb, "include paths", g.IncludePaths())
	sb.WriteString("\n")
	writeBlock(&sb, "headers", g.Headers())
	sb.WriteString("\n")
	writeBlock(&sb, "sources", g.Sources())

	return sb.String(), nil
}

func writeBlock(sb *strings.Builder, label string, paths []string) {
	sb.WriteString(label)
	sb.WriteString(":\n")
	for _, p := range paths {
		sb.WriteString("  ")
		sb.WriteString(p)
		sb.WriteString("\n")
	}
}
