package formatters

import (
	"fmt"

	"github.com/LegacyCodeHQ/incmap/incgraph"
)

// Formatter renders a built include graph to a string representation.
type Formatter interface {
	Format(g *incgraph.Graph) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
// Supported formats: "text", "dot", "json"
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "text":
		return &TextFormatter{}, nil
	case "dot":
		return &DOTFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: text, dot, json)", format)
	}
}
