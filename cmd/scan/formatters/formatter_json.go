package formatters

import (
	"encoding/json"

	"github.com/LegacyCodeHQ/incmap/incgraph"
)

// JSONFormatter renders the result lists and edges as indented JSON.
type JSONFormatter struct{}

type jsonGraph struct {
	Root         string     `json:"root"`
	IncludePaths []string   `json:"include_paths"`
	Headers      []string   `json:"headers"`
	Sources      []string   `json:"sources"`
	Edges        []jsonEdge `json:"edges"`
}

type jsonEdge struct {
	Parent string `json:"parent"`
	Child  string `json:"child"`
}

func (f *JSONFormatter) Format(g *incgraph.Graph) (string, error) {
	edges, err := g.Edges()
	if err != nil {
		return "", err
	}

	out := jsonGraph{
		Root:         g.Root(),
		IncludePaths: g.IncludePaths(),
		Headers:      g.Headers(),
		Sources:      g.Sources(),
		Edges:        make([]jsonEdge, 0, len(edges)),
	}
	for _, e := range edges {
		out.Edges = append(out.Edges, jsonEdge{Parent: e.Parent, Child: e.Child})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
