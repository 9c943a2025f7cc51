package incgraph

import (
	"errors"
	"fmt"
	"sort"

	graphlib "github.com/dominikbraun/graph"
)

// Graph is the fully constructed include graph. It owns every node for its
// lifetime and is read-only once Build returns.
type Graph struct {
	root *Node

	// nodes holds relative nodes keyed by resolved absolute path.
	nodes map[string]*Node
	// system holds system nodes keyed by their bracketed spelling. A separate
	// identity space: system spellings never collide with resolved paths.
	system map[string]*Node

	// includeDirs accumulates the directory of every visited file, not just
	// the declared search directories.
	includeDirs map[string]bool

	includePaths []string
	sources      []string
	headers      []string

	edges graphlib.Graph[string, string]
}

// Edge is one parent→child include link, for visualization and debugging.
type Edge struct {
	Parent string
	Child  string
}

func newGraph() *Graph {
	return &Graph{
		nodes:       make(map[string]*Node),
		system:      make(map[string]*Node),
		includeDirs: make(map[string]bool),
		edges:       graphlib.New(graphlib.StringHash, graphlib.Directed()),
	}
}

// Root returns the resolved path of the root translation unit.
func (g *Graph) Root() string {
	return g.root.Path
}

// IncludePaths returns every directory containing a visited file, sorted in
// descending lexicographic order, deduplicated.
func (g *Graph) IncludePaths() []string {
	return g.includePaths
}

// Sources returns the resolved paths of the root file and every inferred
// companion implementation file, sorted in descending lexicographic order.
func (g *Graph) Sources() []string {
	return g.sources
}

// Headers returns the resolved paths of every discovered header, sorted in
// descending lexicographic order. System includes are excluded: they resolve
// outside the project tree.
func (g *Graph) Headers() []string {
	return g.headers
}

// Lookup returns the relative node registered under the given resolved path.
func (g *Graph) Lookup(resolvedPath string) (*Node, bool) {
	n, ok := g.nodes[resolvedPath]
	return n, ok
}

// Edges enumerates every parent→child link recorded during traversal, sorted
// by parent then child for reproducible output.
func (g *Graph) Edges() ([]Edge, error) {
	adjacency, err := g.edges.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("failed to read include graph edges: %w", err)
	}

	var edges []Edge
	for parent, targets := range adjacency {
		for child := range targets {
			edges = append(edges, Edge{Parent: parent, Child: child})
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Parent != edges[j].Parent {
			return edges[i].Parent < edges[j].Parent
		}
		return edges[i].Child < edges[j].Child
	})

	return edges, nil
}

// finalize materializes the sorted output sequences and mirrors the children
// lists into the edge store. Called exactly once, after the worklist drains.
func (g *Graph) finalize() error {
	for path, node := range g.nodes {
		switch node.Kind {
		case FileSource:
			g.sources = append(g.sources, path)
		case FileHeader:
			g.headers = append(g.headers, path)
		}
	}

	for dir := range g.includeDirs {
		g.includePaths = append(g.includePaths, dir)
	}

	sortDescending(g.sources)
	sortDescending(g.headers)
	sortDescending(g.includePaths)

	return g.mirrorEdges()
}

func (g *Graph) mirrorEdges() error {
	addVertex := func(path string) error {
		err := g.edges.AddVertex(path)
		if err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
			return err
		}
		return nil
	}

	for _, node := range g.nodes {
		if err := addVertex(node.Path); err != nil {
			return err
		}
	}
	for _, node := range g.system {
		if err := addVertex(node.Path); err != nil {
			return err
		}
	}

	for _, node := range g.nodes {
		for _, child := range node.Children {
			err := g.edges.AddEdge(node.Path, child.Path)
			if err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return fmt.Errorf("failed to record edge %s -> %s: %w", node.Path, child.Path, err)
			}
		}
	}

	return nil
}

// sortDescending sorts paths in descending lexicographic byte order, the
// stable ordering all outputs share.
func sortDescending(paths []string) {
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
}
