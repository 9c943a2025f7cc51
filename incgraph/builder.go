package incgraph

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/LegacyCodeHQ/incmap/fsio"
)

const companionSuffix = ".cpp"

// Options carries the collaborators the builder requires from its host:
// content reading, existence probing, and a diagnostics sink. Zero values
// fall back to the local filesystem and the default logger.
type Options struct {
	Reader fsio.ContentReader
	Exists fsio.ExistenceProbe
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Reader == nil {
		o.Reader = fsio.ReadDisk
	}
	if o.Exists == nil {
		o.Exists = fsio.ExistsOnDisk
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Build constructs the full include graph for the translation unit at
// rootPath, resolving includes through the declared include directories.
// Missing include targets and malformed directives are logged and survive as
// in-graph markers; any other failure aborts construction.
func Build(rootPath string, dirs []DirSpec, opts Options) (*Graph, error) {
	opts = opts.withDefaults()

	index, err := BuildIncludeIndex(dirs)
	if err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path %s: %w", rootPath, err)
	}

	b := &builder{
		graph: newGraph(),
		index: index,
		opts:  opts,
	}

	root := &Node{
		Kind:    FileSource,
		Include: IncludeRelative,
		Path:    absRoot,
		Status:  StatusQueued,
	}
	b.graph.root = root
	b.graph.nodes[absRoot] = root
	b.worklist = append(b.worklist, root)

	for len(b.worklist) > 0 {
		node := b.worklist[len(b.worklist)-1]
		b.worklist = b.worklist[:len(b.worklist)-1]

		if err := b.process(node); err != nil {
			return nil, err
		}
	}

	if err := b.graph.finalize(); err != nil {
		return nil, err
	}

	return b.graph, nil
}

type builder struct {
	graph    *Graph
	index    IncludeIndex
	worklist []*Node
	opts     Options
}

// process reads one queued node's file, infers its companion source, and links
// its include directives as children. System nodes never reach the worklist,
// so every popped node carries a resolved filesystem path.
func (b *builder) process(node *Node) error {
	switch node.Status {
	case StatusResolved:
		// Duplicate scheduling guard.
		return nil
	case StatusQueued:
	default:
		return fmt.Errorf("include graph worklist popped %s in state %s", node.Path, node.Status)
	}

	dir := filepath.Dir(node.Path)
	b.graph.includeDirs[dir] = true

	content, err := b.opts.Reader(node.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			node.Exists = false
			node.Status = StatusResolved
			b.opts.Logger.Warn("include target not found", "path", node.Path)
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", node.Path, err)
	}
	node.Exists = true

	if node.Kind == FileHeader {
		b.probeCompanion(node, dir)
	}

	directives, malformed := ScanIncludes(content)
	for _, line := range malformed {
		b.opts.Logger.Warn("malformed include directive", "file", node.Path, "line", line)
	}

	for _, d := range directives {
		child := b.resolve(node, d)
		node.Children = append(node.Children, child)
	}

	node.Status = StatusResolved
	return nil
}

// probeCompanion looks for an implementation file next to a header
// (foo.h -> foo.cpp) and schedules it as a source node. This is how headers
// pull in implementation files the root never includes directly.
func (b *builder) probeCompanion(header *Node, dir string) {
	base := strings.TrimSuffix(filepath.Base(header.Path), filepath.Ext(header.Path))
	candidate := filepath.Join(dir, base+companionSuffix)

	if _, known := b.graph.nodes[candidate]; known {
		return
	}
	if !b.opts.Exists(candidate) {
		return
	}

	b.opts.Logger.Debug("companion source discovered", "header", header.Path, "source", candidate)
	b.addRelative(candidate, FileSource, header)
}

// resolve maps one directive to its graph node, creating and scheduling it on
// first discovery. Already-known nodes are linked and never re-queued.
func (b *builder) resolve(parent *Node, d Directive) *Node {
	if !d.System {
		candidate := filepath.Clean(filepath.Join(filepath.Dir(parent.Path), d.Spec))
		if node, ok := b.graph.nodes[candidate]; ok {
			return node
		}
		// A quoted include may also name a header under a declared include
		// directory; prefer an already-known node there over a duplicate.
		if indexed, ok := b.index[d.Spec]; ok {
			if node, ok := b.graph.nodes[indexed]; ok {
				return node
			}
		}
		return b.addRelative(candidate, FileHeader, parent)
	}

	if indexed, ok := b.index[d.Spec]; ok {
		if node, ok := b.graph.nodes[indexed]; ok {
			return node
		}
		return b.addRelative(indexed, FileHeader, parent)
	}

	if node, ok := b.graph.system[d.Spec]; ok {
		return node
	}
	node := &Node{
		Kind:    FileHeader,
		Include: IncludeSystem,
		Path:    d.Spec,
		Status:  StatusPending,
		Parent:  parent,
	}
	b.graph.system[d.Spec] = node
	return node
}

// addRelative registers a new filesystem-backed node and pushes it onto the
// worklist.
func (b *builder) addRelative(path string, kind FileKind, parent *Node) *Node {
	node := &Node{
		Kind:    kind,
		Include: IncludeRelative,
		Path:    path,
		Status:  StatusQueued,
		Parent:  parent,
	}
	b.graph.nodes[path] = node
	b.worklist = append(b.worklist, node)
	return node
}
