package incgraph

// FileKind classifies a node as a translation unit or a header.
type FileKind int

const (
	// FileSource marks the root translation unit and companion implementation
	// files discovered next to headers.
	FileSource FileKind = iota
	// FileHeader marks every other discovered file.
	FileHeader
)

func (k FileKind) String() string {
	switch k {
	case FileSource:
		return "source"
	case FileHeader:
		return "header"
	}
	return "unknown"
}

// IncludeKind distinguishes filesystem-backed includes from opaque system ones.
type IncludeKind int

const (
	// IncludeRelative means a concrete filesystem path was computed for the
	// include, either against the including file's directory or through the
	// include-directory index.
	IncludeRelative IncludeKind = iota
	// IncludeSystem means an angle-bracket include that matched no declared
	// include directory. System nodes are opaque leaves: never read, never
	// scheduled, never part of the Sources/Headers outputs.
	IncludeSystem
)

func (k IncludeKind) String() string {
	switch k {
	case IncludeRelative:
		return "relative"
	case IncludeSystem:
		return "system"
	}
	return "unknown"
}

// Status tracks the lifecycle of a node on the worklist.
type Status int

const (
	// StatusPending: created but never scheduled. Terminal for system nodes.
	StatusPending Status = iota
	// StatusQueued: on the worklist; the file will be read and scanned once.
	StatusQueued
	// StatusResolved: file scanned, children finalized. Terminal.
	StatusResolved
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusQueued:
		return "queued"
	case StatusResolved:
		return "resolved"
	}
	return "unknown"
}

// Node is one vertex of the include graph. Relative nodes are identified by
// their resolved absolute path; system nodes by their bracketed spelling.
// The graph owns every node; nodes never outlive it.
type Node struct {
	// Kind is FileSource for the root and inferred companions, FileHeader
	// otherwise.
	Kind FileKind

	// Include says whether Path is a resolved filesystem path or an opaque
	// system spelling.
	Include IncludeKind

	// Path is the resolved absolute path (relative nodes) or the raw include
	// text (system nodes).
	Path string

	// Exists is false when the resolved file could not be opened. Only
	// meaningful for relative nodes.
	Exists bool

	// Status is the worklist lifecycle state.
	Status Status

	// Parent is the node that first introduced this one. Diagnostic only:
	// once diamonds collapse the graph is not a tree, so edges are derived
	// from Children exclusively.
	Parent *Node

	// Children lists the nodes this file's body directly includes, in
	// discovery order. Nil until the node resolves.
	Children []*Node
}
