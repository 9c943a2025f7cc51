// Package incgraph builds the transitive include graph of a C/C++ translation
// unit without invoking a compiler or preprocessor.
//
// Construction runs a single-threaded worklist over include directives:
// quoted includes resolve against the including file's directory, angle
// includes against the declared include directories, and anything left is an
// opaque system include. Headers pull in sibling implementation files by name
// convention (foo.h -> foo.cpp). The resulting graph exposes deduplicated,
// descending-sorted include paths, headers, and sources, plus an edge
// enumeration for visualization.
package incgraph
