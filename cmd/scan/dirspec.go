package scan

import (
	"strings"

	"github.com/LegacyCodeHQ/incmap/incgraph"
)

// dirSpecMarker separates a directory path from its alias prefix in the
// CLI's `dir#alias` include-directory convention.
const dirSpecMarker = "#"

// ParseDirSpecs splits `dir#alias` arguments into the (path, alias) pairs the
// engine consumes. A spec without the marker declares an alias-free directory.
func ParseDirSpecs(specs []string) []incgraph.DirSpec {
	dirs := make([]incgraph.DirSpec, 0, len(specs))
	for _, spec := range specs {
		dirs = append(dirs, parseDirSpec(spec))
	}
	return dirs
}

func parseDirSpec(spec string) incgraph.DirSpec {
	i := strings.LastIndex(spec, dirSpecMarker)
	if i < 0 {
		return incgraph.DirSpec{Path: spec}
	}
	return incgraph.DirSpec{Path: spec[:i], Alias: spec[i+1:]}
}
