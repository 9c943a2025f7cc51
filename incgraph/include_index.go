package incgraph

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

const headerSuffix = ".h"

// DirSpec declares one include search directory. Alias, when non-empty, is
// prepended to every includable name registered under Path (the CLI's
// `dir#alias` convention, already split by the caller).
type DirSpec struct {
	Path  string
	Alias string
}

// IncludeIndex maps includable names, as they would appear between angle
// brackets, to absolute header paths under the declared include directories.
type IncludeIndex map[string]string

// BuildIncludeIndex recursively enumerates header files beneath each declared
// directory and registers alias-prefixed relative names. Later directories win
// on key collisions; overlapping search paths are expected, not an error.
// A declared directory that cannot be walked fails the whole run.
func BuildIncludeIndex(dirs []DirSpec) (IncludeIndex, error) {
	index := make(IncludeIndex)

	for _, spec := range dirs {
		absDir, err := filepath.Abs(spec.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve include directory %s: %w", spec.Path, err)
		}

		err = filepath.WalkDir(absDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			if !strings.HasSuffix(d.Name(), headerSuffix) {
				return nil
			}

			relPath, err := filepath.Rel(absDir, path)
			if err != nil {
				return err
			}

			index[includableName(spec.Alias, relPath)] = path
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk include directory %s: %w", spec.Path, err)
		}
	}

	return index, nil
}

// includableName joins the alias prefix and the slash-separated relative path.
// No separator is inserted for an empty alias.
func includableName(alias, relPath string) string {
	name := filepath.ToSlash(relPath)
	if alias == "" {
		return name
	}
	return alias + "/" + name
}
