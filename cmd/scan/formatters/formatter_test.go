package formatters_test

import (
	"io"
	"io/fs"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/incmap/cmd/scan/formatters"
	"github.com/LegacyCodeHQ/incmap/fsio"
	"github.com/LegacyCodeHQ/incmap/incgraph"
)

// buildGraph constructs a graph over an in-memory file set so formatter
// fixtures stay independent of the host filesystem.
func buildGraph(t *testing.T, files map[string]string, root string) *incgraph.Graph {
	t.Helper()

	reader := fsio.ContentReader(func(path string) ([]byte, error) {
		content, ok := files[path]
		if !ok {
			return nil, fs.ErrNotExist
		}
		return []byte(content), nil
	})
	exists := fsio.ExistenceProbe(func(path string) bool {
		_, ok := files[path]
		return ok
	})

	g, err := incgraph.Build(root, nil, incgraph.Options{
		Reader: reader,
		Exists: exists,
		Logger: log.New(io.Discard),
	})
	require.NoError(t, err)
	return g
}

func sampleGraph(t *testing.T) *incgraph.Graph {
	return buildGraph(t, map[string]string{
		"/project/main.cpp":  "#include \"lib/a.h\"\n#include <vector>\n",
		"/project/lib/a.h":   "",
		"/project/lib/a.cpp": "#include \"a.h\"\n",
	}, "/project/main.cpp")
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []string{"text", "dot", "json"} {
		f, err := formatters.NewFormatter(format)
		require.NoError(t, err)
		assert.NotNil(t, f)
	}

	_, err := formatters.NewFormatter("yaml")
	require.Error(t, err)
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := &formatters.JSONFormatter{}
	output, err := formatter.Format(sampleGraph(t))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"root": "/project/main.cpp",
		"include_paths": ["/project/lib", "/project"],
		"headers": ["/project/lib/a.h"],
		"sources": ["/project/main.cpp", "/project/lib/a.cpp"],
		"edges": [
			{"parent": "/project/lib/a.cpp", "child": "/project/lib/a.h"},
			{"parent": "/project/main.cpp", "child": "/project/lib/a.h"},
			{"parent": "/project/main.cpp", "child": "vector"}
		]
	}`, output)
}

func TestDOTFormatter_NoIncludesRendersRootNode(t *testing.T) {
	graph := buildGraph(t, map[string]string{
		"/project/solo.cpp": "int main() { return 0; }\n",
	}, "/project/solo.cpp")

	formatter := &formatters.DOTFormatter{}
	output, err := formatter.Format(graph)
	require.NoError(t, err)

	assert.Equal(t, "digraph includes {\n  \"/project/solo.cpp\";\n}\n", output)
}
