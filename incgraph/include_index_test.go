package incgraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildIncludeIndex_RegistersHeadersByRelativePath(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.h", "")
	writeTestFile(t, dir, "core/util.h", "")
	writeTestFile(t, dir, "core/util.cpp", "")
	writeTestFile(t, dir, "README.md", "")

	index, err := BuildIncludeIndex([]DirSpec{{Path: dir}})
	require.NoError(t, err)

	assert.Equal(t, IncludeIndex{
		"a.h":         filepath.Join(dir, "a.h"),
		"core/util.h": filepath.Join(dir, "core", "util.h"),
	}, index)
}

func TestBuildIncludeIndex_AliasPrefixesKeys(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "buffer.h", "")

	index, err := BuildIncludeIndex([]DirSpec{{Path: dir, Alias: "mylib"}})
	require.NoError(t, err)

	assert.Equal(t, IncludeIndex{
		"mylib/buffer.h": filepath.Join(dir, "buffer.h"),
	}, index)
}

func TestBuildIncludeIndex_LastDirectoryWinsOnCollision(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeTestFile(t, first, "shared.h", "")
	winner := writeTestFile(t, second, "shared.h", "")

	index, err := BuildIncludeIndex([]DirSpec{{Path: first}, {Path: second}})
	require.NoError(t, err)

	assert.Equal(t, winner, index["shared.h"])
}

func TestBuildIncludeIndex_MissingDirectoryIsFatal(t *testing.T) {
	_, err := BuildIncludeIndex([]DirSpec{{Path: filepath.Join(t.TempDir(), "nope")}})
	require.Error(t, err)
}

func TestBuildIncludeIndex_EmptySpecList(t *testing.T) {
	index, err := BuildIncludeIndex(nil)
	require.NoError(t, err)
	assert.Empty(t, index)
}
