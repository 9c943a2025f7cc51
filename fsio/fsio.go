package fsio

import "os"

// ContentReader is a function that reads file content given a file path.
// This allows the caller to control how files are read (filesystem, in-memory
// fixtures, etc.)
type ContentReader func(filePath string) ([]byte, error)

// ExistenceProbe reports whether a regular file exists at the given path.
type ExistenceProbe func(filePath string) bool

// ReadDisk reads file content from the local filesystem.
func ReadDisk(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}

// ExistsOnDisk reports whether filePath names an existing regular file.
func ExistsOnDisk(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
