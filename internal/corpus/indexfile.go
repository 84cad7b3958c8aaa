package corpus

import (
	"fmt"
	"os"

	"github.com/comp3009j/ranksearch/internal/index"
)

// WriteIndexFile serializes idx to path, creating or truncating it.
func WriteIndexFile(path string, idx *index.Index) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create index file %s: %w", path, err)
	}
	defer f.Close()
	return index.Write(f, idx)
}

// ReadIndexFile deserializes an Index previously written by
// WriteIndexFile.
func ReadIndexFile(path string) (*index.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Error: The file does not exist.\nThe current recognized file path is  %s", path)
	}
	defer f.Close()
	return index.Read(f)
}
