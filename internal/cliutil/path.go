// Package cliutil provides the small amount of argument- and path-
// resolution plumbing shared by the three CLI tools (C6), reproducing
// the reference indexer's exact error text.
package cliutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveRoot checks that root exists, returning the reference indexer's
// exact error text when it does not.
func ResolveRoot(root string) error {
	if root == "" {
		return fmt.Errorf("Error: Invalid arguments.")
	}
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("Error: The path does not exist.")
	}
	return nil
}

// ResolveFile joins root and relative and verifies the result exists,
// returning the reference indexer's exact two-line error text (joined
// with a newline) when it does not.
func ResolveFile(root, relative string) (string, error) {
	path := filepath.Join(root, relative)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("Error: The file does not exist.\nThe current recognized file path is  %s", path)
	}
	return path, nil
}

// OutputPath joins root and relative without checking existence, for
// paths the caller is about to create (e.g. the index or results file).
func OutputPath(root, relative string) string {
	return filepath.Join(root, relative)
}
