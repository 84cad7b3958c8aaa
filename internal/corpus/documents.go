// Package corpus implements the I/O adapters (C6): loading documents,
// stopwords, queries, and qrels from the filesystem or Postgres, and
// reading/writing the results file.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// RawDocument is an unnormalized document as read from a source: an ID
// and its raw text content.
type RawDocument struct {
	ID      string
	Content string
}

// LoadDocuments reads every regular file under <root>/documents and
// returns them sorted the way the reference indexer sorts them: numeric
// order when the file name is all digits, lexical order otherwise. This
// keeps avgdl and any diagnostics reproducible across runs.
func LoadDocuments(root string) ([]RawDocument, error) {
	dir := filepath.Join(root, "documents")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("Error: The file does not exist.\nThe current recognized file path is  %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Slice(names, func(i, j int) bool {
		ni, iErr := strconv.Atoi(names[i])
		nj, jErr := strconv.Atoi(names[j])
		if iErr == nil && jErr == nil {
			return ni < nj
		}
		return names[i] < names[j]
	})

	docs := make([]RawDocument, 0, len(names))
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s: %w", name, err)
		}
		docs = append(docs, RawDocument{ID: name, Content: string(content)})
	}
	return docs, nil
}
