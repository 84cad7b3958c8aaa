package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Query is a single query record: "<query_id> <query_text...>".
type Query struct {
	ID   string
	Text string
}

// LoadQueries reads one query per line from path, preserving file order.
// Malformed lines (no text after the ID) are skipped, per spec.md §7's
// MalformedLine rule.
func LoadQueries(path string) ([]Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Error: The file does not exist.\nThe current recognized file path is  %s", path)
	}
	defer f.Close()

	var queries []Query
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		idx := strings.IndexAny(line, " \t")
		if idx < 0 {
			continue
		}
		id := line[:idx]
		text := strings.TrimSpace(line[idx:])
		if text == "" {
			continue
		}
		queries = append(queries, Query{ID: id, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read queries file: %w", err)
	}
	return queries, nil
}
