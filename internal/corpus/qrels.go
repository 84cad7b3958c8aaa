package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/comp3009j/ranksearch/internal/eval"
	"github.com/comp3009j/ranksearch/internal/index"
)

// LoadQrels reads "<query_id> <iteration> <doc_id> <relevance>" records
// (field 2 is ignored). Per spec.md §4.5/§9, documents with relevance
// grade 0 are dropped at load time and never recorded anywhere — this is
// why eval.BPref always receives an empty non-relevant set from this
// loader and degenerates, matching the source's own uniform behavior.
func LoadQrels(path string) (eval.Qrels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Error: The file does not exist.\nThe current recognized file path is  %s", path)
	}
	defer f.Close()

	qrels := make(eval.Qrels)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			continue
		}
		queryID := fields[0]
		docID := fields[2]
		relevance, err := strconv.Atoi(fields[3])
		if err != nil {
			continue
		}
		if relevance == 0 {
			continue
		}
		if qrels[queryID] == nil {
			qrels[queryID] = make(map[index.DocID]int)
		}
		qrels[queryID][index.DocID(docID)] = relevance
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read qrels file: %w", err)
	}
	return qrels, nil
}
