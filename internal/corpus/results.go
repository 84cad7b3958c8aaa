package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/comp3009j/ranksearch/internal/eval"
	"github.com/comp3009j/ranksearch/internal/index"
	"github.com/comp3009j/ranksearch/internal/query"
)

// WriteAutomaticResults writes one "<query_id> <doc_id> <rank> <score>"
// line per ranked result, rank 1-based, in automatic query mode.
func WriteAutomaticResults(w io.Writer, queryID string, results []query.Result) error {
	for i, r := range results {
		if _, err := fmt.Fprintf(w, "%s %s %d %f\n", queryID, r.Doc, i+1, r.Score); err != nil {
			return fmt.Errorf("failed to write result line: %w", err)
		}
	}
	return nil
}

// WriteInteractiveResult writes one "<rank> <doc_id> <score>" line, for
// interactive query mode's terminal output.
func WriteInteractiveResult(w io.Writer, rank int, r query.Result) error {
	_, err := fmt.Fprintf(w, "%d %s %f\n", rank, r.Doc, r.Score)
	return err
}

// LoadResults reads a results file written by WriteAutomaticResults back
// into eval.QueryResults, for the evaluator. The rank field is ignored;
// retrieval order is reconstructed from file order within each query.
func LoadResults(path string) (eval.QueryResults, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Error: The file does not exist.\nThe current recognized file path is  %s", path)
	}
	defer f.Close()

	results := make(eval.QueryResults)
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
		docID := fields[1]
		score, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			continue
		}
		results[queryID] = append(results[queryID], eval.RankedDoc{Doc: index.DocID(docID), Score: score})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}
	return results, nil
}
