// Package query implements the BM25 query engine (C4): normalize a query,
// sum precomputed posting weights per document, rank, truncate to 15.
package query

import (
	"sort"

	"github.com/comp3009j/ranksearch/internal/analyze"
	"github.com/comp3009j/ranksearch/internal/index"
)

// TopK is the number of results returned per query, fixed by spec.
const TopK = 15

// Result is a single ranked (document, score) pair.
type Result struct {
	Doc   index.DocID
	Score float64
}

// Engine answers queries against a fixed inverted index.
type Engine struct {
	idx        *index.Index
	normalizer *analyze.Normalizer
}

// New returns an Engine that normalizes queries with normalizer and
// scores them against idx.
func New(idx *index.Index, normalizer *analyze.Normalizer) *Engine {
	return &Engine{idx: idx, normalizer: normalizer}
}

// Query normalizes queryText, accumulates BM25 scores across all
// (possibly repeated) query terms, and returns the top TopK documents
// ranked descending by score, ties broken by ascending DocID.
func (e *Engine) Query(queryText string) []Result {
	terms := e.normalizer.Normalize(queryText)
	if len(terms) == 0 {
		return nil
	}

	acc := make(map[index.DocID]float64)
	for _, term := range terms {
		entry, ok := e.idx.Terms[term]
		if !ok {
			continue
		}
		for _, p := range entry.Postings {
			acc[p.Doc] += p.Weight
		}
	}
	if len(acc) == 0 {
		return nil
	}

	results := make([]Result, 0, len(acc))
	for doc, score := range acc {
		results = append(results, Result{Doc: doc, Score: score})
	}
	sort.Slice(results, func(a, b int) bool {
		if results[a].Score != results[b].Score {
			return results[a].Score > results[b].Score
		}
		return results[a].Doc < results[b].Doc
	})

	if len(results) > TopK {
		results = results[:TopK]
	}
	return results
}
