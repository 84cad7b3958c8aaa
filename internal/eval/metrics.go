// Package eval computes the classical IR metrics (C5): Precision, Recall,
// R-Precision, P@15, MAP, NDCG@15, BPREF. All formulas are grounded on
// comp3009j-corpus-large/evaluate_large_corpus.py, the final draft of the
// reference evaluator.
package eval

import (
	"math"

	"github.com/comp3009j/ranksearch/internal/index"
)

// RankedDoc is one entry of a query's retrieved list, in retrieval order.
type RankedDoc struct {
	Doc   index.DocID
	Score float64
}

// QueryResults maps a query ID to its ordered retrieved documents.
type QueryResults map[string][]RankedDoc

// Qrels maps a query ID to its relevance judgments. Grade-0 entries are
// dropped at load time (see internal/corpus), so every grade present
// here is > 0; "relevant" and "present in qrels[q]" are therefore
// synonymous throughout this package, per spec.md §4.5 and §9.
type Qrels map[string]map[index.DocID]int

// Metrics holds the seven averaged scores, each in [0, 1].
type Metrics struct {
	Precision  float64
	Recall     float64
	RPrecision float64
	PAt15      float64
	MAP        float64
	NDCGAt15   float64
	BPref      float64
}

const k15 = 15

// Precision averages, over queries with at least one retrieved document,
// |retrieved ∩ relevant| / |retrieved|.
func Precision(results QueryResults, qrels Qrels) float64 {
	return averageOverQueries(results, func(qid string, ret []RankedDoc) (float64, bool) {
		if len(ret) == 0 {
			return 0, false
		}
		rel := qrels[qid]
		hit := countRelevant(ret, rel)
		return float64(hit) / float64(len(ret)), true
	})
}

// Recall averages |retrieved ∩ relevant| / |relevant|.
func Recall(results QueryResults, qrels Qrels) float64 {
	return averageOverQueries(results, func(qid string, ret []RankedDoc) (float64, bool) {
		rel := qrels[qid]
		if len(rel) == 0 {
			return 0, false
		}
		hit := countRelevant(ret, rel)
		return float64(hit) / float64(len(rel)), true
	})
}

// RPrecision counts relevant documents within the top R retrieved, where
// R = |relevant(q)|, divided by R.
func RPrecision(results QueryResults, qrels Qrels) float64 {
	return averageOverQueries(results, func(qid string, ret []RankedDoc) (float64, bool) {
		rel := qrels[qid]
		r := len(rel)
		if r == 0 {
			return 0, false
		}
		top := ret
		if len(top) > r {
			top = top[:r]
		}
		hit := countRelevant(top, rel)
		return float64(hit) / float64(r), true
	})
}

// PAt15 counts relevant documents within the top 15 retrieved, divided by
// 15 (always, regardless of how many documents were actually retrieved).
func PAt15(results QueryResults, qrels Qrels) float64 {
	return averageOverQueries(results, func(qid string, ret []RankedDoc) (float64, bool) {
		rel := qrels[qid]
		top := ret
		if len(top) > k15 {
			top = top[:k15]
		}
		hit := countRelevant(top, rel)
		return float64(hit) / float64(k15), true
	})
}

// MAP walks each query's retrieved list in order; on every relevant hit
// at 1-indexed position i it adds (relevant-so-far / i), then divides the
// sum by |relevant(q)|.
func MAP(results QueryResults, qrels Qrels) float64 {
	return averageOverQueries(results, func(qid string, ret []RankedDoc) (float64, bool) {
		rel := qrels[qid]
		if len(rel) == 0 {
			return 0, false
		}
		var sum float64
		relevantSoFar := 0
		for i, doc := range ret {
			if _, ok := rel[doc.Doc]; ok {
				relevantSoFar++
				sum += float64(relevantSoFar) / float64(i+1)
			}
		}
		return sum / float64(len(rel)), true
	})
}

// dcgAt15 applies the source's discount: position 1 undiscounted,
// position i>=2 discounted by log2(i+1).
func dcgAt15(gains []float64) float64 {
	if len(gains) > k15 {
		gains = gains[:k15]
	}
	if len(gains) == 0 {
		return 0
	}
	dcg := gains[0]
	for i := 1; i < len(gains); i++ {
		rank := i + 1
		dcg += gains[i] / math.Log2(float64(rank+1))
	}
	return dcg
}

// NDCGAt15 re-sorts each query's retrieved list by score descending,
// substitutes 0 for unjudged documents, and compares its DCG to the
// ideal DCG built from all of that query's qrels grades.
func NDCGAt15(results QueryResults, qrels Qrels) float64 {
	return averageOverQueries(results, func(qid string, ret []RankedDoc) (float64, bool) {
		rel := qrels[qid]

		sorted := append([]RankedDoc(nil), ret...)
		sortByScoreDescending(sorted)

		gains := make([]float64, len(sorted))
		for i, d := range sorted {
			gains[i] = float64(rel[d.Doc])
		}
		dcg := dcgAt15(gains)

		ideal := make([]float64, 0, len(rel))
		for _, grade := range rel {
			ideal = append(ideal, float64(grade))
		}
		sortDescending(ideal)
		idcg := dcgAt15(ideal)

		if idcg == 0 {
			return 0, true
		}
		return dcg / idcg, true
	})
}

// BPref implements the source's comparison-based formula: for every
// relevant document, count judged-non-relevant documents ranked above it
// by retrieval score, normalize by the number of judged non-relevant
// documents, average over relevant documents, then over queries with
// R>0. Because grade-0 qrels entries are dropped at load time (spec.md
// §4.5/§9), the judged-non-relevant set is always empty in this
// pipeline and BPref degenerates to 0 for every query with R>0 — this
// mirrors the reference evaluator's own behavior given the same loader
// rule, not a bug in this implementation.
func BPref(results QueryResults, qrels Qrels, nonRelevant map[string]map[index.DocID]struct{}) float64 {
	var total float64
	queries := 0

	for qid, rel := range qrels {
		relevantDocs := rel
		r := len(relevantDocs)
		if r == 0 {
			continue
		}
		queries++

		nonRel := nonRelevant[qid]
		n := len(nonRel)

		scores := make(map[index.DocID]float64, len(results[qid]))
		for _, d := range results[qid] {
			scores[d.Doc] = d.Score
		}

		var sum float64
		for doc := range relevantDocs {
			if n == 0 {
				continue
			}
			docScore := scores[doc]
			countB := 0
			for nonRelDoc := range nonRel {
				if scores[nonRelDoc] > docScore {
					countB++
				}
			}
			sum += float64(countB) / float64(n)
		}
		total += sum / float64(r)
	}

	if queries == 0 {
		return 0
	}
	return total / float64(queries)
}

// All computes the full Metrics struct.
func All(results QueryResults, qrels Qrels, nonRelevant map[string]map[index.DocID]struct{}) Metrics {
	return Metrics{
		Precision:  Precision(results, qrels),
		Recall:     Recall(results, qrels),
		RPrecision: RPrecision(results, qrels),
		PAt15:      PAt15(results, qrels),
		MAP:        MAP(results, qrels),
		NDCGAt15:   NDCGAt15(results, qrels),
		BPref:      BPref(results, qrels, nonRelevant),
	}
}

func countRelevant(ret []RankedDoc, rel map[index.DocID]int) int {
	count := 0
	for _, d := range ret {
		if _, ok := rel[d.Doc]; ok {
			count++
		}
	}
	return count
}

// averageOverQueries runs metric over every query present in results,
// skipping queries the metric function opts out of, and averages the
// surviving per-query scores.
func averageOverQueries(results QueryResults, metric func(qid string, ret []RankedDoc) (float64, bool)) float64 {
	var sum float64
	count := 0
	for qid, ret := range results {
		val, ok := metric(qid, ret)
		if !ok {
			continue
		}
		sum += val
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func sortByScoreDescending(docs []RankedDoc) {
	for i := 1; i < len(docs); i++ {
		for j := i; j > 0 && docs[j].Score > docs[j-1].Score; j-- {
			docs[j], docs[j-1] = docs[j-1], docs[j]
		}
	}
}

func sortDescending(vals []float64) {
	for i := 1; i < len(vals); i++ {
		for j := i; j > 0 && vals[j] > vals[j-1]; j-- {
			vals[j], vals[j-1] = vals[j-1], vals[j]
		}
	}
}
