// Package index builds and serves the BM25 inverted index (C3): processed
// documents go in, a Term -> (idf, PostingList) mapping comes out, with
// IDF folded into every stored posting weight so query-time scoring is a
// pure sum.
package index

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// DocID identifies a document. The small corpus uses digit strings, the
// large corpus opaque strings; both are represented uniformly here.
type DocID string

// Params holds the BM25 tuning constants. Spec pins k1=1.0, b=0.75;
// Params is still a value, not a pair of constants, because the
// configuration layer (internal/config) allows overriding them for
// experimentation.
type Params struct {
	K1 float64
	B  float64
}

// DefaultParams returns the spec-mandated BM25 constants.
func DefaultParams() Params {
	return Params{K1: 1.0, B: 0.75}
}

// Document is a single corpus document after C2 normalization: an
// ordered, duplicate-preserving sequence of stems.
type Document struct {
	ID    DocID
	Terms []string
}

// Posting is one (document, weight) pair within a term's posting list.
type Posting struct {
	Doc    DocID
	Weight float64
}

// PostingList is stored descending by Weight (ties broken by ascending
// DocID for determinism), per §4.3.
type PostingList []Posting

// TermEntry is a term's immutable IDF plus its posting list.
type TermEntry struct {
	IDF      float64
	Postings PostingList
}

// Index is the complete inverted index plus the corpus statistics (N,
// AvgDL) BM25 scoring depends on.
type Index struct {
	Params Params
	N      int
	AvgDL  float64
	Terms  map[string]*TermEntry
}

// DocFrequency returns the number of documents the index records as
// containing term, or 0 if term is absent.
func (idx *Index) DocFrequency(term string) int {
	entry, ok := idx.Terms[term]
	if !ok {
		return 0
	}
	return len(entry.Postings)
}

// Build constructs the inverted index from already-normalized documents.
// It follows the original indexer's two-stage shape: first a per-document
// BM25 term-frequency weight (length-normalized, no IDF yet), then a
// second pass that multiplies in each term's IDF and sorts every posting
// list descending by the final weight.
func Build(docs []Document, params Params) *Index {
	idx := &Index{Params: params, N: len(docs), Terms: make(map[string]*TermEntry)}
	if idx.N == 0 {
		return idx
	}

	docFreqBitmaps := make(map[string]*roaring.Bitmap)
	termFreqsByDoc := make([]map[string]int, len(docs))
	docLens := make([]int, len(docs))

	totalLen := 0
	for i, doc := range docs {
		freqs := make(map[string]int, len(doc.Terms))
		for _, term := range doc.Terms {
			freqs[term]++
		}
		termFreqsByDoc[i] = freqs
		docLens[i] = len(doc.Terms)
		totalLen += len(doc.Terms)

		for term := range freqs {
			bm, ok := docFreqBitmaps[term]
			if !ok {
				bm = roaring.New()
				docFreqBitmaps[term] = bm
			}
			bm.Add(uint32(i))
		}
	}
	idx.AvgDL = float64(totalLen) / float64(idx.N)

	// Stage 1: raw, idf-free BM25 term weight per (term, doc).
	rawWeights := make(map[string]map[DocID]float64, len(docFreqBitmaps))
	for i, doc := range docs {
		dl := docLens[i]
		for term, tf := range termFreqsByDoc[i] {
			w := rawWeight(float64(tf), dl, idx.AvgDL, params)
			byDoc, ok := rawWeights[term]
			if !ok {
				byDoc = make(map[DocID]float64)
				rawWeights[term] = byDoc
			}
			byDoc[doc.ID] = w
		}
	}

	// Stage 2: IDF (computed once, over frozen document frequencies),
	// then fold it into the stored weight and sort descending.
	for term, bm := range docFreqBitmaps {
		df := int(bm.GetCardinality())
		idf := computeIDF(idx.N, df)

		byDoc := rawWeights[term]
		postings := make(PostingList, 0, len(byDoc))
		for doc, raw := range byDoc {
			postings = append(postings, Posting{Doc: doc, Weight: idf * raw})
		}
		sort.Slice(postings, func(a, b int) bool {
			if postings[a].Weight != postings[b].Weight {
				return postings[a].Weight > postings[b].Weight
			}
			return postings[a].Doc < postings[b].Doc
		})

		idx.Terms[term] = &TermEntry{IDF: idf, Postings: postings}
	}

	return idx
}

// rawWeight computes the length-normalized BM25 term-frequency weight,
// without IDF: (tf*(k1+1)) / (tf + k1*(1-b+b*dl/avgdl)).
func rawWeight(tf float64, dl int, avgdl float64, params Params) float64 {
	return (tf * (params.K1 + 1)) / (tf + params.K1*(1-params.B+params.B*float64(dl)/avgdl))
}
