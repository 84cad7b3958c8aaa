package index

import (
	"bytes"
	"math"
	"testing"
)

func tinyCorpus() []Document {
	return []Document{
		{ID: "d1", Terms: []string{"cat", "dog", "cat"}},
		{ID: "d2", Terms: []string{"dog"}},
		{ID: "d3", Terms: []string{"cat"}},
	}
}

func TestBuildTinyIndexStats(t *testing.T) {
	idx := Build(tinyCorpus(), DefaultParams())

	if idx.N != 3 {
		t.Fatalf("N = %d, want 3", idx.N)
	}
	wantAvgDL := 5.0 / 3.0
	if math.Abs(idx.AvgDL-wantAvgDL) > 1e-9 {
		t.Fatalf("AvgDL = %v, want %v", idx.AvgDL, wantAvgDL)
	}

	wantIDF := math.Log(1 + (3.0-2.0+0.5)/(2.0+0.5))
	for _, term := range []string{"cat", "dog"} {
		entry, ok := idx.Terms[term]
		if !ok {
			t.Fatalf("term %q missing from index", term)
		}
		if math.Abs(entry.IDF-wantIDF) > 1e-9 {
			t.Errorf("idf(%q) = %v, want %v", term, entry.IDF, wantIDF)
		}
	}
}

func TestBuildIndexCompleteness(t *testing.T) {
	docs := tinyCorpus()
	idx := Build(docs, DefaultParams())

	for _, doc := range docs {
		for _, term := range doc.Terms {
			entry := idx.Terms[term]
			found := false
			for _, p := range entry.Postings {
				if p.Doc == doc.ID {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("doc %q missing from postings of term %q", doc.ID, term)
			}
		}
	}
}

func TestIDFPositivity(t *testing.T) {
	idx := Build(tinyCorpus(), DefaultParams())
	for term, entry := range idx.Terms {
		if entry.IDF <= 0 {
			t.Errorf("idf(%q) = %v, want > 0", term, entry.IDF)
		}
	}
}

func TestPostingListDescendingByWeight(t *testing.T) {
	idx := Build(tinyCorpus(), DefaultParams())
	for term, entry := range idx.Terms {
		for i := 1; i < len(entry.Postings); i++ {
			if entry.Postings[i-1].Weight < entry.Postings[i].Weight {
				t.Errorf("term %q postings not descending: %v", term, entry.Postings)
			}
		}
	}
}

func TestLengthPenaltyFavorsShorterDocument(t *testing.T) {
	docs := []Document{
		{ID: "short", Terms: []string{"cat", "dog"}},
		{ID: "long", Terms: []string{"cat", "dog", "fish", "bird", "tree", "rock"}},
	}
	idx := Build(docs, DefaultParams())

	entry := idx.Terms["cat"]
	var shortWeight, longWeight float64
	for _, p := range entry.Postings {
		switch p.Doc {
		case "short":
			shortWeight = p.Weight
		case "long":
			longWeight = p.Weight
		}
	}
	if shortWeight < longWeight {
		t.Errorf("shorter document weight %v should be >= longer document weight %v", shortWeight, longWeight)
	}
}

func TestRoundTrip(t *testing.T) {
	idx := Build(tinyCorpus(), DefaultParams())

	var buf bytes.Buffer
	if err := Write(&buf, idx); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if got.N != idx.N || math.Abs(got.AvgDL-idx.AvgDL) > 1e-12 {
		t.Fatalf("round-tripped stats mismatch: got N=%d AvgDL=%v, want N=%d AvgDL=%v", got.N, got.AvgDL, idx.N, idx.AvgDL)
	}
	for term, entry := range idx.Terms {
		gotEntry, ok := got.Terms[term]
		if !ok {
			t.Fatalf("term %q missing after round trip", term)
		}
		if math.Abs(gotEntry.IDF-entry.IDF) > 1e-12 {
			t.Errorf("idf(%q) round-trip mismatch: got %v, want %v", term, gotEntry.IDF, entry.IDF)
		}
		if len(gotEntry.Postings) != len(entry.Postings) {
			t.Fatalf("postings length mismatch for %q", term)
		}
		for i := range entry.Postings {
			if gotEntry.Postings[i] != entry.Postings[i] {
				t.Errorf("posting[%d] for %q: got %v, want %v", i, term, gotEntry.Postings[i], entry.Postings[i])
			}
		}
	}
}

func TestBuildEmptyCorpus(t *testing.T) {
	idx := Build(nil, DefaultParams())
	if idx.N != 0 {
		t.Fatalf("N = %d, want 0", idx.N)
	}
	if len(idx.Terms) != 0 {
		t.Fatalf("Terms = %v, want empty", idx.Terms)
	}
}

func TestBuildEmptyDocumentStillCounted(t *testing.T) {
	docs := []Document{
		{ID: "d1", Terms: []string{"cat"}},
		{ID: "d2", Terms: nil},
	}
	idx := Build(docs, DefaultParams())
	if idx.N != 2 {
		t.Fatalf("N = %d, want 2", idx.N)
	}
	for _, entry := range idx.Terms {
		for _, p := range entry.Postings {
			if p.Doc == "d2" {
				t.Errorf("empty document d2 should not appear in any posting list")
			}
		}
	}
}
