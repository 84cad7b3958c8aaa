package index

import (
	"encoding/json"
	"fmt"
	"io"
)

// fileFormat is the on-disk JSON shape for an Index. Posting lists are
// serialized as arrays, not maps, so the descending-by-weight order
// survives the round trip exactly — a plain map[DocID]float64 would not
// preserve it through json.Marshal/Unmarshal.
type fileFormat struct {
	N      int                  `json:"n"`
	AvgDL  float64              `json:"avgdl"`
	Params Params               `json:"params"`
	Terms  map[string]termFile  `json:"terms"`
}

type termFile struct {
	IDF      float64        `json:"idf"`
	Postings []postingFile  `json:"postings"`
}

type postingFile struct {
	Doc    DocID   `json:"doc"`
	Weight float64 `json:"weight"`
}

// Write serializes idx as JSON to w.
func Write(w io.Writer, idx *Index) error {
	ff := fileFormat{
		N:      idx.N,
		AvgDL:  idx.AvgDL,
		Params: idx.Params,
		Terms:  make(map[string]termFile, len(idx.Terms)),
	}
	for term, entry := range idx.Terms {
		postings := make([]postingFile, len(entry.Postings))
		for i, p := range entry.Postings {
			postings[i] = postingFile{Doc: p.Doc, Weight: p.Weight}
		}
		ff.Terms[term] = termFile{IDF: entry.IDF, Postings: postings}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ff); err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}
	return nil
}

// Read deserializes an Index previously written by Write.
func Read(r io.Reader) (*Index, error) {
	var ff fileFormat
	if err := json.NewDecoder(r).Decode(&ff); err != nil {
		return nil, fmt.Errorf("failed to decode index: %w", err)
	}

	idx := &Index{
		N:      ff.N,
		AvgDL:  ff.AvgDL,
		Params: ff.Params,
		Terms:  make(map[string]*TermEntry, len(ff.Terms)),
	}
	for term, tf := range ff.Terms {
		postings := make(PostingList, len(tf.Postings))
		for i, p := range tf.Postings {
			postings[i] = Posting{Doc: p.Doc, Weight: p.Weight}
		}
		idx.Terms[term] = &TermEntry{IDF: tf.IDF, Postings: postings}
	}
	return idx, nil
}
