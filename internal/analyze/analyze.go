// Package analyze implements the text normalization pipeline: bytes in,
// an ordered sequence of Porter stems out.
package analyze

import (
	"strings"

	"github.com/comp3009j/ranksearch/internal/stem"
)

// StopwordSet is a set of lowercase stopwords compared by exact equality.
type StopwordSet map[string]struct{}

// NewStopwordSet builds a StopwordSet from a slice of words, trimming
// whitespace on each entry.
func NewStopwordSet(words []string) StopwordSet {
	set := make(StopwordSet, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word is a stopword.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Normalizer turns raw text into an ordered sequence of Terms: lowercase,
// strip punctuation (digits retained), drop empty tokens, drop stopwords,
// stem. Order matches §4.2: stopword removal happens before stemming.
type Normalizer struct {
	stopwords StopwordSet
	stemmer   *stem.Stemmer
}

// New returns a Normalizer backed by the given stopword set. It owns a
// fresh Stemmer with its own memoization cache.
func New(stopwords StopwordSet) *Normalizer {
	return &Normalizer{stopwords: stopwords, stemmer: stem.New()}
}

// isPunctuation reports whether r is one of the ASCII punctuation code
// points stripped during normalization. This mirrors Python's
// string.punctuation, which does not include digits — digits are
// retained per the converged source draft.
func isPunctuation(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	default:
		return false
	}
}

// stripPunctuation removes ASCII punctuation from token, retaining
// letters, digits, and any other code point.
func stripPunctuation(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range token {
		if isPunctuation(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize applies the full C2 pipeline to text and returns the ordered
// sequence of Terms: lowercase, strip punctuation, drop empty, drop
// stopwords, stem. Splitting is whitespace-only, matching the source's
// `content.split()` behavior — no Unicode segmentation.
func (n *Normalizer) Normalize(text string) []string {
	fields := strings.Fields(text)
	terms := make([]string, 0, len(fields))

	for _, token := range fields {
		token = stripPunctuation(strings.ToLower(token))
		if token == "" {
			continue
		}
		if n.stopwords.Contains(token) {
			continue
		}
		terms = append(terms, n.stemmer.Stem(token))
	}
	return terms
}
