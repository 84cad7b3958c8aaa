// Package stem wraps the unmodified Porter (1980) stemming algorithm and
// adds the word-to-stem memoization the reference indexer relies on.
package stem

import (
	"github.com/reiver/go-porterstemmer"
)

// Stemmer stems lowercase ASCII words using Porter's original algorithm.
// It is not safe for concurrent use without an external lock; callers in
// this codebase construct one Stemmer per process and use it single
// threaded, matching the source's global-stemmer-instance convention.
type Stemmer struct {
	cache map[string]string
}

// New returns a Stemmer with an empty memoization cache.
func New() *Stemmer {
	return &Stemmer{cache: make(map[string]string)}
}

// Stem returns the Porter stem of word, memoizing the result. word is
// expected to already be lowercase; the underlying algorithm is a pure
// function of its input, so repeated calls for the same word always
// return the same stem.
func (s *Stemmer) Stem(word string) string {
	if stemmed, ok := s.cache[word]; ok {
		return stemmed
	}
	stemmed := porterstemmer.StemString(word)
	s.cache[word] = stemmed
	return stemmed
}

// Size reports the number of distinct words memoized so far.
func (s *Stemmer) Size() int {
	return len(s.cache)
}
