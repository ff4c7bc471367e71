package primitives

import (
	"slices"
	"strings"
)

// WordSet is a set of candidate words with a fixed, deterministic iteration
// order (ascending lexicographic). Domains only ever shrink during a solve,
// so the backing slice is kept sorted and words are dropped in place.
type WordSet struct {
	words []string // sorted, no duplicates
}

// NewWordSet builds a set from the given words, deduplicating them.
func NewWordSet(words ...string) *WordSet {
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	return &WordSet{words: slices.Compact(sorted)}
}

// Contains checks if a word is in the set.
func (s *WordSet) Contains(word string) bool {
	_, ok := slices.BinarySearch(s.words, word)
	return ok
}

// Remove drops a word from the set, reporting whether it was present.
func (s *WordSet) Remove(word string) bool {
	i, ok := slices.BinarySearch(s.words, word)
	if !ok {
		return false
	}
	s.words = slices.Delete(s.words, i, i+1)
	return true
}

// Len returns the number of words in the set.
func (s *WordSet) Len() int {
	return len(s.words)
}

// Words returns the words in iteration order. The returned slice is the
// set's backing storage; callers must not mutate it or hold it across a
// Remove.
func (s *WordSet) Words() []string {
	return s.words
}

// Clone returns an independent copy of the set.
func (s *WordSet) Clone() *WordSet {
	return &WordSet{words: slices.Clone(s.words)}
}

func (s *WordSet) String() string {
	return "{" + strings.Join(s.words, ", ") + "}"
}
