package primitives

import "fmt"

// LetterCounts counts occurrences of characters within a fixed range.
//
// The solver uses one per (domain, offset) pair: counting the letters that
// appear at a crossing's offset makes "does any distinct word support this
// letter" a counter lookup instead of a scan of the neighbor's domain.
type LetterCounts struct {
	counts []int
	min    rune
	total  int
}

func NewLetterCounts(min, max rune) *LetterCounts {
	return &LetterCounts{
		counts: make([]int, max-min+1),
		min:    min,
	}
}

// DefaultLetterCounts covers the solver's vocabulary range, A to Z.
func DefaultLetterCounts() *LetterCounts {
	return NewLetterCounts('A', 'Z')
}

// Add counts one occurrence of a character.
func (c *LetterCounts) Add(r rune) error {
	if r < c.min || r > c.min+rune(len(c.counts)-1) {
		return fmt.Errorf("character %c is out of range", r)
	}
	c.counts[r-c.min]++
	c.total++
	return nil
}

// Count returns the number of occurrences of a character. Characters outside
// the range were never counted.
func (c *LetterCounts) Count(r rune) int {
	if r < c.min || r > c.min+rune(len(c.counts)-1) {
		return 0
	}
	return c.counts[r-c.min]
}

// Total returns the number of occurrences counted across all characters.
func (c *LetterCounts) Total() int {
	return c.total
}
