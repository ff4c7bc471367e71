package xwsolver

import (
	"fmt"
	"slices"
	"strings"

	"crosswarped.com/xwsolver/pkg/primitives"
)

// Overlap records the single shared cell of two crossing slots, as the
// offset of that cell within each slot.
type Overlap struct {
	A int // offset within the first slot
	B int // offset within the second slot
}

type variablePair struct {
	a primitives.Variable
	b primitives.Variable
}

// Crossword is the immutable structural model of one puzzle: the fillable
// cell matrix, the normalized vocabulary, and the slot set with its overlap
// relation, all derived once at construction. A Crossword is read-only and
// can be shared across any number of solves.
type Crossword struct {
	Height int
	Width  int

	structure [][]bool
	words     []string // uppercase, deduplicated, sorted

	variables []primitives.Variable
	overlaps  map[variablePair]Overlap
	neighbors map[primitives.Variable][]primitives.Variable
}

// New builds a Crossword from a fillable-cell matrix and a candidate
// vocabulary. Every row must have the same width and every word must be
// letters A-Z after case normalization; violations are construction
// errors, not solve failures.
func New(structure [][]bool, words []string) (*Crossword, error) {
	if len(structure) == 0 {
		return nil, fmt.Errorf("structure has no rows")
	}
	width := len(structure[0])
	for i, row := range structure {
		if len(row) != width {
			return nil, fmt.Errorf("structure row %d has %d cells, want %d", i, len(row), width)
		}
	}

	normalized := make([]string, len(words))
	for i, word := range words {
		upper := strings.ToUpper(word)
		for _, r := range upper {
			if r < 'A' || r > 'Z' {
				return nil, fmt.Errorf("word %s contains non-letter character %q", upper, r)
			}
		}
		normalized[i] = upper
	}
	slices.Sort(normalized)
	normalized = slices.Compact(normalized)

	c := &Crossword{
		Height:    len(structure),
		Width:     width,
		structure: structure,
		words:     normalized,
	}
	c.deriveVariables()
	c.deriveOverlaps()
	return c, nil
}

// Fillable reports whether the cell at (row, col) takes a letter.
func (c *Crossword) Fillable(row, col int) bool {
	return c.structure[row][col]
}

// Words returns the normalized vocabulary in its fixed order.
func (c *Crossword) Words() []string {
	return c.words
}

// Variables returns all slots in their fixed (row, col, direction) order.
func (c *Crossword) Variables() []primitives.Variable {
	return c.variables
}

// Neighbors returns the slots crossing v, in the fixed variable order.
func (c *Crossword) Neighbors(v primitives.Variable) []primitives.Variable {
	return c.neighbors[v]
}

// Overlap returns the shared-cell offsets of two slots, or false if the
// slots do not cross (a slot never crosses itself).
func (c *Crossword) Overlap(a, b primitives.Variable) (Overlap, bool) {
	ov, ok := c.overlaps[variablePair{a, b}]
	return ov, ok
}

// deriveVariables finds every maximal horizontal and vertical run of
// fillable cells of length >= 2.
func (c *Crossword) deriveVariables() {
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; {
			if !c.structure[row][col] {
				col++
				continue
			}
			start := col
			for col < c.Width && c.structure[row][col] {
				col++
			}
			if length := col - start; length >= 2 {
				c.variables = append(c.variables, primitives.Variable{
					Row: row, Col: start, Direction: primitives.DirectionAcross, Length: length,
				})
			}
		}
	}
	for col := 0; col < c.Width; col++ {
		for row := 0; row < c.Height; {
			if !c.structure[row][col] {
				row++
				continue
			}
			start := row
			for row < c.Height && c.structure[row][col] {
				row++
			}
			if length := row - start; length >= 2 {
				c.variables = append(c.variables, primitives.Variable{
					Row: start, Col: col, Direction: primitives.DirectionDown, Length: length,
				})
			}
		}
	}
	slices.SortFunc(c.variables, primitives.CompareVariables)
}

// deriveOverlaps records, for every pair of distinct slots sharing a cell,
// the offsets of that cell in each slot. Only an across/down pair can share
// a cell, and at most one: runs are maximal, so two parallel slots are
// disjoint.
func (c *Crossword) deriveOverlaps() {
	c.overlaps = make(map[variablePair]Overlap)
	c.neighbors = make(map[primitives.Variable][]primitives.Variable)

	for _, a := range c.variables {
		if a.Direction != primitives.DirectionAcross {
			continue
		}
		for _, d := range c.variables {
			if d.Direction != primitives.DirectionDown {
				continue
			}
			if d.Col < a.Col || d.Col >= a.Col+a.Length {
				continue
			}
			if a.Row < d.Row || a.Row >= d.Row+d.Length {
				continue
			}
			c.overlaps[variablePair{a, d}] = Overlap{A: d.Col - a.Col, B: a.Row - d.Row}
			c.overlaps[variablePair{d, a}] = Overlap{A: a.Row - d.Row, B: d.Col - a.Col}
			c.neighbors[a] = append(c.neighbors[a], d)
			c.neighbors[d] = append(c.neighbors[d], a)
		}
	}

	for v := range c.neighbors {
		slices.SortFunc(c.neighbors[v], primitives.CompareVariables)
	}
}
