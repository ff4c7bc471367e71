package xwsolver

import "strings"

const blockedCell = '█'

// LetterGrid projects an assignment onto the cell matrix. Blocked cells and
// fillable cells not covered by any assigned slot hold zero runes.
func (c *Crossword) LetterGrid(assignment Assignment) [][]rune {
	letters := make([][]rune, c.Height)
	for i := range letters {
		letters[i] = make([]rune, c.Width)
	}
	for v, word := range assignment {
		for k, cell := range v.Cells() {
			letters[cell.Row][cell.Col] = rune(word[k])
		}
	}
	return letters
}

// Render draws an assignment as one text row per grid row: letters on
// filled cells, spaces on unfilled fillable cells, solid blocks elsewhere.
func (c *Crossword) Render(assignment Assignment) string {
	letters := c.LetterGrid(assignment)
	lines := make([]string, c.Height)
	for i := 0; i < c.Height; i++ {
		row := make([]rune, c.Width)
		for j := 0; j < c.Width; j++ {
			switch {
			case !c.structure[i][j]:
				row[j] = blockedCell
			case letters[i][j] == 0:
				row[j] = ' '
			default:
				row[j] = letters[i][j]
			}
		}
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}
