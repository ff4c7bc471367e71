package primitives

import (
	"cmp"
	"fmt"
)

// Direction is an enum representing the direction of a slot in a grid, either 'Across' or 'Down'.
type Direction int

const (
	DirectionAcross Direction = iota
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionAcross {
		return "across"
	}
	return "down"
}

// Cell is a single (row, col) position in a grid.
type Cell struct {
	Row int
	Col int
}

// Variable is one slot of a crossword: a maximal run of fillable cells in one
// direction, to which exactly one word gets assigned.
//
// A Variable is a value: two variables are the same slot iff all four fields
// match, so it can be used directly as a map key.
type Variable struct {
	Row       int
	Col       int
	Direction Direction
	Length    int
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d, %d) %s : %d", v.Row, v.Col, v.Direction, v.Length)
}

// Cells returns the grid cells covered by the slot, in slot order.
func (v Variable) Cells() []Cell {
	cells := make([]Cell, v.Length)
	for k := range cells {
		if v.Direction == DirectionAcross {
			cells[k] = Cell{Row: v.Row, Col: v.Col + k}
		} else {
			cells[k] = Cell{Row: v.Row + k, Col: v.Col}
		}
	}
	return cells
}

// CompareVariables orders variables by (row, col, direction, length). The
// solver iterates slots in this order everywhere, which is what makes a
// solve reproducible for a fixed input.
func CompareVariables(a, b Variable) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Col, b.Col); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Direction, b.Direction); c != 0 {
		return c
	}
	return cmp.Compare(a.Length, b.Length)
}
