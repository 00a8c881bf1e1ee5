package gamemap

import "fmt"

// Position is a 0-indexed (row, col) grid coordinate.
type Position struct {
	Row, Col int
}

// NoPosition is returned where a position is looked up but not found.
var NoPosition = Position{Row: -1, Col: -1}

// Add returns p shifted by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
