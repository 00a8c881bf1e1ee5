package gamemap

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned by checked lookups given a position outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrMalformed is returned when a label matrix cannot be turned into a Grid.
	ErrMalformed = errors.New("malformed grid")
)

// Grid is the rows × cols cell matrix of one game session.
type Grid struct {
	Rows, Cols int
	Tokens     Tokens
	cells      [][]Cell
}

// New creates a grid filled with texture 0. Panics on non-positive dimensions.
func New(rows, cols int, tokens Tokens) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("gamemap: invalid dimensions %dx%d", rows, cols))
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = MakeTexture(0)
		}
	}
	return &Grid{Rows: rows, Cols: cols, Tokens: tokens, cells: cells}
}

// InBounds reports whether pos lies within the grid.
func (g *Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Rows && pos.Col >= 0 && pos.Col < g.Cols
}

// At returns the cell at pos. Panics if out of bounds.
func (g *Grid) At(pos Position) Cell {
	return g.cells[pos.Row][pos.Col]
}

// Set replaces the cell at pos. Panics if out of bounds.
func (g *Grid) Set(pos Position, c Cell) {
	g.cells[pos.Row][pos.Col] = c
}

// CellAt returns the cell at pos, or ErrOutOfBounds.
func (g *Grid) CellAt(pos Position) (Cell, error) {
	if !g.InBounds(pos) {
		return Cell{}, fmt.Errorf("cell at %s in %dx%d grid: %w", pos, g.Rows, g.Cols, ErrOutOfBounds)
	}
	return g.cells[pos.Row][pos.Col], nil
}

// LabelAt returns the string label of the cell at pos, or ErrOutOfBounds.
func (g *Grid) LabelAt(pos Position) (string, error) {
	c, err := g.CellAt(pos)
	if err != nil {
		return "", err
	}
	return g.Tokens.Label(c), nil
}

// IsHazard reports whether the cell at pos is a chasm.
func (g *Grid) IsHazard(pos Position) (bool, error) {
	c, err := g.CellAt(pos)
	if err != nil {
		return false, err
	}
	return c.IsHazard(), nil
}

// ForEach calls fn for every cell in row-major order.
func (g *Grid) ForEach(fn func(pos Position, c Cell)) {
	for r, row := range g.cells {
		for c, cell := range row {
			fn(Position{Row: r, Col: c}, cell)
		}
	}
}

// Count returns the number of cells of kind k.
func (g *Grid) Count(k Kind) int {
	n := 0
	g.ForEach(func(_ Position, c Cell) {
		if c.Kind == k {
			n++
		}
	})
	return n
}

// Labels renders the grid back to its label matrix.
func (g *Grid) Labels() [][]string {
	out := make([][]string, g.Rows)
	for r, row := range g.cells {
		out[r] = make([]string, g.Cols)
		for c, cell := range row {
			out[r][c] = g.Tokens.Label(cell)
		}
	}
	return out
}

// FromLabels builds a grid from a label matrix using the given tokens.
func FromLabels(labels [][]string, tokens Tokens) (*Grid, error) {
	if err := tokens.Validate(); err != nil {
		return nil, err
	}
	if len(labels) == 0 || len(labels[0]) == 0 {
		return nil, fmt.Errorf("%w: empty label matrix", ErrMalformed)
	}
	g := New(len(labels), len(labels[0]), tokens)
	for r, row := range labels {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, r, len(row), g.Cols)
		}
		for c, label := range row {
			cell, err := tokens.Parse(label)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			g.cells[r][c] = cell
		}
	}
	return g, nil
}
