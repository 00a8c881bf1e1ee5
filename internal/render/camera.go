package render

import "robot-battle/internal/gamemap"

// CellWidth is the number of terminal columns one grid cell occupies.
const CellWidth = 2

// Camera translates between grid positions and screen coordinates.
// Columns are multiplied by CellWidth because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetRow  int
	OffsetCol  int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera with its origin on cell (0,0).
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Follow keeps pos near the middle of the view without scrolling past the
// grid edges. A grid that fits the view is pinned to the top-left corner.
func (c *Camera) Follow(pos gamemap.Position, rows, cols int) {
	c.OffsetRow = follow(pos.Row, c.ViewHeight, rows)
	c.OffsetCol = follow(pos.Col, c.ViewWidth/CellWidth, cols)
}

func follow(p, view, size int) int {
	if size <= view {
		return 0
	}
	return max(0, min(p-view/2, size-view))
}

// WorldToScreen converts a grid position to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(pos gamemap.Position) (sx, sy int, visible bool) {
	sx = (pos.Col - c.OffsetCol) * CellWidth
	sy = pos.Row - c.OffsetRow
	visible = sx >= 0 && sx+CellWidth <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToCell converts screen (sx, sy) to the grid position under it.
func (c *Camera) ScreenToCell(sx, sy int) gamemap.Position {
	return CellFromMouse(sx, sy, CellWidth, 1).Add(c.OffsetRow, c.OffsetCol)
}

// CellFromMouse maps a pointer position to a cell when every cell is
// cellWidth × cellHeight pointer units: row = y/cellHeight, col = x/cellWidth.
func CellFromMouse(x, y, cellWidth, cellHeight int) gamemap.Position {
	return gamemap.Position{Row: y / cellHeight, Col: x / cellWidth}
}
