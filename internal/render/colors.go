package render

import "github.com/gdamore/tcell/v2"

// TexturePalette holds the background colour of each floor texture id.
// Ids past the end wrap around.
var TexturePalette = []tcell.Color{
	tcell.NewRGBColor(58, 52, 46),
	tcell.NewRGBColor(64, 58, 50),
	tcell.NewRGBColor(52, 50, 56),
	tcell.NewRGBColor(60, 56, 60),
	tcell.NewRGBColor(48, 54, 50),
	tcell.NewRGBColor(70, 62, 52),
}

var (
	colorChasm         = tcell.NewRGBColor(8, 8, 12)
	colorMovable       = tcell.NewRGBColor(62, 102, 70)
	colorMovableHazard = tcell.NewRGBColor(120, 40, 40)
	colorPinged        = tcell.NewRGBColor(150, 60, 170)
	colorExitLocked    = tcell.NewRGBColor(110, 70, 30)
	colorExitOpen      = tcell.NewRGBColor(40, 140, 80)
)

// TextureColor returns the background colour of texture id.
func TextureColor(id int) tcell.Color {
	if id < 0 {
		id = -id
	}
	return TexturePalette[id%len(TexturePalette)]
}
