package render

import (
	"robot-battle/assets"
	"robot-battle/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/zyedidia/generic/mapset"
)

// hudHeight is the number of rows reserved below the map.
const hudHeight = 5

// Scene is everything DrawFrame needs to draw one frame.
type Scene struct {
	Grid     *gamemap.Grid
	Player   gamemap.Position
	Robots   []gamemap.Position
	Pinged   []gamemap.Position
	Charges  []gamemap.Position
	Keys     []gamemap.Position
	Movable  mapset.Set[gamemap.Position]
	ExitOpen bool
}

// Renderer draws the game map onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, camera: NewCamera(0, 0)}
	r.Resize()
	return r
}

// Resize refits the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(0, h-hudHeight)
}

// Camera returns the camera used by the last frame.
func (r *Renderer) Camera() *Camera { return r.camera }

// ScreenToCell converts a screen position to a grid cell. ok is false for
// positions on the HUD.
func (r *Renderer) ScreenToCell(sx, sy int) (gamemap.Position, bool) {
	if sy >= r.camera.ViewHeight || sx >= r.camera.ViewWidth {
		return gamemap.NoPosition, false
	}
	return r.camera.ScreenToCell(sx, sy), true
}

// DrawFrame renders the grid, the movable-cell highlight and all entities.
// The caller shows the screen after drawing the HUD.
func (r *Renderer) DrawFrame(sc Scene) {
	r.screen.Clear()
	r.camera.Follow(sc.Player, sc.Grid.Rows, sc.Grid.Cols)

	sc.Grid.ForEach(func(pos gamemap.Position, c gamemap.Cell) {
		sx, sy, onScreen := r.camera.WorldToScreen(pos)
		if !onScreen {
			return
		}
		style := tcell.StyleDefault.Background(r.background(sc, pos, c))
		switch c.Kind {
		case gamemap.KindChasm:
			r.putGlyph(sx, sy, assets.GlyphChasm, style)
		case gamemap.KindExit:
			r.putGlyph(sx, sy, assets.GlyphExit, style)
		default:
			r.putGlyph(sx, sy, "  ", style)
		}
	})

	pinged := mapset.New[gamemap.Position]()
	for _, p := range sc.Pinged {
		pinged.Put(p)
	}
	r.drawEntities(sc, sc.Charges, func(gamemap.Position) string { return assets.GlyphCharge })
	r.drawEntities(sc, sc.Keys, func(gamemap.Position) string { return assets.GlyphKey })
	r.drawEntities(sc, sc.Robots, func(p gamemap.Position) string {
		if pinged.Has(p) {
			return assets.GlyphPinged
		}
		return assets.GlyphRobot
	})
	r.drawEntities(sc, []gamemap.Position{sc.Player}, func(gamemap.Position) string { return assets.GlyphPlayer })
}

// background picks the cell colour, with movable cells highlighted.
func (r *Renderer) background(sc Scene, pos gamemap.Position, c gamemap.Cell) tcell.Color {
	if sc.Movable.Has(pos) {
		if c.IsHazard() {
			return colorMovableHazard
		}
		return colorMovable
	}
	switch c.Kind {
	case gamemap.KindChasm:
		return colorChasm
	case gamemap.KindExit:
		if sc.ExitOpen {
			return colorExitOpen
		}
		return colorExitLocked
	case gamemap.KindTexture:
		return TextureColor(c.Texture)
	}
	// Spawn cells lost their texture when the feature was placed.
	return TextureColor(0)
}

func (r *Renderer) drawEntities(sc Scene, positions []gamemap.Position, glyph func(gamemap.Position) string) {
	for _, p := range positions {
		if !sc.Grid.InBounds(p) {
			continue
		}
		sx, sy, onScreen := r.camera.WorldToScreen(p)
		if !onScreen {
			continue
		}
		g := glyph(p)
		bg := r.background(sc, p, sc.Grid.At(p))
		if g == assets.GlyphPinged {
			bg = colorPinged
		}
		r.putGlyph(sx, sy, g, tcell.StyleDefault.Background(bg))
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	putGlyph(r.screen, x, y, glyph, style)
}

func putGlyph(screen tcell.Screen, x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	if runewidth.RuneWidth(runes[0]) < 2 {
		// Narrow text is laid out rune by rune.
		for i, ch := range runes {
			screen.SetContent(x+i, y, ch, nil, style)
		}
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	screen.SetContent(x, y, mainc, combc, style)
	// Fill the second column to avoid rendering artifacts.
	screen.SetContent(x+1, y, ' ', nil, style)
}
