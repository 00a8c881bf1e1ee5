package game

import (
	"fmt"
	"robot-battle/assets"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// menuInput applies one key press to the difficulty menu. It returns the
// new selection, whether it was confirmed, and whether the player quit.
func menuInput(ev *tcell.EventKey, selected, n int) (next int, chosen, quit bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return (selected - 1 + n) % n, false, false
	case tcell.KeyDown:
		return (selected + 1) % n, false, false
	case tcell.KeyEnter:
		return selected, true, false
	case tcell.KeyEscape:
		return selected, false, true
	}
	switch r := ev.Rune(); {
	case r == 'k' || r == 'K':
		return (selected - 1 + n) % n, false, false
	case r == 'j' || r == 'J':
		return (selected + 1) % n, false, false
	case r == 'q' || r == 'Q':
		return selected, false, true
	case r >= '1' && r <= '9':
		if idx := int(r - '1'); idx < n {
			return idx, true, false
		}
	}
	return selected, false, false
}

// runDifficultySelect shows the difficulty menu and blocks until the player
// picks one. Returns false if the player quits without selecting.
func (g *Game) runDifficultySelect() bool {
	names := g.opts.Levels.Names()
	if len(names) == 0 {
		return false
	}
	selected := max(0, slices.Index(names, g.difficulty))
	for {
		g.drawDifficultySelect(names, selected)
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			next, chosen, quit := menuInput(ev, selected, len(names))
			if quit {
				return false
			}
			selected = next
			if chosen {
				g.difficulty = names[selected]
				return true
			}
		}
	}
}

var (
	menuAccent = tcell.NewRGBColor(120, 200, 255)
	menuTitle  = tcell.StyleDefault.Foreground(menuAccent).Bold(true)
	menuItem   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	menuHint   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	menuCursor = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(menuAccent)
)

// drawDifficultySelect lists names with a blurb under each, the selected
// entry highlighted.
func (g *Game) drawDifficultySelect(names []string, selected int) {
	g.screen.Clear()
	w, _ := g.screen.Size()
	centered := func(row int, text string, style tcell.Style) {
		putText(g.screen, max(0, (w-runewidth.StringWidth(text))/2), row, text, style)
	}

	centered(1, assets.GlyphRobot+" "+translate("ROBOT BATTLE")+" "+assets.GlyphRobot, menuTitle)
	centered(2, translate("Choose your difficulty"), menuHint)

	row := 4
	for i, name := range names {
		marker, style := "  ", menuItem
		if i == selected {
			marker, style = "► ", menuCursor
		}
		putText(g.screen, 2, row, fmt.Sprintf("%s[%d] %s", marker, i+1, name), style)
		if blurb, ok := assets.DifficultyBlurbs[name]; ok {
			putText(g.screen, 8, row+1, translate(blurb), menuHint)
		}
		row += 3
	}
	centered(row+1, translate("[j/k or ↑/↓] Navigate   [1-9] Quick-select   [Enter] Confirm   [q] Quit"), menuHint)
	g.screen.Show()
}

// putText writes text from (x, y), advancing by display width.
func putText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x += max(1, runewidth.RuneWidth(ch))
	}
}
