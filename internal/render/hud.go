package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is the player summary shown on the HUD.
type Status struct {
	SessionID    string
	Difficulty   string
	Turn         int
	Charges      int
	MaxCharges   int
	Keys         int
	KeysRequired int
	Robots       int
	Pinging      bool // waiting for a direction after 'p'
}

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(st Status, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudHeight

	// Separator line.
	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("[%s]  Charges: %d/%d  Keys: %d/%d  Robots: %d  Turn: %d",
		st.Difficulty, st.Charges, st.MaxCharges, st.Keys, st.KeysRequired, st.Robots, st.Turn)
	if st.Pinging {
		status += "  PING: pick a direction"
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	if st.SessionID != "" {
		w, _ := r.screen.Size()
		id := "#" + st.SessionID
		r.drawText(w-runewidth.StringWidth(id)-1, hudY+1, id, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	// Message log (last 3 messages).
	start := max(0, len(messages)-3)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	drawText(r.screen, x, y, text, style)
}

// drawText writes text at (x, y), advancing by each rune's display width.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
