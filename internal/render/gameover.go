package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Snapshot captures the background colour of every screen cell, indexed
// [x][y] so that GaussianBlur smears it horizontally.
func Snapshot(screen tcell.Screen) [][]tcell.Color {
	w, h := screen.Size()
	img := make([][]tcell.Color, w)
	for x := range img {
		img[x] = make([]tcell.Color, h)
		for y := range img[x] {
			_, _, style, _ := screen.GetContent(x, y)
			_, bg, _ := style.Decompose()
			img[x][y] = bg
		}
	}
	return img
}

// DrawGameOver paints the blurred snapshot, the outcome title, the wrapped
// message and the restart hint, then shows the screen.
func DrawGameOver(screen tcell.Screen, snapshot [][]tcell.Color, won bool, message string) {
	screen.Clear()
	blurred := GaussianBlur(snapshot, BlurSigma)
	for x, col := range blurred {
		for y, c := range col {
			screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(c))
		}
	}

	w, h := screen.Size()
	title := "GAME OVER"
	titleColor := tcell.NewRGBColor(220, 20, 60)
	if won {
		title = "YOU WIN"
		titleColor = tcell.NewRGBColor(0, 255, 0)
	}
	lines := WrapText(message, max(1, w-4))

	y := max(0, h/2-(len(lines)+4)/2)
	centerText(screen, blurred, y, title, tcell.StyleDefault.Foreground(titleColor).Bold(true))
	y += 2
	for _, line := range lines {
		centerText(screen, blurred, y, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		y++
	}
	y++
	centerText(screen, blurred, y, "[R] Restart  [Q] Quit", tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	screen.Show()
}

// centerText draws text centred on row y, keeping the blurred colour
// behind each character.
func centerText(screen tcell.Screen, bg [][]tcell.Color, y int, text string, style tcell.Style) {
	w, _ := screen.Size()
	x := max(0, (w-runewidth.StringWidth(text))/2)
	for _, ch := range text {
		s := style
		if x < len(bg) && y < len(bg[x]) {
			s = s.Background(bg[x][y])
		}
		screen.SetContent(x, y, ch, nil, s)
		x += max(1, runewidth.RuneWidth(ch))
	}
}
