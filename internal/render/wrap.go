package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapText splits text into lines no wider than maxWidth display columns,
// breaking only between words. A word wider than maxWidth gets a line of
// its own rather than being split.
func WrapText(text string, maxWidth int) []string {
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+w > maxWidth {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
