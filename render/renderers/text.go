package renderers

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/liberty-quiz/render"
)

// drawText writes s starting at column x and returns the column after it
// Cells that would fall off-screen are dropped, zero-width runes are skipped
func drawText(screen render.Screen, x, y int, s string, style tcell.Style) int {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= 0 && x+rw <= w {
			screen.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x
}

// drawCentered writes s horizontally centered within [x0, x0+width)
func drawCentered(screen render.Screen, x0, width, y int, s string, style tcell.Style) {
	x := x0 + (width-runewidth.StringWidth(s))/2
	drawText(screen, max(x, x0), y, s, style)
}

// fillRow paints blanks across [x0, x1) on row y
func fillRow(screen render.Screen, x0, x1, y int, style tcell.Style) {
	for x := x0; x < x1; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// wrap breaks s into lines no wider than width, splitting on spaces
// A single word wider than width is truncated with an ellipsis
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curW := 0

	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word = runewidth.Truncate(word, width, "…")
			ww = runewidth.StringWidth(word)
		}
		switch {
		case curW == 0:
			cur.WriteString(word)
			curW = ww
		case curW+1+ww <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + ww
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curW = ww
		}
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
