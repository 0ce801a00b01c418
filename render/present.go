package render

import "github.com/gdamore/tcell/v2"

// HalfBlock is drawn in every canvas cell: fg paints the upper pixel, bg the lower
const HalfBlock = '▀'

// Present copies the canvas onto the screen, clipped to both sizes
func Present(screen Screen, c *Canvas) {
	sw, sh := screen.Size()
	cols, rows := c.Cells()
	w, h := min(sw, cols), min(sh, rows)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			upper, lower := c.CellColors(x, y)
			style := tcell.StyleDefault.Foreground(upper.Tcell()).Background(lower.Tcell())
			screen.SetContent(x, y, HalfBlock, nil, style)
		}
	}
}
