package render

import (
	"math"
)

// DefaultPixelSize is the logical width and height of one canvas pixel
// A terminal cell holds two pixels stacked vertically, so one cell spans 8x16 logical units
const DefaultPixelSize = 8.0

// Canvas is a logical-pixel drawing surface backed by a terminal grid
// Every terminal cell carries an upper and a lower pixel (half-block rendering)
// Logical coordinates have their origin at top-left, y grows downward
type Canvas struct {
	cols, rows int
	pixelSize  float64
	bg         RGB
	pixels     []RGB // cols * rows*2, row-major
}

// NewCanvas creates a canvas for a cols x rows terminal area
func NewCanvas(cols, rows int, pixelSize float64, bg RGB) *Canvas {
	if pixelSize <= 0 {
		pixelSize = DefaultPixelSize
	}
	c := &Canvas{pixelSize: pixelSize, bg: bg}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the pixel buffer for a new terminal size and clears it
// Negative sizes collapse to an empty canvas
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.pixels = make([]RGB, c.cols*c.rows*2)
	c.Clear()
}

// Clear fills all pixels with the background color
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = c.bg
	}
}

// Size returns the logical width and height of the canvas
func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols) * c.pixelSize, float64(c.rows*2) * c.pixelSize
}

// Cells returns the terminal grid dimensions
func (c *Canvas) Cells() (int, int) {
	return c.cols, c.rows
}

// PixelSize returns the logical size of one pixel
func (c *Canvas) PixelSize() float64 {
	return c.pixelSize
}

// Pixel returns the color at pixel coordinates, background when out of range
func (c *Canvas) Pixel(px, py int) RGB {
	if px < 0 || py < 0 || px >= c.cols || py >= c.rows*2 {
		return c.bg
	}
	return c.pixels[py*c.cols+px]
}

// CellColors returns the upper and lower pixel colors of a terminal cell
func (c *Canvas) CellColors(x, y int) (upper, lower RGB) {
	return c.Pixel(x, y*2), c.Pixel(x, y*2+1)
}

// blendAt alpha-blends col over the pixel, caller guarantees bounds
func (c *Canvas) blendAt(px, py int, col RGB, alpha float64) {
	idx := py*c.cols + px
	c.pixels[idx] = Blend(c.pixels[idx], col, alpha)
}

// pixelRange converts a logical span to a clipped half-open pixel range
func (c *Canvas) pixelRange(from, to float64, limit int) (int, int) {
	lo := int(math.Floor(from / c.pixelSize))
	hi := int(math.Ceil(to / c.pixelSize))
	return max(lo, 0), min(hi, limit)
}

// FillRect blends col at alpha over every pixel the rectangle touches
func (c *Canvas) FillRect(x, y, w, h float64, col RGB, alpha float64) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	x0, x1 := c.pixelRange(x, x+w, c.cols)
	y0, y1 := c.pixelRange(y, y+h, c.rows*2)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blendAt(px, py, col, alpha)
		}
	}
}

// FillCircle blends col at alpha over pixels whose centre lies within r of (x, y)
// The pixel under the centre is always painted so sub-pixel circles stay visible
func (c *Canvas) FillCircle(x, y, r float64, col RGB, alpha float64) {
	if alpha <= 0 || math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	r = math.Max(r, 0)
	cpx := int(math.Floor(x / c.pixelSize))
	cpy := int(math.Floor(y / c.pixelSize))

	x0, x1 := c.pixelRange(x-r, x+r, c.cols)
	y0, y1 := c.pixelRange(y-r, y+r, c.rows*2)
	rSq := r * r

	for py := y0; py < y1; py++ {
		dy := (float64(py)+0.5)*c.pixelSize - y
		for px := x0; px < x1; px++ {
			dx := (float64(px)+0.5)*c.pixelSize - x
			if dx*dx+dy*dy <= rSq || (px == cpx && py == cpy) {
				c.blendAt(px, py, col, alpha)
			}
		}
	}

	// Zero radius on an exact pixel boundary yields an empty scan range
	if cpx >= 0 && cpy >= 0 && cpx < c.cols && cpy < c.rows*2 &&
		(cpx < x0 || cpx >= x1 || cpy < y0 || cpy >= y1) {
		c.blendAt(cpx, cpy, col, alpha)
	}
}
