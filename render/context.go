package render

import "time"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now         time.Time
	FrameNumber uint64

	// Terminal dimensions in cells
	Width  int
	Height int
}
