package render

import "github.com/gdamore/tcell/v2"

// Screen is the subset of tcell.Screen renderers draw into
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// SystemRenderer is implemented by components with visual output
type SystemRenderer interface {
	Render(ctx RenderContext, screen Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
