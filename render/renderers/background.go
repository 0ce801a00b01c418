package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/liberty-quiz/render"
)

// BackgroundRenderer fills the whole screen with the night sky color
type BackgroundRenderer struct {
	style tcell.Style
}

// NewBackgroundRenderer creates a background layer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{style: tcell.StyleDefault.Background(render.RgbBackground)}
}

// Render implements SystemRenderer
func (r *BackgroundRenderer) Render(ctx render.RenderContext, screen render.Screen) {
	for y := 0; y < ctx.Height; y++ {
		fillRow(screen, 0, ctx.Width, y, r.style)
	}
}
