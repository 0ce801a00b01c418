package renderers

import (
	"github.com/lixenwraith/liberty-quiz/render"
)

// FireworksRenderer presents the particle canvas while the celebration is visible
// The simulation keeps stepping while hidden; only presentation is gated
type FireworksRenderer struct {
	canvas  *render.Canvas
	visible func() bool
}

// NewFireworksRenderer creates the layer, a nil visible func means always shown
func NewFireworksRenderer(canvas *render.Canvas, visible func() bool) *FireworksRenderer {
	return &FireworksRenderer{canvas: canvas, visible: visible}
}

// IsVisible implements VisibilityToggle
func (r *FireworksRenderer) IsVisible() bool {
	return r.visible == nil || r.visible()
}

// Render implements SystemRenderer
func (r *FireworksRenderer) Render(ctx render.RenderContext, screen render.Screen) {
	render.Present(screen, r.canvas)
}
