package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/liberty-quiz/parameter"
	"github.com/lixenwraith/liberty-quiz/render"
	"github.com/lixenwraith/liberty-quiz/status"
)

// HUDRenderer lists live metrics in the top-left corner, toggled at runtime
type HUDRenderer struct {
	registry *status.Registry
	muted    func() bool
	visible  bool
}

// NewHUDRenderer creates a hidden HUD; muted reports the audio flag and may be nil
func NewHUDRenderer(registry *status.Registry, muted func() bool) *HUDRenderer {
	return &HUDRenderer{registry: registry, muted: muted}
}

// Toggle flips visibility
func (r *HUDRenderer) Toggle() { r.visible = !r.visible }

// IsVisible implements VisibilityToggle
func (r *HUDRenderer) IsVisible() bool { return r.visible }

// Lines returns the rows the HUD draws
func (r *HUDRenderer) Lines() []string {
	lines := append([]string{parameter.HUDTitle}, r.registry.Lines()...)
	if r.muted != nil {
		if r.muted() {
			lines = append(lines, parameter.AudioOffText)
		} else {
			lines = append(lines, parameter.AudioOnText)
		}
	}
	return lines
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, screen render.Screen) {
	lines := r.Lines()
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}

	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(render.RgbHUDText)
	for y, l := range lines {
		if y >= ctx.Height {
			return
		}
		fillRow(screen, 0, min(width+2, ctx.Width), y, style)
		drawText(screen, 1, y, l, style)
	}
}
