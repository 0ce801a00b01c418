package firework

import "github.com/lixenwraith/liberty-quiz/render"

// Surface is the 2-D rasterizing target of the simulation
// Size is read every tick, so host resizes take effect on the next spawn
type Surface interface {
	Size() (width, height float64)
	FillRect(x, y, w, h float64, col render.RGB, alpha float64)
	FillCircle(x, y, r float64, col render.RGB, alpha float64)
}
