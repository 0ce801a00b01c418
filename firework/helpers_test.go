package firework

import "github.com/lixenwraith/liberty-quiz/render"

// seqRandom replays a fixed sequence of Float64 values, wrapping around
type seqRandom struct {
	vals []float64
	pos  int
}

func (r *seqRandom) Float64() float64 {
	v := r.vals[r.pos%len(r.vals)]
	r.pos++
	return v
}

func (r *seqRandom) IntN(n int) int {
	return int(r.Float64() * float64(n))
}

type drawOp struct {
	kind       string // "rect" or "circle"
	x, y, w, h float64
	r          float64
	col        render.RGB
	alpha      float64
}

// recordSurface captures draw calls for assertions
type recordSurface struct {
	w, h float64
	ops  []drawOp
}

func newRecordSurface(w, h float64) *recordSurface {
	return &recordSurface{w: w, h: h}
}

func (s *recordSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordSurface) FillRect(x, y, w, h float64, col render.RGB, alpha float64) {
	s.ops = append(s.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h, col: col, alpha: alpha})
}

func (s *recordSurface) FillCircle(x, y, r float64, col render.RGB, alpha float64) {
	s.ops = append(s.ops, drawOp{kind: "circle", x: x, y: y, r: r, col: col, alpha: alpha})
}

func (s *recordSurface) count(kind string) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (s *recordSurface) reset() {
	s.ops = s.ops[:0]
}
