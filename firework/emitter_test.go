package firework

import (
	"math"
	"testing"

	"github.com/lixenwraith/liberty-quiz/parameter"
	"github.com/lixenwraith/liberty-quiz/render"
)

var testColor = render.RGB{R: 255, G: 0, B: 0}

func TestEmitterAscends(t *testing.T) {
	e := NewEmitter(10, 100, 50, testColor)
	rnd := NewRandom(1)

	if burst := e.Advance(rnd); burst {
		t.Fatal("Expected no burst above target")
	}
	if e.Y != 100-parameter.ShellAscentSpeed {
		t.Errorf("Expected y %f, got %f", 100-parameter.ShellAscentSpeed, e.Y)
	}
	if e.Exploded() {
		t.Error("Emitter should still be ascending")
	}
	if e.ParticleCount() != 0 {
		t.Errorf("Expected no particles while ascending, got %d", e.ParticleCount())
	}
}

// TestEmitterBurstsWhenPassingTarget verifies the burst fires once y has reached or passed the target
func TestEmitterBurstsWhenPassingTarget(t *testing.T) {
	e := NewEmitter(10, 102, 100, testColor)
	rnd := NewRandom(1)

	// 102 > 100: ascend to 98
	if e.Advance(rnd) {
		t.Fatal("Unexpected burst on first tick")
	}
	if e.Y != 98 {
		t.Fatalf("Expected y 98, got %f", e.Y)
	}

	// 98 is past the target: burst at 98
	if !e.Advance(rnd) {
		t.Fatal("Expected burst on second tick")
	}
	if e.Y != 98 {
		t.Errorf("Emitter must not move on burst tick, y=%f", e.Y)
	}
}

func TestEmitterExplodesExactlyOnce(t *testing.T) {
	e := NewEmitter(10, 50, 50, testColor)
	rnd := NewRandom(3)

	if !e.Advance(rnd) {
		t.Fatal("Expected burst at target height")
	}
	if got := e.ParticleCount(); got != parameter.BurstParticleCount {
		t.Fatalf("Expected %d particles after burst, got %d", parameter.BurstParticleCount, got)
	}

	for i := 0; i < 200; i++ {
		if e.Advance(rnd) {
			t.Fatalf("Second burst on tick %d", i+2)
		}
		if e.ParticleCount() > parameter.BurstParticleCount {
			t.Fatalf("Particle count grew to %d", e.ParticleCount())
		}
		if !e.Exploded() {
			t.Fatal("Exploded flag reverted")
		}
	}
}

// TestEmitterBurstOrigin checks every particle starts at the burst position
// Particles take their first step on the burst tick, so the origin is reconstructed from velocity
func TestEmitterBurstOrigin(t *testing.T) {
	e := NewEmitter(123, 45, 60, testColor)
	rnd := NewRandom(9)
	e.Advance(rnd)

	ps := e.Particles()
	if len(ps) != parameter.BurstParticleCount {
		t.Fatalf("Expected %d particles, got %d", parameter.BurstParticleCount, len(ps))
	}
	for i, p := range ps {
		originX := p.X - p.VX
		originY := p.Y - (p.VY - p.Gravity)
		if math.Abs(originX-123) > epsilon || math.Abs(originY-45) > epsilon {
			t.Fatalf("Particle %d origin (%f,%f), want (123,45)", i, originX, originY)
		}
		if p.Color != testColor {
			t.Fatalf("Particle %d color %v, want %v", i, p.Color, testColor)
		}
		if math.Abs(p.Opacity-(1-p.Decay)) > epsilon {
			t.Fatalf("Particle %d should have taken exactly one step, opacity %f", i, p.Opacity)
		}
	}
}

func TestEmitterLiveness(t *testing.T) {
	e := NewEmitter(0, 200, 0, testColor)
	rnd := NewRandom(5)

	// Ascending with zero particles is alive
	if !e.Alive() {
		t.Fatal("Ascending emitter should be alive")
	}

	ticks := 0
	for !e.Exploded() {
		e.Advance(rnd)
		ticks++
		if !e.Exploded() && !e.Alive() {
			t.Fatal("Ascending emitter reported dead")
		}
		if ticks > 100 {
			t.Fatal("Emitter never burst")
		}
	}

	for e.ParticleCount() > 0 {
		if !e.Alive() {
			t.Fatalf("Emitter with %d particles reported dead", e.ParticleCount())
		}
		e.Advance(rnd)
		ticks++
		if ticks > 300 {
			t.Fatal("Particles never expired")
		}
	}

	if e.Alive() {
		t.Error("Exploded emitter without particles should be dead")
	}
}

func TestEmitterRender(t *testing.T) {
	s := newRecordSurface(640, 480)
	e := NewEmitter(30, 40, 0, testColor)

	e.Render(s)
	if len(s.ops) != 1 {
		t.Fatalf("Expected one shell draw, got %d", len(s.ops))
	}
	shell := s.ops[0]
	if shell.kind != "circle" || shell.r != parameter.ShellRadius || shell.alpha != 1 || shell.x != 30 || shell.y != 40 {
		t.Errorf("Unexpected shell draw: %+v", shell)
	}

	e.Y = 0
	e.Advance(NewRandom(2))
	s.reset()
	e.Render(s)

	if got := s.count("circle"); got != parameter.BurstParticleCount {
		t.Fatalf("Expected %d particle draws after burst, got %d", parameter.BurstParticleCount, got)
	}
	for _, op := range s.ops {
		if op.r != parameter.ParticleRadius {
			t.Fatalf("Shell drawn after burst: %+v", op)
		}
	}
}
