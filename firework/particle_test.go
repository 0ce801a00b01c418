package firework

import (
	"math"
	"testing"

	"github.com/lixenwraith/liberty-quiz/parameter"
	"github.com/lixenwraith/liberty-quiz/render"
)

const epsilon = 1e-9

func TestNewParticleDrawOrder(t *testing.T) {
	rnd := &seqRandom{vals: []float64{0, 0.5, 0.75}}
	p := NewParticle(10, 20, render.RGBWhite, rnd)

	if p.X != 10 || p.Y != 20 {
		t.Errorf("Expected origin (10,20), got (%f,%f)", p.X, p.Y)
	}
	if math.Abs(p.VX-(-3)) > epsilon {
		t.Errorf("Expected vx -3, got %f", p.VX)
	}
	if math.Abs(p.VY) > epsilon {
		t.Errorf("Expected vy 0, got %f", p.VY)
	}
	wantDecay := parameter.ParticleDecayMin + 0.75*(parameter.ParticleDecayMax-parameter.ParticleDecayMin)
	if math.Abs(p.Decay-wantDecay) > epsilon {
		t.Errorf("Expected decay %f, got %f", wantDecay, p.Decay)
	}
	if p.Opacity != 1 {
		t.Errorf("Expected initial opacity 1, got %f", p.Opacity)
	}
	if p.Radius != parameter.ParticleRadius {
		t.Errorf("Expected radius %f, got %f", parameter.ParticleRadius, p.Radius)
	}
}

func TestParticleAdvanceTrajectory(t *testing.T) {
	p := Particle{X: 0, Y: 0, VX: 1, VY: -2, Gravity: 0.5, Opacity: 1, Decay: 0.25}

	p.Advance()
	if p.X != 1 || p.Y != -2 || p.VY != -1.5 || p.Opacity != 0.75 {
		t.Fatalf("Unexpected state after first tick: %+v", p)
	}

	p.Advance()
	if p.X != 2 || p.Y != -3.5 || p.VY != -1 || p.Opacity != 0.5 {
		t.Fatalf("Unexpected state after second tick: %+v", p)
	}
}

func TestParticleVelocityAndDecayBounds(t *testing.T) {
	rnd := NewRandom(7)
	spread := parameter.ParticleSpeedSpread

	for i := 0; i < 5000; i++ {
		p := NewParticle(0, 0, render.RGBWhite, rnd)
		if p.VX < -spread || p.VX >= spread || p.VY < -spread || p.VY >= spread {
			t.Fatalf("Velocity out of range: (%f,%f)", p.VX, p.VY)
		}
		if p.Decay < parameter.ParticleDecayMin || p.Decay >= parameter.ParticleDecayMax {
			t.Fatalf("Decay out of range: %f", p.Decay)
		}
	}
}

// TestParticleDecayMonotonic verifies opacity strictly decreases and expiry is bounded
func TestParticleDecayMonotonic(t *testing.T) {
	rnd := NewRandom(42)
	// Opacity after k ticks is 1 - k*decay, decay in [min, max)
	minTicks := int(math.Floor(1/parameter.ParticleDecayMax)) - 1
	maxTicks := int(math.Ceil(1/parameter.ParticleDecayMin)) + 1

	for i := 0; i < 1000; i++ {
		p := NewParticle(50, 50, render.RGBWhite, rnd)
		prev := p.Opacity
		ticks := 0

		for !p.Expired() {
			p.Advance()
			ticks++

			if p.Opacity >= prev {
				t.Fatalf("Opacity did not decrease: %f -> %f", prev, p.Opacity)
			}
			if p.Expired() != (p.Opacity <= 0) {
				t.Fatalf("Expired disagrees with opacity %f", p.Opacity)
			}
			prev = p.Opacity

			if ticks > maxTicks {
				t.Fatalf("Particle with decay %f still alive after %d ticks", p.Decay, ticks)
			}
		}

		if ticks < minTicks {
			t.Errorf("Particle with decay %f expired early at tick %d", p.Decay, ticks)
		}
	}
}

func TestParticleRender(t *testing.T) {
	s := newRecordSurface(100, 100)
	p := Particle{X: 3, Y: 4, Radius: 2, Color: render.RGB{R: 255}, Opacity: 0.4}

	p.Render(s)

	if len(s.ops) != 1 {
		t.Fatalf("Expected one draw call, got %d", len(s.ops))
	}
	op := s.ops[0]
	if op.kind != "circle" || op.x != 3 || op.y != 4 || op.r != 2 || op.alpha != 0.4 || op.col != p.Color {
		t.Errorf("Unexpected draw call: %+v", op)
	}
}
