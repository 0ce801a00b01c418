package firework

import (
	"github.com/lixenwraith/liberty-quiz/parameter"
	"github.com/lixenwraith/liberty-quiz/render"
)

// Particle is a single fading point produced by a burst
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Color   render.RGB
	Gravity float64
	Opacity float64
	Decay   float64 // opacity lost per tick, always in [ParticleDecayMin, ParticleDecayMax)
}

// NewParticle creates a particle at the origin with random velocity and decay
// Draw order is vx, vy, decay
func NewParticle(x, y float64, col render.RGB, rnd Random) Particle {
	spread := parameter.ParticleSpeedSpread
	return Particle{
		X:       x,
		Y:       y,
		VX:      uniform(rnd, -spread, spread),
		VY:      uniform(rnd, -spread, spread),
		Radius:  parameter.ParticleRadius,
		Color:   col,
		Gravity: parameter.ParticleGravity,
		Opacity: 1,
		Decay:   uniform(rnd, parameter.ParticleDecayMin, parameter.ParticleDecayMax),
	}
}

// Advance integrates one tick: position by velocity, velocity by gravity, opacity by decay
func (p *Particle) Advance() {
	p.X += p.VX
	p.Y += p.VY
	p.VY += p.Gravity
	p.Opacity -= p.Decay
}

// Expired reports whether the particle has fully faded
func (p *Particle) Expired() bool {
	return p.Opacity <= 0
}

// Render draws the particle at its current opacity
func (p *Particle) Render(s Surface) {
	s.FillCircle(p.X, p.Y, p.Radius, p.Color, p.Opacity)
}
