package firework

import (
	"github.com/lixenwraith/liberty-quiz/parameter"
	"github.com/lixenwraith/liberty-quiz/render"
)

// phase is the emitter state: ascending or exploded
// Only the ascending case can produce a burst, and nothing produces ascending again
type phase interface {
	isPhase()
}

type ascending struct{}

// exploded owns the burst particles for the rest of the emitter's life
type exploded struct {
	particles []Particle
}

func (ascending) isPhase() {}
func (*exploded) isPhase() {}

// Emitter is a rising shell that bursts into particles at its target height
type Emitter struct {
	X, Y    float64
	TargetY float64
	Color   render.RGB

	phase phase
}

// NewEmitter creates an ascending emitter with no particles
func NewEmitter(x, y, targetY float64, col render.RGB) *Emitter {
	return &Emitter{
		X:       x,
		Y:       y,
		TargetY: targetY,
		Color:   col,
		phase:   ascending{},
	}
}

// Advance runs one tick: ascend or burst, then advance particles, then prune faded ones
// Returns true on the single tick the burst happens
func (e *Emitter) Advance(rnd Random) bool {
	switch st := e.phase.(type) {
	case ascending:
		// y grows downward, so rising means decreasing y
		if e.Y > e.TargetY {
			e.Y -= parameter.ShellAscentSpeed
			return false
		}
		burst := e.burst(rnd)
		e.phase = burst
		burst.step()
		return true
	case *exploded:
		st.step()
	}
	return false
}

// burst creates the fixed particle set at the current position
func (e *Emitter) burst(rnd Random) *exploded {
	ps := make([]Particle, parameter.BurstParticleCount)
	for i := range ps {
		ps[i] = NewParticle(e.X, e.Y, e.Color, rnd)
	}
	return &exploded{particles: ps}
}

// step advances every particle, then drops expired ones keeping order
func (ex *exploded) step() {
	for i := range ex.particles {
		ex.particles[i].Advance()
	}

	kept := ex.particles[:0]
	for _, p := range ex.particles {
		if !p.Expired() {
			kept = append(kept, p)
		}
	}
	ex.particles = kept
}

// Exploded reports whether the burst has happened
func (e *Emitter) Exploded() bool {
	_, ok := e.phase.(*exploded)
	return ok
}

// Particles returns the live particles in collection order, nil before the burst
// The slice is owned by the emitter and valid until the next Advance
func (e *Emitter) Particles() []Particle {
	if ex, ok := e.phase.(*exploded); ok {
		return ex.particles
	}
	return nil
}

// ParticleCount returns the number of live particles
func (e *Emitter) ParticleCount() int {
	return len(e.Particles())
}

// Alive is true while ascending or while any particle remains
func (e *Emitter) Alive() bool {
	switch st := e.phase.(type) {
	case ascending:
		return true
	case *exploded:
		return len(st.particles) > 0
	}
	return false
}

// Render draws the shell while ascending, then every particle
func (e *Emitter) Render(s Surface) {
	if _, ok := e.phase.(ascending); ok {
		s.FillCircle(e.X, e.Y, parameter.ShellRadius, e.Color, 1)
	}
	if ex, ok := e.phase.(*exploded); ok {
		for i := range ex.particles {
			ex.particles[i].Render(s)
		}
	}
}
