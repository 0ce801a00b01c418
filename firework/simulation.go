package firework

import (
	"time"

	"github.com/lixenwraith/liberty-quiz/parameter"
	"github.com/lixenwraith/liberty-quiz/render"
)

// Hooks are optional callbacks invoked synchronously from Step
type Hooks struct {
	// OnLaunch runs after a new emitter is appended
	OnLaunch func(e *Emitter)
	// OnBurst runs on the tick an emitter bursts, after its particles took their first step
	OnBurst func(e *Emitter)
}

// Options configure a Simulation, zero values fall back to parameter defaults
type Options struct {
	SpawnInterval time.Duration
	Palette       []render.RGB
	TrailColor    render.RGB
	TrailAlpha    float64
	Hooks         Hooks
}

// DefaultOptions returns the stock palette, spawn interval and trail overlay
func DefaultOptions() Options {
	palette, _ := render.ParsePalette(parameter.DefaultPalette)
	return Options{
		SpawnInterval: parameter.SpawnInterval,
		Palette:       palette,
		TrailColor:    render.MustParseColor(parameter.TrailColor),
		TrailAlpha:    parameter.TrailAlpha,
	}
}

// Simulation advances all emitters once per Step and applies the spawn policy
// Not safe for concurrent use; the frame loop goroutine owns it
type Simulation struct {
	surface Surface
	rnd     Random
	opts    Options

	emitters  []*Emitter
	lastSpawn time.Time
	started   bool
}

// NewSimulation creates an empty simulation drawing to surface
func NewSimulation(surface Surface, rnd Random, opts Options) *Simulation {
	return &Simulation{
		surface:  surface,
		rnd:      rnd,
		opts:     opts.withDefaults(),
		emitters: make([]*Emitter, 0, 16),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.SpawnInterval <= 0 {
		o.SpawnInterval = def.SpawnInterval
	}
	if len(o.Palette) == 0 {
		o.Palette = def.Palette
	}
	if o.TrailAlpha <= 0 {
		o.TrailAlpha = def.TrailAlpha
	}
	return o
}

// Options returns the active options after defaults
func (s *Simulation) Options() Options {
	return s.opts
}

// SetOptions swaps tunables between steps; live emitters keep their colors
func (s *Simulation) SetOptions(opts Options) {
	s.opts = opts.withDefaults()
}

// Step runs one tick at time now
// The first call only fixes the spawn epoch, so the first launch comes one interval later
func (s *Simulation) Step(now time.Time) {
	if !s.started {
		s.lastSpawn = now
		s.started = true
	}

	w, h := s.surface.Size()

	// Partial overlay instead of a clear leaves fading trails
	s.surface.FillRect(0, 0, w, h, s.opts.TrailColor, s.opts.TrailAlpha)

	for _, e := range s.emitters {
		if e.Advance(s.rnd) && s.opts.Hooks.OnBurst != nil {
			s.opts.Hooks.OnBurst(e)
		}
	}

	for _, e := range s.emitters {
		e.Render(s.surface)
	}

	s.prune()

	if now.Sub(s.lastSpawn) > s.opts.SpawnInterval {
		s.spawn(w, h)
		s.lastSpawn = now
	}
}

// prune removes dead emitters keeping collection order
func (s *Simulation) prune() {
	live := s.emitters[:0]
	for _, e := range s.emitters {
		if e.Alive() {
			live = append(live, e)
		}
	}
	clear(s.emitters[len(live):])
	s.emitters = live
}

// spawn launches from a random x on the bottom edge toward the upper half
func (s *Simulation) spawn(w, h float64) *Emitter {
	x := s.rnd.Float64() * w
	targetY := s.rnd.Float64() * h / 2
	col := s.opts.Palette[s.rnd.IntN(len(s.opts.Palette))]
	return s.Launch(x, h, targetY, col)
}

// LaunchRandom launches one shell with spawn placement, outside the spawn cadence
func (s *Simulation) LaunchRandom() *Emitter {
	w, h := s.surface.Size()
	return s.spawn(w, h)
}

// Launch appends an emitter outside the spawn policy
func (s *Simulation) Launch(x, y, targetY float64, col render.RGB) *Emitter {
	e := NewEmitter(x, y, targetY, col)
	s.emitters = append(s.emitters, e)
	if s.opts.Hooks.OnLaunch != nil {
		s.opts.Hooks.OnLaunch(e)
	}
	return e
}

// Emitters returns live emitters in collection order, owned by the simulation
func (s *Simulation) Emitters() []*Emitter {
	return s.emitters
}

// ParticleCount sums live particles across all emitters
func (s *Simulation) ParticleCount() int {
	n := 0
	for _, e := range s.emitters {
		n += e.ParticleCount()
	}
	return n
}

// Reset drops every emitter and restarts the spawn epoch on the next Step
func (s *Simulation) Reset() {
	clear(s.emitters)
	s.emitters = s.emitters[:0]
	s.started = false
}
