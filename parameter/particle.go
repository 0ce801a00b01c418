package parameter

import (
	"time"
)

// Firework Shell (Emitter)
const (
	// ShellAscentSpeed is the upward travel per tick in logical pixels
	ShellAscentSpeed = 4.0
	// ShellRadius is the radius of the rising shell before it bursts
	ShellRadius = 3.0
	// BurstParticleCount is the number of particles created by a single burst
	BurstParticleCount = 100
)

// Burst Particle
const (
	// ParticleRadius is the fixed draw radius of a burst particle
	ParticleRadius = 2.0
	// ParticleGravity is added to vertical velocity every tick (y grows downward)
	ParticleGravity = 0.05
	// ParticleSpeedSpread is the half-width of the uniform velocity range per axis: [-spread, +spread)
	ParticleSpeedSpread = 3.0
	// ParticleDecayMin/Max bound the per-tick opacity loss: [min, max)
	// 1/max..1/min gives 34..100 ticks of life
	ParticleDecayMin = 0.01
	ParticleDecayMax = 0.03
)

// Spawn Policy & Trails
const (
	// SpawnInterval is the minimum gap between two shell launches
	SpawnInterval = 500 * time.Millisecond
	// TrailAlpha is the opacity of the dark overlay painted every tick, producing fading trails
	TrailAlpha = 0.1
)

// DefaultPalette is the set of shell colors a launch picks from uniformly
var DefaultPalette = []string{"#ff0000", "#ffffff", "#0000ff"}

// TrailColor is the overlay color that fades previous frames
const TrailColor = "#000000"
