// Package firework implements the celebration particle simulation.
//
// A Simulation owns an ordered set of Emitters. Each Emitter rises from the
// bottom edge to a target height, bursts once into a fixed number of
// Particles, and is pruned after the last Particle fades out. The host drives
// the simulation by calling Step with the current time once per frame; no
// goroutines or timers are started here.
package firework
