package status

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
)

// Well-known metric keys
const (
	KeyEmitters  = "fireworks.emitters"
	KeyParticles = "fireworks.particles"
	KeyLaunched  = "fireworks.launched"
	KeyBursts    = "fireworks.bursts"
	KeyFrames    = "engine.frames"
	KeyFPS       = "engine.fps"
)

// Registry groups integer and float metrics for the HUD
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Count returns the number of metrics across both maps
func (r *Registry) Count() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Lines renders every metric as "key: value", sorted by key across both maps
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.1f", key, v.Load()))
	})
	slices.SortFunc(lines, func(a, b string) int {
		return strings.Compare(keyOf(a), keyOf(b))
	})
	return lines
}

func keyOf(line string) string {
	key, _, _ := strings.Cut(line, ":")
	return key
}
