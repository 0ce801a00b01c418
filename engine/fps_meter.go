package engine

import "time"

// FPSMeter averages frame rate over a fixed window
type FPSMeter struct {
	window      time.Duration
	windowStart time.Time
	frames      int
	fps         float64
}

// NewFPSMeter creates a meter that publishes once per window
func NewFPSMeter(window time.Duration) *FPSMeter {
	return &FPSMeter{window: window}
}

// Tick records one frame and returns the latest published rate
func (m *FPSMeter) Tick(now time.Time) float64 {
	if m.windowStart.IsZero() {
		m.windowStart = now
		return m.fps
	}
	m.frames++

	elapsed := now.Sub(m.windowStart)
	if elapsed >= m.window && elapsed > 0 {
		m.fps = float64(m.frames) / elapsed.Seconds()
		m.frames = 0
		m.windowStart = now
	}
	return m.fps
}
