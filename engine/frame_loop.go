package engine

import (
	"context"
	"time"
)

// FrameLoop turns an external tick source into Step calls on a single goroutine
// The display-refresh driver is whatever feeds Ticks: a time.Ticker in production, a plain channel in tests
type FrameLoop struct {
	ticks <-chan time.Time
	step  func(now time.Time) bool
	frame uint64
}

// NewFrameLoop creates a loop; step returns false to stop the loop
func NewFrameLoop(ticks <-chan time.Time, step func(now time.Time) bool) *FrameLoop {
	return &FrameLoop{ticks: ticks, step: step}
}

// Run blocks until ctx is done, the tick channel closes, or step returns false
// Returns ctx.Err() on cancellation, nil otherwise
func (l *FrameLoop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-l.ticks:
			if !ok {
				return nil
			}
			l.frame++
			if !l.step(now) {
				return nil
			}
		}
	}
}

// FrameNumber returns the count of ticks delivered to step
func (l *FrameLoop) FrameNumber() uint64 {
	return l.frame
}
