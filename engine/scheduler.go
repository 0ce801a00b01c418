package engine

import (
	"slices"
	"time"
)

// TimerID identifies a scheduled callback
type TimerID uint64

type timer struct {
	id       TimerID
	deadline time.Time
	fn       func()
}

// Scheduler holds delayed callbacks that run on the goroutine calling Fire
// The frame loop calls Fire once per tick, so callbacks never race with simulation state
type Scheduler struct {
	timers []timer
	nextID TimerID
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make([]timer, 0, 4)}
}

// After schedules fn to run on the first Fire at or after now+delay
func (s *Scheduler) After(now time.Time, delay time.Duration, fn func()) TimerID {
	s.nextID++
	s.timers = append(s.timers, timer{id: s.nextID, deadline: now.Add(delay), fn: fn})
	return s.nextID
}

// Cancel removes a pending timer, returns false if it already fired or never existed
func (s *Scheduler) Cancel(id TimerID) bool {
	i := slices.IndexFunc(s.timers, func(t timer) bool { return t.id == id })
	if i < 0 {
		return false
	}
	s.timers = slices.Delete(s.timers, i, i+1)
	return true
}

// Fire runs due timers in deadline order, ties broken by scheduling order
// Timers scheduled from inside a callback wait for the next Fire
// Returns the number of callbacks run
func (s *Scheduler) Fire(now time.Time) int {
	limit := s.nextID
	fired := 0

	for {
		i := s.nextDue(now, limit)
		if i < 0 {
			return fired
		}
		t := s.timers[i]
		s.timers = slices.Delete(s.timers, i, i+1)
		t.fn()
		fired++
	}
}

// nextDue returns the index of the earliest due timer with id <= limit, or -1
func (s *Scheduler) nextDue(now time.Time, limit TimerID) int {
	best := -1
	for i, t := range s.timers {
		if t.id > limit || t.deadline.After(now) {
			continue
		}
		if best < 0 || t.deadline.Before(s.timers[best].deadline) ||
			(t.deadline.Equal(s.timers[best].deadline) && t.id < s.timers[best].id) {
			best = i
		}
	}
	return best
}

// Pending returns the number of timers not yet fired
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Reset drops all pending timers
func (s *Scheduler) Reset() {
	s.timers = s.timers[:0]
}
