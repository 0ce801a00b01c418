package engine

import (
	"testing"
	"time"
)

var base = time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC)

func TestSchedulerFiresWhenDue(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(base, 2*time.Second, func() { fired++ })

	if n := s.Fire(base.Add(1999 * time.Millisecond)); n != 0 || fired != 0 {
		t.Fatalf("Timer fired early: n=%d fired=%d", n, fired)
	}
	if n := s.Fire(base.Add(2 * time.Second)); n != 1 || fired != 1 {
		t.Fatalf("Expected timer to fire at deadline: n=%d fired=%d", n, fired)
	}
	if n := s.Fire(base.Add(10 * time.Second)); n != 0 || fired != 1 {
		t.Fatalf("Timer fired twice: n=%d fired=%d", n, fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", s.Pending())
	}
}

func TestSchedulerDeadlineOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(base, 3*time.Second, func() { order = append(order, "c") })
	s.After(base, 1*time.Second, func() { order = append(order, "a") })
	s.After(base, 2*time.Second, func() { order = append(order, "b1") })
	s.After(base, 2*time.Second, func() { order = append(order, "b2") })

	s.Fire(base.Add(5 * time.Second))

	want := []string{"a", "b1", "b2", "c"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, order)
		}
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(base, time.Second, func() { fired = true })

	if !s.Cancel(id) {
		t.Fatal("Expected cancel to succeed")
	}
	if s.Cancel(id) {
		t.Error("Second cancel should report false")
	}
	s.Fire(base.Add(time.Hour))
	if fired {
		t.Error("Cancelled timer fired")
	}
}

func TestSchedulerCallbackSchedulesNext(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.After(base, time.Second, func() {
		order = append(order, 1)
		// Already due, but must wait for the next Fire
		s.After(base, 0, func() { order = append(order, 2) })
	})

	if n := s.Fire(base.Add(time.Second)); n != 1 {
		t.Fatalf("Expected 1 callback, got %d", n)
	}
	if n := s.Fire(base.Add(time.Second)); n != 1 {
		t.Fatalf("Expected chained callback on next fire, got %d", n)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Unexpected order %v", order)
	}
}

func TestSchedulerCallbackCancelsSibling(t *testing.T) {
	s := NewScheduler()
	var sibling TimerID
	siblingFired := false
	s.After(base, time.Second, func() { s.Cancel(sibling) })
	sibling = s.After(base, 2*time.Second, func() { siblingFired = true })

	s.Fire(base.Add(time.Minute))
	if siblingFired {
		t.Error("Sibling cancelled from a callback should not fire")
	}
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler()
	s.After(base, time.Second, func() { t.Error("Reset timer fired") })
	s.Reset()
	if s.Pending() != 0 {
		t.Fatalf("Expected 0 pending, got %d", s.Pending())
	}
	s.Fire(base.Add(time.Hour))
}
