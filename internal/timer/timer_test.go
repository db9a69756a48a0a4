package timer

import (
	"math/rand"
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestManager() *Manager {
	m := New(rand.New(rand.NewSource(1)))
	m.now = t0
	return m
}

func TestOneShotFiresOnce(t *testing.T) {
	m := newTestManager()
	fired := 0
	m.Schedule(time.Second, func() { fired++ })

	m.Tick(t0.Add(500 * time.Millisecond))
	if fired != 0 {
		t.Fatal("fired before duration elapsed")
	}
	m.Tick(t0.Add(time.Second))
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	if m.Len() != 0 {
		t.Fatalf("timer still active after firing: Len = %d", m.Len())
	}
	m.Tick(t0.Add(5 * time.Second))
	if fired != 1 {
		t.Fatalf("one-shot fired again: fired = %d", fired)
	}
}

func TestRepeatKeepsFiring(t *testing.T) {
	m := newTestManager()
	fired := 0
	m.ScheduleRepeat(time.Second, func() { fired++ })

	for i := 1; i <= 4; i++ {
		m.Tick(t0.Add(time.Duration(i) * time.Second))
	}
	if fired != 4 {
		t.Fatalf("fired = %d, want 4", fired)
	}
	if m.Len() != 1 {
		t.Fatalf("Len = %d, want 1", m.Len())
	}
}

func TestRepeatRangeResamplesWithinBounds(t *testing.T) {
	m := newTestManager()
	lo, hi := 100*time.Millisecond, 400*time.Millisecond
	h := m.ScheduleRepeatRange(lo, hi, func() {})
	now := t0

	for i := 0; i < 200; i++ {
		d := h.e.duration
		if d < lo || d > hi {
			t.Fatalf("resample %d: duration %v outside [%v, %v]", i, d, lo, hi)
		}
		now = now.Add(d)
		m.Tick(now)
	}
}

func TestStopPreventsFiring(t *testing.T) {
	m := newTestManager()
	fired := false
	h := m.Schedule(time.Second, func() { fired = true })
	h.Stop()

	m.Tick(t0.Add(2 * time.Second))
	if fired {
		t.Fatal("stopped timer fired")
	}
	if m.Len() != 0 {
		t.Fatalf("Len = %d, want 0", m.Len())
	}
}

func TestCallbackMayScheduleNewTimer(t *testing.T) {
	m := newTestManager()
	var chained bool
	m.Schedule(time.Second, func() {
		m.Schedule(time.Second, func() { chained = true })
	})

	m.Tick(t0.Add(time.Second))
	if chained {
		t.Fatal("timer scheduled during Tick must not fire in the same Tick")
	}
	m.Tick(t0.Add(2 * time.Second))
	if !chained {
		t.Fatal("chained timer never fired")
	}
}

func TestCallbackStoppingAnotherDueTimer(t *testing.T) {
	m := newTestManager()
	var secondFired bool
	var h2 Handle
	// Both due at the same Tick; ties fire in creation order, so the
	// first callback stops the second before it is visited.
	m.Schedule(time.Second, func() { h2.Stop() })
	h2 = m.Schedule(time.Second, func() { secondFired = true })

	m.Tick(t0.Add(time.Second))
	if secondFired {
		t.Fatal("timer stopped mid-Tick still fired")
	}
}

func TestUnrelatedTimersUnaffectedByMutation(t *testing.T) {
	m := newTestManager()
	fired := map[string]int{}
	m.Schedule(time.Second, func() {
		fired["a"]++
		m.Schedule(time.Hour, func() {})
	})
	m.Schedule(time.Second, func() { fired["b"]++ })
	m.Schedule(time.Second, func() { fired["c"]++ })

	m.Tick(t0.Add(time.Second))
	for _, k := range []string{"a", "b", "c"} {
		if fired[k] != 1 {
			t.Fatalf("timer %q fired %d times, want 1", k, fired[k])
		}
	}
}

func TestTiesFireInCreationOrder(t *testing.T) {
	m := newTestManager()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		m.Schedule(time.Second, func() { order = append(order, i) })
	}
	m.Tick(t0.Add(time.Second))
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want creation order", order)
		}
	}
}
