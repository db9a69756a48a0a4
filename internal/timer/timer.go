// Package timer implements the deferred-action scheduler that drives door
// animations, delayed floor changes, and periodic ambient behavior. It is
// pure bookkeeping over wall-clock time: nothing here blocks, callbacks run
// synchronously inside Tick on the main loop's goroutine.
package timer

import (
	"math/rand"
	"time"
)

// entry is one scheduled action.
type entry struct {
	created  time.Time
	duration time.Duration
	fn       func()
	repeat   bool
	lo, hi   time.Duration // randomized repeat interval; both zero = fixed
	stopped  bool
}

// Handle identifies a scheduled action and allows cancelling it before it
// fires. The original design had no cancellation, which let timers invoke
// callbacks on objects removed in the meantime; holders of a Handle can
// Stop it when the target goes away.
type Handle struct {
	e *entry
}

// Stop cancels the action. Stopping an already-fired one-shot or an
// already-stopped timer is a no-op.
func (h Handle) Stop() {
	if h.e != nil {
		h.e.stopped = true
	}
}

// Manager owns the active timer set. It is not safe for concurrent use;
// the game loop calls Tick exactly once per frame.
type Manager struct {
	timers []*entry
	rng    *rand.Rand
	now    time.Time // time of the current/last Tick
}

// New creates an empty Manager. rng feeds randomized repeat intervals; a
// nil rng gets a time-seeded one.
func New(rng *rand.Rand) *Manager {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Manager{rng: rng, now: time.Now()}
}

// Schedule registers fn to run once after delay.
func (m *Manager) Schedule(delay time.Duration, fn func()) Handle {
	return m.add(&entry{created: m.now, duration: delay, fn: fn})
}

// ScheduleRepeat registers fn to run every interval until stopped.
func (m *Manager) ScheduleRepeat(interval time.Duration, fn func()) Handle {
	return m.add(&entry{created: m.now, duration: interval, fn: fn, repeat: true})
}

// ScheduleRepeatRange registers fn to run repeatedly, redrawing the delay
// uniformly from [lo, hi] after every firing. The first delay is also
// drawn from the range.
func (m *Manager) ScheduleRepeatRange(lo, hi time.Duration, fn func()) Handle {
	e := &entry{created: m.now, fn: fn, repeat: true, lo: lo, hi: hi}
	e.duration = m.drawInterval(lo, hi)
	return m.add(e)
}

func (m *Manager) add(e *entry) Handle {
	m.timers = append(m.timers, e)
	return Handle{e: e}
}

func (m *Manager) drawInterval(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(m.rng.Int63n(int64(hi-lo)+1))
}

// Len returns the number of active timers.
func (m *Manager) Len() int {
	n := 0
	for _, e := range m.timers {
		if !e.stopped {
			n++
		}
	}
	return n
}

// Tick fires every timer whose elapsed time reached its duration. It must
// be called exactly once per frame. Simultaneously-due timers fire in
// creation order. Callbacks may schedule new timers or stop existing ones;
// iteration runs over a snapshot, so mutation never skips or double-fires
// unrelated timers. A panic inside a callback propagates to the caller.
func (m *Manager) Tick(now time.Time) {
	m.now = now

	// Stable snapshot: callbacks appending to m.timers must not be
	// visited this frame, and removal below must not shift live entries
	// out from under the loop.
	snapshot := make([]*entry, len(m.timers))
	copy(snapshot, m.timers)

	for _, e := range snapshot {
		if e.stopped {
			continue
		}
		if now.Sub(e.created) < e.duration {
			continue
		}
		if e.repeat {
			e.created = now
			if e.lo != 0 || e.hi != 0 {
				e.duration = m.drawInterval(e.lo, e.hi)
			}
		} else {
			// Removed from the active set exactly once, before the
			// callback runs, so a panicking callback cannot re-fire.
			e.stopped = true
		}
		e.fn()
	}

	// Compact out stopped entries.
	live := m.timers[:0]
	for _, e := range m.timers {
		if !e.stopped {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(m.timers); i++ {
		m.timers[i] = nil
	}
	m.timers = live
}
