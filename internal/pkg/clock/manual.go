package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Clock and Scheduler that only moves when told to. Due
// continuations run synchronously inside Advance, in deadline order.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	owner   *Manual
	at      time.Time
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// NewManual creates a manual clock starting at start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc schedules fn to run when the clock is advanced past d
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{owner: m, at: m.now.Add(d), seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Pending returns the number of continuations waiting to run
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves time forward by d and runs every continuation that became
// due, including ones scheduled by continuations run during this call.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

// Flush runs continuations until none remain, advancing time as needed
func (m *Manual) Flush() {
	for {
		m.mu.Lock()
		var next *manualTimer
		for _, t := range m.timers {
			if !t.stopped && !t.fired && (next == nil || t.at.Before(next.at)) {
				next = t
			}
		}
		if next == nil {
			m.mu.Unlock()
			return
		}
		d := next.at.Sub(m.now)
		m.mu.Unlock()
		m.Advance(d)
	}
}

func (m *Manual) nextDue(target time.Time) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	m.timers = live
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].at.Equal(m.timers[j].at) {
			return m.timers[i].seq < m.timers[j].seq
		}
		return m.timers[i].at.Before(m.timers[j].at)
	})

	if len(m.timers) == 0 || m.timers[0].at.After(target) {
		return nil
	}
	t := m.timers[0]
	t.fired = true
	if t.at.After(m.now) {
		m.now = t.at
	}
	return t
}

// Stop implements Timer
func (t *manualTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
