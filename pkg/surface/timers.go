package surface

import (
	"slices"
	"time"
)

// TimerID identifies a scheduled callback.
type TimerID uint64

// Timer is a callback the host must deliver after Delay.
type Timer struct {
	ID    TimerID
	Delay time.Duration
}

type pendingTimer struct {
	delay time.Duration
	fn    func()
}

// timerQueue stores callbacks until the host fires them. The host decides
// how time passes; a bubbletea host turns each Timer into a tea.Tick.
type timerQueue struct {
	next      TimerID
	pending   map[TimerID]*pendingTimer
	scheduled []Timer
}

func (q *timerQueue) init() {
	q.pending = make(map[TimerID]*pendingTimer)
}

// AfterFunc schedules fn to run once the host reports d has elapsed.
func (s *Surface) AfterFunc(d time.Duration, fn func()) TimerID {
	s.timers.next++
	id := s.timers.next
	s.timers.pending[id] = &pendingTimer{delay: d, fn: fn}
	s.timers.scheduled = append(s.timers.scheduled, Timer{ID: id, Delay: d})
	return id
}

// CancelTimer drops a pending callback. Returns false if it already ran or
// was cancelled.
func (s *Surface) CancelTimer(id TimerID) bool {
	if _, ok := s.timers.pending[id]; !ok {
		return false
	}
	delete(s.timers.pending, id)
	return true
}

// TakeScheduled returns timers scheduled since the last call so the host can
// start clocks for them.
func (s *Surface) TakeScheduled() []Timer {
	out := s.timers.scheduled
	s.timers.scheduled = nil
	return out
}

// PendingTimers returns the number of callbacks not yet fired or cancelled.
func (s *Surface) PendingTimers() int {
	return len(s.timers.pending)
}

// FireTimer runs the callback for id if it is still pending, then flushes
// deferred work. Returns whether a callback ran.
func (s *Surface) FireTimer(id TimerID) bool {
	t, ok := s.timers.pending[id]
	if !ok {
		return false
	}
	delete(s.timers.pending, id)
	t.fn()
	s.Flush()
	return true
}

// FireAll runs every pending callback in scheduling order. Intended for
// hosts without a clock and for tests.
func (s *Surface) FireAll() int {
	s.timers.scheduled = nil
	ids := make([]TimerID, 0, len(s.timers.pending))
	for id := range s.timers.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	ran := 0
	for _, id := range ids {
		if s.FireTimer(id) {
			ran++
		}
	}
	return ran
}
