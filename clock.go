package gesture

import (
	"sort"
	"time"
)

// Timer is a pending single-shot callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer; false means it had already fired or been stopped.
	Stop() bool
}

// Scheduler arms single-shot callbacks on the host event loop. Callbacks run
// on the goroutine that drives the loop, never concurrently with dispatch.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
	Now() time.Duration
}

// Clock is a Scheduler advanced explicitly by the host loop. Timers fire in
// deadline order from inside Advance and AdvanceTo, so replaying the same
// events against the same clock always produces the same records.
//
// The zero value is ready to use and starts at time 0.
type Clock struct {
	now     time.Duration
	seq     uint64
	pending []*clockTimer
}

type clockTimer struct {
	clock    *Clock
	deadline time.Duration
	seq      uint64
	fn       func()
	stopped  bool
}

// NewClock returns a clock starting at time 0.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the clock's current time.
func (c *Clock) Now() time.Duration { return c.now }

// AfterFunc arms fn to run once the clock has advanced by d. A non-positive
// d fires on the next advance.
func (c *Clock) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &clockTimer{clock: c, deadline: c.now + d, seq: c.seq, fn: fn}
	c.pending = append(c.pending, t)
	sort.SliceStable(c.pending, func(i, j int) bool {
		a, b := c.pending[i], c.pending[j]
		if a.deadline != b.deadline {
			return a.deadline < b.deadline
		}
		return a.seq < b.seq
	})
	return t
}

// Pending returns the number of armed timers.
func (c *Clock) Pending() int { return len(c.pending) }

// Advance moves the clock forward by d, firing every timer that falls due.
func (c *Clock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	c.AdvanceTo(c.now + d)
}

// AdvanceTo moves the clock to t, firing due timers in deadline order. Each
// callback observes Now() equal to its own deadline. Moving backwards is a
// no-op.
func (c *Clock) AdvanceTo(t time.Duration) {
	if t < c.now {
		return
	}
	for len(c.pending) > 0 && c.pending[0].deadline <= t {
		next := c.pending[0]
		copy(c.pending, c.pending[1:])
		c.pending[len(c.pending)-1] = nil
		c.pending = c.pending[:len(c.pending)-1]

		c.now = next.deadline
		next.stopped = true
		next.fn()
	}
	c.now = t
}

// StopAll cancels every pending timer.
func (c *Clock) StopAll() {
	for _, t := range c.pending {
		t.stopped = true
	}
	c.pending = c.pending[:0]
}

func (t *clockTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	c := t.clock
	for i, p := range c.pending {
		if p == t {
			copy(c.pending[i:], c.pending[i+1:])
			c.pending[len(c.pending)-1] = nil
			c.pending = c.pending[:len(c.pending)-1]
			break
		}
	}
	return true
}

// millis converts a clock reading to an event timestamp.
func millis(d time.Duration) uint32 {
	return uint32(d / time.Millisecond)
}

// Millis converts an event timestamp to a clock reading.
func Millis(ts uint32) time.Duration {
	return time.Duration(ts) * time.Millisecond
}
