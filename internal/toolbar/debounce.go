package toolbar

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// DefaultDebounce is the minimum spacing of viewport-triggered passes.
const DefaultDebounce = 500 * time.Millisecond

// Debouncer is a leading+trailing debounce policy with no timers of its
// own. The owner feeds it calls and timer expiries and arms a real timer
// for Deadline.
//
// The first call after a quiet period fires immediately. Later calls within
// the window are absorbed and push the window out; once the window passes
// with no further call, one trailing invocation fires if any call was
// absorbed.
type Debouncer struct {
	wait time.Duration

	lastCall time.Time
	hasCall  bool

	armed    bool
	deadline time.Time
	pending  bool
}

func NewDebouncer(wait time.Duration) *Debouncer {
	if wait <= 0 {
		wait = DefaultDebounce
	}
	return &Debouncer{wait: wait}
}

func (d *Debouncer) Wait() time.Duration { return d.wait }

// Call records an event at now and reports whether it should run
// immediately (the leading edge).
func (d *Debouncer) Call(now time.Time) bool {
	invoking := d.shouldInvoke(now)
	d.lastCall = now
	d.hasCall = true
	d.pending = true

	if invoking && !d.armed {
		d.arm(now.Add(d.wait))
		d.pending = false
		return true
	}
	if !d.armed {
		d.arm(now.Add(d.wait))
	}
	return false
}

// Expire handles the timer firing at now and reports whether the trailing
// invocation should run. If calls arrived since the timer was armed the
// deadline moves out instead.
func (d *Debouncer) Expire(now time.Time) bool {
	if !d.armed || now.Before(d.deadline) {
		return false
	}
	if !d.shouldInvoke(now) {
		d.arm(d.lastCall.Add(d.wait))
		return false
	}
	d.armed = false
	if d.pending {
		d.pending = false
		return true
	}
	return false
}

// Deadline returns when the owner should call Expire.
func (d *Debouncer) Deadline() (time.Time, bool) {
	return d.deadline, d.armed
}

// Cancel drops any pending trailing invocation and disarms the timer.
func (d *Debouncer) Cancel() {
	d.armed = false
	d.pending = false
	d.hasCall = false
	d.deadline = time.Time{}
}

func (d *Debouncer) arm(at time.Time) {
	d.armed = true
	d.deadline = at
}

func (d *Debouncer) shouldInvoke(now time.Time) bool {
	if !d.hasCall {
		return true
	}
	since := now.Sub(d.lastCall)
	return since >= d.wait || since < 0
}
