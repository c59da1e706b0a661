package timing

import (
	"sync"
	"time"
)

// Debouncer delays calls to fn until delay has passed without another Call.
// Every Call cancels the pending one, so only the argument of the most recent
// Call is ever delivered. Results are not propagated back to callers.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu    sync.Mutex
	timer *time.Timer
	// seq identifies the latest scheduled call; a timer that fires after being
	// superseded sees a stale seq and does nothing.
	seq uint64
}

// NewDebouncer creates a Debouncer that invokes fn delay after the latest Call.
func NewDebouncer[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		delay: delay,
		fn:    fn,
	}
}

// Call schedules fn(arg), discarding any call still pending.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(seq, arg)
	})
}

// Stop cancels the pending call, if any. It reports whether a call was pending.
func (d *Debouncer[T]) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.seq++
	return true
}

// Pending reports whether a call is scheduled and has not run yet.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer[T]) fire(seq uint64, arg T) {
	d.mu.Lock()
	if seq != d.seq {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn(arg)
}
