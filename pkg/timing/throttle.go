package timing

import (
	"time"

	"golang.org/x/time/rate"
)

// Throttler executes fn at most once per window. The first Call runs
// immediately and opens the window; calls made while it is open are dropped
// without queuing and without a trailing call. The first Call after the window
// elapses runs immediately and opens a new one.
type Throttler[T any] struct {
	fn      func(T)
	limiter *rate.Limiter
	now     func() time.Time
}

// NewThrottler creates a Throttler with the given window length.
// A non-positive window disables throttling.
func NewThrottler[T any](window time.Duration, fn func(T)) *Throttler[T] {
	limit := rate.Inf
	if window > 0 {
		limit = rate.Every(window)
	}

	return &Throttler[T]{
		fn:      fn,
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
	}
}

// WithClock replaces the time source used to decide whether a window is open.
func (t *Throttler[T]) WithClock(now func() time.Time) *Throttler[T] {
	t.now = now
	return t
}

// Call runs fn(arg) unless a window is open. It reports whether fn ran.
func (t *Throttler[T]) Call(arg T) bool {
	if !t.limiter.AllowN(t.now(), 1) {
		return false
	}
	t.fn(arg)
	return true
}
