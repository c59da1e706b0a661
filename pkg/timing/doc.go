// Package timing provides small timing combinators: a Debouncer that only
// delivers the latest call after a quiet period, a Throttler that executes at
// most one call per window and drops the rest, and a context-aware Sleep.
//
// Each combinator owns its timer state exclusively. Nothing is registered
// globally, so one instance per call site mirrors closure semantics:
//
//	save := timing.NewDebouncer(500*time.Millisecond, func(doc string) {
//	    store(doc)
//	})
//	save.Call(draft) // only the last draft inside the window is stored
//
// Debouncer and Throttler are safe for concurrent use.
package timing
