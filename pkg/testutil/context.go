// Package testutil holds helpers shared by the toolkit's tests: bounded
// contexts, temp-file and HTTP fixtures, and assertions.
package testutil

import (
	"context"
	"testing"
	"time"
)

// TestContext creates a context with a 30 second timeout that is cancelled
// when the test finishes.
func TestContext(t *testing.T) context.Context {
	t.Helper()
	return TestContextWithTimeout(t, 30*time.Second)
}

// ShortTestContext creates a context with a 5 second timeout for quick tests.
func ShortTestContext(t *testing.T) context.Context {
	t.Helper()
	return TestContextWithTimeout(t, 5*time.Second)
}

// TestContextWithTimeout creates a context with a custom timeout for tests.
func TestContextWithTimeout(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// CancelledContext returns a context that is already cancelled.
func CancelledContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
