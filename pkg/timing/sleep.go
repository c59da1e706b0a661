package timing

import (
	"context"
	"time"
)

// Sleep pauses the calling goroutine for d or until ctx is done, whichever
// comes first. It returns ctx.Err() when the context ends the wait.
// A non-positive d returns immediately with the current ctx.Err().
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
