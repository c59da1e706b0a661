package retry

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cecil-the-coder/go-toolkit/pkg/timing"
)

// OnRetryFunc is called after a failed attempt, before waiting for the next one.
type OnRetryFunc func(attempt int, err error, delay time.Duration)

// Executor runs operations according to a Policy. Attempts are strictly
// sequential; an Executor never runs two attempts at once.
type Executor struct {
	policy  *Policy
	logger  *log.Logger
	onRetry OnRetryFunc
}

// NewExecutor creates an executor for the given policy. A nil policy uses DefaultPolicy.
func NewExecutor(policy *Policy) *Executor {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Executor{policy: policy}
}

// WithLogger enables attempt logging. The executor is silent by default.
func (e *Executor) WithLogger(logger *log.Logger) *Executor {
	e.logger = logger
	return e
}

// WithOnRetry registers a callback invoked before each retry wait.
func (e *Executor) WithOnRetry(fn OnRetryFunc) *Executor {
	e.onRetry = fn
	return e
}

// Policy returns the executor's policy.
func (e *Executor) Policy() *Policy {
	return e.policy
}

// Execute runs operation until it returns nil or the policy's attempts are
// exhausted, in which case the error of the final attempt is returned as is.
func (e *Executor) Execute(ctx context.Context, operation func() error) error {
	_, err := ExecuteTyped(ctx, e, func() (struct{}, error) {
		return struct{}{}, operation()
	})
	return err
}

// ExecuteTyped runs a value-returning operation with the executor's policy.
// On success the first successful result is returned and no further attempts
// are made. When every attempt fails, the result and error of the last
// attempt are returned.
//
// The context is only consulted while waiting between attempts; a running
// attempt is never interrupted. If ctx ends during a wait, the returned error
// joins ctx.Err() with the last attempt's error.
func ExecuteTyped[T any](ctx context.Context, e *Executor, operation func() (T, error)) (T, error) {
	var (
		result  T
		lastErr error
	)

	attempts := e.policy.MaxAttempts()
	for attempt := 1; attempt <= attempts; attempt++ {
		res, err := operation()
		if err == nil {
			if attempt > 1 {
				e.logf("[Retry] Operation succeeded on attempt %d/%d", attempt, attempts)
			}
			return res, nil
		}

		result = res
		lastErr = err

		if attempt == attempts {
			break
		}

		delay := e.policy.Delay
		if e.onRetry != nil {
			e.onRetry(attempt, err, delay)
		}
		e.logf("[Retry] Attempt %d/%d failed: %v. Retrying in %v", attempt, attempts, err, delay)

		if waitErr := timing.Sleep(ctx, delay); waitErr != nil {
			return result, errors.Join(waitErr, lastErr)
		}
	}

	e.logf("[Retry] All %d attempts failed: %v", attempts, lastErr)
	return result, lastErr
}

func (e *Executor) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}

// Do is shorthand for NewExecutor(&Policy{Attempts: attempts, Delay: delay}).Execute.
func Do(ctx context.Context, attempts int, delay time.Duration, operation func() error) error {
	return NewExecutor(&Policy{Attempts: attempts, Delay: delay}).Execute(ctx, operation)
}

// DoValue is the value-returning form of Do.
func DoValue[T any](ctx context.Context, attempts int, delay time.Duration, operation func() (T, error)) (T, error) {
	return ExecuteTyped(ctx, NewExecutor(&Policy{Attempts: attempts, Delay: delay}), operation)
}
