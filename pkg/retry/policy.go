// Package retry runs an operation repeatedly until it succeeds or a fixed
// number of attempts is used up, waiting a constant delay between attempts.
package retry

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPolicy is returned by Validate for policies that cannot be executed.
var ErrInvalidPolicy = errors.New("invalid retry policy")

// Policy defines how many times an operation is attempted and how long to
// wait between attempts.
type Policy struct {
	// Attempts is the total number of invocations, including the first.
	// Values below 1 are treated as 1.
	Attempts int `yaml:"attempts" json:"attempts"`

	// Delay is the fixed wait between a failed attempt and the next one.
	// Zero means retry immediately. The delay never grows and has no jitter.
	Delay time.Duration `yaml:"delay" json:"delay"`
}

// DefaultPolicy returns three attempts with no delay.
func DefaultPolicy() *Policy {
	return &Policy{
		Attempts: 3,
		Delay:    0,
	}
}

// NoRetryPolicy returns a policy that invokes the operation exactly once.
func NoRetryPolicy() *Policy {
	return &Policy{Attempts: 1}
}

// Validate reports whether the policy can be executed.
func (p *Policy) Validate() error {
	if p.Delay < 0 {
		return fmt.Errorf("%w: delay cannot be negative (%v)", ErrInvalidPolicy, p.Delay)
	}
	return nil
}

// MaxAttempts returns the normalised attempt count (at least 1).
func (p *Policy) MaxAttempts() int {
	if p == nil || p.Attempts < 1 {
		return 1
	}
	return p.Attempts
}

// Clone creates a copy of the policy
func (p *Policy) Clone() *Policy {
	clone := *p
	return &clone
}

// WithAttempts returns a new policy with updated Attempts
func (p *Policy) WithAttempts(attempts int) *Policy {
	clone := p.Clone()
	clone.Attempts = attempts
	return clone
}

// WithDelay returns a new policy with updated Delay
func (p *Policy) WithDelay(delay time.Duration) *Policy {
	clone := p.Clone()
	clone.Delay = delay
	return clone
}
