// Package ratelimit provides the token bucket that paces requests against
// the osu! api.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter grants access a certain amount of times within a time span,
// implemented through the token bucket algorithm with fractional allowance.
// Safe for concurrent use.
type Limiter struct {
	capacity float64
	rate     float64 // tokens per second

	mu        sync.Mutex
	allowance float64
	lastCall  time.Time
}

// New creates a Limiter that allows up to rate acquisitions within per.
func New(rate uint32, per time.Duration) *Limiter {
	return &Limiter{
		capacity:  float64(rate),
		rate:      float64(rate) / per.Seconds(),
		allowance: 0,
		lastCall:  time.Now(),
	}
}

// Wait blocks until the next unit of budget is available or the context is
// done. A cancelled wait does not consume a token.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	elapsed := time.Since(l.lastCall)
	l.allowance += elapsed.Seconds() * l.rate

	switch {
	case l.allowance > l.capacity:
		// Burst cap: clamp and implicitly charge this call.
		l.allowance = l.capacity - 1
	case l.allowance < 1:
		wait := time.Duration((1 - l.allowance) / l.rate * float64(time.Second))
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-timer.C:
			l.allowance = 0
		case <-ctx.Done():
			return ctx.Err()
		}
	default:
		l.allowance--
	}

	l.lastCall = time.Now()
	return nil
}
