package ratelimiter

import (
	"golang.org/x/time/rate"
)

// Limiter is a single process-wide token bucket shared by every request.
// A nil *Limiter allows everything.
type Limiter struct {
	bucket *rate.Limiter
}

// New creates a Limiter granting ratePerSec tokens per second. A burst of
// zero falls back to ratePerSec. Returns nil when ratePerSec <= 0, which
// disables limiting.
func New(ratePerSec, burst int) *Limiter {
	if ratePerSec <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = ratePerSec
	}
	return &Limiter{bucket: rate.NewLimiter(rate.Limit(ratePerSec), burst)}
}

// Allow reports whether a request may proceed now without waiting.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.bucket.Allow()
}
