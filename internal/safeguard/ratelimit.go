package safeguard

import (
	"sync"
	"time"
)

// RateLimiter enforces a minimum interval between requests from the same
// caller key (typically a remote address), guarding the façade rather than
// the engine itself.
type RateLimiter struct {
	interval time.Duration
	mu       sync.Mutex
	last     map[string]time.Time
}

// NewRateLimiter returns a RateLimiter that rejects a caller's request if it
// arrives less than interval after their previous one.
func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{
		interval: interval,
		last:     make(map[string]time.Time),
	}
}

// Allow reports whether a request from key may proceed, recording the
// attempt regardless of the outcome.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	last, ok := rl.last[key]
	rl.last[key] = now
	if ok && now.Sub(last) < rl.interval {
		return false
	}
	return true
}
