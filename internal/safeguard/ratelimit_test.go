package safeguard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterRejectsWithinInterval(t *testing.T) {
	rl := NewRateLimiter(50 * time.Millisecond)

	assert.True(t, rl.Allow("caller-1"))
	assert.False(t, rl.Allow("caller-1"), "second request inside the interval must be rejected")

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow("caller-1"), "request after the interval elapses must be allowed")
}

func TestRateLimiterTracksCallersIndependently(t *testing.T) {
	rl := NewRateLimiter(time.Minute)

	assert.True(t, rl.Allow("caller-1"))
	assert.True(t, rl.Allow("caller-2"), "a different caller key must not be throttled by caller-1's attempt")
}

func TestRateLimiterRecordsAttemptEvenWhenRejected(t *testing.T) {
	rl := NewRateLimiter(time.Hour)

	assert.True(t, rl.Allow("caller-1"))
	assert.False(t, rl.Allow("caller-1"))
	assert.False(t, rl.Allow("caller-1"), "rejected attempts still count as the most recent attempt")
}
