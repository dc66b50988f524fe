package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_BurstThenDeny(t *testing.T) {
	rl := NewRateLimiter(map[string]RateLimiterConfig{
		"encode": {RequestsPerSecond: 1, BurstSize: 3},
	})

	allowed := 0
	for i := 0; i < 10; i++ {
		if rl.Allow("encode") {
			allowed++
		}
	}

	// The burst drains, then requests are denied until refill.
	assert.Equal(t, 3, allowed)
}

func TestRateLimiter_UnconfiguredRouteAllowed(t *testing.T) {
	rl := NewRateLimiter(nil)

	for i := 0; i < 100; i++ {
		assert.True(t, rl.Allow("anything"))
	}
}

func TestRateLimiter_Refill(t *testing.T) {
	rl := NewRateLimiter(map[string]RateLimiterConfig{
		"decode": {RequestsPerSecond: 100, BurstSize: 1},
	})

	assert.True(t, rl.Allow("decode"))
	assert.False(t, rl.Allow("decode"))

	time.Sleep(50 * time.Millisecond)
	assert.True(t, rl.Allow("decode"))
}

func TestTokenBucket_Defaults(t *testing.T) {
	tb := newTokenBucket(0, 0)
	assert.Equal(t, float64(100), tb.rate)
	assert.Equal(t, float64(100), tb.capacity)

	tb = newTokenBucket(10, 0)
	assert.Equal(t, float64(10), tb.capacity)
}
