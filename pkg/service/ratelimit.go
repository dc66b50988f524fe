package service

import (
	"sync"
	"time"
)

// RateLimiterConfig defines per-route rate limit settings.
type RateLimiterConfig struct {
	RequestsPerSecond int
	BurstSize         int
}

// RateLimiter implements token bucket rate limiting per route.
type RateLimiter struct {
	mu      sync.RWMutex
	buckets map[string]*tokenBucket
}

// NewRateLimiter creates a rate limiter with the provided configuration.
func NewRateLimiter(config map[string]RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*tokenBucket, len(config)),
	}
	for routeID, cfg := range config {
		rl.buckets[routeID] = newTokenBucket(cfg.RequestsPerSecond, cfg.BurstSize)
	}
	return rl
}

// Allow checks if a request for the given route should be allowed.
// Routes without a configured limit are always allowed.
func (rl *RateLimiter) Allow(routeID string) bool {
	rl.mu.RLock()
	bucket, exists := rl.buckets[routeID]
	rl.mu.RUnlock()

	if !exists {
		return true
	}

	return bucket.take()
}

// tokenBucket implements a token bucket algorithm for rate limiting.
type tokenBucket struct {
	mu         sync.Mutex
	rate       float64   // tokens per second
	capacity   float64   // maximum burst size
	tokens     float64   // current available tokens
	lastRefill time.Time // last time tokens were refilled
}

// newTokenBucket creates a token bucket with the specified rate and capacity.
func newTokenBucket(rps, burstSize int) *tokenBucket {
	if rps <= 0 {
		rps = 100 // Default rate
	}
	if burstSize <= 0 {
		burstSize = rps // Default burst = rate
	}

	return &tokenBucket{
		rate:       float64(rps),
		capacity:   float64(burstSize),
		tokens:     float64(burstSize), // Start with full bucket
		lastRefill: time.Now(),
	}
}

// take attempts to consume one token from the bucket.
func (tb *tokenBucket) take() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}

	return false
}

// refill adds tokens to the bucket based on elapsed time.
func (tb *tokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()

	tb.tokens += elapsed * tb.rate
	if tb.tokens > tb.capacity {
		tb.tokens = tb.capacity
	}

	tb.lastRefill = now
}
