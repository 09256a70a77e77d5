package ratelimit

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Config sizes the limiter registry.
type Config struct {
	RequestsPerMin int
	Burst          int
	MaxKeys        int
	KeyTTL         time.Duration
}

// Limiter keeps one token bucket per key; idle keys expire from the LRU.
type Limiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a Limiter. Zero values fall back to 1000 keys, 5 minute TTL
// and a burst of a tenth of the per-minute rate.
func New(cfg Config) *Limiter {
	maxKeys := cfg.MaxKeys
	if maxKeys <= 0 {
		maxKeys = 1000
	}
	ttl := cfg.KeyTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.RequestsPerMin / 10
	}
	if burst < 1 {
		burst = 1
	}

	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxKeys, nil, ttl),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		burst:    burst,
	}
}

// Allow consumes one token for key.
func (rl *Limiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
