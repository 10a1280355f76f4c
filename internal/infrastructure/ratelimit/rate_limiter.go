package ratelimit

import (
	"sync"
	"time"
)

type tokenBucket struct {
	tokens     int
	maxTokens  int
	refillRate int
	refillTime time.Duration
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(maxTokens, refillRate int, refillTime time.Duration) *tokenBucket {
	return &tokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
		lastRefill: time.Now(),
	}
}

// allow consumes a token when one is available, otherwise reports how long
// until the next refill.
func (tb *tokenBucket) allow() (bool, time.Duration) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tokensToAdd := int(elapsed/tb.refillTime) * tb.refillRate
	if tokensToAdd > 0 {
		tb.tokens += tokensToAdd
		if tb.tokens > tb.maxTokens {
			tb.tokens = tb.maxTokens
		}
		tb.lastRefill = now
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true, 0
	}

	return false, tb.lastRefill.Add(tb.refillTime).Sub(now)
}

// Limiter tracks one token bucket per key (client IP for the login route).
type Limiter struct {
	buckets    map[string]*tokenBucket
	maxTokens  int
	refillRate int
	refillTime time.Duration
	mu         sync.RWMutex
}

func NewLimiter(maxTokens, refillRate int, refillTime time.Duration) *Limiter {
	return &Limiter{
		buckets:    make(map[string]*tokenBucket),
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
	}
}

func (l *Limiter) Allow(key string) (bool, time.Duration) {
	l.mu.RLock()
	bucket, ok := l.buckets[key]
	l.mu.RUnlock()

	if !ok {
		l.mu.Lock()
		bucket, ok = l.buckets[key]
		if !ok {
			bucket = newTokenBucket(l.maxTokens, l.refillRate, l.refillTime)
			l.buckets[key] = bucket
		}
		l.mu.Unlock()
	}

	return bucket.allow()
}

// Cleanup drops buckets idle long enough to have fully refilled, so the
// map does not grow without bound. Meant to run periodically from a
// background goroutine.
func (l *Limiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, bucket := range l.buckets {
		bucket.mu.Lock()
		idle := time.Since(bucket.lastRefill) > bucket.refillTime*time.Duration(bucket.maxTokens)
		bucket.mu.Unlock()
		if idle {
			delete(l.buckets, key)
		}
	}
}
