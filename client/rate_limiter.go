package client

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// TokenBucketThrottle smooths requests to a steady rate while allowing short
// bursts. Unlike SlidingWindowThrottle it never lets a full window's worth of
// requests through at once.
type TokenBucketThrottle struct {
	mu      sync.Mutex
	rps     float64
	burst   int
	limiter *rate.Limiter
}

// NewTokenBucketThrottle creates a throttle refilling rps tokens per second up
// to burst. A non-positive burst is treated as 1.
func NewTokenBucketThrottle(rps float64, burst int) *TokenBucketThrottle {
	if burst <= 0 {
		burst = 1
	}
	return &TokenBucketThrottle{
		rps:     rps,
		burst:   burst,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (t *TokenBucketThrottle) current() *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.limiter
}

// Acquire blocks until a token is available or the context is cancelled.
func (t *TokenBucketThrottle) Acquire(ctx context.Context) error {
	return t.current().Wait(ctx)
}

// GetWindowCount returns the number of tokens currently spent.
func (t *TokenBucketThrottle) GetWindowCount() int {
	return t.burst - t.GetRemaining()
}

// GetRemaining returns the number of whole tokens available.
func (t *TokenBucketThrottle) GetRemaining() int {
	return max(0, int(t.current().Tokens()))
}

// Reset refills the bucket.
func (t *TokenBucketThrottle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.limiter = rate.NewLimiter(rate.Limit(t.rps), t.burst)
}
