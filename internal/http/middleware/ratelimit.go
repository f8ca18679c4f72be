package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter is a fixed-window counter per client. A nil *RateLimiter
// allows everything.
type RateLimiter struct {
	mu      sync.Mutex
	window  time.Duration
	limit   int
	buckets map[string]rateEntry
	sweepAt int
	proxies *TrustedProxies
}

type rateEntry struct {
	count   int
	expires time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		window:  window,
		limit:   limit,
		buckets: make(map[string]rateEntry),
		sweepAt: limit * 50,
	}
}

// TrustProxies makes Limit key clients by forwarding headers when the
// request comes from one of tp.
func (rl *RateLimiter) TrustProxies(tp *TrustedProxies) *RateLimiter {
	rl.proxies = tp
	return rl
}

func (rl *RateLimiter) Allow(key string) bool {
	if rl == nil {
		return true
	}
	now := time.Now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry := rl.buckets[key]
	if now.After(entry.expires) {
		entry.count = 0
		entry.expires = now.Add(rl.window)
	}
	if entry.count >= rl.limit {
		rl.buckets[key] = entry
		return false
	}
	entry.count++
	rl.buckets[key] = entry

	// sweep threshold doubles with the live set so sweeps stay amortized
	if len(rl.buckets) > rl.sweepAt {
		for k, v := range rl.buckets {
			if now.After(v.expires) {
				delete(rl.buckets, k)
			}
		}
		rl.sweepAt = max(rl.limit*50, 2*len(rl.buckets))
	}

	return true
}

// Key returns the bucket key for r.
func (rl *RateLimiter) Key(r *http.Request) string {
	if rl == nil {
		return ClientIP(r)
	}
	return rl.proxies.ClientIP(r)
}

// Limit rejects requests over the per-client budget with 429.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	if rl == nil {
		return next
	}
	retryAfter := strconv.Itoa(max(1, int(math.Ceil(rl.window.Seconds()))))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(rl.Key(r)) {
			w.Header().Set("Retry-After", retryAfter)
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
