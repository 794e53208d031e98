package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter throttles requests per client IP with one token bucket per
// (scope, IP). Each Limit call is its own scope, so auth and ballot budgets
// are independent.
type RateLimiter struct {
	mu     sync.Mutex
	scopes []*sync.Map // map[string]*bucket per Limit call
	now    func() time.Time
}

type bucket struct {
	lim *rate.Limiter

	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter. Run its cleanup loop with Run.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{now: time.Now}
}

// Run evicts idle buckets every interval until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

// Limit returns middleware allowing maxPerMinute requests per IP, with a
// burst of the same size. Rejected requests get 429 and a Retry-After
// header with the seconds until the next token.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	buckets := &sync.Map{}
	rl.mu.Lock()
	rl.scopes = append(rl.scopes, buckets)
	rl.mu.Unlock()

	every := rate.Limit(float64(maxPerMinute) / 60)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := rl.now()
			b := rl.getBucket(buckets, clientIP(r), every, maxPerMinute, now)
			if !b.lim.AllowN(now, 1) {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter(b.lim, now)))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please wait and try again.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) getBucket(buckets *sync.Map, key string, every rate.Limit, burst int, now time.Time) *bucket {
	val, ok := buckets.Load(key)
	if !ok {
		val, _ = buckets.LoadOrStore(key, &bucket{lim: rate.NewLimiter(every, burst)})
	}
	b := val.(*bucket)

	b.mu.Lock()
	b.lastSeen = now
	b.mu.Unlock()
	return b
}

// retryAfter is the whole number of seconds until one token is available,
// at least 1.
func retryAfter(lim *rate.Limiter, now time.Time) int {
	missing := 1 - lim.TokensAt(now)
	if missing <= 0 || lim.Limit() <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(missing/float64(lim.Limit()))))
}

func (rl *RateLimiter) evictIdle() {
	now := rl.now()

	rl.mu.Lock()
	scopes := rl.scopes
	rl.mu.Unlock()

	for _, buckets := range scopes {
		buckets.Range(func(key, value any) bool {
			b := value.(*bucket)
			b.mu.Lock()
			idle := now.Sub(b.lastSeen)
			b.mu.Unlock()
			if idle > bucketIdleTTL {
				buckets.Delete(key)
			}
			return true
		})
	}
}

// size reports the number of tracked clients across all scopes.
func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	n := 0
	for _, buckets := range rl.scopes {
		buckets.Range(func(any, any) bool {
			n++
			return true
		})
	}
	return n
}

// clientIP strips the port so that every connection from one host shares a
// bucket. Forwarding headers are never read here. RemoteAddr reflects them
// only when the router was built with TrustProxy, which mounts chi's RealIP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
