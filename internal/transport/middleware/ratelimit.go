package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Velocidex/ttlcache/v2"

	"github.com/heartmarshall/users-resources/pkg/ctxutil"
)

// RateLimiter is a token bucket per caller: the authenticated user when
// known, the client IP otherwise. Buckets idle for longer than the idle ttl
// are evicted.
type RateLimiter struct {
	mu      sync.Mutex
	buckets *ttlcache.Cache
	once    sync.Once
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	perSecond  float64
	lastRefill time.Time
}

// NewRateLimiter creates a limiter. Call Stop on shutdown.
func NewRateLimiter(idleTTL time.Duration) *RateLimiter {
	cache := ttlcache.NewCache()
	_ = cache.SetTTL(idleTTL)
	return &RateLimiter{buckets: cache}
}

// Stop releases the eviction goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { _ = rl.buckets.Close() })
}

// Limit allows maxPerMinute requests per caller. A non-positive limit
// disables limiting.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		retryAfter := strconv.Itoa(60/maxPerMinute + 1)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.bucket(callerKey(r), maxPerMinute).allow(time.Now()) {
				httpRateLimited.Inc()
				w.Header().Set("Retry-After", retryAfter)
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + id.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func (rl *RateLimiter) bucket(key string, maxPerMinute int) *bucket {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, err := rl.buckets.Get(key); err == nil {
		if b, ok := v.(*bucket); ok {
			return b
		}
	}
	b := &bucket{
		tokens:     float64(maxPerMinute),
		maxTokens:  float64(maxPerMinute),
		perSecond:  float64(maxPerMinute) / 60,
		lastRefill: time.Now(),
	}
	_ = rl.buckets.Set(key, b)
	return b
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(b.maxTokens, b.tokens+now.Sub(b.lastRefill).Seconds()*b.perSecond)
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
