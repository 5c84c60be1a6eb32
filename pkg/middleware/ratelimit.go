package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"celebrity-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const visitorIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	log      *zap.Logger
}

func NewRateLimiter(rps float64, burst int, log *zap.Logger) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		log:      log.With(zap.String("middleware", "ratelimit")),
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// Cleanup drops visitors idle for longer than visitorIdleTTL until ctx ends.
func (rl *RateLimiter) Cleanup(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.evict(now)
		}
	}
}

func (rl *RateLimiter) evict(now time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTTL {
			delete(rl.visitors, ip)
			removed++
		}
	}
	return removed
}

// Limit rejects requests over the per-IP budget with 429.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := utils.GetClientIPFromContext(r.Context())
		if ip == "" {
			ip = r.RemoteAddr
		}

		if !rl.getLimiter(ip).Allow() {
			rl.log.Warn("Rate limit exceeded", zap.String("ip", ip), zap.String("path", r.URL.Path))
			w.Header().Set("Retry-After", "1")
			utils.ResponseTooManyRequests(w, "Too many requests. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
