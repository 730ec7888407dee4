package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/nolan/scribecloud/internal/api/response"
	"github.com/nolan/scribecloud/internal/fingerprint"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns middleware that limits requests per client. The
// key is the resolved client IP (proxy headers included), so anonymous
// free-tier probing behind a shared proxy is throttled per client
// rather than per proxy hop. rps is the steady-state rate, burst the
// maximum burst.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	var mu sync.Mutex
	limiters := make(map[string]*clientLimiter)

	// Drop clients not seen for a while so the map stays bounded.
	go func() {
		for {
			time.Sleep(3 * time.Minute)
			mu.Lock()
			for key, l := range limiters {
				if time.Since(l.lastSeen) > 5*time.Minute {
					delete(limiters, key)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fingerprint.ClientIP(r)

			mu.Lock()
			l, ok := limiters[key]
			if !ok {
				l = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
				limiters[key] = l
			}
			l.lastSeen = time.Now()
			mu.Unlock()

			if !l.limiter.Allow() {
				w.Header().Set("Retry-After", "60")
				response.Error(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
