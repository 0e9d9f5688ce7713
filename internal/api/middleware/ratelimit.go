package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitorLimiters struct {
	mu       sync.Mutex
	visitors map[string]*visitorEntry
}

type visitorEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit applies a per-IP token bucket. Idle entries are swept every few
// minutes so the map does not grow with one-off clients.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	vl := &visitorLimiters{visitors: map[string]*visitorEntry{}}

	go func() {
		for range time.Tick(5 * time.Minute) {
			vl.mu.Lock()
			for k, v := range vl.visitors {
				if time.Since(v.last) > 10*time.Minute {
					delete(vl.visitors, k)
				}
			}
			vl.mu.Unlock()
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			vl.mu.Lock()
			entry, ok := vl.visitors[ip]
			if !ok {
				entry = &visitorEntry{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
				vl.visitors[ip] = entry
			}
			entry.last = time.Now()
			allow := entry.limiter.Allow()
			vl.mu.Unlock()

			if !allow {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
