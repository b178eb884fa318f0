package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RefreshLimiter throttles the catalog refresh endpoint per IP. Refreshes
// pull the full upstream feed, so offenders get blocked for a cool-down
// instead of just being slowed down.
type RefreshLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
}

func (m *Middlewares) NewRefreshLimiter(requests int, per, blockTime time.Duration) *RefreshLimiter {
	return &RefreshLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
	}
}

func (l *RefreshLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		l.mu.Lock()

		if blockedUntil, found := l.blocked[ip]; found {
			if time.Now().Before(blockedUntil) {
				l.mu.Unlock()
				http.Error(w, "Too many refresh requests, you are temporarily blocked.", http.StatusTooManyRequests)
				return
			}
			delete(l.blocked, ip)
		}

		limiter, exists := l.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(l.per), l.requests)
			l.limiters[ip] = limiter
		}

		l.mu.Unlock()

		if !limiter.Allow() {
			l.mu.Lock()
			defer l.mu.Unlock()

			l.blocked[ip] = time.Now().Add(l.blockTime)
			http.Error(w, "Too many refresh requests, you are temporarily blocked.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
