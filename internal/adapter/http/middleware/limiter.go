package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Per-client request budgets. The invoice proxy is the hot path hit by every
// payment link open, so it gets its own, tighter tier.
const (
	LimitGeneral = rate.Limit(10)
	BurstGeneral = 20

	LimitInvoice = rate.Limit(2)
	BurstInvoice = 5
)

// visitor holds the limiter and the last time this client was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitorRegistry struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

func newVisitorRegistry() *visitorRegistry {
	r := &visitorRegistry{visitors: make(map[string]*visitor)}
	go r.cleanup()
	return r
}

func (r *visitorRegistry) get(key string, limit rate.Limit, burst int) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.visitors[key]
	if !ok {
		limiter := rate.NewLimiter(limit, burst)
		r.visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// cleanup drops clients not seen for a while so the map does not grow
// unbounded.
func (r *visitorRegistry) cleanup() {
	for {
		time.Sleep(time.Minute)

		r.mu.Lock()
		for key, v := range r.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(r.visitors, key)
			}
		}
		r.mu.Unlock()
	}
}

// RateLimit returns a per-client-IP token bucket middleware. Exhausted
// budgets answer 429 with the same error code the invoice proxy uses.
func RateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	registry := newVisitorRegistry()
	return func(c *gin.Context) {
		limiter := registry.get(c.ClientIP(), limit, burst)
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "RATE_LIMIT_EXCEEDED"})
			return
		}
		c.Next()
	}
}
