package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  sync.Mutex
	r   rate.Limit // tokens per second
	b   int        // burst
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		r:   r,
		b:   b,
	}
}

func (i *IPRateLimiter) GetLimiter(key string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[key]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[key] = limiter
	}

	return limiter
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			abortWith(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests from this IP")
			return
		}
		c.Next()
	}
}

// RateLimitByActor limits authenticated callers by username. Anonymous
// requests pass through.
func RateLimitByActor(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b)
	return func(c *gin.Context) {
		actor := c.GetString(ActorKey)
		if actor == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(actor).Allow() {
			abortWith(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests from this user")
			return
		}
		c.Next()
	}
}
