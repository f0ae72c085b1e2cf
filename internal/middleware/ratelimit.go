package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"study-platform-calendar/pkg/response"
)

// ownerRateLimiter throttles write traffic per owner with auto-cleanup
// of idle entries.
type ownerRateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newOwnerRateLimiter(writesPerMin int) *ownerRateLimiter {
	burst := writesPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &ownerRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(writesPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *ownerRateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// WriteLimit caps create/update/delete throughput per authenticated owner.
// It must run after Auth.
func (m Middleware) WriteLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := ScopeFromContext(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !m.writeLimiter.allow(sc.UserID) {
			m.l.Warnf(c.Request.Context(), "middleware.WriteLimit: owner %s throttled", sc.UserID)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
