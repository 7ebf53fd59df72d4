package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"travel-planner/pkg/response"
)

// RateLimit enforces a per-client request budget. Each client address gets
// its own token bucket sized from config; exceeding it yields 429.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.PerMinute <= 0 {
			c.Next()
			return
		}

		limiter := m.limiterFor(c.ClientIP())
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			return
		}

		c.Next()
	}
}

func (m Middleware) limiterFor(client string) *rate.Limiter {
	if limiter, ok := m.limiters.Get(client); ok {
		return limiter
	}
	interval := time.Minute / time.Duration(m.cfg.PerMinute)
	limiter := rate.NewLimiter(rate.Every(interval), m.cfg.Burst)
	m.limiters.Add(client, limiter)
	return limiter
}
