package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/infrastructure/ratelimit"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

// RateLimiter enforces per-IP request limits through the shared Redis
// limiter. A Redis outage fails open so traffic is never blocked by the
// limiter itself.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	scope   string
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, requestsPerMinute int, scope string, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		config:  ratelimit.RateLimitConfig{RequestsPerMinute: requestsPerMinute},
		scope:   scope,
		logger:  log,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", rl.scope, c.ClientIP())

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.config)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable", "error", err, "scope", rl.scope)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
