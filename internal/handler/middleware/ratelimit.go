package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"booking-core/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type RateLimiter interface {
	Allow(ctx context.Context, subject string) (bool, error)
}

// RateLimit throttles per authenticated user. A nil limiter disables it, and
// limiter errors let the request through.
func RateLimit(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		userID, ok := GetUserID(c)
		if !ok {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), userID.String())
		if err != nil {
			slog.Warn("rate limiter unavailable",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()))
			c.Next()
			return
		}
		if !allowed {
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, httperr.CodeRateLimited, "Too many hold requests, slow down", nil)
			return
		}
		c.Next()
	}
}
