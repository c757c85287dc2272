package middleware

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"anoa.com/scholarshipapi/pkg/apperror"
	"anoa.com/scholarshipapi/pkg/response"
)

// RateLimit allows one request per client IP per window for the given
// action. A nil client or a redis failure lets the request through.
func RateLimit(rdb *redis.Client, action string, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:ip:%s:%s", c.ClientIP(), action)
		wasSet, err := rdb.SetNX(c.Request.Context(), key, "locked", window).Result()
		if err != nil {
			slog.Warn("rate limit check failed", "action", action, "error", err)
			c.Next()
			return
		}

		if !wasSet {
			response.AbortError(c, apperror.ErrRateLimitExceeded)
			return
		}

		c.Next()
	}
}
