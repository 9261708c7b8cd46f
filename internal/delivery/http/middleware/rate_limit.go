package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"careers-api/internal/delivery/http/response"
	"careers-api/pkg/logger"
	"careers-api/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: forwarded-for chain)
	KeyFunc func(*gin.Context) string
	// Key prefix namespacing the counters in the store
	KeyPrefix string
}

// ApplyRateLimitConfig caps job-application submissions per client.
func ApplyRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:apply:",
		KeyFunc:   ClientKey,
	}
}

// ClientKey identifies the client behind a request: first X-Forwarded-For
// value, then X-Real-IP, then a shared "unknown" bucket. Clients with
// neither header all land in that one bucket; acceptable here because the
// service always runs behind a proxy that sets the headers.
func ClientKey(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if real := c.GetHeader("X-Real-IP"); real != "" {
		return real
	}
	return "unknown"
}

// RateLimitMiddleware enforces a fixed-window limit backed by the given
// store. Store errors fail open: the limiter is an abuse heuristic and
// availability wins over strictness.
func RateLimitMiddleware(store ratelimit.Store, config RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := config.KeyPrefix + config.KeyFunc(c)

		count, resetAt, err := store.Incr(c.Request.Context(), key, config.Window)
		if err != nil {
			logger.Log.Error("rate limit store error",
				"error", err.Error(),
				"request_id", c.GetString(RequestIDKey),
			)
			c.Next()
			return
		}

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("rate limit exceeded",
				"key", key,
				"count", count,
				"request_id", c.GetString(RequestIDKey),
			)

			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			c.Abort()
			return
		}

		remaining := config.Limit - count
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		c.Next()
	}
}
