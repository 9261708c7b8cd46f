package middleware

import (
	"net/http"
	"strings"

	"careers-api/internal/delivery/http/response"
	"careers-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// OriginGuard rejects requests whose Origin header does not belong to the
// configured site. The check only runs in production with a site URL
// configured AND an Origin header present: requests without an Origin
// (curl, server-to-server) pass through. That is a policy choice — with no
// configuration or no origin there is nothing trustworthy to compare, and
// blocking legitimate non-browser callers would be worse than skipping.
func OriginGuard(siteURL string, enforce bool) gin.HandlerFunc {
	siteURL = strings.TrimRight(siteURL, "/")

	return func(c *gin.Context) {
		if !enforce || siteURL == "" {
			c.Next()
			return
		}

		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if !strings.HasPrefix(origin, siteURL) {
			logger.Log.Warn("rejected cross-origin request",
				"origin", origin,
				"ip", c.ClientIP(),
				"request_id", c.GetString(RequestIDKey),
			)
			response.Error(c, http.StatusForbidden, "Forbidden.")
			c.Abort()
			return
		}

		c.Next()
	}
}
