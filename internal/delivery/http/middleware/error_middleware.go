package middleware

import (
	"errors"
	"net/http"

	"careers-api/internal/delivery/http/response"
	"careers-api/pkg/apperror"
	"careers-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors attached to the context onto the JSON error body.
// Internal detail is logged server-side only; clients always get the short
// user-facing message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"path", c.FullPath(),
					"request_id", c.GetString(RequestIDKey),
					"error", appErr.Err.Error(),
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unexpected error",
			"path", c.FullPath(),
			"request_id", c.GetString(RequestIDKey),
			"error", err.Error(),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
