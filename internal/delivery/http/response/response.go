package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse is the acknowledgment body for accepted requests.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse carries a single user-facing message. Internal detail is
// logged server-side and never placed here.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success sends {"success": true}
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Error sends {"error": "<message>"} with the given status
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}
