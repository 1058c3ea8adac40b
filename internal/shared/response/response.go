package response

import (
	"github.com/gin-gonic/gin"

	"github.com/saiventuri/EmployeeManagement/internal/shared/contextutil"
)

// ErrorMessage is the uniform body returned on every failure path.
type ErrorMessage struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// JSON writes a success payload as-is. Clients receive the resource
// body directly, not wrapped in an envelope.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// NoContent writes an empty body with the given status.
func NoContent(c *gin.Context, status int) {
	c.Status(status)
}

// Error writes the uniform error envelope, tagged with the request id
// when one is present on the request context.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorMessage{
		Status:    status,
		Message:   message,
		RequestID: contextutil.GetRequestID(c.Request.Context()),
	})
}
