package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/saiventuri/EmployeeManagement/internal/middleware"
)

// RegisterRoutes binds the public user endpoints. Login carries a
// per-IP rate limit to slow down credential guessing.
func RegisterRoutes(r *gin.Engine, handler *Handler) {
	users := r.Group("/user")
	{
		users.POST("/save", handler.SaveUser)
		users.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
	}
}
