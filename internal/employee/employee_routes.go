package employee

import "github.com/gin-gonic/gin"

// RegisterRoutes binds the employee endpoints. Every route here sits
// behind the authorization policy passed in by the caller.
func RegisterRoutes(r *gin.Engine, handler *Handler, requireAuth gin.HandlerFunc) {
	employees := r.Group("/api/employees")
	employees.Use(requireAuth)
	{
		employees.POST("", handler.Create)
		employees.GET("", handler.GetAll)
		employees.GET("/id/:id", handler.GetByID)
		employees.PUT("", handler.Update)
		employees.PATCH("", handler.Patch)
		employees.DELETE("", handler.DeleteAll)
		employees.DELETE("/:id", handler.DeleteByID)
	}
}
