package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saiventuri/EmployeeManagement/internal/auth"
	"github.com/saiventuri/EmployeeManagement/internal/config"
	"github.com/saiventuri/EmployeeManagement/internal/employee"
	"github.com/saiventuri/EmployeeManagement/internal/middleware"
	"github.com/saiventuri/EmployeeManagement/internal/shared/apperror"
	"github.com/saiventuri/EmployeeManagement/internal/shared/response"
	"github.com/saiventuri/EmployeeManagement/internal/token"
	"github.com/saiventuri/EmployeeManagement/internal/user"
)

func registerModules(router *gin.Engine, db *gorm.DB, cfg config.Config) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)
	userRepo := user.NewRepository(db)

	// --- Services ---
	tokens := token.NewIssuer(cfg.JWTSecret)
	employeeService := employee.NewService(employeeRepo)
	userService := user.NewService(userRepo)
	authService := auth.NewService(userService, tokens)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	authHandler := auth.NewHandler(userService, authService)

	registerPipeline(router, tokens, userService)

	// --- Routes ---
	employee.RegisterRoutes(router, employeeHandler, middleware.RequireAuth())
	auth.RegisterRoutes(router, authHandler)

	return nil
}

// registerPipeline installs the global middleware, the fallback
// handlers that answer requests no route claims, and the health
// endpoint. It needs no infrastructure.
func registerPipeline(router *gin.Engine, tokens *token.Issuer, users middleware.IdentityResolver) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Authenticate(tokens, users))

	// Failures outside any handler still get the uniform envelope.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		httpErr := apperror.ToHTTP(apperror.ErrMethodNotAllowed)
		response.Error(c, httpErr.Status, httpErr.Message)
	})
	router.NoRoute(func(c *gin.Context) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)
		response.Error(c, httpErr.Status, httpErr.Message)
	})

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
