package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saiventuri/EmployeeManagement/internal/shared/apperror"
	"github.com/saiventuri/EmployeeManagement/internal/shared/response"
	"github.com/saiventuri/EmployeeManagement/internal/user"
)

type Handler struct {
	users   user.Service
	service Service
	logger  *zap.Logger
}

func NewHandler(users user.Service, service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{users: users, service: service, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("user request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

// SaveUser creates a new account and replies with its assigned id.
func (h *Handler) SaveUser(c *gin.Context) {
	var req user.SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	id, err := h.users.SaveUser(c.Request.Context(), req.ToEntity())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, id)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	signed, err := h.service.Login(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, LoginResponse{
		Token:   signed,
		Message: "Success!",
	})
}
