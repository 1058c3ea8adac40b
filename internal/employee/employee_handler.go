package employee

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	employeeerrors "github.com/saiventuri/EmployeeManagement/internal/employee/errors"
	"github.com/saiventuri/EmployeeManagement/internal/shared/apperror"
	"github.com/saiventuri/EmployeeManagement/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

// bindRequest enforces the JSON content type and field constraints
// before anything reaches the service layer.
func (h *Handler) bindRequest(c *gin.Context, req *EmployeeRequest) bool {
	if ct := c.ContentType(); !strings.HasPrefix(ct, "application/json") {
		h.writeError(c, apperror.ErrUnsupportedMediaType)
		return false
	}
	if err := c.ShouldBindJSON(req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return false
	}
	return true
}

func (h *Handler) Create(c *gin.Context) {
	var req EmployeeRequest
	if !h.bindRequest(c, &req) {
		return
	}

	empl, err := req.ToEntity()
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp, err := h.service.Add(c.Request.Context(), empl)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if resp == nil {
		resp = []EmployeeResponse{}
	}
	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	var req EmployeeRequest
	if !h.bindRequest(c, &req) {
		return
	}

	empl, err := req.ToEntity()
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), empl)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

// Patch performs the same full-overwrite replace as Update. The two
// verbs are intentionally identical here; do not turn this into a
// partial merge without changing Update too.
func (h *Handler) Patch(c *gin.Context) {
	h.Update(c)
}

func (h *Handler) DeleteByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.NoContent(c, http.StatusNoContent)
}

func (h *Handler) DeleteAll(c *gin.Context) {
	if err := h.service.DeleteAll(c.Request.Context()); err != nil {
		h.writeError(c, err)
		return
	}
	response.NoContent(c, http.StatusNoContent)
}

func (h *Handler) pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		h.writeError(c, employeeerrors.ErrInvalidEmployeeID)
		return 0, false
	}
	return uint(id), true
}
