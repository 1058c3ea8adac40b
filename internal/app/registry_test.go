package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/saiventuri/EmployeeManagement/internal/domain"
	"github.com/saiventuri/EmployeeManagement/internal/shared/response"
	"github.com/saiventuri/EmployeeManagement/internal/token"
)

type nopResolver struct{}

func (nopResolver) LoadIdentity(context.Context, string) (domain.Identity, error) {
	return domain.Identity{}, errors.New("unknown user")
}

func setupPipeline(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	registerPipeline(router, token.NewIssuer("pipeline-test-secret"), nopResolver{})
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestPipelineFallbacks(t *testing.T) {
	router := setupPipeline(t)

	t.Run("unknown path answers the 404 envelope", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/nope")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var envelope response.ErrorMessage
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, http.StatusNotFound, envelope.Status)
		assert.NotEmpty(t, envelope.Message)
		assert.NotEmpty(t, envelope.RequestID)
	})

	t.Run("wrong method on a known path answers the 405 envelope", func(t *testing.T) {
		rec := serve(router, http.MethodPost, "/ping")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		var envelope response.ErrorMessage
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, http.StatusMethodNotAllowed, envelope.Status)
		assert.NotEmpty(t, envelope.Message)
		assert.NotEmpty(t, envelope.RequestID)
	})

	t.Run("health endpoint is reachable without a credential", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/healthz")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
