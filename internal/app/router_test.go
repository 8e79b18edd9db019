package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"aquafarm.io/steward/internal/api/handlers"
	"aquafarm.io/steward/internal/config"
	"aquafarm.io/steward/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

func newTestRouter() http.Handler {
	cfg := &config.Config{}
	cfg.Security.JWTSecret = "router-test-secret-123456789012345"
	return newRouter(cfg, handlers.NewServer(handlers.ServerDeps{}))
}

func TestRouterHealthIsPublic(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	newTestRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterAPIRequiresAuth(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sites/s-1/delete-preview", nil)
	newTestRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouterUnknownRoute(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	newTestRouter().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
