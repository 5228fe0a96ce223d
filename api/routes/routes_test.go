package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"riftstats/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	router := NewRouter(engine)
	router.SetupRoutes(
		handlers.NewHealthHandler(),
	)

	t.Run("health route is registered under the api group", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "healthy")
	})

	t.Run("details route is registered", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health/details", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "riftstats")
	})

	t.Run("unknown handlers are ignored", func(t *testing.T) {
		assert.NotPanics(t, func() {
			router.SetupRoutes("not a handler", 42, nil)
		})
	})

	t.Run("unregistered route misses", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tierlist", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
