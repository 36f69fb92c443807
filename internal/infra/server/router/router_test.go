package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/finance-pulse/backend/config"
	"github.com/finance-pulse/backend/internal/integration/entrypoint/controller"
)

func degradedEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Routes: config.RoutesConfig{
			ProtectedPrefix: "/dashboard",
			AuthPath:        "/auth",
			CallbackPath:    "/auth/callback",
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	health := controller.NewHealthController(func() bool { return false })

	r := NewRouter(cfg, health, nil, nil, nil, nil, nil, nil, nil, nil, nil)
	return r.Setup("test")
}

func TestRouter_DegradedMode(t *testing.T) {
	engine := degradedEngine(t)

	t.Run("data routes answer with the configuration error", func(t *testing.T) {
		for _, path := range []string{"/api/v1/expenses", "/api/v1/dashboard/summary", "/api/v1/auth/login"} {
			recorder := httptest.NewRecorder()
			engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

			if recorder.Code != http.StatusServiceUnavailable {
				t.Errorf("%s: expected status 503, got %d", path, recorder.Code)
			}

			var body map[string]any
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("%s: failed to decode body: %v", path, err)
			}
			if body["code"] != "CFG-010001" {
				t.Errorf("%s: expected code CFG-010001, got %v", path, body["code"])
			}
		}
	})

	t.Run("health stays reachable", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		if recorder.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", recorder.Code)
		}
	})

	t.Run("unknown pages still get a 404", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/nope", nil))

		if recorder.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", recorder.Code)
		}
	})
}
