package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	providerHealthChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Provider  string `json:"provider"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(providerHealthChecker func() bool) *HealthController {
	return &HealthController{
		providerHealthChecker: providerHealthChecker,
	}
}

// Check handles GET /health requests.
// It reports whether the hosted data provider is configured and reachable.
func (h *HealthController) Check(c *gin.Context) {
	providerStatus := "unconfigured"
	if h.providerHealthChecker != nil && h.providerHealthChecker() {
		providerStatus = "configured"
	}

	response := HealthResponse{
		Status:    "ok",
		Provider:  providerStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
