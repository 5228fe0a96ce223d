package handlers

import (
	"net/http"
	"runtime"
	"time"

	"riftstats/api/dto"
	"riftstats/pkg/config"

	"github.com/gin-gonic/gin"
)

// HealthHandler is the handler for the liveness endpoints.
type HealthHandler struct{}

// Create a new instance of the health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Handler for the simple liveness probe.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Handler for the detailed health report.
// Reports whether a riot api key is configured without ever exposing it.
func (h *HealthHandler) GetHealthDetails(c *gin.Context) {
	apiKeyProbe := dto.HealthProbe{
		Status:  "ok",
		Message: "Riot API key is configured",
	}
	if config.Riot.ApiKey == "" {
		apiKeyProbe = dto.HealthProbe{
			Status:  "warning",
			Message: "Riot API key is missing",
		}
	}

	c.JSON(http.StatusOK, dto.HealthDetails{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "riftstats",
		Version:   runtime.Version(),
		Checks: dto.HealthChecks{
			RiotApiKey: apiKeyProbe,
			Environment: dto.HealthProbe{
				Status:  "ok",
				Message: "Region " + config.Riot.Region,
			},
		},
	})
}
