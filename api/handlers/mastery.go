package handlers

import (
	"errors"
	"net/http"

	"riftstats/api/filters"
	"riftstats/api/services"

	"github.com/gin-gonic/gin"
)

// MasteryHandler is the handler for the champion mastery endpoints.
type MasteryHandler struct {
	masteryService *services.MasteryService
}

type MasteryHandlerDependencies struct {
	MasteryService *services.MasteryService
}

// Create a new instance of the mastery handler.
func NewMasteryHandler(deps *MasteryHandlerDependencies) *MasteryHandler {
	return &MasteryHandler{
		masteryService: deps.MasteryService,
	}
}

// Handler for the mastery scores of a puuid.
func (h *MasteryHandler) GetMasteryInfo(c *gin.Context) {
	var up filters.PuuidURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !filters.ValidPuuid(up.Puuid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid puuid format"})
		return
	}

	scores, err := h.masteryService.GetMasteryInfo(c.Request.Context(), up.Puuid)
	if err != nil {
		if errors.Is(err, services.ErrNoMasteryInfo) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Mastery info not found."})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, scores)
}
