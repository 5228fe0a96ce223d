package handlers

import (
	"errors"
	"net/http"

	"riftstats/api/filters"
	"riftstats/api/services"

	"github.com/gin-gonic/gin"
)

// RankedHandler is the handler for the ranked standing endpoints.
type RankedHandler struct {
	rankedService *services.RankedService
}

type RankedHandlerDependencies struct {
	RankedService *services.RankedService
}

// Create a new instance of the ranked handler.
func NewRankedHandler(deps *RankedHandlerDependencies) *RankedHandler {
	return &RankedHandler{
		rankedService: deps.RankedService,
	}
}

// Handler for the ranked standings of a puuid.
func (h *RankedHandler) GetRankedInfo(c *gin.Context) {
	var up filters.PuuidURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !filters.ValidPuuid(up.Puuid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid puuid format"})
		return
	}

	entries, err := h.rankedService.GetRankedInfo(c.Request.Context(), up.Puuid)
	if err != nil {
		if errors.Is(err, services.ErrNoRankedInfo) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Ranked info not found."})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
