package handlers

import (
	"errors"
	"net/http"

	"riftstats/api/filters"
	"riftstats/api/services"

	"github.com/gin-gonic/gin"
)

// SummonerHandler is the handler for the summoner profile endpoints.
type SummonerHandler struct {
	summonerService *services.SummonerService
}

type SummonerHandlerDependencies struct {
	SummonerService *services.SummonerService
}

// Create a new instance of the summoner handler.
func NewSummonerHandler(deps *SummonerHandlerDependencies) *SummonerHandler {
	return &SummonerHandler{
		summonerService: deps.SummonerService,
	}
}

// Handler for resolving a riot id into the profile card.
func (h *SummonerHandler) GetSummonerProfile(c *gin.Context) {
	var up filters.RiotIdURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.summonerService.GetSummonerProfile(c.Request.Context(), up.GameName, up.GameTag)
	if err != nil {
		if errors.Is(err, services.ErrSummonerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Summoner not found."})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
