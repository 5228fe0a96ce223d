package handlers

import (
	"errors"
	"net/http"

	"riftstats/api/filters"
	"riftstats/api/services"

	"github.com/gin-gonic/gin"
)

// MatchHandler is the handler for the match history endpoints.
type MatchHandler struct {
	matchService *services.MatchService
}

type MatchHandlerDependencies struct {
	MatchService *services.MatchService
}

// Create a new instance of the match handler.
func NewMatchHandler(deps *MatchHandlerDependencies) *MatchHandler {
	return &MatchHandler{
		matchService: deps.MatchService,
	}
}

// Handler for the match history of a puuid.
func (h *MatchHandler) GetMatchHistory(c *gin.Context) {
	var up filters.PuuidURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !filters.ValidPuuid(up.Puuid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid puuid format"})
		return
	}

	var qp filters.MatchHistoryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summaries, err := h.matchService.GetMatchHistory(c.Request.Context(), up.Puuid, qp.Start, qp.Count)
	if err != nil {
		h.writeMatchHistoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// Handler for the match history of a riot id.
func (h *MatchHandler) GetMatchHistoryByRiotID(c *gin.Context) {
	var up filters.RiotIdURIParams
	if err := c.ShouldBindUri(&up); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var qp filters.MatchHistoryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summaries, err := h.matchService.GetMatchHistoryByRiotID(c.Request.Context(), up.GameName, up.GameTag, qp.Start, qp.Count)
	if err != nil {
		h.writeMatchHistoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// Map the pipeline outcomes to responses. The two empty outcomes stay
// distinct so a client can tell a empty history apart from a upstream
// parsing problem.
func (h *MatchHandler) writeMatchHistoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSummonerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Summoner not found."})
	case errors.Is(err, services.ErrNoMatches):
		c.JSON(http.StatusNotFound, gin.H{"message": "No matches found for this player."})
	case errors.Is(err, services.ErrNoParsableMatches):
		c.JSON(http.StatusNotFound, gin.H{"message": "Could not parse any match details."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
