package routes

import (
	"riftstats/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.SummonerHandler:
			r.registerSummonerHandler(handler)
		case *handlers.MatchHandler:
			r.registerMatchHandler(handler)
		case *handlers.RankedHandler:
			r.registerRankedHandler(handler)
		case *handlers.MasteryHandler:
			r.registerMasteryHandler(handler)
		case *handlers.HealthHandler:
			r.registerHealthHandler(handler)
		}
	}
}

// Register the summoner handler.
func (r *Router) registerSummonerHandler(handler *handlers.SummonerHandler) {
	summoner := r.api.Group("/summoner")
	{
		summoner.GET("/:gameName/:gameTag", handler.GetSummonerProfile)
	}
}

// Register the match handler.
func (r *Router) registerMatchHandler(handler *handlers.MatchHandler) {
	match := r.api.Group("/match")
	{
		match.GET("/:puuid", handler.GetMatchHistory)
		match.GET("/summoner/:gameName/:gameTag", handler.GetMatchHistoryByRiotID)
	}
}

// Register the ranked handler.
func (r *Router) registerRankedHandler(handler *handlers.RankedHandler) {
	ranked := r.api.Group("/ranked")
	{
		ranked.GET("/:puuid", handler.GetRankedInfo)
	}
}

// Register the mastery handler.
func (r *Router) registerMasteryHandler(handler *handlers.MasteryHandler) {
	mastery := r.api.Group("/mastery")
	{
		mastery.GET("/:puuid", handler.GetMasteryInfo)
	}
}

// Register the health handler.
func (r *Router) registerHealthHandler(handler *handlers.HealthHandler) {
	health := r.api.Group("/health")
	{
		health.GET("", handler.GetHealth)
		health.GET("/details", handler.GetHealthDetails)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
