package modules

import (
	"riftstats/api/handlers"
	"riftstats/api/services"
)

func initializeMatchHandler(deps *ModuleDependencies) *handlers.MatchHandler {
	matchDeps := &services.MatchServiceDeps{
		RiotAPI: deps.RiotClient,
		Assets:  deps.Assets,
		Logger:  deps.Logger,
	}

	matchService := services.NewMatchService(matchDeps)

	matchHandlerDeps := &handlers.MatchHandlerDependencies{
		MatchService: matchService,
	}

	return handlers.NewMatchHandler(matchHandlerDeps)
}
