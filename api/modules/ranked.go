package modules

import (
	"riftstats/api/handlers"
	"riftstats/api/services"
)

func initializeRankedHandler(deps *ModuleDependencies) *handlers.RankedHandler {
	rankedDeps := &services.RankedServiceDeps{
		RiotAPI: deps.RiotClient,
	}

	rankedService := services.NewRankedService(rankedDeps)

	rankedHandlerDeps := &handlers.RankedHandlerDependencies{
		RankedService: rankedService,
	}

	return handlers.NewRankedHandler(rankedHandlerDeps)
}
