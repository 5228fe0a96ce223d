package modules

import (
	"riftstats/api/handlers"
	"riftstats/api/services"
)

func initializeMasteryHandler(deps *ModuleDependencies) *handlers.MasteryHandler {
	masteryDeps := &services.MasteryServiceDeps{
		RiotAPI: deps.RiotClient,
		Assets:  deps.Assets,
	}

	masteryService := services.NewMasteryService(masteryDeps)

	masteryHandlerDeps := &handlers.MasteryHandlerDependencies{
		MasteryService: masteryService,
	}

	return handlers.NewMasteryHandler(masteryHandlerDeps)
}
