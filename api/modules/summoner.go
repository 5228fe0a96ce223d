package modules

import (
	"riftstats/api/handlers"
	"riftstats/api/services"
)

func initializeSummonerHandler(deps *ModuleDependencies) *handlers.SummonerHandler {
	summonerDeps := &services.SummonerServiceDeps{
		RiotAPI: deps.RiotClient,
		Assets:  deps.Assets,
	}

	summonerService := services.NewSummonerService(summonerDeps)

	summonerHandlerDeps := &handlers.SummonerHandlerDependencies{
		SummonerService: summonerService,
	}

	return handlers.NewSummonerHandler(summonerHandlerDeps)
}
