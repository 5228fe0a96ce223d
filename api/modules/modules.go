package modules

import (
	"net/http"
	"time"

	"riftstats/api/handlers"
	"riftstats/pkg/config"
	"riftstats/pkg/ddragon"
	"riftstats/pkg/logger"
	"riftstats/pkg/redis"
	"riftstats/pkg/riot"

	"github.com/gin-gonic/gin"
)

// Module containing the necessary handlers.
type Module struct {
	Router          *gin.Engine
	SummonerHandler *handlers.SummonerHandler
	MatchHandler    *handlers.MatchHandler
	RankedHandler   *handlers.RankedHandler
	MasteryHandler  *handlers.MasteryHandler
	HealthHandler   *handlers.HealthHandler
}

// Shared dependencies used to initialize each handler.
type ModuleDependencies struct {
	RiotClient *riot.Client
	Assets     *ddragon.Client
	Logger     *logger.Logger
}

// Create a new module with all the necessary handlers initialized.
func NewModule() (*Module, error) {
	router := gin.Default()

	appLogger, err := logger.CreateLogger()
	if err != nil {
		return nil, err
	}
	appLogger.StartShippingWorker(logger.ShipInterval)

	// One pooled client shared by the Riot client and the catalog resolver.
	httpClient := &http.Client{Timeout: 10 * time.Second}

	// Redis is an optional second cache level, skipped when not configured.
	var redisClient *redis.RedisClient
	if config.Redis.Host != "" {
		redisClient = redis.GetClient()
	}

	deps := &ModuleDependencies{
		RiotClient: riot.NewClient(config.Riot, httpClient),
		Assets: ddragon.NewClient(&ddragon.ClientDeps{
			HTTPClient: httpClient,
			Redis:      redisClient,
		}),
		Logger: appLogger,
	}

	// Return the module with all handlers.
	return &Module{
		Router:          router,
		SummonerHandler: initializeSummonerHandler(deps),
		MatchHandler:    initializeMatchHandler(deps),
		RankedHandler:   initializeRankedHandler(deps),
		MasteryHandler:  initializeMasteryHandler(deps),
		HealthHandler:   handlers.NewHealthHandler(),
	}, nil
}
