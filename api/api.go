package main

import (
	"log"
	"os"

	"riftstats/api/modules"
	"riftstats/api/routes"
	"riftstats/pkg/config"

	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	config.LoadEnv()

	// Create a module with all necessary handlers.
	module, err := modules.NewModule()
	if err != nil {
		log.Fatalf("Error initializing the module: %v", err)
	}

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.SummonerHandler,
		module.MatchHandler,
		module.RankedHandler,
		module.MasteryHandler,
		module.HealthHandler,
	)

	// Start the server.
	router.Run(":8080")
}
