package config

import (
	"os"
)

// Riot API configuration struct.
type RiotConfiguration struct {
	ApiKey          string
	Region          string
	AccountBaseURL  string
	SummonerBaseURL string
	MatchBaseURL    string
	LeagueBaseURL   string
	MasteryBaseURL  string
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Bucket configuration for shipping the logs.
type BucketConfiguration struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

var (
	Riot   RiotConfiguration
	Redis  RedisConfiguration
	Bucket BucketConfiguration
)

// Load the variables.
func LoadEnv() {
	// Load the Riot configuration.
	// The base URLs are split per endpoint family, since account and match run
	// on the continental routing host while summoner and league run on the
	// platform host.
	Riot.ApiKey = os.Getenv("RIOT_API_KEY")
	Riot.Region = getEnvOrDefault("RIOT_REGION", "euw1")
	Riot.AccountBaseURL = getEnvOrDefault("RIOT_ACCOUNT_BASE_URL", "https://europe.api.riotgames.com/riot/account/v1/accounts/by-riot-id")
	Riot.SummonerBaseURL = getEnvOrDefault("RIOT_SUMMONER_BASE_URL", "https://euw1.api.riotgames.com/lol/summoner/v4/summoners/by-puuid")
	Riot.MatchBaseURL = getEnvOrDefault("RIOT_MATCH_BASE_URL", "https://europe.api.riotgames.com/lol/match/v5")
	Riot.LeagueBaseURL = getEnvOrDefault("RIOT_LEAGUE_BASE_URL", "https://euw1.api.riotgames.com/lol/league/v4")
	Riot.MasteryBaseURL = getEnvOrDefault("RIOT_MASTERY_BASE_URL", "https://euw1.api.riotgames.com/lol/champion-mastery/v4")

	// Load the Redis configuration.
	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = os.Getenv("REDIS_PORT")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	// Load the log bucket configuration.
	Bucket.Region = os.Getenv("BUCKET_REGION")
	Bucket.Endpoint = os.Getenv("BUCKET_ENDPOINT")
	Bucket.AccessKey = os.Getenv("BUCKET_ACCESS_KEY")
	Bucket.AccessSecret = os.Getenv("BUCKET_ACCESS_SECRET")
	Bucket.LogBucket = os.Getenv("BUCKET_LOG_BUCKET")
}

// Return the environment variable if set, else the default.
func getEnvOrDefault(key string, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
