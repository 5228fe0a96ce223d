package dto

// SummonerProfile is the profile card returned by the summoner endpoint.
type SummonerProfile struct {
	SummonerName   string `json:"summonerName"`
	Tagline        string `json:"tagline"`
	Puuid          string `json:"puuid"`
	Level          int    `json:"level"`
	Region         string `json:"region"`
	ProfileIconUrl string `json:"profileIconUrl"`
}

// RankedEntry is one ranked queue standing of a player.
type RankedEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
	Inactive     bool   `json:"inactive"`
}

// MasteryScore is one champion mastery entry, enriched with the champion
// display data resolved through the catalog.
type MasteryScore struct {
	ChampionId                   int64  `json:"championId"`
	ChampionName                 string `json:"championName"`
	ChampionIconUrl              string `json:"championIconUrl"`
	ChampionLevel                int    `json:"championLevel"`
	ChampionPoints               int    `json:"championPoints"`
	LastPlayTime                 int64  `json:"lastPlayTime"`
	ChampionPointsSinceLastLevel int    `json:"championPointsSinceLastLevel"`
	ChampionPointsUntilNextLevel int    `json:"championPointsUntilNextLevel"`
	ChestGranted                 bool   `json:"chestGranted"`
	TokensEarned                 int    `json:"tokensEarned"`
}

// HealthDetails is the detailed health endpoint payload.
type HealthDetails struct {
	Status    string       `json:"status"`
	Timestamp string       `json:"timestamp"`
	Service   string       `json:"service"`
	Version   string       `json:"version"`
	Checks    HealthChecks `json:"checks"`
}

// HealthChecks carries the individual probe results.
type HealthChecks struct {
	RiotApiKey  HealthProbe `json:"riotApiKey"`
	Environment HealthProbe `json:"environment"`
}

// HealthProbe is a single check outcome.
type HealthProbe struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
