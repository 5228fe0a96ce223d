package dto

import (
	"time"
)

// MatchSummary is the per match entry of the match history response.
// The field set and json names are a compatibility contract with the web
// client.
type MatchSummary struct {
	MatchId             string               `json:"matchId"`
	GameMode            string               `json:"gameMode"`
	GameDate            time.Time            `json:"gameDate"`
	GameDurationMinutes int                  `json:"gameDurationMinutes"`
	Victory             bool                 `json:"victory"`
	MainPlayer          *PlayerPerformance   `json:"mainPlayer"`
	AllPlayers          []*PlayerPerformance `json:"allPlayers"`
}

// PlayerPerformance holds the enriched stats of one participant.
type PlayerPerformance struct {
	SummonerName     string `json:"summonerName"`
	Tagline          string `json:"tagline"`
	ChampionName     string `json:"championName"`
	ChampionImageUrl string `json:"championImageUrl"`
	Kills            int    `json:"kills"`
	Deaths           int    `json:"deaths"`
	Assists          int    `json:"assists"`
	CS               int    `json:"cs"`
	VisionScore      int    `json:"visionScore"`
	KDA              string `json:"kda"`
	TeamId           int    `json:"teamId"`
	TeamPosition     string `json:"teamPosition"`
	IsMainPlayer     bool   `json:"isMainPlayer"`

	// Arena only: augment ids and the duo placement. Empty and zero on the
	// standard queues.
	PlayerAugments   []int `json:"playerAugments"`
	SubteamPlacement int   `json:"subteamPlacement"`

	Summoner1Id       int    `json:"summoner1Id"`
	Summoner2Id       int    `json:"summoner2Id"`
	Summoner1ImageUrl string `json:"summoner1ImageUrl"`
	Summoner2ImageUrl string `json:"summoner2ImageUrl"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"`

	Item0ImageUrl string `json:"item0ImageUrl"`
	Item1ImageUrl string `json:"item1ImageUrl"`
	Item2ImageUrl string `json:"item2ImageUrl"`
	Item3ImageUrl string `json:"item3ImageUrl"`
	Item4ImageUrl string `json:"item4ImageUrl"`
	Item5ImageUrl string `json:"item5ImageUrl"`
	Item6ImageUrl string `json:"item6ImageUrl"`
}
