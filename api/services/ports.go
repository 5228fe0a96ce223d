package services

import (
	"context"
	"riftstats/api/converters"
	"riftstats/pkg/riot"
)

// RiotAPI is the upstream collaborator contract the services consume.
// Satisfied by riot.Client, mocked on tests.
type RiotAPI interface {
	AccountByRiotID(ctx context.Context, gameName string, tagLine string) (*riot.Account, error)
	SummonerByPuuid(ctx context.Context, puuid string) (*riot.Summoner, error)
	MatchIDsByPuuid(ctx context.Context, puuid string, start int, count int) ([]string, error)
	MatchByID(ctx context.Context, matchId string) ([]byte, error)
	LeagueEntriesByPuuid(ctx context.Context, puuid string) ([]riot.LeagueEntry, error)
	MasteriesByPuuid(ctx context.Context, puuid string) ([]riot.MasteryEntry, error)
}

// AssetResolver is the catalog contract the services consume, a superset of
// what the summary pipeline needs. Satisfied by ddragon.Client.
type AssetResolver interface {
	converters.AssetResolver
	ChampionDisplay(ctx context.Context, championId int64) (string, string)
	ProfileIconURL(ctx context.Context, iconId int) string
}
