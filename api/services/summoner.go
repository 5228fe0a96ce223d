package services

import (
	"context"
	"riftstats/api/dto"
	"riftstats/pkg/config"
)

// SummonerService resolves a riot id to the profile card shown on the client
// header.
type SummonerService struct {
	riotApi RiotAPI
	assets  AssetResolver
}

// SummonerServiceDeps is the dependency list for the summoner service.
type SummonerServiceDeps struct {
	RiotAPI RiotAPI
	Assets  AssetResolver
}

// NewSummonerService creates a summoner service.
func NewSummonerService(deps *SummonerServiceDeps) *SummonerService {
	return &SummonerService{
		riotApi: deps.RiotAPI,
		assets:  deps.Assets,
	}
}

// GetSummonerProfile resolves the account and summoner data for a riot id.
func (s *SummonerService) GetSummonerProfile(ctx context.Context, gameName string, gameTag string) (*dto.SummonerProfile, error) {
	account, err := s.riotApi.AccountByRiotID(ctx, gameName, gameTag)
	if err != nil {
		return nil, err
	}

	if account == nil || account.Puuid == "" {
		return nil, ErrSummonerNotFound
	}

	summoner, err := s.riotApi.SummonerByPuuid(ctx, account.Puuid)
	if err != nil {
		return nil, err
	}

	// Prefer the account display name, it's the authoritative riot id.
	displayName := account.GameName
	if displayName == "" {
		displayName = gameName
	}

	return &dto.SummonerProfile{
		SummonerName:   displayName,
		Tagline:        gameTag,
		Puuid:          account.Puuid,
		Level:          summoner.SummonerLevel,
		Region:         config.Riot.Region,
		ProfileIconUrl: s.assets.ProfileIconURL(ctx, summoner.ProfileIconId),
	}, nil
}
