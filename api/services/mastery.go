package services

import (
	"context"
	"riftstats/api/dto"
)

// MasteryService exposes the champion mastery scores of a player, enriched
// with catalog display data.
type MasteryService struct {
	riotApi RiotAPI
	assets  AssetResolver
}

// MasteryServiceDeps is the dependency list for the mastery service.
type MasteryServiceDeps struct {
	RiotAPI RiotAPI
	Assets  AssetResolver
}

// NewMasteryService creates a mastery service.
func NewMasteryService(deps *MasteryServiceDeps) *MasteryService {
	return &MasteryService{
		riotApi: deps.RiotAPI,
		assets:  deps.Assets,
	}
}

// GetMasteryInfo returns every mastery score of a player with the champion
// name and icon resolved through the catalog.
func (s *MasteryService) GetMasteryInfo(ctx context.Context, puuid string) ([]dto.MasteryScore, error) {
	masteries, err := s.riotApi.MasteriesByPuuid(ctx, puuid)
	if err != nil {
		return nil, err
	}

	if len(masteries) == 0 {
		return nil, ErrNoMasteryInfo
	}

	scores := make([]dto.MasteryScore, 0, len(masteries))
	for _, mastery := range masteries {
		championName, championIconUrl := s.assets.ChampionDisplay(ctx, mastery.ChampionId)

		scores = append(scores, dto.MasteryScore{
			ChampionId:                   mastery.ChampionId,
			ChampionName:                 championName,
			ChampionIconUrl:              championIconUrl,
			ChampionLevel:                mastery.ChampionLevel,
			ChampionPoints:               mastery.ChampionPoints,
			LastPlayTime:                 mastery.LastPlayTime,
			ChampionPointsSinceLastLevel: mastery.ChampionPointsSinceLastLevel,
			ChampionPointsUntilNextLevel: mastery.ChampionPointsUntilNextLevel,
			ChestGranted:                 mastery.ChestGranted,
			TokensEarned:                 mastery.TokensEarned,
		})
	}

	return scores, nil
}
