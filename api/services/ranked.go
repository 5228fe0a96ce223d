package services

import (
	"context"
	"riftstats/api/dto"
)

// RankedService exposes the ranked standings of a player.
type RankedService struct {
	riotApi RiotAPI
}

// RankedServiceDeps is the dependency list for the ranked service.
type RankedServiceDeps struct {
	RiotAPI RiotAPI
}

// NewRankedService creates a ranked service.
func NewRankedService(deps *RankedServiceDeps) *RankedService {
	return &RankedService{
		riotApi: deps.RiotAPI,
	}
}

// GetRankedInfo returns one entry per ranked queue the player has standings
// in. A unranked player maps to ErrNoRankedInfo.
func (s *RankedService) GetRankedInfo(ctx context.Context, puuid string) ([]dto.RankedEntry, error) {
	entries, err := s.riotApi.LeagueEntriesByPuuid(ctx, puuid)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, ErrNoRankedInfo
	}

	rankedEntries := make([]dto.RankedEntry, 0, len(entries))
	for _, entry := range entries {
		rankedEntries = append(rankedEntries, dto.RankedEntry{
			QueueType:    entry.QueueType,
			Tier:         entry.Tier,
			Rank:         entry.Rank,
			LeaguePoints: entry.LeaguePoints,
			Wins:         entry.Wins,
			Losses:       entry.Losses,
			HotStreak:    entry.HotStreak,
			Veteran:      entry.Veteran,
			FreshBlood:   entry.FreshBlood,
			Inactive:     entry.Inactive,
		})
	}

	return rankedEntries, nil
}
