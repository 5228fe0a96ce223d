package services

import (
	"context"
	"riftstats/api/converters"
	"riftstats/api/dto"
	"riftstats/pkg/logger"
)

// MatchService drives the match history pipeline: list ids, fetch each raw
// match and assemble its summary.
type MatchService struct {
	riotApi RiotAPI
	assets  AssetResolver
	logger  *logger.Logger
}

// MatchServiceDeps is the dependency list for the match service.
type MatchServiceDeps struct {
	RiotAPI RiotAPI
	Assets  AssetResolver
	Logger  *logger.Logger
}

// NewMatchService creates a match service.
func NewMatchService(deps *MatchServiceDeps) *MatchService {
	return &MatchService{
		riotApi: deps.RiotAPI,
		assets:  deps.Assets,
		logger:  deps.Logger,
	}
}

// GetMatchHistory returns the assembled summaries for a page of a player
// match history.
//
// Matches are processed sequentially in id order and the output keeps that
// order. One bad match (fetch error or a document the assembler rejects)
// is skipped and logged, it never aborts the rest of the batch.
func (s *MatchService) GetMatchHistory(ctx context.Context, puuid string, start int, count int) ([]*dto.MatchSummary, error) {
	matchIds, err := s.riotApi.MatchIDsByPuuid(ctx, puuid, start, count)
	if err != nil {
		return nil, err
	}

	if len(matchIds) == 0 {
		return nil, ErrNoMatches
	}

	summaries := make([]*dto.MatchSummary, 0, len(matchIds))
	for _, matchId := range matchIds {
		rawMatch, err := s.riotApi.MatchByID(ctx, matchId)
		if err != nil {
			s.logger.Errorf("skipping match %s: %v", matchId, err)
			continue
		}

		summary := converters.ConvertMatchSummary(ctx, rawMatch, puuid, s.assets)
		if summary == nil {
			s.logger.Infof("skipping match %s: no summary for player %s", matchId, puuid)
			continue
		}

		summaries = append(summaries, summary)
	}

	if len(summaries) == 0 {
		return nil, ErrNoParsableMatches
	}

	return summaries, nil
}

// GetMatchHistoryByRiotID resolves a riot id to a puuid first and then runs
// the same pipeline.
func (s *MatchService) GetMatchHistoryByRiotID(ctx context.Context, gameName string, gameTag string, start int, count int) ([]*dto.MatchSummary, error) {
	account, err := s.riotApi.AccountByRiotID(ctx, gameName, gameTag)
	if err != nil {
		return nil, err
	}

	if account == nil || account.Puuid == "" {
		return nil, ErrSummonerNotFound
	}

	return s.GetMatchHistory(ctx, account.Puuid, start, count)
}
