package testutil

import (
	"context"
	"riftstats/pkg/riot"
	"testing"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// Riot API mock implementation.
type MockRiotAPI struct {
	mock.Mock
}

func (m *MockRiotAPI) AccountByRiotID(ctx context.Context, gameName string, tagLine string) (*riot.Account, error) {
	args := m.Called(ctx, gameName, tagLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*riot.Account), args.Error(1)
}

func (m *MockRiotAPI) SummonerByPuuid(ctx context.Context, puuid string) (*riot.Summoner, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*riot.Summoner), args.Error(1)
}

func (m *MockRiotAPI) MatchIDsByPuuid(ctx context.Context, puuid string, start int, count int) ([]string, error) {
	args := m.Called(ctx, puuid, start, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRiotAPI) MatchByID(ctx context.Context, matchId string) ([]byte, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRiotAPI) LeagueEntriesByPuuid(ctx context.Context, puuid string) ([]riot.LeagueEntry, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]riot.LeagueEntry), args.Error(1)
}

func (m *MockRiotAPI) MasteriesByPuuid(ctx context.Context, puuid string) ([]riot.MasteryEntry, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]riot.MasteryEntry), args.Error(1)
}

// Asset resolver mock implementation.
type MockAssetResolver struct {
	mock.Mock
}

func (m *MockAssetResolver) ChampionIconURLByName(ctx context.Context, championName string) string {
	args := m.Called(ctx, championName)
	return args.String(0)
}

func (m *MockAssetResolver) SummonerSpellIconURL(ctx context.Context, spellId int) string {
	args := m.Called(ctx, spellId)
	return args.String(0)
}

func (m *MockAssetResolver) ItemIconURL(ctx context.Context, itemId int) string {
	args := m.Called(ctx, itemId)
	return args.String(0)
}

func (m *MockAssetResolver) ChampionDisplay(ctx context.Context, championId int64) (string, string) {
	args := m.Called(ctx, championId)
	return args.String(0), args.String(1)
}

func (m *MockAssetResolver) ProfileIconURL(ctx context.Context, iconId int) string {
	args := m.Called(ctx, iconId)
	return args.String(0)
}
