package services

import (
	"context"
	"errors"
	"testing"

	"riftstats/api/services/testutil"
	"riftstats/pkg/riot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetRankedInfo(t *testing.T) {
	const puuid = "test-puuid-0000000000000000000000000000000000000000000000000000"

	t.Run("maps every queue entry", func(t *testing.T) {
		mockRiotApi := &testutil.MockRiotAPI{}
		service := NewRankedService(&RankedServiceDeps{RiotAPI: mockRiotApi})

		mockRiotApi.On("LeagueEntriesByPuuid", mock.Anything, puuid).
			Return([]riot.LeagueEntry{
				{
					QueueType:    "RANKED_SOLO_5x5",
					Tier:         "GOLD",
					Rank:         "II",
					LeaguePoints: 54,
					Wins:         120,
					Losses:       110,
					HotStreak:    true,
				},
				{
					QueueType: "RANKED_FLEX_SR",
					Tier:      "SILVER",
					Rank:      "I",
				},
			}, nil).Once()

		entries, err := service.GetRankedInfo(context.Background(), puuid)

		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, "RANKED_SOLO_5x5", entries[0].QueueType)
		assert.Equal(t, "GOLD", entries[0].Tier)
		assert.Equal(t, "II", entries[0].Rank)
		assert.Equal(t, 54, entries[0].LeaguePoints)
		assert.True(t, entries[0].HotStreak)
		assert.Equal(t, "RANKED_FLEX_SR", entries[1].QueueType)
		testutil.VerifyAllMocks(t, mockRiotApi)
	})

	t.Run("unranked player", func(t *testing.T) {
		mockRiotApi := &testutil.MockRiotAPI{}
		service := NewRankedService(&RankedServiceDeps{RiotAPI: mockRiotApi})

		mockRiotApi.On("LeagueEntriesByPuuid", mock.Anything, puuid).
			Return([]riot.LeagueEntry{}, nil).Once()

		entries, err := service.GetRankedInfo(context.Background(), puuid)

		assert.ErrorIs(t, err, ErrNoRankedInfo)
		assert.Nil(t, entries)
		testutil.VerifyAllMocks(t, mockRiotApi)
	})

	t.Run("upstream failure", func(t *testing.T) {
		mockRiotApi := &testutil.MockRiotAPI{}
		service := NewRankedService(&RankedServiceDeps{RiotAPI: mockRiotApi})

		upstreamErr := errors.New("request failed")
		mockRiotApi.On("LeagueEntriesByPuuid", mock.Anything, puuid).
			Return(nil, upstreamErr).Once()

		entries, err := service.GetRankedInfo(context.Background(), puuid)

		assert.ErrorIs(t, err, upstreamErr)
		assert.Nil(t, entries)
		testutil.VerifyAllMocks(t, mockRiotApi)
	})
}
