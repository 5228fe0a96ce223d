package converters

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Deterministic resolver stub pinned to a single version.
type stubResolver struct{}

func (s *stubResolver) ChampionIconURLByName(ctx context.Context, championName string) string {
	return fmt.Sprintf("https://cdn.test/15.3.1/img/champion/%s.png", championName)
}

func (s *stubResolver) SummonerSpellIconURL(ctx context.Context, spellId int) string {
	if spellId == 0 {
		return ""
	}
	return fmt.Sprintf("https://cdn.test/15.3.1/img/spell/%d.png", spellId)
}

func (s *stubResolver) ItemIconURL(ctx context.Context, itemId int) string {
	if itemId == 0 {
		return ""
	}
	return fmt.Sprintf("https://cdn.test/15.3.1/img/item/%d.png", itemId)
}

// Raw participant builder for the fixtures.
func rawParticipant(puuid string, overrides map[string]any) map[string]any {
	participant := map[string]any{
		"puuid":                puuid,
		"riotIdGameName":       "Player " + puuid,
		"riotIdTagline":        "EUW",
		"championName":         "Ahri",
		"kills":                1,
		"deaths":               1,
		"assists":              1,
		"teamId":               100,
		"teamPosition":         "MIDDLE",
		"win":                  false,
		"totalMinionsKilled":   100,
		"neutralMinionsKilled": 20,
		"visionScore":          15,
		"summoner1Id":          4,
		"summoner2Id":          14,
		"item0":                1001,
		"item1":                3006,
		"item2":                0,
		"item3":                0,
		"item4":                0,
		"item5":                0,
		"item6":                3340,
	}
	for key, value := range overrides {
		participant[key] = value
	}
	return participant
}

func rawMatch(matchId string, info map[string]any) []byte {
	doc := map[string]any{
		"metadata": map[string]any{"matchId": matchId},
		"info":     info,
	}
	raw, _ := json.Marshal(doc)
	return raw
}

func TestPickFirst(t *testing.T) {
	assert.Equal(t, "riot", pickFirst("riot", "legacy", "fallback"))
	assert.Equal(t, "legacy", pickFirst("", "legacy", "fallback"))
	assert.Equal(t, "fallback", pickFirst("", "", "fallback"))
}

func TestFormatKDA(t *testing.T) {
	tests := []struct {
		kills, deaths, assists int
		expected               string
	}{
		// No deaths, the ratio is just kills+assists, no division.
		{5, 0, 3, "5/0/3 (8:1 KDA)"},
		{0, 0, 0, "0/0/0 (0:1 KDA)"},
		// Exact ratios print without trailing zeros.
		{10, 2, 5, "10/2/5 (7.5:1 KDA)"},
		{3, 1, 4, "3/1/4 (7:1 KDA)"},
		// Rounded to two decimals.
		{10, 3, 12, "10/3/12 (7.33:1 KDA)"},
		{2, 3, 0, "2/3/0 (0.67:1 KDA)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatKDA(tt.kills, tt.deaths, tt.assists))
	}
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 25, durationMinutes(1500))
	// Round half up.
	assert.Equal(t, 3, durationMinutes(150))
	assert.Equal(t, 2, durationMinutes(95))
	assert.Equal(t, 0, durationMinutes(0))
}

func TestConvertMatchSummaryNilCases(t *testing.T) {
	ctx := context.Background()
	resolver := &stubResolver{}

	tests := []struct {
		name string
		raw  []byte
	}{
		{"emptyDocument", nil},
		{"malformedJson", []byte(`{"metadata":`)},
		{"noInfo", []byte(`{"metadata":{"matchId":"EUW1_1"}}`)},
		{"noParticipants", rawMatch("EUW1_1", map[string]any{"queueId": 420, "participants": []any{}})},
		{"targetNotInMatch", rawMatch("EUW1_1", map[string]any{
			"queueId":      420,
			"participants": []any{rawParticipant("other-a", nil), rawParticipant("other-b", nil)},
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ConvertMatchSummary(ctx, tt.raw, "target-puuid", resolver))
		})
	}
}

func TestConvertMatchSummaryAramScenario(t *testing.T) {
	ctx := context.Background()
	resolver := &stubResolver{}

	raw := rawMatch("EUW1_100", map[string]any{
		"queueId":            450,
		"gameDuration":       1500,
		"gameStartTimestamp": 1735689600000,
		"participants": []any{
			rawParticipant("target-puuid", map[string]any{
				"kills": 3, "deaths": 1, "assists": 4, "win": true,
			}),
			rawParticipant("enemy-puuid", map[string]any{
				"teamId": 200, "win": false,
			}),
		},
	})

	summary := ConvertMatchSummary(ctx, raw, "target-puuid", resolver)
	require.NotNil(t, summary)

	assert.Equal(t, "EUW1_100", summary.MatchId)
	assert.Equal(t, "ARAM", summary.GameMode)
	assert.Equal(t, 25, summary.GameDurationMinutes)
	assert.True(t, summary.Victory)
	assert.Equal(t, time.UnixMilli(1735689600000), summary.GameDate)

	require.Len(t, summary.AllPlayers, 2)
	require.NotNil(t, summary.MainPlayer)
	assert.Equal(t, "3/1/4 (7:1 KDA)", summary.MainPlayer.KDA)
	assert.Equal(t, "Player target-puuid", summary.MainPlayer.SummonerName)
	assert.Equal(t, 120, summary.MainPlayer.CS)

	mainCount := 0
	for _, player := range summary.AllPlayers {
		if player.IsMainPlayer {
			mainCount++
		}
	}
	assert.Equal(t, 1, mainCount)

	// Participant order is preserved from the document.
	assert.True(t, summary.AllPlayers[0].IsMainPlayer)
	assert.False(t, summary.AllPlayers[1].IsMainPlayer)
}

func TestConvertMatchSummaryNamePreference(t *testing.T) {
	ctx := context.Background()
	resolver := &stubResolver{}

	raw := rawMatch("EUW1_1", map[string]any{
		"queueId": 420,
		"participants": []any{
			rawParticipant("target-puuid", map[string]any{
				"riotIdGameName": "", "summonerName": "OldName",
				"riotIdTagline": "", "summonerTagline": "",
			}),
			rawParticipant("other", map[string]any{
				"riotIdGameName": "", "summonerName": "",
			}),
		},
	})

	summary := ConvertMatchSummary(ctx, raw, "target-puuid", resolver)
	require.NotNil(t, summary)

	assert.Equal(t, "OldName", summary.MainPlayer.SummonerName)
	assert.Equal(t, "Unknown Tagline", summary.MainPlayer.Tagline)
	assert.Equal(t, "Unknown Player", summary.AllPlayers[1].SummonerName)
}

func TestConvertMatchSummaryEmptySlots(t *testing.T) {
	ctx := context.Background()
	resolver := &stubResolver{}

	raw := rawMatch("EUW1_1", map[string]any{
		"queueId": 450,
		"participants": []any{
			rawParticipant("target-puuid", map[string]any{
				"summoner1Id": 0, "item0": 0, "item6": 0,
			}),
		},
	})

	summary := ConvertMatchSummary(ctx, raw, "target-puuid", resolver)
	require.NotNil(t, summary)

	main := summary.MainPlayer
	// Id 0 is the empty slot, its icon URL must be the empty string and never
	// the result of a catalog lookup.
	assert.Equal(t, "", main.Summoner1ImageUrl)
	assert.Equal(t, "", main.Item0ImageUrl)
	assert.Equal(t, "", main.Item6ImageUrl)
	assert.Equal(t, "https://cdn.test/15.3.1/img/item/3006.png", main.Item1ImageUrl)
}

func TestConvertMatchSummaryArenaFields(t *testing.T) {
	ctx := context.Background()
	resolver := &stubResolver{}

	raw := rawMatch("EUW1_1", map[string]any{
		"queueId": 1700,
		"participants": []any{
			rawParticipant("target-puuid", map[string]any{
				"playerAugment1":   11,
				"playerAugment2":   22,
				"subteamPlacement": 2,
			}),
		},
	})

	summary := ConvertMatchSummary(ctx, raw, "target-puuid", resolver)
	require.NotNil(t, summary)

	assert.Equal(t, "Arena", summary.GameMode)
	// Absent augments are omitted, not zero padded.
	assert.Equal(t, []int{11, 22}, summary.MainPlayer.PlayerAugments)
	assert.Equal(t, 2, summary.MainPlayer.SubteamPlacement)
}

func TestConvertMatchSummaryStandardModeDefaults(t *testing.T) {
	ctx := context.Background()
	resolver := &stubResolver{}

	raw := rawMatch("EUW1_1", map[string]any{
		"queueId":      450,
		"participants": []any{rawParticipant("target-puuid", nil)},
	})

	summary := ConvertMatchSummary(ctx, raw, "target-puuid", resolver)
	require.NotNil(t, summary)

	assert.Empty(t, summary.MainPlayer.PlayerAugments)
	assert.Equal(t, 0, summary.MainPlayer.SubteamPlacement)
}

func TestConvertMatchSummaryAbsentTimestamps(t *testing.T) {
	ctx := context.Background()
	resolver := &stubResolver{}

	raw := rawMatch("EUW1_1", map[string]any{
		"queueId":      900,
		"participants": []any{rawParticipant("target-puuid", nil)},
	})

	summary := ConvertMatchSummary(ctx, raw, "target-puuid", resolver)
	require.NotNil(t, summary)

	assert.Equal(t, "Custom Game", summary.GameMode)
	assert.True(t, summary.GameDate.IsZero())
	assert.Equal(t, 0, summary.GameDurationMinutes)
	assert.False(t, summary.Victory)
}

func TestConvertMatchSummaryIdempotent(t *testing.T) {
	ctx := context.Background()
	resolver := &stubResolver{}

	raw := rawMatch("EUW1_100", map[string]any{
		"queueId":            420,
		"gameDuration":       1843,
		"gameStartTimestamp": 1735689600000,
		"participants": []any{
			rawParticipant("target-puuid", map[string]any{"kills": 7, "deaths": 2, "assists": 9, "win": true}),
			rawParticipant("other", map[string]any{"teamId": 200}),
		},
	})

	first := ConvertMatchSummary(ctx, raw, "target-puuid", resolver)
	second := ConvertMatchSummary(ctx, raw, "target-puuid", resolver)
	require.NotNil(t, first)
	require.NotNil(t, second)

	firstJson, err := json.Marshal(first)
	require.NoError(t, err)
	secondJson, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, firstJson, secondJson)
}
