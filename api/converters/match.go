package converters

import (
	"context"
	"encoding/json"
	"math"
	"riftstats/api/dto"
	"riftstats/pkg/riot"
	queuevalues "riftstats/pkg/riotvalues/queue"
	"strconv"
	"time"
)

// AssetResolver is the slice of the catalog resolver the summary pipeline
// needs. Satisfied by ddragon.Client.
type AssetResolver interface {
	ChampionIconURLByName(ctx context.Context, championName string) string
	SummonerSpellIconURL(ctx context.Context, spellId int) string
	ItemIconURL(ctx context.Context, itemId int) string
}

// ConvertMatchSummary turns a raw match document into the summary the client
// consumes, from the perspective of the given puuid.
//
// Fails soft: a empty or malformed document, a match without participants, or
// a match the player is not part of all return nil. The caller treats nil as
// "skip this match", there is no error to handle.
func ConvertMatchSummary(ctx context.Context, rawMatch []byte, puuid string, resolver AssetResolver) *dto.MatchSummary {
	if len(rawMatch) == 0 {
		return nil
	}

	var match riot.MatchData
	if err := json.Unmarshal(rawMatch, &match); err != nil {
		return nil
	}

	participants := match.Info.Participants
	if len(participants) == 0 {
		return nil
	}

	var mainPlayer *dto.PlayerPerformance
	var victory bool
	allPlayers := make([]*dto.PlayerPerformance, 0, len(participants))

	// Participant order is preserved from the raw document, the client does
	// its own team grouping.
	for i := range participants {
		performance := convertParticipant(ctx, &participants[i], puuid, resolver)
		allPlayers = append(allPlayers, performance)

		if performance.IsMainPlayer {
			mainPlayer = performance
			victory = participants[i].Win
		}
	}

	if mainPlayer == nil {
		return nil
	}

	matchId := match.Metadata.MatchId
	if matchId == "" {
		matchId = "Unknown"
	}

	return &dto.MatchSummary{
		MatchId:             matchId,
		GameMode:            queuevalues.GameModeName(match.Info.QueueId),
		GameDate:            gameDate(match.Info.GameStartTimestamp),
		GameDurationMinutes: durationMinutes(match.Info.GameDuration),
		Victory:             victory,
		MainPlayer:          mainPlayer,
		AllPlayers:          allPlayers,
	}
}

// convertParticipant builds one performance record, resolving every icon URL
// through the catalog on the current version.
func convertParticipant(ctx context.Context, p *riot.Participant, puuid string, resolver AssetResolver) *dto.PlayerPerformance {
	championName := p.ChampionName
	if championName == "" {
		championName = "Unknown"
	}

	teamPosition := "Unknown"
	if p.TeamPosition != nil {
		teamPosition = *p.TeamPosition
	}

	items := p.Items()

	return &dto.PlayerPerformance{
		SummonerName:     pickFirst(p.RiotIdGameName, p.SummonerName, "Unknown Player"),
		Tagline:          pickFirst(p.RiotIdTagline, p.SummonerTagline, "Unknown Tagline"),
		ChampionName:     championName,
		ChampionImageUrl: resolver.ChampionIconURLByName(ctx, championName),
		Kills:            p.Kills,
		Deaths:           p.Deaths,
		Assists:          p.Assists,
		CS:               p.TotalMinionsKilled + p.NeutralMinionsKilled,
		VisionScore:      p.VisionScore,
		KDA:              formatKDA(p.Kills, p.Deaths, p.Assists),
		TeamId:           p.TeamId,
		TeamPosition:     teamPosition,
		IsMainPlayer:     p.Puuid == puuid,

		PlayerAugments:   p.Augments(),
		SubteamPlacement: p.SubteamPlacement,

		Summoner1Id:       p.Summoner1Id,
		Summoner2Id:       p.Summoner2Id,
		Summoner1ImageUrl: resolver.SummonerSpellIconURL(ctx, p.Summoner1Id),
		Summoner2ImageUrl: resolver.SummonerSpellIconURL(ctx, p.Summoner2Id),

		Item0: items[0],
		Item1: items[1],
		Item2: items[2],
		Item3: items[3],
		Item4: items[4],
		Item5: items[5],
		Item6: items[6],

		Item0ImageUrl: resolver.ItemIconURL(ctx, items[0]),
		Item1ImageUrl: resolver.ItemIconURL(ctx, items[1]),
		Item2ImageUrl: resolver.ItemIconURL(ctx, items[2]),
		Item3ImageUrl: resolver.ItemIconURL(ctx, items[3]),
		Item4ImageUrl: resolver.ItemIconURL(ctx, items[4]),
		Item5ImageUrl: resolver.ItemIconURL(ctx, items[5]),
		Item6ImageUrl: resolver.ItemIconURL(ctx, items[6]),
	}
}

// pickFirst returns the first non empty value, else the fallback.
// Models the dual source fields on participant records, where the riot id
// fields are preferred over the legacy summoner name ones.
func pickFirst(primary string, secondary string, fallback string) string {
	if primary != "" {
		return primary
	}
	if secondary != "" {
		return secondary
	}
	return fallback
}

// formatKDA builds the kda display text.
// The ratio is (kills+assists)/deaths rounded to two decimals. With zero
// deaths no division happens, the ratio is just kills+assists.
func formatKDA(kills int, deaths int, assists int) string {
	var ratio float64
	if deaths > 0 {
		ratio = math.Round(float64(kills+assists)/float64(deaths)*100) / 100
	} else {
		ratio = float64(kills + assists)
	}

	return strconv.Itoa(kills) + "/" + strconv.Itoa(deaths) + "/" + strconv.Itoa(assists) +
		" (" + strconv.FormatFloat(ratio, 'f', -1, 64) + ":1 KDA)"
}

// gameDate converts the epoch milliseconds start into a timestamp.
// A absent field yields the zero time as a "unset" sentinel, the client must
// not render it as a real date.
func gameDate(start *riot.RiotTime) time.Time {
	if start == nil {
		return time.Time{}
	}
	return start.Time()
}

// durationMinutes converts the duration in seconds to whole minutes, rounding
// half up. Absent duration is zero.
func durationMinutes(seconds int) int {
	return int(math.Round(float64(seconds) / 60))
}
