package riot

import (
	"encoding/json"
	"time"
)

// Account is the return of a account search by riot id.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the return of the summoner endpoint.
type Summoner struct {
	Id            string `json:"id"`
	Puuid         string `json:"puuid"`
	ProfileIconId int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntry defines the type returned by the league entries endpoint.
type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
	Inactive     bool   `json:"inactive"`
}

// MasteryEntry is a single champion mastery score for a player.
type MasteryEntry struct {
	Puuid                        string `json:"puuid"`
	ChampionId                   int64  `json:"championId"`
	ChampionLevel                int    `json:"championLevel"`
	ChampionPoints               int    `json:"championPoints"`
	LastPlayTime                 int64  `json:"lastPlayTime"`
	ChampionPointsSinceLastLevel int    `json:"championPointsSinceLastLevel"`
	ChampionPointsUntilNextLevel int    `json:"championPointsUntilNextLevel"`
	ChestGranted                 bool   `json:"chestGranted"`
	TokensEarned                 int    `json:"tokensEarned"`
}

// Handle the conversion of the int timestamps from riot.
type RiotTime time.Time

// Add the riot time UnmarshalJSON.
func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	// Convert milliseconds to time.Time
	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

// Get the true time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// MatchData is the return type from the match_v5 endpoint.
// Only the fields the summary pipeline consumes are mapped, the rest of the
// payload is ignored on decode.
type MatchData struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata contains the basic match metadata.
type MatchMetadata struct {
	MatchId string `json:"matchId"`
}

// MatchInfo contains the match level data and the participant list.
type MatchInfo struct {
	GameDuration       int           `json:"gameDuration"`
	GameStartTimestamp *RiotTime     `json:"gameStartTimestamp"`
	QueueId            int           `json:"queueId"`
	Participants       []Participant `json:"participants"`
}

// Participant contains the stats of a given player in a match.
// Pointer fields are the ones where a absent key means something different
// from a zero value: augments are only present in Arena, and teamPosition is
// missing entirely on older records.
type Participant struct {
	Puuid                string   `json:"puuid"`
	SummonerName         string   `json:"summonerName"`
	RiotIdGameName       string   `json:"riotIdGameName"`
	RiotIdTagline        string   `json:"riotIdTagline"`
	SummonerTagline      string   `json:"summonerTagline"`
	ChampionName         string   `json:"championName"`
	Kills                int      `json:"kills"`
	Deaths               int      `json:"deaths"`
	Assists              int      `json:"assists"`
	TeamId               int      `json:"teamId"`
	TeamPosition         *string  `json:"teamPosition"`
	Win                  bool     `json:"win"`
	TotalMinionsKilled   int      `json:"totalMinionsKilled"`
	NeutralMinionsKilled int      `json:"neutralMinionsKilled"`
	VisionScore          int      `json:"visionScore"`
	Summoner1Id          int      `json:"summoner1Id"`
	Summoner2Id          int      `json:"summoner2Id"`
	Item0                int      `json:"item0"`
	Item1                int      `json:"item1"`
	Item2                int      `json:"item2"`
	Item3                int      `json:"item3"`
	Item4                int      `json:"item4"`
	Item5                int      `json:"item5"`
	Item6                int      `json:"item6"`
	SubteamPlacement     int      `json:"subteamPlacement"`
	PlayerAugment1       *int     `json:"playerAugment1"`
	PlayerAugment2       *int     `json:"playerAugment2"`
	PlayerAugment3       *int     `json:"playerAugment3"`
	PlayerAugment4       *int     `json:"playerAugment4"`
}

// Items returns the seven equipment slots in order, slot 6 being the trinket.
func (p *Participant) Items() [7]int {
	return [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// Augments returns the augment ids that are actually present on the record.
// Empty outside of Arena.
func (p *Participant) Augments() []int {
	augments := []int{}
	for _, augment := range []*int{p.PlayerAugment1, p.PlayerAugment2, p.PlayerAugment3, p.PlayerAugment4} {
		if augment != nil {
			augments = append(augments, *augment)
		}
	}
	return augments
}
