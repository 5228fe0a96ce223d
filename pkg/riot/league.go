package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"riftstats/pkg/messages"
)

// LeagueEntriesByPuuid returns the ranked standings of a player, one entry
// per ranked queue. A unranked player yields a empty list.
func (c *Client) LeagueEntriesByPuuid(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	if puuid == "" {
		return nil, errors.New(messages.EmptyPuuidMsg)
	}

	url := fmt.Sprintf("%s/entries/by-puuid/%s", c.cfg.LeagueBaseURL, pathEscape(puuid))
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var entries []LeagueEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, errors.New(messages.FailedToParseMsg)
	}

	return entries, nil
}

// MasteriesByPuuid returns every champion mastery score of a player, ordered
// by points by the upstream.
func (c *Client) MasteriesByPuuid(ctx context.Context, puuid string) ([]MasteryEntry, error) {
	if puuid == "" {
		return nil, errors.New(messages.EmptyPuuidMsg)
	}

	url := fmt.Sprintf("%s/champion-masteries/by-puuid/%s", c.cfg.MasteryBaseURL, pathEscape(puuid))
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var masteries []MasteryEntry
	if err := json.Unmarshal(body, &masteries); err != nil {
		return nil, errors.New(messages.FailedToParseMsg)
	}

	return masteries, nil
}
