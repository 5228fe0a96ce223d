package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"riftstats/pkg/messages"
)

// AccountByRiotID resolves a riot id (game name + tag line) to a account,
// which carries the puuid used by every other endpoint.
func (c *Client) AccountByRiotID(ctx context.Context, gameName string, tagLine string) (*Account, error) {
	if gameName == "" || tagLine == "" {
		return nil, errors.New(messages.EmptyRiotIdMsg)
	}

	url := fmt.Sprintf("%s/%s/%s", c.cfg.AccountBaseURL, pathEscape(gameName), pathEscape(tagLine))
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var account Account
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, errors.New(messages.FailedToParseMsg)
	}

	return &account, nil
}

// SummonerByPuuid returns the summoner profile data for a given puuid.
func (c *Client) SummonerByPuuid(ctx context.Context, puuid string) (*Summoner, error) {
	if puuid == "" {
		return nil, errors.New(messages.EmptyPuuidMsg)
	}

	url := fmt.Sprintf("%s/%s", c.cfg.SummonerBaseURL, pathEscape(puuid))
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var summoner Summoner
	if err := json.Unmarshal(body, &summoner); err != nil {
		return nil, errors.New(messages.FailedToParseMsg)
	}

	return &summoner, nil
}
