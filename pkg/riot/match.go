package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"riftstats/pkg/messages"
	"strconv"
)

// MatchIDsByPuuid returns a page of match ids for a player, newest first.
// A empty list is a valid result, not a error.
func (c *Client) MatchIDsByPuuid(ctx context.Context, puuid string, start int, count int) ([]string, error) {
	if puuid == "" {
		return nil, errors.New(messages.EmptyPuuidMsg)
	}
	if err := validatePagination(start, count); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/matches/by-puuid/%s/ids?start=%s&count=%s",
		c.cfg.MatchBaseURL,
		pathEscape(puuid),
		strconv.Itoa(start),
		strconv.Itoa(count),
	)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var matchIds []string
	if err := json.Unmarshal(body, &matchIds); err != nil {
		return nil, errors.New(messages.FailedToParseMsg)
	}

	return matchIds, nil
}

// MatchByID returns the raw match document for a given match id.
// The body is returned as is, the summary assembler owns the decoding and its
// fail soft policy.
func (c *Client) MatchByID(ctx context.Context, matchId string) ([]byte, error) {
	if matchId == "" {
		return nil, errors.New(messages.EmptyMatchIdMsg)
	}

	url := fmt.Sprintf("%s/matches/%s", c.cfg.MatchBaseURL, pathEscape(matchId))
	return c.get(ctx, url)
}
