package ddragon

import (
	"context"
	"fmt"
	"strconv"
)

// Shape of the champion.json listing: the data map is keyed by the champion
// key (its URL safe name) and each entry carries the numeric id as a string.
type championListing struct {
	Data map[string]struct {
		Key string `json:"key"`
	} `json:"data"`
}

// championMapping returns the id to key mapping for the current version,
// fetching it at most once per version. A fetch failure yields a empty map
// for this call only, it is not cached so a later call can recover.
func (c *Client) championMapping(ctx context.Context) map[int64]string {
	version := c.CurrentVersion(ctx)
	cacheKey := championMapKey + version

	if cached := c.cache.Get(cacheKey); cached != nil {
		return cached.(map[int64]string)
	}

	if mapping := mappingFromRedis[int64](ctx, c, cacheKey); mapping != nil {
		c.cache.Set(cacheKey, mapping, cacheTTL)
		return mapping
	}

	var listing championListing
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", c.baseURL, version)
	if err := c.fetchJSON(ctx, url, &listing); err != nil {
		return map[int64]string{}
	}

	mapping := make(map[int64]string, len(listing.Data))
	for name, champion := range listing.Data {
		id, err := strconv.ParseInt(champion.Key, 10, 64)
		if err != nil {
			continue
		}
		mapping[id] = name
	}

	c.cache.Set(cacheKey, mapping, cacheTTL)
	mirrorMapping(ctx, c, cacheKey, mapping)
	return mapping
}

// ChampionName resolves a champion id to its Data Dragon key, "Unknown" when
// the id is not on the current listing.
func (c *Client) ChampionName(ctx context.Context, championId int64) string {
	if name, ok := c.championMapping(ctx)[championId]; ok {
		return name
	}
	return "Unknown"
}

// ChampionIconURL resolves a champion id to its square icon URL on the
// current version. Unknown ids point at the conventional Unknown placeholder.
func (c *Client) ChampionIconURL(ctx context.Context, championId int64) string {
	return c.ChampionIconURLByName(ctx, c.ChampionName(ctx, championId))
}

// ChampionIconURLByName builds the icon URL for a champion already known by
// name, as carried on match participant records.
func (c *Client) ChampionIconURLByName(ctx context.Context, championName string) string {
	version := c.CurrentVersion(ctx)
	if championName == "" || championName == "Unknown" {
		return fmt.Sprintf("%s/cdn/%s/img/champion/Unknown.png", c.baseURL, version)
	}
	return fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", c.baseURL, version, championName)
}

// ChampionDisplay returns the name and icon URL of a champion in one call.
func (c *Client) ChampionDisplay(ctx context.Context, championId int64) (string, string) {
	name := c.ChampionName(ctx, championId)
	return name, c.ChampionIconURLByName(ctx, name)
}
