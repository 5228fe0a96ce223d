package ddragon

import (
	"context"
	"fmt"
	"strconv"
)

// Shape of summoner.json: keyed by spell name, numeric id inside as "key".
type spellListing struct {
	Data map[string]struct {
		Key string `json:"key"`
	} `json:"data"`
}

// Shape of item.json: keyed by the numeric id, display name inside.
type itemListing struct {
	Data map[string]struct {
		Name string `json:"name"`
	} `json:"data"`
}

// spellMapping returns the spell id to name mapping for the current version.
// Same caching and degrade policy as the champion mapping.
func (c *Client) spellMapping(ctx context.Context) map[int]string {
	version := c.CurrentVersion(ctx)
	cacheKey := spellMapKey + version

	if cached := c.cache.Get(cacheKey); cached != nil {
		return cached.(map[int]string)
	}

	if mapping := mappingFromRedis[int](ctx, c, cacheKey); mapping != nil {
		c.cache.Set(cacheKey, mapping, cacheTTL)
		return mapping
	}

	var listing spellListing
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/summoner.json", c.baseURL, version)
	if err := c.fetchJSON(ctx, url, &listing); err != nil {
		return map[int]string{}
	}

	mapping := make(map[int]string, len(listing.Data))
	for name, spell := range listing.Data {
		id, err := strconv.Atoi(spell.Key)
		if err != nil {
			continue
		}
		mapping[id] = name
	}

	c.cache.Set(cacheKey, mapping, cacheTTL)
	mirrorMapping(ctx, c, cacheKey, mapping)
	return mapping
}

// itemMapping returns the item id to display name mapping for the current
// version.
func (c *Client) itemMapping(ctx context.Context) map[int]string {
	version := c.CurrentVersion(ctx)
	cacheKey := itemMapKey + version

	if cached := c.cache.Get(cacheKey); cached != nil {
		return cached.(map[int]string)
	}

	if mapping := mappingFromRedis[int](ctx, c, cacheKey); mapping != nil {
		c.cache.Set(cacheKey, mapping, cacheTTL)
		return mapping
	}

	var listing itemListing
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/item.json", c.baseURL, version)
	if err := c.fetchJSON(ctx, url, &listing); err != nil {
		return map[int]string{}
	}

	mapping := make(map[int]string, len(listing.Data))
	for rawId, item := range listing.Data {
		id, err := strconv.Atoi(rawId)
		if err != nil {
			continue
		}
		name := item.Name
		if name == "" {
			name = rawId
		}
		mapping[id] = name
	}

	c.cache.Set(cacheKey, mapping, cacheTTL)
	mirrorMapping(ctx, c, cacheKey, mapping)
	return mapping
}

// SummonerSpellName resolves a spell id. Id 0 is the empty slot.
func (c *Client) SummonerSpellName(ctx context.Context, spellId int) string {
	if spellId == 0 {
		return "None"
	}
	if name, ok := c.spellMapping(ctx)[spellId]; ok {
		return name
	}
	return "Unknown"
}

// SummonerSpellIconURL resolves a spell id to its icon URL. The empty slot
// yields a empty string, unresolved spells get a fixed placeholder asset.
func (c *Client) SummonerSpellIconURL(ctx context.Context, spellId int) string {
	if spellId == 0 {
		return ""
	}

	version := c.CurrentVersion(ctx)
	name := c.SummonerSpellName(ctx, spellId)
	if name == "Unknown" || name == "None" {
		return fmt.Sprintf("%s/cdn/%s/img/spell/SummonerBarrier.png", c.baseURL, version)
	}
	return fmt.Sprintf("%s/cdn/%s/img/spell/%s.png", c.baseURL, version, name)
}

// SummonerSpellDisplay returns name and icon URL of a spell in one call.
func (c *Client) SummonerSpellDisplay(ctx context.Context, spellId int) (string, string) {
	return c.SummonerSpellName(ctx, spellId), c.SummonerSpellIconURL(ctx, spellId)
}

// ItemName resolves a item id. Id 0 is the empty slot.
func (c *Client) ItemName(ctx context.Context, itemId int) string {
	if itemId == 0 {
		return "Empty"
	}
	if name, ok := c.itemMapping(ctx)[itemId]; ok {
		return name
	}
	return "Unknown Item"
}

// ItemIconURL resolves a item id to its icon URL. The item icon is addressed
// by id on the CDN, so no name lookup is involved. Id 0 yields a empty
// string, never a catalog call.
func (c *Client) ItemIconURL(ctx context.Context, itemId int) string {
	if itemId == 0 {
		return ""
	}
	return fmt.Sprintf("%s/cdn/%s/img/item/%s.png", c.baseURL, c.CurrentVersion(ctx), strconv.Itoa(itemId))
}

// ItemDisplay returns name and icon URL of a item in one call.
func (c *Client) ItemDisplay(ctx context.Context, itemId int) (string, string) {
	return c.ItemName(ctx, itemId), c.ItemIconURL(ctx, itemId)
}

// ProfileIconURL builds the profile icon URL for a summoner. Non positive
// ids fall back to the default icon 0.
func (c *Client) ProfileIconURL(ctx context.Context, iconId int) string {
	if iconId < 0 {
		iconId = 0
	}
	return fmt.Sprintf("%s/cdn/%s/img/profileicon/%d.png", c.baseURL, c.CurrentVersion(ctx), iconId)
}

// ArenaAugmentIconURL builds the Community Dragon URL of a arena augment.
// Pure template, not versioned and not cached. Id 0 yields a empty string.
func (c *Client) ArenaAugmentIconURL(augmentId int) string {
	if augmentId == 0 {
		return ""
	}
	return fmt.Sprintf("%s/latest/plugins/rcp-be-lol-game-data/global/default/v1/cherry-augments/%d.png", c.communityURL, augmentId)
}
