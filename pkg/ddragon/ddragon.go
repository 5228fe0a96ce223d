// Package ddragon resolves numeric game data ids (champions, items, summoner
// spells) to display names and icon URLs through the versioned Data Dragon
// catalog. Lookups never fail: upstream trouble degrades to the fallback
// version and "Unknown" names instead of surfacing errors to the assembler.
package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"riftstats/pkg/cache"
	"riftstats/pkg/redis"
	"time"
)

const (
	defaultBaseURL      = "https://ddragon.leagueoflegends.com"
	defaultCommunityURL = "https://raw.communitydragon.org"

	// FallbackVersion is returned when the version listing can't be fetched.
	FallbackVersion = "14.20.1"

	versionCacheKey = "ddragon:version"
	championMapKey  = "ddragon:champion-mapping:"
	spellMapKey     = "ddragon:spell-mapping:"
	itemMapKey      = "ddragon:item-mapping:"

	cacheTTL = time.Hour
)

// Client is the catalog resolver.
// The in-memory cache is the primary level, Redis (optional, may be nil) is a
// second level so replicas share the version token and the per-version
// mappings between restarts.
type Client struct {
	httpClient   *http.Client
	redis        *redis.RedisClient
	cache        *cache.SimpleCache
	baseURL      string
	communityURL string
}

// ClientDeps is the dependency list for the resolver.
type ClientDeps struct {
	HTTPClient   *http.Client
	Redis        *redis.RedisClient
	BaseURL      string
	CommunityURL string
}

// NewClient creates a catalog resolver. Zero value deps fall back to the
// public CDN hosts and a default pooled HTTP client.
func NewClient(deps *ClientDeps) *Client {
	if deps == nil {
		deps = &ClientDeps{}
	}

	httpClient := deps.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	baseURL := deps.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	communityURL := deps.CommunityURL
	if communityURL == "" {
		communityURL = defaultCommunityURL
	}

	return &Client{
		httpClient:   httpClient,
		redis:        deps.Redis,
		cache:        cache.NewSimpleCache(),
		baseURL:      baseURL,
		communityURL: communityURL,
	}
}

// fetchJSON runs a GET against a static catalog document and decodes it.
func (c *Client) fetchJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog returned status code %d on URL %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// mappingFromRedis loads a mirrored id mapping from Redis. Returns nil when
// no Redis is wired, the key is absent or the payload doesn't decode.
func mappingFromRedis[K comparable](ctx context.Context, c *Client, key string) map[K]string {
	if c.redis == nil {
		return nil
	}

	raw, err := c.redis.Get(ctx, key)
	if err != nil || raw == "" {
		return nil
	}

	var mapping map[K]string
	if err := json.Unmarshal([]byte(raw), &mapping); err != nil {
		return nil
	}
	return mapping
}

// mirrorMapping stores a freshly fetched mapping on Redis so other replicas
// skip the catalog fetch. Failures are ignored, the memory cache still holds
// the mapping for this replica.
func mirrorMapping[K comparable](ctx context.Context, c *Client, key string, mapping map[K]string) {
	if c.redis == nil {
		return
	}

	raw, err := json.Marshal(mapping)
	if err != nil {
		return
	}
	c.redis.Set(ctx, key, string(raw), cacheTTL)
}
