package ddragon

import (
	"context"
)

// CurrentVersion returns the newest Data Dragon version token.
// The token is cached for a hour in memory and mirrored on Redis when one is
// wired. On any fetch failure the hardcoded fallback is returned instead, so
// this call never fails.
func (c *Client) CurrentVersion(ctx context.Context) string {
	if cached := c.cache.Get(versionCacheKey); cached != nil {
		return cached.(string)
	}

	if c.redis != nil {
		if version, err := c.redis.Get(ctx, versionCacheKey); err == nil && version != "" {
			c.cache.Set(versionCacheKey, version, cacheTTL)
			return version
		}
	}

	var versions []string
	url := c.baseURL + "/api/versions.json"
	if err := c.fetchJSON(ctx, url, &versions); err != nil || len(versions) == 0 {
		// The fallback is deliberately not cached, the next call retries the
		// listing instead of pinning a stale version for a whole hour.
		return FallbackVersion
	}

	latest := versions[0]
	c.cache.Set(versionCacheKey, latest, cacheTTL)
	if c.redis != nil {
		c.redis.Set(ctx, versionCacheKey, latest, cacheTTL)
	}

	return latest
}
