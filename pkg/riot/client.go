package riot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"riftstats/pkg/config"
	"riftstats/pkg/messages"
	"time"
)

// Retry policy for the Riot API.
// 502 is the only status worth retrying, everything else is either a client
// fault or a rate limit that a blind retry would make worse.
const (
	maxAttempts  = 3
	retryStatus  = http.StatusBadGateway
	retryBackoff = time.Second
)

// Client is the HTTP collaborator for the Riot API.
// The http.Client is injected so the same pooled client can be shared with
// the Data Dragon resolver and swapped in tests.
type Client struct {
	httpClient *http.Client
	cfg        config.RiotConfiguration
	backoff    time.Duration
}

// NewClient creates a Riot API client. A nil httpClient falls back to a
// client with a sane timeout.
func NewClient(cfg config.RiotConfiguration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
		backoff:    retryBackoff,
	}
}

// get runs a authenticated GET against the given URL and returns the raw
// body. A 502 is retried up to maxAttempts with a fixed backoff.
func (c *Client) get(ctx context.Context, requestUrl string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
		if err != nil {
			return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", requestUrl, err)
		}
		req.Header.Set("X-Riot-Token", c.cfg.ApiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", requestUrl, err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			if readErr != nil {
				return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", requestUrl, readErr)
			}
			return body, nil
		}

		lastErr = fmt.Errorf(messages.BadStatusCodeMsg, resp.StatusCode, requestUrl)
		if resp.StatusCode != retryStatus || attempt == maxAttempts {
			return nil, lastErr
		}

		select {
		case <-time.After(c.backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}

// Validate the pagination window accepted by the match id listing.
func validatePagination(start int, count int) error {
	if start < 0 || count < 1 || count > 100 {
		return errors.New(messages.InvalidPaginateMsg)
	}
	return nil
}

// Escape a path segment coming from user input.
func pathEscape(segment string) string {
	return url.PathEscape(segment)
}
