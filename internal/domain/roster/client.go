package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	platformerrors "dugout-server-go/internal/platform/errors"
)

// Client fetches the roster from the upstream stats API.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient builds an upstream client. A zero timeout falls back to 15s.
func NewClient(apiURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch performs one GET against the upstream API and decodes the payload.
func (c *Client) Fetch(ctx context.Context) ([]Player, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return nil, platformerrors.Wrap(
			platformerrors.KindUpstream, "roster.fetch", "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, platformerrors.Wrap(
			platformerrors.KindUpstream, "roster.fetch", "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, platformerrors.New(
			platformerrors.KindUpstream, "roster.fetch",
			fmt.Sprintf("unexpected status: %d", resp.StatusCode))
	}

	var players []Player
	if err := json.NewDecoder(resp.Body).Decode(&players); err != nil {
		return nil, platformerrors.Wrap(
			platformerrors.KindUpstream, "roster.fetch", "decode payload", err)
	}
	return players, nil
}
