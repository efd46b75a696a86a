// Package github proxies repository listings from the GitHub API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"devconnector/internal/models"
)

const defaultBaseURL = "https://api.github.com"

// Client is a thin read-only proxy to the GitHub repos API. Credentials are
// server-held; callers only supply the username stored on a profile.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

// NewClient returns a GitHub client. baseURL may be empty to use the public
// API; tests point it at a local server.
func NewClient(baseURL, clientID, clientSecret string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// ListRepos fetches the user's five most recently listed repositories,
// sorted by creation ascending. Any non-200 upstream response collapses to
// a not-found error ("No GitHub profile found"); there is no retry.
func (c *Client) ListRepos(ctx context.Context, username string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("per_page", "5")
	q.Set("sort", "created:asc")
	if c.clientID != "" {
		q.Set("client_id", c.clientID)
		q.Set("client_secret", c.clientSecret)
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	req.Header.Set("User-Agent", "devconnector")
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, models.NewNotFoundError("No GitHub profile found")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	// The body is forwarded verbatim; just make sure it is valid JSON.
	var check any
	if err := json.Unmarshal(body, &check); err != nil {
		return nil, models.NewInternalError(err)
	}

	return json.RawMessage(body), nil
}
