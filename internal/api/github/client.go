package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/vilaca/devfinder/internal/api"
	"github.com/vilaca/devfinder/internal/domain"
)

// ErrNotFound is wrapped by lookups that receive a non-success status.
var ErrNotFound = errors.New("user not found")

// Client implements api.ProfileClient for the GitHub Users API.
// Only handles GitHub API communication; no authentication is sent.
type Client struct {
	baseURL    string
	httpClient api.HTTPClient
}

// NewClient creates a new GitHub users client.
// Uses dependency injection for HTTPClient.
func NewClient(config api.ClientConfig, httpClient api.HTTPClient) *Client {
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = domain.GitHubAPIURL
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// GetUser retrieves the public profile for a login.
// The login is percent-encoded before being placed in the request path.
func (c *Client) GetUser(ctx context.Context, username string) (*domain.Profile, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))

	var profile domain.Profile
	if err := c.doRequest(ctx, endpoint, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// doRequest performs a GET against the GitHub API and decodes the JSON body.
func (c *Client) doRequest(ctx context.Context, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return transportError(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	// The body of a failed response is not inspected, only drained.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &domain.LookupError{
			Kind: domain.ErrorKindNotFound,
			Err:  fmt.Errorf("API returned status %d: %w", resp.StatusCode, ErrNotFound),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return transportError(fmt.Errorf("failed to decode response: %w", err))
	}

	return nil
}

func transportError(err error) error {
	return &domain.LookupError{Kind: domain.ErrorKindTransport, Err: err}
}
