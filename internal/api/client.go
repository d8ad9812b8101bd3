package api

import (
	"context"
	"net/http"

	"github.com/vilaca/devfinder/internal/domain"
)

// ProfileClient defines the interface for user profile lookups.
// Consumers depend on this interface, not on the concrete GitHub client.
type ProfileClient interface {
	// GetUser returns the public profile for the given login.
	// Failures are returned as *domain.LookupError.
	GetUser(ctx context.Context, username string) (*domain.Profile, error)
}

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds common configuration for API clients.
type ClientConfig struct {
	BaseURL string
}
