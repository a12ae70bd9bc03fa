// Package doclient provides the main entry point for creating DigitalOcean API clients
package doclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/docean/internal/client"
	"github.com/fivetwenty-io/docean/pkg/docean"
)

// New creates a new DigitalOcean API client from a config. The access token
// is required; the endpoint defaults to the production API when empty.
func New(ctx context.Context, config *docean.Config) (docean.Client, error) {
	if config == nil {
		return nil, docean.ErrConfigRequired
	}

	if config.AccessToken == "" {
		return nil, docean.ErrAccessTokenRequired
	}

	if config.APIEndpoint != "" {
		config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)
	}

	// Use the internal client implementation
	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// normalizeEndpoint strips trailing slashes and defaults the scheme to HTTPS.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithToken creates a new client for the production API with an access token.
func NewWithToken(ctx context.Context, token string) (docean.Client, error) {
	return New(ctx, &docean.Config{
		AccessToken: token,
	})
}

// NewWithEndpoint creates a new client with an explicit API endpoint and
// access token. Intended for test servers and API-compatible gateways.
func NewWithEndpoint(ctx context.Context, endpoint, token string) (docean.Client, error) {
	return New(ctx, &docean.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	})
}
