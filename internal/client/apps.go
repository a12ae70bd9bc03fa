package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/docean/internal/constants"
	http_internal "github.com/fivetwenty-io/docean/internal/http"
	"github.com/fivetwenty-io/docean/pkg/docean"
)

// AppsClient implements the docean.AppsClient interface.
type AppsClient struct {
	httpClient *http_internal.Client
}

// NewAppsClient creates a new AppsClient.
func NewAppsClient(httpClient *http_internal.Client) *AppsClient {
	return &AppsClient{
		httpClient: httpClient,
	}
}

// Create creates a new app from a spec.
func (c *AppsClient) Create(ctx context.Context, request *docean.AppCreateRequest) (*docean.App, error) {
	resp, err := c.httpClient.Post(ctx, constants.APIPathApps, request)
	if err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	app, err := unwrap[docean.App](resp.Body, "app")
	if err != nil {
		return nil, fmt.Errorf("parsing app response: %w", err)
	}

	return &app, nil
}

// Get retrieves a specific app.
func (c *AppsClient) Get(ctx context.Context, appID string) (*docean.App, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathApps+"/"+appID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting app: %w", err)
	}

	app, err := unwrap[docean.App](resp.Body, "app")
	if err != nil {
		return nil, fmt.Errorf("parsing app response: %w", err)
	}

	return &app, nil
}

// List lists all apps on the account.
func (c *AppsClient) List(ctx context.Context, params *docean.ListParams) (*docean.AppList, error) {
	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, constants.APIPathApps, queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing apps: %w", err)
	}

	result, err := unwrapList[docean.App](resp.Body, "apps")
	if err != nil {
		return nil, fmt.Errorf("parsing apps list response: %w", err)
	}

	return result, nil
}

// Update replaces an app's spec. The API has no partial merge; the full
// desired spec is sent with PUT.
func (c *AppsClient) Update(ctx context.Context, appID string, request *docean.AppUpdateRequest) (*docean.App, error) {
	resp, err := c.httpClient.Put(ctx, constants.APIPathApps+"/"+appID, request)
	if err != nil {
		return nil, fmt.Errorf("updating app: %w", err)
	}

	app, err := unwrap[docean.App](resp.Body, "app")
	if err != nil {
		return nil, fmt.Errorf("parsing app response: %w", err)
	}

	return &app, nil
}

// Delete deletes an app.
func (c *AppsClient) Delete(ctx context.Context, appID string) error {
	_, err := c.httpClient.Delete(ctx, constants.APIPathApps+"/"+appID)
	if err != nil {
		return fmt.Errorf("deleting app: %w", err)
	}

	return nil
}
