package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/docean/internal/constants"
	http_internal "github.com/fivetwenty-io/docean/internal/http"
	"github.com/fivetwenty-io/docean/pkg/docean"
)

// SnapshotsClient implements the docean.SnapshotsClient interface.
type SnapshotsClient struct {
	httpClient *http_internal.Client
}

// NewSnapshotsClient creates a new SnapshotsClient.
func NewSnapshotsClient(httpClient *http_internal.Client) *SnapshotsClient {
	return &SnapshotsClient{
		httpClient: httpClient,
	}
}

// Get retrieves a specific snapshot.
func (c *SnapshotsClient) Get(ctx context.Context, snapshotID string) (*docean.Snapshot, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathSnapshots+"/"+snapshotID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting snapshot: %w", err)
	}

	snapshot, err := unwrap[docean.Snapshot](resp.Body, "snapshot")
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot response: %w", err)
	}

	return &snapshot, nil
}

// List lists snapshots on the account, optionally filtered by resource type.
func (c *SnapshotsClient) List(ctx context.Context, params *docean.ListParams) (*docean.SnapshotList, error) {
	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, constants.APIPathSnapshots, queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}

	result, err := unwrapList[docean.Snapshot](resp.Body, "snapshots")
	if err != nil {
		return nil, fmt.Errorf("parsing snapshots list response: %w", err)
	}

	return result, nil
}

// Delete deletes a snapshot.
func (c *SnapshotsClient) Delete(ctx context.Context, snapshotID string) error {
	_, err := c.httpClient.Delete(ctx, constants.APIPathSnapshots+"/"+snapshotID)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}

	return nil
}
