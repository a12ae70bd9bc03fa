package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/docean/internal/constants"
	http_internal "github.com/fivetwenty-io/docean/internal/http"
	"github.com/fivetwenty-io/docean/pkg/docean"
)

// DropletsClient implements the docean.DropletsClient interface.
type DropletsClient struct {
	httpClient *http_internal.Client
}

// NewDropletsClient creates a new DropletsClient.
func NewDropletsClient(httpClient *http_internal.Client) *DropletsClient {
	return &DropletsClient{
		httpClient: httpClient,
	}
}

func dropletPath(dropletID int) string {
	return constants.APIPathDroplets + "/" + strconv.Itoa(dropletID)
}

// Create creates a new droplet.
func (c *DropletsClient) Create(ctx context.Context, request *docean.DropletCreateRequest) (*docean.Droplet, error) {
	resp, err := c.httpClient.Post(ctx, constants.APIPathDroplets, request)
	if err != nil {
		return nil, fmt.Errorf("creating droplet: %w", err)
	}

	droplet, err := unwrap[docean.Droplet](resp.Body, "droplet")
	if err != nil {
		return nil, fmt.Errorf("parsing droplet response: %w", err)
	}

	return &droplet, nil
}

// CreateMultiple creates several droplets in one call. The API fans the
// request's names array out into one droplet per entry and responds with the
// plural envelope field.
func (c *DropletsClient) CreateMultiple(ctx context.Context, request *docean.DropletMultiCreateRequest) ([]docean.Droplet, error) {
	resp, err := c.httpClient.Post(ctx, constants.APIPathDroplets, request)
	if err != nil {
		return nil, fmt.Errorf("creating droplets: %w", err)
	}

	droplets, err := unwrap[[]docean.Droplet](resp.Body, "droplets")
	if err != nil {
		return nil, fmt.Errorf("parsing droplets response: %w", err)
	}

	return droplets, nil
}

// Get retrieves a specific droplet.
func (c *DropletsClient) Get(ctx context.Context, dropletID int) (*docean.Droplet, error) {
	resp, err := c.httpClient.Get(ctx, dropletPath(dropletID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting droplet: %w", err)
	}

	droplet, err := unwrap[docean.Droplet](resp.Body, "droplet")
	if err != nil {
		return nil, fmt.Errorf("parsing droplet response: %w", err)
	}

	return &droplet, nil
}

// List lists all droplets on the account.
func (c *DropletsClient) List(ctx context.Context, params *docean.ListParams) (*docean.DropletList, error) {
	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, constants.APIPathDroplets, queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing droplets: %w", err)
	}

	result, err := unwrapList[docean.Droplet](resp.Body, "droplets")
	if err != nil {
		return nil, fmt.Errorf("parsing droplets list response: %w", err)
	}

	return result, nil
}

// ListByTag lists droplets carrying a tag.
func (c *DropletsClient) ListByTag(ctx context.Context, tag string, params *docean.ListParams) (*docean.DropletList, error) {
	queryParams := url.Values{}
	if params != nil {
		queryParams = params.ToValues()
	}

	queryParams.Set("tag_name", tag)

	resp, err := c.httpClient.Get(ctx, constants.APIPathDroplets, queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing droplets by tag: %w", err)
	}

	result, err := unwrapList[docean.Droplet](resp.Body, "droplets")
	if err != nil {
		return nil, fmt.Errorf("parsing droplets list response: %w", err)
	}

	return result, nil
}

// Delete deletes a droplet.
func (c *DropletsClient) Delete(ctx context.Context, dropletID int) error {
	_, err := c.httpClient.Delete(ctx, dropletPath(dropletID))
	if err != nil {
		return fmt.Errorf("deleting droplet: %w", err)
	}

	return nil
}

// DeleteByTag deletes every droplet carrying a tag. The API responds 204
// even when no droplets matched, and so does this method.
func (c *DropletsClient) DeleteByTag(ctx context.Context, tag string) error {
	queryParams := url.Values{}
	queryParams.Set("tag_name", tag)

	_, err := c.httpClient.DeleteWithQuery(ctx, constants.APIPathDroplets, queryParams)
	if err != nil {
		return fmt.Errorf("deleting droplets by tag: %w", err)
	}

	return nil
}

// listAssociated fetches a droplet sub-resource collection
// ({droplets}/{id}/{subpath}) and unwraps the named plural field.
func listAssociated[T any](ctx context.Context, httpClient *http_internal.Client, dropletID int, subpath string, params *docean.ListParams) (*docean.ListResponse[T], error) {
	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := httpClient.Get(ctx, dropletPath(dropletID)+"/"+subpath, queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing droplet %s: %w", subpath, err)
	}

	result, err := unwrapList[T](resp.Body, subpath)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", subpath, err)
	}

	return result, nil
}

// Kernels lists kernels available to a droplet.
func (c *DropletsClient) Kernels(ctx context.Context, dropletID int, params *docean.ListParams) (*docean.ListResponse[docean.Kernel], error) {
	return listAssociated[docean.Kernel](ctx, c.httpClient, dropletID, "kernels", params)
}

// Snapshots lists snapshots taken of a droplet.
func (c *DropletsClient) Snapshots(ctx context.Context, dropletID int, params *docean.ListParams) (*docean.ListResponse[docean.Image], error) {
	return listAssociated[docean.Image](ctx, c.httpClient, dropletID, "snapshots", params)
}

// Backups lists backups of a droplet.
func (c *DropletsClient) Backups(ctx context.Context, dropletID int, params *docean.ListParams) (*docean.ListResponse[docean.Image], error) {
	return listAssociated[docean.Image](ctx, c.httpClient, dropletID, "backups", params)
}

// Actions lists actions performed on a droplet.
func (c *DropletsClient) Actions(ctx context.Context, dropletID int, params *docean.ListParams) (*docean.ListResponse[docean.Action], error) {
	return listAssociated[docean.Action](ctx, c.httpClient, dropletID, "actions", params)
}

// Neighbors lists droplets colocated on the same physical host as the
// droplet. This is a read-only report fetched with GET.
func (c *DropletsClient) Neighbors(ctx context.Context, dropletID int) ([]docean.Droplet, error) {
	resp, err := c.httpClient.Get(ctx, dropletPath(dropletID)+"/neighbors", nil)
	if err != nil {
		return nil, fmt.Errorf("listing droplet neighbors: %w", err)
	}

	result, err := unwrapList[docean.Droplet](resp.Body, "droplets")
	if err != nil {
		return nil, fmt.Errorf("parsing neighbors response: %w", err)
	}

	return result.Resources, nil
}

// ListNeighborIDs fetches the account-wide report of droplets sharing
// physical hosts, as groups of droplet IDs.
func (c *DropletsClient) ListNeighborIDs(ctx context.Context) ([][]int, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathNeighborIDs, nil)
	if err != nil {
		return nil, fmt.Errorf("listing neighbor IDs: %w", err)
	}

	groups, err := unwrap[[][]int](resp.Body, "neighbor_ids")
	if err != nil {
		return nil, fmt.Errorf("parsing neighbor IDs response: %w", err)
	}

	return groups, nil
}
