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

// ActionsClient implements the docean.ActionsClient interface.
type ActionsClient struct {
	httpClient *http_internal.Client
}

// NewActionsClient creates a new ActionsClient.
func NewActionsClient(httpClient *http_internal.Client) *ActionsClient {
	return &ActionsClient{
		httpClient: httpClient,
	}
}

// Get retrieves a specific action.
func (c *ActionsClient) Get(ctx context.Context, actionID int) (*docean.Action, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathActions+"/"+strconv.Itoa(actionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting action: %w", err)
	}

	action, err := unwrap[docean.Action](resp.Body, "action")
	if err != nil {
		return nil, fmt.Errorf("parsing action response: %w", err)
	}

	return &action, nil
}

// List lists actions across the account, most recent first.
func (c *ActionsClient) List(ctx context.Context, params *docean.ListParams) (*docean.ActionList, error) {
	var queryParams url.Values
	if params != nil {
		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, constants.APIPathActions, queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing actions: %w", err)
	}

	result, err := unwrapList[docean.Action](resp.Body, "actions")
	if err != nil {
		return nil, fmt.Errorf("parsing actions list response: %w", err)
	}

	return result, nil
}
