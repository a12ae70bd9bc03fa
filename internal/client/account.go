package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/docean/internal/constants"
	http_internal "github.com/fivetwenty-io/docean/internal/http"
	"github.com/fivetwenty-io/docean/pkg/docean"
)

// AccountClient implements the docean.AccountClient interface.
type AccountClient struct {
	httpClient *http_internal.Client
}

// NewAccountClient creates a new AccountClient.
func NewAccountClient(httpClient *http_internal.Client) *AccountClient {
	return &AccountClient{
		httpClient: httpClient,
	}
}

// Get retrieves the account associated with the current credentials.
func (c *AccountClient) Get(ctx context.Context) (*docean.Account, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathAccount, nil)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	account, err := unwrap[docean.Account](resp.Body, "account")
	if err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}

	return &account, nil
}
