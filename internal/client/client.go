package client

import (
	"errors"

	"github.com/fivetwenty-io/docean/internal/constants"
	"github.com/fivetwenty-io/docean/internal/http"
	"github.com/fivetwenty-io/docean/pkg/docean"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
)

// Client implements the docean.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     docean.Logger

	// Resource clients
	droplets  docean.DropletsClient
	apps      docean.AppsClient
	account   docean.AccountClient
	actions   docean.ActionsClient
	snapshots docean.SnapshotsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *docean.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new DigitalOcean API client. The endpoint defaults to the
// production API when the config leaves it empty; token validation is the
// caller's concern (doclient.New enforces it for public construction).
func New(config *docean.Config) (*Client, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(endpoint, config.AccessToken, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    endpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Droplets implements docean.Client.Droplets.
func (c *Client) Droplets() docean.DropletsClient {
	return c.droplets
}

// Apps implements docean.Client.Apps.
func (c *Client) Apps() docean.AppsClient {
	return c.apps
}

// Account implements docean.Client.Account.
func (c *Client) Account() docean.AccountClient {
	return c.account
}

// Actions implements docean.Client.Actions.
func (c *Client) Actions() docean.ActionsClient {
	return c.actions
}

// Snapshots implements docean.Client.Snapshots.
func (c *Client) Snapshots() docean.SnapshotsClient {
	return c.snapshots
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.droplets = NewDropletsClient(c.httpClient)
	c.apps = NewAppsClient(c.httpClient)
	c.account = NewAccountClient(c.httpClient)
	c.actions = NewActionsClient(c.httpClient)
	c.snapshots = NewSnapshotsClient(c.httpClient)
}

// loggerAdapter adapts docean.Logger to http.Logger.
type loggerAdapter struct {
	logger docean.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
