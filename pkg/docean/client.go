package docean

import (
	"context"
	"time"
)

// DropletsClient manages droplets and their associated sub-resources.
type DropletsClient interface {
	Create(ctx context.Context, request *DropletCreateRequest) (*Droplet, error)
	CreateMultiple(ctx context.Context, request *DropletMultiCreateRequest) ([]Droplet, error)
	Get(ctx context.Context, dropletID int) (*Droplet, error)
	List(ctx context.Context, params *ListParams) (*ListResponse[Droplet], error)
	ListByTag(ctx context.Context, tag string, params *ListParams) (*ListResponse[Droplet], error)
	Delete(ctx context.Context, dropletID int) error
	DeleteByTag(ctx context.Context, tag string) error
	Kernels(ctx context.Context, dropletID int, params *ListParams) (*ListResponse[Kernel], error)
	Snapshots(ctx context.Context, dropletID int, params *ListParams) (*ListResponse[Image], error)
	Backups(ctx context.Context, dropletID int, params *ListParams) (*ListResponse[Image], error)
	Actions(ctx context.Context, dropletID int, params *ListParams) (*ListResponse[Action], error)
	Neighbors(ctx context.Context, dropletID int) ([]Droplet, error)
	ListNeighborIDs(ctx context.Context) ([][]int, error)
}

// AppsClient manages App Platform apps.
type AppsClient interface {
	Create(ctx context.Context, request *AppCreateRequest) (*App, error)
	Get(ctx context.Context, appID string) (*App, error)
	List(ctx context.Context, params *ListParams) (*ListResponse[App], error)
	Update(ctx context.Context, appID string, request *AppUpdateRequest) (*App, error)
	Delete(ctx context.Context, appID string) error
}

// AccountClient reads the account associated with the current credentials.
type AccountClient interface {
	Get(ctx context.Context) (*Account, error)
}

// ActionsClient reads the account-wide action log.
type ActionsClient interface {
	Get(ctx context.Context, actionID int) (*Action, error)
	List(ctx context.Context, params *ListParams) (*ListResponse[Action], error)
}

// SnapshotsClient manages top-level snapshots (droplet and volume).
type SnapshotsClient interface {
	Get(ctx context.Context, snapshotID string) (*Snapshot, error)
	List(ctx context.Context, params *ListParams) (*ListResponse[Snapshot], error)
	Delete(ctx context.Context, snapshotID string) error
}

// Client provides access to all resource-specific clients.
type Client interface {
	Droplets() DropletsClient
	Apps() AppsClient
	Account() AccountClient
	Actions() ActionsClient
	Snapshots() SnapshotsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a docean.Client.
//
// # Authentication
//
// The DigitalOcean API authenticates with a personal access token sent as a
// Bearer header on every request. Each Client carries its own token; two
// clients constructed with different tokens never share header state.
//
// # Timeouts and retries
//
// Per-request timeouts should be controlled via the context passed to client
// methods. By default every call is a single round trip; setting RetryMax
// enables transport-level retries for connection errors, 429, and 5xx
// responses, tunable via RetryWaitMin/RetryWaitMax. 4xx responses are never
// retried.
type Config struct {
	// AccessToken is the DigitalOcean personal access token (required).
	AccessToken string

	// APIEndpoint overrides the base URL. doclient.New normalizes this value
	// by trimming a trailing slash and adding "https://" if no scheme is
	// present; empty means the production endpoint.
	APIEndpoint string

	// HTTPTimeout is the transport-level timeout. Most callers should rely
	// on context deadlines instead; zero means the transport default.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient failures.
	// Zero disables retries entirely.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string
}
