package constants

import "time"

// API endpoints.
const (
	// DefaultAPIEndpoint is the production DigitalOcean API base URL.
	DefaultAPIEndpoint = "https://api.digitalocean.com"
)

// API paths.
const (
	// APIPathDroplets is the droplets collection path.
	APIPathDroplets = "/v2/droplets"

	// APIPathApps is the apps collection path.
	APIPathApps = "/v2/apps"

	// APIPathAccount is the account singleton path.
	APIPathAccount = "/v2/account"

	// APIPathActions is the actions collection path.
	APIPathActions = "/v2/actions"

	// APIPathSnapshots is the snapshots collection path.
	APIPathSnapshots = "/v2/snapshots"

	// APIPathNeighborIDs is the account-wide neighbor report path.
	APIPathNeighborIDs = "/v2/reports/droplet_neighbors_ids"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits, applied only when retries are enabled via Config.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination.
const (
	// StandardPageSize is the default page size for list commands.
	StandardPageSize = 50

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 200
)
