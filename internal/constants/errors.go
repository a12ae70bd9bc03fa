package constants

import "errors"

// Configuration errors.
var (
	ErrNoAccessToken       = errors.New("no access token configured, use 'docean auth login' or set DOCEAN_TOKEN")
	ErrNoAPIEndpoint       = errors.New("no API endpoint configured")
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json, or yaml")
)

// Argument errors.
var (
	ErrDropletIDRequired  = errors.New("droplet ID is required")
	ErrSnapshotIDRequired = errors.New("snapshot ID is required")
	ErrActionIDRequired   = errors.New("action ID is required")
	ErrAppIDRequired      = errors.New("app ID is required")
	ErrTagRequired        = errors.New("tag name is required")
	ErrInvalidDropletID   = errors.New("droplet ID must be an integer")
	ErrInvalidActionID    = errors.New("action ID must be an integer")
	ErrSpecFileRequired   = errors.New("app spec file is required (--spec)")
)
