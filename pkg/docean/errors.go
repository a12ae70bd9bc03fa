package docean

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ResponseError represents an error response from the DigitalOcean API. The
// body carries a machine-readable ID, a human-readable message, and the
// request ID to quote in support tickets; the HTTP status is attached by the
// transport layer.
type ResponseError struct {
	StatusCode int    `json:"-"                    yaml:"-"`
	ID         string `json:"id"                   yaml:"id"`
	Message    string `json:"message"              yaml:"message"`
	RequestID  string `json:"request_id,omitempty" yaml:"request_id,omitempty"`
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("%s: %s (status: %d, request: %s)", e.ID, e.Message, e.StatusCode, e.RequestID)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.ID, e.Message, e.StatusCode)
}

// Common machine-readable error IDs returned by the API.
const (
	ErrorIDNotFound        = "not_found"
	ErrorIDUnauthorized    = "unauthorized"
	ErrorIDForbidden       = "forbidden"
	ErrorIDTooManyRequests = "too_many_requests"
	ErrorIDUnprocessable   = "unprocessable_entity"
	ErrorIDServerError     = "server_error"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAccessTokenRequired = errors.New("access token is required")
	ErrMissingField        = errors.New("missing field in response")
	ErrDropletNotFound     = errors.New("droplet not found")
	ErrAppNotFound         = errors.New("app not found")
	ErrSnapshotNotFound    = errors.New("snapshot not found")
	ErrActionNotFound      = errors.New("action not found")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is an authorization error.
func IsForbidden(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusForbidden
	}

	return false
}

// IsRateLimited checks if the error is a rate limit rejection.
func IsRateLimited(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}

// ParseResponseError parses an error response body from JSON.
func ParseResponseError(data []byte) (*ResponseError, error) {
	var respErr ResponseError

	err := json.Unmarshal(data, &respErr)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	return &respErr, nil
}
