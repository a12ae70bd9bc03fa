package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/docean/pkg/docean"
)

// Every API response nests its payload under a named envelope field,
// singular for single items ("droplet") and plural for collections
// ("droplets"). The decoders here are the single place that contract is
// enforced: a response without the expected field is a malformed response
// and fails with a descriptive error rather than a zero value.

var jsonNull = []byte("null")

// unwrap decodes the named envelope field of a response body into T.
func unwrap[T any](body []byte, key string) (T, error) {
	var zero T

	envelope, err := parseEnvelope(body)
	if err != nil {
		return zero, err
	}

	raw, ok := envelope[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return zero, fmt.Errorf("%w: %q", docean.ErrMissingField, key)
	}

	var value T

	err = json.Unmarshal(raw, &value)
	if err != nil {
		return zero, fmt.Errorf("parsing %q field: %w", key, err)
	}

	return value, nil
}

// unwrapList decodes the named plural envelope field plus the pagination
// blocks. Resources is never nil: an empty or null collection decodes to an
// empty slice.
func unwrapList[T any](body []byte, key string) (*docean.ListResponse[T], error) {
	envelope, err := parseEnvelope(body)
	if err != nil {
		return nil, err
	}

	raw, ok := envelope[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", docean.ErrMissingField, key)
	}

	result := &docean.ListResponse[T]{
		Resources: []T{},
	}

	if !bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		err = json.Unmarshal(raw, &result.Resources)
		if err != nil {
			return nil, fmt.Errorf("parsing %q field: %w", key, err)
		}

		if result.Resources == nil {
			result.Resources = []T{}
		}
	}

	if raw, ok := envelope["links"]; ok {
		_ = json.Unmarshal(raw, &result.Links)
	}

	if raw, ok := envelope["meta"]; ok {
		_ = json.Unmarshal(raw, &result.Meta)
	}

	return result, nil
}

func parseEnvelope(body []byte) (map[string]json.RawMessage, error) {
	var envelope map[string]json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing response envelope: %w", err)
	}

	return envelope, nil
}
