package fetcher

import (
	"context"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Fetcher is the transport every API client is built on.
// Fetch issues a GET for url and returns the raw response body.
// Bodies of 404 and 500 responses are returned as well; callers detect
// error payloads while decoding.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// DecodeJSON unmarshals body into v, reporting failures as parse errors.
func DecodeJSON(body string, v any) error {
	if err := json.UnmarshalFromString(body, v); err != nil {
		return NewParseError("failed to decode response", err)
	}
	return nil
}
