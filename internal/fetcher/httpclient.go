package fetcher

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"resty.dev/v3"
)

const defaultTimeout = 30 * time.Second

// HTTPFetcher performs plain GET requests through resty.
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPClient creates a resty client without retries. A zero timeout
// falls back to the default.
func NewHTTPClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)
}

// NewHTTPFetcher creates a fetcher backed by client
func NewHTTPFetcher(client *resty.Client) *HTTPFetcher {
	return &HTTPFetcher{client: client}
}

// Fetch implements the Fetcher interface
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		return "", NewNetworkError(err)
	}

	slog.Debug("fetched url",
		"url", url,
		"status_code", resp.StatusCode())

	if !deliverable(resp.StatusCode()) {
		return "", NewStatusError(resp.StatusCode())
	}

	return resp.String(), nil
}

// deliverable reports whether a response body should be handed to the caller
func deliverable(statusCode int) bool {
	switch statusCode {
	case http.StatusOK, http.StatusNotFound, http.StatusInternalServerError:
		return true
	default:
		return false
	}
}
