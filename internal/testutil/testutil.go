package testutil

import (
	"context"
	"fmt"
	"sync"

	"cryptowatch/internal/fetcher"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing.
// It is safe for concurrent use.
type MockFetcher struct {
	FetchFunc func(ctx context.Context, url string) (string, error)

	mu   sync.Mutex
	urls []string
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context, url string) (string, error) {
	m.mu.Lock()
	m.urls = append(m.urls, url)
	m.mu.Unlock()

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, url)
	}
	return "", nil
}

// Calls returns the URLs fetched so far, in call order.
func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.urls...)
}

// NewMockFetcher creates a mock that serves canned bodies keyed by exact URL.
// Unknown URLs fail with a transport error.
func NewMockFetcher(responses map[string]string) *MockFetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context, url string) (string, error) {
			body, ok := responses[url]
			if !ok {
				return "", fetcher.NewNetworkError(fmt.Errorf("no canned response for %s", url))
			}
			return body, nil
		},
	}
}

// NewFailingFetcher creates a mock whose every call fails with err.
func NewFailingFetcher(err error) *MockFetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context, url string) (string, error) {
			return "", err
		},
	}
}
