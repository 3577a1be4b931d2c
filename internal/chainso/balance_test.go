package chainso

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptowatch/internal/fetcher"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(fetcher.NewHTTPFetcher(fetcher.NewHTTPClient(0)), server.URL)
}

func TestClient_Balance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_address_balance/LTC/LTCaddr", r.URL.Path)
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"network": "LTC",
				"address": "LTCaddr",
				"confirmed_balance": "3.25",
				"unconfirmed_balance": "0.00000000"
			}
		}`))
	})

	got, err := client.Balance(context.Background(), "LTCaddr")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("3.25")), "Balance() = %s, want 3.25", got)
}

func TestClient_Balance_FailBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":"fail","data":{"address":"Invalid address."}}`))
	})

	_, err := client.Balance(context.Background(), "LTCaddr")
	assert.True(t, fetcher.IsParse(err), "Balance() error = %v, want parse error", err)
}

func TestClient_Balance_MissingData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success"}`))
	})

	_, err := client.Balance(context.Background(), "LTCaddr")
	assert.True(t, fetcher.IsParse(err))
}

func TestClient_Balance_Forbidden(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Balance(context.Background(), "LTCaddr")
	assert.True(t, fetcher.IsTransport(err))
}
