package blockchain

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"cryptowatch/internal/fetcher"
)

const satoshiExponent = 8

// AddressResponse is the subset of the rawaddr payload we read
type AddressResponse struct {
	Address      string           `json:"address"`
	FinalBalance *decimal.Decimal `json:"final_balance"` // satoshi
}

// Client fetches Bitcoin address balances from blockchain.info
type Client struct {
	baseURL string
	fetcher fetcher.Fetcher
}

// NewClient creates a new blockchain.info balance client
func NewClient(f fetcher.Fetcher, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		fetcher: f,
	}
}

// BalanceURL returns the rawaddr endpoint for address
func (c *Client) BalanceURL(address string) string {
	return c.baseURL + "/rawaddr/" + url.PathEscape(address)
}

// Balance retrieves the final balance of address in BTC
func (c *Client) Balance(ctx context.Context, address string) (decimal.Decimal, error) {
	body, err := c.fetcher.Fetch(ctx, c.BalanceURL(address))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch balance for %s: %w", address, err)
	}

	var result AddressResponse
	if err := fetcher.DecodeJSON(body, &result); err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse balance for %s: %w", address, err)
	}

	if result.FinalBalance == nil {
		return decimal.Zero, fetcher.NewParseError(fmt.Sprintf("final_balance not found in response for %s", address), nil)
	}

	return result.FinalBalance.Shift(-satoshiExponent), nil
}
