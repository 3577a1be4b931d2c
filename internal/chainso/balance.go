package chainso

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"cryptowatch/internal/fetcher"
)

// network is the chain.so network code for Litecoin
const network = "LTC"

// BalanceResponse represents the get_address_balance payload
type BalanceResponse struct {
	Status string `json:"status"`
	Data   *struct {
		Network            string           `json:"network"`
		Address            string           `json:"address"`
		ConfirmedBalance   *decimal.Decimal `json:"confirmed_balance"`
		UnconfirmedBalance *decimal.Decimal `json:"unconfirmed_balance"`
	} `json:"data"`
}

// Client fetches Litecoin address balances from chain.so. Balances are
// already reported in whole LTC.
type Client struct {
	baseURL string
	fetcher fetcher.Fetcher
}

func NewClient(f fetcher.Fetcher, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		fetcher: f,
	}
}

func (c *Client) BalanceURL(address string) string {
	return c.baseURL + "/get_address_balance/" + network + "/" + url.PathEscape(address)
}

// Balance retrieves the confirmed balance of address
func (c *Client) Balance(ctx context.Context, address string) (decimal.Decimal, error) {
	body, err := c.fetcher.Fetch(ctx, c.BalanceURL(address))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch balance for %s: %w", address, err)
	}

	var result BalanceResponse
	if err := fetcher.DecodeJSON(body, &result); err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse balance for %s: %w", address, err)
	}

	if result.Data == nil || result.Data.ConfirmedBalance == nil {
		return decimal.Zero, fetcher.NewParseError(fmt.Sprintf("confirmed_balance not found in response for %s", address), nil)
	}

	return *result.Data.ConfirmedBalance, nil
}
