package etherscan

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"cryptowatch/internal/fetcher"
)

// weiExponent is the power of ten between wei and ether
const weiExponent = 18

// BalanceResponse represents the Etherscan API response for account balance
type BalanceResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Result  *decimal.Decimal `json:"result"` // Balance in wei as a string
}

// Client fetches Ethereum address balances from Etherscan
type Client struct {
	apiKey  string
	baseURL string
	fetcher fetcher.Fetcher
}

// NewClient creates a new Etherscan balance client
func NewClient(f fetcher.Fetcher, apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		fetcher: f,
	}
}

// BalanceURL returns the account balance endpoint for address
func (c *Client) BalanceURL(address string) string {
	params := url.Values{}
	params.Set("chainid", "1")
	params.Set("module", "account")
	params.Set("action", "balance")
	params.Set("address", address)
	params.Set("tag", "latest")
	params.Set("apikey", c.apiKey)

	return c.baseURL + "?" + params.Encode()
}

// Balance retrieves the balance of address in ether
func (c *Client) Balance(ctx context.Context, address string) (decimal.Decimal, error) {
	body, err := c.fetcher.Fetch(ctx, c.BalanceURL(address))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch balance for %s: %w", address, err)
	}

	var result BalanceResponse
	if err := fetcher.DecodeJSON(body, &result); err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse balance for %s: %w", address, err)
	}

	if result.Result == nil {
		return decimal.Zero, fetcher.NewParseError(fmt.Sprintf("balance not found in response for %s", address), nil)
	}

	// Convert wei to ETH: shift by 10^-18
	return result.Result.Shift(-weiExponent), nil
}
