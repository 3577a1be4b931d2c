package coinmarketcap

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"cryptowatch/internal/coin"
	"cryptowatch/internal/fetcher"
)

// Quote holds the market statistics of one coin in one fiat currency
type Quote struct {
	Price            decimal.Decimal
	Volume24h        decimal.Decimal
	PercentChange7d  decimal.Decimal
	PercentChange24h decimal.Decimal
	PercentChange1h  decimal.Decimal
}

// Client queries the ticker endpoint of the market-data API
type Client struct {
	baseURL string
	fetcher fetcher.Fetcher
}

// NewClient creates a new ticker client
func NewClient(f fetcher.Fetcher, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		fetcher: f,
	}
}

// TickerURL returns the ticker endpoint for c converted into fiat
func (c *Client) TickerURL(t coin.Type, fiat string) string {
	return c.baseURL + "/" + url.PathEscape(string(t)) + "/?convert=" + url.QueryEscape(fiat)
}

// Quote fetches price and change statistics for t in fiat.
// Price and volume keys are suffixed with the lower-cased fiat code.
func (c *Client) Quote(ctx context.Context, t coin.Type, fiat string) (Quote, error) {
	body, err := c.fetcher.Fetch(ctx, c.TickerURL(t, fiat))
	if err != nil {
		return Quote{}, fmt.Errorf("failed to fetch ticker for %s: %w", t, err)
	}

	var tickers []map[string]jsoniter.RawMessage
	if err := fetcher.DecodeJSON(body, &tickers); err != nil {
		return Quote{}, fmt.Errorf("failed to parse ticker for %s: %w", t, err)
	}

	if len(tickers) == 0 {
		return Quote{}, fetcher.NewParseError(fmt.Sprintf("empty ticker response for %s", t), nil)
	}

	suffix := strings.ToLower(fiat)
	fields := tickers[0]

	var q Quote
	for _, f := range []struct {
		key string
		dst *decimal.Decimal
	}{
		{"price_" + suffix, &q.Price},
		{"24h_volume_" + suffix, &q.Volume24h},
		{"percent_change_7d", &q.PercentChange7d},
		{"percent_change_24h", &q.PercentChange24h},
		{"percent_change_1h", &q.PercentChange1h},
	} {
		v, err := field(fields, f.key)
		if err != nil {
			return Quote{}, fmt.Errorf("ticker for %s: %w", t, err)
		}
		*f.dst = v
	}

	return q, nil
}

func field(fields map[string]jsoniter.RawMessage, key string) (decimal.Decimal, error) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return decimal.Zero, fetcher.NewParseError(fmt.Sprintf("%s not found in response", key), nil)
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Zero, fetcher.NewParseError(fmt.Sprintf("malformed %s", key), err)
	}
	return d, nil
}
