package metrics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"cryptowatch/internal/coin"
	"cryptowatch/internal/coinmarketcap"
	"cryptowatch/internal/fetcher"
)

// CoinMetrics is one report row before formatting
type CoinMetrics struct {
	Coin             coin.Type
	Price            decimal.Decimal
	Volume24h        decimal.Decimal
	PercentChange7d  decimal.Decimal
	PercentChange24h decimal.Decimal
	PercentChange1h  decimal.Decimal
	Balance          decimal.Decimal
	FiatValue        decimal.Decimal
}

// Values returns the metrics in column order, FiatValue last.
func (m CoinMetrics) Values() []decimal.Decimal {
	return []decimal.Decimal{
		m.Price,
		m.Volume24h,
		m.PercentChange7d,
		m.PercentChange24h,
		m.PercentChange1h,
		m.Balance,
		m.FiatValue,
	}
}

// QuoteSource provides market statistics for a coin
type QuoteSource interface {
	Quote(ctx context.Context, c coin.Type, fiat string) (coinmarketcap.Quote, error)
}

// BalanceSource provides the total balance held across addresses
type BalanceSource interface {
	TotalBalance(ctx context.Context, c coin.Type, addresses []string) (decimal.Decimal, error)
}

// Collector combines market quotes with aggregated balances
type Collector struct {
	quotes    QuoteSource
	balances  BalanceSource
	addresses map[coin.Type][]string
	fiat      string
}

// NewCollector creates a collector reporting in fiat for the given address book
func NewCollector(quotes QuoteSource, balances BalanceSource, addresses map[coin.Type][]string, fiat string) *Collector {
	return &Collector{
		quotes:    quotes,
		balances:  balances,
		addresses: addresses,
		fiat:      fiat,
	}
}

// Fiat returns the currency the collector reports in
func (c *Collector) Fiat() string {
	return c.fiat
}

// Collect builds the metrics row for t. Unsupported coins are rejected
// before any request is made.
func (c *Collector) Collect(ctx context.Context, t coin.Type) (CoinMetrics, error) {
	if !t.Valid() {
		return CoinMetrics{}, fetcher.NewInvalidArgumentError(fmt.Sprintf("unsupported coin type %q", t))
	}

	q, err := c.quotes.Quote(ctx, t, c.fiat)
	if err != nil {
		return CoinMetrics{}, err
	}

	total, err := c.balances.TotalBalance(ctx, t, c.addresses[t])
	if err != nil {
		return CoinMetrics{}, err
	}

	return CoinMetrics{
		Coin:             t,
		Price:            q.Price,
		Volume24h:        q.Volume24h,
		PercentChange7d:  q.PercentChange7d,
		PercentChange24h: q.PercentChange24h,
		PercentChange1h:  q.PercentChange1h,
		Balance:          total,
		FiatValue:        total.Mul(q.Price),
	}, nil
}
