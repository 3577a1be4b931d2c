package balance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"cryptowatch/internal/coin"
	"cryptowatch/internal/fetcher"
)

// Source reports the whole-unit balance of a single address on one chain.
type Source interface {
	Balance(ctx context.Context, address string) (decimal.Decimal, error)
}

// Aggregator sums address balances per coin using one Source per chain.
type Aggregator struct {
	sources     map[coin.Type]Source
	concurrency int
}

// NewAggregator creates an aggregator. concurrency caps the number of
// in-flight address lookups per call; values below 1 mean sequential.
func NewAggregator(sources map[coin.Type]Source, concurrency int) *Aggregator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Aggregator{
		sources:     sources,
		concurrency: concurrency,
	}
}

// TotalBalance returns the sum of the balances of addresses for c.
// The first failing address aborts the whole aggregation.
func (a *Aggregator) TotalBalance(ctx context.Context, c coin.Type, addresses []string) (decimal.Decimal, error) {
	source, ok := a.sources[c]
	if !ok || !c.Valid() {
		return decimal.Zero, fetcher.NewInvalidArgumentError(fmt.Sprintf("unsupported coin type %q", c))
	}

	balances := make([]decimal.Decimal, len(addresses))

	eg, childCtx := errgroup.WithContext(ctx)
	eg.SetLimit(a.concurrency)

	for i, address := range addresses {
		i, address := i, address
		eg.Go(func() error {
			if err := childCtx.Err(); err != nil {
				return err
			}
			b, err := source.Balance(childCtx, address)
			if err != nil {
				return err
			}
			balances[i] = b
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", c, err)
	}

	total := decimal.Zero
	for _, b := range balances {
		total = total.Add(b)
	}

	slog.Debug("aggregated balance",
		"coin", c,
		"addresses", len(addresses),
		"total", total.String())

	return total, nil
}
