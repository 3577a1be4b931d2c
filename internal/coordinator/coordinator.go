package coordinator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"cryptowatch/internal/coin"
	"cryptowatch/internal/metrics"
)

// Collector produces the metrics row for a single coin
type Collector interface {
	Collect(ctx context.Context, c coin.Type) (metrics.CoinMetrics, error)
}

// Coordinator collects metrics for several coins concurrently
type Coordinator struct {
	collector Collector
	coins     []coin.Type
}

// New creates a new Coordinator for coins, which fixes the result order
func New(collector Collector, coins []coin.Type) *Coordinator {
	return &Coordinator{
		collector: collector,
		coins:     coins,
	}
}

// Run collects every coin in its own goroutine and returns the rows in
// the order the coins were given. The first failure cancels the rest and
// is returned as is; no partial result is produced.
func (c *Coordinator) Run(ctx context.Context) ([]metrics.CoinMetrics, error) {
	if len(c.coins) == 0 {
		return nil, fmt.Errorf("no coins configured")
	}

	rows := make([]metrics.CoinMetrics, len(c.coins))

	eg, childCtx := errgroup.WithContext(ctx)
	for i, t := range c.coins {
		i, t := i, t
		eg.Go(func() error {
			m, err := c.collector.Collect(childCtx, t)
			if err != nil {
				return err
			}
			rows[i] = m
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}
