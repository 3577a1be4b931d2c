package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"cryptowatch/internal/coin"
	"cryptowatch/internal/metrics"
)

// mockCollector returns canned rows, sleeping per coin to shuffle completion order
type mockCollector struct {
	delays map[coin.Type]time.Duration
	errs   map[coin.Type]error
}

func (m *mockCollector) Collect(ctx context.Context, c coin.Type) (metrics.CoinMetrics, error) {
	select {
	case <-ctx.Done():
		return metrics.CoinMetrics{}, ctx.Err()
	case <-time.After(m.delays[c]):
	}

	if err := m.errs[c]; err != nil {
		return metrics.CoinMetrics{}, err
	}
	return metrics.CoinMetrics{Coin: c, FiatValue: decimal.NewFromInt(1)}, nil
}

func TestNew(t *testing.T) {
	coord := New(&mockCollector{}, coin.All())
	if coord == nil {
		t.Fatal("New() returned nil")
	}

	if len(coord.coins) != 3 {
		t.Errorf("New() created coordinator with %d coins, want 3", len(coord.coins))
	}
}

func TestRun_PreservesOrder(t *testing.T) {
	// Bitcoin finishes last, Litecoin first
	collector := &mockCollector{delays: map[coin.Type]time.Duration{
		coin.Bitcoin:  50 * time.Millisecond,
		coin.Ethereum: 30 * time.Millisecond,
		coin.Litecoin: 10 * time.Millisecond,
	}}

	rows, err := New(collector, coin.All()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() returned unexpected error: %v", err)
	}

	want := []coin.Type{coin.Bitcoin, coin.Ethereum, coin.Litecoin}
	if len(rows) != len(want) {
		t.Fatalf("Run() returned %d rows, want %d", len(rows), len(want))
	}
	for i, row := range rows {
		if row.Coin != want[i] {
			t.Errorf("rows[%d].Coin = %s, want %s", i, row.Coin, want[i])
		}
	}
}

func TestRun_FailureAbortsWithoutRows(t *testing.T) {
	testErr := errors.New("ethereum fetch failed")

	collector := &mockCollector{
		delays: map[coin.Type]time.Duration{
			coin.Bitcoin:  time.Second,
			coin.Litecoin: time.Second,
		},
		errs: map[coin.Type]error{coin.Ethereum: testErr},
	}

	start := time.Now()
	rows, err := New(collector, coin.All()).Run(context.Background())

	if !errors.Is(err, testErr) {
		t.Errorf("Run() error = %v, want %v", err, testErr)
	}
	if rows != nil {
		t.Errorf("Run() rows = %v, want nil", rows)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Run() took %s, siblings were not cancelled", elapsed)
	}
}

func TestRun_NoCoins(t *testing.T) {
	_, err := New(&mockCollector{}, nil).Run(context.Background())
	if err == nil {
		t.Fatal("Run() expected error for no coins, got nil")
	}

	expectedErrMsg := "no coins configured"
	if err.Error() != expectedErrMsg {
		t.Errorf("Run() error = %q, want %q", err.Error(), expectedErrMsg)
	}
}

func TestRun_ContextCancellation(t *testing.T) {
	collector := &mockCollector{delays: map[coin.Type]time.Duration{coin.Bitcoin: 5 * time.Second}}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := New(collector, []coin.Type{coin.Bitcoin}).Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want %v", err, context.DeadlineExceeded)
	}
}
