package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"cryptowatch/internal/balance"
	"cryptowatch/internal/blockchain"
	"cryptowatch/internal/chainso"
	"cryptowatch/internal/coin"
	"cryptowatch/internal/coinmarketcap"
	"cryptowatch/internal/config"
	"cryptowatch/internal/coordinator"
	"cryptowatch/internal/etherscan"
	"cryptowatch/internal/fetcher"
	"cryptowatch/internal/metrics"
	"cryptowatch/internal/report"
	"cryptowatch/internal/terminal"
)

func main() {
	flags := pflag.NewFlagSet("cryptowatch", pflag.ExitOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	flags.String("fiat-currency", "USD", "fiat currency to convert into")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Duration("watch", 0, "refresh the report at this interval until interrupted")
	flags.Bool("clear", false, "clear the terminal before printing the report")
	_ = flags.Parse(os.Args[1:])

	// Load configuration
	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})))

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	builder := newBuilder(cfg, terminal.New(os.Stdout))

	if cfg.Watch == 0 {
		if err := printReport(ctx, builder, cfg, cfg.Clear, os.Stdout); err != nil {
			log.Fatalf("Failed to build report: %v", err)
		}
		return
	}

	watch(ctx, builder, cfg, os.Stdout)
}

// newBuilder wires the fetch pipeline described by cfg
func newBuilder(cfg *config.Config, controller terminal.Controller) *report.Builder {
	f := fetcher.NewHTTPFetcher(fetcher.NewHTTPClient(cfg.RequestTimeout))

	agg := balance.NewAggregator(map[coin.Type]balance.Source{
		coin.Bitcoin:  blockchain.NewClient(f, cfg.BlockchainBaseURL),
		coin.Ethereum: etherscan.NewClient(f, cfg.EtherscanAPIKey, cfg.EtherscanBaseURL),
		coin.Litecoin: chainso.NewClient(f, cfg.ChainsoBaseURL),
	}, cfg.MaxConcurrency)

	collector := metrics.NewCollector(
		coinmarketcap.NewClient(f, cfg.CoinmarketcapBaseURL),
		agg,
		cfg.Addresses(),
		cfg.FiatCurrency,
	)

	return report.NewBuilder(coordinator.New(collector, coin.All()), cfg.FiatCurrency, controller)
}

// printReport builds one report bounded by the request timeout and writes it to out
func printReport(ctx context.Context, builder *report.Builder, cfg *config.Config, clear bool, out io.Writer) error {
	reportCtx, reportCancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer reportCancel()

	table, err := builder.Build(reportCtx, clear)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, table)
	return err
}

// watch refreshes the report every cfg.Watch until ctx is cancelled.
// Failed refreshes are logged and the previous report stays on screen.
func watch(ctx context.Context, builder *report.Builder, cfg *config.Config, out io.Writer) {
	ticker := time.NewTicker(cfg.Watch)
	defer ticker.Stop()

	for {
		if err := printReport(ctx, builder, cfg, true, out); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			slog.Error("failed to refresh report", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
