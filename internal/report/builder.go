package report

import (
	"context"
	"log/slog"
	"time"

	"cryptowatch/internal/metrics"
	"cryptowatch/internal/terminal"
)

// Runner collects the metrics rows of every reported coin in order
type Runner interface {
	Run(ctx context.Context) ([]metrics.CoinMetrics, error)
}

// Builder turns collected metrics into the rendered report
type Builder struct {
	runner   Runner
	fiat     string
	terminal terminal.Controller
	now      func() time.Time
}

// NewBuilder creates a builder. A nil controller never clears.
func NewBuilder(runner Runner, fiat string, controller terminal.Controller) *Builder {
	if controller == nil {
		controller = terminal.Noop{}
	}
	return &Builder{
		runner:   runner,
		fiat:     fiat,
		terminal: controller,
		now:      time.Now,
	}
}

// Build collects fresh metrics and renders them. When clearScreenFirst is
// set the terminal is cleared before the rendered report is returned.
// Errors are returned unchanged with an empty string.
func (b *Builder) Build(ctx context.Context, clearScreenFirst bool) (string, error) {
	rows, err := b.runner.Run(ctx)
	if err != nil {
		return "", err
	}

	r := New(rows, b.fiat, b.now())
	out := r.Render()

	slog.Debug("built report",
		"rows", len(r.Rows),
		"total", r.Total.StringFixed(2),
		"fiat", b.fiat)

	if clearScreenFirst {
		b.terminal.Clear()
	}

	return out, nil
}
