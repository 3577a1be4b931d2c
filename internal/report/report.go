package report

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"cryptowatch/internal/metrics"
)

const timestampLayout = "2006-01-02 15:04:05.000000"

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Report is a rendered-ready snapshot of every coin row
type Report struct {
	Fiat      string
	Header    []string
	Rows      [][]string
	Total     decimal.Decimal
	UpdatedAt time.Time
}

// Header returns the column titles for fiat
func Header(fiat string) []string {
	return []string{
		"Coin Type",
		"Price " + fiat,
		"24h Volume",
		"7d % Change",
		"24h % Change",
		"1h % Change",
		"Total Crypto Balance",
		"Total " + fiat,
	}
}

// New assembles a report from rows kept in the given order.
func New(rows []metrics.CoinMetrics, fiat string, updatedAt time.Time) Report {
	r := Report{
		Fiat:      fiat,
		Header:    Header(fiat),
		Rows:      make([][]string, 0, len(rows)),
		Total:     decimal.Zero,
		UpdatedAt: updatedAt,
	}

	for _, m := range rows {
		r.Total = r.Total.Add(m.FiatValue)
		r.Rows = append(r.Rows, []string{
			m.Coin.DisplayName(),
			m.Price.String(),
			m.Volume24h.String(),
			m.PercentChange7d.String(),
			m.PercentChange24h.String(),
			m.PercentChange1h.String(),
			m.Balance.String(),
			m.FiatValue.StringFixed(2),
		})
	}

	return r
}

// Footer returns the timestamp and grand total line
func (r Report) Footer() string {
	return fmt.Sprintf("Last Updated: %s\tTotal %s: %s",
		r.UpdatedAt.Format(timestampLayout), r.Fiat, r.Total.StringFixed(2))
}

// Render returns the ASCII table followed by the footer line
func (r Report) Render() string {
	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(r.Header...).
		Rows(r.Rows...)

	return t.Render() + "\n" + r.Footer()
}
