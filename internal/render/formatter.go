// Package render formats pipeline output as plain text. It is the in-repo
// stand-in for the presentation collaborators that consume the summary table
// and history map; anything fancier (charts, widgets) lives outside this
// module.
package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"StockBoard/internal/batch"
	"StockBoard/internal/calculator"
	"StockBoard/internal/model"
	"StockBoard/internal/window"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a price column as a row of block runes scaled to the
// column's own range. Null values render as '·'.
func Sparkline(values []model.NullFloat) string {
	min, max := 0.0, 0.0
	first := true
	for _, v := range values {
		if !v.Valid {
			continue
		}
		if first || v.Float64 < min {
			min = v.Float64
		}
		if first || v.Float64 > max {
			max = v.Float64
		}
		first = false
	}

	var b strings.Builder
	for _, v := range values {
		switch {
		case !v.Valid:
			b.WriteRune('·')
		case max == min:
			b.WriteRune(sparkRunes[len(sparkRunes)/2])
		default:
			idx := int((v.Float64 - min) / (max - min) * float64(len(sparkRunes)-1))
			b.WriteRune(sparkRunes[idx])
		}
	}
	return b.String()
}

// FormatWatchlist lays the summary rows out in a fixed-width grid, one card
// per ticker: price, signed day change and a sparkline of recent opens.
func FormatWatchlist(table model.SummaryTable, columns int) (string, error) {
	groups, err := batch.Batch(table, columns)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, group := range groups {
		cards := make([]string, len(group))
		for i, row := range group {
			cards[i] = formatCard(row)
		}
		b.WriteString(strings.Join(cards, "  |  "))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func formatCard(row model.SummaryRow) string {
	price := "n/a"
	if row.LastPrice.Valid {
		price = fmt.Sprintf("%.2f", row.LastPrice.Float64)
	}
	change := "n/a"
	if row.ChangePct.Valid {
		arrow := "▲"
		if row.ChangePct.Float64 < 0 {
			arrow = "▼"
		}
		change = fmt.Sprintf("%s %+.2f%%", arrow, row.ChangePct.Float64)
	}
	return fmt.Sprintf("%-10s %10s  %-10s %s", row.Ticker, price, change, Sparkline(row.OpenSeries))
}

// FormatSymbolDetail reports the indicator block for one selected ticker and
// period: volume and close extremes over the window plus current market cap.
func FormatSymbolDetail(row model.SummaryRow, period window.Period, windowed model.TickerSeries, agg calculator.SeriesAggregates) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s | %s window (%d observations)\n", row.Ticker, period, windowed.Len()))
	if row.LastTradeTime.Valid {
		b.WriteString(fmt.Sprintf("last trade: %s\n", row.LastTradeTime.Time.Format("2006-01-02")))
	}
	b.WriteString(fmt.Sprintf("lowest traded volume:  %s\n", humanize.Commaf(agg.VolumeMin)))
	b.WriteString(fmt.Sprintf("highest traded volume: %s\n", humanize.Commaf(agg.VolumeMax)))
	b.WriteString(fmt.Sprintf("mean traded volume:    %s\n", humanize.Commaf(agg.VolumeMean)))
	b.WriteString(fmt.Sprintf("lowest close:  %s\n", humanize.Commaf(agg.CloseMin)))
	b.WriteString(fmt.Sprintf("highest close: %s\n", humanize.Commaf(agg.CloseMax)))
	b.WriteString(fmt.Sprintf("market cap:    %s\n", humanize.Commaf(row.MarketCap)))
	return b.String()
}
