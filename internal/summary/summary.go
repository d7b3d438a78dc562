// Package summary derives the per-ticker watchlist row from a fetched series.
package summary

import (
	"StockBoard/internal/model"
)

// BuildRow derives the summary metrics for one ticker. Pure function: the
// series is read, never modified.
//
// A series with fewer than 2 observations reports the last close as the
// previous close too, so change and change_pct are both zero. When the
// previous close is exactly zero the percentage is undefined and the field
// stays null.
func BuildRow(ticker string, series model.TickerSeries, marketCap float64) model.SummaryRow {
	row := model.SummaryRow{Ticker: ticker, MarketCap: marketCap}

	last, ok := series.Last()
	if !ok {
		return row
	}
	row.LastTradeTime = model.Timestamp(last.Date)
	row.LastPrice = last.Close

	prev := last.Close
	if series.Len() > 1 {
		prev = series.Bars[series.Len()-2].Close
	}
	row.PrevDayPrice = prev

	if !row.LastPrice.Valid || !prev.Valid {
		return row
	}
	change := row.LastPrice.Float64 - prev.Float64
	row.Change = model.Float(change)
	if prev.Float64 != 0 {
		row.ChangePct = model.Float(change / prev.Float64 * 100)
	}
	return row
}
