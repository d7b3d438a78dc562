// Package feed retrieves raw price history and market capitalization from
// external market-data sources. Fetchers hand series over in raw string-token
// form; the coerce package owns all type conversion.
package feed

import (
	"fmt"
	"time"

	"StockBoard/internal/model"
)

// Interval is the sampling period of a history request.
type Interval string

const (
	IntervalDaily   Interval = "1d"
	IntervalWeekly  Interval = "1wk"
	IntervalMonthly Interval = "1mo"
)

// ParseInterval validates an interval string. Empty defaults to daily.
func ParseInterval(s string) (Interval, error) {
	switch Interval(s) {
	case "":
		return IntervalDaily, nil
	case IntervalDaily, IntervalWeekly, IntervalMonthly:
		return Interval(s), nil
	}
	return "", fmt.Errorf("unsupported interval %q", s)
}

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchHistory returns the symbol's observations in [start, end],
	// ascending by date. An empty series is a valid result.
	FetchHistory(symbol string, start, end time.Time, interval Interval) (model.RawSeries, error)
	// FetchMarketCap returns the symbol's current market capitalization.
	FetchMarketCap(symbol string) (float64, error)
	Name() string
}

// SourceError wraps any fetch failure with the symbol it belongs to, so the
// pipeline can report which ticker broke the batch.
type SourceError struct {
	Symbol string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("data source error for %s: %v", e.Symbol, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
