// Package pipeline wires fetching, derivation and coercion into the
// end-to-end run that produces the two presentation artifacts: the summary
// table and the history map.
package pipeline

import (
	"fmt"
	"log"
	"time"

	"StockBoard/internal/coerce"
	"StockBoard/internal/feed"
	"StockBoard/internal/model"
	"StockBoard/internal/summary"
	"StockBoard/internal/window"
)

// Pipeline holds one run's fixed inputs. Start and End are explicit: the
// caller decides what "today" is, nothing below cmd reads the wall clock.
type Pipeline struct {
	Fetcher  feed.Fetcher
	Tickers  []string
	Start    time.Time
	End      time.Time
	Interval feed.Interval
	Retries  int           // extra attempts per fetch call, 0 = single attempt
	Backoff  time.Duration // initial retry backoff, doubles per attempt; default 1s
}

// Result is the immutable output of one pipeline run. Table and History
// always carry the same ticker set.
type Result struct {
	Table   model.SummaryTable `json:"table"`
	History model.HistoryMap   `json:"history"`
}

// Run fetches every ticker sequentially, derives the summary table, retains
// the coerced histories and normalizes both artifacts. The first fetch
// failure aborts the whole run: summary derivation assumes a complete ticker
// set, so no partial result is ever returned.
func (p *Pipeline) Run() (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	rows := make(model.SummaryTable, 0, len(p.Tickers))
	hist := make(model.HistoryMap, len(p.Tickers))

	for _, ticker := range p.Tickers {
		raw, err := retry(p.attempts(), p.backoff(), "history "+ticker, func() (model.RawSeries, error) {
			return p.Fetcher.FetchHistory(ticker, p.Start, p.End, p.Interval)
		})
		if err != nil {
			return nil, &feed.SourceError{Symbol: ticker, Err: err}
		}
		marketCap, err := retry(p.attempts(), p.backoff(), "marketcap "+ticker, func() (float64, error) {
			return p.Fetcher.FetchMarketCap(ticker)
		})
		if err != nil {
			return nil, &feed.SourceError{Symbol: ticker, Err: err}
		}

		series := coerce.Series(raw)
		hist[ticker] = series
		rows = append(rows, summary.BuildRow(ticker, series, marketCap))
	}

	// Attach the sparkline column: each row copies its history's opens.
	for i := range rows {
		rows[i].OpenSeries = hist[rows[i].Ticker].Opens()
	}

	table, hist := coerce.Normalize(rows, hist)
	return &Result{Table: table, History: hist}, nil
}

// Window re-slices the already-fetched history for one ticker; no re-fetch.
func (r *Result) Window(ticker string, p window.Period, anchor time.Time) (model.TickerSeries, error) {
	series, ok := r.History[ticker]
	if !ok {
		return model.TickerSeries{}, fmt.Errorf("unknown ticker %q", ticker)
	}
	return window.Select(series, p, anchor)
}

// Row returns the summary row for one ticker.
func (r *Result) Row(ticker string) (model.SummaryRow, bool) {
	for _, row := range r.Table {
		if row.Ticker == ticker {
			return row, true
		}
	}
	return model.SummaryRow{}, false
}

func (p *Pipeline) validate() error {
	if p.Fetcher == nil {
		return fmt.Errorf("pipeline: no fetcher configured")
	}
	if len(p.Tickers) == 0 {
		return fmt.Errorf("pipeline: no tickers configured")
	}
	seen := make(map[string]bool, len(p.Tickers))
	for _, t := range p.Tickers {
		if t == "" {
			return fmt.Errorf("pipeline: empty ticker symbol")
		}
		if seen[t] {
			return fmt.Errorf("pipeline: duplicate ticker %q", t)
		}
		seen[t] = true
	}
	if p.End.Before(p.Start) {
		return fmt.Errorf("pipeline: end date %s before start date %s",
			p.End.Format("2006-01-02"), p.Start.Format("2006-01-02"))
	}
	return nil
}

func (p *Pipeline) attempts() int {
	if p.Retries < 0 {
		return 1
	}
	return p.Retries + 1
}

func (p *Pipeline) backoff() time.Duration {
	if p.Backoff <= 0 {
		return time.Second
	}
	return p.Backoff
}

// retry runs fn up to attempts times with exponential backoff between tries.
func retry[T any](attempts int, backoff time.Duration, what string, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error
	for i := 0; i < attempts; i++ {
		v, err := fn()
		if err == nil {
			return v, nil
		}
		lastErr = err
		if i < attempts-1 {
			wait := backoff * time.Duration(1<<uint(i))
			log.Printf("[WARN] fetch %s failed (attempt %d/%d): %v, retrying in %v", what, i+1, attempts, err, wait)
			time.Sleep(wait)
		}
	}
	return zero, lastErr
}
