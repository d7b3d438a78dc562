// Package window slices a ticker's history to a named trailing period.
package window

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"StockBoard/internal/model"
)

// Period names a trailing window length.
type Period string

const (
	Weekly    Period = "weekly"
	Monthly   Period = "monthly"
	Quarterly Period = "quarterly"
	Yearly    Period = "yearly"
)

// ErrUnknownPeriod reports a period name outside the supported set.
// It is a programmer error, not a data condition.
var ErrUnknownPeriod = errors.New("unknown period")

// periodDays maps each period to its trailing length in days.
var periodDays = map[Period]int{
	Weekly:    7,
	Monthly:   31,
	Quarterly: 90,
	Yearly:    365,
}

// Parse converts a period name (case-insensitive) into a Period.
func Parse(name string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := periodDays[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, name)
	}
	return p, nil
}

// Days returns the trailing window length for p.
func Days(p Period) (int, error) {
	d, ok := periodDays[p]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPeriod, p)
	}
	return d, nil
}

// Select returns the observations of series whose date falls inside
// [anchor - period, anchor], both ends inclusive. The anchor is always
// supplied by the caller; this package never reads the wall clock.
//
// The result is a subslice view of the input in the same order; an empty
// window is a valid result, not an error. Selecting the same window twice
// yields the identical result.
func Select(series model.TickerSeries, p Period, anchor time.Time) (model.TickerSeries, error) {
	days, err := Days(p)
	if err != nil {
		return model.TickerSeries{}, err
	}

	from := anchor.AddDate(0, 0, -days)
	lo, hi := 0, len(series.Bars)
	for lo < hi && series.Bars[lo].Date.Before(from) {
		lo++
	}
	for hi > lo && series.Bars[hi-1].Date.After(anchor) {
		hi--
	}
	return model.TickerSeries{Symbol: series.Symbol, Bars: series.Bars[lo:hi]}, nil
}
