package model

import "time"

// Bar represents a single daily observation. Price and volume columns are
// nullable: a malformed source value coerces to null instead of failing the run.
type Bar struct {
	Date     time.Time `json:"date"`
	Open     NullFloat `json:"open"`
	High     NullFloat `json:"high"`
	Low      NullFloat `json:"low"`
	Close    NullFloat `json:"close"`
	AdjClose NullFloat `json:"adj_close"`
	Volume   NullFloat `json:"volume"`
}

// TickerSeries holds the full fetched history for one ticker, ascending by
// date with no duplicate dates.
type TickerSeries struct {
	Symbol string `json:"symbol"`
	Bars   []Bar  `json:"bars"`
}

// Len returns the number of observations.
func (s TickerSeries) Len() int { return len(s.Bars) }

// Empty reports whether the series has no observations.
func (s TickerSeries) Empty() bool { return len(s.Bars) == 0 }

// Last returns the most recent bar. ok is false for an empty series.
func (s TickerSeries) Last() (Bar, bool) {
	if len(s.Bars) == 0 {
		return Bar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}

// Opens returns the open-price column in date order.
func (s TickerSeries) Opens() []NullFloat {
	opens := make([]NullFloat, len(s.Bars))
	for i, b := range s.Bars {
		opens[i] = b.Open
	}
	return opens
}

// Closes returns the close-price column in date order.
func (s TickerSeries) Closes() []NullFloat {
	closes := make([]NullFloat, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}
