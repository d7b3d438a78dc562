// Package coerce converts the loosely-typed values handed over by data
// sources into the strict types of the model package. The policy throughout
// is coerce-don't-crash: an unparsable token becomes a null field, never an
// error.
package coerce

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"StockBoard/internal/model"
)

// Float parses a numeric token. Empty, "null", "nan" and junk all map to an
// invalid NullFloat; so do tokens that parse to a non-finite value.
func Float(token string) model.NullFloat {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return model.NullFloat{}
	}
	switch strings.ToLower(tok) {
	case "null", "nan", "none", "n/a":
		return model.NullFloat{}
	}
	// Tolerate thousands separators ("1,234,567.0").
	tok = strings.ReplaceAll(tok, ",", "")
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return model.NullFloat{}
	}
	return model.Float(v)
}

// timeLayouts are tried in order. Day-first layouts come before anything
// ambiguous, matching the source's dd-mm-yyyy convention.
var timeLayouts = []string{
	"02-01-2006 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// Time parses a timestamp token with day-first interpretation. Unparsable
// tokens become an invalid NullTime.
func Time(token string) model.NullTime {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return model.NullTime{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, tok); err == nil {
			return model.Timestamp(t)
		}
	}
	// Some sources hand over epoch seconds.
	if secs, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return model.Timestamp(time.Unix(secs, 0).UTC())
	}
	return model.NullTime{}
}

// barSchema enumerates the numeric columns of a bar and how each raw token
// lands in the typed record. The date column is handled separately because a
// bar without a parsable date has no place in a date-indexed series.
var barSchema = []struct {
	pick   func(r model.RawBar) string
	assign func(b *model.Bar, v model.NullFloat)
}{
	{func(r model.RawBar) string { return r.Open }, func(b *model.Bar, v model.NullFloat) { b.Open = v }},
	{func(r model.RawBar) string { return r.High }, func(b *model.Bar, v model.NullFloat) { b.High = v }},
	{func(r model.RawBar) string { return r.Low }, func(b *model.Bar, v model.NullFloat) { b.Low = v }},
	{func(r model.RawBar) string { return r.Close }, func(b *model.Bar, v model.NullFloat) { b.Close = v }},
	{func(r model.RawBar) string { return r.AdjClose }, func(b *model.Bar, v model.NullFloat) { b.AdjClose = v }},
	{func(r model.RawBar) string { return r.Volume }, func(b *model.Bar, v model.NullFloat) { b.Volume = v }},
}

// Series coerces a raw series into a typed one: numeric columns through the
// bar schema, dates day-first. Bars with unparsable dates are dropped, the
// result is sorted ascending and duplicate dates keep the later observation.
func Series(raw model.RawSeries) model.TickerSeries {
	bars := make([]model.Bar, 0, len(raw.Bars))
	for _, rb := range raw.Bars {
		date := Time(rb.Date)
		if !date.Valid {
			continue
		}
		b := model.Bar{Date: date.Time}
		for _, col := range barSchema {
			col.assign(&b, Float(col.pick(rb)))
		}
		bars = append(bars, b)
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })

	// Dedupe on date, keeping the last occurrence.
	deduped := bars[:0]
	for i, b := range bars {
		if i+1 < len(bars) && bars[i+1].Date.Equal(b.Date) {
			continue
		}
		deduped = append(deduped, b)
	}
	return model.TickerSeries{Symbol: raw.Symbol, Bars: deduped}
}

// History coerces a batch of raw series into a HistoryMap.
func History(raws []model.RawSeries) model.HistoryMap {
	hist := make(model.HistoryMap, len(raws))
	for _, raw := range raws {
		hist[raw.Symbol] = Series(raw)
	}
	return hist
}

// Normalize is the final validation pass over the built artifacts: every
// numeric field that holds a non-finite value becomes null. It returns fresh
// copies and is idempotent, so downstream consumers can share the result
// without observing mutation.
func Normalize(table model.SummaryTable, hist model.HistoryMap) (model.SummaryTable, model.HistoryMap) {
	outTable := make(model.SummaryTable, len(table))
	for i, row := range table {
		row.LastPrice = finite(row.LastPrice)
		row.PrevDayPrice = finite(row.PrevDayPrice)
		row.Change = finite(row.Change)
		row.ChangePct = finite(row.ChangePct)
		opens := make([]model.NullFloat, len(row.OpenSeries))
		for j, v := range row.OpenSeries {
			opens[j] = finite(v)
		}
		row.OpenSeries = opens
		outTable[i] = row
	}

	outHist := make(model.HistoryMap, len(hist))
	for sym, series := range hist {
		bars := make([]model.Bar, len(series.Bars))
		for i, b := range series.Bars {
			b.Open = finite(b.Open)
			b.High = finite(b.High)
			b.Low = finite(b.Low)
			b.Close = finite(b.Close)
			b.AdjClose = finite(b.AdjClose)
			b.Volume = finite(b.Volume)
			bars[i] = b
		}
		outHist[sym] = model.TickerSeries{Symbol: series.Symbol, Bars: bars}
	}
	return outTable, outHist
}

func finite(v model.NullFloat) model.NullFloat {
	if !v.Valid || math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
		return model.NullFloat{}
	}
	return v
}
