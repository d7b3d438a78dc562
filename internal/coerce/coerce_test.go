package coerce

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockBoard/internal/model"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		token string
		want  float64
		valid bool
	}{
		{"12.5", 12.5, true},
		{" 12.5 ", 12.5, true},
		{"-0.75", -0.75, true},
		{"1,234,567.5", 1234567.5, true},
		{"0", 0, true},
		{"", 0, false},
		{"null", 0, false},
		{"NaN", 0, false},
		{"n/a", 0, false},
		{"abc", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		got := Float(tt.token)
		assert.Equal(t, tt.valid, got.Valid, "token %q", tt.token)
		if tt.valid {
			assert.Equal(t, tt.want, got.Float64, "token %q", tt.token)
		}
	}
}

func TestTime_DayFirst(t *testing.T) {
	got := Time("10-06-2024")
	require.True(t, got.Valid)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC).Day(), got.Time.Day())
	assert.Equal(t, time.June, got.Time.Month())

	got = Time("10/06/2024")
	require.True(t, got.Valid)
	assert.Equal(t, time.June, got.Time.Month())
}

func TestTime_ISOAndInvalid(t *testing.T) {
	got := Time("2024-06-10")
	require.True(t, got.Valid)
	assert.Equal(t, 10, got.Time.Day())

	assert.False(t, Time("").Valid)
	assert.False(t, Time("not a date").Valid)
}

func TestSeries_CoercesAndOrders(t *testing.T) {
	raw := model.RawSeries{
		Symbol: "AAA",
		Bars: []model.RawBar{
			{Date: "2024-06-11", Open: "11", Close: "11.5", Volume: "200"},
			{Date: "2024-06-10", Open: "10", Close: "junk", Volume: "100"},
			{Date: "garbage", Open: "99", Close: "99"},
		},
	}
	series := Series(raw)

	require.Equal(t, 2, series.Len()) // the unparsable date is dropped
	assert.Equal(t, "AAA", series.Symbol)
	assert.True(t, series.Bars[0].Date.Before(series.Bars[1].Date))

	first := series.Bars[0]
	assert.True(t, first.Open.Valid)
	assert.Equal(t, 10.0, first.Open.Float64)
	assert.False(t, first.Close.Valid) // "junk" coerces to null, not an error
	assert.Equal(t, 100.0, first.Volume.Float64)
}

func TestSeries_DuplicateDatesKeepLast(t *testing.T) {
	raw := model.RawSeries{
		Symbol: "AAA",
		Bars: []model.RawBar{
			{Date: "2024-06-10", Close: "1"},
			{Date: "2024-06-10", Close: "2"},
		},
	}
	series := Series(raw)
	require.Equal(t, 1, series.Len())
	assert.Equal(t, 2.0, series.Bars[0].Close.Float64)
}

func TestNormalize_NonFiniteBecomesNull(t *testing.T) {
	table := model.SummaryTable{{
		Ticker:       "AAA",
		LastPrice:    model.Float(9),
		PrevDayPrice: model.Float(0),
		Change:       model.Float(math.Inf(1)),
		ChangePct:    model.Float(math.NaN()),
		OpenSeries:   []model.NullFloat{model.Float(1), model.Float(math.NaN())},
	}}
	hist := model.HistoryMap{"AAA": {Symbol: "AAA", Bars: []model.Bar{
		{Close: model.Float(math.Inf(-1)), Volume: model.Float(10)},
	}}}

	gotTable, gotHist := Normalize(table, hist)

	row := gotTable[0]
	assert.True(t, row.LastPrice.Valid)
	assert.False(t, row.Change.Valid)
	assert.False(t, row.ChangePct.Valid)
	assert.True(t, row.OpenSeries[0].Valid)
	assert.False(t, row.OpenSeries[1].Valid)
	assert.False(t, gotHist["AAA"].Bars[0].Close.Valid)
	assert.True(t, gotHist["AAA"].Bars[0].Volume.Valid)
}

func TestNormalize_Idempotent(t *testing.T) {
	table := model.SummaryTable{{
		Ticker:     "AAA",
		LastPrice:  model.Float(9),
		ChangePct:  model.Float(math.NaN()),
		OpenSeries: []model.NullFloat{model.Float(1)},
	}}
	hist := model.HistoryMap{"AAA": {Symbol: "AAA", Bars: []model.Bar{
		{Close: model.Float(3)},
	}}}

	onceTable, onceHist := Normalize(table, hist)
	twiceTable, twiceHist := Normalize(onceTable, onceHist)
	assert.Equal(t, onceTable, twiceTable)
	assert.Equal(t, onceHist, twiceHist)
}

func TestNormalize_ReturnsCopies(t *testing.T) {
	table := model.SummaryTable{{
		Ticker:     "AAA",
		LastPrice:  model.Float(9),
		OpenSeries: []model.NullFloat{model.Float(1)},
	}}
	hist := model.HistoryMap{"AAA": {Symbol: "AAA", Bars: []model.Bar{
		{Close: model.Float(3)},
	}}}

	gotTable, gotHist := Normalize(table, hist)

	// Mutating the inputs must not leak into the normalized artifacts.
	table[0].OpenSeries[0] = model.NullFloat{}
	hist["AAA"].Bars[0] = model.Bar{}

	assert.True(t, gotTable[0].OpenSeries[0].Valid)
	assert.True(t, gotHist["AAA"].Bars[0].Close.Valid)
}
