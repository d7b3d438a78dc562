package feed

import (
	"fmt"
	"strconv"
	"time"

	"StockBoard/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series     map[string]model.RawSeries
	MarketCaps map[string]float64
	FailSymbol string // non-empty: fetches for this symbol fail
	BasePrice  float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(symbol string, start, end time.Time, interval Interval) (model.RawSeries, error) {
	if symbol == m.FailSymbol {
		return model.RawSeries{}, fmt.Errorf("mock failure for %s", symbol)
	}
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	base := m.BasePrice
	if base == 0 {
		base = 100
	}
	return GenerateRawSeries(symbol, base, start, end), nil
}

func (m *MockFetcher) FetchMarketCap(symbol string) (float64, error) {
	if symbol == m.FailSymbol {
		return 0, fmt.Errorf("mock marketcap failure for %s", symbol)
	}
	if mc, ok := m.MarketCaps[symbol]; ok {
		return mc, nil
	}
	return 1e9, nil
}

// GenerateRawSeries produces one deterministic bar per day in [start, end]
// with a slow drift around basePrice.
func GenerateRawSeries(symbol string, basePrice float64, start, end time.Time) model.RawSeries {
	var bars []model.RawBar
	for i, d := 0, start; !d.After(end); i, d = i+1, d.AddDate(0, 0, 1) {
		p := basePrice * (1 + float64(i%10-5)*0.001)
		bars = append(bars, model.RawBar{
			Date:     d.Format("2006-01-02"),
			Open:     ftoa(p * 0.999),
			High:     ftoa(p * 1.005),
			Low:      ftoa(p * 0.995),
			Close:    ftoa(p),
			AdjClose: ftoa(p),
			Volume:   "1000000",
		})
	}
	return model.RawSeries{Symbol: symbol, Bars: bars}
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
