package feed

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestFetcher_FetchHistory(t *testing.T) {
	var gotAuth, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		// The upstream mixes numbers and quoted numbers; both must survive
		// as raw tokens.
		w.Write([]byte(`[
			{"date": "10-06-2024", "open": 10.5, "high": "11", "low": 10, "close": 10.8, "adj_close": 10.8, "volume": 1000},
			{"date": "11-06-2024", "open": null, "high": 11.2, "low": 10.4, "close": "11.1", "volume": "1200"}
		]`))
	}))
	defer server.Close()

	f := NewRestFetcher(server.URL, "secret", "")
	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	raw, err := f.FetchHistory("AAA", start, end, IntervalDaily)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Contains(t, gotQuery, "symbol=AAA")
	assert.Contains(t, gotQuery, "from=2024-06-10")
	assert.Contains(t, gotQuery, "interval=1d")

	require.Len(t, raw.Bars, 2)
	assert.Equal(t, "10-06-2024", raw.Bars[0].Date)
	assert.Equal(t, "10.5", raw.Bars[0].Open)
	assert.Equal(t, "11", raw.Bars[0].High)
	assert.Equal(t, "", raw.Bars[1].Open) // JSON null becomes the empty token
	assert.Equal(t, "11.1", raw.Bars[1].Close)
	assert.Equal(t, "1200", raw.Bars[1].Volume)
}

func TestRestFetcher_FetchMarketCap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"market_cap": 123456789.0}`))
	}))
	defer server.Close()

	f := NewRestFetcher(server.URL, "", "")
	mc, err := f.FetchMarketCap("AAA")
	require.NoError(t, err)
	assert.Equal(t, 123456789.0, mc)
}

func TestRestFetcher_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such symbol", http.StatusNotFound)
	}))
	defer server.Close()

	f := NewRestFetcher(server.URL, "", "")
	_, err := f.FetchHistory("ZZZ", time.Now().AddDate(0, 0, -1), time.Now(), IntervalDaily)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestMockFetcher_GeneratesRange(t *testing.T) {
	m := &MockFetcher{BasePrice: 100}
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	raw, err := m.FetchHistory("AAA", start, end, IntervalDaily)
	require.NoError(t, err)
	assert.Len(t, raw.Bars, 10)
	assert.Equal(t, "2024-06-01", raw.Bars[0].Date)
	assert.Equal(t, "2024-06-10", raw.Bars[9].Date)
}

func TestParseInterval(t *testing.T) {
	got, err := ParseInterval("")
	require.NoError(t, err)
	assert.Equal(t, IntervalDaily, got)

	_, err = ParseInterval("5m")
	assert.Error(t, err)
}
