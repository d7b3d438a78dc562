package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"StockBoard/internal/model"
)

// RestFetcher implements Fetcher against a self-hosted market-data REST API.
type RestFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRestFetcher creates a new fetcher with optional proxy support.
func NewRestFetcher(baseURL, apiKey, proxyURL string) *RestFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RestFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RestFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape of one observation. Fields are decoded
// untyped because the API mixes numbers and quoted numbers depending on the
// upstream it proxies.
type restBar struct {
	Date     interface{} `json:"date"`
	Open     interface{} `json:"open"`
	High     interface{} `json:"high"`
	Low      interface{} `json:"low"`
	Close    interface{} `json:"close"`
	AdjClose interface{} `json:"adj_close"`
	Volume   interface{} `json:"volume"`
}

// FetchHistory retrieves [start, end] observations from the history endpoint.
func (f *RestFetcher) FetchHistory(symbol string, start, end time.Time, interval Interval) (model.RawSeries, error) {
	endpoint := fmt.Sprintf("%s/api/v1/history?symbol=%s&from=%s&to=%s&interval=%s",
		f.BaseURL, url.QueryEscape(symbol),
		start.Format("2006-01-02"), end.Format("2006-01-02"), interval)

	body, err := f.get(endpoint)
	if err != nil {
		return model.RawSeries{}, err
	}

	var restBars []restBar
	if err := json.Unmarshal(body, &restBars); err != nil {
		return model.RawSeries{}, fmt.Errorf("decode history: %w", err)
	}

	bars := make([]model.RawBar, len(restBars))
	for i, rb := range restBars {
		bars[i] = model.RawBar{
			Date:     token(rb.Date),
			Open:     token(rb.Open),
			High:     token(rb.High),
			Low:      token(rb.Low),
			Close:    token(rb.Close),
			AdjClose: token(rb.AdjClose),
			Volume:   token(rb.Volume),
		}
	}
	return model.RawSeries{Symbol: symbol, Bars: bars}, nil
}

// FetchMarketCap retrieves the current market capitalization for the symbol.
func (f *RestFetcher) FetchMarketCap(symbol string) (float64, error) {
	endpoint := fmt.Sprintf("%s/api/v1/marketcap?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	body, err := f.get(endpoint)
	if err != nil {
		return 0, err
	}
	var result struct {
		MarketCap float64 `json:"market_cap"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("decode marketcap: %w", err)
	}
	return result.MarketCap, nil
}

func (f *RestFetcher) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
