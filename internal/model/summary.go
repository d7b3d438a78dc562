package model

// SummaryRow is the derived per-ticker line of the watchlist.
// OpenSeries carries the open-price column of the fetched range and exists
// only so presentation code can draw a sparkline next to the row.
type SummaryRow struct {
	Ticker        string      `json:"ticker"`
	LastTradeTime NullTime    `json:"last_trade_time"`
	LastPrice     NullFloat   `json:"last_price"`
	PrevDayPrice  NullFloat   `json:"previous_day_price"`
	Change        NullFloat   `json:"change"`
	ChangePct     NullFloat   `json:"change_pct"`
	MarketCap     float64     `json:"market_cap"`
	OpenSeries    []NullFloat `json:"open_series"`
}

// SummaryTable holds one row per ticker, in input-ticker order.
type SummaryTable []SummaryRow

// HistoryMap maps ticker symbol to its fetched series. It always carries
// exactly the same ticker set as the SummaryTable built alongside it.
type HistoryMap map[string]TickerSeries
