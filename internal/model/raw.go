package model

// RawBar is one observation exactly as the data source delivered it, every
// field still a string token. Empty tokens and junk are allowed here; the
// coerce package turns them into typed (possibly null) values.
type RawBar struct {
	Date     string
	Open     string
	High     string
	Low      string
	Close    string
	AdjClose string
	Volume   string
}

// RawSeries is the untyped form of a ticker's history, in source order.
type RawSeries struct {
	Symbol string
	Bars   []RawBar
}
