// Package model defines the data types shared by every other package in
// this module: the candle/series types indicators consume, the optional
// value used to represent warm-up and undefined positions, and the option
// analytics request/response types.
package model

// Candle is a single time-bucketed OHLCV bar.
type Candle struct {
	Timestamp int64   `json:"timestamp"` // seconds since Unix epoch
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	AdjClose  float64 `json:"adj_close"`
	Volume    float64 `json:"volume"`
}

// EffectiveAdjClose returns AdjClose, falling back to Close when AdjClose
// was left at its zero value (the field is optional on the wire).
func (c Candle) EffectiveAdjClose() float64 {
	if c.AdjClose == 0 {
		return c.Close
	}
	return c.AdjClose
}

// Metadata describes a CandleSeries' provenance. None of these fields
// affect computation; they exist for round-tripping through the boundary.
type Metadata struct {
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`
	Interval string `json:"interval"`
}

// CandleSeries is an ordered, read-only sequence of Candles for one symbol.
// Timestamps are expected to be strictly increasing; the core does not
// enforce uniform spacing.
type CandleSeries struct {
	Symbol   string    `json:"symbol"`
	Candles  []Candle  `json:"candles"`
	Metadata Metadata  `json:"metadata"`
}

// Closes returns the aligned slice of closing prices.
func (s CandleSeries) Closes() []float64 {
	out := make([]float64, len(s.Candles))
	for i, c := range s.Candles {
		out[i] = c.Close
	}
	return out
}
