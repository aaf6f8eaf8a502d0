// Package boundary is the thin layer that serializes candles and
// requests to and from JSON and validates them before they reach the
// registry or options packages. Apart from the JSON methods of
// model.OptionalValue, it is the only package in this module that
// imports encoding/json; everything else works on model types directly.
package boundary

import (
	"encoding/json"
	"math"

	"stoxcore/internal/coreerrors"
	"stoxcore/internal/model"
)

// DecodeCandles parses and validates a JSON candle array: non-empty,
// strictly increasing timestamps, and every numeric field finite.
func DecodeCandles(data []byte) ([]model.Candle, error) {
	var candles []model.Candle
	if err := json.Unmarshal(data, &candles); err != nil {
		return nil, coreerrors.Wrap(coreerrors.InputShape, "malformed candle JSON", err)
	}
	if err := ValidateCandles(candles); err != nil {
		return nil, err
	}
	return candles, nil
}

// EncodeCandles serializes a candle series back to its wire form.
func EncodeCandles(candles []model.Candle) ([]byte, error) {
	return json.Marshal(candles)
}

// ValidateCandles enforces the InputShape invariants: non-empty,
// strictly increasing timestamps, and finite OHLCV fields.
func ValidateCandles(candles []model.Candle) error {
	if len(candles) == 0 {
		return coreerrors.NewInputShape("candle series is empty")
	}
	for i, c := range candles {
		if i > 0 && c.Timestamp <= candles[i-1].Timestamp {
			return coreerrors.NewInputShape("candle timestamps must be strictly increasing")
		}
		for _, v := range []float64{c.Open, c.High, c.Low, c.Close, c.AdjClose, c.Volume} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return coreerrors.NewInputShape("candle fields must be finite numbers")
			}
		}
	}
	return nil
}
