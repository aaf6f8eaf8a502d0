// Package indicator implements the ~40 technical indicators of the
// compute core. Every exported function is pure: it takes a candle slice
// and parameters, and returns a value or tuple of values aligned 1:1 with
// the input. None of them hold state across calls.
package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// SMA is the simple moving average: rolling_mean(close, period).
func SMA(candles []model.Candle, period int) []model.OptionalValue {
	return seriesutil.RollingMean(seriesutil.Closes(candles), period)
}

// EMA is the exponential moving average with alpha = 2/(period+1),
// seeded by the period-element SMA.
func EMA(candles []model.Candle, period int) []model.OptionalValue {
	return seriesutil.EMA(seriesutil.Closes(candles), period)
}

// WMA is the linearly weighted moving average:
// sum(i*C[t-p+i]) / sum(i), i=1..p.
func WMA(candles []model.Candle, period int) []model.OptionalValue {
	closes := seriesutil.Closes(candles)
	return weightedMA(closes, period)
}

func weightedMA(values []float64, period int) []model.OptionalValue {
	out := make([]model.OptionalValue, len(values))
	if period < 1 {
		return out
	}
	denom := float64(period*(period+1)) / 2
	for i := range values {
		if i < period-1 {
			out[i] = model.AbsentValue
			continue
		}
		var num float64
		for w := 1; w <= period; w++ {
			num += float64(w) * values[i-period+w]
		}
		out[i] = model.Some(num / denom)
	}
	return out
}
