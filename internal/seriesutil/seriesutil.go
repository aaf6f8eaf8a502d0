// Package seriesutil provides the shared numerical recurrences every
// indicator is built from: typical price, true range, rolling statistics,
// EMA, and Wilder smoothing. Indicators must reuse these rather than
// re-derive seeds or smoothing factors independently, so that every
// indicator in the library agrees on warm-up length and seeding rule.
package seriesutil

import (
	"math"

	"stoxcore/internal/model"
)

// TypicalPrice returns (H+L+C)/3 for each candle.
func TypicalPrice(candles []model.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = (c.High + c.Low + c.Close) / 3
	}
	return out
}

// TrueRange returns the Wilder true range series; the first element is
// always absent since it has no previous close to compare against.
func TrueRange(candles []model.Candle) []model.OptionalValue {
	out := make([]model.OptionalValue, len(candles))
	if len(candles) == 0 {
		return out
	}
	out[0] = model.AbsentValue
	for i := 1; i < len(candles); i++ {
		h, l, prevClose := candles[i].High, candles[i].Low, candles[i-1].Close
		tr := math.Max(h-l, math.Max(math.Abs(h-prevClose), math.Abs(l-prevClose)))
		out[i] = model.Some(tr)
	}
	return out
}

// RollingSum returns the trailing window sum over period; absent for the
// first period-1 elements.
func RollingSum(values []float64, period int) []model.OptionalValue {
	out := make([]model.OptionalValue, len(values))
	if period < 1 {
		return out
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = model.Some(sum)
		} else {
			out[i] = model.AbsentValue
		}
	}
	return out
}

// RollingMean returns the trailing window mean over period.
func RollingMean(values []float64, period int) []model.OptionalValue {
	sums := RollingSum(values, period)
	out := make([]model.OptionalValue, len(values))
	for i, s := range sums {
		if s.Absent {
			out[i] = model.AbsentValue
			continue
		}
		out[i] = model.Some(s.Value / float64(period))
	}
	return out
}

// RollingStdev returns the trailing population standard deviation over period.
func RollingStdev(values []float64, period int) []model.OptionalValue {
	means := RollingMean(values, period)
	out := make([]model.OptionalValue, len(values))
	if period < 1 {
		return out
	}
	for i := range values {
		if means[i].Absent {
			out[i] = model.AbsentValue
			continue
		}
		mean := means[i].Value
		var sq float64
		for j := i - period + 1; j <= i; j++ {
			d := values[j] - mean
			sq += d * d
		}
		out[i] = model.Some(math.Sqrt(sq / float64(period)))
	}
	return out
}

// EMA computes the exponential moving average with smoothing factor
// alpha = 2/(period+1), seeded by the period-element SMA emitted at
// index period-1. Values before the seed are absent.
func EMA(values []float64, period int) []model.OptionalValue {
	return emaWithAlpha(values, period, 2.0/float64(period+1))
}

// WilderSmoothing computes the Wilder-smoothed moving average, alpha =
// 1/period, with the same SMA seeding rule as EMA. ADX and RSI depend on
// this seed exactly; do not substitute EMA for it.
func WilderSmoothing(values []float64, period int) []model.OptionalValue {
	return emaWithAlpha(values, period, 1.0/float64(period))
}

func emaWithAlpha(values []float64, period int, alpha float64) []model.OptionalValue {
	out := make([]model.OptionalValue, len(values))
	if period < 1 || len(values) < period {
		for i := range out {
			out[i] = model.AbsentValue
		}
		return out
	}
	means := RollingMean(values, period)
	seedIdx := period - 1
	for i := 0; i < seedIdx; i++ {
		out[i] = model.AbsentValue
	}
	out[seedIdx] = model.Some(means[seedIdx].Value)
	for i := seedIdx + 1; i < len(values); i++ {
		prev := out[i-1].Value
		out[i] = model.Some(alpha*values[i] + (1-alpha)*prev)
	}
	return out
}

// CumulativeSum returns the running total of values.
func CumulativeSum(values []float64) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		out[i] = sum
	}
	return out
}

// Closes extracts closing prices from a candle slice.
func Closes(candles []model.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}

// Highs extracts high prices from a candle slice.
func Highs(candles []model.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.High
	}
	return out
}

// Lows extracts low prices from a candle slice.
func Lows(candles []model.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Low
	}
	return out
}

// Volumes extracts volume from a candle slice.
func Volumes(candles []model.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Volume
	}
	return out
}

// RollingHigh returns the trailing window maximum over period.
func RollingHigh(values []float64, period int) []model.OptionalValue {
	return rollingExtreme(values, period, true)
}

// RollingLow returns the trailing window minimum over period.
func RollingLow(values []float64, period int) []model.OptionalValue {
	return rollingExtreme(values, period, false)
}

func rollingExtreme(values []float64, period int, max bool) []model.OptionalValue {
	out := make([]model.OptionalValue, len(values))
	if period < 1 {
		return out
	}
	for i := range values {
		if i < period-1 {
			out[i] = model.AbsentValue
			continue
		}
		ext := values[i-period+1]
		for j := i - period + 2; j <= i; j++ {
			if max && values[j] > ext {
				ext = values[j]
			}
			if !max && values[j] < ext {
				ext = values[j]
			}
		}
		out[i] = model.Some(ext)
	}
	return out
}

// OptionalFromFloats wraps a plain float slice (no absent positions) as
// OptionalValue, for indicators whose recurrence is defined everywhere.
func OptionalFromFloats(values []float64) []model.OptionalValue {
	out := make([]model.OptionalValue, len(values))
	for i, v := range values {
		out[i] = model.Some(v)
	}
	return out
}

// ApplyEMAToOptional runs EMA over an already-optional series, treating the
// absent prefix as not-yet-started: the EMA is seeded from the period values
// starting at the first present index. Absent positions after that index are
// not skipped; their stored Value is used as-is. Used to chain
// EMA-of-EMA (DEMA/TEMA/TRIX) without hand-rolling the seed search twice.
func ApplyEMAToOptional(values []model.OptionalValue, period int) []model.OptionalValue {
	out := make([]model.OptionalValue, len(values))
	firstPresent := -1
	for i, v := range values {
		if v.IsPresent() {
			firstPresent = i
			break
		}
	}
	if firstPresent == -1 {
		for i := range out {
			out[i] = model.AbsentValue
		}
		return out
	}
	dense := make([]float64, 0, len(values)-firstPresent)
	for i := firstPresent; i < len(values); i++ {
		dense = append(dense, values[i].Value)
	}
	denseEMA := EMA(dense, period)
	for i := range out {
		out[i] = model.AbsentValue
	}
	for i, v := range denseEMA {
		out[firstPresent+i] = v
	}
	return out
}
