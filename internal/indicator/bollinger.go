package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// BollingerBandsOutput is the {upper, middle, lower} band triple.
type BollingerBandsOutput struct {
	Upper  []model.OptionalValue
	Middle []model.OptionalValue
	Lower  []model.OptionalValue
}

// BollingerBands: middle = SMA(C,p); upper/lower = middle +/- k*sigma.
func BollingerBands(candles []model.Candle, period int, k float64) BollingerBandsOutput {
	closes := seriesutil.Closes(candles)
	middle := seriesutil.RollingMean(closes, period)
	stdev := seriesutil.RollingStdev(closes, period)

	upper := make([]model.OptionalValue, len(candles))
	lower := make([]model.OptionalValue, len(candles))
	for i := range candles {
		if middle[i].Absent {
			upper[i] = model.AbsentValue
			lower[i] = model.AbsentValue
			continue
		}
		upper[i] = model.Some(middle[i].Value + k*stdev[i].Value)
		lower[i] = model.Some(middle[i].Value - k*stdev[i].Value)
	}
	return BollingerBandsOutput{Upper: upper, Middle: middle, Lower: lower}
}

// PercentB is (C - lower) / (upper - lower).
func PercentB(candles []model.Candle, period int, k float64) []model.OptionalValue {
	bb := BollingerBands(candles, period, k)
	closes := seriesutil.Closes(candles)
	out := model.AbsentSeries(len(candles))
	for i := range candles {
		if bb.Upper[i].Absent {
			continue
		}
		rng := bb.Upper[i].Value - bb.Lower[i].Value
		if rng == 0 {
			continue
		}
		out[i] = model.Some((closes[i] - bb.Lower[i].Value) / rng)
	}
	return out
}
