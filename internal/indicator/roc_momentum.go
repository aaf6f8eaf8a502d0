package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// RateOfChange is 100*(C_t-C_{t-p})/C_{t-p}.
func RateOfChange(candles []model.Candle, period int) []model.OptionalValue {
	closes := seriesutil.Closes(candles)
	out := model.AbsentSeries(len(candles))
	for i := period; i < len(closes); i++ {
		prev := closes[i-period]
		if prev == 0 {
			continue
		}
		out[i] = model.Some(100 * (closes[i] - prev) / prev)
	}
	return out
}

// Momentum is C_t - C_{t-p}.
func Momentum(candles []model.Candle, period int) []model.OptionalValue {
	closes := seriesutil.Closes(candles)
	out := model.AbsentSeries(len(closes))
	for i := period; i < len(closes); i++ {
		out[i] = model.Some(closes[i] - closes[i-period])
	}
	return out
}
