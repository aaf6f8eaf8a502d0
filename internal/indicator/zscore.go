package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// ZScore is (C - SMA(C,p)) / stdev(C,p).
func ZScore(candles []model.Candle, period int) []model.OptionalValue {
	closes := seriesutil.Closes(candles)
	mean := seriesutil.RollingMean(closes, period)
	stdev := seriesutil.RollingStdev(closes, period)

	out := model.AbsentSeries(len(candles))
	for i := range candles {
		if mean[i].Absent {
			continue
		}
		if stdev[i].Value == 0 {
			continue
		}
		out[i] = model.Some((closes[i] - mean[i].Value) / stdev[i].Value)
	}
	return out
}
