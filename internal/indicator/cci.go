package indicator

import (
	"math"

	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// CCI is the commodity channel index:
// (TP - SMA(TP,p)) / (0.015 * mean(|TP-SMA(TP,p)|)).
func CCI(candles []model.Candle, period int) []model.OptionalValue {
	tp := seriesutil.TypicalPrice(candles)
	sma := seriesutil.RollingMean(tp, period)
	out := model.AbsentSeries(len(candles))
	for t := range candles {
		if sma[t].Absent {
			continue
		}
		var meanDev float64
		for i := t - period + 1; i <= t; i++ {
			meanDev += math.Abs(tp[i] - sma[t].Value)
		}
		meanDev /= float64(period)
		if meanDev == 0 {
			out[t] = model.Some(0)
			continue
		}
		out[t] = model.Some((tp[t] - sma[t].Value) / (0.015 * meanDev))
	}
	return out
}
