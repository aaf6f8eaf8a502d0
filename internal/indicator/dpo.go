package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// DetrendedPriceOscillator is C[t-(p/2+1)] - SMA(C,p).
func DetrendedPriceOscillator(candles []model.Candle, period int) []model.OptionalValue {
	closes := seriesutil.Closes(candles)
	sma := seriesutil.RollingMean(closes, period)
	shift := period/2 + 1

	out := model.AbsentSeries(len(candles))
	for i := range candles {
		if sma[i].Absent {
			continue
		}
		shiftedIdx := i - shift
		if shiftedIdx < 0 {
			continue
		}
		out[i] = model.Some(closes[shiftedIdx] - sma[i].Value)
	}
	return out
}
