package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// WilliamsR is %R = -100*(Hp-C)/(Hp-Lp). Returns 0 (the documented
// sentinel) when the window's range is zero.
func WilliamsR(candles []model.Candle, period int) []model.OptionalValue {
	closes := seriesutil.Closes(candles)
	highs := seriesutil.RollingHigh(seriesutil.Highs(candles), period)
	lows := seriesutil.RollingLow(seriesutil.Lows(candles), period)

	out := model.AbsentSeries(len(candles))
	for i := range candles {
		if highs[i].Absent || lows[i].Absent {
			continue
		}
		rng := highs[i].Value - lows[i].Value
		if rng == 0 {
			out[i] = model.Some(0)
			continue
		}
		out[i] = model.Some(-100 * (highs[i].Value - closes[i]) / rng)
	}
	return out
}
