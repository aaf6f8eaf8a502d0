package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// SchaffTrendCycle applies a double %K-of-%K smoothing over the MACD
// line: stochastic(MACD, cycle) smoothed by fastK, then stochastic of
// that smoothed as a second stochastic over cycle, smoothed by fastD.
func SchaffTrendCycle(candles []model.Candle, cycle, fastK, fastD, short, long int) []model.OptionalValue {
	closes := seriesutil.Closes(candles)
	macd := combine2(seriesutil.EMA(closes, short), seriesutil.EMA(closes, long),
		func(a, b float64) float64 { return a - b })

	rawK := stochasticOfOptional(macd, cycle)
	smoothedK := seriesutil.ApplyEMAToOptional(rawK, fastK)
	rawKK := stochasticOfOptional(smoothedK, cycle)
	stc := seriesutil.ApplyEMAToOptional(rawKK, fastD)
	return stc
}

// stochasticOfOptional computes 100*(x-min)/(max-min) over a trailing
// window of an already-optional series, skipping absent positions inside
// the window by treating the series as dense from its first present value.
func stochasticOfOptional(values []model.OptionalValue, period int) []model.OptionalValue {
	dense, offset := densify(values)
	if dense == nil {
		return model.AbsentSeries(len(values))
	}
	hi := seriesutil.RollingHigh(dense, period)
	lo := seriesutil.RollingLow(dense, period)
	out := make([]model.OptionalValue, len(dense))
	for i := range dense {
		if hi[i].Absent {
			out[i] = model.AbsentValue
			continue
		}
		rng := hi[i].Value - lo[i].Value
		if rng == 0 {
			out[i] = model.Some(0)
			continue
		}
		out[i] = model.Some(100 * (dense[i] - lo[i].Value) / rng)
	}
	return reinflate(out, offset, len(values))
}

