package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// StochasticOutput is the two-series output of the stochastic oscillator.
type StochasticOutput struct {
	K []model.OptionalValue
	D []model.OptionalValue
}

// Stochastic computes %K = 100*(C-Lk)/(Hk-Lk) and %D = SMA(%K, d).
func Stochastic(candles []model.Candle, k, d int) StochasticOutput {
	closes := seriesutil.Closes(candles)
	highs := seriesutil.RollingHigh(seriesutil.Highs(candles), k)
	lows := seriesutil.RollingLow(seriesutil.Lows(candles), k)

	pctK := make([]model.OptionalValue, len(candles))
	for i := range candles {
		if highs[i].Absent || lows[i].Absent {
			pctK[i] = model.AbsentValue
			continue
		}
		rng := highs[i].Value - lows[i].Value
		if rng == 0 {
			pctK[i] = model.Some(0)
			continue
		}
		pctK[i] = model.Some(100 * (closes[i] - lows[i].Value) / rng)
	}

	dense, offset := densify(pctK)
	var pctD []model.OptionalValue
	if dense == nil {
		pctD = model.AbsentSeries(len(candles))
	} else {
		pctD = reinflate(seriesutil.RollingMean(dense, d), offset, len(candles))
	}

	return StochasticOutput{K: pctK, D: pctD}
}
