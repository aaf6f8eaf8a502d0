package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// VWAP is cumulative(typical_price*volume)/cumulative(volume) over the
// whole series (no session reset; see design notes).
func VWAP(candles []model.Candle) []model.OptionalValue {
	tp := seriesutil.TypicalPrice(candles)
	volumes := seriesutil.Volumes(candles)

	pv := make([]float64, len(candles))
	for i := range candles {
		pv[i] = tp[i] * volumes[i]
	}
	cumPV := seriesutil.CumulativeSum(pv)
	cumV := seriesutil.CumulativeSum(volumes)

	out := make([]model.OptionalValue, len(candles))
	for i := range candles {
		if cumV[i] == 0 {
			out[i] = model.AbsentValue
			continue
		}
		out[i] = model.Some(cumPV[i] / cumV[i])
	}
	return out
}
