package indicator

import (
	"math"

	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// TRIX is 100 times the one-step difference of a triple-smoothed EMA of
// log(close): 100*delta(EMA(EMA(EMA(ln C, p), p), p)).
func TRIX(candles []model.Candle, period int) []model.OptionalValue {
	closes := seriesutil.Closes(candles)
	lnClose := make([]float64, len(closes))
	for i, c := range closes {
		if c <= 0 {
			lnClose[i] = 0
			continue
		}
		lnClose[i] = math.Log(c)
	}

	e1 := seriesutil.EMA(lnClose, period)
	e2 := seriesutil.ApplyEMAToOptional(e1, period)
	e3 := seriesutil.ApplyEMAToOptional(e2, period)

	out := model.AbsentSeries(len(candles))
	for i := 1; i < len(candles); i++ {
		if e3[i].Absent || e3[i-1].Absent {
			continue
		}
		out[i] = model.Some(100 * (e3[i].Value - e3[i-1].Value))
	}
	return out
}
