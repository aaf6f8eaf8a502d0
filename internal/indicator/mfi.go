package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// MFI is the money flow index: a volume-weighted RSI computed over
// typical price, with the same zero-denominator sentinel as RSI.
func MFI(candles []model.Candle, period int) []model.OptionalValue {
	tp := seriesutil.TypicalPrice(candles)
	volumes := seriesutil.Volumes(candles)

	posFlow := make([]float64, len(candles))
	negFlow := make([]float64, len(candles))
	for i := 1; i < len(candles); i++ {
		flow := tp[i] * volumes[i]
		if tp[i] > tp[i-1] {
			posFlow[i] = flow
		} else if tp[i] < tp[i-1] {
			negFlow[i] = flow
		}
	}

	posSum := seriesutil.RollingSum(posFlow, period)
	negSum := seriesutil.RollingSum(negFlow, period)

	out := model.AbsentSeries(len(candles))
	for i := range candles {
		if posSum[i].Absent || negSum[i].Absent {
			continue
		}
		p, n := posSum[i].Value, negSum[i].Value
		switch {
		case n == 0:
			out[i] = model.Some(100)
		case p == 0:
			out[i] = model.Some(0)
		default:
			ratio := p / n
			out[i] = model.Some(100 - 100/(1+ratio))
		}
	}
	return out
}
