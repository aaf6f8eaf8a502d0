package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// RSI is the relative strength index, Wilder-smoothed:
// 100 - 100/(1+RS), RS = wilder(gain)/wilder(loss).
// The output is the sentinel 100 when avg loss = 0 (including the
// flat-series case) and 0 when avg gain = 0 with a nonzero avg loss.
func RSI(candles []model.Candle, period int) []model.OptionalValue {
	closes := seriesutil.Closes(candles)
	out := model.AbsentSeries(len(closes))
	if len(closes) < period+1 {
		return out
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	avgGain := seriesutil.WilderSmoothing(gains[1:], period)
	avgLoss := seriesutil.WilderSmoothing(losses[1:], period)
	// avgGain/avgLoss are computed over closes[1:], so index i there maps
	// to candle index i+1.
	for i := range avgGain {
		if avgGain[i].Absent {
			continue
		}
		candleIdx := i + 1
		g, l := avgGain[i].Value, avgLoss[i].Value
		switch {
		case l == 0 && g == 0:
			out[candleIdx] = model.Some(100)
		case l == 0:
			out[candleIdx] = model.Some(100)
		case g == 0:
			out[candleIdx] = model.Some(0)
		default:
			rs := g / l
			out[candleIdx] = model.Some(100 - 100/(1+rs))
		}
	}
	return out
}
