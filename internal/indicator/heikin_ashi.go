package indicator

import (
	"stoxcore/internal/model"
)

// HeikinAshiSlope is the linear-regression slope of the Heikin-Ashi close
// over a trailing window of period bars. Heikin-Ashi close is
// (O+H+L+C)/4; no open/close recursion is needed for the slope itself.
func HeikinAshiSlope(candles []model.Candle, period int) []model.OptionalValue {
	haClose := make([]float64, len(candles))
	for i, c := range candles {
		haClose[i] = (c.Open + c.High + c.Low + c.Close) / 4
	}

	out := model.AbsentSeries(len(candles))
	n := float64(period)
	var sumX, sumX2 float64
	for i := 0; i < period; i++ {
		sumX += float64(i)
		sumX2 += float64(i) * float64(i)
	}
	denom := n*sumX2 - sumX*sumX

	for i := range candles {
		if i < period-1 {
			continue
		}
		var sumY, sumXY float64
		for j := 0; j < period; j++ {
			y := haClose[i-period+1+j]
			sumY += y
			sumXY += float64(j) * y
		}
		if denom == 0 {
			out[i] = model.Some(0)
			continue
		}
		slope := (n*sumXY - sumX*sumY) / denom
		out[i] = model.Some(slope)
	}
	return out
}
