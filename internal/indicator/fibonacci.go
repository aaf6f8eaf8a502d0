package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// FibonacciLevels are the standard retracement percentages.
var FibonacciLevels = []float64{0, 23.6, 38.2, 50, 61.8, 78.6, 100}

// FibonacciRetracementOutput maps each level percentage to its aligned
// series: level = high - pct/100*(high-low), over the rolling window.
type FibonacciRetracementOutput struct {
	Levels map[float64][]model.OptionalValue
}

// FibonacciRetracement computes the seven standard retracement levels
// between the rolling high and low over period.
func FibonacciRetracement(candles []model.Candle, period int) FibonacciRetracementOutput {
	hi := seriesutil.RollingHigh(seriesutil.Highs(candles), period)
	lo := seriesutil.RollingLow(seriesutil.Lows(candles), period)

	levels := make(map[float64][]model.OptionalValue, len(FibonacciLevels))
	for _, pct := range FibonacciLevels {
		series := make([]model.OptionalValue, len(candles))
		for i := range candles {
			if hi[i].Absent {
				series[i] = model.AbsentValue
				continue
			}
			rng := hi[i].Value - lo[i].Value
			series[i] = model.Some(hi[i].Value - (pct/100)*rng)
		}
		levels[pct] = series
	}
	return FibonacciRetracementOutput{Levels: levels}
}
