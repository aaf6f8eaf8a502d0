package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// MACDOutput is the {macd, signal, histogram} triple.
type MACDOutput struct {
	MACD      []model.OptionalValue
	Signal    []model.OptionalValue
	Histogram []model.OptionalValue
}

// MACD: macd = EMA_fast - EMA_slow; signal = EMA(macd, signalPeriod);
// histogram = macd - signal.
func MACD(candles []model.Candle, fast, slow, signal int) MACDOutput {
	closes := seriesutil.Closes(candles)
	emaFast := seriesutil.EMA(closes, fast)
	emaSlow := seriesutil.EMA(closes, slow)

	macdLine := combine2(emaFast, emaSlow, func(a, b float64) float64 { return a - b })
	signalLine := seriesutil.ApplyEMAToOptional(macdLine, signal)
	histogram := combine2(macdLine, signalLine, func(a, b float64) float64 { return a - b })

	return MACDOutput{MACD: macdLine, Signal: signalLine, Histogram: histogram}
}
