package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// ChandelierExitOutput is the {long, short} stop-level pair.
type ChandelierExitOutput struct {
	Long  []model.OptionalValue
	Short []model.OptionalValue
}

// ChandelierExit: long = Hp - m*ATR; short = Lp + m*ATR.
func ChandelierExit(candles []model.Candle, period int, multiplier float64) ChandelierExitOutput {
	highs := seriesutil.RollingHigh(seriesutil.Highs(candles), period)
	lows := seriesutil.RollingLow(seriesutil.Lows(candles), period)
	atr := ATR(candles, period)

	long := make([]model.OptionalValue, len(candles))
	short := make([]model.OptionalValue, len(candles))
	for i := range candles {
		if highs[i].Absent || lows[i].Absent || atr[i].Absent {
			long[i] = model.AbsentValue
			short[i] = model.AbsentValue
			continue
		}
		long[i] = model.Some(highs[i].Value - multiplier*atr[i].Value)
		short[i] = model.Some(lows[i].Value + multiplier*atr[i].Value)
	}
	return ChandelierExitOutput{Long: long, Short: short}
}
