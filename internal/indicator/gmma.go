package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// GMMAOutput is the two Guppy multiple moving average bundles, each keyed
// by the period that produced it.
type GMMAOutput struct {
	Short map[int][]model.OptionalValue
	Long  map[int][]model.OptionalValue
}

// GMMA computes EMA(C, p) for each period in the short bundle and each
// period in the long bundle.
func GMMA(candles []model.Candle, shortPeriods, longPeriods []int) GMMAOutput {
	closes := seriesutil.Closes(candles)
	short := make(map[int][]model.OptionalValue, len(shortPeriods))
	long := make(map[int][]model.OptionalValue, len(longPeriods))
	for _, p := range shortPeriods {
		short[p] = seriesutil.EMA(closes, p)
	}
	for _, p := range longPeriods {
		long[p] = seriesutil.EMA(closes, p)
	}
	return GMMAOutput{Short: short, Long: long}
}
