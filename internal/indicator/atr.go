package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// ATR is the average true range: wilder_smoothing(true_range, period).
func ATR(candles []model.Candle, period int) []model.OptionalValue {
	tr := seriesutil.TrueRange(candles)
	dense, offset := densify(tr)
	if dense == nil {
		return model.AbsentSeries(len(candles))
	}
	return reinflate(seriesutil.WilderSmoothing(dense, period), offset, len(candles))
}
