package indicator

import (
	"math"

	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// ADX is the Wilder-smoothed average directional index, derived from
// the Wilder-smoothed +DI/-DI directional indicators.
func ADX(candles []model.Candle, period int) []model.OptionalValue {
	n := len(candles)
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	tr := make([]float64, n)

	for i := 1; i < n; i++ {
		upMove := candles[i].High - candles[i-1].High
		downMove := candles[i-1].Low - candles[i].Low
		if upMove > downMove && upMove > 0 {
			plusDM[i] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i] = downMove
		}
		h, l, prevClose := candles[i].High, candles[i].Low, candles[i-1].Close
		tr[i] = math.Max(h-l, math.Max(math.Abs(h-prevClose), math.Abs(l-prevClose)))
	}

	smPlusDM := seriesutil.WilderSmoothing(plusDM[1:], period)
	smMinusDM := seriesutil.WilderSmoothing(minusDM[1:], period)
	smTR := seriesutil.WilderSmoothing(tr[1:], period)

	dx := make([]float64, len(smPlusDM))
	dxPresent := make([]bool, len(smPlusDM))
	for i := range smPlusDM {
		if smPlusDM[i].Absent || smTR[i].Value == 0 {
			continue
		}
		plusDI := 100 * smPlusDM[i].Value / smTR[i].Value
		minusDI := 100 * smMinusDM[i].Value / smTR[i].Value
		sum := plusDI + minusDI
		if sum == 0 {
			dx[i] = 0
		} else {
			dx[i] = 100 * math.Abs(plusDI-minusDI) / sum
		}
		dxPresent[i] = true
	}

	firstDX := -1
	for i, ok := range dxPresent {
		if ok {
			firstDX = i
			break
		}
	}
	out := model.AbsentSeries(n)
	if firstDX == -1 {
		return out
	}
	adx := seriesutil.WilderSmoothing(dx[firstDX:], period)
	// dx[] aligns to closes[1:] (offset +1 from candle index); firstDX adds
	// a further offset.
	for i, v := range adx {
		if v.Absent {
			continue
		}
		candleIdx := 1 + firstDX + i
		if candleIdx < n {
			out[candleIdx] = v
		}
	}
	return out
}
