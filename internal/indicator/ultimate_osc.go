package indicator

import (
	"math"

	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// UltimateOscillator is 100*(4*A_s+2*A_m+A_l)/7, A_n = sum(BP)/sum(TR) over n,
// BP = C - min(L, C_prev), TR = max(H, C_prev) - min(L, C_prev).
func UltimateOscillator(candles []model.Candle, short, medium, long int) []model.OptionalValue {
	n := len(candles)
	bp := make([]float64, n)
	tr := make([]float64, n)
	for i := 1; i < n; i++ {
		prevClose := candles[i-1].Close
		h, l, c := candles[i].High, candles[i].Low, candles[i].Close
		minLC := math.Min(l, prevClose)
		bp[i] = c - minLC
		tr[i] = math.Max(h, prevClose) - minLC
	}

	bpSumS := seriesutil.RollingSum(bp, short)
	trSumS := seriesutil.RollingSum(tr, short)
	bpSumM := seriesutil.RollingSum(bp, medium)
	trSumM := seriesutil.RollingSum(tr, medium)
	bpSumL := seriesutil.RollingSum(bp, long)
	trSumL := seriesutil.RollingSum(tr, long)

	out := model.AbsentSeries(n)
	for i := 0; i < n; i++ {
		if bpSumS[i].Absent || bpSumM[i].Absent || bpSumL[i].Absent {
			continue
		}
		if trSumS[i].Value == 0 || trSumM[i].Value == 0 || trSumL[i].Value == 0 {
			continue
		}
		as := bpSumS[i].Value / trSumS[i].Value
		am := bpSumM[i].Value / trSumM[i].Value
		al := bpSumL[i].Value / trSumL[i].Value
		out[i] = model.Some(100 * (4*as + 2*am + al) / 7)
	}
	return out
}
