package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// OBV is the on-balance volume: a running sum of signed volume, sign
// taken from the close-to-close change.
func OBV(candles []model.Candle) []model.OptionalValue {
	out := make([]model.OptionalValue, len(candles))
	if len(candles) == 0 {
		return out
	}
	var obv float64
	out[0] = model.Some(0)
	for i := 1; i < len(candles); i++ {
		switch {
		case candles[i].Close > candles[i-1].Close:
			obv += candles[i].Volume
		case candles[i].Close < candles[i-1].Close:
			obv -= candles[i].Volume
		}
		out[i] = model.Some(obv)
	}
	return out
}

// moneyFlowVolume returns MF_mult*V per candle, MF_mult = ((C-L)-(H-C))/(H-L),
// 0 when H==L.
func moneyFlowVolume(candles []model.Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		rng := c.High - c.Low
		if rng == 0 {
			continue
		}
		mult := ((c.Close - c.Low) - (c.High - c.Close)) / rng
		out[i] = mult * c.Volume
	}
	return out
}

// CMF is the Chaikin money flow: sum(MF_vol, p) / sum(V, p).
func CMF(candles []model.Candle, period int) []model.OptionalValue {
	mfv := moneyFlowVolume(candles)
	volumes := seriesutil.Volumes(candles)
	mfvSum := seriesutil.RollingSum(mfv, period)
	vSum := seriesutil.RollingSum(volumes, period)

	out := model.AbsentSeries(len(candles))
	for i := range candles {
		if mfvSum[i].Absent {
			continue
		}
		if vSum[i].Value == 0 {
			out[i] = model.Some(0)
			continue
		}
		out[i] = model.Some(mfvSum[i].Value / vSum[i].Value)
	}
	return out
}

// ForceIndex is EMA(deltaClose*Volume, period).
func ForceIndex(candles []model.Candle, period int) []model.OptionalValue {
	raw := make([]float64, len(candles))
	for i := 1; i < len(candles); i++ {
		raw[i] = (candles[i].Close - candles[i-1].Close) * candles[i].Volume
	}
	dense, offset := densify(seriesutil.OptionalFromFloats(raw)[1:])
	if dense == nil {
		return model.AbsentSeries(len(candles))
	}
	ema := seriesutil.EMA(dense, period)
	return reinflate(ema, offset+1, len(candles))
}

// EaseOfMovement is SMA of ((H+L)/2 - prev_midpoint)*(H-L)/V over period.
func EaseOfMovement(candles []model.Candle, period int) []model.OptionalValue {
	raw := make([]float64, len(candles))
	present := make([]bool, len(candles))
	for i := 1; i < len(candles); i++ {
		midpoint := (candles[i].High + candles[i].Low) / 2
		prevMidpoint := (candles[i-1].High + candles[i-1].Low) / 2
		if candles[i].Volume == 0 {
			continue
		}
		raw[i] = (midpoint - prevMidpoint) * (candles[i].High - candles[i].Low) / candles[i].Volume
		present[i] = true
	}
	dense, offset := densify(toOptionalSkippingFalse(raw, present))
	if dense == nil {
		return model.AbsentSeries(len(candles))
	}
	return reinflate(seriesutil.RollingMean(dense, period), offset, len(candles))
}

func toOptionalSkippingFalse(values []float64, present []bool) []model.OptionalValue {
	out := make([]model.OptionalValue, len(values))
	for i, v := range values {
		if present[i] {
			out[i] = model.Some(v)
		} else {
			out[i] = model.AbsentValue
		}
	}
	return out
}

// AccumDistLine is the cumulative money flow volume.
func AccumDistLine(candles []model.Candle) []model.OptionalValue {
	mfv := moneyFlowVolume(candles)
	cum := seriesutil.CumulativeSum(mfv)
	return seriesutil.OptionalFromFloats(cum)
}

// PriceVolumeTrend is the cumulative V*(C-C_prev)/C_prev.
func PriceVolumeTrend(candles []model.Candle) []model.OptionalValue {
	out := model.AbsentSeries(len(candles))
	if len(candles) == 0 {
		return out
	}
	var cum float64
	out[0] = model.AbsentValue
	for i := 1; i < len(candles); i++ {
		prevClose := candles[i-1].Close
		if prevClose != 0 {
			cum += candles[i].Volume * (candles[i].Close - prevClose) / prevClose
		}
		out[i] = model.Some(cum)
	}
	return out
}

// VolumeOscillator is 100*(EMA(V,s)-EMA(V,l))/EMA(V,l).
func VolumeOscillator(candles []model.Candle, short, long int) []model.OptionalValue {
	volumes := seriesutil.Volumes(candles)
	emaShort := seriesutil.EMA(volumes, short)
	emaLong := seriesutil.EMA(volumes, long)
	out := model.AbsentSeries(len(candles))
	for i := range candles {
		if emaShort[i].Absent || emaLong[i].Absent || emaLong[i].Value == 0 {
			continue
		}
		out[i] = model.Some(100 * (emaShort[i].Value - emaLong[i].Value) / emaLong[i].Value)
	}
	return out
}
