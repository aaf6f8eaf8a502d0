package indicator

import (
	"math"

	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// DEMA is the double exponential moving average: 2*EMA(C,p) - EMA(EMA(C,p),p).
func DEMA(candles []model.Candle, period int) []model.OptionalValue {
	e1 := seriesutil.EMA(seriesutil.Closes(candles), period)
	e2 := seriesutil.ApplyEMAToOptional(e1, period)
	return combine2(e1, e2, func(a, b float64) float64 { return 2*a - b })
}

// TEMA is the triple exponential moving average: 3*EMA - 3*EMA(EMA) + EMA(EMA(EMA)).
func TEMA(candles []model.Candle, period int) []model.OptionalValue {
	e1 := seriesutil.EMA(seriesutil.Closes(candles), period)
	e2 := seriesutil.ApplyEMAToOptional(e1, period)
	e3 := seriesutil.ApplyEMAToOptional(e2, period)
	return combine3(e1, e2, e3, func(a, b, c float64) float64 { return 3*a - 3*b + c })
}

// HMA is the Hull moving average: WMA(2*WMA(C,p/2) - WMA(C,p), sqrt(p)).
func HMA(candles []model.Candle, period int) []model.OptionalValue {
	closes := seriesutil.Closes(candles)
	half := period / 2
	sqrtP := int(math.Round(math.Sqrt(float64(period))))
	wmaHalf := weightedMA(closes, half)
	wmaFull := weightedMA(closes, period)
	raw := combine2(wmaHalf, wmaFull, func(a, b float64) float64 { return 2*a - b })
	dense, offset := densify(raw)
	if dense == nil {
		return model.AbsentSeries(len(candles))
	}
	hma := weightedMA(dense, sqrtP)
	return reinflate(hma, offset, len(candles))
}

// KAMA is Kaufman's adaptive moving average: efficiency-ratio-weighted
// between a fast and slow smoothing constant.
func KAMA(candles []model.Candle, period, fast, slow int) []model.OptionalValue {
	closes := seriesutil.Closes(candles)
	out := model.AbsentSeries(len(closes))
	if len(closes) <= period {
		return out
	}
	fastSC := 2.0 / float64(fast+1)
	slowSC := 2.0 / float64(slow+1)

	seedIdx := period
	var seedSum float64
	for i := 0; i <= seedIdx; i++ {
		seedSum += closes[i]
	}
	kama := seedSum / float64(seedIdx+1)
	out[seedIdx] = model.Some(kama)

	for t := seedIdx + 1; t < len(closes); t++ {
		change := math.Abs(closes[t] - closes[t-period])
		var volatility float64
		for i := t - period + 1; i <= t; i++ {
			volatility += math.Abs(closes[i] - closes[i-1])
		}
		var er float64
		if volatility != 0 {
			er = change / volatility
		}
		sc := math.Pow(er*(fastSC-slowSC)+slowSC, 2)
		kama = kama + sc*(closes[t]-kama)
		out[t] = model.Some(kama)
	}
	return out
}

// FRAMA is the fractal adaptive moving average: alpha = e^(-4.6*(D-1))
// where D is the fractal dimension estimated from high/low box counts
// over two half-windows and the full window.
func FRAMA(candles []model.Candle, period int) []model.OptionalValue {
	highs := seriesutil.Highs(candles)
	lows := seriesutil.Lows(candles)
	closes := seriesutil.Closes(candles)
	out := model.AbsentSeries(len(candles))
	n := period / 2
	if n < 1 || len(candles) < period {
		return out
	}

	seedIdx := period - 1
	var seedSum float64
	for i := 0; i <= seedIdx; i++ {
		seedSum += closes[i]
	}
	frama := seedSum / float64(period)
	out[seedIdx] = model.Some(frama)

	for t := seedIdx + 1; t < len(candles); t++ {
		n1 := boxDimension(highs, lows, t-period+1, t-period+n, n)
		n2 := boxDimension(highs, lows, t-period+n+1, t, n)
		n3 := boxDimension(highs, lows, t-period+1, t, period)

		var d float64
		if n1+n2 > 0 && n3 > 0 {
			d = (math.Log(n1+n2) - math.Log(n3)) / math.Log(2)
		}
		alpha := math.Exp(-4.6 * (d - 1))
		if alpha < 0.01 {
			alpha = 0.01
		}
		if alpha > 1 {
			alpha = 1
		}
		frama = alpha*closes[t] + (1-alpha)*frama
		out[t] = model.Some(frama)
	}
	return out
}

// boxDimension returns (max(H)-min(L))/n over candles[lo:hi] inclusive.
func boxDimension(highs, lows []float64, lo, hi, n int) float64 {
	if lo < 0 || hi >= len(highs) || lo > hi {
		return 0
	}
	maxH, minL := highs[lo], lows[lo]
	for i := lo + 1; i <= hi; i++ {
		if highs[i] > maxH {
			maxH = highs[i]
		}
		if lows[i] < minL {
			minL = lows[i]
		}
	}
	return (maxH - minL) / float64(n)
}

func combine2(a, b []model.OptionalValue, f func(float64, float64) float64) []model.OptionalValue {
	out := make([]model.OptionalValue, len(a))
	for i := range a {
		if a[i].Absent || b[i].Absent {
			out[i] = model.AbsentValue
			continue
		}
		out[i] = model.Some(f(a[i].Value, b[i].Value))
	}
	return out
}

func combine3(a, b, c []model.OptionalValue, f func(float64, float64, float64) float64) []model.OptionalValue {
	out := make([]model.OptionalValue, len(a))
	for i := range a {
		if a[i].Absent || b[i].Absent || c[i].Absent {
			out[i] = model.AbsentValue
			continue
		}
		out[i] = model.Some(f(a[i].Value, b[i].Value, c[i].Value))
	}
	return out
}

// densify strips the leading absent run from an optional series and
// returns the dense float tail plus the index it started at.
func densify(values []model.OptionalValue) ([]float64, int) {
	for i, v := range values {
		if v.IsPresent() {
			dense := make([]float64, 0, len(values)-i)
			for j := i; j < len(values); j++ {
				dense = append(dense, values[j].Value)
			}
			return dense, i
		}
	}
	return nil, 0
}

// reinflate re-expands a dense optional series computed from densify back
// to the original length, offsetting by the stripped prefix.
func reinflate(dense []model.OptionalValue, offset, total int) []model.OptionalValue {
	out := model.AbsentSeries(total)
	for i, v := range dense {
		out[offset+i] = v
	}
	return out
}
