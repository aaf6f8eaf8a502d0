package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// IchimokuOutput is the five Ichimoku Kinko Hyo series.
type IchimokuOutput struct {
	Conversion    []model.OptionalValue // tenkan-sen
	Base          []model.OptionalValue // kijun-sen
	LeadingSpanA  []model.OptionalValue // senkou span A, shifted forward by disp
	LeadingSpanB  []model.OptionalValue // senkou span B, shifted forward by disp
	LaggingSpan   []model.OptionalValue // chikou span, close shifted back by disp
}

// Ichimoku computes the conversion/base lines, both leading spans
// (forward-shifted by disp), and the lagging span (close shifted back by
// disp). Unshifted positions produced by the shift are absent.
func Ichimoku(candles []model.Candle, conv, base, spanB, disp int) IchimokuOutput {
	highs := seriesutil.Highs(candles)
	lows := seriesutil.Lows(candles)
	closes := seriesutil.Closes(candles)

	conversion := midpointOf(highs, lows, conv)
	baseLine := midpointOf(highs, lows, base)
	spanBLine := midpointOf(highs, lows, spanB)

	spanA := combine2(conversion, baseLine, func(a, b float64) float64 { return (a + b) / 2 })

	n := len(candles)
	leadingA := shiftForward(spanA, disp, n)
	leadingB := shiftForward(spanBLine, disp, n)
	lagging := shiftBackward(seriesutil.OptionalFromFloats(closes), disp, n)

	return IchimokuOutput{
		Conversion:   conversion,
		Base:         baseLine,
		LeadingSpanA: leadingA,
		LeadingSpanB: leadingB,
		LaggingSpan:  lagging,
	}
}

func midpointOf(highs, lows []float64, period int) []model.OptionalValue {
	hi := seriesutil.RollingHigh(highs, period)
	lo := seriesutil.RollingLow(lows, period)
	return combine2(hi, lo, func(a, b float64) float64 { return (a + b) / 2 })
}

// shiftForward moves each value disp steps later in the output index
// space; positions it can't reach (past the end) are dropped, and the
// first disp positions are absent.
func shiftForward(values []model.OptionalValue, disp, n int) []model.OptionalValue {
	out := model.AbsentSeries(n)
	for i, v := range values {
		dst := i + disp
		if dst >= 0 && dst < n {
			out[dst] = v
		}
	}
	return out
}

// shiftBackward moves each value disp steps earlier.
func shiftBackward(values []model.OptionalValue, disp, n int) []model.OptionalValue {
	out := model.AbsentSeries(n)
	for i, v := range values {
		dst := i - disp
		if dst >= 0 && dst < n {
			out[dst] = v
		}
	}
	return out
}
