package indicator

import (
	"math"
	"testing"

	"stoxcore/internal/model"
)

// ────────────────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────────────────

func closeCandle(c float64) model.Candle {
	return model.Candle{Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000}
}

func closeCandles(values []float64) []model.Candle {
	out := make([]model.Candle, len(values))
	for i, v := range values {
		out[i] = closeCandle(v)
	}
	return out
}

func assertClose(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.6f, want %.6f (tol=%.6f, diff=%.6f)", label, got, want, tol, math.Abs(got-want))
	}
}

func assertAbsent(t *testing.T, label string, v model.OptionalValue) {
	t.Helper()
	if !v.Absent {
		t.Errorf("%s: expected absent, got %v", label, v.Value)
	}
}

// ────────────────────────────────────────────────────────────
// SMA / EMA — concrete scenarios from the formula table
// ────────────────────────────────────────────────────────────

func TestSMA_Period3_OnArithmeticSequence(t *testing.T) {
	candles := closeCandles([]float64{1, 2, 3, 4, 5})
	got := SMA(candles, 3)
	assertAbsent(t, "SMA(3)[0]", got[0])
	assertAbsent(t, "SMA(3)[1]", got[1])
	assertClose(t, "SMA(3)[2]", got[2].Value, 2.0, 1e-9)
	assertClose(t, "SMA(3)[3]", got[3].Value, 3.0, 1e-9)
	assertClose(t, "SMA(3)[4]", got[4].Value, 4.0, 1e-9)
}

func TestEMA_Period3_OnArithmeticSequenceMatchesSMA(t *testing.T) {
	candles := closeCandles([]float64{1, 2, 3, 4, 5})
	got := EMA(candles, 3)
	assertAbsent(t, "EMA(3)[0]", got[0])
	assertAbsent(t, "EMA(3)[1]", got[1])
	assertClose(t, "EMA(3)[2]", got[2].Value, 2.0, 1e-9)
	assertClose(t, "EMA(3)[3]", got[3].Value, 3.0, 1e-9)
	assertClose(t, "EMA(3)[4]", got[4].Value, 4.0, 1e-9)
}

func TestSMA_ConstantSeries_EqualsConstant(t *testing.T) {
	candles := closeCandles([]float64{100, 100, 100, 100, 100})
	got := SMA(candles, 3)
	assertClose(t, "SMA on constant series", got[4].Value, 100, 1e-9)
}

// ────────────────────────────────────────────────────────────
// RSI
// ────────────────────────────────────────────────────────────

func TestRSI_MonotonicallyIncreasing_Is100(t *testing.T) {
	values := make([]float64, 20)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	candles := closeCandles(values)
	got := RSI(candles, 14)
	assertClose(t, "RSI(14) all up", got[14].Value, 100.0, 1e-9)
	assertClose(t, "RSI(14) all up later", got[19].Value, 100.0, 1e-9)
}

func TestRSI_Range(t *testing.T) {
	values := []float64{44, 44.34, 44.09, 43.61, 44.33, 44.83, 45.10, 45.42, 45.84, 46.08}
	candles := closeCandles(values)
	got := RSI(candles, 5)
	for i, v := range got {
		if v.Absent {
			continue
		}
		if v.Value < 0 || v.Value > 100 {
			t.Errorf("RSI[%d]=%.4f out of [0,100]", i, v.Value)
		}
	}
}

// ────────────────────────────────────────────────────────────
// Bollinger Bands
// ────────────────────────────────────────────────────────────

func TestBollingerBands_ConstantSeries_BandsCollapse(t *testing.T) {
	values := make([]float64, 20)
	for i := range values {
		values[i] = 100
	}
	candles := closeCandles(values)
	bb := BollingerBands(candles, 20, 2)
	assertClose(t, "Bollinger upper", bb.Upper[19].Value, 100, 1e-9)
	assertClose(t, "Bollinger middle", bb.Middle[19].Value, 100, 1e-9)
	assertClose(t, "Bollinger lower", bb.Lower[19].Value, 100, 1e-9)
}

func TestBollingerBands_OrderingHolds(t *testing.T) {
	values := []float64{10, 12, 9, 15, 11, 14, 8, 16, 13, 17, 9, 18, 7, 19, 12, 10, 20, 6, 21, 11}
	candles := closeCandles(values)
	bb := BollingerBands(candles, 10, 2)
	for i := 9; i < len(values); i++ {
		if bb.Upper[i].Value < bb.Middle[i].Value || bb.Middle[i].Value < bb.Lower[i].Value {
			t.Errorf("index %d: band ordering violated: upper=%.4f middle=%.4f lower=%.4f",
				i, bb.Upper[i].Value, bb.Middle[i].Value, bb.Lower[i].Value)
		}
	}
}

// ────────────────────────────────────────────────────────────
// MACD
// ────────────────────────────────────────────────────────────

func TestMACD_ConstantSeries_IsZero(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = 50
	}
	candles := closeCandles(values)
	out := MACD(candles, 12, 26, 9)
	assertClose(t, "MACD line on constant series", out.MACD[30].Value, 0, 1e-9)
	assertClose(t, "MACD signal on constant series", out.Signal[35].Value, 0, 1e-9)
	assertClose(t, "MACD histogram on constant series", out.Histogram[35].Value, 0, 1e-9)
}

// ────────────────────────────────────────────────────────────
// ATR / True Range
// ────────────────────────────────────────────────────────────

func TestATR_WarmUpLength(t *testing.T) {
	candles := closeCandles([]float64{10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24})
	atr := ATR(candles, 14)
	assertAbsent(t, "ATR before warm-up", atr[13])
	if atr[14].Absent {
		t.Error("ATR should be present at index 14 (period 14)")
	}
}

// ────────────────────────────────────────────────────────────
// OBV monotonicity under all-nonnegative deltas
// ────────────────────────────────────────────────────────────

func TestOBV_MonotoneNonDecreasing_WhenAllDeltasNonNegative(t *testing.T) {
	values := []float64{10, 10, 11, 11, 12, 13, 13, 14}
	candles := closeCandles(values)
	obv := OBV(candles)
	for i := 1; i < len(obv); i++ {
		if obv[i].Value < obv[i-1].Value {
			t.Errorf("OBV decreased at index %d: %.2f -> %.2f", i, obv[i-1].Value, obv[i].Value)
		}
	}
}

// ────────────────────────────────────────────────────────────
// Output length invariant, spot-checked across a sample of indicators
// ────────────────────────────────────────────────────────────

func TestOutputLength_MatchesInputLength(t *testing.T) {
	candles := closeCandles([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	n := len(candles)

	if got := len(SMA(candles, 3)); got != n {
		t.Errorf("SMA output length = %d, want %d", got, n)
	}
	if got := len(RSI(candles, 5)); got != n {
		t.Errorf("RSI output length = %d, want %d", got, n)
	}
	if got := len(ATR(candles, 5)); got != n {
		t.Errorf("ATR output length = %d, want %d", got, n)
	}
	bb := BollingerBands(candles, 5, 2)
	if len(bb.Upper) != n || len(bb.Middle) != n || len(bb.Lower) != n {
		t.Errorf("BollingerBands output lengths != %d", n)
	}
}
