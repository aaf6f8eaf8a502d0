package seriesutil

import (
	"math"
	"testing"

	"stoxcore/internal/model"
)

func assertClose(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.6f, want %.6f (tol=%.6f, diff=%.6f)", label, got, want, tol, math.Abs(got-want))
	}
}

func candles(closes []float64) []model.Candle {
	out := make([]model.Candle, len(closes))
	for i, c := range closes {
		out[i] = model.Candle{Close: c, High: c + 1, Low: c - 1}
	}
	return out
}

// SMA(3) on [1,2,3,4,5] → [absent, absent, 2.0, 3.0, 4.0]
func TestRollingMean_Period3(t *testing.T) {
	got := RollingMean([]float64{1, 2, 3, 4, 5}, 3)
	want := []float64{0, 0, 2, 3, 4}
	wantAbsent := []bool{true, true, false, false, false}
	for i := range got {
		if got[i].Absent != wantAbsent[i] {
			t.Fatalf("index %d: absent=%v, want %v", i, got[i].Absent, wantAbsent[i])
		}
		if !wantAbsent[i] {
			assertClose(t, "RollingMean(3)", got[i].Value, want[i], 1e-9)
		}
	}
}

// EMA(3), alpha=0.5, seed at index 2 = SMA(3); for an arithmetic sequence
// EMA coincides with SMA after the seed.
func TestEMA_ArithmeticSequenceMatchesSMA(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	ema := EMA(values, 3)
	want := []float64{0, 0, 2, 3, 4}
	for i, w := range want {
		if i < 2 {
			if !ema[i].Absent {
				t.Fatalf("index %d: expected absent", i)
			}
			continue
		}
		assertClose(t, "EMA(3)", ema[i].Value, w, 1e-9)
	}
}

func TestWilderSmoothing_Seed(t *testing.T) {
	values := []float64{44, 44.25, 44.5, 43.75, 44.5, 44.25, 44.0}
	got := WilderSmoothing(values, 5)
	seed := (44.0 + 44.25 + 44.5 + 43.75 + 44.5) / 5.0
	assertClose(t, "WilderSmoothing seed", got[4].Value, seed, 1e-9)

	alpha := 1.0 / 5.0
	want6 := alpha*values[5] + (1-alpha)*seed
	assertClose(t, "WilderSmoothing candle 6", got[5].Value, want6, 1e-9)
}

func TestTrueRange_FirstAbsent(t *testing.T) {
	cs := candles([]float64{10, 11, 9})
	tr := TrueRange(cs)
	if !tr[0].Absent {
		t.Fatal("first true range must be absent")
	}
	if tr[1].Absent || tr[2].Absent {
		t.Fatal("subsequent true range must be present")
	}
}

func TestRollingStdev_ConstantSeriesIsZero(t *testing.T) {
	values := make([]float64, 25)
	for i := range values {
		values[i] = 100
	}
	got := RollingStdev(values, 20)
	assertClose(t, "stdev of constant series", got[19].Value, 0, 1e-9)
}
