package registry

import (
	"context"
	"testing"

	"stoxcore/internal/coreerrors"
	"stoxcore/internal/model"
)

func sampleCandles(n int) []model.Candle {
	out := make([]model.Candle, n)
	for i := range out {
		c := 100 + float64(i)
		out[i] = model.Candle{Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 1000}
	}
	return out
}

func TestCompute_SMA(t *testing.T) {
	out, err := Compute(context.Background(), "SMA(3)", sampleCandles(5), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	series, ok := out[""]
	if !ok {
		t.Fatalf("expected series under empty key, got keys %v", keysOf(out))
	}
	if series[0].Absent != true || series[4].Absent {
		t.Errorf("unexpected warm-up/present pattern: %v", series)
	}
}

func TestCompute_MultiOutput_MACD(t *testing.T) {
	out, err := Compute(context.Background(), "MACD(12,26,9)", sampleCandles(40), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"macd", "signal", "histogram"} {
		if _, ok := out[key]; !ok {
			t.Errorf("missing sub-series %q", key)
		}
	}
}

func TestCompute_UnknownIndicator(t *testing.T) {
	_, err := Compute(context.Background(), "NOT_REAL(5)", sampleCandles(10), nil, nil)
	if !coreerrors.Is(err, coreerrors.IndicatorUnknown) {
		t.Fatalf("expected IndicatorUnknown, got %v", err)
	}
}

func TestCompute_EmptyCandles(t *testing.T) {
	_, err := Compute(context.Background(), "SMA(3)", nil, nil, nil)
	if !coreerrors.Is(err, coreerrors.InputShape) {
		t.Fatalf("expected InputShape, got %v", err)
	}
}

func TestCompute_ShortSeriesIsAllAbsentNotError(t *testing.T) {
	out, err := Compute(context.Background(), "SMA(20)", sampleCandles(3), nil, nil)
	if err != nil {
		t.Fatalf("short series should succeed with all-absent output, got error: %v", err)
	}
	for _, v := range out[""] {
		if !v.Absent {
			t.Errorf("expected all-absent output for under-length series, got %v", v.Value)
		}
	}
}

func TestComputeBatch_OneBadNameDoesNotFailOthers(t *testing.T) {
	names := []string{"SMA(3)", "NOT_REAL(1)", "EMA(3)"}
	results := ComputeBatch(context.Background(), names, sampleCandles(10), nil, nil)

	if results["SMA(3)"].Err != nil {
		t.Errorf("SMA(3) should have succeeded: %v", results["SMA(3)"].Err)
	}
	if results["EMA(3)"].Err != nil {
		t.Errorf("EMA(3) should have succeeded: %v", results["EMA(3)"].Err)
	}
	if results["NOT_REAL(1)"].Err == nil {
		t.Errorf("NOT_REAL(1) should have failed")
	}
}

func TestList_CoversAllKinds(t *testing.T) {
	entries := List()
	if len(entries) != len(kindTable) {
		t.Errorf("listing has %d entries, want %d", len(entries), len(kindTable))
	}
}

func keysOf(m map[string][]model.OptionalValue) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
