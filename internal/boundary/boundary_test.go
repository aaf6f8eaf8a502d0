package boundary

import (
	"context"
	"testing"

	"stoxcore/internal/model"
)

func sampleCandleJSON() []byte {
	return []byte(`[
		{"timestamp":1,"open":10,"high":11,"low":9,"close":10,"adj_close":10,"volume":100},
		{"timestamp":2,"open":10,"high":12,"low":9,"close":11,"adj_close":11,"volume":120},
		{"timestamp":3,"open":11,"high":13,"low":10,"close":12,"adj_close":12,"volume":130}
	]`)
}

func TestDecodeCandles_Valid(t *testing.T) {
	candles, err := DecodeCandles(sampleCandleJSON())
	if err != nil {
		t.Fatal(err)
	}
	if len(candles) != 3 {
		t.Fatalf("got %d candles, want 3", len(candles))
	}
}

func TestDecodeCandles_NonMonotonicTimestamps(t *testing.T) {
	data := []byte(`[{"timestamp":2,"close":1},{"timestamp":1,"close":2}]`)
	if _, err := DecodeCandles(data); err == nil {
		t.Fatal("expected an error for non-monotonic timestamps")
	}
}

func TestDecodeCandles_Empty(t *testing.T) {
	if _, err := DecodeCandles([]byte(`[]`)); err == nil {
		t.Fatal("expected an error for an empty candle series")
	}
}

func TestHandleIndicatorRequest_MixedSuccessAndFailure(t *testing.T) {
	candles, err := DecodeCandles(sampleCandleJSON())
	if err != nil {
		t.Fatal(err)
	}
	req := IndicatorRequest{
		Symbol:  "TEST",
		Candles: candles,
		Names:   []string{"SMA(2)", "NOT_REAL"},
	}
	resp, err := HandleIndicatorRequest(context.Background(), req, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := resp.Indicators["SMA(2)"]; !ok {
		t.Errorf("expected SMA(2) in indicators, got keys %v", keysOf(resp.Indicators))
	}
	if _, ok := resp.Errors["NOT_REAL"]; !ok {
		t.Errorf("expected NOT_REAL in errors, got %v", resp.Errors)
	}
}

func TestHandleOptionsRequest_SinglePosition(t *testing.T) {
	req := OptionsRequest{
		Positions: []model.OptionPosition{
			{OptionType: model.Call, Strike: 100, Quantity: 1, EntryPrice: 5, DaysToExpiry: 30},
		},
		UnderlyingPrice:  100,
		UnderlyingPrices: []float64{90, 100, 110},
		Volatility:       0.2,
		RiskFreeRate:     0.05,
	}
	resp, err := HandleOptionsRequest(context.Background(), req, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.PerPosition) != 1 {
		t.Fatalf("expected 1 position result, got %d", len(resp.PerPosition))
	}
	if len(resp.Portfolio.TotalCurve) != 3 {
		t.Fatalf("expected total curve of length 3, got %d", len(resp.Portfolio.TotalCurve))
	}
}

func keysOf(m map[string][]model.OptionalValue) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
