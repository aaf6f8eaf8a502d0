package options

import (
	"testing"

	"stoxcore/internal/model"
)

func TestAnalyze_SingleLongCallAtExpiry(t *testing.T) {
	positions := []model.OptionPosition{
		{OptionType: model.Call, Strike: 100, Quantity: 1, EntryPrice: 5, DaysToExpiry: 0},
	}
	grid := []float64{80, 90, 100, 110, 120}

	analysis, err := Analyze(positions, grid, 100, 0.05, 0.2)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{-5, -5, -5, 5, 15}
	for i, pt := range analysis.TotalCurve {
		assertClose(t, "pnl", pt.PnL, want[i], 1e-9)
	}

	if len(analysis.BreakEvenPoints) != 1 {
		t.Fatalf("expected 1 break-even point, got %d: %v", len(analysis.BreakEvenPoints), analysis.BreakEvenPoints)
	}
	assertClose(t, "break-even", analysis.BreakEvenPoints[0], 105, 1e-9)

	if analysis.MaxLoss.Absent {
		t.Fatal("max loss should be present (flat below strike)")
	}
	assertClose(t, "max loss", analysis.MaxLoss.Value, -5, 1e-9)

	if !analysis.MaxProfit.Absent {
		t.Fatal("max profit should be absent: payoff still rising at grid boundary")
	}
}

func TestAnalyze_PortfolioLinearity(t *testing.T) {
	grid := []float64{90, 95, 100, 105, 110}
	single := []model.OptionPosition{
		{OptionType: model.Call, Strike: 100, Quantity: 1, EntryPrice: 4, DaysToExpiry: 30},
	}
	doubled := []model.OptionPosition{
		{OptionType: model.Call, Strike: 100, Quantity: 2, EntryPrice: 4, DaysToExpiry: 30},
	}

	a1, err := Analyze(single, grid, 100, 0.04, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	a2, err := Analyze(doubled, grid, 100, 0.04, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	for i := range grid {
		assertClose(t, "linearity", a2.TotalCurve[i].PnL, 2*a1.TotalCurve[i].PnL, 1e-6)
	}
}

func TestAnalyze_RejectsNonMonotonicGrid(t *testing.T) {
	positions := []model.OptionPosition{
		{OptionType: model.Put, Strike: 50, Quantity: 1, EntryPrice: 2, DaysToExpiry: 10},
	}
	_, err := Analyze(positions, []float64{100, 90, 110}, 100, 0.05, 0.2)
	if err == nil {
		t.Fatal("expected an error for a non-monotonic grid")
	}
}
