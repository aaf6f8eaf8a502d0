package options

import (
	"sort"

	"stoxcore/internal/coreerrors"
	"stoxcore/internal/model"
)

// PositionCurve prices one position across the supplied underlying-price
// grid at its own remaining time to expiry, using pos.EntryPrice as the
// cost basis. days_to_expiry = 0 prices at intrinsic value.
func PositionCurve(pos model.OptionPosition, grid []float64, r, sigma float64) (model.PnLCurve, error) {
	if err := checkGrid(grid); err != nil {
		return nil, err
	}
	t := pos.DaysToExpiry / 365.0
	curve := make(model.PnLCurve, len(grid))
	for i, s := range grid {
		price, err := Price(s, pos.Strike, t, r, sigma, pos.OptionType)
		if err != nil {
			return nil, err
		}
		pnl := float64(pos.Quantity) * (price - pos.EntryPrice)
		curve[i] = model.PnLPoint{UnderlyingPrice: s, PnL: pnl}
	}
	return curve, nil
}

// checkGrid validates the shared price grid: non-empty and strictly
// increasing. The caller supplies the grid; this layer never generates one.
func checkGrid(grid []float64) error {
	if len(grid) == 0 {
		return coreerrors.NewOptionsInput("price grid is empty")
	}
	for i := 1; i < len(grid); i++ {
		if grid[i] <= grid[i-1] {
			return coreerrors.NewOptionsInput("price grid must be strictly increasing")
		}
	}
	return nil
}

// Analyze prices every position over the shared grid, sums them into a
// total curve, aggregates per-contract Greeks at the current underlying
// price, and derives max profit/loss and break-even points.
func Analyze(positions []model.OptionPosition, grid []float64, underlying, r, sigma float64) (model.PortfolioAnalysis, error) {
	if err := checkGrid(grid); err != nil {
		return model.PortfolioAnalysis{}, err
	}
	if len(positions) == 0 {
		return model.PortfolioAnalysis{}, coreerrors.NewOptionsInput("portfolio has no positions")
	}

	perPosition := make([]model.PnLCurve, len(positions))
	total := make(model.PnLCurve, len(grid))
	for i, s := range grid {
		total[i] = model.PnLPoint{UnderlyingPrice: s}
	}

	var aggregate model.Greeks
	for i, pos := range positions {
		curve, err := PositionCurve(pos, grid, r, sigma)
		if err != nil {
			return model.PortfolioAnalysis{}, err
		}
		perPosition[i] = curve
		for j, pt := range curve {
			total[j].PnL += pt.PnL
		}

		t := pos.DaysToExpiry / 365.0
		var g model.Greeks
		if t == 0 {
			g = intrinsicGreeks(underlying, pos.Strike, pos.OptionType)
		} else {
			g, err = GreeksAt(underlying, pos.Strike, t, r, sigma, pos.OptionType)
			if err != nil {
				return model.PortfolioAnalysis{}, err
			}
		}
		q := float64(pos.Quantity)
		aggregate.Delta += q * g.Delta
		aggregate.Gamma += q * g.Gamma
		aggregate.Theta += q * g.Theta
		aggregate.Vega += q * g.Vega
		aggregate.Rho += q * g.Rho
	}

	maxProfit, maxLoss := extrema(total)
	breakEvens := breakEvenPoints(total)

	return model.PortfolioAnalysis{
		PerPositionCurves: perPosition,
		TotalCurve:        total,
		AggregateGreeks:   aggregate,
		MaxProfit:         maxProfit,
		MaxLoss:           maxLoss,
		BreakEvenPoints:   breakEvens,
	}, nil
}

// extrema returns the grid-bounded max and min of a P&L curve. Either
// bound is reported absent when the curve is still moving away from the
// interior at the grid boundary in the profitable (for max) or
// loss-making (for min) direction, signaling an unbounded payoff beyond
// the sampled range.
func extrema(curve model.PnLCurve) (model.OptionalFloat, model.OptionalFloat) {
	if len(curve) == 0 {
		return model.AbsentValue, model.AbsentValue
	}
	maxIdx, minIdx := 0, 0
	for i, pt := range curve {
		if pt.PnL > curve[maxIdx].PnL {
			maxIdx = i
		}
		if pt.PnL < curve[minIdx].PnL {
			minIdx = i
		}
	}
	last := len(curve) - 1

	maxProfit := model.Some(curve[maxIdx].PnL)
	if last > 0 && ((maxIdx == last && curve[last].PnL > curve[last-1].PnL) ||
		(maxIdx == 0 && curve[0].PnL > curve[1].PnL)) {
		maxProfit = model.AbsentValue
	}

	maxLoss := model.Some(curve[minIdx].PnL)
	if last > 0 && ((minIdx == 0 && curve[0].PnL < curve[1].PnL) ||
		(minIdx == last && curve[last].PnL < curve[last-1].PnL)) {
		maxLoss = model.AbsentValue
	}

	return maxProfit, maxLoss
}

// breakEvenPoints finds underlying prices where the total curve crosses
// zero, via linear interpolation between adjacent grid points of
// opposite sign.
func breakEvenPoints(curve model.PnLCurve) []float64 {
	var out []float64
	for i := 1; i < len(curve); i++ {
		a, b := curve[i-1], curve[i]
		if a.PnL == 0 {
			out = append(out, a.UnderlyingPrice)
			continue
		}
		if (a.PnL < 0 && b.PnL > 0) || (a.PnL > 0 && b.PnL < 0) {
			frac := -a.PnL / (b.PnL - a.PnL)
			x := a.UnderlyingPrice + frac*(b.UnderlyingPrice-a.UnderlyingPrice)
			out = append(out, x)
		}
	}
	if len(curve) > 0 && curve[len(curve)-1].PnL == 0 {
		out = append(out, curve[len(curve)-1].UnderlyingPrice)
	}
	sort.Float64s(out)
	return out
}
