package boundary

import (
	"context"
	"log/slog"
	"time"

	"stoxcore/internal/logger"
	"stoxcore/internal/metrics"
	"stoxcore/internal/model"
	"stoxcore/internal/options"
)

// OptionsRequest asks for a portfolio of option positions to be priced
// and aggregated over a shared underlying-price grid.
type OptionsRequest struct {
	Positions        []model.OptionPosition `json:"positions"`
	UnderlyingPrice  float64                `json:"underlying_price"`
	UnderlyingPrices []float64              `json:"underlying_prices"`
	Volatility       float64                `json:"volatility"`
	RiskFreeRate     float64                `json:"risk_free_rate"`
}

// PositionResult is one position's curve and current Greeks.
type PositionResult struct {
	Position        model.OptionPosition `json:"position"`
	Curve           model.PnLCurve       `json:"curve"`
	GreeksAtCurrent model.Greeks         `json:"greeks_at_current"`
}

// OptionsResponse carries both the per-position breakdown and the
// aggregated portfolio view. Options-analytics errors fail the whole
// request rather than propagating per-position, unlike indicators.
type OptionsResponse struct {
	PerPosition []PositionResult        `json:"per_position"`
	Portfolio   model.PortfolioAnalysis `json:"portfolio"`
}

// HandleOptionsRequest prices every position, aggregates the portfolio,
// and records analysis latency on recorder if non-nil.
func HandleOptionsRequest(ctx context.Context, req OptionsRequest, recorder *metrics.Recorder, log *slog.Logger) (OptionsResponse, error) {
	start := time.Now()

	perPosition := make([]PositionResult, len(req.Positions))
	for i, pos := range req.Positions {
		curve, err := options.PositionCurve(pos, req.UnderlyingPrices, req.RiskFreeRate, req.Volatility)
		if err != nil {
			return OptionsResponse{}, err
		}
		t := pos.DaysToExpiry / 365.0
		var greeks model.Greeks
		if t > 0 {
			greeks, err = options.GreeksAt(req.UnderlyingPrice, pos.Strike, t, req.RiskFreeRate, req.Volatility, pos.OptionType)
			if err != nil {
				return OptionsResponse{}, err
			}
		}
		perPosition[i] = PositionResult{Position: pos, Curve: curve, GreeksAtCurrent: greeks}
	}

	portfolio, err := options.Analyze(req.Positions, req.UnderlyingPrices, req.UnderlyingPrice, req.RiskFreeRate, req.Volatility)
	if err != nil {
		return OptionsResponse{}, err
	}

	if log != nil {
		log.DebugContext(ctx, "options portfolio analyzed", append(logger.LogWithTrace(ctx), slog.Int("positions", len(req.Positions)), slog.Duration("elapsed", time.Since(start)))...)
	}
	recorder.ObserveOptionsAnalyze(time.Since(start).Seconds())

	return OptionsResponse{PerPosition: perPosition, Portfolio: portfolio}, nil
}
