package boundary

import (
	"context"
	"log/slog"

	"stoxcore/internal/metrics"
	"stoxcore/internal/model"
	"stoxcore/internal/registry"
)

// IndicatorRequest asks for a set of textual indicator specs evaluated
// against one symbol's candle series.
type IndicatorRequest struct {
	Symbol  string         `json:"symbol"`
	Candles []model.Candle `json:"candles"`
	Names   []string       `json:"names"`
}

// IndicatorResponse echoes the input candles alongside each requested
// indicator's aligned output series. A name that failed to bind or
// compute appears in Errors instead of Indicators; the two maps are
// disjoint.
type IndicatorResponse struct {
	Symbol     string                             `json:"symbol"`
	Candles    []model.Candle                     `json:"candles"`
	Indicators map[string][]model.OptionalValue   `json:"indicators"`
	Errors     map[string]string                  `json:"errors"`
}

// HandleIndicatorRequest validates the request's candles, runs every
// named indicator independently, and assembles the per-name keyed
// response. Multi-output indicators expose each sub-series under
// "{canonical_name}.{sub_name}".
func HandleIndicatorRequest(ctx context.Context, req IndicatorRequest, recorder *metrics.Recorder, log *slog.Logger) (IndicatorResponse, error) {
	if err := ValidateCandles(req.Candles); err != nil {
		return IndicatorResponse{}, err
	}

	batch := registry.ComputeBatch(ctx, req.Names, req.Candles, recorder, log)
	resp := IndicatorResponse{
		Symbol:     req.Symbol,
		Candles:    req.Candles,
		Indicators: make(map[string][]model.OptionalValue),
		Errors:     make(map[string]string),
	}

	for name, result := range batch {
		if result.Err != nil {
			resp.Errors[name] = result.Err.Error()
			continue
		}
		for subName, series := range result.Series {
			key := result.CanonicalName
			if subName != "" {
				key = result.CanonicalName + "." + subName
			}
			resp.Indicators[key] = series
		}
	}
	return resp, nil
}

// IndicatorMeta describes one indicator kind's parameter schema for the
// stable listing endpoint.
type IndicatorMeta struct {
	Kind   model.IndicatorKind   `json:"kind"`
	Params []registry.ParamSchema `json:"params"`
}

// Listing returns the full enumeration of supported indicator kinds.
func Listing() []IndicatorMeta {
	entries := registry.List()
	out := make([]IndicatorMeta, len(entries))
	for i, e := range entries {
		out[i] = IndicatorMeta{Kind: e.Kind, Params: e.Params}
	}
	return out
}
