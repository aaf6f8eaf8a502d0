package registry

import (
	"context"
	"log/slog"
	"time"

	"stoxcore/internal/coreerrors"
	"stoxcore/internal/logger"
	"stoxcore/internal/metrics"
	"stoxcore/internal/model"
)

// Bind resolves a textual indicator name into a fully-bound spec: its
// kind, its positional arguments with defaults filled in, and the
// canonical string form used for cache keys and round-trip checks.
func Bind(text string) (model.IndicatorSpec, error) {
	kind, args, err := ParseSpec(text)
	if err != nil {
		return model.IndicatorSpec{}, err
	}
	def, ok := kindTable[kind]
	if !ok {
		return model.IndicatorSpec{}, coreerrors.NewIndicatorUnknown("unknown indicator kind: " + string(kind))
	}
	if len(args) > len(def.Params) {
		return model.IndicatorSpec{}, coreerrors.NewIndicatorParamError("too many arguments for " + string(kind))
	}
	bound := make([]model.ParamValue, len(def.Params))
	for i, schema := range def.Params {
		if i < len(args) {
			bound[i] = args[i]
			continue
		}
		switch d := schema.Default.(type) {
		case float64:
			bound[i] = model.ParamValue{Scalar: d}
		case []int:
			bound[i] = model.ParamValue{IsList: true, List: d}
		default:
			return model.IndicatorSpec{}, coreerrors.NewIndicatorParamError("missing required parameter " + schema.Name + " for " + string(kind))
		}
	}
	if err := validate(kind, bound); err != nil {
		return model.IndicatorSpec{}, err
	}
	return model.IndicatorSpec{
		Kind:          kind,
		Args:          bound,
		CanonicalName: CanonicalName(kind, bound),
	}, nil
}

// validate enforces the domain constraints every bound spec must satisfy:
// periods are positive, Bollinger's width multiplier is positive, and
// Parabolic SAR's step/max acceleration factors lie in (0,1].
func validate(kind model.IndicatorKind, args []model.ParamValue) error {
	for _, a := range args {
		if a.IsList {
			for _, n := range a.List {
				if n < 1 {
					return coreerrors.NewIndicatorParamError("period values must be >= 1")
				}
			}
		}
	}
	switch kind {
	case model.KindBollingerBands, model.KindPercentB:
		if args[1].Scalar <= 0 {
			return coreerrors.NewIndicatorParamError("k must be > 0")
		}
		if args[0].Scalar < 1 {
			return coreerrors.NewIndicatorParamError("period must be >= 1")
		}
	case model.KindParabolicSAR:
		for _, i := range []int{0, 1} {
			if args[i].Scalar <= 0 || args[i].Scalar > 1 {
				return coreerrors.NewIndicatorParamError("step and max must be in (0,1]")
			}
		}
	case model.KindKalmanFilter:
		for _, i := range []int{0, 1} {
			if args[i].Scalar <= 0 {
				return coreerrors.NewIndicatorParamError("measVar and procVar must be > 0")
			}
		}
	case model.KindVWAP, model.KindOBV, model.KindAccumDistLine, model.KindPriceVolumeTrend:
		// no numeric parameters
	default:
		for _, a := range args {
			if a.IsList {
				continue
			}
			if a.Scalar < 1 {
				return coreerrors.NewIndicatorParamError("all periods for " + string(kind) + " must be >= 1")
			}
		}
	}
	return nil
}

// Compute binds and runs a single textual indicator spec against a
// candle series. recorder and log may both be nil. A series too short
// for an indicator's lookback is not an error: the indicator itself
// returns an all-absent series, per the registry's default
// success-with-all-absent behavior for under-length input.
func Compute(ctx context.Context, text string, candles []model.Candle, recorder *metrics.Recorder, log *slog.Logger) (map[string][]model.OptionalValue, error) {
	spec, err := Bind(text)
	if err != nil {
		recorder.ObserveIndicatorError(text, string(errKind(err)))
		return nil, err
	}
	if len(candles) == 0 {
		err := coreerrors.NewInputShape("candle series is empty")
		recorder.ObserveIndicatorError(string(spec.Kind), string(errKind(err)))
		return nil, err
	}

	def := kindTable[spec.Kind]
	start := time.Now()
	out, err := def.Invoke(candles, spec.Args)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		recorder.ObserveIndicatorError(string(spec.Kind), string(errKind(err)))
		if log != nil {
			log.DebugContext(ctx, "indicator compute failed", append(logger.LogWithTrace(ctx), slog.String("kind", string(spec.Kind)), slog.String("error", err.Error()))...)
		}
		return nil, err
	}

	recorder.ObserveIndicatorCompute(string(spec.Kind), elapsed)
	if log != nil {
		log.DebugContext(ctx, "indicator computed", append(logger.LogWithTrace(ctx), slog.String("kind", string(spec.Kind)), slog.Float64("elapsed_seconds", elapsed), slog.Int("candles", len(candles)))...)
	}
	return out, nil
}

// BatchResult is one named indicator's outcome within a batch.
type BatchResult struct {
	CanonicalName string
	Series        map[string][]model.OptionalValue
	Err           error
}

// ComputeBatch runs a set of textual indicator specs against the same
// candle series. A failure on one name never aborts the others: each
// name resolves independently to either a series map or an error.
func ComputeBatch(ctx context.Context, names []string, candles []model.Candle, recorder *metrics.Recorder, log *slog.Logger) map[string]BatchResult {
	results := make(map[string]BatchResult, len(names))
	for _, name := range names {
		canonical := name
		if spec, err := Bind(name); err == nil {
			canonical = spec.CanonicalName
		}
		series, err := Compute(ctx, name, candles, recorder, log)
		results[name] = BatchResult{CanonicalName: canonical, Series: series, Err: err}
	}
	return results
}

func errKind(err error) coreerrors.Kind {
	if e, ok := err.(*coreerrors.Error); ok {
		return e.Kind
	}
	return coreerrors.NumericDomain
}

// ListingEntry describes one supported indicator kind for the registry
// listing endpoint: its canonical kind name and parameter schema.
type ListingEntry struct {
	Kind   model.IndicatorKind
	Params []ParamSchema
}

// List returns the parameter schema for every supported indicator kind,
// sorted by kind name for a stable listing.
func List() []ListingEntry {
	entries := make([]ListingEntry, 0, len(kindTable))
	for kind, def := range kindTable {
		entries = append(entries, ListingEntry{Kind: kind, Params: def.Params})
	}
	sortEntries(entries)
	return entries
}

func sortEntries(entries []ListingEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j-1].Kind > entries[j].Kind; j-- {
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}
}
