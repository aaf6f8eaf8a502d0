package registry

import (
	"fmt"
	"strconv"

	"stoxcore/internal/coreerrors"
	"stoxcore/internal/indicator"
	"stoxcore/internal/model"
)

// ParamType is the wire type of an indicator parameter, for the stable
// listing endpoint.
type ParamType string

const (
	ParamNumber ParamType = "number"
	ParamArray  ParamType = "array"
)

// ParamSchema describes one positional parameter.
type ParamSchema struct {
	Name    string
	Type    ParamType
	Default interface{}
}

// KindDef is a kind's parameter schema plus its bound invoker.
type KindDef struct {
	Params []ParamSchema
	Invoke func(candles []model.Candle, args []model.ParamValue) (map[string][]model.OptionalValue, error)
}

func scalarArg(args []model.ParamValue, i int, schema []ParamSchema) (float64, error) {
	if i < len(args) {
		if args[i].IsList {
			return 0, coreerrors.NewIndicatorParamError(fmt.Sprintf("parameter %q expects a number, got a list", schema[i].Name))
		}
		return args[i].Scalar, nil
	}
	d, ok := schema[i].Default.(float64)
	if !ok {
		return 0, coreerrors.NewIndicatorParamError("missing required parameter " + schema[i].Name)
	}
	return d, nil
}

func intArg(args []model.ParamValue, i int, schema []ParamSchema) (int, error) {
	f, err := scalarArg(args, i, schema)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func listArg(args []model.ParamValue, i int, schema []ParamSchema) ([]int, error) {
	if i < len(args) {
		if !args[i].IsList {
			return nil, coreerrors.NewIndicatorParamError(fmt.Sprintf("parameter %q expects a list, got a number", schema[i].Name))
		}
		return args[i].List, nil
	}
	d, ok := schema[i].Default.([]int)
	if !ok {
		return nil, coreerrors.NewIndicatorParamError("missing required parameter " + schema[i].Name)
	}
	return d, nil
}

func single(key string, series []model.OptionalValue) map[string][]model.OptionalValue {
	return map[string][]model.OptionalValue{key: series}
}

var kindTable = map[model.IndicatorKind]*KindDef{
	model.KindSMA: {
		Params: []ParamSchema{{"period", ParamNumber, 20.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 20.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.SMA(c, p)), nil
		},
	},
	model.KindEMA: {
		Params: []ParamSchema{{"period", ParamNumber, 20.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 20.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.EMA(c, p)), nil
		},
	},
	model.KindWMA: {
		Params: []ParamSchema{{"period", ParamNumber, 10.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 10.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.WMA(c, p)), nil
		},
	},
	model.KindDEMA: {
		Params: []ParamSchema{{"period", ParamNumber, 10.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 10.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.DEMA(c, p)), nil
		},
	},
	model.KindTEMA: {
		Params: []ParamSchema{{"period", ParamNumber, 10.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 10.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.TEMA(c, p)), nil
		},
	},
	model.KindHMA: {
		Params: []ParamSchema{{"period", ParamNumber, 10.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 10.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.HMA(c, p)), nil
		},
	},
	model.KindKAMA: {
		Params: []ParamSchema{{"period", ParamNumber, 10.0}, {"fast", ParamNumber, 2.0}, {"slow", ParamNumber, 30.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			schema := []ParamSchema{{"period", ParamNumber, 10.0}, {"fast", ParamNumber, 2.0}, {"slow", ParamNumber, 30.0}}
			p, err := intArg(a, 0, schema)
			if err != nil {
				return nil, err
			}
			fast, err := intArg(a, 1, schema)
			if err != nil {
				return nil, err
			}
			slow, err := intArg(a, 2, schema)
			if err != nil {
				return nil, err
			}
			return single("", indicator.KAMA(c, p, fast, slow)), nil
		},
	},
	model.KindFRAMA: {
		Params: []ParamSchema{{"period", ParamNumber, 10.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 10.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.FRAMA(c, p)), nil
		},
	},
	model.KindRSI: {
		Params: []ParamSchema{{"period", ParamNumber, 14.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 14.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.RSI(c, p)), nil
		},
	},
	model.KindStochastic: {
		Params: []ParamSchema{{"k", ParamNumber, 14.0}, {"d", ParamNumber, 3.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			schema := []ParamSchema{{"k", ParamNumber, 14.0}, {"d", ParamNumber, 3.0}}
			k, err := intArg(a, 0, schema)
			if err != nil {
				return nil, err
			}
			d, err := intArg(a, 1, schema)
			if err != nil {
				return nil, err
			}
			out := indicator.Stochastic(c, k, d)
			return map[string][]model.OptionalValue{"k": out.K, "d": out.D}, nil
		},
	},
	model.KindCCI: {
		Params: []ParamSchema{{"period", ParamNumber, 20.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 20.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.CCI(c, p)), nil
		},
	},
	model.KindWilliamsR: {
		Params: []ParamSchema{{"period", ParamNumber, 14.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 14.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.WilliamsR(c, p)), nil
		},
	},
	model.KindMFI: {
		Params: []ParamSchema{{"period", ParamNumber, 14.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 14.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.MFI(c, p)), nil
		},
	},
	model.KindUltimateOsc: {
		Params: []ParamSchema{{"short", ParamNumber, 7.0}, {"medium", ParamNumber, 14.0}, {"long", ParamNumber, 28.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			schema := []ParamSchema{{"short", ParamNumber, 7.0}, {"medium", ParamNumber, 14.0}, {"long", ParamNumber, 28.0}}
			s, err := intArg(a, 0, schema)
			if err != nil {
				return nil, err
			}
			m, err := intArg(a, 1, schema)
			if err != nil {
				return nil, err
			}
			l, err := intArg(a, 2, schema)
			if err != nil {
				return nil, err
			}
			return single("", indicator.UltimateOscillator(c, s, m, l)), nil
		},
	},
	model.KindDetrendedPriceOsc: {
		Params: []ParamSchema{{"period", ParamNumber, 20.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 20.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.DetrendedPriceOscillator(c, p)), nil
		},
	},
	model.KindRateOfChange: {
		Params: []ParamSchema{{"period", ParamNumber, 12.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 12.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.RateOfChange(c, p)), nil
		},
	},
	model.KindMomentum: {
		Params: []ParamSchema{{"period", ParamNumber, 10.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 10.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.Momentum(c, p)), nil
		},
	},
	model.KindTRIX: {
		Params: []ParamSchema{{"period", ParamNumber, 15.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 15.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.TRIX(c, p)), nil
		},
	},
	model.KindBollingerBands: {
		Params: []ParamSchema{{"period", ParamNumber, 20.0}, {"k", ParamNumber, 2.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			schema := []ParamSchema{{"period", ParamNumber, 20.0}, {"k", ParamNumber, 2.0}}
			p, err := intArg(a, 0, schema)
			if err != nil {
				return nil, err
			}
			k, err := scalarArg(a, 1, schema)
			if err != nil {
				return nil, err
			}
			out := indicator.BollingerBands(c, p, k)
			return map[string][]model.OptionalValue{"upper": out.Upper, "middle": out.Middle, "lower": out.Lower}, nil
		},
	},
	model.KindPercentB: {
		Params: []ParamSchema{{"period", ParamNumber, 20.0}, {"k", ParamNumber, 2.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			schema := []ParamSchema{{"period", ParamNumber, 20.0}, {"k", ParamNumber, 2.0}}
			p, err := intArg(a, 0, schema)
			if err != nil {
				return nil, err
			}
			k, err := scalarArg(a, 1, schema)
			if err != nil {
				return nil, err
			}
			return single("", indicator.PercentB(c, p, k)), nil
		},
	},
	model.KindMACD: {
		Params: []ParamSchema{{"fast", ParamNumber, 12.0}, {"slow", ParamNumber, 26.0}, {"signal", ParamNumber, 9.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			schema := []ParamSchema{{"fast", ParamNumber, 12.0}, {"slow", ParamNumber, 26.0}, {"signal", ParamNumber, 9.0}}
			f, err := intArg(a, 0, schema)
			if err != nil {
				return nil, err
			}
			s, err := intArg(a, 1, schema)
			if err != nil {
				return nil, err
			}
			sig, err := intArg(a, 2, schema)
			if err != nil {
				return nil, err
			}
			out := indicator.MACD(c, f, s, sig)
			return map[string][]model.OptionalValue{"macd": out.MACD, "signal": out.Signal, "histogram": out.Histogram}, nil
		},
	},
	model.KindADX: {
		Params: []ParamSchema{{"period", ParamNumber, 14.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 14.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.ADX(c, p)), nil
		},
	},
	model.KindParabolicSAR: {
		Params: []ParamSchema{{"step", ParamNumber, 0.02}, {"max", ParamNumber, 0.2}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			schema := []ParamSchema{{"step", ParamNumber, 0.02}, {"max", ParamNumber, 0.2}}
			step, err := scalarArg(a, 0, schema)
			if err != nil {
				return nil, err
			}
			max, err := scalarArg(a, 1, schema)
			if err != nil {
				return nil, err
			}
			return single("", indicator.ParabolicSAR(c, step, max)), nil
		},
	},
	model.KindChandelierExit: {
		Params: []ParamSchema{{"period", ParamNumber, 22.0}, {"multiplier", ParamNumber, 3.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			schema := []ParamSchema{{"period", ParamNumber, 22.0}, {"multiplier", ParamNumber, 3.0}}
			p, err := intArg(a, 0, schema)
			if err != nil {
				return nil, err
			}
			m, err := scalarArg(a, 1, schema)
			if err != nil {
				return nil, err
			}
			out := indicator.ChandelierExit(c, p, m)
			return map[string][]model.OptionalValue{"long": out.Long, "short": out.Short}, nil
		},
	},
	model.KindSchaffTrendCycle: {
		Params: []ParamSchema{
			{"cycle", ParamNumber, 10.0}, {"fastK", ParamNumber, 3.0}, {"fastD", ParamNumber, 3.0},
			{"short", ParamNumber, 23.0}, {"long", ParamNumber, 50.0},
		},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			schema := []ParamSchema{
				{"cycle", ParamNumber, 10.0}, {"fastK", ParamNumber, 3.0}, {"fastD", ParamNumber, 3.0},
				{"short", ParamNumber, 23.0}, {"long", ParamNumber, 50.0},
			}
			cycle, err := intArg(a, 0, schema)
			if err != nil {
				return nil, err
			}
			fastK, err := intArg(a, 1, schema)
			if err != nil {
				return nil, err
			}
			fastD, err := intArg(a, 2, schema)
			if err != nil {
				return nil, err
			}
			short, err := intArg(a, 3, schema)
			if err != nil {
				return nil, err
			}
			long, err := intArg(a, 4, schema)
			if err != nil {
				return nil, err
			}
			return single("", indicator.SchaffTrendCycle(c, cycle, fastK, fastD, short, long)), nil
		},
	},
	model.KindVWAP: {
		Params: nil,
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			return single("", indicator.VWAP(c)), nil
		},
	},
	model.KindOBV: {
		Params: nil,
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			return single("", indicator.OBV(c)), nil
		},
	},
	model.KindCMF: {
		Params: []ParamSchema{{"period", ParamNumber, 20.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 20.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.CMF(c, p)), nil
		},
	},
	model.KindForceIndex: {
		Params: []ParamSchema{{"period", ParamNumber, 13.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 13.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.ForceIndex(c, p)), nil
		},
	},
	model.KindEaseOfMovement: {
		Params: []ParamSchema{{"period", ParamNumber, 14.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 14.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.EaseOfMovement(c, p)), nil
		},
	},
	model.KindAccumDistLine: {
		Params: nil,
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			return single("", indicator.AccumDistLine(c)), nil
		},
	},
	model.KindPriceVolumeTrend: {
		Params: nil,
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			return single("", indicator.PriceVolumeTrend(c)), nil
		},
	},
	model.KindVolumeOscillator: {
		Params: []ParamSchema{{"short", ParamNumber, 14.0}, {"long", ParamNumber, 28.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			schema := []ParamSchema{{"short", ParamNumber, 14.0}, {"long", ParamNumber, 28.0}}
			s, err := intArg(a, 0, schema)
			if err != nil {
				return nil, err
			}
			l, err := intArg(a, 1, schema)
			if err != nil {
				return nil, err
			}
			return single("", indicator.VolumeOscillator(c, s, l)), nil
		},
	},
	model.KindATR: {
		Params: []ParamSchema{{"period", ParamNumber, 14.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 14.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.ATR(c, p)), nil
		},
	},
	model.KindIchimoku: {
		Params: []ParamSchema{
			{"conversion", ParamNumber, 9.0}, {"base", ParamNumber, 26.0},
			{"spanB", ParamNumber, 52.0}, {"displacement", ParamNumber, 26.0},
		},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			schema := []ParamSchema{
				{"conversion", ParamNumber, 9.0}, {"base", ParamNumber, 26.0},
				{"spanB", ParamNumber, 52.0}, {"displacement", ParamNumber, 26.0},
			}
			conv, err := intArg(a, 0, schema)
			if err != nil {
				return nil, err
			}
			base, err := intArg(a, 1, schema)
			if err != nil {
				return nil, err
			}
			spanB, err := intArg(a, 2, schema)
			if err != nil {
				return nil, err
			}
			disp, err := intArg(a, 3, schema)
			if err != nil {
				return nil, err
			}
			out := indicator.Ichimoku(c, conv, base, spanB, disp)
			return map[string][]model.OptionalValue{
				"conversion":      out.Conversion,
				"base":            out.Base,
				"leading_span_a":  out.LeadingSpanA,
				"leading_span_b":  out.LeadingSpanB,
				"lagging_span":    out.LaggingSpan,
			}, nil
		},
	},
	model.KindGMMA: {
		Params: []ParamSchema{
			{"short", ParamArray, []int{3, 5, 8, 10, 12, 15}},
			{"long", ParamArray, []int{30, 35, 40, 45, 50, 60}},
		},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			schema := []ParamSchema{
				{"short", ParamArray, []int{3, 5, 8, 10, 12, 15}},
				{"long", ParamArray, []int{30, 35, 40, 45, 50, 60}},
			}
			short, err := listArg(a, 0, schema)
			if err != nil {
				return nil, err
			}
			long, err := listArg(a, 1, schema)
			if err != nil {
				return nil, err
			}
			out := indicator.GMMA(c, short, long)
			result := make(map[string][]model.OptionalValue, len(short)+len(long))
			for p, series := range out.Short {
				result["short."+strconv.Itoa(p)] = series
			}
			for p, series := range out.Long {
				result["long."+strconv.Itoa(p)] = series
			}
			return result, nil
		},
	},
	model.KindFibonacciRetrace: {
		Params: []ParamSchema{{"period", ParamNumber, 14.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 14.0}})
			if err != nil {
				return nil, err
			}
			out := indicator.FibonacciRetracement(c, p)
			result := make(map[string][]model.OptionalValue, len(out.Levels))
			for pct, series := range out.Levels {
				result[strconv.FormatFloat(pct, 'g', -1, 64)] = series
			}
			return result, nil
		},
	},
	model.KindKalmanFilter: {
		Params: []ParamSchema{{"measVar", ParamNumber, 1.0}, {"procVar", ParamNumber, 1.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			schema := []ParamSchema{{"measVar", ParamNumber, 1.0}, {"procVar", ParamNumber, 1.0}}
			mv, err := scalarArg(a, 0, schema)
			if err != nil {
				return nil, err
			}
			pv, err := scalarArg(a, 1, schema)
			if err != nil {
				return nil, err
			}
			return single("", indicator.KalmanFilter(c, mv, pv)), nil
		},
	},
	model.KindHeikinAshiSlope: {
		Params: []ParamSchema{{"period", ParamNumber, 10.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 10.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.HeikinAshiSlope(c, p)), nil
		},
	},
	model.KindZScore: {
		Params: []ParamSchema{{"period", ParamNumber, 20.0}},
		Invoke: func(c []model.Candle, a []model.ParamValue) (map[string][]model.OptionalValue, error) {
			p, err := intArg(a, 0, []ParamSchema{{"period", ParamNumber, 20.0}})
			if err != nil {
				return nil, err
			}
			return single("", indicator.ZScore(c, p)), nil
		},
	},
}
