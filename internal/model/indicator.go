package model

// IndicatorKind is the closed enumeration of supported indicators.
type IndicatorKind string

const (
	KindSMA                IndicatorKind = "SMA"
	KindEMA                IndicatorKind = "EMA"
	KindWMA                IndicatorKind = "WMA"
	KindDEMA               IndicatorKind = "DEMA"
	KindTEMA               IndicatorKind = "TEMA"
	KindHMA                IndicatorKind = "HMA"
	KindKAMA               IndicatorKind = "KAMA"
	KindFRAMA              IndicatorKind = "FRAMA"
	KindRSI                IndicatorKind = "RSI"
	KindStochastic         IndicatorKind = "STOCHASTIC"
	KindCCI                IndicatorKind = "CCI"
	KindWilliamsR          IndicatorKind = "WILLIAMS_R"
	KindMFI                IndicatorKind = "MFI"
	KindUltimateOsc        IndicatorKind = "ULTIMATE_OSC"
	KindDetrendedPriceOsc  IndicatorKind = "DETRENDED_PRICE_OSC"
	KindRateOfChange       IndicatorKind = "RATE_OF_CHANGE"
	KindMomentum           IndicatorKind = "MOMENTUM"
	KindTRIX               IndicatorKind = "TRIX"
	KindBollingerBands     IndicatorKind = "BOLLINGER_BANDS"
	KindPercentB           IndicatorKind = "PERCENT_B"
	KindMACD               IndicatorKind = "MACD"
	KindADX                IndicatorKind = "ADX"
	KindParabolicSAR       IndicatorKind = "PARABOLIC_SAR"
	KindChandelierExit     IndicatorKind = "CHANDELIER_EXIT"
	KindSchaffTrendCycle   IndicatorKind = "SCHAFF_TREND_CYCLE"
	KindVWAP               IndicatorKind = "VWAP"
	KindOBV                IndicatorKind = "OBV"
	KindCMF                IndicatorKind = "CMF"
	KindForceIndex         IndicatorKind = "FORCE_INDEX"
	KindEaseOfMovement     IndicatorKind = "EASE_OF_MOVEMENT"
	KindAccumDistLine      IndicatorKind = "ACCUM_DIST_LINE"
	KindPriceVolumeTrend   IndicatorKind = "PRICE_VOLUME_TREND"
	KindVolumeOscillator   IndicatorKind = "VOLUME_OSCILLATOR"
	KindATR                IndicatorKind = "ATR"
	KindIchimoku           IndicatorKind = "ICHIMOKU"
	KindGMMA               IndicatorKind = "GMMA"
	KindFibonacciRetrace   IndicatorKind = "FIBONACCI_RETRACEMENT"
	KindKalmanFilter       IndicatorKind = "KALMAN_FILTER"
	KindHeikinAshiSlope    IndicatorKind = "HEIKIN_ASHI_SLOPE"
	KindZScore             IndicatorKind = "Z_SCORE"
)

// IndicatorSpec is a parsed textual indicator invocation, e.g. "MACD(12,26,9)".
type IndicatorSpec struct {
	Kind          IndicatorKind
	Args          []ParamValue
	CanonicalName string
}

// ParamValue is a positional argument to an indicator: either a scalar
// decimal or a bracketed list of integers (GMMA's short/long period bundles).
type ParamValue struct {
	IsList bool
	Scalar float64
	List   []int
}
