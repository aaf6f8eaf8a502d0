package indicator

import (
	"stoxcore/internal/model"
	"stoxcore/internal/seriesutil"
)

// KalmanFilter is a 1-D Kalman smoother on close, with measurement and
// process variance as tunable parameters. Every position is present;
// the filter has no warm-up window.
func KalmanFilter(candles []model.Candle, measVar, procVar float64) []model.OptionalValue {
	closes := seriesutil.Closes(candles)
	out := make([]model.OptionalValue, len(closes))
	if len(closes) == 0 {
		return out
	}

	estimate := closes[0]
	errCov := 1.0
	out[0] = model.Some(estimate)

	for t := 1; t < len(closes); t++ {
		predCov := errCov + procVar
		gain := predCov / (predCov + measVar)
		estimate = estimate + gain*(closes[t]-estimate)
		errCov = (1 - gain) * predCov
		out[t] = model.Some(estimate)
	}
	return out
}
