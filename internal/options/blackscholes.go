// Package options prices single-leg option positions and aggregates them
// into portfolio P&L curves and Greeks, using the closed-form
// Black-Scholes model. Nothing here touches I/O; every function is a
// pure, single-threaded computation over its arguments, matching the
// rest of the compute core.
package options

import (
	"math"

	"stoxcore/internal/coreerrors"
	"stoxcore/internal/model"
)

// normPDF is the standard normal density function.
func normPDF(x float64) float64 {
	return (1.0 / math.Sqrt(2*math.Pi)) * math.Exp(-0.5*x*x)
}

// normCDF approximates the standard normal cumulative distribution via
// Abramowitz and Stegun formula 26.2.17, whose absolute error is bounded
// by 7.5e-8 across the real line.
func normCDF(x float64) float64 {
	k := 1.0 / (1.0 + 0.2316419*math.Abs(x))
	poly := k * (0.319381530 + k*(-0.356563782+k*(1.781477937+k*(-1.821255978+1.330274429*k))))
	cdf := 1.0 - normPDF(x)*poly
	if x < 0 {
		return 1.0 - cdf
	}
	return cdf
}

// d1d2 returns the Black-Scholes d1 and d2 terms. Callers must ensure t>0.
func d1d2(s, k, t, r, sigma float64) (float64, float64) {
	sqrtT := math.Sqrt(t)
	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT
	return d1, d2
}

// Intrinsic returns the payoff of an option at expiry (t=0).
func Intrinsic(s, k float64, optType model.OptionType) float64 {
	if optType == model.Call {
		return math.Max(s-k, 0)
	}
	return math.Max(k-s, 0)
}

// Price returns the Black-Scholes theoretical price of a single contract.
// At t=0 it returns intrinsic value rather than dividing by zero.
func Price(s, k, t, r, sigma float64, optType model.OptionType) (float64, error) {
	if err := checkInputs(s, k, sigma); err != nil {
		return 0, err
	}
	if t == 0 {
		return Intrinsic(s, k, optType), nil
	}
	if t < 0 {
		return 0, coreerrors.NewOptionsInput("time to expiry must be >= 0")
	}
	d1, d2 := d1d2(s, k, t, r, sigma)
	discount := math.Exp(-r * t)
	if optType == model.Call {
		return s*normCDF(d1) - k*discount*normCDF(d2), nil
	}
	return k*discount*normCDF(-d2) - s*normCDF(-d1), nil
}

// GreeksAt computes Greeks for a single contract, expressed per year of
// time to expiry. At t=0 all Greeks except delta are reported as zero,
// and delta takes the limiting sign of the intrinsic payoff.
func GreeksAt(s, k, t, r, sigma float64, optType model.OptionType) (model.Greeks, error) {
	if err := checkInputs(s, k, sigma); err != nil {
		return model.Greeks{}, err
	}
	if t < 0 {
		return model.Greeks{}, coreerrors.NewOptionsInput("time to expiry must be >= 0")
	}
	if t == 0 {
		return intrinsicGreeks(s, k, optType), nil
	}

	sqrtT := math.Sqrt(t)
	d1, d2 := d1d2(s, k, t, r, sigma)
	discount := math.Exp(-r * t)
	pdf := normPDF(d1)

	var delta, theta, rho float64
	if optType == model.Call {
		delta = normCDF(d1)
		theta = -(s*pdf*sigma)/(2*sqrtT) - r*k*discount*normCDF(d2)
		rho = k * t * discount * normCDF(d2)
	} else {
		delta = normCDF(d1) - 1.0
		theta = -(s*pdf*sigma)/(2*sqrtT) + r*k*discount*normCDF(-d2)
		rho = -k * t * discount * normCDF(-d2)
	}
	gamma := pdf / (s * sigma * sqrtT)
	vega := s * pdf * sqrtT

	return model.Greeks{Delta: delta, Gamma: gamma, Theta: theta, Vega: vega, Rho: rho}, nil
}

func intrinsicGreeks(s, k float64, optType model.OptionType) model.Greeks {
	var delta float64
	if optType == model.Call {
		if s > k {
			delta = 1
		}
	} else {
		if s < k {
			delta = -1
		}
	}
	return model.Greeks{Delta: delta}
}

func checkInputs(s, k, sigma float64) error {
	if s <= 0 {
		return coreerrors.NewOptionsInput("underlying price must be > 0")
	}
	if k <= 0 {
		return coreerrors.NewOptionsInput("strike must be > 0")
	}
	if sigma <= 0 {
		return coreerrors.NewOptionsInput("volatility must be > 0")
	}
	return nil
}
