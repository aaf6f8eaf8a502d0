package options

import (
	"math"
	"testing"

	"stoxcore/internal/model"
)

func assertClose(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.8f, want %.8f (diff=%.2e)", label, got, want, math.Abs(got-want))
	}
}

func TestPrice_ATMOneYear(t *testing.T) {
	call, err := Price(100, 100, 1, 0.05, 0.2, model.Call)
	if err != nil {
		t.Fatal(err)
	}
	put, err := Price(100, 100, 1, 0.05, 0.2, model.Put)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "call", call, 10.4506, 1e-3)
	assertClose(t, "put", put, 5.5735, 1e-3)
}

func TestPutCallParity(t *testing.T) {
	s, k, tYears, r, sigma := 87.0, 95.0, 0.75, 0.03, 0.35
	call, _ := Price(s, k, tYears, r, sigma, model.Call)
	put, _ := Price(s, k, tYears, r, sigma, model.Put)
	lhs := call - put
	rhs := s - k*math.Exp(-r*tYears)
	assertClose(t, "put-call parity", lhs, rhs, 1e-8)
}

func TestDelta_ATMOneYear(t *testing.T) {
	g, err := GreeksAt(100, 100, 1, 0.05, 0.2, model.Call)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "delta_call", g.Delta, 0.6368, 1e-3)
}

func TestGreeksIdentities(t *testing.T) {
	s, k, tYears, r, sigma := 100.0, 100.0, 1.0, 0.05, 0.2
	call, _ := GreeksAt(s, k, tYears, r, sigma, model.Call)
	put, _ := GreeksAt(s, k, tYears, r, sigma, model.Put)

	assertClose(t, "delta_call - delta_put", call.Delta-put.Delta, 1.0, 1e-9)
	assertClose(t, "gamma_call vs gamma_put", call.Gamma, put.Gamma, 1e-9)
	assertClose(t, "vega_call vs vega_put", call.Vega, put.Vega, 1e-9)
}

func TestIntrinsicAtExpiry(t *testing.T) {
	call, err := Price(110, 100, 0, 0.05, 0.2, model.Call)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "call intrinsic", call, 10, 1e-9)

	put, err := Price(90, 100, 0, 0.05, 0.2, model.Put)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "put intrinsic", put, 10, 1e-9)
}
