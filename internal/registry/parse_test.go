package registry

import (
	"testing"

	"stoxcore/internal/coreerrors"
	"stoxcore/internal/model"
)

func TestParseSpec_NoArgs(t *testing.T) {
	kind, args, err := ParseSpec("VWAP")
	if err != nil {
		t.Fatal(err)
	}
	if kind != model.KindVWAP {
		t.Errorf("got kind %q", kind)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestParseSpec_ScalarArgs(t *testing.T) {
	kind, args, err := ParseSpec("MACD(12,26,9)")
	if err != nil {
		t.Fatal(err)
	}
	if kind != model.KindMACD {
		t.Errorf("got kind %q", kind)
	}
	want := []float64{12, 26, 9}
	if len(args) != len(want) {
		t.Fatalf("got %d args, want %d", len(args), len(want))
	}
	for i, w := range want {
		if args[i].Scalar != w {
			t.Errorf("arg[%d] = %v, want %v", i, args[i].Scalar, w)
		}
	}
}

func TestParseSpec_BracketedLists(t *testing.T) {
	kind, args, err := ParseSpec("GMMA([3,5,8],[30,35,40])")
	if err != nil {
		t.Fatal(err)
	}
	if kind != model.KindGMMA {
		t.Errorf("got kind %q", kind)
	}
	if len(args) != 2 || !args[0].IsList || !args[1].IsList {
		t.Fatalf("expected two list args, got %v", args)
	}
	if len(args[0].List) != 3 || args[0].List[1] != 5 {
		t.Errorf("short periods parsed wrong: %v", args[0].List)
	}
}

func TestParseSpec_UnbalancedParens(t *testing.T) {
	_, _, err := ParseSpec("RSI(14")
	if !coreerrors.Is(err, coreerrors.IndicatorParseError) {
		t.Fatalf("expected IndicatorParseError, got %v", err)
	}
}

func TestParseSpec_NonNumericArg(t *testing.T) {
	_, _, err := ParseSpec("RSI(abc)")
	if !coreerrors.Is(err, coreerrors.IndicatorParseError) {
		t.Fatalf("expected IndicatorParseError, got %v", err)
	}
}

func TestBind_UnknownKind(t *testing.T) {
	_, err := Bind("NOT_A_REAL_INDICATOR(5)")
	if !coreerrors.Is(err, coreerrors.IndicatorUnknown) {
		t.Fatalf("expected IndicatorUnknown, got %v", err)
	}
}

func TestBind_InvalidPeriod(t *testing.T) {
	_, err := Bind("RSI(0)")
	if !coreerrors.Is(err, coreerrors.IndicatorParamError) {
		t.Fatalf("expected IndicatorParamError, got %v", err)
	}
}

func TestBind_FillsDefaultsAndRoundTrips(t *testing.T) {
	spec, err := Bind("RSI")
	if err != nil {
		t.Fatal(err)
	}
	if spec.CanonicalName != "RSI(14)" {
		t.Errorf("canonical name = %q, want RSI(14)", spec.CanonicalName)
	}

	reparsedKind, reparsedArgs, err := ParseSpec(spec.CanonicalName)
	if err != nil {
		t.Fatal(err)
	}
	if reparsedKind != spec.Kind {
		t.Errorf("round-trip kind mismatch: %q vs %q", reparsedKind, spec.Kind)
	}
	if len(reparsedArgs) != len(spec.Args) || reparsedArgs[0].Scalar != spec.Args[0].Scalar {
		t.Errorf("round-trip args mismatch: %v vs %v", reparsedArgs, spec.Args)
	}
}

func TestBind_ParabolicSARStepRange(t *testing.T) {
	if _, err := Bind("PARABOLIC_SAR(1.5,0.2)"); !coreerrors.Is(err, coreerrors.IndicatorParamError) {
		t.Fatalf("expected IndicatorParamError for step > 1, got %v", err)
	}
}
