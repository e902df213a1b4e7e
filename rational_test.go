package gainsym_test

import (
	"errors"
	"testing"

	"github.com/njchilds90/gainsym"
)

func TestCancel_CommonFactor(t *testing.T) {
	x := gainsym.S("x")
	e := gainsym.Quo(
		gainsym.Minus(gainsym.PowOf(x, gainsym.N(2)), gainsym.N(1)),
		gainsym.Minus(x, gainsym.N(1)),
	)
	got, err := gainsym.Cancel(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "x + 1" {
		t.Errorf("want x + 1, got %s", got)
	}
}

func TestCancel_Multivariate(t *testing.T) {
	x, y := gainsym.S("x"), gainsym.S("y")
	e := gainsym.Quo(
		gainsym.Minus(gainsym.PowOf(x, gainsym.N(2)), gainsym.PowOf(y, gainsym.N(2))),
		gainsym.AddOf(x, y),
	)
	got, err := gainsym.Cancel(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "x - y" {
		t.Errorf("want x - y, got %s", got)
	}
}

func TestCancel_MonicDenominator(t *testing.T) {
	x, y := gainsym.S("x"), gainsym.S("y")
	got, err := gainsym.Cancel(gainsym.Quo(x, gainsym.MulOf(gainsym.N(2), y)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "x/(2*y)" {
		t.Errorf("want x/(2*y), got %s", got)
	}
}

func TestCancel_CanonicalAcrossForms(t *testing.T) {
	x, y := gainsym.S("x"), gainsym.S("y")
	a := gainsym.Quo(
		gainsym.Minus(gainsym.PowOf(x, gainsym.N(2)), gainsym.PowOf(y, gainsym.N(2))),
		gainsym.Minus(x, y),
	)
	b := gainsym.AddOf(y, x)
	ca, err := gainsym.Cancel(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cb, err := gainsym.Cancel(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ca.String() != cb.String() {
		t.Errorf("canonical forms differ: %s vs %s", ca, cb)
	}
}

func TestCancel_NotRational(t *testing.T) {
	x, y := gainsym.S("x"), gainsym.S("y")
	for _, e := range []gainsym.Expr{gainsym.PowOf(x, y), gainsym.LnOf(x), gainsym.PowOf(x, gainsym.F(1, 2))} {
		if _, err := gainsym.Cancel(e); !errors.Is(err, gainsym.ErrNotRational) {
			t.Errorf("%s: want ErrNotRational, got %v", e, err)
		}
	}
}

func TestCancel_DivisionByZero(t *testing.T) {
	x, y := gainsym.S("x"), gainsym.S("y")
	_, err := gainsym.Cancel(gainsym.Quo(x, gainsym.Minus(y, y)))
	if !errors.Is(err, gainsym.ErrDivisionByZero) {
		t.Errorf("want ErrDivisionByZero, got %v", err)
	}
}

func TestSimplify_FallsBackForNonRational(t *testing.T) {
	x := gainsym.S("x")
	e := gainsym.AddOf(gainsym.LnOf(x), gainsym.LnOf(x))
	got := gainsym.Simplify(e)
	if got.String() != "2*ln(x)" {
		t.Errorf("want 2*ln(x), got %s", got)
	}
}

func TestTogether_SumOfReciprocals(t *testing.T) {
	x, y := gainsym.S("x"), gainsym.S("y")
	num, den, err := gainsym.Together(gainsym.AddOf(gainsym.Quo(gainsym.N(1), x), gainsym.Quo(gainsym.N(1), y)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num.String() != "x + y" {
		t.Errorf("want numerator x + y, got %s", num)
	}
	if den.String() != "x*y" {
		t.Errorf("want denominator x*y, got %s", den)
	}
}

func TestEquivalent(t *testing.T) {
	p := gainsym.MulOf(gainsym.S("N15"), gainsym.S("N56"))
	q := gainsym.MulOf(gainsym.S("N27"), gainsym.S("N78"))
	n39 := gainsym.S("N39")

	// (p*q - (p*q - p*N39)) / p == N39
	lhs := gainsym.Quo(gainsym.Minus(gainsym.MulOf(p, q), gainsym.Minus(gainsym.MulOf(p, q), gainsym.MulOf(p, n39))), p)
	if !gainsym.Equivalent(lhs, n39) {
		t.Errorf("%s should be equivalent to N39", lhs)
	}
	if gainsym.Equivalent(lhs, q) {
		t.Errorf("%s should not be equivalent to %s", lhs, q)
	}
	if !gainsym.IsZero(gainsym.Minus(lhs, n39)) {
		t.Errorf("difference should cancel to zero")
	}
}
