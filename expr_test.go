package gainsym_test

import (
	"testing"

	"github.com/njchilds90/gainsym"
)

// ============================================================
// Num tests
// ============================================================

func TestNum_Integer(t *testing.T) {
	n := gainsym.N(42)
	if n.String() != "42" {
		t.Errorf("want 42, got %s", n.String())
	}
}

func TestNum_Rational(t *testing.T) {
	n := gainsym.F(1, 2)
	if n.String() != "1/2" {
		t.Errorf("want 1/2, got %s", n.String())
	}
}

func TestNum_LaTeX_Negative(t *testing.T) {
	n := gainsym.F(-2, 5)
	if n.LaTeX() != `-\frac{2}{5}` {
		t.Errorf("want -\\frac{2}{5}, got %s", n.LaTeX())
	}
}

func TestNum_ZeroDenominatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("F(1, 0) should panic")
		}
	}()
	gainsym.F(1, 0)
}

// ============================================================
// Sym tests
// ============================================================

func TestSym_LaTeX_Subscript(t *testing.T) {
	cases := map[string]string{
		"N15":   "N_{15}",
		"N1012": "N_{1012}",
		"a":     "a",
		"42":    "42",
	}
	for name, want := range cases {
		if got := gainsym.S(name).LaTeX(); got != want {
			t.Errorf("%s: want %s, got %s", name, want, got)
		}
	}
}

func TestSymbols_Order(t *testing.T) {
	syms := gainsym.Symbols("a", "b", "c")
	if len(syms) != 3 || syms[0].Name() != "a" || syms[2].Name() != "c" {
		t.Errorf("Symbols should keep declaration order, got %v", syms)
	}
}

// ============================================================
// Add tests
// ============================================================

func TestAdd_LikeTerms(t *testing.T) {
	x := gainsym.S("x")
	got := gainsym.AddOf(x, x, x, gainsym.N(2))
	if got.String() != "3*x + 2" {
		t.Errorf("want 3*x + 2, got %s", got)
	}
}

func TestAdd_CollapseToZero(t *testing.T) {
	x := gainsym.S("x")
	got := gainsym.Minus(x, x)
	if got.String() != "0" {
		t.Errorf("want 0, got %s", got)
	}
}

func TestMinus_String(t *testing.T) {
	got := gainsym.Minus(gainsym.S("x"), gainsym.S("y"))
	if got.String() != "x - y" {
		t.Errorf("want x - y, got %s", got)
	}
}

// ============================================================
// Mul tests
// ============================================================

func TestMul_MergesEqualBases(t *testing.T) {
	x := gainsym.S("x")
	if got := gainsym.MulOf(x, x); got.String() != "x^2" {
		t.Errorf("want x^2, got %s", got)
	}
	if got := gainsym.Quo(x, x); got.String() != "1" {
		t.Errorf("want 1, got %s", got)
	}
}

func TestMul_CancelsSharedFactors(t *testing.T) {
	n27, n78, n39, n911 := gainsym.S("N27"), gainsym.S("N78"), gainsym.S("N39"), gainsym.S("N911")
	num := gainsym.MulOf(n78, n27, n911)
	den := gainsym.MulOf(gainsym.MulOf(n27, n78), gainsym.MulOf(n39, n911))
	got := gainsym.Quo(num, den)
	if got.String() != "1/N39" {
		t.Errorf("want 1/N39, got %s", got)
	}
}

func TestMul_FractionString(t *testing.T) {
	x, y, z := gainsym.S("x"), gainsym.S("y"), gainsym.S("z")
	if got := gainsym.Quo(x, gainsym.MulOf(y, z)); got.String() != "x/(y*z)" {
		t.Errorf("want x/(y*z), got %s", got)
	}
	if got := gainsym.MulOf(gainsym.F(1, 2), x); got.String() != "x/2" {
		t.Errorf("want x/2, got %s", got)
	}
	if got := gainsym.Neg(gainsym.Quo(x, y)); got.String() != "-x/y" {
		t.Errorf("want -x/y, got %s", got)
	}
}

func TestMul_ZeroCollapse(t *testing.T) {
	got := gainsym.MulOf(gainsym.N(0), gainsym.S("x"), gainsym.S("y"))
	if got.String() != "0" {
		t.Errorf("want 0, got %s", got)
	}
}

func TestMul_LaTeX_Fraction(t *testing.T) {
	got := gainsym.Quo(gainsym.S("N78"), gainsym.S("N39")).LaTeX()
	if got != `\frac{N_{78}}{N_{39}}` {
		t.Errorf("want \\frac{N_{78}}{N_{39}}, got %s", got)
	}
}

// ============================================================
// Pow tests
// ============================================================

func TestPow_DistributesOverProduct(t *testing.T) {
	x, y := gainsym.S("x"), gainsym.S("y")
	got := gainsym.PowOf(gainsym.MulOf(x, y), gainsym.N(2))
	if got.String() != "x^2*y^2" {
		t.Errorf("want x^2*y^2, got %s", got)
	}
}

func TestPow_NumericExact(t *testing.T) {
	got := gainsym.PowOf(gainsym.N(2), gainsym.N(-2))
	if got.String() != "1/4" {
		t.Errorf("want 1/4, got %s", got)
	}
}

func TestPow_ZeroToNegativeStaysUnevaluated(t *testing.T) {
	got := gainsym.PowOf(gainsym.N(0), gainsym.N(-1))
	if _, ok := got.(*gainsym.Pow); !ok {
		t.Errorf("0^-1 should stay a power, got %s", got)
	}
	if _, ok := got.Eval(); ok {
		t.Errorf("0^-1 should not evaluate")
	}
}

func TestEval_IrrationalStaysUnevaluated(t *testing.T) {
	for _, e := range []gainsym.Expr{
		gainsym.PowOf(gainsym.N(2), gainsym.F(1, 2)),
		gainsym.LnOf(gainsym.N(2)),
		gainsym.AddOf(gainsym.N(1), gainsym.LnOf(gainsym.N(3))),
	} {
		if v, ok := e.Eval(); ok {
			t.Errorf("%s: want no exact value, got %s", e, v)
		}
	}
	if v, ok := gainsym.PowOf(gainsym.F(4, 9), gainsym.N(-2)).Eval(); !ok || v.String() != "81/16" {
		t.Errorf("want 81/16, got %v", v)
	}
}

func TestFunc_Diff_Logarithm(t *testing.T) {
	x := gainsym.S("x")
	got := gainsym.Diff(gainsym.LnOf(gainsym.PowOf(x, gainsym.N(2))), "x")
	if got.String() != "2/x" {
		t.Errorf("want 2/x, got %s", got)
	}
}

func TestPow_Diff_PowerRule(t *testing.T) {
	x := gainsym.S("x")
	got := gainsym.Diff(gainsym.PowOf(x, gainsym.N(3)), "x")
	if got.String() != "3*x^2" {
		t.Errorf("want 3*x^2, got %s", got)
	}
}

func TestPow_Diff_SymbolicExponent(t *testing.T) {
	x, y := gainsym.S("x"), gainsym.S("y")
	got := gainsym.Diff(gainsym.PowOf(x, y), "y")
	want := gainsym.MulOf(gainsym.PowOf(x, y), gainsym.LnOf(x))
	if !got.Equal(want) {
		t.Errorf("want %s, got %s", want, got)
	}
}

// ============================================================
// Sub / Eval / Expand
// ============================================================

func TestSubAll_EvalExact(t *testing.T) {
	x, y := gainsym.S("x"), gainsym.S("y")
	e := gainsym.Quo(gainsym.AddOf(x, y), gainsym.MulOf(x, y))
	got := gainsym.SubAll(e, map[string]gainsym.Expr{"x": gainsym.N(2), "y": gainsym.N(3)})
	v, ok := got.Eval()
	if !ok || v.String() != "5/6" {
		t.Errorf("want 5/6, got %s", got)
	}
}

func TestExpand_DifferenceOfSquares(t *testing.T) {
	x := gainsym.S("x")
	e := gainsym.MulOf(gainsym.AddOf(x, gainsym.N(1)), gainsym.AddOf(x, gainsym.N(-1)))
	got := gainsym.Expand(e)
	if got.String() != "x^2 - 1" {
		t.Errorf("want x^2 - 1, got %s", got)
	}
}

func TestExpand_Powers(t *testing.T) {
	x := gainsym.S("x")
	cases := []struct {
		in   gainsym.Expr
		want string
	}{
		{gainsym.PowOf(x, gainsym.N(2)), "x^2"},
		{gainsym.PowOf(gainsym.AddOf(x, gainsym.N(1)), gainsym.N(2)), "2*x + x^2 + 1"},
		{gainsym.MulOf(x, x, gainsym.AddOf(x, gainsym.N(1))), "x^2 + x^3"},
	}
	for _, c := range cases {
		if got := gainsym.Expand(c.in); got.String() != c.want {
			t.Errorf("Expand(%s): want %s, got %s", c.in, c.want, got)
		}
	}
}

func TestExpand_Logarithm(t *testing.T) {
	x := gainsym.S("x")
	lnx := gainsym.LnOf(x)
	got := gainsym.Expand(gainsym.MulOf(lnx, gainsym.AddOf(x, gainsym.N(1))))
	if got.String() != "ln(x) + ln(x)*x" {
		t.Errorf("want ln(x) + ln(x)*x, got %s", got)
	}
	got = gainsym.Expand(gainsym.PowOf(gainsym.AddOf(lnx, gainsym.N(1)), gainsym.N(2)))
	if got.String() != "2*ln(x) + ln(x)^2 + 1" {
		t.Errorf("want 2*ln(x) + ln(x)^2 + 1, got %s", got)
	}
}

func TestFreeSymbols(t *testing.T) {
	e := gainsym.AddOf(gainsym.MulOf(gainsym.S("a"), gainsym.S("N15")), gainsym.S("A"))
	free := gainsym.FreeSymbols(e)
	for _, name := range []string{"a", "N15", "A"} {
		if _, ok := free[name]; !ok {
			t.Errorf("missing %s in %v", name, free)
		}
	}
	if !gainsym.DependsOn(e, "b", "a") {
		t.Errorf("DependsOn should find a")
	}
	if gainsym.DependsOn(e, "b", "c") {
		t.Errorf("DependsOn should not find b or c")
	}
}

func TestEquation_Residual(t *testing.T) {
	a, n15, bigA := gainsym.S("a"), gainsym.S("N15"), gainsym.S("A")
	eq := gainsym.Eq(gainsym.MulOf(a, n15), bigA)
	if eq.String() != "N15*a = A" {
		t.Errorf("want N15*a = A, got %s", eq)
	}
	res := eq.Residual()
	if !gainsym.Equivalent(res, gainsym.Minus(gainsym.MulOf(a, n15), bigA)) {
		t.Errorf("residual should be LHS - RHS, got %s", res)
	}
}
