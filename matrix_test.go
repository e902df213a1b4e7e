package gainsym_test

import (
	"errors"
	"testing"

	"github.com/njchilds90/gainsym"
)

func TestMatrix_Identity(t *testing.T) {
	if got := gainsym.Identity(2).String(); got != "[[1, 0], [0, 1]]" {
		t.Errorf("want [[1, 0], [0, 1]], got %s", got)
	}
}

func TestMatrix_Transpose(t *testing.T) {
	m := gainsym.MatrixFromSlice(2, 3, []gainsym.Expr{
		gainsym.N(1), gainsym.N(2), gainsym.N(3),
		gainsym.N(4), gainsym.N(5), gainsym.N(6),
	})
	tr := m.Transpose()
	if tr.Rows() != 3 || tr.Cols() != 2 {
		t.Fatalf("want 3x2, got %dx%d", tr.Rows(), tr.Cols())
	}
	if got := tr.String(); got != "[[1, 4], [2, 5], [3, 6]]" {
		t.Errorf("want [[1, 4], [2, 5], [3, 6]], got %s", got)
	}
}

func TestMatrix_Inverse_Numeric(t *testing.T) {
	m := gainsym.MatrixFromSlice(2, 2, []gainsym.Expr{
		gainsym.N(1), gainsym.N(2),
		gainsym.N(3), gainsym.N(4),
	})
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := inv.String(); got != "[[-2, 1], [3/2, -1/2]]" {
		t.Errorf("want [[-2, 1], [3/2, -1/2]], got %s", got)
	}
}

func TestMatrix_Inverse_Symbolic(t *testing.T) {
	a, b, c, d := gainsym.S("a"), gainsym.S("b"), gainsym.S("c"), gainsym.S("d")
	m := gainsym.MatrixFromSlice(2, 2, []gainsym.Expr{a, b, c, d})
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.MatMul(inv).Equivalent(gainsym.Identity(2)) {
		t.Errorf("M*M^-1 should be the identity, got %s", m.MatMul(inv).Simplify())
	}
	det := gainsym.Minus(gainsym.MulOf(a, d), gainsym.MulOf(b, c))
	if !gainsym.Equivalent(inv.Get(0, 0), gainsym.Quo(d, det)) {
		t.Errorf("want d/(a*d - b*c), got %s", inv.Get(0, 0))
	}
}

func TestMatrix_Inverse_NeedsRowSwap(t *testing.T) {
	x := gainsym.S("x")
	m := gainsym.MatrixFromSlice(2, 2, []gainsym.Expr{
		gainsym.N(0), x,
		x, gainsym.N(0),
	})
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.MatMul(inv).Equivalent(gainsym.Identity(2)) {
		t.Errorf("M*M^-1 should be the identity")
	}
}

func TestMatrix_Inverse_Singular(t *testing.T) {
	x, y := gainsym.S("x"), gainsym.S("y")
	m := gainsym.MatrixFromSlice(2, 2, []gainsym.Expr{
		x, y,
		gainsym.MulOf(gainsym.N(2), x), gainsym.MulOf(gainsym.N(2), y),
	})
	_, err := m.Inverse()
	if !errors.Is(err, gainsym.ErrSingular) {
		t.Errorf("want ErrSingular, got %v", err)
	}
}

func TestMatrix_Inverse_NonSquare(t *testing.T) {
	_, err := gainsym.NewMatrix(2, 3).Inverse()
	if !errors.Is(err, gainsym.ErrNonSquare) {
		t.Errorf("want ErrNonSquare, got %v", err)
	}
}

func TestMatrix_Det(t *testing.T) {
	a, b, c, d := gainsym.S("a"), gainsym.S("b"), gainsym.S("c"), gainsym.S("d")
	m := gainsym.MatrixFromSlice(2, 2, []gainsym.Expr{a, b, c, d})
	want := gainsym.Minus(gainsym.MulOf(a, d), gainsym.MulOf(b, c))
	if got := m.Det(); !gainsym.Equivalent(got, want) {
		t.Errorf("want %s, got %s", want, got)
	}
}

func TestMatrix_Det_Singular(t *testing.T) {
	x, y := gainsym.S("x"), gainsym.S("y")
	m := gainsym.MatrixFromSlice(2, 2, []gainsym.Expr{x, y, x, y})
	if got := m.Det(); got.String() != "0" {
		t.Errorf("want 0, got %s", got)
	}
}

func TestMatrix_Det_NonRationalFallsBack(t *testing.T) {
	x := gainsym.S("x")
	m := gainsym.MatrixFromSlice(2, 2, []gainsym.Expr{
		gainsym.LnOf(x), gainsym.N(1),
		gainsym.N(0), gainsym.N(2),
	})
	if got := m.Det(); got.String() != "2*ln(x)" {
		t.Errorf("want 2*ln(x), got %s", got)
	}
}

func TestMatrix_Simplify_Entrywise(t *testing.T) {
	x := gainsym.S("x")
	m := gainsym.ColumnVector(gainsym.Quo(
		gainsym.Minus(gainsym.PowOf(x, gainsym.N(2)), gainsym.N(1)),
		gainsym.AddOf(x, gainsym.N(1)),
	))
	if got := m.Simplify().Get(0, 0).String(); got != "x - 1" {
		t.Errorf("want x - 1, got %s", got)
	}
}

func TestMatrix_MatMul_DimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MatMul of 2x3 by 2x3 should panic")
		}
	}()
	gainsym.NewMatrix(2, 3).MatMul(gainsym.NewMatrix(2, 3))
}

func TestJacobian(t *testing.T) {
	x, y := gainsym.S("x"), gainsym.S("y")
	j := gainsym.Jacobian([]gainsym.Expr{gainsym.MulOf(x, y), gainsym.AddOf(x, y)}, []string{"x", "y"})
	if got := j.String(); got != "[[y, x], [1, 1]]" {
		t.Errorf("want [[y, x], [1, 1]], got %s", got)
	}
}
