package derive

import (
	"fmt"

	"github.com/njchilds90/gainsym"
)

// Unknowns and Targets name the variables of the linear system.
var (
	Unknowns = []string{"a", "b", "c", "d"}
	Targets  = []string{"A", "B", "C", "D"}
)

// System is the linear change of variables between a,b,c,d and A,B,C,D.
type System struct {
	Int1, Int2 gainsym.Expr
	// Equations are equ1..equ4, each an expression equal to zero.
	Equations [4]gainsym.Expr

	T1 *gainsym.Matrix // coefficients of a,b,c,d
	X1 *gainsym.Matrix // right-hand side, T1·u = X1
	T2 *gainsym.Matrix // T1 in canonical form
	T3 *gainsym.Matrix // T2⁻¹
}

// SolveSystem builds equ1..equ4 for n and inverts their coefficient matrix.
// A singular T2 is reported as an error wrapping gainsym.ErrSingular.
func SolveSystem(n Network) (*System, error) {
	u := gainsym.Symbols(Unknowns...)
	tg := gainsym.Symbols(Targets...)
	a, b, c, d := u[0], u[1], u[2], u[3]
	mul, minus, add := gainsym.MulOf, gainsym.Minus, gainsym.AddOf
	half := gainsym.F(1, 2)

	ap := mul(a, n.N15, n.N56)
	s := &System{}
	s.Int1 = mul(minus(mul(minus(c, ap), n.N39), mul(minus(b, ap), n.N27, n.N78)), n.N911)
	s.Int2 = mul(minus(mul(minus(d, ap), n.N410), mul(minus(b, ap), n.N27, n.N78)), n.N1012)

	lhs := [4]gainsym.Expr{
		ap,
		mul(minus(b, ap), n.N27, n.N78),
		mul(half, add(s.Int1, s.Int2)),
		mul(half, minus(s.Int1, s.Int2)),
	}
	for i := range lhs {
		s.Equations[i] = gainsym.Eq(lhs[i], tg[i]).Residual()
	}

	var err error
	s.T1, s.X1, err = gainsym.LinearEqToMatrix(s.Equations[:], Unknowns)
	if err != nil {
		return nil, fmt.Errorf("linear system: %w", err)
	}
	s.T2 = s.T1.Simplify()

	if s.T3, err = s.T2.Inverse(); err != nil {
		return nil, fmt.Errorf("linear system: %w", err)
	}
	return s, nil
}

// Verify checks that T1·u - x1 reproduces every equation and that T2·T3 is
// the identity.
func (s *System) Verify() error {
	u := make([]gainsym.Expr, len(Unknowns))
	for i, name := range Unknowns {
		u[i] = gainsym.S(name)
	}
	back := s.T1.MatMul(gainsym.ColumnVector(u...)).MatSub(s.X1)
	for i, eq := range s.Equations {
		if !gainsym.IsZero(gainsym.Minus(back.Get(i, 0), eq)) {
			return fmt.Errorf("row %d does not reproduce equ%d: %w", i+1, i+1, ErrVerification)
		}
	}

	n := s.T2.Rows()
	if !s.T2.MatMul(s.T3).Equivalent(gainsym.Identity(n)) {
		return fmt.Errorf("T2·T3 is not the %dx%d identity: %w", n, n, ErrVerification)
	}
	return nil
}
