package gainsym

import "fmt"

// ============================================================
// Linear systems
// ============================================================

// LinearEqToMatrix converts equations eqs[i] = 0, linear in unknowns, into
// the pair (A, b) with A·u = b. Coefficients are taken as ∂eqs[i]/∂u[j],
// so A is the Jacobian of the system, and b[i] = -eqs[i] with every
// unknown set to zero. A·u - b reproduces eqs exactly.
func LinearEqToMatrix(eqs []Expr, unknowns []string) (*Matrix, *Matrix, error) {
	if len(unknowns) == 0 {
		return nil, nil, ErrNoUnknowns
	}
	jac := Jacobian(eqs, unknowns)
	a := NewMatrix(len(eqs), len(unknowns))
	b := NewMatrix(len(eqs), 1)
	for i, eq := range eqs {
		for j, u := range unknowns {
			c, err := Cancel(jac.Get(i, j))
			if err != nil {
				return nil, nil, fmt.Errorf("equation %d, unknown %s: %w", i+1, u, err)
			}
			if DependsOn(c, unknowns...) {
				return nil, nil, fmt.Errorf("equation %d: coefficient of %s is %s: %w", i+1, u, c, ErrNonLinear)
			}
			a.Set(i, j, c)
		}
		rest := eq
		for _, u := range unknowns {
			rest = rest.Sub(u, N(0))
		}
		c, err := Cancel(Neg(rest))
		if err != nil {
			return nil, nil, fmt.Errorf("equation %d: %w", i+1, err)
		}
		b.Set(i, 0, c)
	}
	return a, b, nil
}

// LinearSystem is LinearEqToMatrix for equations in LHS = RHS form.
func LinearSystem(eqs []*Equation, unknowns []string) (*Matrix, *Matrix, error) {
	residuals := make([]Expr, len(eqs))
	for i, eq := range eqs {
		residuals[i] = eq.Residual()
	}
	return LinearEqToMatrix(residuals, unknowns)
}

// Solve returns the unique solution of A·u = b for square, non-singular A.
func Solve(a, b *Matrix) (*Matrix, error) {
	if a.Rows() != b.Rows() || b.Cols() != 1 {
		return nil, fmt.Errorf("solve %dx%d with %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	inv, err := a.Inverse()
	if err != nil {
		return nil, err
	}
	return inv.MatMul(b).Simplify(), nil
}
