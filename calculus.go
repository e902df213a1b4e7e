package gainsym

import "sort"

// ============================================================
// Top-level convenience functions
// ============================================================

func String(e Expr) string { return e.String() }
func LaTeX(e Expr) string  { return e.LaTeX() }

func Sub(expr Expr, varName string, value Expr) Expr {
	return expr.Sub(varName, value).Simplify()
}

// SubAll substitutes every name in values, in sorted name order.
func SubAll(expr Expr, values map[string]Expr) Expr {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	out := expr
	for _, name := range names {
		out = out.Sub(name, values[name])
	}
	return out.Simplify()
}

func Diff(expr Expr, varName string) Expr {
	return expr.Diff(varName).Simplify()
}

// Jacobian returns the m×n matrix of partial derivatives ∂exprs[i]/∂vars[j].
func Jacobian(exprs []Expr, varNames []string) *Matrix {
	mat := NewMatrix(len(exprs), len(varNames))
	for i, e := range exprs {
		for j, v := range varNames {
			mat.Set(i, j, Diff(e, v))
		}
	}
	return mat
}

// Expand multiplies out products and integer powers of sums. Rational
// expressions go through the polynomial form, so like terms are collected
// and a remaining denominator is expanded too.
func Expand(e Expr) Expr {
	e = e.Simplify()
	if r, err := toRatFunc(e); err == nil {
		if r.den.isConst() {
			return r.expr()
		}
		return Quo(r.num.expr(), r.den.expr())
	}
	return expandExpr(e).Simplify()
}

func expandExpr(e Expr) Expr {
	switch v := e.(type) {
	case *Mul:
		out := Expr(N(1))
		for _, f := range v.factors {
			out = distribute(out, expandExpr(f))
		}
		return out
	case *Add:
		newTerms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			newTerms[i] = expandExpr(t)
		}
		return AddOf(newTerms...)
	case *Pow:
		base := expandExpr(v.base)
		if _, ok := base.(*Add); ok {
			if n, ok := v.exp.(*Num); ok && n.IsInteger() {
				if k := n.val.Num().Int64(); k >= 2 && k <= 10 {
					out := Expr(N(1))
					for i := int64(0); i < k; i++ {
						out = distribute(out, base)
					}
					return out
				}
			}
		}
		return PowOf(base, expandExpr(v.exp))
	}
	return e
}

// distribute multiplies two expanded expressions term by term. Terms of an
// expanded sum hold no sums, so the products need no further expansion.
func distribute(a, b Expr) Expr {
	at, bt := addends(a), addends(b)
	terms := make([]Expr, 0, len(at)*len(bt))
	for _, x := range at {
		for _, y := range bt {
			terms = append(terms, MulOf(x, y))
		}
	}
	return AddOf(terms...)
}

func addends(e Expr) []Expr {
	if a, ok := e.(*Add); ok {
		return a.terms
	}
	return []Expr{e}
}

// ============================================================
// Free Symbols
// ============================================================

func FreeSymbols(e Expr) map[string]struct{} {
	result := map[string]struct{}{}
	collectSymbols(e, result)
	return result
}

// DependsOn reports whether e mentions any of names.
func DependsOn(e Expr, names ...string) bool {
	free := FreeSymbols(e)
	for _, n := range names {
		if _, ok := free[n]; ok {
			return true
		}
	}
	return false
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	case *Func:
		collectSymbols(v.arg, out)
	}
}

// ============================================================
// Equation
// ============================================================

type Equation struct{ LHS, RHS Expr }

func Eq(lhs, rhs Expr) *Equation { return &Equation{LHS: lhs, RHS: rhs} }
func (e *Equation) String() string {
	return e.LHS.String() + " = " + e.RHS.String()
}
func (e *Equation) LaTeX() string { return e.LHS.LaTeX() + " = " + e.RHS.LaTeX() }

// Residual returns LHS - RHS, the expression that equals zero.
func (e *Equation) Residual() Expr {
	return AddOf(e.LHS, MulOf(N(-1), e.RHS)).Simplify()
}
