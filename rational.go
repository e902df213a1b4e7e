package gainsym

import (
	"fmt"
	"math/big"
)

// ============================================================
// ratFunc — canonical rational function num/den
// ============================================================

// ratFunc keeps gcd(num, den) = 1 and a monic denominator, so two equal
// rational functions always have identical num and den.
type ratFunc struct {
	num, den *poly
}

func ratConst(r *big.Rat) *ratFunc { return &ratFunc{num: constPoly(r), den: polyOne()} }
func ratVar(name string) *ratFunc  { return &ratFunc{num: varPoly(name), den: polyOne()} }
func ratZero() *ratFunc            { return &ratFunc{num: newPoly(), den: polyOne()} }
func ratOne() *ratFunc             { return ratConst(big.NewRat(1, 1)) }

func newRatFunc(num, den *poly) (*ratFunc, error) {
	if den.isZero() {
		return nil, ErrDivisionByZero
	}
	if num.isZero() {
		return ratZero(), nil
	}
	if !den.isConst() {
		g := gcdPoly(num, den)
		if !g.isConst() {
			num = num.mustDiv(g)
			den = den.mustDiv(g)
		}
	}
	lc := new(big.Rat).Inv(den.leadingTerm().coeff)
	return &ratFunc{num: num.scale(lc), den: den.scale(lc)}, nil
}

func (r *ratFunc) isZero() bool { return r.num.isZero() }

func (r *ratFunc) add(o *ratFunc) *ratFunc {
	var out *ratFunc
	var err error
	if r.den.equal(o.den) {
		out, err = newRatFunc(r.num.add(o.num), r.den)
	} else {
		out, err = newRatFunc(r.num.mul(o.den).add(o.num.mul(r.den)), r.den.mul(o.den))
	}
	if err != nil {
		panic("gainsym: zero denominator in canonical sum")
	}
	return out
}

func (r *ratFunc) neg() *ratFunc { return &ratFunc{num: r.num.neg(), den: r.den} }

func (r *ratFunc) sub(o *ratFunc) *ratFunc { return r.add(o.neg()) }

func (r *ratFunc) mul(o *ratFunc) *ratFunc {
	out, err := newRatFunc(r.num.mul(o.num), r.den.mul(o.den))
	if err != nil {
		panic("gainsym: zero denominator in canonical product")
	}
	return out
}

func (r *ratFunc) inv() (*ratFunc, error) {
	if r.isZero() {
		return nil, ErrDivisionByZero
	}
	return newRatFunc(r.den, r.num)
}

func (r *ratFunc) quo(o *ratFunc) (*ratFunc, error) {
	oi, err := o.inv()
	if err != nil {
		return nil, err
	}
	return r.mul(oi), nil
}

func (r *ratFunc) powInt(n int64) (*ratFunc, error) {
	base := r
	if n < 0 {
		inv, err := r.inv()
		if err != nil {
			return nil, err
		}
		base, n = inv, -n
	}
	out := ratOne()
	for i := int64(0); i < n; i++ {
		out = out.mul(base)
	}
	return out, nil
}

func (r *ratFunc) expr() Expr {
	if r.den.isConst() {
		return MulOf(NRat(new(big.Rat).Inv(r.den.constValue())), r.num.expr())
	}
	return Quo(r.num.expr(), r.den.expr())
}

// toRatFunc converts e into canonical form. Integer powers of rational
// expressions are the only powers accepted.
func toRatFunc(e Expr) (*ratFunc, error) {
	switch v := e.(type) {
	case *Num:
		return ratConst(v.val), nil
	case *Sym:
		return ratVar(v.name), nil
	case *Add:
		acc := ratZero()
		for _, t := range v.terms {
			r, err := toRatFunc(t)
			if err != nil {
				return nil, err
			}
			acc = acc.add(r)
		}
		return acc, nil
	case *Mul:
		acc := ratOne()
		for _, f := range v.factors {
			r, err := toRatFunc(f)
			if err != nil {
				return nil, err
			}
			acc = acc.mul(r)
		}
		return acc, nil
	case *Pow:
		n, ok := v.exp.(*Num)
		if !ok || !n.IsInteger() || !n.val.Num().IsInt64() {
			return nil, fmt.Errorf("%s: %w", v, ErrNotRational)
		}
		base, err := toRatFunc(v.base)
		if err != nil {
			return nil, err
		}
		out, err := base.powInt(n.val.Num().Int64())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v, err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s: %w", e, ErrNotRational)
}

// ============================================================
// Canonical simplification
// ============================================================

// Cancel rewrites e as a single reduced fraction p/q with gcd(p, q) = 1 and
// q monic in lex order. Equal rational functions give identical results.
func Cancel(e Expr) (Expr, error) {
	r, err := toRatFunc(e.Simplify())
	if err != nil {
		return nil, err
	}
	return r.expr(), nil
}

// Simplify returns the canonical form of e when e is a rational function
// and falls back to structural simplification otherwise.
func Simplify(e Expr) Expr {
	c, err := Cancel(e)
	if err != nil {
		return e.Simplify()
	}
	return c
}

// Together returns the canonical numerator and denominator of e.
func Together(e Expr) (num, den Expr, err error) {
	r, err := toRatFunc(e.Simplify())
	if err != nil {
		return nil, nil, err
	}
	return r.num.expr(), r.den.expr(), nil
}

// Equivalent reports whether a - b cancels to zero. Non-rational operands
// fall back to structural equality after simplification.
func Equivalent(a, b Expr) bool {
	r, err := toRatFunc(Minus(a, b))
	if err != nil {
		return a.Simplify().Equal(b.Simplify())
	}
	return r.isZero()
}

// IsZero reports whether e cancels to zero.
func IsZero(e Expr) bool { return Equivalent(e, N(0)) }
