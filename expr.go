// Package gainsym provides an exact symbolic algebra kernel for deriving
// closed-form gain ratios and linear changes of variables.
//
// Design goals:
//   - Exact rational arithmetic (math/big.Rat)
//   - Canonical rational-function simplification via multivariate GCD
//   - Deterministic output: plain text, 2-D pretty print, LaTeX and JSON
//   - Symbolic matrices and linear systems with typed errors
package gainsym

import (
	"math/big"
	"sort"
	"strings"
)

// ============================================================
// Core Interface
// ============================================================

type Expr interface {
	Simplify() Expr
	String() string
	LaTeX() string
	Sub(varName string, value Expr) Expr
	Diff(varName string) Expr
	Eval() (*Num, bool)
	Equal(other Expr) bool
	exprType() string
	toJSON() map[string]interface{}
}

// ============================================================
// Num — exact rational number
// ============================================================

type Num struct{ val *big.Rat }

func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }
func F(p, q int64) *Num {
	if q == 0 {
		panic("gainsym: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// NRat copies r into a new Num.
func NRat(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }

func (n *Num) Simplify() Expr        { return n }
func (n *Num) Sub(string, Expr) Expr { return n }
func (n *Num) Diff(string) Expr      { return N(0) }
func (n *Num) Eval() (*Num, bool)    { return n, true }
func (n *Num) Equal(other Expr) bool { o, ok := other.(*Num); return ok && n.val.Cmp(o.val) == 0 }
func (n *Num) exprType() string      { return "num" }
func (n *Num) Float64() float64      { f, _ := n.val.Float64(); return f }
func (n *Num) IsZero() bool          { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool           { return n.val.Cmp(new(big.Rat).SetInt64(1)) == 0 }
func (n *Num) IsNegOne() bool        { return n.val.Cmp(new(big.Rat).SetInt64(-1)) == 0 }
func (n *Num) IsInteger() bool       { return n.val.IsInt() }
func (n *Num) Rat() *big.Rat         { return new(big.Rat).Set(n.val) }
func (n *Num) IsPositive() bool      { return n.val.Sign() > 0 }
func (n *Num) IsNegative() bool      { return n.val.Sign() < 0 }

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return sign + "\\frac{" + v.Num().String() + "}{" + v.Denom().String() + "}"
}

func (n *Num) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "num", "value": n.String()}
}

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }
func numRecip(a *Num) *Num {
	if a.IsZero() {
		panic("gainsym: division by zero")
	}
	return &Num{val: new(big.Rat).Inv(a.val)}
}

// numPow raises b to an integer power exactly. b must be non-zero when e < 0.
func numPow(b *Num, e int64) *Num {
	if e < 0 {
		return numRecip(numPow(b, -e))
	}
	x := big.NewInt(e)
	num := new(big.Int).Exp(b.val.Num(), x, nil)
	den := new(big.Int).Exp(b.val.Denom(), x, nil)
	return &Num{val: new(big.Rat).SetFrac(num, den)}
}

// ============================================================
// Sym — symbolic variable
// ============================================================

type Sym struct{ name string }

func S(name string) *Sym      { return &Sym{name: name} }
func (s *Sym) Simplify() Expr { return s }
func (s *Sym) String() string { return s.name }
func (s *Sym) LaTeX() string  { return latexName(s.name) }
func (s *Sym) Eval() (*Num, bool) {
	return nil, false
}
func (s *Sym) Equal(other Expr) bool { o, ok := other.(*Sym); return ok && s.name == o.name }
func (s *Sym) exprType() string      { return "sym" }
func (s *Sym) Name() string          { return s.name }
func (s *Sym) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "sym", "name": s.name}
}
func (s *Sym) Sub(varName string, value Expr) Expr {
	if s.name == varName {
		return value
	}
	return s
}
func (s *Sym) Diff(varName string) Expr {
	if s.name == varName {
		return N(1)
	}
	return N(0)
}

// Symbols declares one symbol per name, in order.
func Symbols(names ...string) []*Sym {
	out := make([]*Sym, len(names))
	for i, name := range names {
		out[i] = S(name)
	}
	return out
}

// latexName renders a trailing digit run as a subscript: N15 -> N_{15}.
func latexName(name string) string {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == 0 || i == len(name) {
		return name
	}
	return name[:i] + "_{" + name[i:] + "}"
}

// ============================================================
// Add — sum of terms
// ============================================================

type Add struct{ terms []Expr }

func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

// Minus returns a - b.
func Minus(a, b Expr) Expr { return AddOf(a, Neg(b)) }

// Neg returns -a.
func Neg(a Expr) Expr { return MulOf(N(-1), a) }

func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}

	// Like terms are grouped by the printed form of their non-numeric part.
	type like struct {
		coeff *Num
		rest  Expr
	}
	numAccum := N(0)
	groups := map[string]*like{}
	keys := []string{}
	for _, t := range flat {
		if v, ok := t.(*Num); ok {
			numAccum = numAdd(numAccum, v)
			continue
		}
		coeff, rest := extractCoefficient(t)
		key := rest.String()
		g, seen := groups[key]
		if !seen {
			g = &like{coeff: N(0), rest: rest}
			groups[key] = g
			keys = append(keys, key)
		}
		g.coeff = numAdd(g.coeff, coeff)
	}
	sort.Strings(keys)

	result := make([]Expr, 0, len(keys)+1)
	for _, k := range keys {
		g := groups[k]
		switch {
		case g.coeff.IsZero():
		case g.coeff.IsOne():
			result = append(result, g.rest)
		default:
			result = append(result, MulOf(g.coeff, g.rest))
		}
	}
	if !numAccum.IsZero() {
		result = append(result, numAccum)
	}
	if len(result) == 0 {
		return N(0)
	}
	if len(result) == 1 {
		return result[0]
	}
	return &Add{terms: result}
}

func (a *Add) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range a.terms {
		s := t.String()
		switch {
		case i == 0:
			sb.WriteString(s)
		case strings.HasPrefix(s, "-"):
			sb.WriteString(" - " + s[1:])
		default:
			sb.WriteString(" + " + s)
		}
	}
	return sb.String()
}

func (a *Add) LaTeX() string {
	var sb strings.Builder
	for i, t := range a.terms {
		s := t.LaTeX()
		switch {
		case i == 0:
			sb.WriteString(s)
		case strings.HasPrefix(s, "-"):
			sb.WriteString(" - " + s[1:])
		default:
			sb.WriteString(" + " + s)
		}
	}
	return sb.String()
}

func (a *Add) Sub(varName string, value Expr) Expr {
	newTerms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		newTerms[i] = t.Sub(varName, value)
	}
	return AddOf(newTerms...)
}

func (a *Add) Diff(varName string) Expr {
	dTerms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		dTerms[i] = t.Diff(varName)
	}
	return AddOf(dTerms...)
}

func (a *Add) Eval() (*Num, bool) {
	acc := N(0)
	for _, t := range a.terms {
		v, ok := t.Eval()
		if !ok {
			return nil, false
		}
		acc = numAdd(acc, v)
	}
	return acc, true
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) exprType() string { return "add" }
func (a *Add) toJSON() map[string]interface{} {
	ts := make([]map[string]interface{}, len(a.terms))
	for i, t := range a.terms {
		ts[i] = t.toJSON()
	}
	return map[string]interface{}{"type": "add", "terms": ts}
}
func (a *Add) Terms() []Expr { return a.terms }

// ============================================================
// Mul — product of factors
// ============================================================

type Mul struct{ factors []Expr }

func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

// Quo returns a / b.
func Quo(a, b Expr) Expr { return MulOf(a, PowOf(b, N(-1))) }

func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}

	// Equal bases are merged by summing their exponents: x*x^-1 -> 1.
	type group struct {
		base Expr
		exps []Expr
	}
	coeff := N(1)
	groups := map[string]*group{}
	keys := []string{}
	for _, f := range flat {
		if v, ok := f.(*Num); ok {
			coeff = numMul(coeff, v)
			continue
		}
		base, exp := f, Expr(N(1))
		if p, ok := f.(*Pow); ok {
			base, exp = p.base, p.exp
		}
		key := base.String()
		g, seen := groups[key]
		if !seen {
			g = &group{base: base}
			groups[key] = g
			keys = append(keys, key)
		}
		g.exps = append(g.exps, exp)
	}
	if coeff.IsZero() {
		return N(0)
	}

	others := make([]Expr, 0, len(keys))
	regroup := false
	for _, k := range keys {
		g := groups[k]
		p := PowOf(g.base, AddOf(g.exps...))
		switch v := p.(type) {
		case *Num:
			coeff = numMul(coeff, v)
		case *Mul:
			regroup = true
			others = append(others, v)
		default:
			others = append(others, p)
		}
	}
	if regroup {
		return MulOf(append([]Expr{coeff}, others...)...)
	}
	if coeff.IsZero() {
		return N(0)
	}
	if len(others) == 0 {
		return coeff
	}

	// Precompute sort keys to avoid repeated String() calls in comparator.
	type keyed struct {
		e   Expr
		key string
	}
	ks := make([]keyed, len(others))
	for i, e := range others {
		ks[i] = keyed{e: e, key: e.String()}
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	sortedOthers := make([]Expr, len(ks))
	for i := range ks {
		sortedOthers[i] = ks[i].e
	}
	others = sortedOthers

	if coeff.IsOne() {
		if len(others) == 1 {
			return others[0]
		}
		return &Mul{factors: others}
	}
	return &Mul{factors: append([]Expr{coeff}, others...)}
}

// fractionParts splits a product into a sign, numerator factors and
// denominator factors. Negative integer powers move to the denominator.
func fractionParts(m *Mul) (neg bool, num, den []Expr) {
	for _, f := range m.factors {
		switch v := f.(type) {
		case *Num:
			r := v.Rat()
			if r.Sign() < 0 {
				neg = true
				r.Neg(r)
			}
			if r.Num().Cmp(big.NewInt(1)) != 0 {
				num = append(num, &Num{val: new(big.Rat).SetInt(r.Num())})
			}
			if !r.IsInt() {
				den = append(den, &Num{val: new(big.Rat).SetInt(r.Denom())})
			}
		case *Pow:
			if e, ok := v.exp.(*Num); ok && e.IsNegative() {
				den = append(den, PowOf(v.base, numNeg(e)))
				continue
			}
			num = append(num, f)
		default:
			num = append(num, f)
		}
	}
	return neg, num, den
}

func joinFactors(fs []Expr) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func joinFactorsLaTeX(fs []Expr) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "\\left(" + f.LaTeX() + "\\right)"
		} else {
			parts[i] = f.LaTeX()
		}
	}
	return strings.Join(parts, " ")
}

func (m *Mul) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	neg, num, den := fractionParts(m)
	s := "1"
	if len(num) > 0 {
		s = joinFactors(num)
	}
	if len(den) > 0 {
		d := joinFactors(den)
		if _, isAdd := den[0].(*Add); len(den) > 1 || isAdd {
			d = "(" + d + ")"
		}
		s += "/" + d
	}
	if neg {
		s = "-" + s
	}
	return s
}

func (m *Mul) LaTeX() string {
	neg, num, den := fractionParts(m)
	s := "1"
	if len(num) > 0 {
		s = joinFactorsLaTeX(num)
	}
	if len(den) > 0 {
		s = "\\frac{" + s + "}{" + joinFactorsLaTeX(den) + "}"
	}
	if neg {
		s = "-" + s
	}
	return s
}

func (m *Mul) Sub(varName string, value Expr) Expr {
	newFactors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		newFactors[i] = f.Sub(varName, value)
	}
	return MulOf(newFactors...)
}

func (m *Mul) Diff(varName string) Expr {
	terms := make([]Expr, len(m.factors))
	for i, fi := range m.factors {
		dfi := fi.Diff(varName)
		others := make([]Expr, 0, len(m.factors)-1)
		for j, fj := range m.factors {
			if j != i {
				others = append(others, fj)
			}
		}
		if len(others) == 0 {
			terms[i] = dfi
		} else {
			terms[i] = MulOf(append([]Expr{dfi}, others...)...)
		}
	}
	return AddOf(terms...)
}

func (m *Mul) Eval() (*Num, bool) {
	acc := N(1)
	for _, f := range m.factors {
		v, ok := f.Eval()
		if !ok {
			return nil, false
		}
		acc = numMul(acc, v)
	}
	return acc, true
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) exprType() string { return "mul" }
func (m *Mul) toJSON() map[string]interface{} {
	fs := make([]map[string]interface{}, len(m.factors))
	for i, f := range m.factors {
		fs[i] = f.toJSON()
	}
	return map[string]interface{}{"type": "mul", "factors": fs}
}
func (m *Mul) Factors() []Expr { return m.factors }

// ============================================================
// Pow — base^exponent
// ============================================================

type Pow struct{ base, exp Expr }

func PowOf(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }

func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()
	en, expIsNum := exp.(*Num)

	if expIsNum && en.IsZero() {
		return N(1)
	}
	if expIsNum && en.IsOne() {
		return base
	}

	if bn, ok := base.(*Num); ok {
		switch {
		case bn.IsZero():
			// 0^negative is division by zero and stays unevaluated.
			if expIsNum && en.IsNegative() {
				return &Pow{base: base, exp: exp}
			}
			return N(0)
		case bn.IsOne():
			return N(1)
		case expIsNum && en.IsInteger() && en.val.Num().IsInt64():
			return numPow(bn, en.val.Num().Int64())
		}
	}

	if expIsNum && en.IsInteger() {
		switch b := base.(type) {
		case *Pow:
			return PowOf(b.base, MulOf(b.exp, exp))
		case *Mul:
			factors := make([]Expr, len(b.factors))
			for i, f := range b.factors {
				factors[i] = PowOf(f, exp)
			}
			return MulOf(factors...)
		}
	}
	return &Pow{base: base, exp: exp}
}

func (p *Pow) wrapBase(s string) string {
	switch b := p.base.(type) {
	case *Add, *Mul, *Pow:
		return "(" + s + ")"
	case *Num:
		if b.IsNegative() || !b.IsInteger() {
			return "(" + s + ")"
		}
	}
	return s
}

func (p *Pow) String() string {
	if e, ok := p.exp.(*Num); ok && e.IsNegative() {
		pos := numNeg(e)
		if pos.IsOne() {
			return "1/" + p.wrapBase(p.base.String())
		}
		return "1/" + (&Pow{base: p.base, exp: pos}).String()
	}
	expStr := p.exp.String()
	if e, ok := p.exp.(*Num); !ok || !e.IsInteger() {
		if _, isSym := p.exp.(*Sym); !isSym {
			expStr = "(" + expStr + ")"
		}
	}
	return p.wrapBase(p.base.String()) + "^" + expStr
}

func (p *Pow) LaTeX() string {
	if e, ok := p.exp.(*Num); ok && e.IsNegative() {
		return "\\frac{1}{" + PowOf(p.base, numNeg(e)).LaTeX() + "}"
	}
	baseStr := p.base.LaTeX()
	switch p.base.(type) {
	case *Add, *Mul, *Pow:
		baseStr = "\\left(" + baseStr + "\\right)"
	}
	return baseStr + "^{" + p.exp.LaTeX() + "}"
}

func (p *Pow) Sub(varName string, value Expr) Expr {
	return PowOf(p.base.Sub(varName, value), p.exp.Sub(varName, value))
}

func (p *Pow) Diff(varName string) Expr {
	du := p.base.Diff(varName)
	dv := p.exp.Diff(varName)
	_, expIsNum := p.exp.(*Num)
	if expIsNum || isNumEqual(dv, 0) {
		newExp := AddOf(p.exp, N(-1))
		return MulOf(p.exp, PowOf(p.base, newExp), du)
	}
	_, baseIsNum := p.base.(*Num)
	if baseIsNum {
		return MulOf(PowOf(p.base, p.exp), LnOf(p.base), dv)
	}
	logTerm := MulOf(dv, LnOf(p.base))
	divTerm := MulOf(p.exp, du, PowOf(p.base, N(-1)))
	return MulOf(PowOf(p.base, p.exp), AddOf(logTerm, divTerm))
}

func (p *Pow) Eval() (*Num, bool) {
	b, ok1 := p.base.Eval()
	e, ok2 := p.exp.Eval()
	if !ok1 || !ok2 {
		return nil, false
	}
	if e.IsInteger() && e.val.Num().IsInt64() {
		if b.IsZero() && e.IsNegative() {
			return nil, false
		}
		return numPow(b, e.val.Num().Int64()), true
	}
	return nil, false
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *Pow) exprType() string { return "pow" }
func (p *Pow) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "pow", "base": p.base.toJSON(), "exp": p.exp.toJSON()}
}
func (p *Pow) Base() Expr    { return p.base }
func (p *Pow) ExpExpr() Expr { return p.exp }

// ============================================================
// Func — natural logarithm, produced by differentiating x^y
// ============================================================

type Func struct {
	name string
	arg  Expr
}

func funcOf(name string, arg Expr) *Func { return &Func{name: name, arg: arg} }

func LnOf(arg Expr) Expr { return funcOf("ln", arg).Simplify() }

func (f *Func) Simplify() Expr {
	arg := f.arg.Simplify()
	if f.name == "ln" {
		if n, ok := arg.(*Num); ok && n.IsOne() {
			return N(0)
		}
	}
	return &Func{name: f.name, arg: arg}
}

func (f *Func) String() string { return f.name + "(" + f.arg.String() + ")" }

func (f *Func) LaTeX() string { return "\\ln\\left(" + f.arg.LaTeX() + "\\right)" }

func (f *Func) Sub(varName string, value Expr) Expr {
	return funcOf(f.name, f.arg.Sub(varName, value)).Simplify()
}

func (f *Func) Diff(varName string) Expr {
	return MulOf(PowOf(f.arg, N(-1)), f.arg.Diff(varName))
}

// ln(1) folds to 0 in Simplify; every other rational argument is irrational.
func (f *Func) Eval() (*Num, bool) { return nil, false }

func (f *Func) Equal(other Expr) bool {
	o, ok := other.(*Func)
	return ok && f.name == o.name && f.arg.Equal(o.arg)
}

func (f *Func) exprType() string { return "func" }
func (f *Func) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "func", "name": f.name, "arg": f.arg.toJSON()}
}
func (f *Func) FuncName() string { return f.name }
func (f *Func) Arg() Expr        { return f.arg }

func isNumEqual(e Expr, v int64) bool {
	n, ok := e.(*Num)
	return ok && n.Equal(N(v))
}

func extractCoefficient(e Expr) (*Num, Expr) {
	if m, ok := e.(*Mul); ok && len(m.factors) >= 2 {
		if coeff, ok2 := m.factors[0].(*Num); ok2 {
			rest := m.factors[1:]
			if len(rest) == 1 {
				return coeff, rest[0]
			}
			return coeff, &Mul{factors: rest}
		}
	}
	return N(1), e
}
