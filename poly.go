package gainsym

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// ============================================================
// Monomials — sorted (symbol, exponent) pairs, exponents > 0
// ============================================================

type power struct {
	name string
	exp  int
}

type monomial []power

func (m monomial) key() string {
	var sb strings.Builder
	for i, p := range m {
		if i > 0 {
			sb.WriteByte('*')
		}
		sb.WriteString(p.name)
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(p.exp))
	}
	return sb.String()
}

func (m monomial) mul(o monomial) monomial {
	out := make(monomial, 0, len(m)+len(o))
	i, j := 0, 0
	for i < len(m) || j < len(o) {
		switch {
		case j >= len(o) || (i < len(m) && m[i].name < o[j].name):
			out = append(out, m[i])
			i++
		case i >= len(m) || o[j].name < m[i].name:
			out = append(out, o[j])
			j++
		default:
			out = append(out, power{name: m[i].name, exp: m[i].exp + o[j].exp})
			i++
			j++
		}
	}
	return out
}

// div returns m/o when o divides m.
func (m monomial) div(o monomial) (monomial, bool) {
	out := make(monomial, 0, len(m))
	j := 0
	for _, p := range m {
		if j < len(o) && o[j].name < p.name {
			return nil, false
		}
		if j < len(o) && o[j].name == p.name {
			switch {
			case o[j].exp > p.exp:
				return nil, false
			case o[j].exp < p.exp:
				out = append(out, power{name: p.name, exp: p.exp - o[j].exp})
			}
			j++
			continue
		}
		out = append(out, p)
	}
	if j < len(o) {
		return nil, false
	}
	return out, true
}

func (m monomial) degreeIn(v string) int {
	for _, p := range m {
		if p.name == v {
			return p.exp
		}
	}
	return 0
}

func (m monomial) without(v string) monomial {
	out := make(monomial, 0, len(m))
	for _, p := range m {
		if p.name != v {
			out = append(out, p)
		}
	}
	return out
}

// cmpMonomial orders monomials lexicographically with symbol names in
// ascending order as the variable priority.
func cmpMonomial(a, b monomial) int {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && a[i].name < b[j].name):
			return 1
		case i >= len(a) || b[j].name < a[i].name:
			return -1
		case a[i].exp != b[j].exp:
			if a[i].exp > b[j].exp {
				return 1
			}
			return -1
		}
		i++
		j++
	}
	return 0
}

// ============================================================
// poly — sparse multivariate polynomial over Q
// ============================================================

type polyTerm struct {
	mono  monomial
	coeff *big.Rat
}

type poly struct {
	terms map[string]polyTerm
}

func newPoly() *poly { return &poly{terms: map[string]polyTerm{}} }

func constPoly(r *big.Rat) *poly {
	p := newPoly()
	p.addTerm(nil, r)
	return p
}

func polyOne() *poly { return constPoly(big.NewRat(1, 1)) }

func varPoly(name string) *poly {
	p := newPoly()
	p.addTerm(monomial{{name: name, exp: 1}}, big.NewRat(1, 1))
	return p
}

// addTerm accumulates c*m into p in place; used only while building.
func (p *poly) addTerm(m monomial, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	k := m.key()
	if t, ok := p.terms[k]; ok {
		sum := new(big.Rat).Add(t.coeff, c)
		if sum.Sign() == 0 {
			delete(p.terms, k)
			return
		}
		p.terms[k] = polyTerm{mono: t.mono, coeff: sum}
		return
	}
	p.terms[k] = polyTerm{mono: m, coeff: new(big.Rat).Set(c)}
}

func (p *poly) isZero() bool { return len(p.terms) == 0 }

func (p *poly) isConst() bool {
	if len(p.terms) == 0 {
		return true
	}
	_, ok := p.terms[""]
	return ok && len(p.terms) == 1
}

func (p *poly) isMonomial() bool { return len(p.terms) == 1 }

// constValue returns the constant term.
func (p *poly) constValue() *big.Rat {
	if t, ok := p.terms[""]; ok {
		return new(big.Rat).Set(t.coeff)
	}
	return new(big.Rat)
}

func (p *poly) sorted() []polyTerm {
	out := make([]polyTerm, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return cmpMonomial(out[i].mono, out[j].mono) > 0 })
	return out
}

func (p *poly) leadingTerm() polyTerm {
	var lt polyTerm
	first := true
	for _, t := range p.terms {
		if first || cmpMonomial(t.mono, lt.mono) > 0 {
			lt = t
			first = false
		}
	}
	return lt
}

func (p *poly) add(q *poly) *poly {
	out := newPoly()
	for _, t := range p.terms {
		out.addTerm(t.mono, t.coeff)
	}
	for _, t := range q.terms {
		out.addTerm(t.mono, t.coeff)
	}
	return out
}

func (p *poly) neg() *poly { return p.scale(big.NewRat(-1, 1)) }

func (p *poly) sub(q *poly) *poly { return p.add(q.neg()) }

func (p *poly) scale(r *big.Rat) *poly {
	out := newPoly()
	for _, t := range p.terms {
		out.addTerm(t.mono, new(big.Rat).Mul(t.coeff, r))
	}
	return out
}

func (p *poly) mul(q *poly) *poly {
	out := newPoly()
	for _, a := range p.terms {
		for _, b := range q.terms {
			out.addTerm(a.mono.mul(b.mono), new(big.Rat).Mul(a.coeff, b.coeff))
		}
	}
	return out
}

func (p *poly) mulTerm(t polyTerm) *poly {
	out := newPoly()
	for _, a := range p.terms {
		out.addTerm(a.mono.mul(t.mono), new(big.Rat).Mul(a.coeff, t.coeff))
	}
	return out
}

func (p *poly) pow(n int) *poly {
	out := polyOne()
	for i := 0; i < n; i++ {
		out = out.mul(p)
	}
	return out
}

func (p *poly) equal(q *poly) bool { return p.sub(q).isZero() }

func (p *poly) vars() []string {
	seen := map[string]struct{}{}
	for _, t := range p.terms {
		for _, pw := range t.mono {
			seen[pw.name] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func (p *poly) degreeIn(v string) int {
	d := 0
	for _, t := range p.terms {
		if e := t.mono.degreeIn(v); e > d {
			d = e
		}
	}
	return d
}

// coeffIn returns the coefficient of v^d, a polynomial free of v.
func (p *poly) coeffIn(v string, d int) *poly {
	out := newPoly()
	for _, t := range p.terms {
		if t.mono.degreeIn(v) == d {
			out.addTerm(t.mono.without(v), t.coeff)
		}
	}
	return out
}

func (p *poly) coeffsIn(v string) []*poly {
	byDeg := map[int]*poly{}
	for _, t := range p.terms {
		d := t.mono.degreeIn(v)
		c, ok := byDeg[d]
		if !ok {
			c = newPoly()
			byDeg[d] = c
		}
		c.addTerm(t.mono.without(v), t.coeff)
	}
	degs := make([]int, 0, len(byDeg))
	for d := range byDeg {
		degs = append(degs, d)
	}
	sort.Ints(degs)
	out := make([]*poly, len(degs))
	for i, d := range degs {
		out[i] = byDeg[d]
	}
	return out
}

// monic scales p so that its leading coefficient is 1.
func (p *poly) monic() *poly {
	if p.isZero() {
		return p
	}
	lc := p.leadingTerm().coeff
	return p.scale(new(big.Rat).Inv(lc))
}

// divide performs multivariate division by a single divisor in lex order.
// The remainder is zero exactly when d divides p.
func (p *poly) divide(d *poly) (q, r *poly) {
	q, r = newPoly(), newPoly()
	rem := p.add(newPoly())
	ltD := d.leadingTerm()
	for !rem.isZero() {
		lt := rem.leadingTerm()
		if m, ok := lt.mono.div(ltD.mono); ok {
			t := polyTerm{mono: m, coeff: new(big.Rat).Quo(lt.coeff, ltD.coeff)}
			q.addTerm(t.mono, t.coeff)
			rem = rem.sub(d.mulTerm(t))
			continue
		}
		r.addTerm(lt.mono, lt.coeff)
		delete(rem.terms, lt.mono.key())
	}
	return q, r
}

func (p *poly) exactDiv(d *poly) (*poly, bool) {
	q, r := p.divide(d)
	return q, r.isZero()
}

func (p *poly) mustDiv(d *poly) *poly {
	q, ok := p.exactDiv(d)
	if !ok {
		panic("gainsym: inexact polynomial division")
	}
	return q
}

// contentIn is the gcd of the coefficients of p viewed as a polynomial in v.
func (p *poly) contentIn(v string) *poly {
	g := newPoly()
	for _, c := range p.coeffsIn(v) {
		g = gcdPoly(g, c)
		if g.isConst() {
			return polyOne()
		}
	}
	return g
}

func (p *poly) primitiveIn(v string) *poly {
	if p.isZero() {
		return p
	}
	return p.mustDiv(p.contentIn(v))
}

// pseudoRem reduces a by b in the variable v until deg_v(a) < deg_v(b).
func pseudoRem(a, b *poly, v string) *poly {
	db := b.degreeIn(v)
	lcb := b.coeffIn(v, db)
	r := a
	for !r.isZero() && r.degreeIn(v) >= db {
		dr := r.degreeIn(v)
		lcr := r.coeffIn(v, dr)
		shift := polyOne()
		if dr > db {
			shift = varPoly(v).pow(dr - db)
		}
		r = r.mul(lcb).sub(lcr.mul(shift).mul(b))
	}
	return r
}

func monomialGCD(a, b monomial) monomial {
	out := monomial{}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].name < b[j].name:
			i++
		case b[j].name < a[i].name:
			j++
		default:
			e := a[i].exp
			if b[j].exp < e {
				e = b[j].exp
			}
			out = append(out, power{name: a[i].name, exp: e})
			i++
			j++
		}
	}
	return out
}

// gcdPoly returns the monic greatest common divisor of a and b over Q.
// It recurses on the smallest variable name, splitting each operand into
// content and primitive part and running a primitive remainder sequence.
func gcdPoly(a, b *poly) *poly {
	switch {
	case a.isZero():
		return b.monic()
	case b.isZero():
		return a.monic()
	case a.isConst() || b.isConst():
		return polyOne()
	case a.isMonomial() && b.isMonomial():
		g := newPoly()
		g.addTerm(monomialGCD(a.leadingTerm().mono, b.leadingTerm().mono), big.NewRat(1, 1))
		return g
	}

	v := mainVar(a, b)
	c := gcdPoly(a.contentIn(v), b.contentIn(v))
	pa, pb := a.primitiveIn(v), b.primitiveIn(v)
	if pa.degreeIn(v) < pb.degreeIn(v) {
		pa, pb = pb, pa
	}

	var g *poly
	for {
		r := pseudoRem(pa, pb, v)
		if r.isZero() {
			g = pb
			break
		}
		if r.degreeIn(v) == 0 {
			g = polyOne()
			break
		}
		pa, pb = pb, r.primitiveIn(v)
	}
	return c.mul(g.primitiveIn(v)).monic()
}

func mainVar(a, b *poly) string {
	vs := append(a.vars(), b.vars()...)
	sort.Strings(vs)
	return vs[0]
}

// expr converts p back to an expression tree.
func (p *poly) expr() Expr {
	ts := p.sorted()
	if len(ts) == 0 {
		return N(0)
	}
	terms := make([]Expr, len(ts))
	for i, t := range ts {
		factors := make([]Expr, 0, len(t.mono)+1)
		factors = append(factors, NRat(t.coeff))
		for _, pw := range t.mono {
			factors = append(factors, PowOf(S(pw.name), N(int64(pw.exp))))
		}
		terms[i] = MulOf(factors...)
	}
	return AddOf(terms...)
}
