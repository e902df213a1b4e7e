package derive

import "github.com/njchilds90/gainsym"

// Ratios holds the intermediate products g1..g8 and the ratios e1..e4.
// G[0] is g1 and E[0] is e1.
type Ratios struct {
	G [8]gainsym.Expr
	E [4]gainsym.Expr
}

// DeriveRatios builds the gain products and reduces the four ratios.
// The numerators of e1 and e2 are brought to canonical form before the
// division, so shared factors cancel against the denominator.
func DeriveRatios(n Network) *Ratios {
	mul, minus, quo := gainsym.MulOf, gainsym.Minus, gainsym.Quo

	r := &Ratios{}
	r.G[0] = mul(n.N15, n.N56)
	r.G[1] = mul(n.N27, n.N78)
	r.G[2] = mul(minus(mul(n.N56, n.N15, n.N78, n.N27), mul(n.N56, n.N15, n.N39)), n.N911)
	r.G[3] = mul(n.N78, n.N27, n.N911)
	r.G[4] = mul(n.N39, n.N911)
	r.G[5] = mul(minus(mul(n.N56, n.N15, n.N78, n.N27), mul(n.N56, n.N15, n.N410)), n.N1012)
	r.G[6] = mul(n.N78, n.N27, n.N1012)
	r.G[7] = mul(n.N410, n.N1012)

	g := r.G
	r.E[0] = quo(gainsym.Simplify(minus(mul(g[0], g[3]), g[2])), mul(g[0], g[4]))
	r.E[1] = quo(gainsym.Simplify(minus(mul(g[0], g[6]), g[5])), mul(g[0], g[7]))
	r.E[2] = quo(g[3], mul(g[1], g[4]))
	r.E[3] = quo(g[6], mul(g[1], g[7]))
	return r
}
