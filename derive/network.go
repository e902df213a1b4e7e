package derive

import "github.com/njchilds90/gainsym"

// GainNames lists the base gain symbols in declaration order.
var GainNames = []string{"N15", "N56", "N78", "N27", "N39", "N911", "N410", "N1012"}

// Network holds the eight base gains. Fields are expressions so callers can
// pin some gains to values and keep the rest symbolic.
type Network struct {
	N15, N56, N78, N27, N39, N911, N410, N1012 gainsym.Expr
}

// Symbolic returns the network with every gain a free symbol.
func Symbolic() Network {
	s := gainsym.Symbols(GainNames...)
	return Network{
		N15: s[0], N56: s[1], N78: s[2], N27: s[3],
		N39: s[4], N911: s[5], N410: s[6], N1012: s[7],
	}
}

// With substitutes values by gain name into every gain of n.
func (n Network) With(values map[string]gainsym.Expr) Network {
	sub := func(e gainsym.Expr) gainsym.Expr { return gainsym.SubAll(e, values) }
	return Network{
		N15: sub(n.N15), N56: sub(n.N56), N78: sub(n.N78), N27: sub(n.N27),
		N39: sub(n.N39), N911: sub(n.N911), N410: sub(n.N410), N1012: sub(n.N1012),
	}
}

// Gains returns the gains in GainNames order.
func (n Network) Gains() []gainsym.Expr {
	return []gainsym.Expr{n.N15, n.N56, n.N78, n.N27, n.N39, n.N911, n.N410, n.N1012}
}
