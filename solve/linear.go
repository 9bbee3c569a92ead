package solve

import (
	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/poly"
)

// solveLinear handles a*v + b = 0 -> v = -b/a (spec §4.8 degree 1).
func solveLinear(p *poly.Polynomial, v core.SymbolExpr) SolverResult {
	coefs := univariateCoefs(p)
	a, b := coefs[0], coefs[1]
	root, err := b.Neg().Div(a)
	if err != nil {
		return NoSolution("leading coefficient is zero")
	}
	return Single(ratExpr(root))
}
