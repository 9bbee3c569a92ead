package solve

import (
	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/poly"
)

// solveHighDegree handles degree >= 5 by factoring out rational roots
// (bounded by divisor enumeration of the constant/leading coefficients,
// per spec §5's termination guarantee) and recursing on the quotient;
// whatever remains irreducible is returned as a symbolic "roots of"
// marker rather than attempted numerically (spec §4.8).
func solveHighDegree(p *poly.Polynomial, v core.SymbolExpr) SolverResult {
	factors := poly.Factor(p)
	var roots []core.Expr
	var unresolved []*poly.Polynomial
	for _, f := range factors {
		switch f.DegreeIn(0) {
		case 0:
			continue
		case 1:
			roots = append(roots, solveLinearFactor(f))
		case 2:
			result := solveQuadratic(f, v)
			roots = append(roots, result.Solutions...)
		default:
			unresolved = append(unresolved, f)
		}
	}
	for _, u := range unresolved {
		roots = append(roots, rootsOfMarker(u, v))
	}
	if len(roots) == 0 {
		return NoSolution("unsupported shape")
	}
	return Multiple(roots)
}

func solveLinearFactor(f *poly.Polynomial) core.Expr {
	coefs := univariateCoefs(f)
	root, err := coefs[1].Neg().Div(coefs[0])
	if err != nil {
		return core.Integer(0)
	}
	return ratExpr(root)
}

// rootsOfMarker represents an irreducible higher-degree factor that
// was not resolved symbolically, as an opaque Function("roots_of", ...)
// call over the factor's expression form and the solve variable, so
// downstream code can recognise it rather than silently dropping it.
func rootsOfMarker(p *poly.Polynomial, v core.SymbolExpr) core.Expr {
	return core.MustFunction("roots_of", poly.FromPolynomial(p), v)
}
