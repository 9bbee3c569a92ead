package solve

import (
	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/poly"
	"github.com/client9/symkernel/simplify"
)

// solveQuadratic applies the quadratic formula (spec §4.8 degree 2):
// real or complex-conjugate roots depending on the discriminant's
// sign, with repeated roots deduplicated by Multiple.
func solveQuadratic(p *poly.Polynomial, v core.SymbolExpr) SolverResult {
	coefs := univariateCoefs(p)
	a, b, c := coefs[0], coefs[1], coefs[2]
	four := core.RatFromInt(core.IntFromInt64(4))
	disc := b.Mul(b).Sub(four.Mul(a).Mul(c))
	twoA := core.RatFromInt(core.IntFromInt64(2)).Mul(a)

	if disc.Sign() >= 0 {
		if root, ok := poly.RationalSqrt(disc); ok {
			r1, err1 := b.Neg().Add(root).Div(twoA)
			r2, err2 := b.Neg().Sub(root).Div(twoA)
			if err1 == nil && err2 == nil {
				return Multiple(orderedRealPair(ratExpr(r1), ratExpr(r2), twoA.Sign()))
			}
		}
		// irrational real roots: keep sqrt(disc) symbolic.
		sqrtDisc := core.MustFunction("sqrt", ratExpr(disc))
		invTwoA, err := core.RatOne().Div(twoA)
		if err != nil {
			return NoSolution("leading coefficient is zero")
		}
		negB := ratExpr(b.Neg())
		r1 := simplify.Simplify(core.Mul(core.Add(negB, sqrtDisc), ratExpr(invTwoA)))
		r2 := simplify.Simplify(core.Mul(core.Add(negB, core.Neg(sqrtDisc)), ratExpr(invTwoA)))
		return Multiple(orderedRealPair(r1, r2, invTwoA.Sign()))
	}

	// Complex conjugate pair: re = -b/2a, im = sqrt(-disc)/2a.
	invTwoA, err := core.RatOne().Div(twoA)
	if err != nil {
		return NoSolution("leading coefficient is zero")
	}
	re := ratExpr(b.Neg().Mul(invTwoA))
	negDisc := disc.Neg()
	var imMag core.Expr
	if root, ok := poly.RationalSqrt(negDisc); ok {
		imMag = ratExpr(root.Mul(invTwoA.Abs()))
	} else {
		imMag = core.Mul(core.MustFunction("sqrt", ratExpr(negDisc)), ratExpr(invTwoA.Abs()))
	}
	return Multiple(complexPair(re, imMag))
}

// orderedRealPair returns [lo, hi] for the two real roots (-b+root)/d
// (plusRoot) and (-b-root)/d (minusRoot), where root >= 0: dividing
// the nonnegative-root-difference pair by a positive d preserves
// order, so minusRoot <= plusRoot; a negative d reverses it. Spec §3's
// Multiple carries an ordered list, and spec.md §8's worked example
// (solve(x^2-5x+6=0, x) -> Multiple([2, 3])) fixes ascending order.
func orderedRealPair(plusRoot, minusRoot core.Expr, divisorSign int) []core.Expr {
	if divisorSign > 0 {
		return []core.Expr{minusRoot, plusRoot}
	}
	return []core.Expr{plusRoot, minusRoot}
}
