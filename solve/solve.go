// Package solve dispatches equation solving by shape, the way the
// teacher's engine/evaluator.go routes a call by head: normalize the
// equation to f(var)=0, classify f, and route to the strategy for
// that class. Each strategy is an independent pure function, so new
// shapes are added without touching a base dispatcher (spec §4.8).
package solve

import (
	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/poly"
	"github.com/client9/symkernel/simplify"
)

// ResultKind classifies a SolverResult (spec §3's SolverResult sum).
type ResultKind int

const (
	KindSingle ResultKind = iota
	KindMultiple
	KindNoSolution
	KindInfinite
)

// SolverResult is the outcome of Solve/SolveSystem: exactly one of a
// single root, an ordered list of roots, no solution (with a
// diagnostic), or infinitely many solutions.
type SolverResult struct {
	Kind       ResultKind
	Solutions  []core.Expr
	Diagnostic string
}

func Single(e core.Expr) SolverResult { return SolverResult{Kind: KindSingle, Solutions: []core.Expr{e}} }

func Multiple(es []core.Expr) SolverResult {
	return SolverResult{Kind: KindMultiple, Solutions: dedupe(es)}
}

func NoSolution(diagnostic string) SolverResult {
	return SolverResult{Kind: KindNoSolution, Diagnostic: diagnostic}
}

func Infinite() SolverResult { return SolverResult{Kind: KindInfinite} }

// Solve computes SolverResult for eq in variable v (spec §4.8). The
// equation is first normalized to f(v) = 0 via simplify.Residual. An
// equation already of the form v = c, with c free of v, yields c
// (simplified) directly.
func Solve(eq core.EquationExpr, v core.SymbolExpr) SolverResult {
	if s, ok := eq.LHS.(core.SymbolExpr); ok && s.Name == v.Name && isConstantIn(eq.RHS, v) {
		return Single(simplify.Simplify(eq.RHS))
	}
	f := simplify.Residual(eq)
	p, err := poly.AsPolynomial(f, []string{v.Name})
	if err == nil {
		return solvePolynomial(p, v)
	}
	return solveTranscendental(f, v)
}

// solvePolynomial dispatches by degree per spec §4.8.
func solvePolynomial(p *poly.Polynomial, v core.SymbolExpr) SolverResult {
	if p.IsZero() {
		return Infinite()
	}
	deg := p.DegreeIn(0)
	switch {
	case deg == 0:
		return NoSolution("nonzero constant equals zero has no solution")
	case deg == 1:
		return solveLinear(p, v)
	case deg == 2:
		return solveQuadratic(p, v)
	case deg == 3:
		return solveCubic(p, v)
	case deg == 4:
		return solveQuartic(p, v)
	default:
		return solveHighDegree(p, v)
	}
}

// dedupe removes structurally-equal duplicate roots, preserving order
// of first appearance (spec §4.8's "duplicates suppressed by
// structural equality").
func dedupe(es []core.Expr) []core.Expr {
	var out []core.Expr
	for _, e := range es {
		dup := false
		for _, o := range out {
			if e.Equal(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	return out
}

// imaginaryUnit is the symbolic representation of sqrt(-1): the
// kernel has no dedicated complex-number variant, so complex roots are
// expressed as Add(re, Mul(im, imaginaryUnit())) the way a CAS without
// a native complex type would (spec §4.8's "two complex conjugate
// roots").
func imaginaryUnit() core.Expr {
	return core.MustFunction("sqrt", core.Integer(-1))
}

// complexPair builds the two conjugate roots re ± im*i.
func complexPair(re, im core.Expr) []core.Expr {
	term := core.Mul(im, imaginaryUnit())
	return []core.Expr{
		simplify.Simplify(core.Add(re, term)),
		simplify.Simplify(core.Add(re, core.Neg(term))),
	}
}

// univariateCoefs returns p's coefficients highest-degree-first.
func univariateCoefs(p *poly.Polynomial) []core.BigRat {
	deg := p.DegreeIn(0)
	out := make([]core.BigRat, deg+1)
	for i := range out {
		out[i] = core.RatZero()
	}
	for key, exps := range p.Terms {
		out[deg-exps[0]] = p.Coefs[key]
	}
	return out
}

func ratExpr(r core.BigRat) core.Expr { return core.NormalizeRat(r) }
