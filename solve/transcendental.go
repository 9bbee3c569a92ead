package solve

import (
	"math"

	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/simplify"
)

// solveTranscendental attempts the documented substitution
// recognitions for f(v) = 0 when f is not a polynomial in v (spec
// §4.8): amplitude-phase for a*sin(u)+b*cos(u)=c, log for a*exp(u)=c,
// exp for a*log(u)=c. Anything else returns NoSolution with the
// spec's own diagnostic text.
func solveTranscendental(f core.Expr, v core.SymbolExpr) SolverResult {
	if r, ok := solveExpLinear(f, v); ok {
		return r
	}
	if r, ok := solveLogLinear(f, v); ok {
		return r
	}
	if r, ok := solveSinCosAmplitude(f, v); ok {
		return r
	}
	return NoSolution("unsupported shape")
}

// splitByFunction recognizes f as a*name(u) + rest for the first
// addend that is a call to name (optionally times other factors),
// returning (a, u, rest, ok); whether a and rest are constant in the
// solve variable is left to the caller.
func splitByFunction(f core.Expr, name string) (coef core.Expr, innerArg core.Expr, residual core.Expr, ok bool) {
	var addends []core.Expr
	switch v := f.(type) {
	case core.AddExpr:
		addends = v.Operands
	default:
		addends = []core.Expr{f}
	}
	var matched core.Expr
	var matchedCoef core.Expr
	var rest []core.Expr
	for _, a := range addends {
		c, call, found := asCoefTimesCall(a, name)
		if found && matched == nil {
			matched = call
			matchedCoef = c
			continue
		}
		rest = append(rest, a)
	}
	if matched == nil {
		return nil, nil, nil, false
	}
	fn := matched.(core.FunctionExpr)
	return matchedCoef, fn.Args[0], core.Add(rest...), true
}

func asCoefTimesCall(e core.Expr, name string) (coef core.Expr, call core.Expr, ok bool) {
	if fn, isFn := e.(core.FunctionExpr); isFn && fn.Name == name {
		return core.Integer(1), fn, true
	}
	if m, isMul := e.(core.MulExpr); isMul {
		var coefs []core.Expr
		var fnCall core.Expr
		for _, op := range m.Operands {
			if fn, isFn := op.(core.FunctionExpr); isFn && fn.Name == name && fnCall == nil {
				fnCall = fn
				continue
			}
			coefs = append(coefs, op)
		}
		if fnCall != nil {
			return core.Mul(coefs...), fnCall, true
		}
	}
	return nil, nil, false
}

// solveExpLinear recognizes a*exp(u) + rest = 0 -> u = log(-rest/a).
func solveExpLinear(f core.Expr, v core.SymbolExpr) (SolverResult, bool) {
	coef, u, rest, ok := splitByFunction(f, "exp")
	if !ok || !isConstantIn(coef, v) || !isConstantIn(rest, v) {
		return SolverResult{}, false
	}
	rhs := simplify.Simplify(core.Mul(core.Integer(-1), rest, core.Pow(coef, core.Integer(-1))))
	if core.IsNumericExpr(rhs) && core.NumericSign(rhs) <= 0 {
		return NoSolution("log of a non-positive constant has no real solution"), true
	}
	logRhs := core.MustFunction("log", rhs)
	inner := Solve(core.Equation(u, logRhs).(core.EquationExpr), v)
	return inner, true
}

// solveLogLinear recognizes a*log(u) + rest = 0 -> u = exp(-rest/a).
func solveLogLinear(f core.Expr, v core.SymbolExpr) (SolverResult, bool) {
	coef, u, rest, ok := splitByFunction(f, "log")
	if !ok || !isConstantIn(coef, v) || !isConstantIn(rest, v) {
		return SolverResult{}, false
	}
	rhs := simplify.Simplify(core.Mul(core.Integer(-1), rest, core.Pow(coef, core.Integer(-1))))
	expRhs := core.MustFunction("exp", rhs)
	inner := Solve(core.Equation(u, expRhs).(core.EquationExpr), v)
	return inner, true
}

// solveSinCosAmplitude recognizes a*sin(u)+b*cos(u)+rest = 0 for a
// shared argument u (a missing cos term counts as b = 0), rewriting via the amplitude-phase identity
// a*sin(u)+b*cos(u) = R*sin(u+phi), R = sqrt(a^2+b^2),
// cos(phi) = a/R, sin(phi) = b/R. The principal-branch solution
// u = asin(-rest/R) - phi is returned; the numeric tier (rather than
// an exact closed form) is used for R and phi since there is no exact
// representation of an arbitrary arctangent in this kernel's constant
// set, mirroring the cubic/quartic solver's numeric fallback.
func solveSinCosAmplitude(f core.Expr, v core.SymbolExpr) (SolverResult, bool) {
	aCoef, uSin, restAfterSin, okSin := splitByFunction(f, "sin")
	if !okSin {
		return SolverResult{}, false
	}
	bCoef, uCos, restAfterCos, okCos := splitByFunction(restAfterSin, "cos")
	if !okCos {
		// no cos term: the b = 0 case of the same identity.
		bCoef, uCos, restAfterCos = core.Integer(0), uSin, restAfterSin
	}
	if !uSin.Equal(uCos) {
		return SolverResult{}, false
	}
	if !isConstantIn(aCoef, v) || !isConstantIn(bCoef, v) || !isConstantIn(restAfterCos, v) {
		return SolverResult{}, false
	}
	af, aok := core.AsFloat64(simplify.Simplify(aCoef))
	bf, bok := core.AsFloat64(simplify.Simplify(bCoef))
	cf, cok := core.AsFloat64(simplify.Simplify(restAfterCos))
	if !aok || !bok || !cok {
		return NoSolution("unsupported shape"), true
	}
	r := math.Hypot(af, bf)
	if r == 0 {
		return NoSolution("degenerate amplitude-phase shape"), true
	}
	ratio := -cf / r
	if ratio < -1 || ratio > 1 {
		return NoSolution("no real solution: amplitude exceeded"), true
	}
	phi := math.Atan2(bf, af)
	u0 := math.Asin(ratio) - phi
	u0Expr, err := core.Float(u0)
	if err != nil {
		return NoSolution("unsupported shape"), true
	}
	inner := Solve(core.Equation(uSin, u0Expr).(core.EquationExpr), v)
	return inner, true
}

func isConstantIn(e core.Expr, v core.SymbolExpr) bool {
	found := false
	core.Walk(e, func(n core.Expr) {
		if s, ok := n.(core.SymbolExpr); ok && s.Name == v.Name {
			found = true
		}
	})
	return !found
}
