package calculus

import (
	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/simplify"
)

// Integrate attempts antiderivative construction for a small,
// documented table of shapes (spec §4.7/§4.9: scope is deliberately
// reduced relative to Derivative). It returns ErrUnsupportedShape
// rather than attempting a general Risch-style algorithm, matching the
// façade's NotImplemented flag for everything outside the table.
func Integrate(e core.Expr, v core.SymbolExpr) (core.Expr, error) {
	result, ok := integrate(simplify.Simplify(e), v)
	if !ok {
		return nil, core.NewError(core.ErrUnsupportedShape, "integrate: no rule matches %s", e)
	}
	return simplify.Simplify(result), nil
}

func integrate(e core.Expr, v core.SymbolExpr) (core.Expr, bool) {
	switch node := e.(type) {
	case core.IntegerExpr, core.RationalExpr, core.FloatExpr:
		return core.Mul(node, core.Symbol(v.Name)), true
	case core.SymbolExpr:
		if node.Name == v.Name {
			return core.Mul(rationalHalf, core.Pow(node, core.Integer(2))), true
		}
		return core.Mul(node, core.Symbol(v.Name)), true
	case core.AddExpr:
		return integrateAdd(node, v)
	case core.MulExpr:
		return integrateMul(node, v)
	case core.PowExpr:
		return integratePow(node, v)
	case core.FunctionExpr:
		return integrateFunction(node, v)
	}
	return nil, false
}

// integrateAdd is linearity: integral of a sum is the sum of integrals,
// as long as every term integrates.
func integrateAdd(a core.AddExpr, v core.SymbolExpr) (core.Expr, bool) {
	terms := make([]core.Expr, len(a.Operands))
	for i, op := range a.Operands {
		t, ok := integrate(op, v)
		if !ok {
			return nil, false
		}
		terms[i] = t
	}
	return core.Add(terms...), true
}

// integrateMul handles the documented u'*u^n and constant-times-thing
// shapes: a single constant factor pulled out, or the recognised
// pattern derivative(inner)*inner^n for some already-derived inner.
func integrateMul(m core.MulExpr, v core.SymbolExpr) (core.Expr, bool) {
	var constFactors, rest []core.Expr
	for _, op := range m.Operands {
		if isConstantIn(op, v) {
			constFactors = append(constFactors, op)
		} else {
			rest = append(rest, op)
		}
	}
	if len(rest) == 0 {
		return core.Mul(append(constFactors, core.Symbol(v.Name))...), true
	}
	if len(rest) == 1 {
		inner, ok := integrate(rest[0], v)
		if !ok {
			return nil, false
		}
		return core.Mul(append(constFactors, inner)...), true
	}
	if len(rest) == 2 {
		if result, ok := recognizeUPrimeTimesUPowN(rest, v); ok {
			return core.Mul(append(constFactors, result)...), true
		}
		if result, ok := recognizeUPrimeOverU(rest, v); ok {
			return core.Mul(append(constFactors, result)...), true
		}
	}
	return nil, false
}

// recognizeUPrimeTimesUPowN matches u'*u^n (n != -1) against the two
// factors in either order, returning u^(n+1)/(n+1).
func recognizeUPrimeTimesUPowN(factors []core.Expr, v core.SymbolExpr) (core.Expr, bool) {
	for i := 0; i < 2; i++ {
		candidateDeriv, power := factors[i], factors[1-i]
		pow, ok := power.(core.PowExpr)
		if !ok {
			continue
		}
		n, isInt := asRationalConst(pow.Exp)
		if !isInt {
			continue
		}
		if n.Cmp(core.RatFromInt(core.IntFromInt64(-1))) == 0 {
			continue
		}
		du := Derivative(pow.Base, v)
		if !du.Equal(simplify.Simplify(candidateDeriv)) {
			continue
		}
		newExp := core.Add(pow.Exp, core.Integer(1))
		return core.Mul(core.Pow(pow.Base, newExp), reciprocal(newExp)), true
	}
	return nil, false
}

// recognizeUPrimeOverU matches u'*u^(-1) (i.e. u'/u), returning log(u).
func recognizeUPrimeOverU(factors []core.Expr, v core.SymbolExpr) (core.Expr, bool) {
	for i := 0; i < 2; i++ {
		candidateDeriv, inv := factors[i], factors[1-i]
		pow, ok := inv.(core.PowExpr)
		if !ok {
			continue
		}
		n, isInt := asRationalConst(pow.Exp)
		if !isInt || n.Cmp(core.RatFromInt(core.IntFromInt64(-1))) != 0 {
			continue
		}
		du := simplify.Simplify(Derivative(pow.Base, v))
		if !du.Equal(simplify.Simplify(candidateDeriv)) {
			continue
		}
		return core.MustFunction("log", pow.Base), true
	}
	return nil, false
}

func asRationalConst(e core.Expr) (core.BigRat, bool) {
	switch n := e.(type) {
	case core.IntegerExpr:
		return core.RatFromInt(n.Value), true
	case core.RationalExpr:
		return n.Value, true
	}
	return core.BigRat{}, false
}

// reciprocal inverts a numeric constant exactly (Integer/Rational
// inputs only reach here with a nonzero value by construction); any
// other expression falls back to Pow(e,-1), left for the simplifier.
func reciprocal(e core.Expr) core.Expr {
	r, ok := asRationalConst(e)
	if !ok {
		return core.Pow(e, core.Integer(-1))
	}
	inv, err := r.Inv()
	if err != nil {
		return core.Pow(e, core.Integer(-1))
	}
	return core.NormalizeRat(inv)
}

// integratePow covers x^n (n != -1) and x^(-1); anything with a
// non-symbol base is left unsupported here (integrateMul's u'*u^n
// recognizer handles the chain-ruled case).
func integratePow(p core.PowExpr, v core.SymbolExpr) (core.Expr, bool) {
	base, ok := p.Base.(core.SymbolExpr)
	if !ok || base.Name != v.Name {
		return nil, false
	}
	n, isConst := asRationalConst(p.Exp)
	if !isConst {
		return nil, false
	}
	if n.Cmp(core.RatFromInt(core.IntFromInt64(-1))) == 0 {
		return core.MustFunction("log", core.MustFunction("abs", p.Base)), true
	}
	newExp := core.Add(p.Exp, core.Integer(1))
	return core.Mul(core.Pow(p.Base, newExp), reciprocal(newExp)), true
}

// integrateFunction covers the documented elementary-call table:
// sin, cos, exp on a symbol argument (the chain-ruled general case is
// handled by integrateMul's recognizers when the argument is more
// complex but its derivative cancels).
func integrateFunction(f core.FunctionExpr, v core.SymbolExpr) (core.Expr, bool) {
	if len(f.Args) != 1 {
		return nil, false
	}
	u, ok := f.Args[0].(core.SymbolExpr)
	if !ok || u.Name != v.Name {
		return nil, false
	}
	switch f.Name {
	case "sin":
		return core.Neg(core.MustFunction("cos", u)), true
	case "cos":
		return core.MustFunction("sin", u), true
	case "exp":
		return core.MustFunction("exp", u), true
	}
	return nil, false
}
