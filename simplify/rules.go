package simplify

import (
	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/poly"
)

// collectLikeTerms implements spec §4.5 rule 4: terms with equal
// non-coefficient part have their rational coefficients summed.
func collectLikeTerms(a core.AddExpr) core.Expr {
	type bucket struct {
		rest core.Expr
		coef core.Expr
	}
	var order []string
	buckets := map[string]*bucket{}
	for _, term := range a.Operands {
		coef, rest := splitCoefficient(term)
		key := rest.String()
		if b, ok := buckets[key]; ok {
			b.coef = core.NumericAdd(b.coef, coef)
			continue
		}
		buckets[key] = &bucket{rest: rest, coef: coef}
		order = append(order, key)
	}
	var out []core.Expr
	for _, key := range order {
		b := buckets[key]
		if core.NumericIsZero(b.coef) {
			continue
		}
		out = append(out, core.Mul(b.coef, b.rest))
	}
	return core.Add(out...)
}

// splitCoefficient factors a numeric coefficient out of a Mul term,
// returning (1, term) for terms with no explicit numeric factor.
func splitCoefficient(e core.Expr) (coef core.Expr, rest core.Expr) {
	if core.IsNumericExpr(e) {
		return e, core.Integer(1)
	}
	m, ok := e.(core.MulExpr)
	if !ok || len(m.Operands) == 0 {
		return core.Integer(1), e
	}
	if core.IsNumericExpr(m.Operands[0]) {
		return m.Operands[0], core.Mul(m.Operands[1:]...)
	}
	return core.Integer(1), e
}

// combinePowers implements spec §4.5 rule 5: factors with equal bases
// have their exponents summed: x^a * x^b -> x^(a+b).
func combinePowers(m core.MulExpr) core.Expr {
	type bucket struct {
		base core.Expr
		exps []core.Expr
	}
	var order []string
	buckets := map[string]*bucket{}
	for _, factor := range m.Operands {
		base, exp := baseExp(factor)
		key := base.String()
		if b, ok := buckets[key]; ok {
			b.exps = append(b.exps, exp)
			continue
		}
		buckets[key] = &bucket{base: base, exps: []core.Expr{exp}}
		order = append(order, key)
	}
	var out []core.Expr
	for _, key := range order {
		b := buckets[key]
		if len(b.exps) == 1 {
			out = append(out, core.Pow(b.base, b.exps[0]))
			continue
		}
		out = append(out, core.Pow(b.base, core.Add(b.exps...)))
	}
	return core.Mul(out...)
}

func baseExp(e core.Expr) (base core.Expr, exp core.Expr) {
	if p, ok := e.(core.PowExpr); ok {
		return p.Base, p.Exp
	}
	return e, core.Integer(1)
}

// powRules implements spec §4.5 rule 6: constant-folds a numeric base
// raised to a numeric exponent exactly (core.NumericPow); (x^a)^b ->
// x^(a*b) when b is an integer or the base is known non-negative (a
// numeric base >= 0); (x*y)^n -> x^n * y^n when n is an integer.
func powRules(p core.PowExpr) core.Expr {
	if core.IsNumericExpr(p.Base) && core.IsNumericExpr(p.Exp) {
		if folded, ok := core.NumericPow(p.Base, p.Exp); ok {
			return folded
		}
	}
	if inner, ok := p.Base.(core.PowExpr); ok && powCombineSafe(inner.Base, p.Exp) {
		return core.Pow(inner.Base, core.Mul(inner.Exp, p.Exp))
	}
	if m, ok := p.Base.(core.MulExpr); ok && isIntegerExpr(p.Exp) {
		out := make([]core.Expr, len(m.Operands))
		for i, f := range m.Operands {
			out[i] = core.Pow(f, p.Exp)
		}
		return core.Mul(out...)
	}
	return p
}

func powCombineSafe(base, outerExp core.Expr) bool {
	if isIntegerExpr(outerExp) {
		return true
	}
	return core.IsNumericExpr(base) && core.NumericSign(base) >= 0
}

func isIntegerExpr(e core.Expr) bool {
	_, ok := e.(core.IntegerExpr)
	return ok
}

// reduceRationalFraction implements spec §4.5 rule 7: a Mul containing
// a Pow(den,-1) factor whose numerator and denominator are both
// polynomials over a shared single variable has their polynomial GCD
// divided out (package poly's DivRem/GCD; poly imports only core, so
// there is no import cycle here). A Mul whose operands are literally p
// and p^-1 for identical p is already handled by combinePowers summing
// exponents to zero before this rule ever runs.
func reduceRationalFraction(m core.MulExpr) core.Expr {
	num, den, rest, found := splitFraction(m)
	if !found {
		return m
	}
	vars := sharedVariables(num, den)
	if len(vars) != 1 {
		return m
	}
	pNum, err1 := poly.AsPolynomial(num, vars)
	pDen, err2 := poly.AsPolynomial(den, vars)
	if err1 != nil || err2 != nil {
		return m
	}
	g, err := poly.GCD(pNum, pDen)
	if err != nil || g.Degree() == 0 {
		return m
	}
	qNum, rNum, err := poly.DivRem(pNum, g)
	if err != nil || !rNum.IsZero() {
		return m
	}
	qDen, rDen, err := poly.DivRem(pDen, g)
	if err != nil || !rDen.IsZero() {
		return m
	}
	newNum := poly.FromPolynomial(qNum)
	newDen := poly.FromPolynomial(qDen)
	factors := append(append([]core.Expr{}, rest...), newNum, core.Pow(newDen, core.Integer(-1)))
	return core.Mul(factors...)
}

// splitFraction finds a single Pow(den,-1) factor in m's operands and
// returns the remaining factors multiplied together as num; rest is
// always nil.
func splitFraction(m core.MulExpr) (num, den core.Expr, rest []core.Expr, found bool) {
	denIdx := -1
	for i, op := range m.Operands {
		if p, ok := op.(core.PowExpr); ok && isExactlyNegOne(p.Exp) {
			denIdx = i
			den = p.Base
			break
		}
	}
	if denIdx == -1 {
		return nil, nil, nil, false
	}
	var numFactors []core.Expr
	for i, op := range m.Operands {
		if i == denIdx {
			continue
		}
		numFactors = append(numFactors, op)
	}
	if len(numFactors) == 0 {
		return nil, nil, nil, false
	}
	return core.Mul(numFactors...), den, nil, true
}

func isExactlyNegOne(e core.Expr) bool {
	i, ok := e.(core.IntegerExpr)
	return ok && i.Value.Cmp(core.IntFromInt64(-1)) == 0
}

// sharedVariables returns the set of symbol names appearing in any of
// exprs, used to build a common polynomial variable list.
func sharedVariables(exprs ...core.Expr) []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range exprs {
		core.Walk(e, func(n core.Expr) {
			if s, ok := n.(core.SymbolExpr); ok && !seen[s.Name] {
				seen[s.Name] = true
				out = append(out, s.Name)
			}
		})
	}
	return out
}

// targetedRewrite implements spec §4.5 rule 8: single-pass (not
// looped) pattern rewrites that could otherwise oscillate against
// collectLikeTerms/combinePowers.
func targetedRewrite(e core.Expr) core.Expr {
	switch v := e.(type) {
	case core.AddExpr:
		if r, ok := trigPythagorean(v); ok {
			return r
		}
		if r, ok := hyperbolicPythagorean(v); ok {
			return r
		}
		if r, ok := logSum(v); ok {
			return r
		}
	case core.FunctionExpr:
		return rewriteFunction(v)
	}
	return e
}

// trigPythagorean recognises sin(x)^2 + cos(x)^2 -> 1.
func trigPythagorean(a core.AddExpr) (core.Expr, bool) {
	for i, t1 := range a.Operands {
		arg1, ok1 := squaredCallArg(t1, "sin")
		if !ok1 {
			continue
		}
		for j, t2 := range a.Operands {
			if i == j {
				continue
			}
			arg2, ok2 := squaredCallArg(t2, "cos")
			if ok2 && arg1.Equal(arg2) {
				rest := dropIndices(a.Operands, i, j)
				return core.Add(append(rest, core.Integer(1))...), true
			}
		}
	}
	return nil, false
}

// hyperbolicPythagorean recognises cosh(x)^2 - sinh(x)^2 -> 1.
func hyperbolicPythagorean(a core.AddExpr) (core.Expr, bool) {
	for i, t1 := range a.Operands {
		arg1, ok1 := squaredCallArg(t1, "cosh")
		if !ok1 {
			continue
		}
		for j, t2 := range a.Operands {
			if i == j {
				continue
			}
			neg, mag := splitNegated(t2)
			if !neg {
				continue
			}
			arg2, ok2 := squaredCallArg(mag, "sinh")
			if ok2 && arg1.Equal(arg2) {
				rest := dropIndices(a.Operands, i, j)
				return core.Add(append(rest, core.Integer(1))...), true
			}
		}
	}
	return nil, false
}

// squaredCallArg reports whether e is fname(arg)^2 and returns arg.
func squaredCallArg(e core.Expr, fname string) (core.Expr, bool) {
	p, ok := e.(core.PowExpr)
	if !ok || !isIntegerExpr(p.Exp) {
		return nil, false
	}
	iv, ok2 := p.Exp.(core.IntegerExpr)
	if !ok2 {
		return nil, false
	}
	if n, exact := iv.Value.Int64(); !exact || n != 2 {
		return nil, false
	}
	f, ok := p.Base.(core.FunctionExpr)
	if !ok || f.Name != fname || len(f.Args) != 1 {
		return nil, false
	}
	return f.Args[0], true
}

// splitNegated reports whether e is -1 * rest (a Mul whose leading
// canonical-order numeric factor is -1) and returns the remainder.
func splitNegated(e core.Expr) (neg bool, rest core.Expr) {
	m, ok := e.(core.MulExpr)
	if !ok || len(m.Operands) == 0 {
		return false, e
	}
	first := m.Operands[0]
	if core.IsNumericExpr(first) && core.NumericSign(first) < 0 && core.NumericIsOne(core.NumericNeg(first)) {
		return true, core.Mul(m.Operands[1:]...)
	}
	return false, e
}

func dropIndices(xs []core.Expr, i, j int) []core.Expr {
	var out []core.Expr
	for k, x := range xs {
		if k == i || k == j {
			continue
		}
		out = append(out, x)
	}
	return out
}

// logSum recognises log(a) + log(b) -> log(a*b) when both arguments
// are literal positive numerics (the "positive-shaped" test of spec
// §4.5 rule 8 restricted to the decidable, literal case).
func logSum(a core.AddExpr) (core.Expr, bool) {
	for i, t1 := range a.Operands {
		f1, ok := t1.(core.FunctionExpr)
		if !ok || f1.Name != "log" || len(f1.Args) != 1 || !isPositiveShaped(f1.Args[0]) {
			continue
		}
		for j, t2 := range a.Operands {
			if i == j {
				continue
			}
			f2, ok := t2.(core.FunctionExpr)
			if !ok || f2.Name != "log" || len(f2.Args) != 1 || !isPositiveShaped(f2.Args[0]) {
				continue
			}
			rest := dropIndices(a.Operands, i, j)
			combined := core.MustFunction("log", core.Mul(f1.Args[0], f2.Args[0]))
			return core.Add(append(rest, combined)...), true
		}
	}
	return nil, false
}

func isPositiveShaped(e core.Expr) bool {
	return core.IsNumericExpr(e) && core.NumericSign(e) > 0
}

// rewriteFunction recognises exp(log(x)) -> x, sqrt(x^2) -> abs(x),
// abs(abs(x)) -> abs(x).
func rewriteFunction(f core.FunctionExpr) core.Expr {
	switch f.Name {
	case "exp":
		if inner, ok := f.Args[0].(core.FunctionExpr); ok && inner.Name == "log" && len(inner.Args) == 1 {
			return inner.Args[0]
		}
	case "sqrt":
		if p, ok := f.Args[0].(core.PowExpr); ok {
			if iv, ok := p.Exp.(core.IntegerExpr); ok {
				if n, exact := iv.Value.Int64(); exact && n == 2 {
					return core.MustFunction("abs", p.Base)
				}
			}
		}
	case "abs":
		if inner, ok := f.Args[0].(core.FunctionExpr); ok && inner.Name == "abs" {
			return inner
		}
	}
	return f
}
