package poly

import "github.com/client9/symkernel/core"

// AsPolynomial converts e into a Polynomial in vars, or reports
// ErrNotAPolynomial if e contains anything other than +, *, integer
// powers, rational/integer constants, and the named variables.
func AsPolynomial(e core.Expr, vars []string) (*Polynomial, error) {
	idx := map[string]int{}
	for i, v := range vars {
		idx[v] = i
	}
	p := New(vars)
	terms, err := collectTerms(e, idx, len(vars))
	if err != nil {
		return nil, err
	}
	for _, t := range terms {
		p.AddTerm(t.coef, t.exps)
	}
	return p, nil
}

type rawTerm struct {
	coef core.BigRat
	exps []int
}

func zeroExps(n int) []int { return make([]int, n) }

func collectTerms(e core.Expr, idx map[string]int, n int) ([]rawTerm, error) {
	switch v := e.(type) {
	case core.IntegerExpr:
		return []rawTerm{{coef: core.RatFromInt(v.Value), exps: zeroExps(n)}}, nil
	case core.RationalExpr:
		return []rawTerm{{coef: v.Value, exps: zeroExps(n)}}, nil
	case core.SymbolExpr:
		i, ok := idx[v.Name]
		if !ok {
			return nil, core.NewError(core.ErrNotAPolynomial, "symbol %q is not among the polynomial variables", v.Name)
		}
		exps := zeroExps(n)
		exps[i] = 1
		return []rawTerm{{coef: core.RatOne(), exps: exps}}, nil
	case core.AddExpr:
		var out []rawTerm
		for _, op := range v.Operands {
			ts, err := collectTerms(op, idx, n)
			if err != nil {
				return nil, err
			}
			out = append(out, ts...)
		}
		return out, nil
	case core.MulExpr:
		acc := []rawTerm{{coef: core.RatOne(), exps: zeroExps(n)}}
		for _, op := range v.Operands {
			ts, err := collectTerms(op, idx, n)
			if err != nil {
				return nil, err
			}
			acc = multiplyTermLists(acc, ts, n)
		}
		return acc, nil
	case core.PowExpr:
		exp, ok := v.Exp.(core.IntegerExpr)
		if !ok {
			return nil, core.NewError(core.ErrNotAPolynomial, "non-integer exponent")
		}
		k, exact := exp.Value.Int64()
		if !exact || k < 0 {
			return nil, core.NewError(core.ErrNotAPolynomial, "negative or oversized exponent")
		}
		base, err := collectTerms(v.Base, idx, n)
		if err != nil {
			return nil, err
		}
		acc := []rawTerm{{coef: core.RatOne(), exps: zeroExps(n)}}
		for i := int64(0); i < k; i++ {
			acc = multiplyTermLists(acc, base, n)
		}
		return acc, nil
	}
	return nil, core.NewError(core.ErrNotAPolynomial, "expression is not a polynomial in the given variables")
}

func multiplyTermLists(a, b []rawTerm, n int) []rawTerm {
	out := make([]rawTerm, 0, len(a)*len(b))
	for _, ta := range a {
		for _, tb := range b {
			exps := make([]int, n)
			for i := range exps {
				exps[i] = ta.exps[i] + tb.exps[i]
			}
			out = append(out, rawTerm{coef: ta.coef.Mul(tb.coef), exps: exps})
		}
	}
	return out
}

// FromPolynomial rebuilds an Expression from p; total, never fails.
func FromPolynomial(p *Polynomial) core.Expr {
	var terms []core.Expr
	for key, exps := range p.Terms {
		coef := p.Coefs[key]
		terms = append(terms, monomialExpr(coef, exps, p.Vars))
	}
	return core.Add(terms...)
}

func monomialExpr(coef core.BigRat, exps []int, vars []string) core.Expr {
	factors := []core.Expr{core.NormalizeRat(coef)}
	for i, e := range exps {
		if e == 0 {
			continue
		}
		factors = append(factors, core.Pow(core.Symbol(vars[i]), core.Integer(int64(e))))
	}
	return core.Mul(factors...)
}
