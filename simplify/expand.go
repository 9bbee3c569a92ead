package simplify

import "github.com/client9/symkernel/core"

// Expand distributes products over sums and expands nonnegative
// integer powers of sums via binomial expansion, per spec §4.5. The
// result is run back through Simplify before return.
func Expand(e core.Expr) core.Expr {
	return Simplify(expandNode(core.MapChildren(e, Expand)))
}

func expandNode(e core.Expr) core.Expr {
	switch v := e.(type) {
	case core.MulExpr:
		return expandMul(v.Operands)
	case core.PowExpr:
		if a, ok := v.Base.(core.AddExpr); ok {
			if n, ok := nonnegIntExp(v.Exp); ok {
				return expandBinomial(a, n)
			}
		}
	}
	return e
}

// expandMul distributes a product of (possibly Add) factors into a
// sum of products, one term per combination of operand-from-each-Add.
func expandMul(factors []core.Expr) core.Expr {
	terms := []core.Expr{core.Integer(1)}
	for _, f := range factors {
		a, ok := f.(core.AddExpr)
		if !ok {
			for i := range terms {
				terms[i] = core.Mul(terms[i], f)
			}
			continue
		}
		var next []core.Expr
		for _, t := range terms {
			for _, op := range a.Operands {
				next = append(next, core.Mul(t, op))
			}
		}
		terms = next
	}
	return core.Add(terms...)
}

func nonnegIntExp(e core.Expr) (uint64, bool) {
	iv, ok := e.(core.IntegerExpr)
	if !ok {
		return 0, false
	}
	n, exact := iv.Value.Int64()
	if !exact || n < 0 {
		return 0, false
	}
	return uint64(n), true
}

// expandBinomial expands (a0+a1+...)^n via repeated multinomial
// multiplication: the running product is distributed against the sum
// n-1 times (no repeated squaring).
func expandBinomial(a core.AddExpr, n uint64) core.Expr {
	if n == 0 {
		return core.Integer(1)
	}
	result := core.Expr(a)
	for i := uint64(1); i < n; i++ {
		result = expandMul([]core.Expr{result, a})
	}
	return result
}
