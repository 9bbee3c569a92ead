package core

// Smart constructors. Each applies the shallow-canonical flattening
// and identity rules of spec §3; full (deep, fixpoint) canonicalization
// is the simplifier's job per §4.2. Grounded in shape on the teacher's
// core/constructors.go, generalized from atom-only constructors to the
// full nine-variant expression grammar.

func Integer(n int64) Expr { return IntegerExpr{Value: IntFromInt64(n)} }

func IntegerBig(n BigInt) Expr { return IntegerExpr{Value: n} }

// Rational builds p/q, reducing and normalizing sign; collapses to
// Integer when q divides p. Returns InvalidArgument for q == 0.
func Rational(p, q int64) (Expr, error) {
	r, err := RatFromFrac(IntFromInt64(p), IntFromInt64(q))
	if err != nil {
		return nil, err
	}
	return NormalizeRat(r), nil
}

// Float builds a Float constant; returns InvalidArgument for non-finite x.
func Float(x float64) (Expr, error) {
	mf, err := FloatFromFloat64(x)
	if err != nil {
		return nil, err
	}
	return FloatExpr{Value: mf}, nil
}

func Symbol(name string) Expr { return SymbolExpr{Name: name} }

// Add builds an n-ary sum: flattens nested Add operands, folds all
// numeric operands into one constant, drops a zero constant, and
// collapses to the sole remaining operand or to Integer(0) if empty.
// Operands are placed in canonical order (spec §3).
func Add(xs ...Expr) Expr {
	var flat []Expr
	var sum Expr = Integer(0)
	for _, x := range xs {
		switch v := x.(type) {
		case AddExpr:
			flat = append(flat, v.Operands...)
		default:
			flat = append(flat, x)
		}
	}
	var kept []Expr
	for _, x := range flat {
		if IsNumericExpr(x) {
			sum = NumericAdd(sum, x)
		} else {
			kept = append(kept, x)
		}
	}
	if !NumericIsZero(sum) || len(kept) == 0 {
		kept = append(kept, sum)
	}
	if len(kept) == 0 {
		return Integer(0)
	}
	if len(kept) == 1 {
		return kept[0]
	}
	sortExprs(kept, Less)
	return AddExpr{Operands: kept}
}

// Mul builds an n-ary product: flattens nested Mul operands, folds
// numeric operands into one constant, short-circuits to Integer(0) if
// any factor is zero, drops a one constant, and collapses singletons.
func Mul(xs ...Expr) Expr {
	var flat []Expr
	for _, x := range xs {
		switch v := x.(type) {
		case MulExpr:
			flat = append(flat, v.Operands...)
		default:
			flat = append(flat, x)
		}
	}
	var prod Expr = Integer(1)
	var kept []Expr
	for _, x := range flat {
		if IsNumericExpr(x) {
			if NumericIsZero(x) {
				return Integer(0)
			}
			prod = NumericMul(prod, x)
		} else {
			kept = append(kept, x)
		}
	}
	if NumericIsZero(prod) {
		return Integer(0)
	}
	if !NumericIsOne(prod) || len(kept) == 0 {
		kept = append(kept, prod)
	}
	if len(kept) == 0 {
		return Integer(1)
	}
	if len(kept) == 1 {
		return kept[0]
	}
	sortExprs(kept, Less)
	return MulExpr{Operands: kept}
}

// Pow builds base^exp, applying the zero/one/identity rules of spec §3:
// Pow(_, 0) -> 1 (base nonzero), Pow(_, 1) -> base, Pow(0, positive) -> 0.
func Pow(base, exp Expr) Expr {
	if IsNumericExpr(exp) {
		if NumericIsZero(exp) {
			if IsNumericExpr(base) && NumericIsZero(base) {
				// 0^0 is left symbolic: the source disagrees on a value.
				return PowExpr{Base: base, Exp: exp}
			}
			return Integer(1)
		}
		if NumericIsOne(exp) {
			return base
		}
	}
	if IsNumericExpr(base) && NumericIsZero(base) && IsNumericExpr(exp) && NumericSign(exp) > 0 {
		return Integer(0)
	}
	return PowExpr{Base: base, Exp: exp}
}

// Function builds a named function call, validating arity against
// FunctionArity for known elementary functions; unknown names are
// treated as opaque user functions with no arity check.
func Function(name string, args ...Expr) (Expr, error) {
	if arities, known := FunctionArity[name]; known {
		ok := false
		for _, n := range arities {
			if n == len(args) {
				ok = true
				break
			}
		}
		if !ok {
			return nil, NewError(ErrInvalidArity, "%s expects %v argument(s), got %d", name, arities, len(args))
		}
	}
	return FunctionExpr{Name: name, Args: args}, nil
}

// MustFunction panics on arity mismatch; used internally where the
// name/arity pair is known to be valid by construction.
func MustFunction(name string, args ...Expr) Expr {
	e, err := Function(name, args...)
	if err != nil {
		panic(err)
	}
	return e
}

func Equation(lhs, rhs Expr) Expr { return EquationExpr{LHS: lhs, RHS: rhs} }
