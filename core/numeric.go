package core

import "math"

// NumericAdd, NumericMul, NumericPow implement the promotion rules of
// spec §4.1: Float wins over Rational wins over Integer. These are the
// arithmetic primitives the constructors, simplifier and polynomial
// layer all share for folding pure-numeric subtrees.

func IsNumericExpr(e Expr) bool {
	switch e.(type) {
	case IntegerExpr, RationalExpr, FloatExpr:
		return true
	}
	return false
}

func AsFloat64(e Expr) (float64, bool) {
	switch v := e.(type) {
	case IntegerExpr:
		return v.Value.Float64(), true
	case RationalExpr:
		return v.Value.Float64(), true
	case FloatExpr:
		return v.Value.Float64(), true
	}
	return 0, false
}

// NumericAdd adds two numeric Exprs, returning a normalized numeric Expr.
func NumericAdd(a, b Expr) Expr {
	if af, aIsF := a.(FloatExpr); aIsF {
		bf, _ := AsFloat64(b)
		return mustFloat(af.Value.Float64() + bf)
	}
	if bf, bIsF := b.(FloatExpr); bIsF {
		af, _ := AsFloat64(a)
		return mustFloat(af + bf.Value.Float64())
	}
	return NormalizeRat(ratOf(a).Add(ratOf(b)))
}

func NumericSub(a, b Expr) Expr { return NumericAdd(a, NumericNeg(b)) }

func NumericMul(a, b Expr) Expr {
	if af, aIsF := a.(FloatExpr); aIsF {
		bf, _ := AsFloat64(b)
		return mustFloat(af.Value.Float64() * bf)
	}
	if bf, bIsF := b.(FloatExpr); bIsF {
		af, _ := AsFloat64(a)
		return mustFloat(af * bf.Value.Float64())
	}
	return NormalizeRat(ratOf(a).Mul(ratOf(b)))
}

// NumericPow raises a numeric base to a numeric exponent. Integer
// exponents fold Integer/Rational bases exactly via BigRat.PowInt (Inv
// first for negative exponents); a Float operand on either side folds
// through float64 math.Pow since that side is already inexact. A
// non-integer Rational exponent on an exact base (such as Pow(2, 1/2),
// an exact irrational) is left
// unfolded: collapsing it to math.Pow would silently turn an exact
// symbolic root into an inexact float, which only a Float operand
// should trigger.
func NumericPow(base, exp Expr) (Expr, bool) {
	if ef, ok := exp.(FloatExpr); ok {
		bf, _ := AsFloat64(base)
		return mustFloat(math.Pow(bf, ef.Value.Float64())), true
	}
	if bf, ok := base.(FloatExpr); ok {
		ef, _ := AsFloat64(exp)
		return mustFloat(math.Pow(bf.Value.Float64(), ef)), true
	}
	er, ok := exp.(IntegerExpr)
	if !ok {
		return nil, false
	}
	n, exact := er.Value.Int64()
	if !exact {
		return nil, false
	}
	br := ratOf(base)
	if n < 0 {
		inv, err := br.Inv()
		if err != nil {
			return nil, false
		}
		return NormalizeRat(inv.PowInt(uint64(-n))), true
	}
	return NormalizeRat(br.PowInt(uint64(n))), true
}

func NumericNeg(a Expr) Expr {
	switch v := a.(type) {
	case IntegerExpr:
		return IntegerExpr{Value: v.Value.Neg()}
	case RationalExpr:
		return NormalizeRat(v.Value.Neg())
	case FloatExpr:
		return mustFloat(-v.Value.Float64())
	}
	return a
}

func NumericIsZero(a Expr) bool {
	switch v := a.(type) {
	case IntegerExpr:
		return v.Value.IsZero()
	case RationalExpr:
		return v.Value.IsZero()
	case FloatExpr:
		return v.Value.IsZero()
	}
	return false
}

func NumericIsOne(a Expr) bool {
	switch v := a.(type) {
	case IntegerExpr:
		return v.Value.IsOne()
	case RationalExpr:
		return v.Value.IsInt() && v.Value.AsInt().IsOne()
	case FloatExpr:
		return v.Value.Float64() == 1.0
	}
	return false
}

func NumericSign(a Expr) int {
	switch v := a.(type) {
	case IntegerExpr:
		return v.Value.Sign()
	case RationalExpr:
		return v.Value.Sign()
	case FloatExpr:
		return v.Value.Sign()
	}
	return 0
}

func ratOf(e Expr) BigRat {
	switch v := e.(type) {
	case IntegerExpr:
		return RatFromInt(v.Value)
	case RationalExpr:
		return v.Value
	}
	return RatZero()
}

func mustFloat(f float64) Expr {
	mf, err := FloatFromFloat64(f)
	if err != nil {
		// Non-finite results surface as a symbolic marker rather than
		// panicking: callers that need strict domain checking go
		// through EvalContext's domain-checking path instead.
		return SymbolExpr{Name: "undefined"}
	}
	return FloatExpr{Value: mf}
}

// Neg negates any expression: numeric constants negate exactly,
// anything else becomes Mul(-1, e).
func Neg(e Expr) Expr {
	if IsNumericExpr(e) {
		return NumericNeg(e)
	}
	return Mul(Integer(-1), e)
}

// NormalizeRat collapses a BigRat down to IntegerExpr when the
// denominator is 1, enforcing the disjoint-ranges invariant of spec §3.
func NormalizeRat(r BigRat) Expr {
	if r.IsInt() {
		return IntegerExpr{Value: r.AsInt()}
	}
	return RationalExpr{Value: r}
}
