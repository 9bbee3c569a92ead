package core

// Less implements the deterministic total order on expression shape
// required by spec §3: numeric constants first, then by variant tag,
// then by structural comparison of attributes, symbols compared
// lexicographically by identifier. Grounded on the teacher's
// core.CanonicalCompare (core/compare.go), which ranks numbers before
// non-numbers and falls back to a length/string comparison; this
// version replaces the length/string fallback with a structural,
// tag-driven comparison so that equal-after-simplify expressions are
// guaranteed identical, not merely string-equal.
func Less(a, b Expr) bool {
	an, aIsNum := isNumeric(a)
	bn, bIsNum := isNumeric(b)
	if aIsNum && bIsNum {
		return numericLess(an, bn)
	}
	if aIsNum != bIsNum {
		return aIsNum // numbers sort first
	}
	if a.Kind() != b.Kind() {
		return a.Kind() < b.Kind()
	}
	switch av := a.(type) {
	case SymbolExpr:
		bv := b.(SymbolExpr)
		return av.Name < bv.Name
	case AddExpr:
		bv := b.(AddExpr)
		return lessSeq(av.Operands, bv.Operands)
	case MulExpr:
		bv := b.(MulExpr)
		return lessSeq(av.Operands, bv.Operands)
	case PowExpr:
		bv := b.(PowExpr)
		if !av.Base.Equal(bv.Base) {
			return Less(av.Base, bv.Base)
		}
		return Less(av.Exp, bv.Exp)
	case FunctionExpr:
		bv := b.(FunctionExpr)
		if av.Name != bv.Name {
			return av.Name < bv.Name
		}
		return lessSeq(av.Args, bv.Args)
	case EquationExpr:
		bv := b.(EquationExpr)
		if !av.LHS.Equal(bv.LHS) {
			return Less(av.LHS, bv.LHS)
		}
		return Less(av.RHS, bv.RHS)
	}
	return false
}

func lessSeq(a, b []Expr) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i].Equal(b[i]) {
			continue
		}
		return Less(a[i], b[i])
	}
	return len(a) < len(b)
}

// numericValue is a normalized, comparable view of any numeric Expr.
type numericValue struct {
	rat   BigRat
	isRat bool
	flt   MachineFloat
}

func isNumeric(e Expr) (numericValue, bool) {
	switch v := e.(type) {
	case IntegerExpr:
		return numericValue{rat: RatFromInt(v.Value), isRat: true}, true
	case RationalExpr:
		return numericValue{rat: v.Value, isRat: true}, true
	case FloatExpr:
		return numericValue{flt: v.Value}, true
	}
	return numericValue{}, false
}

func numericLess(a, b numericValue) bool {
	if a.isRat && b.isRat {
		return a.rat.Cmp(b.rat) < 0
	}
	af, bf := a.asFloat(), b.asFloat()
	return af < bf
}

func (n numericValue) asFloat() float64 {
	if n.isRat {
		return n.rat.Float64()
	}
	return n.flt.Float64()
}
