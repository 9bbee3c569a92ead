// Package format renders core.Expr values back to text in the three
// dialects of spec §4.4. Grounded on the teacher's core/formatting.go,
// which drives parenthesization from an operator-precedence table;
// that same table is reused here for all three dialects, only the
// leaf/operator spelling changes per dialect.
package format

import (
	"strconv"
	"strings"

	"github.com/client9/symkernel/core"
)

// precedence mirrors the parser's precedence ladder so that
// parenthesization is exactly the formatter's left-inverse of parsing
// (spec §4.4's round-trip requirement).
const (
	precAtom = iota
	precPower
	precUnary
	precProduct
	precSum
	precEquation
)

func precedenceOf(e core.Expr) int {
	switch e.(type) {
	case core.AddExpr:
		return precSum
	case core.MulExpr:
		return precProduct
	case core.PowExpr:
		return precPower
	case core.EquationExpr:
		return precEquation
	}
	return precAtom
}

// Simple renders e in the single-line ASCII dialect (*, /, ^) that is
// the canonical textual interchange format (spec §6): it is the left
// inverse of Parse on canonical expressions.
func Simple(e core.Expr) string {
	return simpleAt(e, precEquation)
}

func simpleAt(e core.Expr, context int) string {
	s := simpleNode(e)
	if precedenceOf(e) > context {
		return "(" + s + ")"
	}
	return s
}

func simpleNode(e core.Expr) string {
	switch v := e.(type) {
	case core.IntegerExpr:
		return v.Value.String()
	case core.RationalExpr:
		return v.Value.Num().String() + "/" + v.Value.Denom().String()
	case core.FloatExpr:
		return formatFloat(v.Value.Float64())
	case core.SymbolExpr:
		return v.Name
	case core.AddExpr:
		var parts []string
		for i, op := range v.Operands {
			neg, pos := splitNegative(op)
			s := simpleAt(pos, precSum)
			switch {
			case i == 0 && neg:
				parts = append(parts, "-"+s)
			case i == 0:
				parts = append(parts, s)
			case neg:
				parts = append(parts, "- "+s)
			default:
				parts = append(parts, "+ "+s)
			}
		}
		return strings.Join(parts, " ")
	case core.MulExpr:
		parts := make([]string, len(v.Operands))
		for i, op := range v.Operands {
			parts[i] = simpleAt(op, precProduct)
		}
		return strings.Join(parts, "*")
	case core.PowExpr:
		base := simpleAt(v.Base, precAtom)
		if core.NumericSign(v.Base) < 0 {
			base = "(" + simpleNode(v.Base) + ")"
		}
		exp := simpleAt(v.Exp, precPower)
		if core.NumericSign(v.Exp) < 0 {
			exp = "(" + simpleNode(v.Exp) + ")"
		}
		return base + "^" + exp
	case core.FunctionExpr:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = simpleAt(a, precEquation)
		}
		return v.Name + "(" + strings.Join(args, ", ") + ")"
	case core.EquationExpr:
		return simpleAt(v.LHS, precEquation) + " = " + simpleAt(v.RHS, precEquation)
	}
	return "?"
}

// splitNegative detects a negative leading coefficient (a bare
// negative constant, or a Mul whose first canonical-order operand is
// a negative constant) so Add can print "a - b" instead of "a + -b".
func splitNegative(e core.Expr) (neg bool, magnitude core.Expr) {
	if core.IsNumericExpr(e) && core.NumericSign(e) < 0 {
		return true, core.NumericNeg(e)
	}
	if m, ok := e.(core.MulExpr); ok && len(m.Operands) > 0 {
		first := m.Operands[0]
		if core.IsNumericExpr(first) && core.NumericSign(first) < 0 {
			rest := append([]core.Expr{core.NumericNeg(first)}, m.Operands[1:]...)
			return true, core.Mul(rest...)
		}
	}
	return false, e
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
