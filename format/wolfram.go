package format

import (
	"strconv"
	"strings"

	"github.com/client9/symkernel/core"
)

var wolframHeadNames = map[string]string{
	"sin": "Sin", "cos": "Cos", "tan": "Tan",
	"asin": "ArcSin", "acos": "ArcCos", "atan": "ArcTan",
	"sinh": "Sinh", "cosh": "Cosh", "tanh": "Tanh",
	"exp": "Exp", "log": "Log", "sqrt": "Sqrt", "abs": "Abs",
	"factorial": "Factorial", "gamma": "Gamma", "binomial": "Binomial",
}

// Wolfram renders e in Mathematica-style head[args] notation.
func Wolfram(e core.Expr) string {
	return wolframAt(e, precEquation)
}

func wolframAt(e core.Expr, context int) string {
	s := wolframNode(e)
	if precedenceOf(e) > context {
		return "(" + s + ")"
	}
	return s
}

func wolframNode(e core.Expr) string {
	switch v := e.(type) {
	case core.IntegerExpr:
		return v.Value.String()
	case core.RationalExpr:
		return v.Value.Num().String() + "/" + v.Value.Denom().String()
	case core.FloatExpr:
		return strconv.FormatFloat(v.Value.Float64(), 'g', -1, 64)
	case core.SymbolExpr:
		return capitalize(v.Name)
	case core.AddExpr:
		var parts []string
		for i, op := range v.Operands {
			neg, pos := splitNegative(op)
			s := wolframAt(pos, precSum)
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
			parts[i] = wolframAt(op, precProduct)
		}
		return strings.Join(parts, "*")
	case core.PowExpr:
		return wolframAt(v.Base, precAtom) + "^" + wolframAt(v.Exp, precPower)
	case core.FunctionExpr:
		head, ok := wolframHeadNames[v.Name]
		if !ok {
			head = capitalize(v.Name)
		}
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = wolframAt(a, precEquation)
		}
		return head + "[" + strings.Join(args, ", ") + "]"
	case core.EquationExpr:
		return wolframAt(v.LHS, precEquation) + " == " + wolframAt(v.RHS, precEquation)
	}
	return "?"
}

// capitalize mirrors the inverse of the parser's lowercase-first-letter
// fallback for unrecognized Wolfram heads (parseIdentOrCall in
// parser/parser.go).
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
