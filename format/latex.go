package format

import (
	"strconv"
	"strings"

	"github.com/client9/symkernel/core"
)

var latexFunctionNames = map[string]string{
	"sin": "\\sin", "cos": "\\cos", "tan": "\\tan",
	"asin": "\\arcsin", "acos": "\\arccos", "atan": "\\arctan",
	"sinh": "\\sinh", "cosh": "\\cosh", "tanh": "\\tanh",
	"exp": "\\exp", "log": "\\log",
}

// LaTeX renders e in LaTeX math syntax (spec §4.4). No dollar-sign
// wrapping is added — that is the binding's job per spec §4.4.
func LaTeX(e core.Expr) string {
	return latexAt(e, precEquation)
}

func latexAt(e core.Expr, context int) string {
	s := latexNode(e)
	if precedenceOf(e) > context {
		return "\\left(" + s + "\\right)"
	}
	return s
}

func latexNode(e core.Expr) string {
	switch v := e.(type) {
	case core.IntegerExpr:
		return v.Value.String()
	case core.RationalExpr:
		return "\\frac{" + v.Value.Num().String() + "}{" + v.Value.Denom().String() + "}"
	case core.FloatExpr:
		return strconv.FormatFloat(v.Value.Float64(), 'g', -1, 64)
	case core.SymbolExpr:
		return v.Name
	case core.AddExpr:
		var parts []string
		for i, op := range v.Operands {
			neg, pos := splitNegative(op)
			s := latexAt(pos, precSum)
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
		if r, ok := asDivision(v); ok {
			return "\\frac{" + latexAt(r.num, precEquation) + "}{" + latexAt(r.den, precEquation) + "}"
		}
		parts := make([]string, len(v.Operands))
		for i, op := range v.Operands {
			parts[i] = latexAt(op, precProduct)
		}
		return strings.Join(parts, " \\cdot ")
	case core.PowExpr:
		base := latexAt(v.Base, precAtom)
		if core.NumericSign(v.Base) < 0 {
			base = "\\left(" + latexNode(v.Base) + "\\right)"
		}
		return base + "^{" + latexNode(v.Exp) + "}"
	case core.FunctionExpr:
		if v.Name == "sqrt" {
			return "\\sqrt{" + latexAt(v.Args[0], precEquation) + "}"
		}
		if v.Name == "abs" {
			return "\\left|" + latexAt(v.Args[0], precEquation) + "\\right|"
		}
		name, ok := latexFunctionNames[v.Name]
		if !ok {
			name = "\\operatorname{" + v.Name + "}"
		}
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = latexAt(a, precEquation)
		}
		return name + "\\left(" + strings.Join(args, ", ") + "\\right)"
	case core.EquationExpr:
		return latexAt(v.LHS, precEquation) + " = " + latexAt(v.RHS, precEquation)
	}
	return "?"
}

type division struct{ num, den core.Expr }

// asDivision recognizes a Mul with a factor Pow(_, e) whose exponent e
// is a negative number (the first such factor is used) and rewrites it
// as a LaTeX \frac{}{} rather than a·b^{-1}.
func asDivision(m core.MulExpr) (division, bool) {
	for i, op := range m.Operands {
		if p, ok := op.(core.PowExpr); ok && core.IsNumericExpr(p.Exp) && core.NumericSign(p.Exp) < 0 {
			rest := append(append([]core.Expr{}, m.Operands[:i]...), m.Operands[i+1:]...)
			den := core.Pow(p.Base, core.NumericNeg(p.Exp))
			num := core.Mul(rest...)
			return division{num: num, den: den}, true
		}
	}
	return division{}, false
}
