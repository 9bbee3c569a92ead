// Package calculus implements differentiation over the expression
// grammar of package core. Grounded on the teacher's builtins package:
// one function per case, dispatched by head, the way builtins/Sin.go,
// builtins/Log.go and friends are dispatched by the evaluator's symbol
// table rather than by a giant switch.
package calculus

import (
	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/simplify"
)

// Derivative computes d(e)/d(v) by structural recursion (spec §4.7),
// simplifying the result before returning it.
func Derivative(e core.Expr, v core.SymbolExpr) core.Expr {
	return simplify.Simplify(derive(e, v))
}

// NthDerivative applies Derivative n times, simplifying between steps
// so later differentiations see a reduced expression.
func NthDerivative(e core.Expr, v core.SymbolExpr, n int) core.Expr {
	result := e
	for i := 0; i < n; i++ {
		result = Derivative(result, v)
	}
	return result
}

func derive(e core.Expr, v core.SymbolExpr) core.Expr {
	switch node := e.(type) {
	case core.IntegerExpr, core.RationalExpr, core.FloatExpr:
		return core.Integer(0)
	case core.SymbolExpr:
		if node.Name == v.Name {
			return core.Integer(1)
		}
		return core.Integer(0)
	case core.AddExpr:
		return deriveAdd(node, v)
	case core.MulExpr:
		return deriveMul(node, v)
	case core.PowExpr:
		return derivePow(node, v)
	case core.FunctionExpr:
		return deriveFunction(node, v)
	case core.EquationExpr:
		return core.Equation(derive(node.LHS, v), derive(node.RHS, v))
	}
	return core.Integer(0)
}

// deriveAdd is linearity over children: d(sum)/dx = sum of d(term)/dx.
func deriveAdd(a core.AddExpr, v core.SymbolExpr) core.Expr {
	terms := make([]core.Expr, len(a.Operands))
	for i, op := range a.Operands {
		terms[i] = derive(op, v)
	}
	return core.Add(terms...)
}

// deriveMul is the generalised Leibniz rule over n factors: the
// derivative of a product is the sum, over each factor, of that
// factor's derivative times the product of all the others.
func deriveMul(m core.MulExpr, v core.SymbolExpr) core.Expr {
	n := len(m.Operands)
	terms := make([]core.Expr, n)
	for i := 0; i < n; i++ {
		factors := make([]core.Expr, 0, n)
		for j := 0; j < n; j++ {
			if j == i {
				factors = append(factors, derive(m.Operands[j], v))
			} else {
				factors = append(factors, m.Operands[j])
			}
		}
		terms[i] = core.Mul(factors...)
	}
	return core.Add(terms...)
}

// derivePow implements spec §4.7's power rule split: when the exponent
// does not depend on v, d(u^n)/dx = n*u^(n-1)*u'; otherwise the full
// log-derivative form d(u^v)/dx = u^v*(v'*log(u) + v*u'/u) applies.
func derivePow(p core.PowExpr, v core.SymbolExpr) core.Expr {
	du := derive(p.Base, v)
	if isConstantIn(p.Exp, v) {
		if core.NumericIsZero(du) {
			return core.Integer(0)
		}
		newExp := core.Add(p.Exp, core.Integer(-1))
		return core.Mul(p.Exp, core.Pow(p.Base, newExp), du)
	}
	dv := derive(p.Exp, v)
	logU := core.MustFunction("log", p.Base)
	term1 := core.Mul(dv, logU)
	term2 := core.Mul(p.Exp, du, core.Pow(p.Base, core.Integer(-1)))
	return core.Mul(p, core.Add(term1, term2))
}

func isConstantIn(e core.Expr, v core.SymbolExpr) bool {
	found := false
	core.Walk(e, func(n core.Expr) {
		if s, ok := n.(core.SymbolExpr); ok && s.Name == v.Name {
			found = true
		}
	})
	return !found
}

// elementaryDerivative is the table of analytic derivatives of named
// single-argument functions, each expressed as a function of the inner
// expression u alone: the chain rule multiplies the table entry by u'.
var elementaryDerivative = map[string]func(u core.Expr) core.Expr{
	"sin":  func(u core.Expr) core.Expr { return core.MustFunction("cos", u) },
	"cos":  func(u core.Expr) core.Expr { return core.Neg(core.MustFunction("sin", u)) },
	"tan": func(u core.Expr) core.Expr {
		return core.Pow(core.MustFunction("cos", u), core.Integer(-2))
	},
	"asin": func(u core.Expr) core.Expr {
		return core.Pow(core.Add(core.Integer(1), core.Neg(core.Pow(u, core.Integer(2)))), rationalHalfNeg)
	},
	"acos": func(u core.Expr) core.Expr {
		return core.Neg(core.Pow(core.Add(core.Integer(1), core.Neg(core.Pow(u, core.Integer(2)))), rationalHalfNeg))
	},
	"atan": func(u core.Expr) core.Expr {
		return core.Pow(core.Add(core.Integer(1), core.Pow(u, core.Integer(2))), core.Integer(-1))
	},
	"sinh": func(u core.Expr) core.Expr { return core.MustFunction("cosh", u) },
	"cosh": func(u core.Expr) core.Expr { return core.MustFunction("sinh", u) },
	"tanh": func(u core.Expr) core.Expr {
		return core.Pow(core.MustFunction("cosh", u), core.Integer(-2))
	},
	"exp": func(u core.Expr) core.Expr { return core.MustFunction("exp", u) },
	"sqrt": func(u core.Expr) core.Expr {
		return core.Mul(rationalHalf, core.Pow(u, rationalHalfNeg))
	},
}

var rationalHalf = mustRational(1, 2)
var rationalHalfNeg = mustRational(-1, 2)

func mustRational(p, q int64) core.Expr {
	e, err := core.Rational(p, q)
	if err != nil {
		panic(err)
	}
	return e
}

// deriveFunction handles named calls: known elementary functions via
// the table above (chain-ruled by the argument's own derivative),
// log's one- and two-argument forms, abs/gamma/factorial's documented
// special cases, and unknown functions via an opaque partial marker.
func deriveFunction(f core.FunctionExpr, v core.SymbolExpr) core.Expr {
	switch f.Name {
	case "log":
		return deriveLog(f, v)
	case "abs":
		u := f.Args[0]
		du := derive(u, v)
		return core.Mul(core.MustFunction("sign", u), du)
	case "gamma":
		u := f.Args[0]
		du := derive(u, v)
		// gamma' = gamma * digamma, left as a named placeholder per
		// spec §4.7: digamma has no closed elementary form here.
		return core.Mul(core.MustFunction("gamma", u), core.MustFunction("digamma", u), du)
	case "factorial":
		// Symbolic factorial has no elementary derivative; left
		// unevaluated via the opaque-partial marker below.
		return derivePartial(f, v)
	}
	if rule, ok := elementaryDerivative[f.Name]; ok && len(f.Args) == 1 {
		u := f.Args[0]
		du := derive(u, v)
		return core.Mul(rule(u), du)
	}
	return derivePartial(f, v)
}

// deriveLog handles both log(u) -> u'/u and the two-argument
// log(u, b) -> u'/(u*log(b)) form (b need not depend on v; if it
// does, b's term is still captured via the general chain rule since
// log(u,b) = log(u)/log(b) reduces to a quotient of two derivable
// subexpressions).
func deriveLog(f core.FunctionExpr, v core.SymbolExpr) core.Expr {
	u := f.Args[0]
	du := derive(u, v)
	if len(f.Args) == 1 {
		return core.Mul(du, core.Pow(u, core.Integer(-1)))
	}
	b := f.Args[1]
	if isConstantIn(b, v) {
		return core.Mul(du, core.Pow(core.Mul(u, core.MustFunction("log", b)), core.Integer(-1)))
	}
	// log(u)/log(b) with both argument dependent on v: quotient rule.
	logU, logB := core.MustFunction("log", u), core.MustFunction("log", b)
	dLogU := core.Mul(du, core.Pow(u, core.Integer(-1)))
	dLogB := core.Mul(derive(b, v), core.Pow(b, core.Integer(-1)))
	numerator := core.Add(core.Mul(dLogU, logB), core.Neg(core.Mul(logU, dLogB)))
	return core.Mul(numerator, core.Pow(logB, core.Integer(-2)))
}

// derivePartial chain-rules an unknown function call: for each
// argument depending on v, introduces an opaque partial
// Function("D",[f,i]) multiplied by that argument's derivative (spec
// §4.7), so downstream code can recognise or discard the marker.
func derivePartial(f core.FunctionExpr, v core.SymbolExpr) core.Expr {
	var terms []core.Expr
	for i, arg := range f.Args {
		if isConstantIn(arg, v) {
			continue
		}
		da := derive(arg, v)
		partial := core.MustFunction("D", f, core.Integer(int64(i)))
		terms = append(terms, core.Mul(partial, da))
	}
	if len(terms) == 0 {
		return core.Integer(0)
	}
	return core.Add(terms...)
}
