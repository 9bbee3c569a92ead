package engine

import (
	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/simplify"
)

// Substitute replaces every free occurrence of a bound symbol in e
// with its value from ctx, bottom-up, then simplifies the result
// (spec §4.9's substitute(map)).
func Substitute(e core.Expr, ctx EvalContext) core.Expr {
	replaced := substitute(e, ctx)
	return simplify.Simplify(replaced)
}

func substitute(e core.Expr, ctx EvalContext) core.Expr {
	if s, ok := e.(core.SymbolExpr); ok {
		if v, bound := ctx.Lookup(s.Name); bound {
			return v
		}
		return e
	}
	return core.MapChildren(e, func(c core.Expr) core.Expr { return substitute(c, ctx) })
}

// SubstituteMap is a convenience wrapper over Substitute for callers
// that have a plain map rather than an EvalContext (spec §4.9's
// substitute(map)).
func SubstituteMap(e core.Expr, bindings map[string]core.Expr) core.Expr {
	ctx := NewContext()
	for name, value := range bindings {
		ctx = ctx.WithVariable(name, value)
	}
	return Substitute(e, ctx)
}
