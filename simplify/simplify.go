// Package simplify implements the bottom-up, fixpoint rewrite pipeline
// of spec §4.5. Grounded on the teacher's rewrite-rule machinery
// (core/patterns.go, core/match.go, core/rule.go) — the same "pattern
// test, then rewrite" shape, retargeted from open-ended user-rule
// matching to the fixed rule groups this spec enumerates.
package simplify

import "github.com/client9/symkernel/core"

// Simplify returns a canonical form of e: bottom-up, idempotent on a
// settled tree, terminating within MaxPasses passes (fixpoint.go).
func Simplify(e core.Expr) core.Expr {
	return runToFixpoint(e, simplifyPass)
}

// simplifyPass applies one bottom-up pass: children first, then the
// rule groups of rules.go at this node.
func simplifyPass(e core.Expr) core.Expr {
	e = core.MapChildren(e, simplifyPass)
	return rewriteNode(e)
}

// rewriteNode applies, in spec §4.5's listed order, the rule groups
// that aren't already enforced by the smart constructors (constant
// folding and the x+0/x*1/x*0/x^0/x^1 identities happen inside
// core.Add/core.Mul/core.Pow themselves).
func rewriteNode(e core.Expr) core.Expr {
	switch v := e.(type) {
	case core.AddExpr:
		e = collectLikeTerms(v)
	case core.MulExpr:
		e = combinePowers(v)
		if m, ok := e.(core.MulExpr); ok {
			e = reduceRationalFraction(m)
		}
	case core.PowExpr:
		e = powRules(v)
	}
	// Equation itself is never rewritten to a - b = 0 here; spec §4.5
	// rule 9 keeps both sides intact for the user and routes the
	// normalized residual through Residual instead, for solver use.
	return targetedRewrite(e)
}

// Residual implements spec §4.5 rule 9: "a = b becomes a - b = 0 for
// solver consumption", without mutating the Equation value itself.
func Residual(eq core.EquationExpr) core.Expr {
	return Simplify(core.Add(eq.LHS, core.Neg(eq.RHS)))
}
