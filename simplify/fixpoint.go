package simplify

import "github.com/client9/symkernel/core"

// MaxPasses bounds the fixpoint loop (spec §4.5's termination
// argument): every rule either strictly decreases a lexicographic
// measure or runs at most once per pass, so in practice a handful of
// passes suffice; this cap guards against an incorrectly-nonterminating
// rule combination rather than normal convergence.
const MaxPasses = 50

// runToFixpoint repeatedly applies pass to e until it stops changing
// (structural equality) or MaxPasses is reached.
func runToFixpoint(e core.Expr, pass func(core.Expr) core.Expr) core.Expr {
	cur := e
	for i := 0; i < MaxPasses; i++ {
		next := pass(cur)
		if next.Equal(cur) {
			return next
		}
		cur = next
	}
	return cur
}
