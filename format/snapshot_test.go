package format_test

import (
	"fmt"
	"testing"

	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/format"
	"github.com/client9/symkernel/simplify"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFormatDialectsSnapshot renders a fixed set of simplified
// expressions through all three output dialects and snapshots the
// result, the way the pack's fixture-driven suites pin down rendered
// output across a whole corpus of inputs at once rather than one
// hand-written expected string per case.
func TestFormatDialectsSnapshot(t *testing.T) {
	x := core.Symbol("x")
	y := core.Symbol("y")
	half, _ := core.Rational(1, 2)

	exprs := map[string]core.Expr{
		"polynomial": simplify.Simplify(core.Add(
			core.Mul(core.Integer(3), core.Pow(x, core.Integer(2))),
			core.Mul(core.Integer(-2), x),
			core.Integer(5),
		)),
		"fraction": simplify.Simplify(core.Mul(half, x, y)),
		"equation": core.Equation(core.Add(x, core.Integer(1)), core.Integer(0)),
		"function": core.MustFunction("sin", x),
	}

	for name, e := range exprs {
		snaps.MatchSnapshot(t, fmt.Sprintf("%s_simple", name), format.Simple(e))
		snaps.MatchSnapshot(t, fmt.Sprintf("%s_latex", name), format.LaTeX(e))
		snaps.MatchSnapshot(t, fmt.Sprintf("%s_wolfram", name), format.Wolfram(e))
	}
}
