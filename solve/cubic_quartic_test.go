package solve

import (
	"math"
	"sort"
	"testing"

	"github.com/client9/symkernel/core"
)

func TestSolveCubicThreeRealRoots(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	// (x-1)(x-2)(x-3) = x^3 - 6x^2 + 11x - 6
	f := core.Add(
		core.Pow(x, core.Integer(3)),
		core.Mul(core.Integer(-6), core.Pow(x, core.Integer(2))),
		core.Mul(core.Integer(11), x),
		core.Integer(-6),
	)
	eq := core.Equation(f, core.Integer(0)).(core.EquationExpr)
	result := Solve(eq, x)
	if result.Kind != KindMultiple || len(result.Solutions) != 3 {
		t.Fatalf("expected 3 roots, got %v", result.Solutions)
	}
	var got []float64
	for _, s := range result.Solutions {
		v, ok := core.AsFloat64(s)
		if !ok {
			t.Fatalf("root %s is not real-numeric", s)
		}
		got = append(got, v)
	}
	sort.Float64s(got)
	want := []float64{1, 2, 3}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("roots = %v, want approximately %v", got, want)
		}
	}
}
