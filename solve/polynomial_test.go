package solve

import (
	"sort"
	"testing"

	"github.com/client9/symkernel/core"
)

// TestSolveQuinticWithRationalRoots exercises solveHighDegree's
// rational-root-factoring path: (x-1)(x-2)(x-3)(x-4)(x-5) expands to
// x^5-15x^4+85x^3-225x^2+274x-120, fully factored by poly.Factor into
// five linear pieces with no irreducible remainder.
func TestSolveQuinticWithRationalRoots(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	f := core.Add(
		core.Pow(x, core.Integer(5)),
		core.Mul(core.Integer(-15), core.Pow(x, core.Integer(4))),
		core.Mul(core.Integer(85), core.Pow(x, core.Integer(3))),
		core.Mul(core.Integer(-225), core.Pow(x, core.Integer(2))),
		core.Mul(core.Integer(274), x),
		core.Integer(-120),
	)
	eq := core.Equation(f, core.Integer(0)).(core.EquationExpr)
	result := Solve(eq, x)
	if result.Kind != KindMultiple || len(result.Solutions) != 5 {
		t.Fatalf("expected 5 rational roots, got %+v", result)
	}
	var got []float64
	for _, s := range result.Solutions {
		v, ok := core.AsFloat64(s)
		if !ok {
			t.Fatalf("root %s is not numeric", s)
		}
		got = append(got, v)
	}
	sort.Float64s(got)
	want := []float64{1, 2, 3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("roots = %v, want %v", got, want)
		}
	}
}

// TestSolveHighDegreeWithIrreducibleRemainder checks that a
// higher-degree factor poly.Factor cannot split surfaces as a roots_of
// marker rather than being silently dropped: (x-1)*(x^5+x+1), where the
// quintic factor has no rational root (rational root theorem admits
// only +-1, neither of which satisfies it), so Factor leaves it whole
// even though it splits over Q as (x^2+x+1)(x^3-x^2+1).
func TestSolveHighDegreeWithIrreducibleRemainder(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	quintic := core.Add(core.Pow(x, core.Integer(5)), x, core.Integer(1))
	linear := core.Add(x, core.Integer(-1))
	f := expandProduct(linear, quintic)
	eq := core.Equation(f, core.Integer(0)).(core.EquationExpr)
	result := Solve(eq, x)
	if result.Kind != KindMultiple {
		t.Fatalf("expected KindMultiple, got %+v", result)
	}
	foundLinearRoot := false
	foundMarker := false
	for _, s := range result.Solutions {
		if s.Equal(core.Integer(1)) {
			foundLinearRoot = true
		}
		if fn, ok := s.(core.FunctionExpr); ok && fn.Name == "roots_of" {
			foundMarker = true
		}
	}
	if !foundLinearRoot {
		t.Fatalf("expected root x=1 among solutions, got %+v", result.Solutions)
	}
	if !foundMarker {
		t.Fatalf("expected an unresolved roots_of marker, got %+v", result.Solutions)
	}
}

// expandProduct multiplies two small polynomials given as sums,
// sufficient for building a product of a known-linear factor and a
// factor with no rational root for the test above.
func expandProduct(a, b core.Expr) core.Expr {
	aSum, aOK := a.(core.AddExpr)
	bSum, bOK := b.(core.AddExpr)
	aTerms := []core.Expr{a}
	if aOK {
		aTerms = aSum.Operands
	}
	bTerms := []core.Expr{b}
	if bOK {
		bTerms = bSum.Operands
	}
	var terms []core.Expr
	for _, ta := range aTerms {
		for _, tb := range bTerms {
			terms = append(terms, core.Mul(ta, tb))
		}
	}
	return core.Add(terms...)
}
