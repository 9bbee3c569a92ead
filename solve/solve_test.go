package solve

import (
	"testing"

	"github.com/client9/symkernel/core"
)

func TestSolveLinear(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	eq := core.Equation(core.Add(core.Mul(core.Integer(2), x), core.Integer(-6)), core.Integer(0)).(core.EquationExpr)
	result := Solve(eq, x)
	if result.Kind != KindSingle {
		t.Fatalf("kind = %v, want Single", result.Kind)
	}
	if !result.Solutions[0].Equal(core.Integer(3)) {
		t.Fatalf("root = %s, want 3", result.Solutions[0])
	}
}

func TestSolveQuadraticRealRoots(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	// x^2 - 5x + 6 = 0 -> x = 2 or 3
	f := core.Add(core.Pow(x, core.Integer(2)), core.Mul(core.Integer(-5), x), core.Integer(6))
	eq := core.Equation(f, core.Integer(0)).(core.EquationExpr)
	result := Solve(eq, x)
	if result.Kind != KindMultiple {
		t.Fatalf("kind = %v, want Multiple", result.Kind)
	}
	found2, found3 := false, false
	for _, s := range result.Solutions {
		if s.Equal(core.Integer(2)) {
			found2 = true
		}
		if s.Equal(core.Integer(3)) {
			found3 = true
		}
	}
	if !found2 || !found3 {
		t.Fatalf("roots = %v, want {2,3}", result.Solutions)
	}
}

func TestSolveQuadraticComplexRoots(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	// x^2 + 1 = 0 -> x = +-i
	f := core.Add(core.Pow(x, core.Integer(2)), core.Integer(1))
	eq := core.Equation(f, core.Integer(0)).(core.EquationExpr)
	result := Solve(eq, x)
	if result.Kind != KindMultiple || len(result.Solutions) != 2 {
		t.Fatalf("expected 2 complex roots, got %v", result.Solutions)
	}
}

func TestSolveDeduplicatesRepeatedRoot(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	// (x-1)^2 = x^2 - 2x + 1 = 0 -> double root at 1
	f := core.Add(core.Pow(x, core.Integer(2)), core.Mul(core.Integer(-2), x), core.Integer(1))
	eq := core.Equation(f, core.Integer(0)).(core.EquationExpr)
	result := Solve(eq, x)
	if result.Kind != KindMultiple {
		t.Fatalf("kind = %v, want Multiple", result.Kind)
	}
	if len(result.Solutions) != 1 {
		t.Fatalf("expected deduplication to a single root, got %v", result.Solutions)
	}
}

func TestSolveSystemLinear(t *testing.T) {
	x, y := core.Symbol("x").(core.SymbolExpr), core.Symbol("y").(core.SymbolExpr)
	// x + y = 3 ; x - y = 1 -> x=2, y=1
	eq1 := core.Equation(core.Add(x, y), core.Integer(3)).(core.EquationExpr)
	eq2 := core.Equation(core.Add(x, core.Neg(y)), core.Integer(1)).(core.EquationExpr)
	result := SolveSystem([]core.EquationExpr{eq1, eq2}, []core.SymbolExpr{x, y})
	if result.Kind != KindSingle {
		t.Fatalf("kind = %v, want Single", result.Kind)
	}
	if !result.Assignment[0].Equal(core.Integer(2)) || !result.Assignment[1].Equal(core.Integer(1)) {
		t.Fatalf("assignment = %v, want [2,1]", result.Assignment)
	}
}
