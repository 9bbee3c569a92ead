package solve

import (
	"math"
	"testing"

	"github.com/client9/symkernel/core"
)

func TestSolveExpLinear(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	// exp(x) - 5 = 0 -> x = log(5)
	f := core.Add(core.MustFunction("exp", x), core.Integer(-5))
	eq := core.Equation(f, core.Integer(0)).(core.EquationExpr)
	result := Solve(eq, x)
	if result.Kind != KindSingle || len(result.Solutions) != 1 {
		t.Fatalf("expected a single solution, got %+v", result)
	}
	want := core.MustFunction("log", core.Integer(5))
	if !result.Solutions[0].Equal(want) {
		t.Fatalf("solve(exp(x)-5=0) = %s, want %s", result.Solutions[0], want)
	}
}

func TestSolveExpLinearNonPositiveRHSHasNoSolution(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	// exp(x) + 1 = 0 -> log(-1), no real solution
	f := core.Add(core.MustFunction("exp", x), core.Integer(1))
	eq := core.Equation(f, core.Integer(0)).(core.EquationExpr)
	result := Solve(eq, x)
	if result.Kind != KindNoSolution {
		t.Fatalf("expected NoSolution, got %+v", result)
	}
}

func TestSolveLogLinear(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	// log(x) - 2 = 0 -> x = exp(2)
	f := core.Add(core.MustFunction("log", x), core.Integer(-2))
	eq := core.Equation(f, core.Integer(0)).(core.EquationExpr)
	result := Solve(eq, x)
	if result.Kind != KindSingle || len(result.Solutions) != 1 {
		t.Fatalf("expected a single solution, got %+v", result)
	}
	want := core.MustFunction("exp", core.Integer(2))
	if !result.Solutions[0].Equal(want) {
		t.Fatalf("solve(log(x)-2=0) = %s, want %s", result.Solutions[0], want)
	}
}

func TestSolveSinCosAmplitude(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	// sin(x) - 1 = 0 -> x = pi/2 (principal branch), via the numeric
	// amplitude-phase path (a=1, b=0, rest=-1).
	f := core.Add(core.MustFunction("sin", x), core.Integer(-1))
	eq := core.Equation(f, core.Integer(0)).(core.EquationExpr)
	result := Solve(eq, x)
	if result.Kind != KindSingle || len(result.Solutions) != 1 {
		t.Fatalf("expected a single solution, got %+v", result)
	}
	got, ok := core.AsFloat64(result.Solutions[0])
	if !ok {
		t.Fatalf("solution %s is not numeric", result.Solutions[0])
	}
	if math.Abs(got-math.Pi/2) > 1e-9 {
		t.Fatalf("solve(sin(x)-1=0) = %v, want pi/2", got)
	}
}

func TestSolveSinCosAmplitudeOutOfRangeHasNoSolution(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	// sin(x) - 5 = 0: amplitude 1 can never reach 5.
	f := core.Add(core.MustFunction("sin", x), core.Integer(-5))
	eq := core.Equation(f, core.Integer(0)).(core.EquationExpr)
	result := Solve(eq, x)
	if result.Kind != KindNoSolution {
		t.Fatalf("expected NoSolution, got %+v", result)
	}
}
