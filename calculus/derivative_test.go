package calculus

import (
	"testing"

	"github.com/client9/symkernel/core"
)

func TestDerivativePowerRule(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	e := core.Pow(x, core.Integer(3))
	got := Derivative(e, x)
	want := core.Mul(core.Integer(3), core.Pow(x, core.Integer(2)))
	if !got.Equal(want) {
		t.Fatalf("d(x^3)/dx = %s, want %s", got, want)
	}
}

func TestDerivativeProductRule(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	e := core.Mul(x, core.MustFunction("sin", x))
	got := Derivative(e, x)
	want := core.Add(core.MustFunction("sin", x), core.Mul(x, core.MustFunction("cos", x)))
	if !got.Equal(want) {
		t.Fatalf("d(x*sin(x))/dx = %s, want %s", got, want)
	}
}

func TestDerivativeChainRuleUnknownFunction(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	f := core.MustFunction("f", core.Pow(x, core.Integer(2)))
	got := Derivative(f, x)
	if _, ok := got.(core.MulExpr); !ok {
		t.Fatalf("expected a Mul wrapping the opaque partial, got %s (%T)", got, got)
	}
}

func TestDerivativeConstantIsZero(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	y := core.Symbol("y")
	got := Derivative(y, x)
	if !got.Equal(core.Integer(0)) {
		t.Fatalf("d(y)/dx = %s, want 0", got)
	}
}

func TestNthDerivativeOfSine(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	got := NthDerivative(core.MustFunction("sin", x), x, 2)
	want := core.Neg(core.MustFunction("sin", x))
	if !got.Equal(want) {
		t.Fatalf("d^2(sin x)/dx^2 = %s, want %s", got, want)
	}
}
