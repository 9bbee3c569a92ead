package calculus

import (
	"testing"

	"github.com/client9/symkernel/core"
)

func TestIntegratePowerRule(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	got, err := Integrate(core.Pow(x, core.Integer(2)), x)
	if err != nil {
		t.Fatal(err)
	}
	third, _ := core.Rational(1, 3)
	want := core.Mul(third, core.Pow(x, core.Integer(3)))
	if !got.Equal(want) {
		t.Fatalf("integrate(x^2) = %s, want %s", got, want)
	}
}

func TestIntegrateSin(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	got, err := Integrate(core.MustFunction("sin", x), x)
	if err != nil {
		t.Fatal(err)
	}
	want := core.Neg(core.MustFunction("cos", x))
	if !got.Equal(want) {
		t.Fatalf("integrate(sin x) = %s, want %s", got, want)
	}
}

func TestIntegrateSumOfPowers(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	e := core.Add(core.Pow(x, core.Integer(2)), x)
	got, err := Integrate(e, x)
	if err != nil {
		t.Fatal(err)
	}
	half, _ := core.Rational(1, 2)
	third, _ := core.Rational(1, 3)
	want := core.Add(core.Mul(third, core.Pow(x, core.Integer(3))), core.Mul(half, core.Pow(x, core.Integer(2))))
	if !got.Equal(want) {
		t.Fatalf("integrate(x^2+x) = %s, want %s", got, want)
	}
}

func TestIntegrateUnsupportedShapeErrors(t *testing.T) {
	x := core.Symbol("x").(core.SymbolExpr)
	_, err := Integrate(core.MustFunction("gamma", x), x)
	if !core.IsKind(err, core.ErrUnsupportedShape) {
		t.Fatalf("expected ErrUnsupportedShape, got %v", err)
	}
}
