package format

import (
	"testing"

	"github.com/client9/symkernel/core"
)

func TestSimpleRoundTripsPolynomial(t *testing.T) {
	x := core.Symbol("x")
	e := core.Add(core.Pow(x, core.Integer(2)), core.Mul(core.Integer(3), x), core.Integer(-5))
	got := Simple(e)
	// canonical order sorts the numeric constant first (spec §3).
	want := "-5 + 3*x + x^2"
	if got != want {
		t.Fatalf("Simple() = %q, want %q", got, want)
	}
}

func TestSimpleParenthesizesNegativeBaseInPower(t *testing.T) {
	e := core.Pow(core.Integer(-2), core.Integer(3))
	got := Simple(e)
	want := "(-2)^3"
	if got != want {
		t.Fatalf("Simple() = %q, want %q", got, want)
	}
}

func TestSimpleParenthesizesNegativeExponent(t *testing.T) {
	e := core.Pow(core.Symbol("x"), core.Integer(-1))
	got := Simple(e)
	want := "x^(-1)"
	if got != want {
		t.Fatalf("Simple() = %q, want %q", got, want)
	}
}

func TestSimpleRational(t *testing.T) {
	e, err := core.Rational(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Simple(e), "2/3"; got != want {
		t.Fatalf("Simple() = %q, want %q", got, want)
	}
}

func TestSimpleEquation(t *testing.T) {
	lhs := core.Symbol("x")
	rhs := core.Integer(1)
	got := Simple(core.Equation(lhs, rhs))
	if want := "x = 1"; got != want {
		t.Fatalf("Simple() = %q, want %q", got, want)
	}
}
