package poly

import (
	"testing"

	"github.com/client9/symkernel/core"
)

func TestAsPolynomialRoundTrip(t *testing.T) {
	x := core.Symbol("x")
	e := core.Add(core.Pow(x, core.Integer(2)), core.Mul(core.Integer(3), x), core.Integer(1))
	p, err := AsPolynomial(e, []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	if d := p.DegreeIn(0); d != 2 {
		t.Fatalf("degree = %d, want 2", d)
	}
	back := FromPolynomial(p)
	if !back.Equal(e) {
		t.Fatalf("FromPolynomial(AsPolynomial(e)) = %s, want %s", back, e)
	}
}

func TestAsPolynomialRejectsNonPolynomial(t *testing.T) {
	x := core.Symbol("x")
	e := core.MustFunction("sin", x)
	_, err := AsPolynomial(e, []string{"x"})
	if !core.IsKind(err, core.ErrNotAPolynomial) {
		t.Fatalf("expected NotAPolynomial, got %v", err)
	}
}

func TestAsPolynomialRejectsForeignSymbol(t *testing.T) {
	x, y := core.Symbol("x"), core.Symbol("y")
	e := core.Add(x, y)
	_, err := AsPolynomial(e, []string{"x"})
	if !core.IsKind(err, core.ErrNotAPolynomial) {
		t.Fatalf("expected NotAPolynomial, got %v", err)
	}
}
