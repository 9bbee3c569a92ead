package poly

import (
	"testing"

	"github.com/client9/symkernel/core"
)

func TestGCDDividesBothInputs(t *testing.T) {
	x := core.Symbol("x")
	// f = (x-1)(x+1) = x^2 - 1, g = (x-1)(x+2) = x^2 + x - 2
	f, err := AsPolynomial(core.Add(core.Pow(x, core.Integer(2)), core.Integer(-1)), []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	g, err := AsPolynomial(core.Add(core.Pow(x, core.Integer(2)), x, core.Integer(-2)), []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	gcd, err := GCD(f, g)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []*Polynomial{f, g} {
		_, r, err := DivRem(p, gcd)
		if err != nil {
			t.Fatal(err)
		}
		if !r.IsZero() {
			t.Fatalf("gcd %v does not divide %v: remainder %v", gcd.Terms, p.Terms, r.Terms)
		}
	}
	if gcd.DegreeIn(0) != 1 {
		t.Fatalf("expected gcd degree 1 (x-1), got %d", gcd.DegreeIn(0))
	}
}

func TestDivRemExact(t *testing.T) {
	x := core.Symbol("x")
	f, _ := AsPolynomial(core.Add(core.Pow(x, core.Integer(2)), core.Integer(-1)), []string{"x"})
	g, _ := AsPolynomial(core.Add(x, core.Integer(-1)), []string{"x"})
	q, r, err := DivRem(f, g)
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsZero() {
		t.Fatalf("expected zero remainder, got %v", r.Terms)
	}
	want, _ := AsPolynomial(core.Add(x, core.Integer(1)), []string{"x"})
	if len(q.Terms) != len(want.Terms) {
		t.Fatalf("quotient = %v, want x+1", q.Terms)
	}
}
