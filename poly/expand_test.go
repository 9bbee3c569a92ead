package poly

import (
	"testing"

	"github.com/client9/symkernel/core"
)

func TestPowMatchesRepeatedMultiplication(t *testing.T) {
	x := core.Symbol("x")
	base := core.Add(x, core.Integer(1))
	p, err := AsPolynomial(base, []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	got := Pow(p, 4)

	want := constantPolynomial(p.Vars, core.RatOne())
	for i := 0; i < 4; i++ {
		want = Mul(want, p)
	}

	gotExpr := FromPolynomial(got)
	wantExpr := FromPolynomial(want)
	if !gotExpr.Equal(wantExpr) {
		t.Fatalf("Pow(x+1, 4) = %s, want %s", gotExpr, wantExpr)
	}
}

func TestPowZeroIsOne(t *testing.T) {
	x := core.Symbol("x")
	p, err := AsPolynomial(x, []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	got := Pow(p, 0)
	if !FromPolynomial(got).Equal(core.Integer(1)) {
		t.Fatalf("Pow(x, 0) = %s, want 1", FromPolynomial(got))
	}
}
