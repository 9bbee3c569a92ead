package poly

import (
	"testing"

	"github.com/client9/symkernel/core"
)

func TestFactorDifferenceOfSquares(t *testing.T) {
	x := core.Symbol("x")
	p, err := AsPolynomial(core.Add(core.Pow(x, core.Integer(2)), core.Integer(-1)), []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	factors := Factor(p)
	if len(factors) != 2 {
		t.Fatalf("expected 2 factors, got %d: %v", len(factors), factors)
	}
	product := factors[0]
	for _, f := range factors[1:] {
		product = Mul(product, f)
	}
	for key, exps := range p.Terms {
		c, ok := product.Coefs[key]
		if !ok || c.Cmp(p.Coefs[key]) != 0 {
			t.Fatalf("product of factors != original at exps %v: got %v want %v", exps, c, p.Coefs[key])
		}
	}
}

// checkFactorsReconstruct multiplies factors back together and
// compares against p term-by-term, failing on any mismatch including
// extra or missing terms.
func checkFactorsReconstruct(t *testing.T, p *Polynomial, factors []*Polynomial) {
	t.Helper()
	if len(factors) == 0 {
		t.Fatalf("expected at least one factor")
	}
	product := factors[0]
	for _, f := range factors[1:] {
		product = Mul(product, f)
	}
	if len(product.Terms) != len(p.Terms) {
		t.Fatalf("product has %d terms, want %d: %v", len(product.Terms), len(p.Terms), product.Coefs)
	}
	for key, exps := range p.Terms {
		c, ok := product.Coefs[key]
		if !ok || c.Cmp(p.Coefs[key]) != 0 {
			t.Fatalf("product of factors != original at exps %v: got %v want %v", exps, c, p.Coefs[key])
		}
	}
}

func TestFactorBivariateDifferenceOfSquares(t *testing.T) {
	x, y := core.Symbol("x"), core.Symbol("y")
	// x^2 - y^2 = (x-y)(x+y)
	e := core.Add(core.Pow(x, core.Integer(2)), core.Mul(core.Integer(-1), core.Pow(y, core.Integer(2))))
	p, err := AsPolynomial(e, []string{"x", "y"})
	if err != nil {
		t.Fatal(err)
	}
	factors := Factor(p)
	if len(factors) != 2 {
		t.Fatalf("expected 2 factors, got %d: %v", len(factors), factors)
	}
	checkFactorsReconstruct(t, p, factors)
}

func TestFactorBivariateDifferenceOfCubes(t *testing.T) {
	x, y := core.Symbol("x"), core.Symbol("y")
	// x^3 - y^3 = (x-y)(x^2+xy+y^2)
	e := core.Add(core.Pow(x, core.Integer(3)), core.Mul(core.Integer(-1), core.Pow(y, core.Integer(3))))
	p, err := AsPolynomial(e, []string{"x", "y"})
	if err != nil {
		t.Fatal(err)
	}
	factors := Factor(p)
	if len(factors) != 2 {
		t.Fatalf("expected 2 factors, got %d: %v", len(factors), factors)
	}
	checkFactorsReconstruct(t, p, factors)
}

func TestFactorBivariateSumOfCubes(t *testing.T) {
	x, y := core.Symbol("x"), core.Symbol("y")
	// 8x^3 + 27y^3 = (2x+3y)(4x^2-6xy+9y^2)
	e := core.Add(core.Mul(core.Integer(8), core.Pow(x, core.Integer(3))), core.Mul(core.Integer(27), core.Pow(y, core.Integer(3))))
	p, err := AsPolynomial(e, []string{"x", "y"})
	if err != nil {
		t.Fatal(err)
	}
	factors := Factor(p)
	if len(factors) != 2 {
		t.Fatalf("expected 2 factors, got %d: %v", len(factors), factors)
	}
	checkFactorsReconstruct(t, p, factors)
}

func TestFactorBivariateSumOfSquaresUnrecognized(t *testing.T) {
	x, y := core.Symbol("x"), core.Symbol("y")
	// x^2 + y^2 has no rational linear factorization; Factor should
	// return it whole rather than claim a bogus split.
	e := core.Add(core.Pow(x, core.Integer(2)), core.Pow(y, core.Integer(2)))
	p, err := AsPolynomial(e, []string{"x", "y"})
	if err != nil {
		t.Fatal(err)
	}
	factors := Factor(p)
	if len(factors) != 1 {
		t.Fatalf("expected sum of squares to stay unfactored, got %d factors: %v", len(factors), factors)
	}
}

func TestResultantAndDiscriminant(t *testing.T) {
	x := core.Symbol("x")
	// x^2 - 5x + 6 = (x-2)(x-3), discriminant = 25-24 = 1
	p, err := AsPolynomial(core.Add(core.Pow(x, core.Integer(2)), core.Mul(core.Integer(-5), x), core.Integer(6)), []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	disc, err := Discriminant(p)
	if err != nil {
		t.Fatal(err)
	}
	if disc.Cmp(core.RatOne()) != 0 {
		t.Fatalf("discriminant = %s, want 1", disc)
	}
}
