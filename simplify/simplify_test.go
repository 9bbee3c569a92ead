package simplify

import (
	"testing"

	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/format"
)

func TestSimplifyCollectsLikeTerms(t *testing.T) {
	x := core.Symbol("x")
	e := core.Add(core.Mul(core.Integer(2), x), core.Mul(core.Integer(3), x))
	got := format.Simple(Simplify(e))
	if want := "5*x"; got != want {
		t.Fatalf("Simplify() = %q, want %q", got, want)
	}
}

func TestSimplifyCombinesPowers(t *testing.T) {
	x := core.Symbol("x")
	e := core.Mul(x, x)
	got := Simplify(e)
	want := core.Pow(x, core.Integer(2))
	if !got.Equal(want) {
		t.Fatalf("Simplify(x*x) = %s, want %s", got, want)
	}
}

func TestSimplifyFoldsNumericPower(t *testing.T) {
	e := core.Pow(core.Integer(2), core.Integer(10))
	got := Simplify(e)
	if !got.Equal(core.Integer(1024)) {
		t.Fatalf("Simplify(2^10) = %s, want 1024", got)
	}
}

func TestSimplifyFoldsNegativeExponentToReciprocal(t *testing.T) {
	e := core.Mul(core.Integer(7), core.Pow(core.Integer(1), core.Integer(-1)))
	got := Simplify(e)
	if !got.Equal(core.Integer(7)) {
		t.Fatalf("Simplify(7*1^-1) = %s, want 7", got)
	}
}

// TestSimplifyReducesRationalFractionAtPublicEntryPoint exercises
// rule 7 through the package's primary Simplify entry point, not just
// the engine's EvaluateWithContext path: (x^2-1)/(x-1) -> x+1.
func TestSimplifyReducesRationalFractionAtPublicEntryPoint(t *testing.T) {
	x := core.Symbol("x")
	num := core.Add(core.Pow(x, core.Integer(2)), core.Integer(-1))
	den := core.Add(x, core.Integer(-1))
	e := core.Mul(num, core.Pow(den, core.Integer(-1)))
	got := Simplify(e)
	want := core.Add(x, core.Integer(1))
	if !got.Equal(want) {
		t.Fatalf("Simplify((x^2-1)/(x-1)) = %s, want %s", got, want)
	}
}

func TestSimplifyTrigPythagorean(t *testing.T) {
	x := core.Symbol("x")
	sin2 := core.Pow(core.MustFunction("sin", x), core.Integer(2))
	cos2 := core.Pow(core.MustFunction("cos", x), core.Integer(2))
	got := Simplify(core.Add(sin2, cos2))
	if !got.Equal(core.Integer(1)) {
		t.Fatalf("Simplify(sin^2+cos^2) = %s, want 1", got)
	}
}

func TestSimplifyIsIdempotent(t *testing.T) {
	x := core.Symbol("x")
	e := core.Add(core.Mul(core.Integer(2), x), core.Pow(x, core.Integer(2)), core.Integer(-4))
	once := Simplify(e)
	twice := Simplify(once)
	if !once.Equal(twice) {
		t.Fatalf("Simplify not idempotent: %s vs %s", once, twice)
	}
}

func TestExpandDistributesProduct(t *testing.T) {
	x, y := core.Symbol("x"), core.Symbol("y")
	e := core.Mul(core.Add(x, y), core.Add(x, core.Neg(y)))
	got := Expand(e)
	want := Simplify(core.Add(core.Pow(x, core.Integer(2)), core.Neg(core.Pow(y, core.Integer(2)))))
	if !got.Equal(want) {
		t.Fatalf("Expand((x+y)(x-y)) = %s, want %s", got, want)
	}
}

func TestResidualMovesRHSAcross(t *testing.T) {
	x := core.Symbol("x")
	eq := core.Equation(x, core.Integer(2)).(core.EquationExpr)
	got := Residual(eq)
	want := Simplify(core.Add(x, core.Integer(-2)))
	if !got.Equal(want) {
		t.Fatalf("Residual() = %s, want %s", got, want)
	}
}
