package format

import (
	"testing"

	"github.com/client9/symkernel/core"
)

func TestLaTeXFraction(t *testing.T) {
	e := core.Mul(core.Symbol("a"), core.Pow(core.Symbol("b"), core.Integer(-1)))
	got := LaTeX(e)
	want := "\\frac{a}{b}"
	if got != want {
		t.Fatalf("LaTeX() = %q, want %q", got, want)
	}
}

func TestLaTeXSqrtAndTrig(t *testing.T) {
	e := core.MustFunction("sin", core.MustFunction("sqrt", core.Symbol("x")))
	got := LaTeX(e)
	want := "\\sin\\left(\\sqrt{x}\\right)"
	if got != want {
		t.Fatalf("LaTeX() = %q, want %q", got, want)
	}
}

func TestLaTeXUnknownFunctionUsesOperatorname(t *testing.T) {
	e := core.MustFunction("gamma", core.Symbol("x"))
	got := LaTeX(e)
	want := "\\operatorname{gamma}\\left(x\\right)"
	if got != want {
		t.Fatalf("LaTeX() = %q, want %q", got, want)
	}
}
