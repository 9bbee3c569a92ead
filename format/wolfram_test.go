package format

import (
	"testing"

	"github.com/client9/symkernel/core"
)

func TestWolframFunctionHeads(t *testing.T) {
	e := core.MustFunction("sin", core.Symbol("x"))
	got := Wolfram(e)
	want := "Sin[x]"
	if got != want {
		t.Fatalf("Wolfram() = %q, want %q", got, want)
	}
}

func TestWolframUnknownFunctionCapitalizes(t *testing.T) {
	e := core.FunctionExpr{Name: "psi", Args: []core.Expr{core.Symbol("x")}}
	got := Wolfram(e)
	want := "Psi[x]"
	if got != want {
		t.Fatalf("Wolfram() = %q, want %q", got, want)
	}
}

func TestWolframSymbolCapitalized(t *testing.T) {
	got := Wolfram(core.Symbol("x"))
	if got != "X" {
		t.Fatalf("Wolfram() = %q, want %q", got, "X")
	}
}

func TestWolframEquation(t *testing.T) {
	got := Wolfram(core.Equation(core.Symbol("x"), core.Integer(0)))
	want := "X == 0"
	if got != want {
		t.Fatalf("Wolfram() = %q, want %q", got, want)
	}
}
