package simplify_test

import (
	"testing"

	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/simplify"
)

// TestSimplifyIsIdempotentAcrossShapes checks spec §8's idempotence
// property (Simplify(Simplify(e)) == Simplify(e)) over a range of
// expression shapes, beyond the single case simplify_test.go already
// covers in-package.
func TestSimplifyIsIdempotentAcrossShapes(t *testing.T) {
	x := core.Symbol("x")
	y := core.Symbol("y")
	cases := []core.Expr{
		core.Add(core.Mul(core.Integer(2), x), core.Mul(core.Integer(3), x), y),
		core.Pow(core.Mul(x, y), core.Integer(2)),
		core.Add(core.Pow(core.MustFunction("sin", x), core.Integer(2)),
			core.Pow(core.MustFunction("cos", x), core.Integer(2))),
		core.Mul(core.Pow(x, core.Integer(2)), core.Pow(x, core.Integer(-1))),
		core.MustFunction("exp", core.MustFunction("log", x)),
	}
	for _, e := range cases {
		once := simplify.Simplify(e)
		twice := simplify.Simplify(once)
		if !twice.Equal(once) {
			t.Fatalf("Simplify not idempotent on %s: once=%s twice=%s", e, once, twice)
		}
	}
}

// TestExpandThenSimplifyIsIdempotent checks that Expand settles: a
// second Expand of an already-expanded polynomial changes nothing.
func TestExpandThenSimplifyIsIdempotent(t *testing.T) {
	x := core.Symbol("x")
	e := core.Pow(core.Add(x, core.Integer(1)), core.Integer(3))
	once := simplify.Expand(e)
	twice := simplify.Expand(once)
	if !twice.Equal(once) {
		t.Fatalf("Expand not idempotent: once=%s twice=%s", once, twice)
	}
}
