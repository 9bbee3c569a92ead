package core

import "testing"

func TestAddFlattensAndFolds(t *testing.T) {
	x := Symbol("x")
	got := Add(x, Integer(1), Integer(2))
	want := Add(Integer(3), x)
	if !got.Equal(want) {
		t.Errorf("Add(x,1,2) = %s, want %s", got, want)
	}
}

func TestAddNoZeroChild(t *testing.T) {
	x := Symbol("x")
	got := Add(x, Integer(0))
	if !got.Equal(x) {
		t.Errorf("Add(x,0) = %s, want x", got)
	}
}

func TestMulZeroShortCircuits(t *testing.T) {
	x := Symbol("x")
	got := Mul(x, Integer(0), Symbol("y"))
	if !got.Equal(Integer(0)) {
		t.Errorf("Mul(x,0,y) = %s, want 0", got)
	}
}

func TestMulNoOneChild(t *testing.T) {
	x := Symbol("x")
	got := Mul(x, Integer(1))
	if !got.Equal(x) {
		t.Errorf("Mul(x,1) = %s, want x", got)
	}
}

func TestPowIdentities(t *testing.T) {
	x := Symbol("x")
	if got := Pow(x, Integer(0)); !got.Equal(Integer(1)) {
		t.Errorf("x^0 = %s, want 1", got)
	}
	if got := Pow(x, Integer(1)); !got.Equal(x) {
		t.Errorf("x^1 = %s, want x", got)
	}
	if got := Pow(Integer(0), Integer(5)); !got.Equal(Integer(0)) {
		t.Errorf("0^5 = %s, want 0", got)
	}
}

func TestRationalReducesToInteger(t *testing.T) {
	got, err := Rational(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(IntegerExpr); !ok {
		t.Errorf("Rational(4,2) = %T, want IntegerExpr", got)
	}
}

func TestRationalZeroDenominator(t *testing.T) {
	_, err := Rational(1, 0)
	if !IsKind(err, ErrInvalidArgument) {
		t.Errorf("Rational(1,0) err = %v, want InvalidArgument", err)
	}
}

func TestCanonicalOrderDeterministic(t *testing.T) {
	a := Add(Symbol("y"), Symbol("x"))
	b := Add(Symbol("x"), Symbol("y"))
	if !a.Equal(b) {
		t.Errorf("Add(y,x) != Add(x,y): %s vs %s", a, b)
	}
}

func TestChildrenAndReconstruct(t *testing.T) {
	e := Add(Symbol("x"), Integer(2))
	kids := Children(e)
	if len(kids) != 2 {
		t.Fatalf("expected 2 children, got %d", len(kids))
	}
	got := Reconstruct(e, kids)
	if !got.Equal(e) {
		t.Errorf("Reconstruct roundtrip failed: %s vs %s", got, e)
	}
}
