package format

import (
	"testing"

	"github.com/client9/symkernel/core"
	"github.com/tidwall/gjson"
)

func TestDescribeSimpleSum(t *testing.T) {
	e := core.Add(core.Symbol("x"), core.Integer(3))
	doc, err := Describe(e)
	if err != nil {
		t.Fatal(err)
	}
	if kind := gjson.Get(doc, "kind").String(); kind != "Add" {
		t.Fatalf("kind = %q, want Add", kind)
	}
	if n := gjson.Get(doc, "operands.#").Int(); n != 2 {
		t.Fatalf("operands count = %d, want 2", n)
	}
	if got := gjson.Get(doc, "operands.0.kind").String(); got != "Integer" {
		t.Fatalf("operands.0.kind = %q, want Integer (numerics sort first)", got)
	}
	if got := gjson.Get(doc, "operands.1.name").String(); got != "x" {
		t.Fatalf("operands.1.name = %q, want x", got)
	}
}

func TestDescribeFunctionArgs(t *testing.T) {
	e := core.MustFunction("sin", core.Symbol("x"))
	doc, err := Describe(e)
	if err != nil {
		t.Fatal(err)
	}
	if name := gjson.Get(doc, "name").String(); name != "sin" {
		t.Fatalf("name = %q, want sin", name)
	}
	if got := gjson.Get(doc, "args.0.name").String(); got != "x" {
		t.Fatalf("args.0.name = %q, want x", got)
	}
}
