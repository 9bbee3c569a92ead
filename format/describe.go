package format

import (
	"strconv"

	"github.com/client9/symkernel/core"
	"github.com/tidwall/sjson"
)

// Describe renders e as a JSON document describing its tree shape,
// without requiring a binding to link the Go ABI (spec §2's
// host-neutral introspection need). The document is built
// incrementally, one sjson.Set path at a time, the way the teacher
// pack's JSON fix-up tooling assembles documents field-by-field rather
// than through a single struct marshal.
func Describe(e core.Expr) (string, error) {
	return describeAt("", e)
}

func describeAt(prefix string, e core.Expr) (string, error) {
	doc := "{}"
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}

	set("kind", e.Kind().String())
	set("text", e.String())

	switch v := e.(type) {
	case core.IntegerExpr:
		set("value", v.Value.String())
	case core.RationalExpr:
		set("num", v.Value.Num().String())
		set("den", v.Value.Denom().String())
	case core.FloatExpr:
		set("value", v.Value.Float64())
	case core.SymbolExpr:
		set("name", v.Name)
	case core.AddExpr:
		if err2 := setChildren(&doc, &err, "operands", v.Operands); err2 != nil {
			return "", err2
		}
	case core.MulExpr:
		if err2 := setChildren(&doc, &err, "operands", v.Operands); err2 != nil {
			return "", err2
		}
	case core.PowExpr:
		if err2 := setChildren(&doc, &err, "operands", []core.Expr{v.Base, v.Exp}); err2 != nil {
			return "", err2
		}
	case core.FunctionExpr:
		set("name", v.Name)
		if err2 := setChildren(&doc, &err, "args", v.Args); err2 != nil {
			return "", err2
		}
	case core.EquationExpr:
		if err2 := setChildren(&doc, &err, "operands", []core.Expr{v.LHS, v.RHS}); err2 != nil {
			return "", err2
		}
	}
	if err != nil {
		return "", err
	}
	return doc, nil
}

func setChildren(doc *string, errp *error, field string, children []core.Expr) error {
	if *errp != nil {
		return *errp
	}
	for i, c := range children {
		sub, err := describeAt("", c)
		if err != nil {
			return err
		}
		*doc, err = sjson.SetRaw(*doc, field+"."+strconv.Itoa(i), sub)
		if err != nil {
			*errp = err
			return err
		}
	}
	return nil
}
