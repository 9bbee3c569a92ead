package core

// Traversal primitives shared by other components (spec §4.2). Some
// components (calculus, format, poly's conversion) also switch on
// concrete Expr types and recurse on their own where a rule needs the
// variant.

// Children returns the direct sub-expressions of e, or nil for atoms.
func Children(e Expr) []Expr {
	switch v := e.(type) {
	case AddExpr:
		return v.Operands
	case MulExpr:
		return v.Operands
	case PowExpr:
		return []Expr{v.Base, v.Exp}
	case FunctionExpr:
		return v.Args
	case EquationExpr:
		return []Expr{v.LHS, v.RHS}
	}
	return nil
}

// Reconstruct rebuilds e with new children in place of its current
// ones, running the children back through the appropriate smart
// constructor so invariants are reestablished. len(children) must
// match len(Children(e)).
func Reconstruct(e Expr, children []Expr) Expr {
	switch e.(type) {
	case AddExpr:
		return Add(children...)
	case MulExpr:
		return Mul(children...)
	case PowExpr:
		return Pow(children[0], children[1])
	case FunctionExpr:
		fn := e.(FunctionExpr)
		return MustFunction(fn.Name, children...)
	case EquationExpr:
		return Equation(children[0], children[1])
	}
	return e
}

// MapChildren applies f to each direct child of e and reconstructs.
// Atoms are returned unchanged.
func MapChildren(e Expr, f func(Expr) Expr) Expr {
	children := Children(e)
	if children == nil {
		return e
	}
	out := make([]Expr, len(children))
	for i, c := range children {
		out[i] = f(c)
	}
	return Reconstruct(e, out)
}

// Fold performs a post-order reduction over e: combine is applied to
// each node after its children have already folded seed into it via
// repeated application, accumulating into a single result starting
// from seed.
func Fold[T any](e Expr, seed T, combine func(acc T, node Expr) T) T {
	acc := seed
	for _, c := range Children(e) {
		acc = Fold(c, acc, combine)
	}
	return combine(acc, e)
}

// Walk calls visit on every node of e in post-order (children first).
func Walk(e Expr, visit func(Expr)) {
	for _, c := range Children(e) {
		Walk(c, visit)
	}
	visit(e)
}
