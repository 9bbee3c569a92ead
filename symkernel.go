// Package symkernel is the public API surface over the internal
// core/parser/format/simplify/poly/calculus/solve/engine packages.
// Grounded on the teacher's api.go, which exposes a single flat
// façade (NewEvaluator, ParseString, EvaluateString, ...) rather than
// making callers reach into engine/core directly.
package symkernel

import (
	"github.com/client9/symkernel/calculus"
	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/engine"
	"github.com/client9/symkernel/format"
	"github.com/client9/symkernel/parser"
	"github.com/client9/symkernel/poly"
	"github.com/client9/symkernel/simplify"
	"github.com/client9/symkernel/solve"
)

// Handle is the binding-facing opaque wrapper around a core.Expr, the
// shape the spec's GLOSSARY names for host-language bindings that
// should not see the kernel's internal expression interfaces.
type Handle struct{ expr core.Expr }

// Wrap adapts a core.Expr into a Handle for callers inside this
// module that already hold one (the CLI and REPL binaries).
func Wrap(e core.Expr) Handle { return Handle{expr: e} }

// Expr exposes the underlying core.Expr for callers that need to drop
// back down to the kernel packages directly.
func (h Handle) Expr() core.Expr { return h.expr }

func (h Handle) String() string { return format.Simple(h.expr) }

// ParseSimple parses s under the Simple dialect (spec §4.3).
func ParseSimple(s string) (Handle, error) { return parseWith(s, parser.Simple) }

// ParseLaTeX parses s as a LaTeX expression.
func ParseLaTeX(s string) (Handle, error) { return parseWith(s, parser.LaTeX) }

// ParseWolfram parses s as a Wolfram-language expression.
func ParseWolfram(s string) (Handle, error) { return parseWith(s, parser.Wolfram) }

// Parse auto-detects the dialect of s (spec §4.3's Detect) and parses
// under it.
func Parse(s string) (Handle, error) { return parseWith(s, parser.Detect(s)) }

func parseWith(s string, d parser.Dialect) (Handle, error) {
	e, err := parser.Parse(s, d)
	if err != nil {
		return Handle{}, err
	}
	return Handle{expr: e}, nil
}

// FormatSimple renders h in the default infix dialect.
func FormatSimple(h Handle) string { return format.Simple(h.expr) }

// FormatLaTeX renders h as LaTeX source.
func FormatLaTeX(h Handle) string { return format.LaTeX(h.expr) }

// FormatWolfram renders h as Wolfram-language source.
func FormatWolfram(h Handle) string { return format.Wolfram(h.expr) }

// Describe renders h's structure as a JSON document for debugging/tooling (spec
// §4.4's describe).
func Describe(h Handle) (string, error) { return format.Describe(h.expr) }

// Simplify returns h's canonical simplified form (spec §4.5).
func Simplify(h Handle) Handle { return Handle{expr: simplify.Simplify(h.expr)} }

// Expand distributes h's products over sums and expands integer
// powers of sums.
func Expand(h Handle) Handle { return Handle{expr: simplify.Expand(h.expr)} }

// Derivative returns d(h)/d(name), simplified.
func Derivative(h Handle, name string) Handle {
	v := core.Symbol(name).(core.SymbolExpr)
	return Handle{expr: calculus.Derivative(h.expr, v)}
}

// NthDerivative applies Derivative n times.
func NthDerivative(h Handle, name string, n int) Handle {
	v := core.Symbol(name).(core.SymbolExpr)
	return Handle{expr: calculus.NthDerivative(h.expr, v, n)}
}

// Integrate returns an antiderivative of h with respect to name, or
// an error if no integration rule matches the shape (spec §4.7).
func Integrate(h Handle, name string) (Handle, error) {
	v := core.Symbol(name).(core.SymbolExpr)
	e, err := calculus.Integrate(h.expr, v)
	if err != nil {
		return Handle{}, err
	}
	return Handle{expr: e}, nil
}

// SolveResult mirrors solve.SolverResult over Handles, so binding
// callers never import package solve directly.
type SolveResult struct {
	Kind       solve.ResultKind
	Solutions  []Handle
	Diagnostic string
}

// Solve solves h (an equation Handle) for name (spec §4.8).
func Solve(h Handle, name string) (SolveResult, error) {
	eq, ok := h.expr.(core.EquationExpr)
	if !ok {
		return SolveResult{}, core.NewError(core.ErrUnsupportedShape, "solve: %s is not an equation", h.expr)
	}
	v := core.Symbol(name).(core.SymbolExpr)
	r := solve.Solve(eq, v)
	return toSolveResult(r), nil
}

// SolveSystem solves a list of equation Handles simultaneously for
// the named variables (spec §4.8's system solving).
func SolveSystem(eqs []Handle, names []string) (SolveResult, error) {
	eqExprs := make([]core.EquationExpr, len(eqs))
	for i, h := range eqs {
		eq, ok := h.expr.(core.EquationExpr)
		if !ok {
			return SolveResult{}, core.NewError(core.ErrUnsupportedShape, "solve_system: %s is not an equation", h.expr)
		}
		eqExprs[i] = eq
	}
	vars := make([]core.SymbolExpr, len(names))
	for i, n := range names {
		vars[i] = core.Symbol(n).(core.SymbolExpr)
	}
	r := solve.SolveSystem(eqExprs, vars)
	out := SolveResult{Diagnostic: r.Diagnostic}
	switch r.Kind {
	case solve.KindInfinite:
		out.Kind = solve.KindInfinite
	case solve.KindNoSolution:
		out.Kind = solve.KindNoSolution
	default:
		out.Kind = solve.KindSingle
		out.Solutions = make([]Handle, len(r.Assignment))
		for i, e := range r.Assignment {
			out.Solutions[i] = Handle{expr: e}
		}
	}
	return out, nil
}

func toSolveResult(r solve.SolverResult) SolveResult {
	out := SolveResult{Kind: r.Kind, Diagnostic: r.Diagnostic}
	out.Solutions = make([]Handle, len(r.Solutions))
	for i, e := range r.Solutions {
		out.Solutions[i] = Handle{expr: e}
	}
	return out
}

// Context wraps engine.EvalContext for binding callers (spec §4.9's
// EvalContext / Numeric / Symbolic factory triad).
type Context struct{ ctx engine.EvalContext }

// NewContext returns an empty symbolic evaluation context.
func NewContext() Context { return Context{ctx: engine.NewContext()} }

// NumericContext returns a context pre-bound with the given numeric
// variables, configured to coerce evaluate results to Float.
func NumericContext(vars map[string]Handle) Context {
	bound := make(map[string]core.Expr, len(vars))
	for k, h := range vars {
		bound[k] = h.expr
	}
	return Context{ctx: engine.Numeric(bound)}
}

// WithVariable returns a copy of c with name bound to value.
func (c Context) WithVariable(name string, value Handle) Context {
	return Context{ctx: c.ctx.WithVariable(name, value.expr)}
}

// WithDomainCheck returns a copy of c with domain checking enabled or
// disabled for subsequent EvaluateWithContext calls (spec §7's
// DomainError, reported only when requested).
func (c Context) WithDomainCheck(enabled bool) Context {
	return Context{ctx: c.ctx.WithDomainCheck(enabled)}
}

// Substitute replaces h's free variables per ctx's bindings.
func Substitute(h Handle, ctx Context) Handle {
	return Handle{expr: engine.Substitute(h.expr, ctx.ctx)}
}

// SubstituteMap is a convenience wrapper for callers with a plain
// name->Handle map rather than a Context.
func SubstituteMap(h Handle, bindings map[string]Handle) Handle {
	m := make(map[string]core.Expr, len(bindings))
	for k, v := range bindings {
		m[k] = v.expr
	}
	return Handle{expr: engine.SubstituteMap(h.expr, m)}
}

// EvaluateWithContext substitutes, reduces rational fractions, and
// (for numeric contexts) coerces the result to Float (spec §4.9). It
// returns a *core.KernelError of kind core.ErrDomain if ctx was built
// with WithDomainCheck(true) and evaluation hits an out-of-domain
// sqrt/log/gamma argument.
func EvaluateWithContext(h Handle, ctx Context) (Handle, error) {
	e, err := engine.Evaluate(h.expr, ctx.ctx)
	if err != nil {
		return Handle{}, err
	}
	return Handle{expr: e}, nil
}

// polyPair converts two Handles into single-variable polynomials over
// their combined free-variable set, for the GCD/Resultant/Discriminant
// façade functions below.
func polyPair(a, b Handle) (*poly.Polynomial, *poly.Polynomial, error) {
	vars := freeVars(a.expr, b.expr)
	pa, err := poly.AsPolynomial(a.expr, vars)
	if err != nil {
		return nil, nil, err
	}
	pb, err := poly.AsPolynomial(b.expr, vars)
	if err != nil {
		return nil, nil, err
	}
	return pa, pb, nil
}

func freeVars(exprs ...core.Expr) []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range exprs {
		core.Walk(e, func(n core.Expr) {
			if s, ok := n.(core.SymbolExpr); ok && !seen[s.Name] {
				seen[s.Name] = true
				out = append(out, s.Name)
			}
		})
	}
	return out
}

// GCD returns the monic GCD of a and b as univariate polynomials.
func GCD(a, b Handle) (Handle, error) {
	pa, pb, err := polyPair(a, b)
	if err != nil {
		return Handle{}, err
	}
	g, err := poly.GCD(pa, pb)
	if err != nil {
		return Handle{}, err
	}
	return Handle{expr: poly.FromPolynomial(g)}, nil
}

// LCM returns a*b / GCD(a,b) as a polynomial expression.
func LCM(a, b Handle) (Handle, error) {
	pa, pb, err := polyPair(a, b)
	if err != nil {
		return Handle{}, err
	}
	g, err := poly.GCD(pa, pb)
	if err != nil {
		return Handle{}, err
	}
	qa, _, err := poly.DivRem(pa, g)
	if err != nil {
		return Handle{}, err
	}
	prod := poly.Mul(qa, pb)
	return Handle{expr: poly.FromPolynomial(prod)}, nil
}

// Resultant returns Res(a, b) as a rational-constant Handle.
func Resultant(a, b Handle) (Handle, error) {
	pa, pb, err := polyPair(a, b)
	if err != nil {
		return Handle{}, err
	}
	r, err := poly.Resultant(pa, pb)
	if err != nil {
		return Handle{}, err
	}
	return Handle{expr: core.NormalizeRat(r)}, nil
}

// Factor returns h's irreducible polynomial factors (spec §4.6).
func Factor(h Handle) ([]Handle, error) {
	vars := freeVars(h.expr)
	p, err := poly.AsPolynomial(h.expr, vars)
	if err != nil {
		return nil, err
	}
	factors := poly.Factor(p)
	out := make([]Handle, len(factors))
	for i, f := range factors {
		out[i] = Handle{expr: poly.FromPolynomial(f)}
	}
	return out, nil
}

// Discriminant returns disc(h) for a single-variable polynomial h.
func Discriminant(h Handle) (Handle, error) {
	vars := freeVars(h.expr)
	p, err := poly.AsPolynomial(h.expr, vars)
	if err != nil {
		return Handle{}, err
	}
	d, err := poly.Discriminant(p)
	if err != nil {
		return Handle{}, err
	}
	return Handle{expr: core.NormalizeRat(d)}, nil
}
