// Package engine is the evaluation layer over package core: a context
// of variable bindings, a substitution pass, and a numeric/symbolic
// evaluator built on top of package simplify. Grounded on the
// teacher's engine/context.go (a Context value carrying a symbol table
// and evaluation mode) and exposed via the NewContext/Symbolic/Numeric
// factory triad documented in the pack's original Python binding tests.
package engine

import "github.com/client9/symkernel/core"

// EvalContext carries the variable bindings and evaluation mode for
// substitute/evaluate (spec §3's EvalContext, [ADDED]). It is an
// immutable value: With* methods return a modified copy, the way
// core's smart constructors never mutate in place.
type EvalContext struct {
	variables     map[string]core.Expr
	numeric       bool
	simplifyFirst bool
	precision     int
	domainCheck   bool
}

// NewContext returns an empty symbolic context with default precision.
func NewContext() EvalContext {
	return EvalContext{variables: map[string]core.Expr{}, simplifyFirst: true, precision: 53}
}

// Symbolic returns a context configured for purely symbolic
// evaluation: substitution without numeric coercion.
func Symbolic() EvalContext {
	ctx := NewContext()
	ctx.numeric = false
	return ctx
}

// Numeric returns a context pre-populated with the given variable ->
// value bindings, configured to coerce results to Float where
// possible.
func Numeric(vars map[string]core.Expr) EvalContext {
	ctx := NewContext()
	ctx.numeric = true
	for k, v := range vars {
		ctx.variables[k] = v
	}
	return ctx
}

// WithVariable returns a copy of ctx with name bound to value.
func (ctx EvalContext) WithVariable(name string, value core.Expr) EvalContext {
	out := ctx.clone()
	out.variables[name] = value
	return out
}

// WithPrecision returns a copy of ctx using the given bit precision
// for numeric coercion (spec §3's EvalContext.precision).
func (ctx EvalContext) WithPrecision(bits int) EvalContext {
	out := ctx.clone()
	out.precision = bits
	return out
}

// WithDomainCheck returns a copy of ctx with domain checking enabled
// or disabled. spec.md §7 reports a DomainError (sqrt of a negative
// real, log of a non-positive real, gamma at a non-positive integer)
// "only when domain checking is requested via EvalContext"; spec §9's
// open question on this is resolved in DESIGN.md as required in a new
// implementation, so Evaluate consults this flag rather than silently
// always or never checking.
func (ctx EvalContext) WithDomainCheck(enabled bool) EvalContext {
	out := ctx.clone()
	out.domainCheck = enabled
	return out
}

// DomainCheckRequested reports whether ctx was configured via
// WithDomainCheck(true).
func (ctx EvalContext) DomainCheckRequested() bool { return ctx.domainCheck }

// Lookup returns the binding for name, if any.
func (ctx EvalContext) Lookup(name string) (core.Expr, bool) {
	v, ok := ctx.variables[name]
	return v, ok
}

// IsNumeric reports whether this context coerces results to Float.
func (ctx EvalContext) IsNumeric() bool { return ctx.numeric }

func (ctx EvalContext) clone() EvalContext {
	vars := make(map[string]core.Expr, len(ctx.variables))
	for k, v := range ctx.variables {
		vars[k] = v
	}
	return EvalContext{
		variables:     vars,
		numeric:       ctx.numeric,
		simplifyFirst: ctx.simplifyFirst,
		precision:     ctx.precision,
		domainCheck:   ctx.domainCheck,
	}
}
