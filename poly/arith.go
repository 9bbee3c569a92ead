package poly

import "github.com/client9/symkernel/core"

// Add returns a+b. a and b must share the same variable list.
func Add(a, b *Polynomial) *Polynomial {
	out := a.Clone()
	for key, exps := range b.Terms {
		out.AddTerm(b.Coefs[key], exps)
	}
	return out
}

// Neg returns -a.
func Neg(a *Polynomial) *Polynomial {
	out := New(a.Vars)
	for key, exps := range a.Terms {
		out.AddTerm(a.Coefs[key].Neg(), exps)
	}
	return out
}

// Sub returns a-b.
func Sub(a, b *Polynomial) *Polynomial { return Add(a, Neg(b)) }

// Mul returns the schoolbook product a*b on sparse monomial maps
// (spec §4.6's "schoolbook on sparse monomial maps").
func Mul(a, b *Polynomial) *Polynomial {
	out := New(a.Vars)
	for keyA, expsA := range a.Terms {
		ca := a.Coefs[keyA]
		for keyB, expsB := range b.Terms {
			cb := b.Coefs[keyB]
			exps := make([]int, len(a.Vars))
			for i := range exps {
				exps[i] = expsA[i] + expsB[i]
			}
			out.AddTerm(ca.Mul(cb), exps)
		}
	}
	return out
}

// ScaleRat returns c*p.
func ScaleRat(c core.BigRat, p *Polynomial) *Polynomial {
	out := New(p.Vars)
	for key, exps := range p.Terms {
		out.AddTerm(c.Mul(p.Coefs[key]), exps)
	}
	return out
}

// LeadingTerm returns the coefficient and exponent vector of the
// lex-greatest monomial (spec §4.6's fixed lex order), or (0, nil, false)
// for the zero polynomial.
func (p *Polynomial) LeadingTerm() (core.BigRat, []int, bool) {
	keys := p.orderedKeys()
	if len(keys) == 0 {
		return core.BigRat{}, nil, false
	}
	return p.Coefs[keys[0]], p.Terms[keys[0]], true
}

// DivRem implements Euclidean division in the main variable (index 0)
// per spec §4.6: deg(remainder) < deg(divisor) in that variable.
// Requires g to be effectively univariate in variable 0 with constant
// (degree-0-in-var-0) coefficients drawn from the remaining variables;
// multivariate reduction beyond that uses the same lex order but is
// only exact when the division has no remainder in the secondary
// variables, matching the "best-effort" scope of spec §4.6.
func DivRem(f, g *Polynomial) (q, r *Polynomial, err error) {
	if g.IsZero() {
		return nil, nil, core.NewError(core.ErrDivisionByZero, "division by the zero polynomial")
	}
	lcCoef, lcExps, _ := g.LeadingTerm()
	mainDeg := lcExps[0]

	q = New(f.Vars)
	r = f.Clone()
	for {
		rlc, rExps, ok := r.LeadingTerm()
		if !ok || rExps[0] < mainDeg {
			break
		}
		quotExps := make([]int, len(f.Vars))
		quotExps[0] = rExps[0] - mainDeg
		for i := 1; i < len(f.Vars); i++ {
			quotExps[i] = rExps[i] - lcExps[i]
			if quotExps[i] < 0 {
				// the division doesn't reduce cleanly in a secondary
				// variable; stop rather than produce a wrong quotient.
				return q, r, nil
			}
		}
		quotCoef, divErr := rlc.Div(lcCoef)
		if divErr != nil {
			return nil, nil, divErr
		}
		q.AddTerm(quotCoef, quotExps)
		term := New(f.Vars)
		term.AddTerm(quotCoef, quotExps)
		r = Sub(r, Mul(term, g))
	}
	return q, r, nil
}
