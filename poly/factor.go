package poly

import (
	"math/big"

	"github.com/client9/symkernel/core"
)

// Factor performs best-effort exact factorization over the rationals
// (spec §4.6): extract integer content, find rational roots via the
// rational-root theorem over leading/trailing coefficients, factor out
// the corresponding linear factors, and leave any remaining
// quadratic-or-higher factor as-is (quadratics are further split by
// the discriminant formula when it is rational and nonnegative).
// Multivariate input is reduced by its monomial GCD, then the
// remaining two-variable binomial (if any) is checked against the
// difference-of-squares / sum-or-difference-of-cubes recognizer spec
// §4.6 names explicitly; anything else is returned as-is (full
// multivariate factorization, e.g. recursive bivariate GCD via
// pseudo-division, is out of scope: no worked example or solver call
// site needs more than this, see DESIGN.md).
func Factor(p *Polynomial) []*Polynomial {
	if len(p.Vars) != 1 {
		return factorMultivariate(p)
	}
	content := Content(p)
	factors := []*Polynomial{}
	rest := PrimitivePart(p)
	if !content.IsOne() && !content.IsZero() {
		factors = append(factors, constantPolynomial(p.Vars, core.RatFromInt(content)))
	}
	for {
		deg := rest.DegreeIn(0)
		if deg <= 1 {
			break
		}
		root, ok := findRationalRoot(rest)
		if !ok {
			break
		}
		linear := linearFactorFromRoot(rest.Vars, root)
		q, r, err := DivRem(rest, linear)
		if err != nil || !r.IsZero() {
			break
		}
		factors = append(factors, linear)
		rest = q
	}
	if rest.DegreeIn(0) == 2 {
		if f1, f2, ok := factorQuadratic(rest); ok {
			factors = append(factors, f1, f2)
			rest = nil
		}
	}
	if rest != nil && !(rest.DegreeIn(0) == 0 && isPolynomialOne(rest)) {
		factors = append(factors, rest)
	}
	return factors
}

func isPolynomialOne(p *Polynomial) bool {
	c, exps, ok := p.LeadingTerm()
	if !ok {
		return false
	}
	allZero := true
	for _, e := range exps {
		if e != 0 {
			allZero = false
		}
	}
	return allZero && c.Cmp(core.RatOne()) == 0 && len(p.Terms) == 1
}

func constantPolynomial(vars []string, c core.BigRat) *Polynomial {
	p := New(vars)
	p.AddTerm(c, make([]int, len(vars)))
	return p
}

// findRationalRoot searches p/q candidates from the rational-root
// theorem: p divides the trailing coefficient, q divides the leading
// coefficient (each first scaled by the other's denominator).
func findRationalRoot(p *Polynomial) (core.BigRat, bool) {
	lead, trail := leadingTrailingCoefs(p)
	if lead.IsZero() {
		return core.BigRat{}, false
	}
	pNum := trail.Num().Mul(lead.Denom())
	qNum := lead.Num().Mul(trail.Denom())
	for _, pd := range divisors(pNum.Abs()) {
		for _, qd := range divisors(qNum.Abs()) {
			if qd.IsZero() {
				continue
			}
			for _, sign := range []int64{1, -1} {
				cand, err := core.RatFromFrac(pd, qd)
				if err != nil {
					continue
				}
				if sign < 0 {
					cand = cand.Neg()
				}
				if evalUnivariate(p, cand).IsZero() {
					return cand, true
				}
			}
		}
	}
	return core.BigRat{}, false
}

func leadingTrailingCoefs(p *Polynomial) (lead, trail core.BigRat) {
	lead = core.RatZero()
	trail = core.RatZero()
	maxDeg, minDeg := -1, -1
	for _, key := range p.orderedKeys() {
		d := p.Terms[key][0]
		if d > maxDeg {
			maxDeg = d
			lead = p.Coefs[key]
		}
		if minDeg == -1 || d < minDeg {
			minDeg = d
			trail = p.Coefs[key]
		}
	}
	return lead, trail
}

func evalUnivariate(p *Polynomial, x core.BigRat) core.BigRat {
	acc := core.RatZero()
	for _, key := range p.orderedKeys() {
		term := p.Coefs[key].Mul(x.PowInt(uint64(p.Terms[key][0])))
		acc = acc.Add(term)
	}
	return acc
}

func divisors(n core.BigInt) []core.BigInt {
	if n.IsZero() {
		return []core.BigInt{core.IntOne()}
	}
	bn := n.Big()
	var out []core.BigInt
	one := big.NewInt(1)
	for d := new(big.Int).Set(one); d.Cmp(bn) <= 0; d.Add(d, one) {
		if new(big.Int).Mod(bn, d).Sign() == 0 {
			out = append(out, core.IntFromBig(d))
		}
	}
	return out
}

// linearFactorFromRoot builds (var - root) scaled to have integer
// coefficients: root = p/q, factor = q*var - p.
func linearFactorFromRoot(vars []string, root core.BigRat) *Polynomial {
	out := New(vars)
	exps1 := make([]int, len(vars))
	exps1[0] = 1
	out.AddTerm(core.RatFromInt(root.Denom()), exps1)
	out.AddTerm(core.RatFromInt(root.Num()).Neg(), make([]int, len(vars)))
	return out
}

// factorQuadratic splits ax^2+bx+c into two linear factors via the
// discriminant formula, when the discriminant is a perfect square of a
// rational.
func factorQuadratic(p *Polynomial) (*Polynomial, *Polynomial, bool) {
	a, b, c := quadraticCoefs(p)
	four := core.RatFromInt(core.IntFromInt64(4))
	disc := b.Mul(b).Sub(four.Mul(a).Mul(c))
	root, ok := rationalSqrt(disc)
	if !ok {
		return nil, nil, false
	}
	two := core.RatFromInt(core.IntFromInt64(2))
	twoA := two.Mul(a)
	r1, err1 := b.Neg().Add(root).Div(twoA)
	r2, err2 := b.Neg().Sub(root).Div(twoA)
	if err1 != nil || err2 != nil {
		return nil, nil, false
	}
	f1 := linearFactorFromRoot(p.Vars, r1)
	f2 := linearFactorFromRoot(p.Vars, r2)
	return f1, f2, true
}

func quadraticCoefs(p *Polynomial) (a, b, c core.BigRat) {
	a, b, c = core.RatZero(), core.RatZero(), core.RatZero()
	for _, key := range p.orderedKeys() {
		switch p.Terms[key][0] {
		case 2:
			a = p.Coefs[key]
		case 1:
			b = p.Coefs[key]
		case 0:
			c = p.Coefs[key]
		}
	}
	return a, b, c
}

// RationalSqrt returns the exact rational square root of r when r is a
// perfect square of a rational, for callers outside this package (the
// solver's quadratic/cubic discriminant handling) that need the same
// recognition Factor uses for its discriminant-based quadratic split.
func RationalSqrt(r core.BigRat) (core.BigRat, bool) { return rationalSqrt(r) }

func rationalSqrt(r core.BigRat) (core.BigRat, bool) {
	if r.Sign() < 0 {
		return core.BigRat{}, false
	}
	num := r.Num().Big()
	den := r.Denom().Big()
	ns := new(big.Int).Sqrt(num)
	ds := new(big.Int).Sqrt(den)
	if new(big.Int).Mul(ns, ns).Cmp(num) != 0 || new(big.Int).Mul(ds, ds).Cmp(den) != 0 {
		return core.BigRat{}, false
	}
	out, err := core.RatFromFrac(core.IntFromBig(ns), core.IntFromBig(ds))
	if err != nil {
		return core.BigRat{}, false
	}
	return out, true
}

// factorMultivariate handles the p.Vars count != 1 case of Factor: pull
// out the monomial GCD, then try the documented two-variable
// difference-of-squares / sum-or-difference-of-cubes recognizer on
// whatever is left (spec §4.6). Anything recognizeBinomialPower can't
// match is returned as-is, same as a plain monomial-GCD split.
func factorMultivariate(p *Polynomial) []*Polynomial {
	extracted := factorMonomialGCD(p)
	rest := extracted[len(extracted)-1]
	binomialFactors, ok := recognizeBinomialPower(rest)
	if !ok {
		return extracted
	}
	out := append([]*Polynomial{}, extracted[:len(extracted)-1]...)
	return append(out, binomialFactors...)
}

// recognizeBinomialPower recognizes a two-variable, two-term polynomial
// shaped c0*Vars[0]^n + c1*Vars[1]^n for n in {2,3} (spec §4.6's
// "recognition of difference-of-squares / sum or difference of cubes"),
// and returns its two factors. Anything else (more variables, more
// terms, mixed exponents, other degrees) is left unrecognized.
func recognizeBinomialPower(p *Polynomial) ([]*Polynomial, bool) {
	if len(p.Vars) != 2 || len(p.Terms) != 2 {
		return nil, false
	}
	keys := p.orderedKeys()
	e0, e1 := p.Terms[keys[0]], p.Terms[keys[1]]
	if e0[1] != 0 || e1[0] != 0 {
		return nil, false
	}
	n := e0[0]
	if n != e1[1] {
		return nil, false
	}
	c0, c1 := p.Coefs[keys[0]], p.Coefs[keys[1]]
	switch n {
	case 2:
		return factorDiffOfSquares(p.Vars, c0, c1)
	case 3:
		return factorSumOrDiffOfCubes(p.Vars, c0, c1)
	default:
		return nil, false
	}
}

// factorDiffOfSquares factors c0*x^2 + c1*y^2 as (s1*x-s2*y)(s1*x+s2*y)
// when c0 and c1 have opposite signs and |c0|, |c1| are perfect
// rational squares; a sum of two squares of the same sign has no real
// (let alone rational) linear factorization, so that case is left
// unrecognized.
func factorDiffOfSquares(vars []string, c0, c1 core.BigRat) ([]*Polynomial, bool) {
	if c0.Sign() == 0 || c1.Sign() == 0 || (c0.Sign() > 0) == (c1.Sign() > 0) {
		return nil, false
	}
	var posCoef, negCoefAbs core.BigRat
	var posIdx, negIdx int
	if c0.Sign() > 0 {
		posCoef, posIdx = c0, 0
		negCoefAbs, negIdx = c1.Neg(), 1
	} else {
		posCoef, posIdx = c1, 1
		negCoefAbs, negIdx = c0.Neg(), 0
	}
	s1, ok1 := rationalSqrt(posCoef)
	s2, ok2 := rationalSqrt(negCoefAbs)
	if !ok1 || !ok2 {
		return nil, false
	}
	minus := linearBinomial(vars, posIdx, s1, negIdx, s2.Neg())
	plus := linearBinomial(vars, posIdx, s1, negIdx, s2)
	return []*Polynomial{minus, plus}, true
}

// factorSumOrDiffOfCubes factors c0*x^3 + c1*y^3 as (s1*x+s2*y)*(s1^2*x^2
// - s1*s2*x*y + s2^2*y^2), where s1, s2 are the (possibly negative)
// exact rational cube roots of c0, c1. The identity a^3+b^3 =
// (a+b)(a^2-ab+b^2) holds for any sign of a and b, so unlike the
// squares case this single form covers sum- and difference-of-cubes
// alike (a negative s1 or s2 folds the sign into the linear factor).
func factorSumOrDiffOfCubes(vars []string, c0, c1 core.BigRat) ([]*Polynomial, bool) {
	s0, ok0 := rationalCubeRoot(c0)
	s1, ok1 := rationalCubeRoot(c1)
	if !ok0 || !ok1 {
		return nil, false
	}
	linear := linearBinomial(vars, 0, s0, 1, s1)
	trinomial := quadraticTrinomial(vars, 0, s0.Mul(s0), 1, s1.Mul(s1), s0.Mul(s1).Neg())
	return []*Polynomial{linear, trinomial}, true
}

// linearBinomial builds coefA*vars[idxA] + coefB*vars[idxB].
func linearBinomial(vars []string, idxA int, coefA core.BigRat, idxB int, coefB core.BigRat) *Polynomial {
	out := New(vars)
	expA := make([]int, len(vars))
	expA[idxA] = 1
	out.AddTerm(coefA, expA)
	expB := make([]int, len(vars))
	expB[idxB] = 1
	out.AddTerm(coefB, expB)
	return out
}

// quadraticTrinomial builds cx*vars[idxX]^2 + cxy*vars[idxX]*vars[idxY]
// + cy*vars[idxY]^2.
func quadraticTrinomial(vars []string, idxX int, cx core.BigRat, idxY int, cy core.BigRat, cxy core.BigRat) *Polynomial {
	out := New(vars)
	ex := make([]int, len(vars))
	ex[idxX] = 2
	out.AddTerm(cx, ex)
	exy := make([]int, len(vars))
	exy[idxX] = 1
	exy[idxY] = 1
	out.AddTerm(cxy, exy)
	ey := make([]int, len(vars))
	ey[idxY] = 2
	out.AddTerm(cy, ey)
	return out
}

// rationalCubeRoot returns the exact rational cube root of r, or false
// if r is not a perfect cube of a rational. There is no math/big
// integer cube root to lean on the way rationalSqrt leans on
// big.Int.Sqrt, so bigIntCubeRoot below does the exact-root search by
// hand.
func rationalCubeRoot(r core.BigRat) (core.BigRat, bool) {
	num := r.Num().Big()
	den := r.Denom().Big()
	neg := num.Sign() < 0
	absNum := new(big.Int).Abs(num)
	ns, ok1 := bigIntCubeRoot(absNum)
	ds, ok2 := bigIntCubeRoot(den)
	if !ok1 || !ok2 {
		return core.BigRat{}, false
	}
	if neg {
		ns = ns.Neg(ns)
	}
	out, err := core.RatFromFrac(core.IntFromBig(ns), core.IntFromBig(ds))
	if err != nil {
		return core.BigRat{}, false
	}
	return out, true
}

// bigIntCubeRoot returns the exact integer cube root of the
// non-negative n, by binary search verified by cubing back.
func bigIntCubeRoot(n *big.Int) (*big.Int, bool) {
	if n.Sign() == 0 {
		return big.NewInt(0), true
	}
	three := big.NewInt(3)
	lo, hi := big.NewInt(0), new(big.Int).Set(n)
	for lo.Cmp(hi) < 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Add(mid, big.NewInt(1))
		mid.Rsh(mid, 1)
		cube := new(big.Int).Exp(mid, three, nil)
		if cube.Cmp(n) <= 0 {
			lo = mid
		} else {
			hi = new(big.Int).Sub(mid, big.NewInt(1))
		}
	}
	cube := new(big.Int).Exp(lo, three, nil)
	if cube.Cmp(n) != 0 {
		return nil, false
	}
	return lo, true
}

// factorMonomialGCD factors out the monomial common to every term of
// p (spec §4.6's multivariate best-effort case).
func factorMonomialGCD(p *Polynomial) []*Polynomial {
	if p.IsZero() {
		return []*Polynomial{p}
	}
	minExps := make([]int, len(p.Vars))
	first := true
	for _, exps := range p.Terms {
		for i, e := range exps {
			if first || e < minExps[i] {
				minExps[i] = e
			}
		}
		first = false
	}
	hasCommon := false
	for _, e := range minExps {
		if e > 0 {
			hasCommon = true
		}
	}
	if !hasCommon {
		return []*Polynomial{p}
	}
	mono := New(p.Vars)
	mono.AddTerm(core.RatOne(), minExps)
	rest := New(p.Vars)
	for key, exps := range p.Terms {
		newExps := make([]int, len(exps))
		for i := range exps {
			newExps[i] = exps[i] - minExps[i]
		}
		rest.AddTerm(p.Coefs[key], newExps)
	}
	return []*Polynomial{mono, rest}
}
