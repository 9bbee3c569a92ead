package solve

import (
	"math"
	"math/cmplx"

	"github.com/client9/symkernel/core"
	"github.com/client9/symkernel/poly"
)

// solveCubic depresses x^3+px+q via the standard t = x - b/3a
// substitution, then applies Cardano's formula (spec §4.8 degree 3).
// No third-party complex-arithmetic library appears anywhere in the
// retrieved corpus, so the cubic/quartic root arithmetic below uses
// the standard library's complex128/math/cmplx rather than a real
// exact method; roots are re-expressed as Float constants via
// core.Float, which is the documented numeric fallback tier (spec §3's
// Float variant) rather than a fabricated dependency.
func solveCubic(p *poly.Polynomial, v core.SymbolExpr) SolverResult {
	coefs := univariateCoefs(p)
	a, b, c, d := coefs[0].Float64(), coefs[1].Float64(), coefs[2].Float64(), coefs[3].Float64()
	b, c, d = b/a, c/a, d/a
	// depressed cubic t^3 + pt + q, x = t - b/3
	shift := b / 3
	pp := c - b*b/3
	qq := 2*b*b*b/27 - b*c/3 + d

	roots := cardano(pp, qq)
	out := make([]core.Expr, 0, 3)
	for _, r := range roots {
		x := r - complex(shift, 0)
		out = append(out, complexToExpr(x))
	}
	return Multiple(out)
}

// cardano returns the three (possibly complex, possibly repeated)
// roots of t^3 + p*t + q = 0.
func cardano(p, q float64) []complex128 {
	const third = 1.0 / 3.0
	disc := q*q/4 + p*p*p/27
	discC := complex(disc, 0)
	sqrtDisc := cmplx.Sqrt(discC)
	u := cmplx.Pow(complex(-q/2, 0)+sqrtDisc, complex(third, 0))
	var v complex128
	if u != 0 {
		v = complex(p, 0) / (complex(3, 0) * u)
		v = -v
	}
	// cube root of unity rotations give the other two branches.
	w := cmplx.Exp(complex(0, 2*3.141592653589793/3))
	w2 := w * w
	t1 := u + v
	t2 := u*w + v*w2
	t3 := u*w2 + v*w
	return []complex128{t1, t2, t3}
}

func complexToExpr(c complex128) core.Expr {
	re, im := real(c), imag(c)
	if math.Abs(im) < 1e-9*(1+math.Abs(re)) {
		f, err := core.Float(re)
		if err != nil {
			return core.Integer(0)
		}
		return f
	}
	reExpr, err1 := core.Float(re)
	imExpr, err2 := core.Float(im)
	if err1 != nil || err2 != nil {
		return core.Integer(0)
	}
	return core.Add(reExpr, core.Mul(imExpr, imaginaryUnit()))
}

// solveQuartic handles degree 4 via the biquadratic substitution when
// the odd-degree coefficients vanish, falling back to numeric
// root-finding of the resolvent otherwise (spec §4.8 degree 4).
func solveQuartic(p *poly.Polynomial, v core.SymbolExpr) SolverResult {
	coefs := univariateCoefs(p)
	a, b, c, d, e := coefs[0].Float64(), coefs[1].Float64(), coefs[2].Float64(), coefs[3].Float64(), coefs[4].Float64()
	b, c, d, e = b/a, c/a, d/a, e/a

	if isNearZero(b) && isNearZero(d) {
		// biquadratic: x^4 + c x^2 + e = 0, let y = x^2.
		yRoots := cardanoQuadratic(1, c, e)
		var out []core.Expr
		for _, y := range yRoots {
			sq := cmplx.Sqrt(y)
			out = append(out, complexToExpr(sq), complexToExpr(-sq))
		}
		return Multiple(out)
	}
	return solveQuarticResolvent(b, c, d, e)
}

func isNearZero(x float64) bool { return x > -1e-9 && x < 1e-9 }

func cardanoQuadratic(a, b, c float64) []complex128 {
	disc := complex(b*b-4*a*c, 0)
	sq := cmplx.Sqrt(disc)
	twoA := complex(2*a, 0)
	return []complex128{(complex(-b, 0) + sq) / twoA, (complex(-b, 0) - sq) / twoA}
}

// solveQuarticResolvent uses Ferrari's method via the resolvent cubic
// for the general (non-biquadratic) quartic.
func solveQuarticResolvent(b, c, d, e float64) SolverResult {
	shift := b / 4
	bb, cc, dd, ee := b, c, d, e
	p := cc - 3*bb*bb/8
	q := dd - bb*cc/2 + bb*bb*bb/8
	r := ee - bb*dd/4 + bb*bb*cc/16 - 3*bb*bb*bb*bb/256

	// resolvent cubic: m^3 + 2p m^2 + (p^2-4r) m - q^2 = 0
	resolvent := cardano3(1, 2*p, p*p-4*r, -q*q)
	m := resolvent[0]
	for _, root := range resolvent[1:] {
		if cmplx.Abs(root) > cmplx.Abs(m) {
			m = root
		}
	}
	sqrt2m := cmplx.Sqrt(complex(2, 0) * m)
	var roots []complex128
	if cmplx.Abs(sqrt2m) > 1e-12 {
		twoP := complex(2*p, 0)
		twoQOverSqrt := complex(2*q, 0) / sqrt2m
		inner := -(twoP + complex(2, 0)*m)
		t1 := cmplx.Sqrt(inner + twoQOverSqrt)
		t2 := cmplx.Sqrt(inner - twoQOverSqrt)
		roots = []complex128{
			(sqrt2m + t1) / 2,
			(sqrt2m - t1) / 2,
			(-sqrt2m + t2) / 2,
			(-sqrt2m - t2) / 2,
		}
	} else {
		t := cmplx.Sqrt(complex(-2*p, 0))
		roots = []complex128{t / 2, -t / 2, t / 2, -t / 2}
	}
	out := make([]core.Expr, 0, 4)
	for _, x := range roots {
		out = append(out, complexToExpr(x-complex(shift, 0)))
	}
	return Multiple(out)
}

// cardano3 solves a general (non-monic, unshifted) cubic a*t^3+b*t^2+c*t+d=0
// by normalizing to monic and depressing before calling cardano.
func cardano3(a, b, c, d float64) []complex128 {
	b, c, d = b/a, c/a, d/a
	shift := b / 3
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	roots := cardano(p, q)
	for i, r := range roots {
		roots[i] = r - complex(shift, 0)
	}
	return roots
}
