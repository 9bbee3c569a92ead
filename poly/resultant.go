package poly

import "github.com/client9/symkernel/core"

// Resultant computes the resultant of univariate f and g via the
// determinant of the Sylvester matrix (spec §4.6).
func Resultant(f, g *Polynomial) (core.BigRat, error) {
	if len(f.Vars) != 1 || len(g.Vars) != 1 {
		return core.BigRat{}, core.NewError(core.ErrUnsupportedField, "resultant is only implemented for univariate polynomials")
	}
	m := f.DegreeIn(0)
	n := g.DegreeIn(0)
	if m < 0 || n < 0 {
		return core.BigRat{}, core.NewError(core.ErrNotAPolynomial, "resultant of the zero polynomial is undefined")
	}
	size := m + n
	mat := make([][]core.BigRat, size)
	for i := range mat {
		mat[i] = make([]core.BigRat, size)
		for j := range mat[i] {
			mat[i][j] = core.RatZero()
		}
	}
	fc := univariateCoefs(f, m)
	gc := univariateCoefs(g, n)
	for i := 0; i < n; i++ {
		for j := 0; j <= m; j++ {
			mat[i][i+j] = fc[j]
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j <= n; j++ {
			mat[n+i][i+j] = gc[j]
		}
	}
	return determinant(mat), nil
}

// Discriminant returns (-1)^(n(n-1)/2) * resultant(p, p')/leading_coefficient(p)
// for p of degree n in its main variable, the standard sign convention
// (so disc(a*x^2+b*x+c) = b^2-4ac).
func Discriminant(p *Polynomial) (core.BigRat, error) {
	dp := Derivative(p)
	res, err := Resultant(p, dp)
	if err != nil {
		return core.BigRat{}, err
	}
	lc, _, ok := p.LeadingTerm()
	if !ok || lc.IsZero() {
		return core.BigRat{}, core.NewError(core.ErrNotAPolynomial, "discriminant of the zero polynomial is undefined")
	}
	d, err := res.Div(lc)
	if err != nil {
		return core.BigRat{}, err
	}
	if n := p.DegreeIn(0); (n*(n-1)/2)%2 == 1 {
		d = d.Neg()
	}
	return d, nil
}

// Derivative returns the formal derivative of univariate p in its main
// variable.
func Derivative(p *Polynomial) *Polynomial {
	out := New(p.Vars)
	for key, exps := range p.Terms {
		d := exps[0]
		if d == 0 {
			continue
		}
		newExps := append([]int{}, exps...)
		newExps[0] = d - 1
		coef := p.Coefs[key].Mul(core.RatFromInt(core.IntFromInt64(int64(d))))
		out.AddTerm(coef, newExps)
	}
	return out
}

// univariateCoefs returns p's coefficients from degree deg down to 0,
// highest first, for building a Sylvester-matrix row.
func univariateCoefs(p *Polynomial, deg int) []core.BigRat {
	out := make([]core.BigRat, deg+1)
	for i := range out {
		out[i] = core.RatZero()
	}
	for _, key := range p.orderedKeys() {
		d := p.Terms[key][0]
		out[deg-d] = p.Coefs[key]
	}
	return out
}

func determinant(mat [][]core.BigRat) core.BigRat {
	n := len(mat)
	if n == 0 {
		return core.RatOne()
	}
	m := make([][]core.BigRat, n)
	for i := range mat {
		m[i] = append([]core.BigRat{}, mat[i]...)
	}
	det := core.RatOne()
	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if !m[row][col].IsZero() {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return core.RatZero()
		}
		if pivot != col {
			m[col], m[pivot] = m[pivot], m[col]
			det = det.Neg()
		}
		det = det.Mul(m[col][col])
		inv, err := m[col][col].Inv()
		if err != nil {
			return core.RatZero()
		}
		for row := col + 1; row < n; row++ {
			if m[row][col].IsZero() {
				continue
			}
			factor := m[row][col].Mul(inv)
			for k := col; k < n; k++ {
				m[row][k] = m[row][k].Sub(factor.Mul(m[col][k]))
			}
		}
	}
	return det
}
