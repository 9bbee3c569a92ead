package poly

import "github.com/client9/symkernel/core"

// Pow raises p to the nonnegative integer power n, expanding via
// repeated squaring on the sparse monomial map (spec §4.6's small-n
// fast path, reused here as the general case since squaring already
// halves the number of multiplications for any n).
func Pow(p *Polynomial, n uint64) *Polynomial {
	result := constantPolynomial(p.Vars, core.RatOne())
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		n >>= 1
	}
	return result
}
