package core

import "math/big"

// BigRat is the exact-rational tier: numerator/denominator reduced,
// denominator always positive, per spec §3's invariant. Grounded on
// the teacher's core/rational.go and core/bigrat.go (stdlib math/big
// backed path, not the CGO mpq path under core/big/).
type BigRat struct {
	val *big.Rat
}

// RatFromFrac builds p/q, reducing and normalizing sign. Returns
// ErrInvalidArgument if q is zero.
func RatFromFrac(p, q BigInt) (BigRat, error) {
	if q.IsZero() {
		return BigRat{}, NewError(ErrInvalidArgument, "zero denominator")
	}
	r := new(big.Rat).SetFrac(p.val, q.val)
	return BigRat{val: r}, nil
}

func RatFromInt(i BigInt) BigRat {
	return BigRat{val: new(big.Rat).SetInt(i.val)}
}

func RatFromBig(r *big.Rat) BigRat { return BigRat{val: new(big.Rat).Set(r)} }

func (r BigRat) Big() *big.Rat { return r.val }

// IsInt reports whether the denominator reduces to 1, i.e. the value
// is actually an Integer per the disjoint-ranges invariant.
func (r BigRat) IsInt() bool { return r.val.IsInt() }

func (r BigRat) AsInt() BigInt { return BigInt{val: new(big.Int).Set(r.val.Num())} }

func (r BigRat) Num() BigInt { return BigInt{val: new(big.Int).Set(r.val.Num())} }

func (r BigRat) Denom() BigInt { return BigInt{val: new(big.Int).Set(r.val.Denom())} }

func (r BigRat) String() string { return r.val.RatString() }

func (r BigRat) Sign() int { return r.val.Sign() }

func (r BigRat) IsZero() bool { return r.val.Sign() == 0 }

func (r BigRat) Cmp(o BigRat) int { return r.val.Cmp(o.val) }

func (r BigRat) Add(o BigRat) BigRat { return BigRat{val: new(big.Rat).Add(r.val, o.val)} }

func (r BigRat) Sub(o BigRat) BigRat { return BigRat{val: new(big.Rat).Sub(r.val, o.val)} }

func (r BigRat) Mul(o BigRat) BigRat { return BigRat{val: new(big.Rat).Mul(r.val, o.val)} }

// Div returns r / o. Panics are never used: caller must check o.IsZero().
func (r BigRat) Div(o BigRat) (BigRat, error) {
	if o.IsZero() {
		return BigRat{}, NewError(ErrDivisionByZero, "division by zero")
	}
	return BigRat{val: new(big.Rat).Quo(r.val, o.val)}, nil
}

func (r BigRat) Neg() BigRat { return BigRat{val: new(big.Rat).Neg(r.val)} }

func (r BigRat) Inv() (BigRat, error) {
	if r.IsZero() {
		return BigRat{}, NewError(ErrDivisionByZero, "inverse of zero")
	}
	return BigRat{val: new(big.Rat).Inv(r.val)}, nil
}

func (r BigRat) Abs() BigRat { return BigRat{val: new(big.Rat).Abs(r.val)} }

func (r BigRat) Float64() float64 {
	f, _ := r.val.Float64()
	return f
}

func (r BigRat) Equal(o BigRat) bool { return r.val.Cmp(o.val) == 0 }

var ratZero = RatFromInt(IntZero())
var ratOne = RatFromInt(IntOne())

func RatZero() BigRat { return ratZero }
func RatOne() BigRat  { return ratOne }

// PowInt raises a rational to a nonnegative integer power (negative
// exponent handled by caller via Inv, per spec §4.1).
func (r BigRat) PowInt(n uint64) BigRat {
	num := new(big.Int).Exp(r.val.Num(), new(big.Int).SetUint64(n), nil)
	den := new(big.Int).Exp(r.val.Denom(), new(big.Int).SetUint64(n), nil)
	return BigRat{val: new(big.Rat).SetFrac(num, den)}
}
