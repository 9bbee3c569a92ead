package core

import (
	"math"
	"strconv"
)

// MachineFloat is the inexact tier: a finite IEEE double. The spec
// asks only for "an IEEE double fallback" (§4.1); the teacher's
// core/big.Float wraps an MPFR CGO binding that is neither a
// fetchable module nor declared in the teacher's own go.mod, so the
// stdlib float64 is used directly here instead (see DESIGN.md).
type MachineFloat float64

func FloatFromFloat64(f float64) (MachineFloat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, NewError(ErrInvalidArgument, "non-finite float %v", f)
	}
	return MachineFloat(f), nil
}

func (f MachineFloat) Float64() float64 { return float64(f) }

func (f MachineFloat) String() string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	return s
}

func (f MachineFloat) Sign() int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

func (f MachineFloat) IsZero() bool { return f == 0 }

func (f MachineFloat) Add(o MachineFloat) MachineFloat { return f + o }
func (f MachineFloat) Sub(o MachineFloat) MachineFloat { return f - o }
func (f MachineFloat) Mul(o MachineFloat) MachineFloat { return f * o }
func (f MachineFloat) Div(o MachineFloat) MachineFloat { return f / o }
func (f MachineFloat) Neg() MachineFloat               { return -f }
func (f MachineFloat) Abs() MachineFloat {
	if f < 0 {
		return -f
	}
	return f
}

func (f MachineFloat) Equal(o MachineFloat) bool { return f == o }
