package primitive

import (
	"errors"
	"math"
	"reflect"

	"ags/utils"
)

// ErrOutOfRange reports a number that does not fit the declared kind or the structural int64.
var ErrOutOfRange = errors.New("value out of range")

// Bounds returns the inclusive range of an integer kind that the structural int64 can carry.
func (k KindEnum) Bounds() (lo, hi int64) {
	bits := k.Bits()

	switch {
	default:
		panic("only integer kinds have bounds, but requested for: " + k.String())
	case k.IsSigned():
		if bits == 64 {
			return math.MinInt64, math.MaxInt64
		}
		return -1 << (bits - 1), 1<<(bits-1) - 1
	case k.IsUnsigned():
		if bits == 64 {
			return 0, math.MaxInt64
		}
		return 0, 1<<bits - 1
	}
}

// ToStructural widens a primitive value to its structural representation:
// int64 for integers, float64 for floats, bool and string as is.
func ToStructural(k KindEnum, rv reflect.Value) (any, error) {
	switch {
	case k.IsSigned():
		return rv.Int(), nil
	case k.IsUnsigned():
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, ErrOutOfRange
		}
		return int64(u), nil
	case k.IsFloat():
		return rv.Float(), nil
	case k == KindBool:
		return rv.Bool(), nil
	case k == KindString:
		return rv.String(), nil
	default:
		return nil, nil
	}
}

// FromInt narrows a structural integer to rtype, rejecting values outside the kind's range.
func FromInt(k KindEnum, i int64, rtype reflect.Type) (reflect.Value, error) {
	out := reflect.New(rtype).Elem()

	switch {
	case k.IsInteger():
		lo, hi := k.Bounds()
		if !utils.IsInRange(lo, i, hi) {
			return reflect.Value{}, ErrOutOfRange
		}
		if k.IsSigned() {
			out.SetInt(i)
		} else {
			out.SetUint(uint64(i))
		}
	case k.IsFloat():
		out.SetFloat(float64(i))
	default:
		panic("integer conversion requested for: " + k.String())
	}

	return out, nil
}

// FromFloat narrows a structural float to rtype; finite values beyond float32 are rejected.
func FromFloat(k KindEnum, f float64, rtype reflect.Type) (reflect.Value, error) {
	if !k.IsFloat() {
		panic("float conversion requested for: " + k.String())
	}

	if k == KindFloat32 && !math.IsInf(f, 0) && !math.IsNaN(f) &&
		!utils.IsInRange(-math.MaxFloat32, f, math.MaxFloat32) {
		return reflect.Value{}, ErrOutOfRange
	}

	out := reflect.New(rtype).Elem()
	out.SetFloat(f)

	return out, nil
}
