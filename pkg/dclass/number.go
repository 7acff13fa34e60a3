/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import (
	"math"
	"strconv"
)

// NumberKind describes which member of Number holds the value.
type NumberKind uint8

const (
	NumberKind_null NumberKind = iota
	NumberKind_int
	NumberKind_uint
	NumberKind_float
)

// Number is a literal numeric value as it was written in DC source:
// negative integers are signed, other integers are unsigned, numbers
// with fraction or exponent are floating point.
type Number struct {
	Kind  NumberKind
	Int   int64
	Uint  uint64
	Float float64
}

func IntNumber(v int64) Number     { return Number{Kind: NumberKind_int, Int: v} }
func UintNumber(v uint64) Number   { return Number{Kind: NumberKind_uint, Uint: v} }
func FloatNumber(v float64) Number { return Number{Kind: NumberKind_float, Float: v} }

func (n Number) IsNull() bool { return n.Kind == NumberKind_null }

func (n Number) String() string {
	switch n.Kind {
	case NumberKind_int:
		return strconv.FormatInt(n.Int, 10)
	case NumberKind_uint:
		return strconv.FormatUint(n.Uint, 10)
	case NumberKind_float:
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	}
	return "null"
}

// Returns number as float64. Large 64-bit integers lose precision.
func (n Number) AsFloat() float64 {
	switch n.Kind {
	case NumberKind_int:
		return float64(n.Int)
	case NumberKind_uint:
		return float64(n.Uint)
	case NumberKind_float:
		return n.Float
	}
	return 0
}

// Returns is number an integer value, regardless of its kind.
func (n Number) IsIntegral() bool {
	switch n.Kind {
	case NumberKind_int, NumberKind_uint:
		return true
	case NumberKind_float:
		return !math.IsInf(n.Float, 0) && n.Float == math.Trunc(n.Float)
	}
	return false
}

// Returns number as int64 if it is integral and representable.
func (n Number) AsInt64() (int64, bool) {
	switch n.Kind {
	case NumberKind_int:
		return n.Int, true
	case NumberKind_uint:
		if n.Uint > math.MaxInt64 {
			return 0, false
		}
		return int64(n.Uint), true
	case NumberKind_float:
		if !n.IsIntegral() || n.Float < math.MinInt64 || n.Float >= math.MaxInt64 {
			return 0, false
		}
		return int64(n.Float), true
	}
	return 0, false
}

// Returns number as uint64 if it is integral, non-negative and representable.
func (n Number) AsUint64() (uint64, bool) {
	switch n.Kind {
	case NumberKind_int:
		if n.Int < 0 {
			return 0, false
		}
		return uint64(n.Int), true
	case NumberKind_uint:
		return n.Uint, true
	case NumberKind_float:
		if !n.IsIntegral() || n.Float < 0 || n.Float >= math.MaxUint64 {
			return 0, false
		}
		return uint64(n.Float), true
	}
	return 0, false
}

// Returns the raw bits of number for hashing.
func (n Number) bits() uint64 {
	switch n.Kind {
	case NumberKind_int:
		return uint64(n.Int)
	case NumberKind_uint:
		return n.Uint
	case NumberKind_float:
		return math.Float64bits(n.Float)
	}
	return 0
}

// Compares two numbers by value. Returns -1, 0 or +1.
//
// Null numbers compare as zero.
func (n Number) Compare(m Number) int {
	if n.Kind == NumberKind_float || m.Kind == NumberKind_float {
		a, b := n.AsFloat(), m.AsFloat()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	an, aNeg := n.signed()
	bn, bNeg := m.signed()
	switch {
	case aNeg && !bNeg:
		return -1
	case !aNeg && bNeg:
		return 1
	case aNeg && bNeg:
		// both negative: magnitudes compare in reverse
		switch {
		case an > bn:
			return -1
		case an < bn:
			return 1
		}
		return 0
	}
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	}
	return 0
}

// Returns magnitude and sign of integral number.
func (n Number) signed() (magnitude uint64, negative bool) {
	switch n.Kind {
	case NumberKind_int:
		if n.Int < 0 {
			return uint64(-(n.Int + 1)) + 1, true
		}
		return uint64(n.Int), false
	case NumberKind_uint:
		return n.Uint, false
	}
	return 0, false
}

// Converts number to the representation used by numeric kind k:
// signed kinds store int, unsigned kinds store uint, float kinds store float.
//
// Returns false if number can not be represented exactly.
func (n Number) convert(k Kind) (Number, bool) {
	switch {
	case k.IsSigned():
		v, ok := n.AsInt64()
		return IntNumber(v), ok
	case k.IsUnsigned():
		v, ok := n.AsUint64()
		return UintNumber(v), ok
	case k.IsFloat():
		if n.IsNull() {
			return n, false
		}
		return FloatNumber(n.AsFloat()), true
	}
	return n, false
}

// NumericRange is an inclusive range of numbers.
//
// Zero value is an empty range, which means no limits.
type NumericRange struct {
	Min Number
	Max Number
}

func NewNumericRange(min, max Number) NumericRange {
	return NumericRange{Min: min, Max: max}
}

// Returns is range empty (not limited).
func (r NumericRange) IsEmpty() bool {
	return r.Min.IsNull() && r.Max.IsNull()
}

// Returns is value within range. Empty range contains any value.
func (r NumericRange) Contains(v Number) bool {
	if r.IsEmpty() {
		return true
	}
	return r.Min.Compare(v) <= 0 && v.Compare(r.Max) <= 0
}

func (r NumericRange) String() string {
	if r.IsEmpty() {
		return ""
	}
	if r.Min.Compare(r.Max) == 0 {
		return r.Min.String()
	}
	return r.Min.String() + "-" + r.Max.String()
}

// Returns the representable range of numeric kind.
//
// Returns empty range for non numeric kinds.
func KindDomain(k Kind) NumericRange {
	switch k {
	case Kind_int8:
		return NewNumericRange(IntNumber(math.MinInt8), IntNumber(math.MaxInt8))
	case Kind_int16:
		return NewNumericRange(IntNumber(math.MinInt16), IntNumber(math.MaxInt16))
	case Kind_int32:
		return NewNumericRange(IntNumber(math.MinInt32), IntNumber(math.MaxInt32))
	case Kind_int64:
		return NewNumericRange(IntNumber(math.MinInt64), IntNumber(math.MaxInt64))
	case Kind_uint8, Kind_char:
		return NewNumericRange(UintNumber(0), UintNumber(math.MaxUint8))
	case Kind_uint16:
		return NewNumericRange(UintNumber(0), UintNumber(math.MaxUint16))
	case Kind_uint32:
		return NewNumericRange(UintNumber(0), UintNumber(math.MaxUint32))
	case Kind_uint64:
		return NewNumericRange(UintNumber(0), UintNumber(math.MaxUint64))
	case Kind_float32:
		return NewNumericRange(FloatNumber(-math.MaxFloat32), FloatNumber(math.MaxFloat32))
	case Kind_float64:
		return NewNumericRange(FloatNumber(-math.MaxFloat64), FloatNumber(math.MaxFloat64))
	}
	return NumericRange{}
}
