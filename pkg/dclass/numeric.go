/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import "math"

// # Numeric
//
// Numeric is the view of numeric distributed type: integer, char or float.
//
// Range and modulus are expressed in raw units, the same units as literal
// values in DC source. Divisor scales raw value to real value on decode.
type Numeric struct {
	kind    Kind
	rng     NumericRange
	modulus Number
	divisor uint32
}

func newNumeric(k Kind) *Numeric {
	return &Numeric{kind: k, divisor: 1}
}

func (n *Numeric) clone() *Numeric {
	c := *n
	return &c
}

func (n *Numeric) Kind() Kind { return n.kind }

// Returns numeric range and true if range is declared.
func (n *Numeric) Range() (NumericRange, bool) {
	return n.rng, !n.rng.IsEmpty()
}

// Returns modulus and true if modulus is declared.
func (n *Numeric) Modulus() (Number, bool) {
	return n.modulus, !n.modulus.IsNull()
}

// Returns divisor. Divisor is 1 if not declared.
func (n *Numeric) Divisor() uint32 { return n.divisor }

// Returns is value within declared range. Any value is within undeclared range.
func (n *Numeric) InRange(v Number) bool {
	return n.rng.Contains(v)
}

// Sets inclusive range of values.
//
// Returns false and leaves numeric unchanged if range is empty or inverted,
// if any bound is outside of the kind domain, or if bounds of integer kind
// are not integral.
func (n *Numeric) SetRange(r NumericRange) bool {
	if r.Min.IsNull() || r.Max.IsNull() {
		return false
	}
	if r.Min.Compare(r.Max) > 0 {
		return false
	}
	domain := KindDomain(n.kind)
	if !domain.Contains(r.Min) || !domain.Contains(r.Max) {
		return false
	}
	min, ok := r.Min.convert(n.kind)
	if !ok {
		return false
	}
	max, ok := r.Max.convert(n.kind)
	if !ok {
		return false
	}
	n.rng = NewNumericRange(min, max)
	return true
}

// Sets modulus.
//
// Returns false and leaves numeric unchanged if modulus is not positive.
// For integer kinds modulus should be integral and should not exceed
// the count of values representable by the kind.
func (n *Numeric) SetModulus(m Number) bool {
	if m.IsNull() || m.Compare(UintNumber(0)) <= 0 {
		return false
	}
	if n.kind.IsFloat() {
		if math.IsInf(m.AsFloat(), 0) || math.IsNaN(m.AsFloat()) {
			return false
		}
		n.modulus = FloatNumber(m.AsFloat())
		return true
	}
	v, ok := m.AsUint64()
	if !ok {
		return false
	}
	if w := n.kind.Width(); w < 8 && v > uint64(1)<<(8*w) {
		return false
	}
	n.modulus = UintNumber(v)
	return true
}

// Sets divisor.
//
// Returns false and leaves numeric unchanged if divisor is zero.
func (n *Numeric) SetDivisor(d uint32) bool {
	if d == 0 {
		return false
	}
	n.divisor = d
	return true
}

func (n *Numeric) contributeToHash(h *HashGenerator) {
	h.AddUint32(n.divisor)
	if m, ok := n.Modulus(); ok {
		h.AddInt(1)
		h.AddUint64(m.bits())
	} else {
		h.AddInt(0)
	}
	if r, ok := n.Range(); ok {
		h.AddInt(1)
		h.AddUint64(r.Min.bits())
		h.AddUint64(r.Max.bits())
	} else {
		h.AddInt(0)
	}
}
