/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import (
	"fmt"
	"math"
)

// ArrayRange limits the count of array elements. For strings and blobs
// elements are bytes, so the range limits the length.
type ArrayRange struct {
	Min uint64
	Max uint64
}

// Returns range with the single value: a fixed count of elements.
func FixedCount(n uint64) *ArrayRange {
	return &ArrayRange{Min: n, Max: n}
}

func (r ArrayRange) IsFixed() bool { return r.Min == r.Max }

func (r ArrayRange) Contains(n uint64) bool {
	return r.Min <= n && n <= r.Max
}

func (r ArrayRange) String() string {
	if r.IsFixed() {
		return fmt.Sprint(r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// # Array
//
// Array is the view of array distributed types: fixed or variable arrays,
// strings and blobs.
type Array struct {
	file    *File
	elem    TypeID
	rng     ArrayRange
	limited bool
	count   uint64
}

// Returns the element type.
func (a *Array) Element() *Type { return a.file.Type(a.elem) }

// Returns the element count range and true if range was declared.
func (a *Array) Range() (ArrayRange, bool) { return a.rng, a.limited }

// Returns fixed element count, or 0 if element count is variable.
func (a *Array) Count() uint64 { return a.count }

// Returns array kind and size for element type and optional element count range.
//
// Fixed count of fixed size elements gives fixed array, any other
// combination gives variable array. Arrays of chars are strings, arrays
// of uint8 are blobs.
func arrayKind(elem *Type, rng *ArrayRange) (k Kind, count, size uint64, fixed bool) {
	if rng != nil && rng.IsFixed() {
		count = rng.Min
	}
	k = Kind_vararray
	if elem.HasFixedSize() && count > 0 {
		k = Kind_array
		size = count * elem.Size()
		if elem.Size() != 0 && size/elem.Size() != count {
			size = math.MaxUint64
		}
		fixed = true
	}
	switch elem.Kind() {
	case Kind_char:
		if k == Kind_array {
			k = Kind_string
		} else {
			k = Kind_varstring
		}
	case Kind_uint8:
		if k == Kind_array {
			k = Kind_blob
		} else {
			k = Kind_varblob
		}
	}
	return k, count, size, fixed
}

func (a *Array) contributeToHash(h *HashGenerator) {
	a.Element().contributeRefToHash(h)
	if a.limited {
		h.AddInt(1)
		h.AddUint64(a.rng.Min)
		h.AddUint64(a.rng.Max)
	} else {
		h.AddInt(0)
	}
	h.AddUint64(a.count)
}
