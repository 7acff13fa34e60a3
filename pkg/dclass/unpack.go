/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import (
	"encoding/binary"
	"math"
)

// Maximum length which fits into length prefix.
const MaxSizeTag = uint64(^SizeTag(0))

// Appends length prefix to b.
//
// Returns false and leaves b unchanged if length does not fit into prefix.
func AppendSizeTag(b []byte, length uint64) ([]byte, bool) {
	if length > MaxSizeTag {
		return b, false
	}
	var tag [SizeTagSize]byte
	putSizeTag(tag[:], SizeTag(length))
	return append(b, tag[:]...), true
}

// Reads length prefix from b. Returns length and the rest of b.
func ReadSizeTag(b []byte) (uint64, []byte, error) {
	if len(b) < SizeTagSize {
		return 0, b, ErrOutOfBounds("length prefix needs %d bytes, %d available", SizeTagSize, len(b))
	}
	return uint64(sizeTag(b)), b[SizeTagSize:], nil
}

// Reads raw value of numeric from little-endian encoded b.
// Returns value and count of bytes read.
func (n *Numeric) Unpack(b []byte) (Number, int, error) {
	w := int(n.kind.Width())
	if len(b) < w {
		return Number{}, 0, ErrOutOfBounds("%v needs %d bytes, %d available", n.kind.TrimString(), w, len(b))
	}
	switch n.kind {
	case Kind_int8:
		return IntNumber(int64(int8(b[0]))), w, nil
	case Kind_int16:
		return IntNumber(int64(int16(binary.LittleEndian.Uint16(b)))), w, nil
	case Kind_int32:
		return IntNumber(int64(int32(binary.LittleEndian.Uint32(b)))), w, nil
	case Kind_int64:
		return IntNumber(int64(binary.LittleEndian.Uint64(b))), w, nil
	case Kind_uint8, Kind_char:
		return UintNumber(uint64(b[0])), w, nil
	case Kind_uint16:
		return UintNumber(uint64(binary.LittleEndian.Uint16(b))), w, nil
	case Kind_uint32:
		return UintNumber(uint64(binary.LittleEndian.Uint32(b))), w, nil
	case Kind_uint64:
		return UintNumber(binary.LittleEndian.Uint64(b)), w, nil
	case Kind_float32:
		return FloatNumber(float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))), w, nil
	case Kind_float64:
		return FloatNumber(math.Float64frombits(binary.LittleEndian.Uint64(b))), w, nil
	}
	return Number{}, 0, ErrInvalid("numeric kind %v", n.kind)
}

// Returns real value of raw value: raw value is reduced by modulus,
// then divided by divisor.
func (n *Numeric) Real(raw Number) float64 {
	v := raw.AsFloat()
	if m, ok := n.Modulus(); ok {
		v = math.Mod(v, m.AsFloat())
		if v < 0 {
			v += m.AsFloat()
		}
	}
	return v / float64(n.divisor)
}
