/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import "strings"

// Kind is the discriminant of a distributed type.
//
// New kinds must be appended before Kind_invalid only: the numeric value
// of every kind is folded into the schema fingerprint.
type Kind uint8

//go:generate stringer -type=Kind -output=stringer_kind.go

const (
	// Numeric kinds
	Kind_int8 Kind = iota
	Kind_int16
	Kind_int32
	Kind_int64
	Kind_uint8
	Kind_uint16
	Kind_uint32
	Kind_uint64
	Kind_char // same layout as uint8, printed as a character
	Kind_float32
	Kind_float64

	// Array kinds
	Kind_string    // human-printable string with fixed length
	Kind_varstring // human-printable string with variable length
	Kind_blob      // binary data with fixed length
	Kind_varblob   // binary data with variable length
	Kind_array     // array with fixed byte length
	Kind_vararray  // array with variable element count or variable element size

	// Complex kinds
	Kind_struct
	Kind_method

	// Placeholder for constructs which failed semantic checks
	Kind_invalid
)

// Returns kind name without "Kind_" prefix, as it is written in DC source.
func (k Kind) TrimString() string {
	const pref = "Kind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Returns is kind numeric.
func (k Kind) IsNumeric() bool {
	return k <= Kind_float64
}

// Returns is kind a signed integer kind.
func (k Kind) IsSigned() bool {
	return k >= Kind_int8 && k <= Kind_int64
}

// Returns is kind an unsigned integer kind. Char is unsigned.
func (k Kind) IsUnsigned() bool {
	return k >= Kind_uint8 && k <= Kind_char
}

// Returns is kind a floating point kind.
func (k Kind) IsFloat() bool {
	return k == Kind_float32 || k == Kind_float64
}

// Returns is kind an array kind, including strings and blobs.
func (k Kind) IsArray() bool {
	return k >= Kind_string && k <= Kind_vararray
}

// Returns the native width in bytes of numeric kind, or 0 for other kinds.
func (k Kind) Width() uint64 {
	switch k {
	case Kind_int8, Kind_uint8, Kind_char:
		return 1
	case Kind_int16, Kind_uint16:
		return 2
	case Kind_int32, Kind_uint32, Kind_float32:
		return 4
	case Kind_int64, Kind_uint64, Kind_float64:
		return 8
	}
	return 0
}
