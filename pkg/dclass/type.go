/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import "fmt"

// TypeID is the stable index of a type in the arena of its schema document.
type TypeID uint32

// Identifier of the placeholder type, which substitutes constructs that
// failed semantic checks.
const InvalidTypeID TypeID = 0

// Variant payload of distributed type. Implemented by *Numeric, *Array,
// *Struct, *Class and *Method only.
type typeVariant interface {
	contributeToHash(h *HashGenerator)
}

// # Type
//
// Type is a distributed type: a shared type with a defined layout of data.
//
// Type is a tagged union: Kind is the discriminant, and capability views
// (AsNumeric, AsArray, AsStruct, AsClass, AsMethod) return the payload
// or explicit false if type is not of the requested kind.
type Type struct {
	file    *File
	id      TypeID
	kind    Kind
	size    uint64
	fixed   bool
	variant typeVariant
}

func (t *Type) ID() TypeID { return t.id }

// Returns the discriminant of type.
func (t *Type) Kind() Kind { return t.kind }

// Returns is type has a fixed size in bytes.
func (t *Type) HasFixedSize() bool { return t.fixed }

// Returns size of type in bytes, or 0 if size is variable.
func (t *Type) Size() uint64 {
	if !t.fixed {
		return 0
	}
	return t.size
}

// Returns is type the placeholder for invalid construct.
func (t *Type) IsInvalid() bool { return t.kind == Kind_invalid }

func (t *Type) AsNumeric() (*Numeric, bool) {
	n, ok := t.variant.(*Numeric)
	return n, ok
}

func (t *Type) AsArray() (*Array, bool) {
	a, ok := t.variant.(*Array)
	return a, ok
}

// Returns struct view of type. Classes are structs also.
func (t *Type) AsStruct() (*Struct, bool) {
	switch v := t.variant.(type) {
	case *Struct:
		return v, true
	case *Class:
		return &v.Struct, true
	}
	return nil, false
}

func (t *Type) AsClass() (*Class, bool) {
	c, ok := t.variant.(*Class)
	return c, ok
}

func (t *Type) AsMethod() (*Method, bool) {
	m, ok := t.variant.(*Method)
	return m, ok
}

func (t *Type) String() string {
	switch v := t.variant.(type) {
	case *Numeric:
		return t.kind.TrimString()
	case *Array:
		switch t.kind {
		case Kind_string, Kind_varstring, Kind_blob, Kind_varblob:
			base := "string"
			if t.kind == Kind_blob || t.kind == Kind_varblob {
				base = "blob"
			}
			if v.limited {
				return fmt.Sprintf("%s(%v)", base, v.rng)
			}
			return base
		}
		if v.limited {
			return fmt.Sprintf("%v[%v]", v.Element(), v.rng)
		}
		return fmt.Sprintf("%v[]", v.Element())
	case *Struct:
		if v.name == "" {
			return "struct"
		}
		return "struct " + v.name
	case *Class:
		return "class " + v.name
	case *Method:
		return "method"
	}
	return t.kind.TrimString()
}

// Accumulates the full shape of type into hash.
func (t *Type) ContributeToHash(h *HashGenerator) {
	h.AddInt(int(t.kind))
	if t.variant != nil {
		t.variant.contributeToHash(h)
	}
}

// Accumulates type into hash as it is referenced from a field, parameter
// or array element: registered structs and classes contribute their kind
// and identifier only, they are hashed in full at their declaration.
func (t *Type) contributeRefToHash(h *HashGenerator) {
	if s, ok := t.AsStruct(); ok && s.registered {
		h.AddInt(int(t.kind))
		h.AddInt(s.id)
		return
	}
	t.ContributeToHash(h)
}

// Adds member of composite type to its size. Composite type is fixed only
// if every member is fixed.
func (t *Type) grow(member *Type) {
	if !t.fixed {
		return
	}
	if !member.fixed {
		t.size, t.fixed = 0, false
		return
	}
	t.size += member.size
}
