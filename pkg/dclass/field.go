/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import "golang.org/x/exp/slices"

// FieldID is the stable index of a field in the arena of its schema document.
type FieldID uint32

// # Field
//
// Field is a named member of struct or class. Field of class may be
// a molecular field, which aggregates previously declared atomic fields.
type Field struct {
	file         *File
	id           FieldID
	name         string
	owner        TypeID
	typ          TypeID
	defaultValue []byte
	hasDefault   bool
	keywords     []string
	molecular    *Molecular
}

// Returns field identifier, unique within schema document.
func (f *Field) ID() FieldID { return f.id }

func (f *Field) Name() string { return f.name }

// Returns the type of field. Type of molecular field is an anonymous
// struct of its atoms.
func (f *Field) Type() *Type { return f.file.Type(f.typ) }

// Returns the struct or class which owns the field.
func (f *Field) Owner() *Struct {
	s, _ := f.file.Type(f.owner).AsStruct()
	return s
}

func (f *Field) HasDefault() bool { return f.hasDefault }

// Returns encoded default value, or nil if field has no default.
func (f *Field) DefaultValue() []byte { return f.defaultValue }

// Returns keywords of field in declaration order.
func (f *Field) Keywords() []string { return slices.Clone(f.keywords) }

func (f *Field) HasKeyword(kw string) bool { return slices.Contains(f.keywords, kw) }

// Returns is field has exactly the same keywords as other, regardless of order.
func (f *Field) HasMatchingKeywords(other *Field) bool {
	if len(f.keywords) != len(other.keywords) {
		return false
	}
	for _, kw := range f.keywords {
		if !other.HasKeyword(kw) {
			return false
		}
	}
	return true
}

func (f *Field) AsMolecular() (*Molecular, bool) {
	return f.molecular, f.molecular != nil
}

func (f *Field) contributeToHash(h *HashGenerator) {
	h.AddString(f.name)
	if m, ok := f.AsMolecular(); ok {
		h.AddInt(1)
		m.contributeToHash(h)
	} else {
		h.AddInt(0)
		f.Type().contributeRefToHash(h)
	}
	h.AddInt(len(f.keywords))
	for _, kw := range f.keywords {
		h.AddString(kw)
	}
	contributeDefaultToHash(h, f.hasDefault, f.defaultValue)
}

// Folds presence flag, then default bytes as string.
func contributeDefaultToHash(h *HashGenerator, has bool, value []byte) {
	if !has {
		h.AddInt(0)
		return
	}
	h.AddInt(1)
	h.AddString(string(value))
}

// # Molecular
//
// Molecular is the view of molecular field.
type Molecular struct {
	field *Field
	atoms []FieldID
}

func (m *Molecular) AtomCount() int { return len(m.atoms) }

// Returns atom by index. Panics if index out of range.
func (m *Molecular) Atom(i int) *Field { return m.field.file.Field(m.atoms[i]) }

func (m *Molecular) Atoms() []*Field {
	ff := make([]*Field, len(m.atoms))
	for i, id := range m.atoms {
		ff[i] = m.field.file.Field(id)
	}
	return ff
}

func (m *Molecular) contributeToHash(h *HashGenerator) {
	h.AddInt(len(m.atoms))
	for _, id := range m.atoms {
		h.AddUint32(uint32(id))
	}
}

// # Parameter
//
// Parameter is a member of method. Parameter name is optional.
type Parameter struct {
	file         *File
	name         string
	typ          TypeID
	defaultValue []byte
	hasDefault   bool
}

func (p *Parameter) Name() string { return p.name }

func (p *Parameter) Type() *Type { return p.file.Type(p.typ) }

func (p *Parameter) HasDefault() bool { return p.hasDefault }

// Returns encoded default value, or nil if parameter has no default.
func (p *Parameter) DefaultValue() []byte { return p.defaultValue }

func (p *Parameter) contributeToHash(h *HashGenerator) {
	h.AddString(p.name)
	p.Type().contributeRefToHash(h)
	contributeDefaultToHash(h, p.hasDefault, p.defaultValue)
}
