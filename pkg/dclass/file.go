/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import "golang.org/x/exp/slices"

// Import is an import declaration of schema document.
//
// Symbols are written as in DC source: an alternative list "A/AI/OV" is
// kept as a single symbol. Empty symbols list imports the whole module.
type Import struct {
	Module  string
	Symbols []string
}

// Binding describes what a name of schema document is bound to.
type Binding uint8

const (
	Binding_none Binding = iota
	Binding_typedef
	Binding_struct
	Binding_class
)

func (b Binding) String() string {
	switch b {
	case Binding_typedef:
		return "typedef"
	case Binding_struct:
		return "struct"
	case Binding_class:
		return "class"
	}
	return "none"
}

// # File
//
// File is a schema document: imports, declared keywords, and the registry
// of named distributed types.
//
// Every type and field of the document lives in an arena and is addressed
// by TypeID or FieldID. File returned by Builder.Build is read-only and safe
// for concurrent readers.
type File struct {
	types      []*Type
	fields     []*Field
	imports    []Import
	keywords   []string
	keywordSet map[string]struct{}
	names      map[string]TypeID
	bindings   map[string]Binding
	decls      []TypeID
	classes    []TypeID
	hash       uint32
}

func newFile() *File {
	return &File{
		keywordSet: make(map[string]struct{}),
		names:      make(map[string]TypeID),
		bindings:   make(map[string]Binding),
	}
}

func (f *File) Imports() []Import { return slices.Clone(f.imports) }

// Returns declared keywords in declaration order.
func (f *File) Keywords() []string { return slices.Clone(f.keywords) }

func (f *File) HasKeyword(kw string) bool {
	_, ok := f.keywordSet[kw]
	return ok
}

// Returns type bound to name: typedef, struct or class.
func (f *File) TypeByName(name string) (*Type, bool) {
	id, ok := f.names[name]
	if !ok {
		return nil, false
	}
	return f.types[id], true
}

// Returns what name is bound to, or Binding_none.
func (f *File) BindingOf(name string) Binding { return f.bindings[name] }

// Returns the count of structs and classes.
func (f *File) NumStructs() int { return len(f.decls) }

// Returns struct or class by its identifier.
func (f *File) StructByID(id int) (*Type, bool) {
	if id < 0 || id >= len(f.decls) {
		return nil, false
	}
	return f.types[f.decls[id]], true
}

// Returns struct (or class) by name. Typedefs of structs are resolved.
func (f *File) StructByName(name string) (*Struct, bool) {
	t, ok := f.TypeByName(name)
	if !ok {
		return nil, false
	}
	return t.AsStruct()
}

func (f *File) ClassByName(name string) (*Class, bool) {
	t, ok := f.TypeByName(name)
	if !ok {
		return nil, false
	}
	return t.AsClass()
}

func (f *File) NumClasses() int { return len(f.classes) }

// Returns classes in declaration order.
func (f *File) Classes() []*Class {
	cc := make([]*Class, 0, len(f.classes))
	for _, id := range f.classes {
		c, _ := f.types[id].AsClass()
		cc = append(cc, c)
	}
	return cc
}

// Returns type by identifier. Panics if identifier is out of arena.
func (f *File) Type(id TypeID) *Type { return f.types[id] }

// Returns field by identifier. Panics if identifier is out of arena.
func (f *File) Field(id FieldID) *Field { return f.fields[id] }

// Returns the fingerprint of schema document.
func (f *File) Hash() uint32 { return f.hash }

// Accumulates the whole schema document into hash: declared keywords, then
// every struct and class in declaration order.
func (f *File) ContributeToHash(h *HashGenerator) {
	h.AddInt(len(f.keywords))
	for _, kw := range f.keywords {
		h.AddString(kw)
	}
	h.AddInt(len(f.decls))
	for _, id := range f.decls {
		f.types[id].ContributeToHash(h)
	}
}
