/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import "fmt"

// # Builder
//
// Builder constructs schema document. Types and fields are allocated in
// the arena of document first, then attached to their owners and
// registered by name.
//
// Build is the single publish point: after it any mutation panics.
type Builder struct {
	file  *File
	built bool
}

// Creates new builder of empty schema document.
func NewBuilder() *Builder {
	f := newFile()
	f.types = append(f.types, &Type{file: f, id: InvalidTypeID, kind: Kind_invalid})
	return &Builder{file: f}
}

func (b *Builder) mutate() {
	if b.built {
		panic(ErrBuilt)
	}
}

// Returns schema document under construction. Result should be used
// for queries only.
func (b *Builder) File() *File { return b.file }

// Returns the placeholder type for constructs which failed semantic checks.
func (b *Builder) InvalidType() *Type { return b.file.types[InvalidTypeID] }

func (b *Builder) newType(k Kind, size uint64, fixed bool, v typeVariant) *Type {
	t := &Type{
		file:    b.file,
		id:      TypeID(len(b.file.types)),
		kind:    k,
		size:    size,
		fixed:   fixed,
		variant: v,
	}
	b.file.types = append(b.file.types, t)
	return t
}

func (b *Builder) AddImport(module string, symbols ...string) {
	b.mutate()
	b.file.imports = append(b.file.imports, Import{Module: module, Symbols: symbols})
}

// Declares keyword. Returns false if keyword was already declared.
func (b *Builder) AddKeyword(kw string) bool {
	b.mutate()
	if b.file.HasKeyword(kw) {
		return false
	}
	b.file.keywordSet[kw] = struct{}{}
	b.file.keywords = append(b.file.keywords, kw)
	return true
}

// Creates new numeric type of specified kind without range, modulus and divisor.
//
// # Panics:
//   - if kind is not numeric
func (b *Builder) NewNumeric(k Kind) *Type {
	b.mutate()
	if !k.IsNumeric() {
		panic(ErrInvalid("numeric kind %v", k))
	}
	return b.newType(k, k.Width(), true, newNumeric(k))
}

// Creates a copy of numeric type, to be modified by range, modulus or divisor.
//
// Returns false if type is not numeric.
func (b *Builder) CloneNumeric(id TypeID) (*Type, bool) {
	b.mutate()
	src := b.file.Type(id)
	n, ok := src.AsNumeric()
	if !ok {
		return nil, false
	}
	return b.newType(src.kind, src.size, src.fixed, n.clone()), true
}

// Creates new array type of elements of specified type.
//
// If range is nil, array is unlimited variable array. Arrays of chars
// are strings, arrays of uint8 are blobs.
func (b *Builder) NewArray(elem TypeID, rng *ArrayRange) *Type {
	b.mutate()
	k, count, size, fixed := arrayKind(b.file.Type(elem), rng)
	a := &Array{file: b.file, elem: elem, count: count}
	if rng != nil {
		a.rng, a.limited = *rng, true
	}
	return b.newType(k, size, fixed, a)
}

// Creates new struct type. Empty name creates anonymous struct.
//
// Struct is not bound to its name until AddStruct.
func (b *Builder) NewStruct(name string) *Type {
	b.mutate()
	s := &Struct{}
	t := b.newType(Kind_struct, 0, true, s)
	*s = makeStruct(b.file, t.id, name)
	return t
}

// Creates new class type.
//
// Class is not bound to its name until AddClass.
func (b *Builder) NewClass(name string) *Type {
	b.mutate()
	c := &Class{}
	t := b.newType(Kind_struct, 0, true, c)
	c.Struct = makeStruct(b.file, t.id, name)
	return t
}

func (b *Builder) NewMethod() *Type {
	b.mutate()
	return b.newType(Kind_method, 0, true, &Method{file: b.file})
}

// Appends parameter to method.
//
// Parameter name is optional. Returns error if type is not a method,
// if parameter is of method type, or if parameter name is already used
// in method.
func (b *Builder) AddParameter(method TypeID, name string, typ TypeID) (*Parameter, error) {
	b.mutate()
	mt := b.file.Type(method)
	m, ok := mt.AsMethod()
	if !ok {
		return nil, ErrNotAMethod
	}
	pt := b.file.Type(typ)
	if pt.kind == Kind_method {
		return nil, ErrMethodParameter
	}
	if _, exists := m.ParameterByName(name); exists {
		return nil, fmt.Errorf("%w: «%s»", ErrParameterExists, name)
	}
	p := &Parameter{file: b.file, name: name, typ: typ}
	m.params = append(m.params, p)
	mt.grow(pt)
	return p, nil
}

func (b *Builder) SetParameterDefault(p *Parameter, value []byte) {
	b.mutate()
	p.defaultValue, p.hasDefault = value, true
}

// Allocates new atomic field of specified type. Field is not attached to
// any struct until AddField.
func (b *Builder) NewField(name string, typ TypeID) *Field {
	b.mutate()
	f := &Field{
		file: b.file,
		id:   FieldID(len(b.file.fields)),
		name: name,
		typ:  typ,
	}
	b.file.fields = append(b.file.fields, f)
	return f
}

// Allocates new molecular field. Atoms are added with AddAtom.
func (b *Builder) NewMolecular(name string) *Field {
	b.mutate()
	t := b.NewStruct("")
	f := b.NewField(name, t.id)
	f.molecular = &Molecular{field: f}
	return f
}

func (b *Builder) SetDefault(f *Field, value []byte) {
	b.mutate()
	f.defaultValue, f.hasDefault = value, true
}

// Adds keyword to field. Keyword should be declared in schema document.
// Repeated keywords are ignored.
func (b *Builder) AddFieldKeyword(f *Field, kw string) error {
	b.mutate()
	if !b.file.HasKeyword(kw) {
		return ErrKeywordNotDeclared(kw)
	}
	if !f.HasKeyword(kw) {
		f.keywords = append(f.keywords, kw)
	}
	return nil
}

// Adds atom to molecular field.
//
// Atom should not be molecular. All atoms should have the same keywords,
// the first atom defines the keywords of molecular field. Molecular field
// has default value if every atom has one.
func (b *Builder) AddAtom(molecular, atom *Field) error {
	b.mutate()
	m, ok := molecular.AsMolecular()
	if !ok {
		return ErrIncompatible("field «%s» is not molecular", molecular.name)
	}
	if _, nested := atom.AsMolecular(); nested {
		return ErrNestedMolecular
	}
	if len(m.atoms) == 0 {
		molecular.keywords = atom.Keywords()
	} else if !m.Atom(0).HasMatchingKeywords(atom) {
		return ErrKeywordsMismatch
	}

	m.atoms = append(m.atoms, atom.id)
	st := molecular.Type()
	s, _ := st.AsStruct()
	s.fields = append(s.fields, atom.id)
	s.byName[atom.name] = atom.id
	st.grow(atom.Type())

	molecular.defaultValue, molecular.hasDefault = nil, true
	for _, a := range m.Atoms() {
		if !a.hasDefault {
			molecular.defaultValue, molecular.hasDefault = nil, false
			break
		}
		molecular.defaultValue = append(molecular.defaultValue, a.defaultValue...)
	}
	return nil
}

// Attaches field to struct or class.
//
// Struct fields can not be molecular or of method type. Field of class
// named as the class is the constructor: it should be the first field
// and should not be molecular. Field names are unique within owner.
func (b *Builder) AddField(owner TypeID, f *Field) error {
	b.mutate()
	if f.name == "" {
		return ErrUnnamedField
	}
	ot := b.file.Type(owner)
	s, ok := ot.AsStruct()
	if !ok {
		return ErrNotAStruct
	}
	c, isClass := ot.AsClass()

	if !isClass {
		if _, mol := f.AsMolecular(); mol {
			return ErrMolecularInStruct
		}
		if f.Type().kind == Kind_method {
			return ErrMethodInStruct
		}
	} else if f.name == c.name {
		if _, mol := f.AsMolecular(); mol {
			return ErrMolecularConstructor
		}
		if len(c.fields) > 0 {
			return ErrConstructorNotFirst
		}
	}
	if _, exists := s.byName[f.name]; exists {
		return fmt.Errorf("%w: «%s» in %v", ErrFieldExists, f.name, ot)
	}

	f.owner = owner
	s.fields = append(s.fields, f.id)
	s.byName[f.name] = f.id
	if isClass {
		if f.name == c.name {
			c.hasConstructor = true
		}
		b.resizeClass(ot)
	} else {
		ot.grow(f.Type())
	}
	return nil
}

// Adds parent class to class. Parents are searched for inherited fields
// in reverse order of addition.
func (b *Builder) AddParent(class, parent TypeID) error {
	b.mutate()
	ct := b.file.Type(class)
	c, ok := ct.AsClass()
	if !ok {
		return ErrNotAClass
	}
	if _, ok := b.file.Type(parent).AsClass(); !ok {
		return ErrNotAClass
	}
	for _, p := range c.parents {
		if p == parent {
			return ErrParentExists
		}
	}
	c.parents = append(c.parents, parent)
	b.resizeClass(ct)
	return nil
}

// Binds name to type.
func (b *Builder) AddTypedef(name string, typ TypeID) error {
	b.mutate()
	return b.bind(name, typ, Binding_typedef)
}

// Registers named struct: binds its name and assigns struct identifier.
func (b *Builder) AddStruct(typ TypeID) error {
	b.mutate()
	t := b.file.Type(typ)
	if _, isClass := t.AsClass(); isClass {
		return ErrNotAStruct
	}
	s, ok := t.AsStruct()
	if !ok {
		return ErrNotAStruct
	}
	return b.register(s, Binding_struct)
}

// Registers class: binds its name and assigns struct identifier.
func (b *Builder) AddClass(typ TypeID) error {
	b.mutate()
	c, ok := b.file.Type(typ).AsClass()
	if !ok {
		return ErrNotAClass
	}
	if err := b.register(&c.Struct, Binding_class); err != nil {
		return err
	}
	b.file.classes = append(b.file.classes, typ)
	return nil
}

func (b *Builder) register(s *Struct, binding Binding) error {
	if s.name == "" {
		return ErrAnonymous
	}
	if s.registered {
		return ErrRegistered
	}
	if err := b.bind(s.name, s.typ, binding); err != nil {
		return err
	}
	s.id = len(b.file.decls)
	s.registered = true
	b.file.decls = append(b.file.decls, s.typ)
	return nil
}

func (b *Builder) bind(name string, typ TypeID, binding Binding) error {
	if exists := b.file.BindingOf(name); exists != Binding_none {
		return ErrNameBound(name, exists)
	}
	b.file.names[name] = typ
	b.file.bindings[name] = binding
	return nil
}

// Recalculates size of class from own and inherited fields. Constructor
// and molecular fields are not counted.
func (b *Builder) resizeClass(t *Type) {
	c, _ := t.AsClass()
	t.size, t.fixed = 0, true
	for _, f := range c.inheritedFields(false) {
		if _, mol := f.AsMolecular(); mol {
			continue
		}
		t.grow(f.Type())
	}
}

// Publishes schema document: computes its fingerprint and freezes builder.
//
// # Panics:
//   - if called twice
func (b *Builder) Build() *File {
	b.mutate()
	h := NewHashGenerator()
	b.file.ContributeToHash(h)
	b.file.hash = h.Hash()
	b.built = true
	return b.file
}
