/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

// # Struct
//
// Struct is the view of struct distributed type: named ordered list of fields.
//
// Anonymous structs hold the atoms of molecular fields.
type Struct struct {
	file       *File
	typ        TypeID
	name       string
	id         int
	registered bool
	fields     []FieldID
	byName     map[string]FieldID
}

func makeStruct(f *File, typ TypeID, name string) Struct {
	return Struct{
		file:   f,
		typ:    typ,
		name:   name,
		byName: make(map[string]FieldID),
	}
}

func (s *Struct) Name() string { return s.name }

// Returns struct identifier: index of struct or class in declaration order.
//
// Returns -1 for structs which are not registered in schema document.
func (s *Struct) ID() int {
	if !s.registered {
		return -1
	}
	return s.id
}

// Returns the type of struct.
func (s *Struct) Type() *Type { return s.file.Type(s.typ) }

func (s *Struct) FieldCount() int { return len(s.fields) }

// Returns field by index in declaration order. Panics if index out of range.
func (s *Struct) Field(i int) *Field { return s.file.Field(s.fields[i]) }

// Returns fields in declaration order.
func (s *Struct) Fields() []*Field {
	ff := make([]*Field, len(s.fields))
	for i, id := range s.fields {
		ff[i] = s.file.Field(id)
	}
	return ff
}

// Returns field by name and true, or nil and false if not found.
//
// Inherited fields are not searched, see Class.InheritedField.
func (s *Struct) FieldByName(name string) (*Field, bool) {
	id, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return s.file.Field(id), true
}

func (s *Struct) contributeToHash(h *HashGenerator) {
	h.AddString(s.name)
	h.AddInt(len(s.fields))
	for _, id := range s.fields {
		s.file.Field(id).contributeToHash(h)
	}
}

// # Class
//
// Class is the view of class distributed type. Class extends struct with
// parents (multiple inheritance) and an optional constructor field.
type Class struct {
	Struct
	parents        []TypeID
	hasConstructor bool
}

// Returns parent classes in declaration order.
func (c *Class) Parents() []*Class {
	pp := make([]*Class, 0, len(c.parents))
	for _, id := range c.parents {
		if p, ok := c.file.Type(id).AsClass(); ok {
			pp = append(pp, p)
		}
	}
	return pp
}

func (c *Class) ParentCount() int { return len(c.parents) }

// Returns constructor field and true, or nil and false if class has no constructor.
func (c *Class) Constructor() (*Field, bool) {
	if !c.hasConstructor {
		return nil, false
	}
	return c.Field(0), true
}

// Returns own and inherited fields: fields of parents depth-first in parent
// order, then own fields. A nearer declaration of the same name shadows
// the inherited one. Constructors of parents are not inherited.
func (c *Class) InheritedFields() []*Field {
	return c.inheritedFields(true)
}

func (c *Class) inheritedFields(withConstructor bool) []*Field {
	result := make([]*Field, 0, len(c.fields))
	index := make(map[string]int)
	put := func(f *Field) {
		if i, ok := index[f.name]; ok {
			result[i] = f
			return
		}
		index[f.name] = len(result)
		result = append(result, f)
	}
	for _, p := range c.Parents() {
		for _, f := range p.inheritedFields(false) {
			put(f)
		}
	}
	for i, id := range c.fields {
		if i == 0 && c.hasConstructor && !withConstructor {
			continue
		}
		put(c.file.Field(id))
	}
	return result
}

// Returns own or inherited field by name.
func (c *Class) InheritedField(name string) (*Field, bool) {
	if f, ok := c.FieldByName(name); ok {
		return f, true
	}
	for i := len(c.parents) - 1; i >= 0; i-- {
		if p, ok := c.file.Type(c.parents[i]).AsClass(); ok {
			if f, ok := p.InheritedField(name); ok && f.name != p.name {
				return f, true
			}
		}
	}
	return nil, false
}

func (c *Class) contributeToHash(h *HashGenerator) {
	c.Struct.contributeToHash(h)
	h.AddInt(len(c.parents))
	for _, id := range c.parents {
		if p, ok := c.file.Type(id).AsStruct(); ok {
			h.AddInt(p.id)
		}
	}
	if c.hasConstructor {
		h.AddInt(1)
	} else {
		h.AddInt(0)
	}
}

// # Method
//
// Method is the view of method distributed type: ordered list of parameters.
type Method struct {
	file   *File
	params []*Parameter
}

func (m *Method) ParameterCount() int { return len(m.params) }

// Returns parameter by index. Panics if index out of range.
func (m *Method) Parameter(i int) *Parameter { return m.params[i] }

func (m *Method) Parameters() []*Parameter {
	pp := make([]*Parameter, len(m.params))
	copy(pp, m.params)
	return pp
}

// Returns parameter by name and true, or nil and false if not found.
func (m *Method) ParameterByName(name string) (*Parameter, bool) {
	for _, p := range m.params {
		if p.name != "" && p.name == name {
			return p, true
		}
	}
	return nil, false
}

func (m *Method) contributeToHash(h *HashGenerator) {
	h.AddInt(len(m.params))
	for _, p := range m.params {
		p.contributeToHash(h)
	}
}
