/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcparser

import (
	"errors"
	"math"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/voedger/dclass/pkg/dclass"
)

// parseContext holds the whole transient state of single parse: schema
// document builder, struct or class under construction, value compiler
// stack and diagnostics. Two parses never share context.
type parseContext struct {
	b        *dclass.Builder
	file     *dclass.File
	res      *Result
	current  *dclass.Type
	numerics map[dclass.Kind]dclass.TypeID
	values   valueStack
}

func newParseContext(res *Result) *parseContext {
	b := dclass.NewBuilder()
	return &parseContext{
		b:        b,
		file:     b.File(),
		res:      res,
		numerics: make(map[dclass.Kind]dclass.TypeID),
	}
}

// Creates context to compile values against types of built document.
func newValueContext(file *dclass.File, res *Result) *parseContext {
	return &parseContext{file: file, res: res}
}

func (c *parseContext) errorAt(pos lexer.Position, err error) { c.res.errorAt(pos, err) }

func (c *parseContext) statement(s *statementAST) {
	switch {
	case s.Import != nil:
		c.b.AddImport(s.Import.Module.String())
	case s.From != nil:
		c.from(s.From)
	case s.Typedef != nil:
		c.typedef(s.Typedef)
	case s.Keyword != nil:
		c.keywords(s.Keyword)
	case s.Struct != nil:
		c.structDecl(s.Struct)
	case s.Class != nil:
		c.classDecl(s.Class)
	}
}

func (c *parseContext) from(s *fromStmt) {
	var symbols []string
	for _, sym := range s.Symbols {
		symbols = append(symbols, sym.String())
	}
	c.b.AddImport(s.Module.String(), symbols...)
}

func (c *parseContext) typedef(s *typedefStmt) {
	t := c.applyDims(c.resolveType(&s.Type), s.Dims)
	if err := c.b.AddTypedef(s.Name, t.ID()); err != nil {
		c.errorAt(s.Pos, ErrNameRedeclared(dclass.Binding_typedef, s.Name, c.file.BindingOf(s.Name)))
	}
}

func (c *parseContext) keywords(s *keywordStmt) {
	for _, kw := range s.Names {
		if !c.b.AddKeyword(kw.Name) {
			c.res.warningAt(kw.Pos, ErrKeywordRedeclared(kw.Name))
		}
	}
}

func (c *parseContext) structDecl(s *structStmt) {
	t := c.b.NewStruct(s.Name)
	c.fields(t, s.Fields)
	if err := c.b.AddStruct(t.ID()); err != nil {
		c.errorAt(s.Pos, ErrNameRedeclared(dclass.Binding_struct, s.Name, c.file.BindingOf(s.Name)))
	}
}

func (c *parseContext) classDecl(s *classStmt) {
	t := c.b.NewClass(s.Name)
	for _, p := range s.Parents {
		pt, ok := c.file.TypeByName(p.Name)
		if !ok {
			c.errorAt(p.Pos, ErrClassNotDeclared(p.Name))
			continue
		}
		if _, isClass := pt.AsClass(); !isClass {
			c.errorAt(p.Pos, ErrInheritNonClass(c.file.BindingOf(p.Name), p.Name))
			continue
		}
		if err := c.b.AddParent(t.ID(), pt.ID()); err != nil {
			c.errorAt(p.Pos, ErrDuplicateParent(p.Name, s.Name))
		}
	}
	c.fields(t, s.Fields)
	if err := c.b.AddClass(t.ID()); err != nil {
		c.errorAt(s.Pos, ErrNameRedeclared(dclass.Binding_class, s.Name, c.file.BindingOf(s.Name)))
	}
}

func (c *parseContext) fields(owner *dclass.Type, fields []*fieldDecl) {
	c.current = owner
	defer func() { c.current = nil }()

	for _, f := range fields {
		switch {
		case f.Molecular != nil:
			c.molecularField(f)
		case f.Method != nil:
			c.methodField(f)
		case f.Typed != nil:
			c.typedField(f)
		}
	}
}

func (c *parseContext) typedField(decl *fieldDecl) {
	t := c.resolveType(&decl.Typed.Type)
	if t.Kind() == dclass.Kind_method {
		c.errorAt(decl.Typed.Type.Pos, ErrMethodType)
		t = c.b.InvalidType()
	}
	f := c.b.NewField(decl.Name, t.ID())
	if decl.Typed.Default != nil && !t.IsInvalid() {
		c.b.SetDefault(f, c.compileValue(t, decl.Typed.Default))
	}
	c.fieldKeywords(f, decl.Typed.Keywords)
	c.addField(decl, f)
}

func (c *parseContext) methodField(decl *fieldDecl) {
	m := c.b.NewMethod()
	for _, p := range decl.Method.Params {
		pt := c.resolveType(&p.Type)
		param, err := c.b.AddParameter(m.ID(), p.Name, pt.ID())
		if err != nil {
			if errors.Is(err, dclass.ErrParameterExists) {
				c.errorAt(p.Pos, ErrParameterExists(p.Name))
			} else {
				c.errorAt(p.Pos, ErrMethodType)
			}
			continue
		}
		if p.Default != nil && !pt.IsInvalid() {
			c.b.SetParameterDefault(param, c.compileValue(pt, p.Default))
		}
	}
	f := c.b.NewField(decl.Name, m.ID())
	if decl.Method.Default != nil {
		c.b.SetDefault(f, c.compileValue(m, decl.Method.Default))
	}
	c.fieldKeywords(f, decl.Method.Keywords)
	c.addField(decl, f)
}

func (c *parseContext) molecularField(decl *fieldDecl) {
	class, isClass := c.current.AsClass()
	if !isClass {
		c.errorAt(decl.Pos, ErrMolecularInStruct(decl.Name))
		return
	}
	f := c.b.NewMolecular(decl.Name)
	m, _ := f.AsMolecular()
	for _, a := range decl.Molecular.Atoms {
		atom, ok := class.InheritedField(a.Name)
		if !ok {
			c.errorAt(a.Pos, ErrAtomNotDefined(a.Name))
			continue
		}
		err := c.b.AddAtom(f, atom)
		switch {
		case err == nil:
		case errors.Is(err, dclass.ErrNestedMolecular):
			c.errorAt(a.Pos, ErrNestedMolecular(a.Name))
		case errors.Is(err, dclass.ErrKeywordsMismatch):
			c.errorAt(a.Pos, ErrKeywordsMismatch(m.Atom(0).Name(), a.Name))
		default:
			c.errorAt(a.Pos, dclass.EnrichError(ErrFieldRejected, err.Error()))
		}
	}
	c.addField(decl, f)
}

func (c *parseContext) fieldKeywords(f *dclass.Field, keywords []identRef) {
	if len(keywords) == 0 {
		return
	}
	if _, isClass := c.current.AsClass(); !isClass {
		c.errorAt(keywords[0].Pos, ErrKeywordInStruct(f.Name()))
		return
	}
	for _, kw := range keywords {
		if err := c.b.AddFieldKeyword(f, kw.Name); err != nil {
			c.errorAt(kw.Pos, ErrKeywordNotDeclared(kw.Name))
		}
	}
}

// Attaches field to struct or class under construction and reports
// rejected fields.
func (c *parseContext) addField(decl *fieldDecl, f *dclass.Field) {
	s, _ := c.current.AsStruct()
	_, isClass := c.current.AsClass()
	namedAsOwner := f.Name() == s.Name()

	if !isClass && namedAsOwner && f.Type().Kind() != dclass.Kind_method {
		c.res.warningAt(decl.Pos, ErrFieldNamedAsStruct(f.Name()))
	}

	err := c.b.AddField(c.current.ID(), f)
	switch {
	case err == nil:
	case errors.Is(err, dclass.ErrFieldExists):
		c.errorAt(decl.Pos, ErrFieldExists(f.Name(), c.current.String()))
	case errors.Is(err, dclass.ErrConstructorNotFirst):
		c.errorAt(decl.Pos, ErrConstructorNotFirst)
	case errors.Is(err, dclass.ErrMolecularConstructor):
		c.errorAt(decl.Pos, ErrMolecularConstructor)
	case errors.Is(err, dclass.ErrMethodInStruct):
		if namedAsOwner {
			c.errorAt(decl.Pos, ErrConstructorInStruct)
		} else {
			c.errorAt(decl.Pos, ErrMethodInStruct)
		}
	case errors.Is(err, dclass.ErrMolecularInStruct):
		c.errorAt(decl.Pos, ErrMolecularInStruct(f.Name()))
	default:
		c.errorAt(decl.Pos, dclass.EnrichError(ErrFieldRejected, err.Error()))
	}
}

// Returns shared numeric type of kind without range, modulus and divisor.
func (c *parseContext) numeric(k dclass.Kind) *dclass.Type {
	if id, ok := c.numerics[k]; ok {
		return c.file.Type(id)
	}
	t := c.b.NewNumeric(k)
	c.numerics[k] = t.ID()
	return t
}

// Resolves type expression. Returns invalid type if expression can not
// be resolved.
func (c *parseContext) resolveType(te *typeExpr) *dclass.Type {
	var t *dclass.Type
	switch {
	case te.Builtin != "":
		if elem, ok := builtinArrays[te.Builtin]; ok {
			t = c.builtinArray(te, elem)
		} else {
			t = c.modified(te, c.numeric(builtinKinds[te.Builtin]))
		}
	default:
		named, ok := c.file.TypeByName(te.Named)
		if !ok {
			c.errorAt(te.Pos, ErrTypeNotDeclared(te.Named))
			return c.b.InvalidType()
		}
		t = c.modified(te, named)
	}
	return c.applyDims(t, te.Dims)
}

func (c *parseContext) builtinArray(te *typeExpr, elem dclass.Kind) *dclass.Type {
	var rng *dclass.ArrayRange
	if te.Range != nil {
		rng = c.arrayRange(te.Range)
	}
	t := c.b.NewArray(c.numeric(elem).ID(), rng)
	if len(te.Mods) > 0 {
		c.errorAt(te.Mods[0].Pos, ErrModifierOnNonNumeric(t))
	}
	return t
}

// Returns copy of numeric type with range, modulus and divisor from
// type expression applied, or base type itself if there are no modifiers.
func (c *parseContext) modified(te *typeExpr, base *dclass.Type) *dclass.Type {
	if (te.Range == nil && len(te.Mods) == 0) || base.IsInvalid() {
		return base
	}
	t, ok := c.b.CloneNumeric(base.ID())
	if !ok {
		c.errorAt(te.Pos, ErrModifierOnNonNumeric(base))
		return base
	}
	n, _ := t.AsNumeric()

	if te.Range != nil {
		r, err := te.Range.numeric()
		switch {
		case err != nil:
			c.errorAt(te.Range.Pos, err)
		case !n.SetRange(r):
			c.errorAt(te.Range.Pos, ErrInvalidRange)
		}
	}

	for _, mod := range te.Mods {
		v, err := mod.Value.number()
		if err != nil {
			c.errorAt(mod.Pos, err)
			continue
		}
		switch mod.Op {
		case "%":
			if !n.SetModulus(v) {
				c.errorAt(mod.Pos, ErrInvalidModulus)
			}
		case "/":
			d, ok := v.AsUint64()
			if !ok || d > math.MaxUint32 || !n.SetDivisor(uint32(d)) {
				c.errorAt(mod.Pos, ErrInvalidDivisor)
			}
		}
	}
	return t
}

// Returns array range, or nil if range is not valid.
func (c *parseContext) arrayRange(r *rangeExpr) *dclass.ArrayRange {
	min, err := r.Min.number()
	if err != nil {
		c.errorAt(r.Pos, err)
		return nil
	}
	max := min
	if r.Max != nil {
		if max, err = r.Max.number(); err != nil {
			c.errorAt(r.Pos, err)
			return nil
		}
	}
	lo, okLo := min.AsUint64()
	hi, okHi := max.AsUint64()
	if !okLo || !okHi || hi < lo {
		c.errorAt(r.Pos, ErrInvalidArrayRange)
		return nil
	}
	return &dclass.ArrayRange{Min: lo, Max: hi}
}

// Wraps type into arrays, innermost dimension first.
func (c *parseContext) applyDims(t *dclass.Type, dims []arrayDim) *dclass.Type {
	for _, d := range dims {
		if t.IsInvalid() {
			return t
		}
		if t.Kind() == dclass.Kind_method {
			c.errorAt(d.Pos, ErrMethodType)
			return c.b.InvalidType()
		}
		var rng *dclass.ArrayRange
		if d.Range != nil {
			rng = c.arrayRange(d.Range)
		}
		t = c.b.NewArray(t.ID(), rng)
	}
	return t
}
