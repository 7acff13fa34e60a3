/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcparser

import (
	"embed"
	"errors"
	"math"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/voedger/dclass/pkg/dclass"
)

//go:embed testdata/*.dc
var testdataFS embed.FS

func float32LE(vv ...float32) []byte {
	b := make([]byte, 0, 4*len(vv))
	for _, v := range vv {
		b = appendLittleEndian(b, uint64(math.Float32bits(v)), 4)
	}
	return b
}

func sizeTagged(data ...byte) []byte {
	b, _ := dclass.AppendSizeTag(nil, uint64(len(data)))
	return append(b, data...)
}

func TestParseFile_Avatar(t *testing.T) {
	require := require.New(t)

	file, res, err := ParseFile(testdataFS, "testdata/avatar.dc")
	require.NoError(err)
	require.NoError(res.Err())
	require.Zero(res.Warnings())

	t.Run("must be ok to read imports and keywords", func(t *testing.T) {
		require.Equal([]dclass.Import{
			{Module: "game.avatars"},
			{Module: "game.shared", Symbols: []string{"Vec3", "Avatar/AI/OV"}},
		}, file.Imports())
		require.Equal([]string{"ram", "db", "broadcast", "clsend", "airecv"}, file.Keywords())
	})

	t.Run("must be ok to read declarations", func(t *testing.T) {
		require.Equal(3, file.NumStructs())
		require.Equal(2, file.NumClasses())

		vec, ok := file.StructByName("Vec3")
		require.True(ok)
		require.Equal(0, vec.ID())
		require.Equal(3, vec.FieldCount())
		require.True(vec.Type().HasFixedSize())
		require.EqualValues(12, vec.Type().Size())

		require.Equal(dclass.Binding_typedef, file.BindingOf("Speed"))
		require.Equal(dclass.Binding_struct, file.BindingOf("Vec3"))
		require.Equal(dclass.Binding_class, file.BindingOf("Avatar"))
		require.Equal(dclass.Binding_none, file.BindingOf("Unknown"))
	})

	avatar, ok := file.ClassByName("Avatar")
	require.True(ok)

	t.Run("must be ok to read class", func(t *testing.T) {
		require.Equal(2, avatar.ID())
		require.Equal(1, avatar.ParentCount())
		require.Equal("Entity", avatar.Parents()[0].Name())
		require.False(avatar.Type().HasFixedSize())

		ctor, ok := avatar.Constructor()
		require.True(ok)
		m, ok := ctor.Type().AsMethod()
		require.True(ok)
		require.Equal(2, m.ParameterCount())
		require.Equal(dclass.Kind_varstring, m.Parameter(0).Type().Kind())
		require.Equal(dclass.Kind_uint32, m.Parameter(1).Type().Kind())

		names := []string{}
		for _, f := range avatar.InheritedFields() {
			names = append(names, f.Name())
		}
		require.Equal([]string{"id", "Avatar", "name", "hp", "heading", "speed", "pos", "path", "tag", "key", "setPos", "nameHp"}, names)
	})

	field := func(name string) *dclass.Field {
		f, ok := avatar.InheritedField(name)
		require.True(ok, name)
		return f
	}

	t.Run("must be ok to read numeric modifiers", func(t *testing.T) {

		hp, ok := field("hp").Type().AsNumeric()
		require.True(ok)
		rng, limited := hp.Range()
		require.True(limited)
		require.Equal("0-200", rng.String())
		require.False(hp.InRange(dclass.IntNumber(-1)))
		require.True(hp.InRange(dclass.UintNumber(200)))

		heading, ok := field("heading").Type().AsNumeric()
		require.True(ok)
		mod, ok := heading.Modulus()
		require.True(ok)
		require.Equal(dclass.UintNumber(360), mod)
		require.EqualValues(10, heading.Divisor())

		speed, ok := field("speed").Type().AsNumeric()
		require.True(ok)
		require.EqualValues(10, speed.Divisor())
	})

	t.Run("must be ok to compile defaults", func(t *testing.T) {

		tests := []struct {
			field string
			want  []byte
		}{
			{"name", sizeTagged([]byte("nobody")...)},
			{"hp", []byte{100, 0}},
			{"speed", []byte{50, 0}},
			{"pos", float32LE(1, 2, 3)},
			{"tag", []byte("abcd")},
			{"key", sizeTagged(0xde, 0xad, 0xbe, 0xef)},
			{"nameHp", append(sizeTagged([]byte("nobody")...), 100, 0)},
		}
		for _, tt := range tests {
			f := field(tt.field)
			require.True(f.HasDefault(), tt.field)
			require.Equal(tt.want, f.DefaultValue(), tt.field)
		}

		require.False(field("heading").HasDefault())
		require.False(field("path").HasDefault())
	})

	t.Run("must be ok to read keywords of fields", func(t *testing.T) {
		require.Equal([]string{"ram", "db"}, field("name").Keywords())
		require.True(field("id").HasKeyword("db"))
		require.Equal([]string{"broadcast", "clsend"}, field("setPos").Keywords())

		nameHp := field("nameHp")
		require.Equal([]string{"ram", "db"}, nameHp.Keywords())
		m, ok := nameHp.AsMolecular()
		require.True(ok)
		require.Equal(2, m.AtomCount())
		require.Equal("hp", m.Atom(1).Name())
	})

	t.Run("must be ok to read method parameters", func(t *testing.T) {
		m, ok := field("setPos").Type().AsMethod()
		require.True(ok)
		x, ok := m.ParameterByName("x")
		require.True(ok)
		require.False(x.HasDefault())
		y, ok := m.ParameterByName("y")
		require.True(ok)
		require.Equal([]byte{5, 0}, y.DefaultValue())
	})
}

func TestParseFile_Errors(t *testing.T) {
	require := require.New(t)

	_, _, err := ParseFile(testdataFS, "testdata/unknown.dc")
	require.Error(err)

	file, res, err := ParseFile(testdataFS, "testdata/errors.dc")
	require.NoError(err)
	require.NotNil(file)

	type diag struct {
		sev  Severity
		line int
		err  error
	}
	want := []diag{
		{Severity_warning, 2, ErrRedeclared},
		{Severity_error, 5, ErrFieldRejected},
		{Severity_warning, 6, ErrFieldRejected},
		{Severity_error, 10, ErrSyntax},
		{Severity_error, 13, ErrWrongKind},
		{Severity_error, 13, ErrUndeclared},
		{Severity_error, 15, ErrRedeclared},
		{Severity_error, 16, ErrFieldRejected},
		{Severity_error, 17, ErrUndeclared},
		{Severity_error, 18, ErrUndeclared},
		{Severity_error, 19, ErrUndeclaredKeyword},
		{Severity_error, 22, ErrRedeclared},
	}

	diags := res.Diagnostics()
	require.Len(diags, len(want))
	for i, d := range diags {
		require.Equal(want[i].sev, d.Severity, d.String())
		require.Equal(want[i].line, d.Line(), d.String())
		require.ErrorIs(d.Err, want[i].err, d.String())
		require.Equal("testdata/errors.dc", d.Pos.Filename)
	}
	require.Equal(10, res.Errors())
	require.Equal(2, res.Warnings())

	t.Run("must be ok to read messages", func(t *testing.T) {
		require.Equal("Keyword 'db' was already declared.", diags[0].Message())
		require.Equal("class cannot inherit from struct type 'Vec3'.", diags[4].Message())
		require.Equal("'class Missing' has not been declared.", diags[5].Message())
		require.Equal("Cannot add field 'hp', a field with that name already exists in 'class A'.", diags[6].Message())
		require.Equal("The constructor must be the first field in the class.", diags[7].Message())
		require.Equal("Cannot add 'struct A' to file because a class was already declared with that name.", diags[11].Message())
		require.Equal("testdata/errors.dc:2:9: warning: Keyword 'db' was already declared.", diags[0].String())
	})

	t.Run("must be ok to join errors", func(t *testing.T) {
		err := res.Err()
		require.ErrorIs(err, ErrSyntax)
		require.ErrorIs(err, ErrUndeclaredKeyword)
		require.NotErrorIs(err, ErrNesting)
		require.Contains(err.Error(), "testdata/errors.dc:10:")
	})

	t.Run("must be ok to keep valid declarations", func(t *testing.T) {
		_, ok := file.ClassByName("Broken")
		require.False(ok)

		a, ok := file.ClassByName("A")
		require.True(ok)
		_, ok = a.Constructor()
		require.False(ok)
		pos, ok := a.FieldByName("pos")
		require.True(ok)
		require.True(pos.Type().IsInvalid())
	})
}

func TestParseString(t *testing.T) {
	t.Run("must be ok to parse empty source", func(t *testing.T) {
		require := require.New(t)
		file, res := ParseString("empty.dc", "  // nothing here\n")
		require.NoError(res.Err())
		require.Zero(file.NumStructs())
		require.Equal(uint32(0x0d09de38), file.Hash())
	})

	t.Run("must be ok to recover after syntax error", func(t *testing.T) {
		require := require.New(t)
		file, res := ParseString("test.dc", `
class Bad { x: ; }
struct S { x: int8; };
typedef int8 T
`)
		require.Equal(2, res.Errors())
		for _, d := range res.Diagnostics() {
			require.ErrorIs(d.Err, ErrSyntax)
		}
		require.Equal(2, res.Diagnostics()[0].Line())
		require.Equal(4, res.Diagnostics()[1].Line())

		_, ok := file.StructByName("S")
		require.True(ok)
	})

	t.Run("must be ok to report unexpected characters", func(t *testing.T) {
		require := require.New(t)
		file, res := ParseString("test.dc", "struct S { x: int8 @; }")
		require.Equal(1, res.Errors())
		d := res.Diagnostics()[0]
		require.ErrorIs(d.Err, ErrLexical)
		require.Equal(20, d.Pos.Column)

		s, ok := file.StructByName("S")
		require.True(ok)
		require.Equal(1, s.FieldCount())
	})

	t.Run("must be ok to parse star import", func(t *testing.T) {
		require := require.New(t)
		file, res := ParseString("test.dc", "from views import *;")
		require.NoError(res.Err())
		require.Equal([]dclass.Import{{Module: "views"}}, file.Imports())
	})

	t.Run("must be ok to accept dclass keyword", func(t *testing.T) {
		require := require.New(t)
		file, res := ParseString("test.dc", "dclass D { x: int8; }")
		require.NoError(res.Err())
		_, ok := file.ClassByName("D")
		require.True(ok)
	})

	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"undeclared keyword", "class C { x: int8 db; }", ErrUndeclaredKeyword},
		{"undeclared type", "struct S { v: Vec; }", ErrUndeclared},
		{"undeclared parent", "class C : P { }", ErrUndeclared},
		{"duplicate parent", "class P { } class C : P, P { }", ErrRedeclared},
		{"molecular in struct", "struct S { x: int8; m := x; }", ErrFieldRejected},
		{"method in struct", "struct S { m(int8); }", ErrFieldRejected},
		{"constructor in struct", "struct S { S(int8); }", ErrFieldRejected},
		{"molecular constructor", "class C { x: int8; C := x; }", ErrFieldRejected},
		{"nested molecular", "class C { x: int8; m := x; n := m; }", ErrFieldRejected},
		{"mismatched atom keywords", "keyword db; class C { x: int8 db; y: int8; m := x, y; }", ErrFieldRejected},
		{"duplicate parameter", "class C { m(a: int8, a: int8); }", ErrRedeclared},
		{"typedef redeclared", "typedef int8 T; typedef int16 T;", ErrRedeclared},
		{"invalid range", "typedef int8(5-1) T;", ErrInvalidNumeric},
		{"invalid modulus", "typedef uint8 %300 T;", ErrInvalidNumeric},
		{"invalid divisor", "typedef uint8 /0 T;", ErrInvalidNumeric},
		{"invalid array range", "typedef int8[5-1] T;", ErrInvalidNumeric},
		{"modifier on string", "typedef string %5 T;", ErrWrongKind},
		{"modifier on struct", "struct S { } typedef S(1-2) T;", ErrWrongKind},
		{"default out of range", "typedef uint8(0-10) T; struct S { x: T = 15; }", ErrOutOfRange},
		{"default of wrong kind", "struct S { x: int8 = \"a\"; }", ErrWrongKind},
	}
	for _, tt := range tests {
		t.Run("must be error on "+tt.name, func(t *testing.T) {
			require := require.New(t)
			_, res := ParseString("test.dc", tt.src)
			require.Equal(1, res.Errors(), res.Err())
			require.ErrorIs(res.Err(), tt.err)
		})
	}
}

func TestParseString_Defaults(t *testing.T) {
	t.Run("must be ok to keep out of range default", func(t *testing.T) {
		require := require.New(t)
		file, res := ParseString("test.dc", "struct S { x: uint8(0-10) = 15; }")
		require.Equal(1, res.Errors())
		require.ErrorIs(res.Err(), ErrOutOfRange)

		s, _ := file.StructByName("S")
		require.Equal([]byte{15}, s.Field(0).DefaultValue())
	})

	t.Run("must be ok to accept struct field named as struct", func(t *testing.T) {
		require := require.New(t)
		file, res := ParseString("test.dc", "struct S { S: int8 = -1; }")
		require.NoError(res.Err())
		require.Equal(1, res.Warnings())

		s, _ := file.StructByName("S")
		require.Equal([]byte{0xff}, s.Field(0).DefaultValue())
	})

	t.Run("must be ok to skip molecular default if any atom has no default", func(t *testing.T) {
		require := require.New(t)
		file, res := ParseString("test.dc", "class C { x: int8 = 1; y: int8; m := x, y; }")
		require.NoError(res.Err())

		c, _ := file.ClassByName("C")
		m, _ := c.FieldByName("m")
		require.False(m.HasDefault())
	})

	t.Run("must be ok to compile method default", func(t *testing.T) {
		require := require.New(t)
		file, res := ParseString("test.dc", "class C { m(int8, uint16) = (1, 2); }")
		require.NoError(res.Err())

		c, _ := file.ClassByName("C")
		m, _ := c.FieldByName("m")
		require.Equal([]byte{1, 2, 0}, m.DefaultValue())
	})
}

func TestParseFiles(t *testing.T) {
	fs := fstest.MapFS{
		"base.dc":    {Data: []byte("keyword db;\nclass Base { id: uint32 db; }\n")},
		"derived.dc": {Data: []byte("class Derived : Base {\n  name: string db;\n  hp: Missing;\n}\n")},
	}

	t.Run("must be ok to resolve declarations of previous files", func(t *testing.T) {
		require := require.New(t)
		file, res, err := ParseFiles(fs, "base.dc", "derived.dc")
		require.NoError(err)
		require.Equal(1, res.Errors())

		d := res.Diagnostics()[0]
		require.Equal("derived.dc", d.Pos.Filename)
		require.Equal(3, d.Line())

		derived, ok := file.ClassByName("Derived")
		require.True(ok)
		_, ok = derived.InheritedField("id")
		require.True(ok)
	})

	t.Run("must be error on unknown file", func(t *testing.T) {
		require := require.New(t)
		_, _, err := ParseFiles(fs, "base.dc", "missing.dc")
		require.Error(err)
	})
}

func TestHash(t *testing.T) {
	hash := func(src string) uint32 {
		file, res := ParseString("test.dc", src)
		require.NoError(t, res.Err())
		return file.Hash()
	}

	t.Run("must be ok to get stable hash", func(t *testing.T) {
		require := require.New(t)
		src, err := testdataFS.ReadFile("testdata/avatar.dc")
		require.NoError(err)
		require.Equal(hash(string(src)), hash(string(src)))
	})

	t.Run("must be ok to ignore comments, typedefs and imports", func(t *testing.T) {
		require := require.New(t)
		require.Equal(
			hash("class A { hp: uint8(0-10); }"),
			hash("import x; typedef uint8(0-10) HP;\n// hit points\nclass A { hp: HP; }"))
	})

	tests := []struct {
		name string
		a, b string
	}{
		{"range", "class A { hp: uint8(0-10); }", "class A { hp: uint8(0-20); }"},
		{"default", "class A { hp: uint8 = 1; }", "class A { hp: uint8 = 2; }"},
		{"field name", "class A { hp: uint8; }", "class A { mp: uint8; }"},
		{"keywords", "keyword a b; class A { hp: uint8 a; }", "keyword a b; class A { hp: uint8 b; }"},
		{"declaration order", "struct A { } struct B { }", "struct B { } struct A { }"},
		{"struct or class", "struct A { x: int8; }", "class A { x: int8; }"},
		{"parameter name", "class A { m(x: int8); }", "class A { m(y: int8); }"},
	}
	for _, tt := range tests {
		t.Run("must be ok to change hash on "+tt.name, func(t *testing.T) {
			require.NotEqual(t, hash(tt.a), hash(tt.b))
		})
	}
}

func TestDiagnostic(t *testing.T) {
	require := require.New(t)

	d := Diagnostic{Severity: Severity_error, Err: errors.New("plain")}
	require.Equal("plain", d.Message())
	require.Empty(Diagnostic{}.Message())
	require.Equal("error", Severity_error.String())
	require.Equal("warning", Severity_warning.String())
}
