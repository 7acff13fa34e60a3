/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashGenerator(t *testing.T) {
	require := require.New(t)

	t.Run("must be ok to hash empty document", func(t *testing.T) {
		require.Equal(uint32(0x0d09de38), NewBuilder().Build().Hash())
	})

	t.Run("must be ok to fold ints and strings", func(t *testing.T) {
		h := NewHashGenerator()
		h.AddInt(1)
		h.AddString("db")
		require.Equal(uint32(0x1a81e74f), h.Hash())
	})

	t.Run("must be ok to fold 64-bit values low word first", func(t *testing.T) {
		h1 := NewHashGenerator()
		h1.AddUint64(0x0000000200000001)
		h2 := NewHashGenerator()
		h2.AddUint32(1)
		h2.AddUint32(2)
		require.Equal(h2.Hash(), h1.Hash())
	})
}

// Builds small schema with a ranged field. Range is nil for unlimited field.
func buildRanged(keywords []string, rng *NumericRange, divisor uint32) *File {
	b := NewBuilder()
	for _, kw := range keywords {
		b.AddKeyword(kw)
	}
	t := b.NewNumeric(Kind_uint8)
	n, _ := t.AsNumeric()
	if rng != nil {
		n.SetRange(*rng)
	}
	n.SetDivisor(divisor)

	c := b.NewClass("Avatar")
	f := b.NewField("hp", t.ID())
	for _, kw := range keywords {
		_ = b.AddFieldKeyword(f, kw)
	}
	_ = b.AddField(c.ID(), f)
	_ = b.AddClass(c.ID())
	return b.Build()
}

func TestFile_Hash(t *testing.T) {
	require := require.New(t)

	r10 := NewNumericRange(UintNumber(0), UintNumber(10))
	r20 := NewNumericRange(UintNumber(0), UintNumber(20))

	base := buildRanged([]string{"db"}, &r10, 1).Hash()

	t.Run("must be stable for the same schema", func(t *testing.T) {
		require.Equal(base, buildRanged([]string{"db"}, &r10, 1).Hash())
	})

	t.Run("must differ if schema differs", func(t *testing.T) {
		require.NotEqual(base, buildRanged([]string{"db"}, &r20, 1).Hash(), "range")
		require.NotEqual(base, buildRanged([]string{"db"}, nil, 1).Hash(), "no range")
		require.NotEqual(base, buildRanged([]string{"db"}, &r10, 10).Hash(), "divisor")
		require.NotEqual(base, buildRanged([]string{"ram"}, &r10, 1).Hash(), "keyword")
		require.NotEqual(base, buildRanged(nil, &r10, 1).Hash(), "no keywords")
	})

	t.Run("must differ if default differs", func(t *testing.T) {
		build := func(fieldDefault, paramDefault []byte) uint32 {
			b := NewBuilder()
			u8 := b.NewNumeric(Kind_uint8)
			c := b.NewClass("C")
			f := b.NewField("hp", u8.ID())
			if fieldDefault != nil {
				b.SetDefault(f, fieldDefault)
			}
			_ = b.AddField(c.ID(), f)
			m := b.NewMethod()
			p, _ := b.AddParameter(m.ID(), "x", u8.ID())
			if paramDefault != nil {
				b.SetParameterDefault(p, paramDefault)
			}
			_ = b.AddField(c.ID(), b.NewField("set", m.ID()))
			_ = b.AddClass(c.ID())
			return b.Build().Hash()
		}
		base := build([]byte{1}, []byte{5})
		require.Equal(base, build([]byte{1}, []byte{5}))
		require.NotEqual(base, build([]byte{2}, []byte{5}), "field default")
		require.NotEqual(base, build(nil, []byte{5}), "no field default")
		require.NotEqual(base, build([]byte{1}, []byte{6}), "parameter default")
		require.NotEqual(base, build([]byte{1}, nil), "no parameter default")
	})

	t.Run("must not depend on typedefs and imports", func(t *testing.T) {
		b := NewBuilder()
		b.AddImport("game")
		_ = b.AddTypedef("Byte", b.NewNumeric(Kind_uint8).ID())
		require.Equal(NewBuilder().Build().Hash(), b.Build().Hash())
	})

	t.Run("must hash registered structs by reference", func(t *testing.T) {
		build := func(fieldName string) *File {
			b := NewBuilder()
			s := b.NewStruct("S")
			_ = b.AddField(s.ID(), b.NewField(fieldName, b.NewNumeric(Kind_int8).ID()))
			_ = b.AddStruct(s.ID())
			c := b.NewStruct("T")
			_ = b.AddField(c.ID(), b.NewField("s", s.ID()))
			_ = b.AddStruct(c.ID())
			return b.Build()
		}
		a, b := build("a"), build("b")
		require.NotEqual(a.Hash(), b.Hash())

		ha, hb := NewHashGenerator(), NewHashGenerator()
		ta, _ := a.StructByID(1)
		tb, _ := b.StructByID(1)
		ta.ContributeToHash(ha)
		tb.ContributeToHash(hb)
		require.Equal(ha.Hash(), hb.Hash(), "T refers to S by identifier only")
	})
}
