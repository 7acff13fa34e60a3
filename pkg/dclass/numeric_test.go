/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumber_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Number
		want int
	}{
		{"int < uint", IntNumber(-1), UintNumber(0), -1},
		{"uint > int", UintNumber(math.MaxUint64), IntNumber(math.MaxInt64), 1},
		{"negatives", IntNumber(-10), IntNumber(-2), -1},
		{"min int64", IntNumber(math.MinInt64), IntNumber(math.MinInt64 + 1), -1},
		{"equal kinds differ", IntNumber(5), UintNumber(5), 0},
		{"float", FloatNumber(0.5), UintNumber(1), -1},
		{"null as zero", Number{}, UintNumber(0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Compare(tt.b))
		})
	}
}

func TestNumber_Conversions(t *testing.T) {
	require := require.New(t)

	v, ok := FloatNumber(3).AsUint64()
	require.True(ok)
	require.EqualValues(3, v)

	_, ok = FloatNumber(3.5).AsInt64()
	require.False(ok)

	_, ok = IntNumber(-1).AsUint64()
	require.False(ok)

	_, ok = UintNumber(math.MaxUint64).AsInt64()
	require.False(ok)

	require.Equal("-7", IntNumber(-7).String())
	require.Equal("2.5", FloatNumber(2.5).String())
	require.Equal("0-10", NewNumericRange(UintNumber(0), UintNumber(10)).String())
	require.Equal("5", NewNumericRange(UintNumber(5), UintNumber(5)).String())
}

func TestNumeric_SetRange(t *testing.T) {
	require := require.New(t)

	t.Run("must be ok to set range within kind domain", func(t *testing.T) {
		n := newNumeric(Kind_uint8)
		require.True(n.SetRange(NewNumericRange(UintNumber(0), UintNumber(10))))
		r, ok := n.Range()
		require.True(ok)
		require.Equal(UintNumber(10), r.Max)
		require.True(n.InRange(UintNumber(10)))
		require.False(n.InRange(UintNumber(15)))
	})

	t.Run("must be ok to use float bounds for float kind", func(t *testing.T) {
		n := newNumeric(Kind_float32)
		require.True(n.SetRange(NewNumericRange(IntNumber(-1), FloatNumber(1.5))))
		r, _ := n.Range()
		require.Equal(FloatNumber(-1), r.Min)
	})

	t.Run("must be fail", func(t *testing.T) {
		tests := []struct {
			name string
			k    Kind
			r    NumericRange
		}{
			{"inverted", Kind_int16, NewNumericRange(IntNumber(5), IntNumber(-5))},
			{"above domain", Kind_uint8, NewNumericRange(UintNumber(0), UintNumber(256))},
			{"below domain", Kind_int8, NewNumericRange(IntNumber(-129), IntNumber(0))},
			{"negative unsigned", Kind_uint32, NewNumericRange(IntNumber(-1), UintNumber(1))},
			{"fractional integer", Kind_int32, NewNumericRange(FloatNumber(0.5), UintNumber(1))},
			{"no bounds", Kind_int32, NumericRange{}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				n := newNumeric(tt.k)
				require.False(n.SetRange(tt.r))
				_, ok := n.Range()
				require.False(ok, "numeric should stay unchanged")
			})
		}
	})
}

func TestNumeric_SetModulusAndDivisor(t *testing.T) {
	require := require.New(t)

	n := newNumeric(Kind_uint16)
	require.EqualValues(1, n.Divisor())

	require.False(n.SetModulus(UintNumber(0)))
	require.False(n.SetModulus(IntNumber(-3)))
	require.False(n.SetModulus(FloatNumber(2.5)))
	require.False(n.SetModulus(UintNumber(65537)))
	require.True(n.SetModulus(UintNumber(65536)))
	require.True(n.SetModulus(UintNumber(360)))
	m, ok := n.Modulus()
	require.True(ok)
	require.Equal(UintNumber(360), m)

	require.False(n.SetDivisor(0))
	require.EqualValues(1, n.Divisor())
	require.True(n.SetDivisor(10))
	require.EqualValues(10, n.Divisor())

	f := newNumeric(Kind_float64)
	require.True(f.SetModulus(FloatNumber(6.28)))
	require.False(f.SetModulus(FloatNumber(math.Inf(1))))
}

func TestNumeric_Unpack(t *testing.T) {
	require := require.New(t)

	t.Run("must be ok to unpack little-endian values", func(t *testing.T) {
		v, n, err := newNumeric(Kind_int16).Unpack([]byte{0x9c, 0xff, 0x00})
		require.NoError(err)
		require.Equal(2, n)
		require.Equal(IntNumber(-100), v)

		v, _, err = newNumeric(Kind_uint32).Unpack([]byte{0x64, 0, 0, 0})
		require.NoError(err)
		require.Equal(UintNumber(100), v)

		v, _, err = newNumeric(Kind_float32).Unpack([]byte{0, 0, 0xc0, 0x3f})
		require.NoError(err)
		require.Equal(FloatNumber(1.5), v)
	})

	t.Run("must be error if not enough bytes", func(t *testing.T) {
		_, _, err := newNumeric(Kind_uint64).Unpack([]byte{1, 2, 3})
		require.ErrorIs(err, ErrOutOfBoundsError)
	})

	t.Run("must be ok to calculate real value", func(t *testing.T) {
		n := newNumeric(Kind_uint16)
		n.SetModulus(UintNumber(3600))
		n.SetDivisor(10)
		require.InDelta(12.5, n.Real(UintNumber(3725)), 1e-9)
	})
}

func TestSizeTag(t *testing.T) {
	require := require.New(t)

	b, ok := AppendSizeTag([]byte{0xff}, 5)
	require.True(ok)
	require.Len(b, 1+SizeTagSize)

	l, rest, err := ReadSizeTag(b[1:])
	require.NoError(err)
	require.EqualValues(5, l)
	require.Empty(rest)

	_, ok = AppendSizeTag(nil, MaxSizeTag+1)
	require.False(ok)

	_, _, err = ReadSizeTag([]byte{1})
	require.ErrorIs(err, ErrOutOfBoundsError)
}
