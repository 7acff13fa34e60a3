/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_TrimString(t *testing.T) {
	tests := []struct {
		name string
		k    Kind
		want string
	}{
		{name: "int8", k: Kind_int8, want: "int8"},
		{name: "char", k: Kind_char, want: "char"},
		{name: "varstring", k: Kind_varstring, want: "varstring"},
		{name: "invalid", k: Kind_invalid, want: "invalid"},
		{name: "out of range", k: Kind_invalid + 1, want: "Kind(20)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.k.TrimString())
		})
	}
}

func TestKind_Order(t *testing.T) {
	require := require.New(t)

	// fingerprints depend on these values
	require.EqualValues(0, Kind_int8)
	require.EqualValues(8, Kind_char)
	require.EqualValues(11, Kind_string)
	require.EqualValues(17, Kind_struct)
	require.EqualValues(19, Kind_invalid)
}

func TestKind_Props(t *testing.T) {
	require := require.New(t)

	for k := Kind_int8; k <= Kind_invalid; k++ {
		require.Equal(k <= Kind_float64, k.IsNumeric(), k)
		require.Equal(k.IsNumeric(), k.Width() > 0, k)
		if k.IsNumeric() {
			n := 0
			for _, is := range []bool{k.IsSigned(), k.IsUnsigned(), k.IsFloat()} {
				if is {
					n++
				}
			}
			require.Equal(1, n, "numeric kind %v must be exactly one of signed, unsigned or float", k)
		}
	}

	require.True(Kind_char.IsUnsigned())
	require.True(Kind_blob.IsArray())
	require.False(Kind_struct.IsArray())
	require.EqualValues(1, Kind_char.Width())
	require.EqualValues(8, Kind_float64.Width())
}
