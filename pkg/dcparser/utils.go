/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcparser

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/voedger/dclass/pkg/dclass"
)

// Returns literal as it was written in source
func (n *numberLit) text() string {
	s := ""
	switch {
	case n.Float != nil:
		s = *n.Float
	case n.Int != nil:
		s = *n.Int
	case n.Char != nil:
		s = "'" + *n.Char + "'"
	}
	if n.Neg {
		return "-" + s
	}
	return s
}

// Returns numeric value of literal. Negative integers are signed, other
// integers and chars are unsigned.
func (n *numberLit) number() (dclass.Number, error) {
	switch {
	case n.Float != nil:
		f, err := strconv.ParseFloat(*n.Float, 64)
		if err != nil {
			return dclass.Number{}, ErrNumberLiteral(n.text())
		}
		if n.Neg {
			f = -f
		}
		return dclass.FloatNumber(f), nil
	case n.Int != nil:
		u, err := parseUint(*n.Int)
		if err != nil {
			return dclass.Number{}, ErrNumberLiteral(n.text())
		}
		return n.signed(u)
	case n.Char != nil:
		r := []rune(*n.Char)
		if len(r) != 1 || r[0] > math.MaxUint8 {
			return dclass.Number{}, ErrCharLiteral(*n.Char)
		}
		return n.signed(uint64(r[0]))
	}
	return dclass.Number{}, ErrNumberLiteral(n.text())
}

func (n *numberLit) signed(u uint64) (dclass.Number, error) {
	const minInt64Magnitude = uint64(1) << 63
	switch {
	case !n.Neg:
		return dclass.UintNumber(u), nil
	case u < minInt64Magnitude:
		return dclass.IntNumber(-int64(u)), nil
	case u == minInt64Magnitude:
		return dclass.IntNumber(math.MinInt64), nil
	}
	return dclass.Number{}, ErrNumberLiteral(n.text())
}

// Parses decimal or 0x-prefixed hexadecimal integer literal.
func parseUint(s string) (uint64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}

// Returns numeric range of range expression. Single value gives range
// of exactly one value.
func (r *rangeExpr) numeric() (dclass.NumericRange, error) {
	min, err := r.Min.number()
	if err != nil {
		return dclass.NumericRange{}, err
	}
	max := min
	if r.Max != nil {
		if max, err = r.Max.number(); err != nil {
			return dclass.NumericRange{}, err
		}
	}
	return dclass.NewNumericRange(min, max), nil
}

// Returns bytes of hex literal "<0a 0b>".
func hexBytes(lit string) ([]byte, bool) {
	digits := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, lit)
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, false
	}
	return b, true
}
