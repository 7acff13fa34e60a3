/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcparser

import "github.com/voedger/dclass/pkg/dclass"

// Token types which are not passed to grammar
const (
	tokenWhitespace = "Whitespace"
	tokenComment    = "Comment"
	tokenInvalid    = "Invalid"
)

const lookahead = 4

// Builtin type names as they are written in DC source
var builtinKinds = map[string]dclass.Kind{
	"int8":    dclass.Kind_int8,
	"int16":   dclass.Kind_int16,
	"int32":   dclass.Kind_int32,
	"int64":   dclass.Kind_int64,
	"uint8":   dclass.Kind_uint8,
	"uint16":  dclass.Kind_uint16,
	"uint32":  dclass.Kind_uint32,
	"uint64":  dclass.Kind_uint64,
	"char":    dclass.Kind_char,
	"float32": dclass.Kind_float32,
	"float64": dclass.Kind_float64,
}

// Builtin array type names and their element kinds
var builtinArrays = map[string]dclass.Kind{
	"string": dclass.Kind_char,
	"blob":   dclass.Kind_uint8,
}
