/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcparser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Top-level statement of DC source. Statements are parsed one by one.
type statementAST struct {
	Pos     lexer.Position
	Import  *importStmt  `parser:"  @@"`
	From    *fromStmt    `parser:"| @@"`
	Typedef *typedefStmt `parser:"| @@"`
	Keyword *keywordStmt `parser:"| @@"`
	Struct  *structStmt  `parser:"| @@"`
	Class   *classStmt   `parser:"| @@"`
}

type moduleName struct {
	Parts []string `parser:"@Ident ('.' @Ident)*"`
}

func (m moduleName) String() string { return strings.Join(m.Parts, ".") }

type importStmt struct {
	Pos    lexer.Position
	Module moduleName `parser:"'import' @@ ';'"`
}

type fromStmt struct {
	Pos     lexer.Position
	Module  moduleName     `parser:"'from' @@ 'import'"`
	All     bool           `parser:"( @'*'"`
	Symbols []importSymbol `parser:"| @@ (',' @@)* ) ';'"`
}

// Symbol with optional alternatives: "Avatar/AI/OV"
type importSymbol struct {
	Names []string `parser:"@Ident ('/' @Ident)*"`
}

func (s importSymbol) String() string { return strings.Join(s.Names, "/") }

type typedefStmt struct {
	Pos  lexer.Position
	Type typeExpr   `parser:"'typedef' @@"`
	Name string     `parser:"@Ident"`
	Dims []arrayDim `parser:"@@* ';'"`
}

type keywordStmt struct {
	Pos   lexer.Position
	Names []identRef `parser:"'keyword' @@ (','? @@)* ';'"`
}

type structStmt struct {
	Pos    lexer.Position
	Name   string       `parser:"'struct' @Ident '{'"`
	Fields []*fieldDecl `parser:"@@* '}' ';'?"`
}

type classStmt struct {
	Pos     lexer.Position
	Name    string       `parser:"('dclass' | 'class') @Ident"`
	Parents []identRef   `parser:"(':' @@ (',' @@)*)? '{'"`
	Fields  []*fieldDecl `parser:"@@* '}' ';'?"`
}

type identRef struct {
	Pos  lexer.Position
	Name string `parser:"@Ident"`
}

type fieldDecl struct {
	Pos       lexer.Position
	Name      string        `parser:"@Ident"`
	Molecular *molecularDef `parser:"(  @@"`
	Method    *methodDef    `parser:" | @@"`
	Typed     *typedDef     `parser:" | @@ ) ';'"`
}

type molecularDef struct {
	Atoms []identRef `parser:"':=' @@ (',' @@)*"`
}

type methodDef struct {
	Params   []*paramDecl `parser:"'(' (@@ (',' @@)*)? ')'"`
	Default  *valueExpr   `parser:"('=' @@)?"`
	Keywords []identRef   `parser:"@@*"`
}

type typedDef struct {
	Type     typeExpr   `parser:"':' @@"`
	Default  *valueExpr `parser:"('=' @@)?"`
	Keywords []identRef `parser:"@@*"`
}

type paramDecl struct {
	Pos     lexer.Position
	Name    string     `parser:"(@Ident ':')?"`
	Type    typeExpr   `parser:"@@"`
	Default *valueExpr `parser:"('=' @@)?"`
}

// Type expression: builtin or named type, optional range, numeric
// modifiers and array dimensions.
type typeExpr struct {
	Pos     lexer.Position
	Builtin string       `parser:"(  @('int8' | 'int16' | 'int32' | 'int64' | 'uint8' | 'uint16' | 'uint32' | 'uint64' | 'char' | 'float32' | 'float64' | 'string' | 'blob')"`
	Named   string       `parser:" | @Ident )"`
	Range   *rangeExpr   `parser:"('(' @@ ')')?"`
	Mods    []numericMod `parser:"@@*"`
	Dims    []arrayDim   `parser:"@@*"`
}

type rangeExpr struct {
	Pos lexer.Position
	Min numberLit  `parser:"@@"`
	Max *numberLit `parser:"('-' @@)?"`
}

// Modulus (%) or divisor (/)
type numericMod struct {
	Pos   lexer.Position
	Op    string    `parser:"@('%' | '/')"`
	Value numberLit `parser:"@@"`
}

type arrayDim struct {
	Pos   lexer.Position
	Range *rangeExpr `parser:"'[' @@? ']'"`
}

type numberLit struct {
	Pos   lexer.Position
	Neg   bool    `parser:"@'-'?"`
	Float *string `parser:"(  @Float"`
	Int   *string `parser:" | @Int"`
	Char  *string `parser:" | @Char )"`
}

// Literal value. Repeat makes array expansion: "count * value".
type valueExpr struct {
	Pos    lexer.Position
	Repeat *string    `parser:"(@Int '*')?"`
	Array  *valueList `parser:"(  '[' @@ ']'"`
	Tuple  *valueList `parser:" | '(' @@ ')'"`
	Number *numberLit `parser:" | @@"`
	String *string    `parser:" | @String"`
	Hex    *string    `parser:" | @Hex )"`
}

type valueList struct {
	Values []*valueExpr `parser:"(@@ (',' @@)*)?"`
}

// Root of value mode source
type valueAST struct {
	Value *valueExpr `parser:"@@"`
}
