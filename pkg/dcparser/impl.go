/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcparser

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/dclass/pkg/dclass"
)

var dcLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: tokenComment, Pattern: `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`},
	{Name: tokenWhitespace, Pattern: `[ \r\n\t]+`},
	{Name: "Float", Pattern: `\d+\.\d*([eE][-+]?\d+)?|\d+[eE][-+]?\d+`},
	{Name: "Int", Pattern: `0[xX][0-9a-fA-F]+|\d+`},
	{Name: "Hex", Pattern: `<[0-9a-fA-F \t\r\n]*>`},
	{Name: "String", Pattern: `"(\\.|[^"\\\n])*"`},
	{Name: "Char", Pattern: `'(\\.|[^'\\\n])+'`},
	{Name: "Assign", Pattern: `:=`},
	{Name: "Punct", Pattern: `[-;.,*/%{}:=\[\]()]`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: tokenInvalid, Pattern: `.`},
})

func parserOptions() []participle.Option {
	return []participle.Option{
		participle.Lexer(dcLexer),
		participle.Elide(tokenWhitespace, tokenComment),
		participle.Unquote("String", "Char"),
		participle.UseLookahead(lookahead),
	}
}

var (
	statementParser = participle.MustBuild[statementAST](parserOptions()...)
	valueParser     = participle.MustBuild[valueAST](parserOptions()...)
)

// Top-level statement source cut from DC file
type segment struct {
	pos  lexer.Position
	text string
}

// Returns source of segment padded so that positions reported by parser
// match the positions in the whole file.
func (s segment) padded() string {
	return strings.Repeat("\n", s.pos.Line-1) + strings.Repeat(" ", s.pos.Column-1) + s.text
}

type tokenKinds struct {
	skip    map[lexer.TokenType]bool
	punct   lexer.TokenType
	invalid lexer.TokenType
}

func newTokenKinds() tokenKinds {
	symbols := dcLexer.Symbols()
	return tokenKinds{
		skip: map[lexer.TokenType]bool{
			symbols[tokenWhitespace]: true,
			symbols[tokenComment]:    true,
			symbols[tokenInvalid]:    true,
			lexer.EOF:                true,
		},
		punct:   symbols["Punct"],
		invalid: symbols[tokenInvalid],
	}
}

// Splits DC source into top-level statements.
//
// Statement ends with ';' outside of any brackets, or with '}' which
// closes all brackets, optionally followed by ';'. Unexpected characters
// are reported and blanked out.
func splitStatements(fileName, content string, res *Result) []segment {
	lex, err := dcLexer.LexString(fileName, content)
	if err == nil {
		var tokens []lexer.Token
		if tokens, err = lexer.ConsumeAll(lex); err == nil {
			return splitTokens(content, tokens, res)
		}
	}
	pos := lexer.Position{Filename: fileName, Line: 1, Column: 1}
	var perr participle.Error
	if errors.As(err, &perr) {
		pos = perr.Position()
	}
	res.errorAt(pos, dclass.EnrichError(ErrLexical, err.Error()))
	return nil
}

func splitTokens(content string, tokens []lexer.Token, res *Result) []segment {
	kinds := newTokenKinds()
	src := []byte(content)

	significant := make([]lexer.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Type == kinds.invalid {
			res.errorAt(t.Pos, ErrUnexpectedChar(t.Value))
			for i := 0; i < len(t.Value); i++ {
				src[t.Pos.Offset+i] = ' '
			}
			continue
		}
		if !kinds.skip[t.Type] {
			significant = append(significant, t)
		}
	}

	isPunct := func(i int, v string) bool {
		return i < len(significant) && significant[i].Type == kinds.punct && significant[i].Value == v
	}

	segments := make([]segment, 0)
	for first := 0; first < len(significant); {
		last := len(significant) - 1
		depth := 0
	scan:
		for i := first; i < len(significant); i++ {
			if significant[i].Type != kinds.punct {
				continue
			}
			switch significant[i].Value {
			case "{", "(", "[":
				depth++
			case ")", "]":
				if depth > 0 {
					depth--
				}
			case "}":
				if depth > 0 {
					depth--
				}
				if depth == 0 {
					last = i
					if isPunct(i+1, ";") {
						last = i + 1
					}
					break scan
				}
			case ";":
				if depth == 0 {
					last = i
					break scan
				}
			}
		}
		from, to := significant[first], significant[last]
		segments = append(segments, segment{
			pos:  from.Pos,
			text: string(src[from.Pos.Offset : to.Pos.Offset+len(to.Value)]),
		})
		first = last + 1
	}
	return segments
}

// Parses DC source into schema document under construction.
func (c *parseContext) parseSource(fileName, content string) {
	logger.Verbose("parsing", fileName)
	for _, seg := range splitStatements(fileName, content, c.res) {
		stmt, err := statementParser.ParseString(fileName, seg.padded())
		if err != nil {
			c.syntaxError(seg.pos, err)
			continue
		}
		c.statement(stmt)
	}
}

func (c *parseContext) syntaxError(pos lexer.Position, err error) {
	var perr participle.Error
	if errors.As(err, &perr) {
		c.res.errorAt(perr.Position(), dclass.EnrichError(ErrSyntax, perr.Message()))
		return
	}
	c.res.errorAt(pos, dclass.EnrichError(ErrSyntax, err.Error()))
}

func parseSourcesImpl(sources ...Source) (*dclass.File, *Result) {
	res := newResult()
	c := newParseContext(res)
	for _, s := range sources {
		c.parseSource(s.Name, s.Content)
	}
	return c.b.Build(), res
}

func parseFilesImpl(fs IReadFS, names ...string) (*dclass.File, *Result, error) {
	sources := make([]Source, 0, len(names))
	for _, name := range names {
		bytes, err := fs.ReadFile(name)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, Source{Name: name, Content: string(bytes)})
	}
	file, res := parseSourcesImpl(sources...)
	return file, res, nil
}

func parseValueImpl(file *dclass.File, typ dclass.TypeID, text string) ([]byte, *Result) {
	res := newResult()
	c := newValueContext(file, res)
	ast, err := valueParser.ParseString("", text)
	if err != nil {
		c.syntaxError(lexer.Position{Line: 1, Column: 1}, err)
		return nil, res
	}
	return c.compileValue(file.Type(typ), ast.Value), res
}
