// Package parser builds the syntax tree of the CoffeeScript subset from the
// lexer's token stream. Blocks are delimited by indentation, which is read
// from the source lines rather than from dedicated tokens.
package parser

import (
	"errors"

	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/lexer"
	"github.com/bhvaleri/decaffeinate/internal/parsectx"
	"github.com/bhvaleri/decaffeinate/internal/source"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// Parser is the state for one file.
type Parser struct {
	file  *source.File
	ctx   *parsectx.Context
	toks  []token.Token
	pos   int
	depth int // bracket nesting; newlines are insignificant while > 0

	// outer extents of nodes written inside parentheses
	parens map[ast.Node]source.Span
}

// Parse lexes and parses file. The context is returned even on failure so
// the error can be rendered against it.
func Parse(file *source.File) (*ast.Program, *parsectx.Context, error) {
	ctx, err := Tokenize(file)
	if err != nil {
		return nil, ctx, err
	}

	p := &Parser{
		file:   file,
		ctx:    ctx,
		toks:   ctx.Tokens.Tokens(),
		parens: make(map[ast.Node]source.Span),
	}
	prog, err := p.parseProgram()
	if err != nil {
		return nil, ctx, err
	}
	return prog, ctx, nil
}

// Tokenize lexes file into a context. Lexer failures are reported as
// *diag.PatchError against the tokens read so far.
func Tokenize(file *source.File) (*parsectx.Context, error) {
	toks, lexErr := lexer.Tokenize(file, lexer.Options{})
	ctx := parsectx.New(file, toks)
	if lexErr == nil {
		return ctx, nil
	}
	var le *lexer.Error
	if !errors.As(lexErr, &le) {
		return ctx, lexErr
	}
	code := diag.LexUnexpectedChar
	if le.Kind == lexer.ErrBadLiteral {
		code = diag.LexBadLiteral
	}
	return ctx, diag.Wrap(le, code, le.Message, ctx, int(le.Span.Start), int(le.Span.End))
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	p.skipNewlines()
	var body *ast.Block
	if first := p.peek(); !p.atEOF(first) {
		stmts, err := p.parseStatements(p.lineIndent(first))
		if err != nil {
			return nil, err
		}
		if next := p.peek(); !p.atEOF(next) {
			return nil, p.unexpected(next)
		}
		body = ast.NewBlock(p.span(p.startOf(stmts[0]), p.endOf(stmts[len(stmts)-1])), stmts, false)
	}
	return ast.NewProgram(p.span(0, len(p.file.Content)), body), nil
}
