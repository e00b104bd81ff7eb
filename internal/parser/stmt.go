package parser

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// parseStatements reads statements whose lines start at exactly indent.
// It stops at end of input, at a line with a different indent, or at a
// token left on the same line as the previous statement.
func (p *Parser) parseStatements(indent int) ([]ast.Node, error) {
	var stmts []ast.Node
	for {
		p.skipNewlines()
		tok := p.peek()
		if p.atEOF(tok) || !p.firstOnLine(tok) || p.lineIndent(tok) != indent {
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)

		next := p.peek()
		if next.Kind == token.Newline || p.atEOF(next) || p.firstOnLine(next) {
			continue
		}
		return stmts, nil
	}
}

func (p *Parser) parseStatement() (ast.Node, error) {
	if p.peekKind() != token.Return {
		return p.parseExpression()
	}
	ret := p.next()
	if !startsExpression(p.peek()) {
		return ast.NewReturn(ret.Span, nil), nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewReturn(p.span(ret.Start(), p.endOf(expr)), expr), nil
}

// parseIndentedBlock reads the block that starts on the line after the
// current newline and is indented deeper than parentIndent.
func (p *Parser) parseIndentedBlock(parentIndent int) (*ast.Block, error) {
	saved := p.depth
	p.depth = 0
	defer func() { p.depth = saved }()

	p.skipNewlines()
	first := p.peek()
	if p.atEOF(first) || p.lineIndent(first) <= parentIndent {
		return nil, p.errorAt(diag.SynBadIndentation, first, "expected an indented block")
	}
	indent := p.lineIndent(first)
	stmts, err := p.parseStatements(indent)
	if err != nil {
		return nil, err
	}
	if len(stmts) == 0 {
		return nil, p.unexpected(first)
	}
	if next := p.peek(); !p.atEOF(next) {
		if !p.firstOnLine(next) {
			return nil, p.unexpected(next)
		}
		if p.lineIndent(next) > indent {
			return nil, p.errorAt(diag.SynBadIndentation, next, "unexpected indentation")
		}
	}
	return ast.NewBlock(p.span(p.startOf(stmts[0]), p.endOf(stmts[len(stmts)-1])), stmts, false), nil
}

// parseInlineBlock reads a single statement on the current line.
func (p *Parser) parseInlineBlock() (*ast.Block, error) {
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return ast.NewBlock(p.span(p.startOf(stmt), p.endOf(stmt)), []ast.Node{stmt}, true), nil
}

// parseBody reads either an indented block or an inline statement.
func (p *Parser) parseBody(headerIndent int) (*ast.Block, error) {
	if p.peekKind() == token.Newline {
		return p.parseIndentedBlock(headerIndent)
	}
	if !startsExpression(p.peek()) && p.peekKind() != token.Return {
		return nil, p.unexpected(p.peek())
	}
	return p.parseInlineBlock()
}
