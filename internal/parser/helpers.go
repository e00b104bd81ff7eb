package parser

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/source"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// eof is a zero-width Invalid token placed at the end of input.
func (p *Parser) eof() token.Token {
	n := uint32(len(p.file.Content)) // #nosec G115 -- bounded by the lexer's cursor
	return token.Token{Kind: token.Invalid, Span: source.Span{File: p.file.ID, Start: n, End: n}}
}

func (p *Parser) atEOF(tok token.Token) bool {
	return tok.Kind == token.Invalid
}

// peekIndex returns the index of the next significant token. Comments are
// always skipped; newlines only inside brackets.
func (p *Parser) peekIndex() int {
	i := p.pos
	for i < len(p.toks) {
		k := p.toks[i].Kind
		if k == token.Comment || (k == token.Newline && p.depth > 0) {
			i++
			continue
		}
		break
	}
	return i
}

func (p *Parser) peek() token.Token {
	i := p.peekIndex()
	if i >= len(p.toks) {
		return p.eof()
	}
	return p.toks[i]
}

func (p *Parser) peekKind() token.Kind { return p.peek().Kind }

// peekAfterNewlines looks at the first token past any newlines without
// consuming them.
func (p *Parser) peekAfterNewlines() token.Token {
	for i := p.pos; i < len(p.toks); i++ {
		if !p.toks[i].IsTrivia() {
			return p.toks[i]
		}
	}
	return p.eof()
}

func (p *Parser) next() token.Token {
	i := p.peekIndex()
	if i >= len(p.toks) {
		p.pos = len(p.toks)
		return p.eof()
	}
	p.pos = i + 1
	return p.toks[i]
}

func (p *Parser) skipNewlines() {
	for p.pos < len(p.toks) && p.toks[p.pos].IsTrivia() {
		p.pos++
	}
}

func (p *Parser) expect(k token.Kind, what string) (token.Token, error) {
	tok := p.peek()
	if tok.Kind != k {
		return tok, p.errorAt(diag.SynUnexpectedToken, tok, "expected "+what+", found "+describe(tok))
	}
	return p.next(), nil
}

// lineIndent is the width of the leading whitespace on tok's line.
func (p *Parser) lineIndent(tok token.Token) int {
	return len(p.file.IndentAt(tok.Start()))
}

func (p *Parser) firstOnLine(tok token.Token) bool {
	return p.file.Locate(tok.Start()).Column == p.lineIndent(tok)
}

func (p *Parser) span(start, end int) source.Span {
	return source.Span{File: p.file.ID, Start: uint32(start), End: uint32(end)} // #nosec G115 -- offsets come from token spans
}

func (p *Parser) tokSpan(first, last token.Token) source.Span {
	return p.span(first.Start(), last.End())
}

// startOf and endOf include parentheses written around n.
func (p *Parser) startOf(n ast.Node) int {
	if sp, ok := p.parens[n]; ok {
		return int(sp.Start)
	}
	return int(n.Span().Start)
}

func (p *Parser) endOf(n ast.Node) int {
	if sp, ok := p.parens[n]; ok {
		return int(sp.End)
	}
	return int(n.Span().End)
}

func (p *Parser) errorAt(code diag.Code, tok token.Token, msg string) *diag.PatchError {
	return diag.New(code, msg, p.ctx, tok.Start(), tok.End())
}

func (p *Parser) unexpected(tok token.Token) *diag.PatchError {
	return p.errorAt(diag.SynUnexpectedToken, tok, "unexpected "+describe(tok))
}

func describe(tok token.Token) string {
	if tok.Kind == token.Invalid {
		return "end of input"
	}
	return tok.Kind.String() + " token"
}

// startsExpression reports whether tok can begin an expression.
func startsExpression(tok token.Token) bool {
	switch tok.Kind {
	case token.Identifier, token.Number, token.String, token.Bool, token.Null, token.Undefined,
		token.LParen, token.LBrace, token.Function, token.Switch, token.If, token.Unless:
		return true
	case token.Operator:
		return isPrefixOperator(tok.Text)
	default:
		return false
	}
}
