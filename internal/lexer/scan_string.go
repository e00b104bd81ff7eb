package lexer

import (
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// scanString reads a single- or double-quoted string on one line.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			tok := lx.emit(token.Invalid, start)
			lx.report(ErrBadLiteral, tok.Span, "unterminated string literal")
			return tok
		}
		c := lx.cursor.Bump()
		switch {
		case c == '\\':
			if lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case c == quote:
			return lx.emit(token.String, start)
		case quote == '"' && c == '#' && lx.cursor.Peek() == '{':
			sp := lx.cursor.SpanFrom(lx.cursor.Mark() - 1)
			sp.End++
			lx.report(ErrBadLiteral, sp, "string interpolation is not supported")
		}
	}
}
