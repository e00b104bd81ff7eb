package lexer

import (
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// scanNumber reads decimal (with optional fraction and exponent) and hex literals.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' && (lx.cursor.PeekAt(1) == 'x' || lx.cursor.PeekAt(1) == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		if !isHex(lx.cursor.Peek()) {
			tok := lx.emit(token.Invalid, start)
			lx.report(ErrBadLiteral, tok.Span, "malformed hex literal")
			return tok
		}
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.emit(token.Number, start)
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if c := lx.cursor.Peek(); c == 'e' || c == 'E' {
		n := uint32(1)
		if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
			n = 2
		}
		if isDec(lx.cursor.PeekAt(n)) {
			lx.cursor.Off += n
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}
	return lx.emit(token.Number, start)
}
