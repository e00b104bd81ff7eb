package lexer

import "github.com/bhvaleri/decaffeinate/internal/token"

// skipSpaces consumes horizontal whitespace. A lone '\r' counts as space.
func (lx *Lexer) skipSpaces() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.emit(token.Newline, start)
}

// scanComment reads '#' up to, not including, the end of the line.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	return lx.emit(token.Comment, start)
}
