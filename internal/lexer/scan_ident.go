package lexer

import (
	"github.com/bhvaleri/decaffeinate/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	word := string(lx.file.Content[start:lx.cursor.Off])

	// a property name after '.' is never a keyword
	if lx.prev != nil && lx.prev.Kind == token.Dot {
		return lx.emit(token.Identifier, start)
	}

	kind, ok := token.LookupKeyword(word)
	if !ok {
		return lx.emit(token.Identifier, start)
	}
	// `or=` and `and=` are single compound-assignment operators
	if (word == "or" || word == "and") && lx.cursor.Peek() == '=' && lx.cursor.PeekAt(1) != '=' {
		lx.cursor.Bump()
	}
	return lx.emit(kind, start)
}
