package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/bhvaleri/decaffeinate/internal/token"
)

// operators in longest-match order
var operators = []string{
	"**=", "||=", "&&=",
	"+=", "-=", "*=", "/=", "%=", "?=",
	"==", "!=", "<=", ">=", "&&", "||", "**",
	"+", "-", "*", "/", "%", "<", ">", "!", "=",
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.EatString("->") || lx.cursor.EatString("=>") {
		return lx.emit(token.Function, start)
	}
	for _, op := range operators {
		if lx.cursor.EatString(op) {
			return lx.emit(token.Operator, start)
		}
	}

	switch lx.cursor.Bump() {
	case '(':
		call := lx.startsCall(start)
		lx.parens = append(lx.parens, call)
		if call {
			return lx.emit(token.CallStart, start)
		}
		return lx.emit(token.LParen, start)
	case ')':
		if len(lx.parens) == 0 {
			tok := lx.emit(token.Invalid, start)
			lx.report(ErrUnbalanced, tok.Span, "unmatched ')'")
			return tok
		}
		call := lx.parens[len(lx.parens)-1]
		lx.parens = lx.parens[:len(lx.parens)-1]
		if call {
			return lx.emit(token.CallEnd, start)
		}
		return lx.emit(token.RParen, start)
	case '{':
		return lx.emit(token.LBrace, start)
	case '}':
		return lx.emit(token.RBrace, start)
	case ':':
		return lx.emit(token.Colon, start)
	case ',':
		return lx.emit(token.Comma, start)
	case '.':
		return lx.emit(token.Dot, start)
	}

	return lx.unexpectedChar(start, rune(lx.file.Content[start]))
}

// scanUnexpectedRune consumes one non-ASCII character, which the grammar
// only allows inside strings and comments.
func (lx *Lexer) scanUnexpectedRune() token.Token {
	start := lx.cursor.Mark()
	r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	lx.cursor.Advance(uint32(size)) // #nosec G115 -- at most utf8.UTFMax
	if r == utf8.RuneError && size == 1 {
		tok := lx.emit(token.Invalid, start)
		lx.report(ErrUnexpectedChar, tok.Span, fmt.Sprintf("invalid UTF-8 byte %#02x", lx.file.Content[start]))
		return tok
	}
	return lx.unexpectedChar(start, r)
}

func (lx *Lexer) unexpectedChar(start Mark, r rune) token.Token {
	tok := lx.emit(token.Invalid, start)
	lx.report(ErrUnexpectedChar, tok.Span, fmt.Sprintf("unexpected character %q", r))
	return tok
}

// startsCall reports whether a '(' at start directly follows a callee.
func (lx *Lexer) startsCall(start Mark) bool {
	if lx.prev == nil || lx.prev.Span.End != uint32(start) {
		return false
	}
	switch lx.prev.Kind {
	case token.Identifier, token.RParen, token.CallEnd:
		return true
	default:
		return false
	}
}
