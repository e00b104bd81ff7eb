package lexer

import (
	"unicode/utf8"

	"github.com/bhvaleri/decaffeinate/internal/source"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

type Lexer struct {
	file     *source.File
	cursor   Cursor
	opts     Options
	prev     *token.Token // last non-trivia token
	parens   []bool       // open parens, true for call parens
	firstErr *Error
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next token including newlines and comments. ok is false
// at end of input.
func (lx *Lexer) Next() (tok token.Token, ok bool) {
	lx.skipSpaces()
	if lx.cursor.EOF() {
		return token.Token{}, false
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '\n':
		tok = lx.scanNewline()
	case ch == '#':
		tok = lx.scanComment()
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()
	case isDec(ch), ch == '.' && isDec(lx.cursor.PeekAt(1)):
		tok = lx.scanNumber()
	case ch == '"' || ch == '\'':
		tok = lx.scanString()
	case ch >= utf8.RuneSelf:
		tok = lx.scanUnexpectedRune()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	if !tok.IsTrivia() {
		t := tok
		lx.prev = &t
	}
	return tok, true
}

// Err returns the first lexical error seen so far.
func (lx *Lexer) Err() error {
	if lx.firstErr == nil {
		return nil
	}
	return lx.firstErr
}

// Tokenize lexes the whole file. The returned tokens are complete up to
// the end of input even when err is non-nil.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	var out []token.Token
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		out = append(out, tok)
	}
	if len(lx.parens) > 0 && lx.firstErr == nil {
		at := lx.cursor.SpanFrom(lx.cursor.Mark())
		lx.report(ErrUnbalanced, at, "missing ')'")
	}
	return out, lx.Err()
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: k,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
