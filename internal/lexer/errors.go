package lexer

import (
	"fmt"

	"github.com/bhvaleri/decaffeinate/internal/source"
)

// ErrorKind classifies lexical errors.
type ErrorKind uint8

const (
	ErrUnexpectedChar ErrorKind = iota
	ErrBadLiteral
	ErrUnbalanced
)

// Error is a lexical error at a source span.
type Error struct {
	Kind    ErrorKind
	Span    source.Span
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d-%d: %s", e.Span.Start, e.Span.End, e.Message)
}
