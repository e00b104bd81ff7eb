package token

import (
	"github.com/bhvaleri/decaffeinate/internal/source"
)

// Token represents a single source token and its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Start returns the offset of the token's first byte.
func (t Token) Start() int { return int(t.Span.Start) }

// End returns the offset just past the token's last byte.
func (t Token) End() int { return int(t.Span.End) }

// IsTrivia reports whether the token carries no syntax (newlines, comments).
func (t Token) IsTrivia() bool {
	return t.Kind == Newline || t.Kind == Comment
}

// IsLiteral reports whether the token is a literal value.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, Bool, Null, Undefined:
		return true
	default:
		return false
	}
}

// IsOpenParen reports whether the token opens any kind of parenthesis.
func (t Token) IsOpenParen() bool { return t.Kind == LParen || t.Kind == CallStart }

// IsCloseParen reports whether the token closes any kind of parenthesis.
func (t Token) IsCloseParen() bool { return t.Kind == RParen || t.Kind == CallEnd }
