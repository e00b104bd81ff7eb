// Package parsectx bundles the read-only inputs every patcher shares: the
// original source file and its token stream.
package parsectx

import (
	"github.com/bhvaleri/decaffeinate/internal/source"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// Context is created once per file and never modified afterwards.
type Context struct {
	File   *source.File
	Tokens *token.Stream

	text string
}

func New(file *source.File, tokens []token.Token) *Context {
	return &Context{
		File:   file,
		Tokens: token.NewStream(tokens),
		text:   string(file.Content),
	}
}

// Source returns the original text.
func (c *Context) Source() string { return c.text }

// Path returns the file path used in messages.
func (c *Context) Path() string { return c.File.Path }

// Slice returns the source text in [start, end), clamped to the content.
func (c *Context) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(c.text) {
		end = len(c.text)
	}
	if start >= end {
		return ""
	}
	return c.text[start:end]
}
