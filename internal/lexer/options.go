package lexer

import (
	"github.com/bhvaleri/decaffeinate/internal/source"
)

// Reporter receives every lexical error. The lexer keeps scanning after a
// report so tooling can list all problems in one pass.
type Reporter interface {
	Report(span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // may be nil
}

func (lx *Lexer) report(kind ErrorKind, sp source.Span, msg string) {
	if lx.firstErr == nil {
		lx.firstErr = &Error{Kind: kind, Span: sp, Message: msg}
	}
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(sp, msg)
	}
}
