package patcher

import (
	"errors"

	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/editor"
	"github.com/bhvaleri/decaffeinate/internal/parsectx"
	"github.com/bhvaleri/decaffeinate/internal/trace"
)

type options struct {
	tracer trace.Tracer
	parent uint64
}

// Option configures Patch.
type Option func(*options)

// WithTracer records a node-scope span for every patcher.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithParentSpan nests the node spans under an existing span.
func WithParentSpan(id uint64) Option {
	return func(o *options) { o.parent = id }
}

// Patch rewrites the tree rooted at root and returns the JavaScript text.
// Every failure is a *diag.PatchError.
func Patch(root ast.Node, ctx *parsectx.Context, opts ...Option) (string, error) {
	o := options{tracer: trace.Nop}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = trace.Nop
	}

	ed := editor.New(ctx.Source())
	b := &Builder{shared: &shared{ctx: ctx, editor: ed, tracer: o.tracer}}
	if o.parent != 0 {
		b.shared.spans = []uint64{o.parent}
	}

	p, err := b.Build(root)
	if err != nil {
		return "", err
	}
	if err := p.PatchAsStatement(); err != nil {
		return "", err
	}

	out, err := ed.Render()
	if err != nil {
		var ce *editor.ConflictError
		if errors.As(err, &ce) {
			return "", diag.Wrap(ce, diag.PatchEditConflict, ce.Error(), ctx, ce.Edit.Start, ce.Edit.End)
		}
		return "", diag.Wrap(err, diag.PatchInternal, err.Error(), ctx, 0, 0)
	}
	return out, nil
}
