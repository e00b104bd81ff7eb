// Package patcher rewrites a CoffeeScript syntax tree into JavaScript by
// editing the original source text. Every node gets a patcher that knows
// its exact bounds in the token stream; patchers register their edits on a
// single editor shared by the whole file, and the result is rendered once
// at the end.
package patcher

import (
	"fmt"

	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/editor"
	"github.com/bhvaleri/decaffeinate/internal/parsectx"
	"github.com/bhvaleri/decaffeinate/internal/token"
	"github.com/bhvaleri/decaffeinate/internal/trace"
)

// Patcher rewrites one node. Flags (SetImplicitlyReturns, Negate) may only
// be set before the patcher runs, and each patcher runs exactly once, in
// either statement or expression form.
type Patcher interface {
	Node() ast.Node

	PatchAsStatement() error
	PatchAsExpression() error

	// StatementNeedsParens reports whether the JavaScript for this node
	// would be misread at the start of a statement, e.g. an object literal.
	StatementNeedsParens() bool
	IsSurroundedByParentheses() bool

	SetImplicitlyReturns()
	ImplicitlyReturns() bool
	// AllCodePathsPresent reports whether every path through the node
	// produces a value or leaves the enclosing function.
	AllCodePathsPresent() bool

	Negate()
	Negated() bool

	ContentStart() int
	ContentEnd() int
	OuterStart() int
	OuterEnd() int
	ContentStartTokenIndex() token.Index
	ContentEndTokenIndex() token.Index
	OuterStartTokenIndex() token.Index
	OuterEndTokenIndex() token.Index

	base() *NodePatcher
}

// statementPatcher is implemented by patchers with a dedicated statement
// form. The others are patched as expressions wrapped for statement use.
type statementPatcher interface {
	patchAsStatement() error
}

type expressionPatcher interface {
	patchAsExpression() error
}

// ownNegation is implemented by patchers that render their own negation
// instead of being wrapped in `!`.
type ownNegation interface {
	negatesItself() bool
}

// shared is the per-file state every patcher points at.
type shared struct {
	ctx    *parsectx.Context
	editor *editor.Editor
	tracer trace.Tracer
	spans  []uint64 // open trace spans, innermost last
}

// NodePatcher carries the state common to all patchers. Concrete patchers
// embed it and implement patchAsExpression, optionally patchAsStatement.
type NodePatcher struct {
	*shared
	self Patcher
	node ast.Node

	contentStart, contentEnd int
	outerStart, outerEnd     int

	contentStartTok, contentEndTok token.Index
	outerStartTok, outerEndTok     token.Index

	// primary nodes bind tighter than `!` and are negated without parens
	primary bool

	implicitlyReturns bool
	negated           bool
	patched           bool
}

func (p *NodePatcher) base() *NodePatcher { return p }

func (p *NodePatcher) Node() ast.Node { return p.node }

func (p *NodePatcher) ContentStart() int                   { return p.contentStart }
func (p *NodePatcher) ContentEnd() int                     { return p.contentEnd }
func (p *NodePatcher) OuterStart() int                     { return p.outerStart }
func (p *NodePatcher) OuterEnd() int                       { return p.outerEnd }
func (p *NodePatcher) ContentStartTokenIndex() token.Index { return p.contentStartTok }
func (p *NodePatcher) ContentEndTokenIndex() token.Index   { return p.contentEndTok }
func (p *NodePatcher) OuterStartTokenIndex() token.Index   { return p.outerStartTok }
func (p *NodePatcher) OuterEndTokenIndex() token.Index     { return p.outerEndTok }

func (p *NodePatcher) IsSurroundedByParentheses() bool {
	return p.outerStartTok != p.contentStartTok
}

func (p *NodePatcher) StatementNeedsParens() bool { return false }

func (p *NodePatcher) AllCodePathsPresent() bool { return true }

func (p *NodePatcher) SetImplicitlyReturns() {
	p.mustBeUnpatched("SetImplicitlyReturns")
	p.implicitlyReturns = true
}

func (p *NodePatcher) ImplicitlyReturns() bool { return p.implicitlyReturns }

// Negate toggles negation, so negating twice restores the original.
func (p *NodePatcher) Negate() {
	p.mustBeUnpatched("Negate")
	p.negated = !p.negated
}

func (p *NodePatcher) Negated() bool { return p.negated }

func (p *NodePatcher) mustBeUnpatched(what string) {
	if p.patched {
		panic(fmt.Sprintf("patcher: %s on %s node after it was patched", what, p.node.Kind()))
	}
}

func (p *NodePatcher) PatchAsStatement() error {
	return p.run("statement", func() error {
		if sp, ok := p.self.(statementPatcher); ok {
			return sp.patchAsStatement()
		}
		return patchExpressionAsStatement(p.self)
	})
}

func (p *NodePatcher) PatchAsExpression() error {
	return p.run("expression", p.patchExpression)
}

// run guards against patching twice and records a node-scope trace span.
func (p *NodePatcher) run(form string, fn func() error) error {
	if p.patched {
		return p.errorf(diag.PatchStructuralDesync, "%s node was already patched", p.node.Kind())
	}
	p.patched = true

	var parent uint64
	if n := len(p.spans); n > 0 {
		parent = p.spans[n-1]
	}
	span := trace.Begin(p.tracer, trace.ScopeNode, p.node.Kind().String(), parent)
	p.spans = append(p.spans, span.ID())
	err := fn()
	p.spans = p.spans[:len(p.spans)-1]

	detail := "ok"
	if err != nil {
		detail = err.Error()
	}
	span.WithExtra("form", form).
		WithExtra("span", fmt.Sprintf("%d:%d", p.outerStart, p.outerEnd)).
		End(detail)
	return err
}

// patchExpression runs the concrete expression form, wrapped in `!` when
// the node is negated and does not negate itself.
func (p *NodePatcher) patchExpression() error {
	impl, ok := p.self.(expressionPatcher)
	if !ok {
		return p.errorf(diag.PatchUnsupported, "%s node cannot be used as an expression", p.node.Kind())
	}
	if !p.negated {
		return impl.patchAsExpression()
	}
	if own, ok := p.self.(ownNegation); ok && own.negatesItself() {
		return impl.patchAsExpression()
	}
	if p.primary || p.IsSurroundedByParentheses() {
		p.insert(p.outerStart, "!")
		return impl.patchAsExpression()
	}
	p.insert(p.outerStart, "!(")
	if err := impl.patchAsExpression(); err != nil {
		return err
	}
	p.insert(p.outerEnd, ")")
	return nil
}
