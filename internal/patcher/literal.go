package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
)

// IdentifierPatcher leaves the name as written.
type IdentifierPatcher struct {
	NodePatcher
}

func newIdentifierPatcher(n ast.Node, b *Builder) (Patcher, error) {
	p := &IdentifierPatcher{}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	p.primary = true
	return p, nil
}

func (p *IdentifierPatcher) patchAsExpression() error { return nil }

// LiteralPatcher covers numbers, strings, null and undefined, which are
// spelled the same in both languages.
type LiteralPatcher struct {
	NodePatcher
}

func newLiteralPatcher(n ast.Node, b *Builder) (Patcher, error) {
	p := &LiteralPatcher{}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	p.primary = true
	return p, nil
}

func (p *LiteralPatcher) patchAsExpression() error { return nil }

// BoolPatcher maps the yes/no/on/off aliases to true and false.
type BoolPatcher struct {
	NodePatcher
	raw string
}

func newBoolPatcher(n ast.Node, b *Builder) (Patcher, error) {
	p := &BoolPatcher{raw: n.(*ast.Literal).Raw}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	p.primary = true
	return p, nil
}

func (p *BoolPatcher) patchAsExpression() error {
	switch p.raw {
	case "yes", "on":
		p.overwrite(p.contentStart, p.contentEnd, "true")
	case "no", "off":
		p.overwrite(p.contentStart, p.contentEnd, "false")
	}
	return nil
}
