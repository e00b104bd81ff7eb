package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
)

// ObjectPatcher patches property values in place. A `{` at the start of a
// statement would open a block, so object statements are parenthesised.
type ObjectPatcher struct {
	NodePatcher
	properties []Patcher
}

func newObjectPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.Object)
	p := &ObjectPatcher{}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	p.primary = true
	for _, prop := range node.Properties {
		c, err := b.Build(prop)
		if err != nil {
			return nil, err
		}
		p.properties = append(p.properties, c)
	}
	return p, nil
}

func (p *ObjectPatcher) StatementNeedsParens() bool { return true }

func (p *ObjectPatcher) patchAsExpression() error {
	return patchAll(p.properties, false)
}

type PropertyPatcher struct {
	NodePatcher
	value Patcher
}

func newPropertyPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.Property)
	p := &PropertyPatcher{}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	value, err := b.Build(node.Value)
	if err != nil {
		return nil, err
	}
	p.value = value
	return p, nil
}

func (p *PropertyPatcher) patchAsExpression() error {
	return p.value.PatchAsExpression()
}
