package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
)

// ReturnPatcher handles explicit returns.
type ReturnPatcher struct {
	NodePatcher
	expression Patcher // nil for a bare return
}

func newReturnPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.Return)
	p := &ReturnPatcher{}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	expr, err := b.BuildOptional(node.Expression)
	if err != nil {
		return nil, err
	}
	p.expression = expr
	return p, nil
}

// patchAsStatement ignores implicit returns: the node already returns.
func (p *ReturnPatcher) patchAsStatement() error {
	if p.expression == nil {
		return nil
	}
	return p.expression.PatchAsExpression()
}
