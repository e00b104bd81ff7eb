package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
)

// MemberAccessPatcher handles `a.b`. Whatever the object needs at the
// start of a statement, the whole access needs too.
type MemberAccessPatcher struct {
	NodePatcher
	object Patcher
}

func newMemberAccessPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.Member)
	p := &MemberAccessPatcher{}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	p.primary = true
	object, err := b.Build(node.Object)
	if err != nil {
		return nil, err
	}
	p.object = object
	return p, nil
}

func (p *MemberAccessPatcher) StatementNeedsParens() bool {
	return statementShouldAddParens(p.object)
}

func (p *MemberAccessPatcher) patchAsExpression() error {
	return p.object.PatchAsExpression()
}

// CallPatcher handles `f(a, b)`.
type CallPatcher struct {
	NodePatcher
	callee Patcher
	args   []Patcher
}

func newCallPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.Call)
	p := &CallPatcher{}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	p.primary = true
	callee, err := b.Build(node.Callee)
	if err != nil {
		return nil, err
	}
	args, err := b.buildAll(node.Args)
	if err != nil {
		return nil, err
	}
	p.callee, p.args = callee, args
	return p, nil
}

func (p *CallPatcher) StatementNeedsParens() bool {
	return statementShouldAddParens(p.callee)
}

func (p *CallPatcher) patchAsExpression() error {
	if err := p.callee.PatchAsExpression(); err != nil {
		return err
	}
	return patchAll(p.args, false)
}
