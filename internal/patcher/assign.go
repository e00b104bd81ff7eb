package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// AssignOpPatcher handles `a = b`.
type AssignOpPatcher struct {
	NodePatcher
	assignee, expression Patcher
}

func newAssignOpPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.Assign)
	p := &AssignOpPatcher{}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	var err error
	if p.assignee, err = b.Build(node.Assignee); err != nil {
		return nil, err
	}
	if p.expression, err = b.Build(node.Expression); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *AssignOpPatcher) StatementNeedsParens() bool {
	return statementShouldAddParens(p.assignee)
}

func (p *AssignOpPatcher) patchAsExpression() error {
	if err := p.assignee.PatchAsExpression(); err != nil {
		return err
	}
	return p.expression.PatchAsExpression()
}

// compoundOperators maps CoffeeScript spellings to JavaScript; the
// arithmetic and ||=/&&= forms are unchanged.
var compoundOperators = map[string]string{
	"or=":  "||=",
	"and=": "&&=",
	"?=":   "??=",
}

// CompoundAssignOpPatcher handles `a += b` and the logical variants.
type CompoundAssignOpPatcher struct {
	NodePatcher
	op                   string
	assignee, expression Patcher
}

func newCompoundAssignOpPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.CompoundAssign)
	p := &CompoundAssignOpPatcher{op: node.Op}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	var err error
	if p.assignee, err = b.Build(node.Assignee); err != nil {
		return nil, err
	}
	if p.expression, err = b.Build(node.Expression); err != nil {
		return nil, err
	}
	return p, nil
}

// StatementNeedsParens is inherited from the assignee: `{a: 1}.b += 2`
// must not start with `{`.
func (p *CompoundAssignOpPatcher) StatementNeedsParens() bool {
	return statementShouldAddParens(p.assignee)
}

func (p *CompoundAssignOpPatcher) patchAsExpression() error {
	opTok, err := p.tokenBetween(p.assignee, p.expression, token.Operator, "assignee and expression")
	if err != nil {
		return err
	}
	if err := p.assignee.PatchAsExpression(); err != nil {
		return err
	}
	if js, ok := compoundOperators[opTok.Text]; ok {
		p.overwrite(opTok.Start(), opTok.End(), js)
	}
	return p.expression.PatchAsExpression()
}
