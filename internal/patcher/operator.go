package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// UnaryOpPatcher handles prefix operators; `not` becomes `!`.
type UnaryOpPatcher struct {
	NodePatcher
	op      string
	operand Patcher
}

func newUnaryOpPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.Unary)
	p := &UnaryOpPatcher{op: node.Op}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	operand, err := b.Build(node.Operand)
	if err != nil {
		return nil, err
	}
	p.operand = operand
	return p, nil
}

func (p *UnaryOpPatcher) isLogicalNot() bool { return p.op == "not" || p.op == "!" }

// negatesItself: negating `not x` drops the operator.
func (p *UnaryOpPatcher) negatesItself() bool { return p.isLogicalNot() }

func (p *UnaryOpPatcher) patchAsExpression() error {
	opEnd := p.operand.OuterStart()
	switch {
	case p.isLogicalNot() && p.negated:
		p.remove(p.contentStart, opEnd)
	case p.op == "not":
		p.overwrite(p.contentStart, opEnd, "!")
	}
	return p.operand.PatchAsExpression()
}

var binaryOperators = map[string]string{
	"is":   "===",
	"==":   "===",
	"isnt": "!==",
	"!=":   "!==",
	"and":  "&&",
	"or":   "||",
}

var negatedEquality = map[string]string{
	"is":   "!==",
	"==":   "!==",
	"isnt": "===",
	"!=":   "===",
}

// BinaryOpPatcher rewrites the operator token between the operands.
type BinaryOpPatcher struct {
	NodePatcher
	op          string
	left, right Patcher
}

func newBinaryOpPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.Binary)
	p := &BinaryOpPatcher{op: node.Op}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	left, err := b.Build(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := b.Build(node.Right)
	if err != nil {
		return nil, err
	}
	p.left, p.right = left, right
	return p, nil
}

// negatesItself: equality comparisons flip instead of gaining a `!`.
func (p *BinaryOpPatcher) negatesItself() bool {
	_, ok := negatedEquality[p.op]
	return ok
}

func (p *BinaryOpPatcher) StatementNeedsParens() bool {
	return statementShouldAddParens(p.left)
}

func (p *BinaryOpPatcher) patchAsExpression() error {
	if err := p.left.PatchAsExpression(); err != nil {
		return err
	}
	opTok, err := p.tokenBetween(p.left, p.right, token.Operator, "binary operands")
	if err != nil {
		return err
	}
	replacement, ok := binaryOperators[p.op]
	if p.negated && p.negatesItself() {
		replacement = negatedEquality[p.op]
	}
	if ok {
		p.overwrite(opTok.Start(), opTok.End(), replacement)
	}
	return p.right.PatchAsExpression()
}
