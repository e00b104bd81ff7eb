package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/diag"
)

// BlockPatcher patches a statement list, terminating simple statements
// with `;`.
type BlockPatcher struct {
	NodePatcher
	statements []Patcher
	inline     bool
}

func newBlockPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.Block)
	p := &BlockPatcher{inline: node.Inline}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	stmts, err := b.buildAll(node.Statements)
	if err != nil {
		return nil, err
	}
	p.statements = stmts
	return p, nil
}

// SetImplicitlyReturns forwards to the last statement, which produces
// the block's value.
func (p *BlockPatcher) SetImplicitlyReturns() {
	p.NodePatcher.SetImplicitlyReturns()
	if n := len(p.statements); n > 0 {
		p.statements[n-1].SetImplicitlyReturns()
	}
}

func (p *BlockPatcher) AllCodePathsPresent() bool {
	n := len(p.statements)
	return n > 0 && p.statements[n-1].AllCodePathsPresent()
}

func (p *BlockPatcher) patchAsStatement() error {
	for _, s := range p.statements {
		if err := s.PatchAsStatement(); err != nil {
			return err
		}
		if needsSemicolon(s) {
			p.insert(s.OuterEnd(), ";")
		}
	}
	return nil
}

// patchAsExpression handles the single-expression blocks used as
// ternary branches.
func (p *BlockPatcher) patchAsExpression() error {
	if len(p.statements) != 1 {
		return p.errorf(diag.PatchUnsupported, "block of %d statements cannot be used as an expression", len(p.statements))
	}
	return p.statements[0].PatchAsExpression()
}

// lastIsReturn reports whether the block ends in an explicit return.
func (p *BlockPatcher) lastIsReturn() bool {
	n := len(p.statements)
	return n > 0 && p.statements[n-1].Node().Kind() == ast.KindReturn
}

// singleExpression reports whether the block is one inline expression.
func (p *BlockPatcher) singleExpression() bool {
	return p.inline && len(p.statements) == 1 && p.statements[0].Node().Kind() != ast.KindReturn
}

func needsSemicolon(s Patcher) bool {
	switch s.Node().Kind() {
	case ast.KindSwitch, ast.KindConditional:
		return false
	}
	return true
}
