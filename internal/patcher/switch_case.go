package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// SwitchCasePatcher turns `when a, b then x` into `case a: case b: x;
// break;`. Negating a case negates each of its conditions.
type SwitchCasePatcher struct {
	NodePatcher
	conditions []Patcher
	consequent *BlockPatcher
}

func newSwitchCasePatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.SwitchCase)
	p := &SwitchCasePatcher{}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	conds, err := b.buildAll(node.Conditions)
	if err != nil {
		return nil, err
	}
	cons, err := b.Build(node.Consequent)
	if err != nil {
		return nil, err
	}
	p.conditions, p.consequent = conds, cons.(*BlockPatcher)
	return p, nil
}

func (p *SwitchCasePatcher) Negate() {
	p.NodePatcher.Negate()
	for _, c := range p.conditions {
		c.Negate()
	}
}

func (p *SwitchCasePatcher) SetImplicitlyReturns() {
	p.NodePatcher.SetImplicitlyReturns()
	p.consequent.SetImplicitlyReturns()
}

func (p *SwitchCasePatcher) AllCodePathsPresent() bool {
	return p.consequent.AllCodePathsPresent()
}

func (p *SwitchCasePatcher) patchAsStatement() error {
	when, ok := p.tokenAt(p.contentStartTok)
	if !ok || when.Kind != token.When {
		kind := token.Invalid
		if ok {
			kind = when.Kind
		}
		return p.errorf(diag.PatchStructuralDesync, "unexpected %s token at start of switch case", kind)
	}
	p.overwrite(when.Start(), when.End(), "case")

	for i, cond := range p.conditions {
		if i > 0 {
			comma, err := p.tokenBetween(p.conditions[i-1], cond, token.Comma, "switch case conditions")
			if err != nil {
				return err
			}
			p.overwrite(comma.Start(), comma.End(), ": case")
		}
		if err := cond.PatchAsExpression(); err != nil {
			return err
		}
	}

	last := p.conditions[len(p.conditions)-1]
	if p.consequent.inline {
		then, err := p.tokenBetween(last, p.consequent, token.Then, "case condition and body")
		if err != nil {
			return err
		}
		p.overwrite(last.OuterEnd(), then.End(), ":")
	} else {
		p.insert(last.OuterEnd(), ":")
	}

	if err := p.consequent.PatchAsStatement(); err != nil {
		return err
	}
	if p.implicitlyReturns || p.consequent.lastIsReturn() {
		return nil
	}
	if p.consequent.inline {
		p.consequent.appendToEndOfLine(" break;")
	} else {
		p.consequent.appendLineAfter("break;", p.editor.LineIndent(p.consequent.ContentStart()))
	}
	return nil
}
