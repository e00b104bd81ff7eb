package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// SwitchPatcher turns a CoffeeScript switch into a JavaScript one. A switch
// without a subject matches the first truthy case, which is written as
// `switch (false)` over negated case conditions.
type SwitchPatcher struct {
	NodePatcher
	expression Patcher // nil without a subject
	cases      []*SwitchCasePatcher
	alternate  *BlockPatcher // nil without else
}

func newSwitchPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.Switch)
	p := &SwitchPatcher{}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	var err error
	if p.expression, err = b.BuildOptional(node.Expression); err != nil {
		return nil, err
	}
	for _, c := range node.Cases {
		cp, err := b.Build(c)
		if err != nil {
			return nil, err
		}
		p.cases = append(p.cases, cp.(*SwitchCasePatcher))
	}
	if node.Alternate != nil {
		alt, err := b.Build(node.Alternate)
		if err != nil {
			return nil, err
		}
		p.alternate = alt.(*BlockPatcher)
	}
	return p, nil
}

func (p *SwitchPatcher) SetImplicitlyReturns() {
	p.NodePatcher.SetImplicitlyReturns()
	p.setBranchesReturn()
}

func (p *SwitchPatcher) setBranchesReturn() {
	for _, c := range p.cases {
		c.SetImplicitlyReturns()
	}
	if p.alternate != nil {
		p.alternate.SetImplicitlyReturns()
	}
}

// AllCodePathsPresent requires an else and complete cases.
func (p *SwitchPatcher) AllCodePathsPresent() bool {
	if p.alternate == nil {
		return false
	}
	for _, c := range p.cases {
		if !c.AllCodePathsPresent() {
			return false
		}
	}
	return p.alternate.AllCodePathsPresent()
}

func (p *SwitchPatcher) patchAsStatement() error {
	if p.expression != nil {
		wrap := !p.expression.IsSurroundedByParentheses()
		if wrap {
			p.insert(p.expression.ContentStart(), "(")
		}
		if err := p.expression.PatchAsExpression(); err != nil {
			return err
		}
		if wrap {
			p.insert(p.expression.ContentEnd(), ")")
		}
		p.insert(p.expression.OuterEnd(), " {")
	} else {
		sw, err := p.switchToken()
		if err != nil {
			return err
		}
		for _, c := range p.cases {
			c.Negate()
		}
		p.insert(sw.End(), " (false) {")
	}

	for _, c := range p.cases {
		if err := c.PatchAsStatement(); err != nil {
			return err
		}
	}

	if p.alternate != nil {
		elseTok, err := p.elseToken()
		if err != nil {
			return err
		}
		p.overwrite(elseTok.Start(), elseTok.End(), "default:")
		if err := p.alternate.PatchAsStatement(); err != nil {
			return err
		}
	}

	p.editor.InsertLineAfter(p.contentEnd, p.editor.LineIndent(p.contentStart), "}")
	return nil
}

func (p *SwitchPatcher) patchAsExpression() error {
	p.implicitlyReturns = true
	p.setBranchesReturn()
	p.insert(p.contentStart, "(() => { ")
	if err := p.patchAsStatement(); err != nil {
		return err
	}
	p.insert(p.contentEnd, " })()")
	return nil
}

func (p *SwitchPatcher) switchToken() (token.Token, error) {
	tok, ok := p.tokenAt(p.contentStartTok)
	if !ok {
		return token.Token{}, p.fail(diag.PatchStructuralDesync, "bad token index for start of 'switch'")
	}
	if tok.Kind != token.Switch {
		return token.Token{}, p.errorf(diag.PatchStructuralDesync, "unexpected %s token at start of 'switch'", tok.Kind)
	}
	return tok, nil
}

// elseToken scans back from the alternate for its ELSE, which must lie
// inside the switch.
func (p *SwitchPatcher) elseToken() (token.Token, error) {
	idx, ok := p.ctx.Tokens.LastIndexOfTokenMatchingPredicate(token.OfKind(token.Else), p.alternate.ContentStartTokenIndex())
	if !ok || idx.IsBefore(p.contentStartTok) {
		return token.Token{}, p.alternate.fail(diag.PatchOutOfRange, "no ELSE token found before 'switch' alternate")
	}
	tok, _ := p.tokenAt(idx)
	return tok, nil
}
