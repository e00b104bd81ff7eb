package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// ConditionalPatcher handles if/unless. As a statement it becomes an `if`
// with braces; as an expression a ternary when both branches are single
// inline expressions, otherwise an immediately invoked arrow function.
type ConditionalPatcher struct {
	NodePatcher
	unless     bool
	condition  Patcher
	consequent *BlockPatcher
	alternate  Patcher // *BlockPatcher, *ConditionalPatcher for `else if`, or nil
}

func newConditionalPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.Conditional)
	p := &ConditionalPatcher{unless: node.Unless}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	var err error
	if p.condition, err = b.Build(node.Condition); err != nil {
		return nil, err
	}
	cons, err := b.Build(node.Consequent)
	if err != nil {
		return nil, err
	}
	p.consequent = cons.(*BlockPatcher)
	if p.alternate, err = b.BuildOptional(node.Alternate); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *ConditionalPatcher) SetImplicitlyReturns() {
	p.NodePatcher.SetImplicitlyReturns()
	p.consequent.SetImplicitlyReturns()
	if p.alternate != nil {
		p.alternate.SetImplicitlyReturns()
	}
}

func (p *ConditionalPatcher) AllCodePathsPresent() bool {
	return p.alternate != nil && p.consequent.AllCodePathsPresent() && p.alternate.AllCodePathsPresent()
}

func (p *ConditionalPatcher) headToken() (token.Token, error) {
	tok, ok := p.tokenAt(p.contentStartTok)
	if !ok {
		return token.Token{}, p.fail(diag.PatchStructuralDesync, "bad token index for start of conditional")
	}
	if tok.Kind != token.If && tok.Kind != token.Unless {
		return token.Token{}, p.errorf(diag.PatchStructuralDesync, "unexpected %s token at start of conditional", tok.Kind)
	}
	return tok, nil
}

func (p *ConditionalPatcher) patchAsStatement() error {
	head, err := p.headToken()
	if err != nil {
		return err
	}
	if p.unless {
		p.overwrite(head.Start(), head.End(), "if")
		p.condition.Negate()
	}

	// `!` may land outside existing parens, so negated conditions are
	// always wrapped again
	wrap := p.unless || !p.condition.IsSurroundedByParentheses()
	if wrap {
		p.insert(p.condition.OuterStart(), "(")
	}
	if err := p.condition.PatchAsExpression(); err != nil {
		return err
	}
	if wrap {
		p.insert(p.condition.OuterEnd(), ")")
	}

	if p.consequent.inline {
		then, err := p.tokenBetween(p.condition, p.consequent, token.Then, "condition and consequent")
		if err != nil {
			return err
		}
		p.overwrite(p.condition.OuterEnd(), then.End(), " {")
	} else {
		p.insert(p.condition.OuterEnd(), " {")
	}
	if err := p.consequent.PatchAsStatement(); err != nil {
		return err
	}

	if p.alternate == nil {
		closeBlock(p.consequent, p.lineIndent())
		return nil
	}

	elseTok, err := p.tokenBetween(p.consequent, p.alternate, token.Else, "consequent and alternate")
	if err != nil {
		return err
	}
	if p.consequent.inline {
		p.consequent.appendToEndOfLine(" }")
	} else {
		p.insert(elseTok.Start(), "} ")
	}

	if _, elseIf := p.alternate.(*ConditionalPatcher); elseIf {
		return p.alternate.PatchAsStatement()
	}
	p.insert(elseTok.End(), " {")
	if err := p.alternate.PatchAsStatement(); err != nil {
		return err
	}
	closeBlock(p.alternate.(*BlockPatcher), p.lineIndent())
	return nil
}

// closeBlock ends a braced block: on the same line for inline blocks,
// otherwise on a line of its own at indent.
func closeBlock(b *BlockPatcher, indent string) {
	if b.inline {
		b.appendToEndOfLine(" }")
		return
	}
	b.appendLineAfter("}", indent)
}

func (p *ConditionalPatcher) canBeTernary() bool {
	if !p.consequent.singleExpression() {
		return false
	}
	switch alt := p.alternate.(type) {
	case nil:
		return true
	case *BlockPatcher:
		return alt.singleExpression()
	case *ConditionalPatcher:
		return alt.canBeTernary()
	}
	return false
}

func (p *ConditionalPatcher) patchAsExpression() error {
	if !p.canBeTernary() {
		return p.patchAsFunctionCall()
	}

	head, err := p.headToken()
	if err != nil {
		return err
	}
	p.remove(head.Start(), p.condition.OuterStart())
	if p.unless {
		p.condition.Negate()
	}
	if err := p.condition.PatchAsExpression(); err != nil {
		return err
	}

	then, err := p.tokenBetween(p.condition, p.consequent, token.Then, "condition and consequent")
	if err != nil {
		return err
	}
	p.overwrite(then.Start(), then.End(), "?")
	if err := p.consequent.PatchAsExpression(); err != nil {
		return err
	}

	if p.alternate == nil {
		p.insert(p.consequent.OuterEnd(), " : undefined")
		return nil
	}
	elseTok, err := p.tokenBetween(p.consequent, p.alternate, token.Else, "consequent and alternate")
	if err != nil {
		return err
	}
	p.overwrite(elseTok.Start(), elseTok.End(), ":")
	return p.alternate.PatchAsExpression()
}

// patchAsFunctionCall wraps the statement form in `(() => { ... })()`
// with every branch returning its value.
func (p *ConditionalPatcher) patchAsFunctionCall() error {
	p.implicitlyReturns = true
	p.consequent.SetImplicitlyReturns()
	if p.alternate != nil {
		p.alternate.SetImplicitlyReturns()
	}
	p.insert(p.contentStart, "(() => { ")
	if err := p.patchAsStatement(); err != nil {
		return err
	}
	p.insert(p.contentEnd, " })()")
	return nil
}
