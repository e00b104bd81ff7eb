package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// FunctionPatcher turns `(a) -> body` into `function(a) { body }` and
// `(a) => body` into `(a) => { body }`. The body's value is returned.
type FunctionPatcher struct {
	NodePatcher
	bound     bool
	hasParens bool
	body      *BlockPatcher // nil for an empty function
}

func newFunctionPatcher(n ast.Node, b *Builder) (Patcher, error) {
	node := n.(*ast.Function)
	p := &FunctionPatcher{bound: node.Bound, hasParens: node.HasParens}
	if err := b.Init(&p.NodePatcher, p, n); err != nil {
		return nil, err
	}
	if node.Body != nil {
		body, err := b.Build(node.Body)
		if err != nil {
			return nil, err
		}
		bp, ok := body.(*BlockPatcher)
		if !ok {
			return nil, p.fail(diag.PatchInternal, "function body is not a block")
		}
		p.body = bp
	}
	return p, nil
}

// StatementNeedsParens: a statement starting with `function` would be a
// declaration.
func (p *FunctionPatcher) StatementNeedsParens() bool { return true }

func (p *FunctionPatcher) arrowToken() (token.Token, error) {
	limit := p.contentEndTok.Next()
	if p.body != nil {
		limit = p.body.OuterStartTokenIndex()
	}
	idx, ok := p.ctx.Tokens.IndexOfTokenMatchingPredicate(token.OfKind(token.Function), p.contentStartTok, limit)
	if !ok {
		return token.Token{}, p.fail(diag.PatchMissingToken, "expected FUNCTION token in function header")
	}
	tok, _ := p.tokenAt(idx)
	return tok, nil
}

func (p *FunctionPatcher) patchAsExpression() error {
	arrow, err := p.arrowToken()
	if err != nil {
		return err
	}

	open := " {"
	if p.body == nil {
		open = " {}"
	}
	switch {
	case p.bound && p.hasParens:
		p.insert(arrow.End(), open)
	case p.bound:
		p.overwrite(arrow.Start(), arrow.End(), "() =>"+open)
	case p.hasParens:
		p.insert(p.contentStart, "function")
		p.overwrite(arrow.Start()-leadingSpace(p, arrow), arrow.End(), open)
	default:
		p.overwrite(arrow.Start(), arrow.End(), "function()"+open)
	}

	if p.body == nil {
		return nil
	}
	p.body.SetImplicitlyReturns()
	if err := p.body.PatchAsStatement(); err != nil {
		return err
	}
	if p.body.inline {
		p.body.appendToEndOfLine(" }")
		return nil
	}
	p.body.appendLineAfter("}", p.lineIndent())
	return nil
}

// leadingSpace counts the blanks between the parameter list and the arrow,
// which are folded into the replacement.
func leadingSpace(p *FunctionPatcher, arrow token.Token) int {
	src := p.ctx.Source()
	n := 0
	for i := arrow.Start() - 1; i >= p.contentStart && (src[i] == ' ' || src[i] == '\t'); i-- {
		n++
	}
	return n
}
