package patcher

import (
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// statementShouldAddParens reports whether p must be wrapped when it
// starts a statement.
func statementShouldAddParens(p Patcher) bool {
	return p.StatementNeedsParens() && !p.IsSurroundedByParentheses()
}

// patchExpressionAsStatement is the statement form of a plain expression:
// a `return ` prefix when the value is implicitly returned, otherwise
// parentheses if the expression would be misread at statement start.
func patchExpressionAsStatement(pt Patcher) error {
	p := pt.base()
	if p.implicitlyReturns {
		p.insert(p.outerStart, "return ")
		return p.patchExpression()
	}
	parens := statementShouldAddParens(pt)
	if parens {
		p.insert(p.outerStart, "(")
	}
	if err := p.patchExpression(); err != nil {
		return err
	}
	if parens {
		p.insert(p.outerEnd, ")")
	}
	return nil
}

func (p *NodePatcher) insert(off int, text string) { p.editor.Insert(off, text) }

func (p *NodePatcher) overwrite(start, end int, text string) { p.editor.Overwrite(start, end, text) }

func (p *NodePatcher) remove(start, end int) { p.editor.Remove(start, end) }

func (p *NodePatcher) tokenAt(i token.Index) (token.Token, bool) { return p.ctx.Tokens.At(i) }

// IndexOfSourceTokenBetweenPatchersMatching scans the tokens strictly
// between left's outer end and right's outer start.
func (p *NodePatcher) IndexOfSourceTokenBetweenPatchersMatching(left, right Patcher, pred token.Predicate) (token.Index, bool) {
	return p.ctx.Tokens.IndexOfTokenMatchingPredicate(pred, left.OuterEndTokenIndex().Next(), right.OuterStartTokenIndex())
}

// tokenBetween returns the first token of kind between left and right, or
// a missing-token error over the gap.
func (p *NodePatcher) tokenBetween(left, right Patcher, kind token.Kind, what string) (token.Token, error) {
	idx, ok := p.IndexOfSourceTokenBetweenPatchersMatching(left, right, token.OfKind(kind))
	if ok {
		if tok, ok := p.tokenAt(idx); ok {
			return tok, nil
		}
	}
	return token.Token{}, diag.Newf(diag.PatchMissingToken, p.ctx, left.OuterEnd(), right.OuterStart(),
		"expected %s token between %s", kind, what)
}

// lineIndent is the indentation of the line holding the node's outer start.
func (p *NodePatcher) lineIndent() string { return p.editor.LineIndent(p.outerStart) }

// appendLineAfter puts text on a new line right after the node's code.
// A trailing comment on that line ends up after the inserted line.
func (p *NodePatcher) appendLineAfter(text, indent string) {
	p.editor.InsertLineAfter(p.outerEnd, indent, text)
}

// appendToEndOfLine inserts text right after the node's code, ahead of
// anything a parent appends at the same point.
func (p *NodePatcher) appendToEndOfLine(text string) {
	p.insert(p.outerEnd, text)
}

func (p *NodePatcher) fail(code diag.Code, msg string) *diag.PatchError {
	return diag.New(code, msg, p.ctx, p.contentStart, p.contentEnd)
}

func (p *NodePatcher) errorf(code diag.Code, format string, args ...any) *diag.PatchError {
	return diag.Newf(code, p.ctx, p.contentStart, p.contentEnd, format, args...)
}

func patchAll(ps []Patcher, asStatement bool) error {
	for _, c := range ps {
		var err error
		if asStatement {
			err = c.PatchAsStatement()
		} else {
			err = c.PatchAsExpression()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
