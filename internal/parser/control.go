package parser

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// parseSwitch reads
//
//	switch [subject]
//	  when a, b [then x | block]
//	  else ...
//
// The else may sit at the indentation of the cases or of the switch line.
func (p *Parser) parseSwitch() (ast.Node, error) {
	sw := p.next()
	headerIndent := p.lineIndent(sw)

	var subject ast.Node
	if p.peekKind() != token.Newline && !p.atEOF(p.peek()) {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		subject = expr
	}
	if p.peekKind() != token.Newline {
		return nil, p.unexpected(p.peek())
	}

	p.skipNewlines()
	first := p.peek()
	if first.Kind != token.When || p.lineIndent(first) <= headerIndent {
		return nil, p.errorAt(diag.SynUnexpectedToken, first, "expected an indented 'when' after 'switch', found "+describe(first))
	}
	caseIndent := p.lineIndent(first)

	var cases []*ast.SwitchCase
	for {
		tok := p.peek()
		if tok.Kind != token.When || !p.firstOnLine(tok) || p.lineIndent(tok) != caseIndent {
			break
		}
		c, err := p.parseCase(caseIndent)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
		p.skipNewlines()
	}

	end := p.endOf(cases[len(cases)-1])
	var alternate *ast.Block
	if tok := p.peek(); tok.Kind == token.Else && p.firstOnLine(tok) &&
		(p.lineIndent(tok) == caseIndent || p.lineIndent(tok) == headerIndent) {
		p.next()
		alt, err := p.parseBody(p.lineIndent(tok))
		if err != nil {
			return nil, err
		}
		alternate = alt
		end = p.endOf(alt)
	}
	return ast.NewSwitch(p.span(sw.Start(), end), subject, cases, alternate), nil
}

func (p *Parser) parseCase(caseIndent int) (*ast.SwitchCase, error) {
	when := p.next()

	var conds []ast.Node
	for {
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		conds = append(conds, cond)
		if p.peekKind() != token.Comma {
			break
		}
		p.next()
	}

	var cons *ast.Block
	var err error
	switch p.peekKind() {
	case token.Then:
		p.next()
		cons, err = p.parseInlineBlock()
	case token.Newline:
		cons, err = p.parseIndentedBlock(caseIndent)
	default:
		return nil, p.errorAt(diag.SynUnexpectedToken, p.peek(), "expected 'then' or a new line after 'when', found "+describe(p.peek()))
	}
	if err != nil {
		return nil, err
	}
	return ast.NewSwitchCase(p.span(when.Start(), p.endOf(cons)), conds, cons), nil
}

// parseConditional reads if/unless with an optional else. An else on the
// line of an inline consequent, or first on a line at the if's indentation,
// belongs to this conditional.
func (p *Parser) parseConditional() (ast.Node, error) {
	head := p.next()
	headerIndent := p.lineIndent(head)

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	var cons *ast.Block
	switch p.peekKind() {
	case token.Then:
		p.next()
		cons, err = p.parseInlineBlock()
	case token.Newline:
		cons, err = p.parseIndentedBlock(headerIndent)
	default:
		return nil, p.errorAt(diag.SynUnexpectedToken, p.peek(), "expected 'then' or a new line after condition, found "+describe(p.peek()))
	}
	if err != nil {
		return nil, err
	}

	end := p.endOf(cons)
	var alternate ast.Node
	tok := p.peek()
	sameLine := tok.Kind == token.Else && cons.Inline && !p.firstOnLine(tok)
	if !sameLine {
		tok = p.peekAfterNewlines()
	}
	if tok.Kind == token.Else && (sameLine || (p.firstOnLine(tok) && p.lineIndent(tok) == headerIndent)) {
		p.skipNewlines()
		p.next()
		if k := p.peekKind(); k == token.If || k == token.Unless {
			alternate, err = p.parseConditional()
		} else {
			alternate, err = p.parseBody(headerIndent)
		}
		if err != nil {
			return nil, err
		}
		end = p.endOf(alternate)
	}
	return ast.NewConditional(p.span(head.Start(), end), cond, cons, alternate, head.Kind == token.Unless), nil
}

// isParamList reports whether the '(' at the cursor opens a parameter list,
// that is, its matching ')' is followed by an arrow.
func (p *Parser) isParamList() bool {
	level := 0
	for i := p.peekIndex(); i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case token.LParen, token.CallStart:
			level++
		case token.RParen, token.CallEnd:
			level--
			if level == 0 {
				for j := i + 1; j < len(p.toks); j++ {
					if p.toks[j].Kind == token.Comment {
						continue
					}
					return p.toks[j].Kind == token.Function
				}
				return false
			}
		}
	}
	return false
}

func (p *Parser) parseFunction() (ast.Node, error) {
	start := p.peek()
	headerIndent := p.lineIndent(start)

	var params []*ast.Identifier
	hasParens := false
	if start.Kind == token.LParen {
		hasParens = true
		p.next()
		p.depth++
		for p.peekKind() != token.RParen {
			id, err := p.expect(token.Identifier, "parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, ast.NewIdentifier(id.Span, id.Text))
			if p.peekKind() != token.Comma {
				break
			}
			p.next()
		}
		_, err := p.expect(token.RParen, "')'")
		p.depth--
		if err != nil {
			return nil, err
		}
	}

	arrow, err := p.expect(token.Function, "'->' or '=>'")
	if err != nil {
		return nil, err
	}
	bound := arrow.Text == "=>"

	var body *ast.Block
	switch next := p.peek(); {
	case next.Kind == token.Newline:
		after := p.peekAfterNewlines()
		if !p.atEOF(after) && p.lineIndent(after) > headerIndent {
			body, err = p.parseIndentedBlock(headerIndent)
		}
	case startsExpression(next) || next.Kind == token.Return:
		body, err = p.parseInlineBlock()
	}
	if err != nil {
		return nil, err
	}

	end := arrow.End()
	if body != nil {
		end = p.endOf(body)
	}
	return ast.NewFunction(p.span(start.Start(), end), params, hasParens, bound, body), nil
}
