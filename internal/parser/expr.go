package parser

import (
	"github.com/bhvaleri/decaffeinate/internal/ast"
	"github.com/bhvaleri/decaffeinate/internal/diag"
	"github.com/bhvaleri/decaffeinate/internal/token"
)

// parseExpression handles the forms that extend to the end of their
// construct (switch, if, functions) and assignment, then binary operators.
func (p *Parser) parseExpression() (ast.Node, error) {
	switch tok := p.peek(); tok.Kind {
	case token.Switch:
		return p.parseSwitch()
	case token.If, token.Unless:
		return p.parseConditional()
	case token.Function:
		return p.parseFunction()
	case token.LParen:
		if p.isParamList() {
			return p.parseFunction()
		}
	}

	left, err := p.parseBinary(precLogicalOr)
	if err != nil {
		return nil, err
	}

	op := p.peek()
	if op.Kind != token.Operator || (op.Text != "=" && !compoundAssignOps[op.Text]) {
		return left, nil
	}
	if !isAssignable(left) {
		return nil, diag.New(diag.SynUnexpectedToken, "invalid assignment target", p.ctx, p.startOf(left), p.endOf(left))
	}
	p.next()
	if !startsExpression(p.peek()) {
		return nil, p.unexpected(p.peek())
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	sp := p.span(p.startOf(left), p.endOf(right))
	if op.Text == "=" {
		return ast.NewAssign(sp, left, right), nil
	}
	return ast.NewCompoundAssign(sp, op.Text, left, right), nil
}

func isAssignable(n ast.Node) bool {
	switch n.(type) {
	case *ast.Identifier, *ast.Member:
		return true
	}
	return false
}

func (p *Parser) parseBinary(minPrec int) (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op.Kind != token.Operator {
			return left, nil
		}
		prec := binaryPrec(op.Text)
		if prec == precNone || prec < minPrec {
			return left, nil
		}
		p.next()
		nextMin := prec + 1
		if prec == precExponent {
			nextMin = prec
		}
		right, err := p.parseBinary(nextMin)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(p.span(p.startOf(left), p.endOf(right)), op.Text, left, right)
	}
}

func (p *Parser) parseUnary() (ast.Node, error) {
	tok := p.peek()
	if tok.Kind != token.Operator || !isPrefixOperator(tok.Text) {
		return p.parsePostfix()
	}
	p.next()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return ast.NewUnary(p.span(tok.Start(), p.endOf(operand)), tok.Text, operand), nil
}

func (p *Parser) parsePostfix() (ast.Node, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peekKind() {
		case token.Dot:
			p.next()
			name, err := p.expect(token.Identifier, "property name")
			if err != nil {
				return nil, err
			}
			prop := ast.NewIdentifier(name.Span, name.Text)
			expr = ast.NewMember(p.span(p.startOf(expr), name.End()), expr, prop)
		case token.CallStart:
			call, err := p.parseCall(expr)
			if err != nil {
				return nil, err
			}
			expr = call
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseCall(callee ast.Node) (ast.Node, error) {
	p.next()
	p.depth++
	var args []ast.Node
	for p.peekKind() != token.CallEnd {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.peekKind() != token.Comma {
			break
		}
		p.next()
	}
	end, err := p.expect(token.CallEnd, "')'")
	p.depth--
	if err != nil {
		return nil, err
	}
	return ast.NewCall(p.span(p.startOf(callee), end.End()), callee, args), nil
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.Identifier:
		p.next()
		return ast.NewIdentifier(tok.Span, tok.Text), nil
	case token.Number:
		p.next()
		return ast.NewLiteral(ast.KindNumber, tok.Span, tok.Text), nil
	case token.String:
		p.next()
		return ast.NewLiteral(ast.KindString, tok.Span, tok.Text), nil
	case token.Bool:
		p.next()
		return ast.NewLiteral(ast.KindBool, tok.Span, tok.Text), nil
	case token.Null:
		p.next()
		return ast.NewLiteral(ast.KindNull, tok.Span, tok.Text), nil
	case token.Undefined:
		p.next()
		return ast.NewLiteral(ast.KindUndefined, tok.Span, tok.Text), nil
	case token.LParen:
		return p.parseParenthesized()
	case token.LBrace:
		return p.parseObject()
	}
	return nil, p.unexpected(tok)
}

// parseParenthesized returns the inner expression and records the
// parentheses as its outer extent.
func (p *Parser) parseParenthesized() (ast.Node, error) {
	open := p.next()
	p.depth++
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	closeTok, err := p.expect(token.RParen, "')'")
	p.depth--
	if err != nil {
		return nil, err
	}
	p.parens[inner] = p.tokSpan(open, closeTok)
	return inner, nil
}

func (p *Parser) parseObject() (ast.Node, error) {
	open := p.next()
	p.depth++
	var props []*ast.Property
	for p.peekKind() != token.RBrace {
		key, err := p.expect(token.Identifier, "property name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon, "':'"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		props = append(props, ast.NewProperty(
			p.span(key.Start(), p.endOf(value)),
			ast.NewIdentifier(key.Span, key.Text),
			value,
		))
		if p.peekKind() != token.Comma {
			break
		}
		p.next()
	}
	closeTok, err := p.expect(token.RBrace, "'}'")
	p.depth--
	if err != nil {
		return nil, err
	}
	return ast.NewObject(p.tokSpan(open, closeTok), props), nil
}
