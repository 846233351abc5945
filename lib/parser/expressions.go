package parser

import (
	"github.com/vyPal/Ristretto/lib/ast"
	"github.com/vyPal/Ristretto/lib/lexer"
)

// precedences lists every infix operator and the tier it binds at. Each entry
// gets parseInfixExpression registered as its infix rule.
var precedences = map[lexer.Kind]ast.Precedence{
	lexer.Equal:       ast.Equals,
	lexer.NotEqual:    ast.Equals,
	lexer.LessThan:    ast.LessGreater,
	lexer.GreaterThan: ast.LessGreater,
	lexer.Plus:        ast.Sum,
	lexer.Minus:       ast.Sum,
	lexer.Slash:       ast.Product,
	lexer.Asterisk:    ast.Product,
}

func (p *Parser) peekPrecedence() ast.Precedence {
	if p, ok := precedences[p.peekToken.Kind]; ok {
		return p
	}
	return ast.Lowest
}

func (p *Parser) curPrecedence() ast.Precedence {
	if p, ok := precedences[p.curToken.Kind]; ok {
		return p
	}
	return ast.Lowest
}

// parseExpression parses the expression starting at curToken. It keeps
// folding infix operators into the left operand while the next operator binds
// tighter than precedence, and leaves curToken on the last token it used.
func (p *Parser) parseExpression(precedence ast.Precedence) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Kind]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for !p.peekTokenIs(lexer.Semicolon) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Kind]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		if leftExp = infix(leftExp); leftExp == nil {
			return nil
		}
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	return &ast.IntegerLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}
	p.nextToken()

	if expression.Right = p.parseExpression(ast.Prefix); expression.Right == nil {
		return nil
	}
	return expression
}

// parseInfixExpression parses the right operand at the operator's own
// precedence, so an operator of the same tier further right is left for the
// caller's loop. That makes every binary operator left-associative.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:      p.curToken,
		Operator:   p.curToken.Literal,
		Left:       left,
		Precedence: p.curPrecedence(),
	}
	p.nextToken()

	if expression.Right = p.parseExpression(expression.Precedence); expression.Right == nil {
		return nil
	}
	return expression
}
