package parser

import (
	"github.com/funvibe/sim/internal/ast"
	"github.com/funvibe/sim/internal/config"
	"github.com/funvibe/sim/internal/diagnostics"
	"github.com/funvibe/sim/internal/token"
)

// parseExpression parses one expression starting at curToken and leaves
// curToken on its last token.
//
// In the flat dialect every operator binds the same and the right operand is
// a whole expression again, so chains lean right: 10 - 4 - 3 is 10 - (4 - 3).
// The standard dialect climbs the precedence table and associates left.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrimary()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		p.nextToken()
		left = p.parseBinaryOp(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) parseBinaryOp(left ast.Expression) ast.Expression {
	op, _ := ast.OperatorFor(p.curToken.Type)
	expr := &ast.BinaryOp{Token: p.curToken, Left: left, Operator: op}

	precedence := p.curPrecedence()
	p.nextToken()

	if p.precedence == config.PrecedenceFlat {
		expr.Right = p.parseExpression(LOWEST)
	} else {
		expr.Right = p.parseExpression(precedence)
	}
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) peekPrecedence() int {
	return p.precedenceOf(p.peekToken.Type)
}

func (p *Parser) curPrecedence() int {
	return p.precedenceOf(p.curToken.Type)
}

func (p *Parser) precedenceOf(t token.TokenType) int {
	prec, ok := standardPrecedences[t]
	if !ok {
		return LOWEST
	}
	if p.precedence == config.PrecedenceFlat {
		return SUM
	}
	return prec
}

// parsePrimary handles literals, variables, calls and parenthesized
// expressions.
func (p *Parser) parsePrimary() ast.Expression {
	switch p.curToken.Type {
	case token.INT:
		v, ok := p.curToken.Literal.(int64)
		if !ok {
			p.fail(diagnostics.ErrP002, p.curToken, "malformed integer literal %s", p.curToken.Lexeme)
			return nil
		}
		return ast.NewIntLiteral(p.curToken, v)
	case token.STRING:
		s, _ := p.curToken.Literal.(string)
		return ast.NewStringLiteral(p.curToken, s)
	case token.IDENT:
		if p.peekTokenIs(token.LPAREN) {
			call := p.parseCall()
			if call == nil {
				return nil
			}
			return call
		}
		return &ast.Variable{Token: p.curToken, Name: p.curToken.Lexeme}
	case token.LPAREN:
		return p.parseGroupedExpression()
	}
	p.fail(diagnostics.ErrP002, p.curToken, "expected expression, got %s", p.curToken)
	return nil
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken() // consume '('

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

// parseCall starts on the function name and ends on ')'.
func (p *Parser) parseCall() *ast.FunctionCall {
	call := &ast.FunctionCall{Token: p.curToken, Name: p.curToken.Lexeme}

	p.nextToken() // '('
	call.Arguments = p.parseCallArguments()
	if p.failed() {
		return nil
	}
	return call
}

func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}

	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil
	}
	args = append(args, arg)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return args
}
