package parser

import (
	"github.com/funvibe/sim/internal/ast"
	"github.com/funvibe/sim/internal/diagnostics"
	"github.com/funvibe/sim/internal/token"
)

// parseStatement dispatches on the current token. It returns nil for an
// empty statement; callers check p.failed() to tell that apart from an error.
// On success curToken is the last token of the statement.
func (p *Parser) parseStatement() ast.Expression {
	switch p.curToken.Type {
	case token.SEMICOLON:
		return nil
	case token.FUNCTION:
		return p.parseFunctionDef()
	case token.IF:
		return p.parseIfExpr()
	case token.WHILE:
		return p.parseWhileLoop()
	case token.RETURN:
		return p.parseReturn()
	case token.IDENT:
		if p.peekTokenIs(token.LPAREN) {
			return p.parseCallStatement()
		}
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseAssignment()
		}
	}
	return p.parseExpressionStatement()
}

// function name(a, b) { ... }
func (p *Parser) parseFunctionDef() ast.Expression {
	def := &ast.FunctionDef{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	def.Name = p.curToken.Lexeme

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	def.Parameters = p.parseParameters()
	if p.failed() {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	def.Body = p.parseBlock()
	if p.failed() {
		return nil
	}
	return def
}

// parseParameters starts on '(' and ends on ')'.
func (p *Parser) parseParameters() []string {
	params := []string{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	params = append(params, p.curToken.Lexeme)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		params = append(params, p.curToken.Lexeme)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

// name(args);
func (p *Parser) parseCallStatement() ast.Expression {
	call := p.parseCall()
	if call == nil {
		return nil
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return call
}

// name = value;
func (p *Parser) parseAssignment() ast.Expression {
	stmt := &ast.Assignment{Token: p.curToken, Name: p.curToken.Lexeme}

	p.nextToken() // '='
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return stmt
}

// if (cond) { ... } [else { ... } | else if ...]
func (p *Parser) parseIfExpr() ast.Expression {
	expr := &ast.IfExpr{Token: p.curToken}

	expr.Condition = p.parseCondition()
	if expr.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	expr.Consequence = p.parseBlock()
	if p.failed() {
		return nil
	}

	if !p.peekTokenIs(token.ELSE) {
		return expr
	}
	p.nextToken()

	if p.peekTokenIs(token.IF) {
		p.nextToken()
		nested := p.parseIfExpr()
		if nested == nil {
			return nil
		}
		expr.Alternative = &ast.Block{
			Token:      nested.GetToken(),
			Statements: []ast.Expression{nested},
		}
		return expr
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	expr.Alternative = p.parseBlock()
	if p.failed() {
		return nil
	}
	return expr
}

// while (cond) { ... }
func (p *Parser) parseWhileLoop() ast.Expression {
	loop := &ast.WhileLoop{Token: p.curToken}

	loop.Condition = p.parseCondition()
	if loop.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	loop.Body = p.parseBlock()
	if p.failed() {
		return nil
	}
	return loop
}

// parseCondition parses "( expr )" following an if or while keyword.
func (p *Parser) parseCondition() ast.Expression {
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()

	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return cond
}

// return value;
func (p *Parser) parseReturn() ast.Expression {
	stmt := &ast.Return{Token: p.curToken}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return stmt
}

// expr [;]
func (p *Parser) parseExpressionStatement() ast.Expression {
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return expr
}

// parseBlock starts on '{' and ends on the matching '}'.
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Token: p.curToken, Statements: []ast.Expression{}}

	p.nextToken()

	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.fail(diagnostics.ErrP001, p.curToken, "expected %s, got %s", describe(token.RBRACE), p.curToken)
			return nil
		}
		stmt := p.parseStatement()
		if p.failed() {
			return nil
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}
