package parser

import (
	"fmt"

	"github.com/funvibe/sim/internal/ast"
	"github.com/funvibe/sim/internal/config"
	"github.com/funvibe/sim/internal/diagnostics"
	"github.com/funvibe/sim/internal/token"
)

const (
	_ int = iota
	LOWEST
	COMPARE // == < >
	SUM     // + -
	PRODUCT // * / %
)

var standardPrecedences = map[token.TokenType]int{
	token.EQ:       COMPARE,
	token.LT:       COMPARE,
	token.GT:       COMPARE,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
}

type Option func(*Parser)

// WithPrecedence selects how binary operators group.
func WithPrecedence(mode config.Precedence) Option {
	return func(p *Parser) { p.precedence = mode }
}

// WithDialect applies the parser-relevant settings of a dialect.
func WithDialect(d *config.Dialect) Option {
	return func(p *Parser) {
		if d != nil {
			p.precedence = d.Precedence
		}
	}
}

// Parser is a recursive-descent parser over a complete token slice. It
// stops at the first structural error.
type Parser struct {
	tokens []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	precedence config.Precedence
	err        *diagnostics.DiagnosticError
}

func New(tokens []token.Token, opts ...Option) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		var line, col int
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			line, col = last.Line, last.Column+len(last.Lexeme)
		}
		tokens = append(tokens[:len(tokens):len(tokens)], token.Token{Type: token.EOF, Line: line, Column: col})
	}
	p := &Parser{tokens: tokens, pos: -1, precedence: config.PrecedenceFlat}
	for _, opt := range opts {
		opt(p)
	}
	// One step sets both curToken and peekToken
	p.nextToken()
	return p
}

// Parse parses a whole program into its root block.
func Parse(tokens []token.Token, opts ...Option) (*ast.Block, error) {
	p := New(tokens, opts...)
	program := p.ParseProgram()
	if err := p.Err(); err != nil {
		return nil, err
	}
	return program, nil
}

// Err returns the first parse error, if any.
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.curToken = p.tokens[p.pos]
	if p.pos+1 < len(p.tokens) {
		p.peekToken = p.tokens[p.pos+1]
	} else {
		p.peekToken = p.curToken
	}
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek advances only when the next token has the wanted type.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.fail(diagnostics.ErrP001, p.peekToken, "expected %s, got %s", describe(t), p.peekToken)
}

func (p *Parser) fail(code diagnostics.ErrorCode, tok token.Token, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = diagnostics.NewError(code, tok, fmt.Sprintf(format, args...))
}

func (p *Parser) failed() bool {
	return p.err != nil
}

// ParseProgram parses statements until end of input. On error the returned
// block holds the statements parsed so far and Err reports the failure.
func (p *Parser) ParseProgram() *ast.Block {
	program := &ast.Block{Token: p.curToken, Statements: []ast.Expression{}}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if p.failed() {
			break
		}
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

func describe(t token.TokenType) string {
	switch t {
	case token.IDENT:
		return "identifier"
	case token.INT:
		return "integer"
	case token.STRING:
		return "string"
	case token.EOF:
		return "end of input"
	case token.FUNCTION, token.IF, token.ELSE, token.WHILE, token.RETURN:
		return "'" + token.KeywordName(t) + "'"
	}
	return "'" + string(t) + "'"
}
