package ast

import (
	"strconv"

	"github.com/funvibe/sim/internal/token"
)

type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLess
	OpGreater
	OpEqual
)

var operatorSymbols = map[Operator]string{
	OpAdd:     "+",
	OpSub:     "-",
	OpMul:     "*",
	OpDiv:     "/",
	OpMod:     "%",
	OpLess:    "<",
	OpGreater: ">",
	OpEqual:   "==",
}

func (op Operator) String() string {
	if s, ok := operatorSymbols[op]; ok {
		return s
	}
	return "Operator(" + strconv.Itoa(int(op)) + ")"
}

// OperatorFor maps an operator token to its binary operator.
func OperatorFor(t token.TokenType) (Operator, bool) {
	switch t {
	case token.PLUS:
		return OpAdd, true
	case token.MINUS:
		return OpSub, true
	case token.ASTERISK:
		return OpMul, true
	case token.SLASH:
		return OpDiv, true
	case token.PERCENT:
		return OpMod, true
	case token.LT:
		return OpLess, true
	case token.GT:
		return OpGreater, true
	case token.EQ:
		return OpEqual, true
	}
	return 0, false
}

// BinaryOp: left op right
type BinaryOp struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator Operator
	Right    Expression
}

func (bo *BinaryOp) Accept(v Visitor)     { v.VisitBinaryOp(bo) }
func (bo *BinaryOp) expressionNode()      {}
func (bo *BinaryOp) TokenLiteral() string { return bo.Token.Lexeme }
func (bo *BinaryOp) GetToken() token.Token {
	if bo == nil {
		return token.Token{}
	}
	return bo.Token
}

type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	StringLiteral
	UnitLiteral
)

// Literal is an integer, a string, or unit.
type Literal struct {
	Token token.Token
	Kind  LiteralKind
	Int   int64
	Str   string
}

func NewIntLiteral(tok token.Token, v int64) *Literal {
	return &Literal{Token: tok, Kind: IntLiteral, Int: v}
}

func NewStringLiteral(tok token.Token, s string) *Literal {
	return &Literal{Token: tok, Kind: StringLiteral, Str: s}
}

func (l *Literal) Accept(v Visitor)     { v.VisitLiteral(l) }
func (l *Literal) expressionNode()      {}
func (l *Literal) TokenLiteral() string { return l.Token.Lexeme }
func (l *Literal) GetToken() token.Token {
	if l == nil {
		return token.Token{}
	}
	return l.Token
}

// Variable is a read of a name.
type Variable struct {
	Token token.Token
	Name  string
}

func (va *Variable) Accept(v Visitor)     { v.VisitVariable(va) }
func (va *Variable) expressionNode()      {}
func (va *Variable) TokenLiteral() string { return va.Token.Lexeme }
func (va *Variable) GetToken() token.Token {
	if va == nil {
		return token.Token{}
	}
	return va.Token
}
