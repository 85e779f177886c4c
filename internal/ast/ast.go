package ast

import (
	"github.com/funvibe/sim/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
	Accept(v Visitor)
}

// Expression is every node of the language: statements are expressions
// whose value is usually discarded.
type Expression interface {
	Node
	expressionNode()
}

// Visitor has one method per node kind. A new node kind extends this
// interface, so every implementation stops compiling until it handles it.
type Visitor interface {
	VisitFunctionDef(n *FunctionDef)
	VisitFunctionCall(n *FunctionCall)
	VisitIfExpr(n *IfExpr)
	VisitWhileLoop(n *WhileLoop)
	VisitAssignment(n *Assignment)
	VisitBinaryOp(n *BinaryOp)
	VisitLiteral(n *Literal)
	VisitVariable(n *Variable)
	VisitBlock(n *Block)
	VisitReturn(n *Return)
}

// Block is an ordered statement sequence. The program root is a Block.
type Block struct {
	Token      token.Token // the '{' token, or the first token of a program
	Statements []Expression
}

func (b *Block) Accept(v Visitor)     { v.VisitBlock(b) }
func (b *Block) expressionNode()      {}
func (b *Block) TokenLiteral() string { return b.Token.Lexeme }
func (b *Block) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// FunctionDef: function name(a, b) { ... }
type FunctionDef struct {
	Token      token.Token // the 'function' token
	Name       string
	Parameters []string
	Body       *Block
}

func (fd *FunctionDef) Accept(v Visitor)     { v.VisitFunctionDef(fd) }
func (fd *FunctionDef) expressionNode()      {}
func (fd *FunctionDef) TokenLiteral() string { return fd.Token.Lexeme }
func (fd *FunctionDef) GetToken() token.Token {
	if fd == nil {
		return token.Token{}
	}
	return fd.Token
}

// FunctionCall: name(arg, ...)
type FunctionCall struct {
	Token     token.Token // the function name token
	Name      string
	Arguments []Expression
}

func (fc *FunctionCall) Accept(v Visitor)     { v.VisitFunctionCall(fc) }
func (fc *FunctionCall) expressionNode()      {}
func (fc *FunctionCall) TokenLiteral() string { return fc.Token.Lexeme }
func (fc *FunctionCall) GetToken() token.Token {
	if fc == nil {
		return token.Token{}
	}
	return fc.Token
}

// IfExpr: if (cond) { ... } else { ... }
type IfExpr struct {
	Token       token.Token // the 'if' token
	Condition   Expression
	Consequence *Block
	Alternative *Block // nil without else
}

func (ie *IfExpr) Accept(v Visitor)     { v.VisitIfExpr(ie) }
func (ie *IfExpr) expressionNode()      {}
func (ie *IfExpr) TokenLiteral() string { return ie.Token.Lexeme }
func (ie *IfExpr) GetToken() token.Token {
	if ie == nil {
		return token.Token{}
	}
	return ie.Token
}

// WhileLoop: while (cond) { ... }
type WhileLoop struct {
	Token     token.Token // the 'while' token
	Condition Expression
	Body      *Block
}

func (wl *WhileLoop) Accept(v Visitor)     { v.VisitWhileLoop(wl) }
func (wl *WhileLoop) expressionNode()      {}
func (wl *WhileLoop) TokenLiteral() string { return wl.Token.Lexeme }
func (wl *WhileLoop) GetToken() token.Token {
	if wl == nil {
		return token.Token{}
	}
	return wl.Token
}

// Assignment: name = value;
type Assignment struct {
	Token token.Token // the name token
	Name  string
	Value Expression
}

func (a *Assignment) Accept(v Visitor)     { v.VisitAssignment(a) }
func (a *Assignment) expressionNode()      {}
func (a *Assignment) TokenLiteral() string { return a.Token.Lexeme }
func (a *Assignment) GetToken() token.Token {
	if a == nil {
		return token.Token{}
	}
	return a.Token
}

// Return: return value;
type Return struct {
	Token token.Token // the 'return' token
	Value Expression
}

func (r *Return) Accept(v Visitor)     { v.VisitReturn(r) }
func (r *Return) expressionNode()      {}
func (r *Return) TokenLiteral() string { return r.Token.Lexeme }
func (r *Return) GetToken() token.Token {
	if r == nil {
		return token.Token{}
	}
	return r.Token
}
