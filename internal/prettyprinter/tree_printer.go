package prettyprinter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/sim/internal/ast"
)

// --- Tree Printer (Output shows node structure) ---

// TreePrinter renders a tree as an indented outline, one node per line with
// its source position.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

// Tree renders node and everything below it.
func Tree(node ast.Node) string {
	p := NewTreePrinter()
	node.Accept(p)
	return p.String()
}

func (p *TreePrinter) line(node ast.Node, format string, args ...interface{}) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	fmt.Fprintf(&p.buf, format, args...)
	if tok := node.GetToken(); tok.Line > 0 {
		fmt.Fprintf(&p.buf, " @%d:%d", tok.Line, tok.Column)
	}
	p.buf.WriteString("\n")
}

// label writes a child role such as "then" or "else" without a position.
func (p *TreePrinter) label(name string) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	p.buf.WriteString(name + ":\n")
}

func (p *TreePrinter) child(node ast.Node) {
	p.indent++
	node.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitBlock(n *ast.Block) {
	p.line(n, "Block")
	for _, stmt := range n.Statements {
		p.child(stmt)
	}
}

func (p *TreePrinter) VisitFunctionDef(n *ast.FunctionDef) {
	p.line(n, "FunctionDef %s(%s)", n.Name, strings.Join(n.Parameters, ", "))
	p.child(n.Body)
}

func (p *TreePrinter) VisitFunctionCall(n *ast.FunctionCall) {
	p.line(n, "FunctionCall %s/%d", n.Name, len(n.Arguments))
	for _, arg := range n.Arguments {
		p.child(arg)
	}
}

func (p *TreePrinter) VisitIfExpr(n *ast.IfExpr) {
	p.line(n, "IfExpr")
	p.child(n.Condition)
	p.indent++
	p.label("then")
	p.child(n.Consequence)
	if n.Alternative != nil {
		p.label("else")
		p.child(n.Alternative)
	}
	p.indent--
}

func (p *TreePrinter) VisitWhileLoop(n *ast.WhileLoop) {
	p.line(n, "WhileLoop")
	p.child(n.Condition)
	p.child(n.Body)
}

func (p *TreePrinter) VisitAssignment(n *ast.Assignment) {
	p.line(n, "Assignment %s", n.Name)
	p.child(n.Value)
}

func (p *TreePrinter) VisitBinaryOp(n *ast.BinaryOp) {
	p.line(n, "BinaryOp %s", n.Operator)
	p.child(n.Left)
	p.child(n.Right)
}

func (p *TreePrinter) VisitLiteral(n *ast.Literal) {
	switch n.Kind {
	case ast.IntLiteral:
		p.line(n, "Literal %s", strconv.FormatInt(n.Int, 10))
	case ast.StringLiteral:
		p.line(n, "Literal %q", n.Str)
	default:
		p.line(n, "Literal ()")
	}
}

func (p *TreePrinter) VisitVariable(n *ast.Variable) {
	p.line(n, "Variable %s", n.Name)
}

func (p *TreePrinter) VisitReturn(n *ast.Return) {
	p.line(n, "Return")
	p.child(n.Value)
}
