package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/funvibe/sim/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// CodePrinter renders a tree back to source. Nested binary operations are
// always parenthesized, so the output shows how the parser grouped them and
// parses back to the same tree under either precedence dialect.
type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

// Program prints a root block as top-level statements, without braces.
func (p *CodePrinter) Program(root *ast.Block) string {
	for _, stmt := range root.Statements {
		p.statement(stmt)
		p.write("\n")
	}
	return p.String()
}

// Print renders a single node.
func Print(node ast.Node) string {
	p := NewCodePrinter()
	if root, ok := node.(*ast.Block); ok {
		return p.Program(root)
	}
	node.Accept(p)
	return p.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeIndent() {
	p.buf.WriteString(strings.Repeat("    ", p.indent))
}

// statement prints stmt with the terminator the parser expects.
func (p *CodePrinter) statement(stmt ast.Expression) {
	// "f(x) + 1;" would read back as a call statement missing its ';'
	if bin, ok := stmt.(*ast.BinaryOp); ok {
		if _, isCall := bin.Left.(*ast.FunctionCall); isCall {
			p.write("(")
			stmt.Accept(p)
			p.write(");")
			return
		}
	}
	stmt.Accept(p)
	switch stmt.(type) {
	case *ast.FunctionDef, *ast.IfExpr, *ast.WhileLoop, *ast.Block:
	default:
		p.write(";")
	}
}

func (p *CodePrinter) operand(expr ast.Expression) {
	if _, ok := expr.(*ast.BinaryOp); ok {
		p.write("(")
		expr.Accept(p)
		p.write(")")
		return
	}
	expr.Accept(p)
}

func (p *CodePrinter) VisitBlock(n *ast.Block) {
	if len(n.Statements) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent++
	for _, stmt := range n.Statements {
		p.writeIndent()
		p.statement(stmt)
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitFunctionDef(n *ast.FunctionDef) {
	p.write("function " + n.Name + "(" + strings.Join(n.Parameters, ", ") + ") ")
	n.Body.Accept(p)
}

func (p *CodePrinter) VisitFunctionCall(n *ast.FunctionCall) {
	p.write(n.Name + "(")
	for i, arg := range n.Arguments {
		if i > 0 {
			p.write(", ")
		}
		arg.Accept(p)
	}
	p.write(")")
}

func (p *CodePrinter) VisitIfExpr(n *ast.IfExpr) {
	p.write("if (")
	n.Condition.Accept(p)
	p.write(") ")
	n.Consequence.Accept(p)
	if n.Alternative != nil {
		p.write(" else ")
		n.Alternative.Accept(p)
	}
}

func (p *CodePrinter) VisitWhileLoop(n *ast.WhileLoop) {
	p.write("while (")
	n.Condition.Accept(p)
	p.write(") ")
	n.Body.Accept(p)
}

func (p *CodePrinter) VisitAssignment(n *ast.Assignment) {
	p.write(n.Name + " = ")
	n.Value.Accept(p)
}

func (p *CodePrinter) VisitBinaryOp(n *ast.BinaryOp) {
	p.operand(n.Left)
	p.write(" " + n.Operator.String() + " ")
	p.operand(n.Right)
}

func (p *CodePrinter) VisitLiteral(n *ast.Literal) {
	switch n.Kind {
	case ast.IntLiteral:
		p.write(strconv.FormatInt(n.Int, 10))
	case ast.StringLiteral:
		p.write("\"" + n.Str + "\"")
	default:
		p.write("()")
	}
}

func (p *CodePrinter) VisitVariable(n *ast.Variable) {
	p.write(n.Name)
}

func (p *CodePrinter) VisitReturn(n *ast.Return) {
	p.write("return ")
	n.Value.Accept(p)
}
