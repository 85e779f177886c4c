package prettyprinter

import (
	"testing"

	"github.com/funvibe/sim/internal/ast"
	"github.com/funvibe/sim/internal/token"
)

func TestPrintNodes(t *testing.T) {
	one := ast.NewIntLiteral(token.Token{}, 1)
	two := ast.NewIntLiteral(token.Token{}, 2)
	x := &ast.Variable{Name: "x"}

	tests := []struct {
		name     string
		node     ast.Node
		expected string
	}{
		{"int", one, "1"},
		{"string", ast.NewStringLiteral(token.Token{}, "hi"), `"hi"`},
		{"unit", &ast.Literal{Kind: ast.UnitLiteral}, "()"},
		{"variable", x, "x"},
		{
			"nested binary",
			&ast.BinaryOp{Left: &ast.BinaryOp{Left: one, Operator: ast.OpSub, Right: two}, Operator: ast.OpMul, Right: x},
			"(1 - 2) * x",
		},
		{"assignment", &ast.Assignment{Name: "x", Value: one}, "x = 1"},
		{"return", &ast.Return{Value: x}, "return x"},
		{"call", &ast.FunctionCall{Name: "f", Arguments: []ast.Expression{one, x}}, "f(1, x)"},
		{"empty block", &ast.Block{}, ""},
		{
			"function",
			&ast.FunctionDef{Name: "f", Parameters: []string{"a"}, Body: &ast.Block{Statements: []ast.Expression{&ast.Return{Value: x}}}},
			"function f(a) {\n    return x;\n}",
		},
		{
			"while",
			&ast.WhileLoop{Condition: x, Body: &ast.Block{}},
			"while (x) {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(tt.node); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestProgramTerminators(t *testing.T) {
	call := &ast.FunctionCall{Name: "f", Arguments: []ast.Expression{}}
	root := &ast.Block{Statements: []ast.Expression{
		&ast.Assignment{Name: "x", Value: ast.NewIntLiteral(token.Token{}, 1)},
		&ast.IfExpr{Condition: &ast.Variable{Name: "x"}, Consequence: &ast.Block{}, Alternative: &ast.Block{}},
		&ast.BinaryOp{Left: call, Operator: ast.OpAdd, Right: ast.NewIntLiteral(token.Token{}, 1)},
	}}

	expected := "x = 1;\nif (x) {} else {}\n(f() + 1);\n"
	if got := Print(root); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestTreeOutline(t *testing.T) {
	at := func(line, col int) token.Token { return token.Token{Line: line, Column: col} }
	x := &ast.Variable{Token: at(2, 5), Name: "x"}
	root := &ast.Block{Token: at(1, 1), Statements: []ast.Expression{
		&ast.Assignment{Token: at(1, 1), Name: "x", Value: &ast.BinaryOp{
			Token:    at(1, 7),
			Left:     ast.NewIntLiteral(at(1, 5), 1),
			Operator: ast.OpAdd,
			Right:    ast.NewStringLiteral(at(1, 9), "a"),
		}},
		&ast.IfExpr{
			Token:       at(2, 1),
			Condition:   x,
			Consequence: &ast.Block{Token: at(2, 8), Statements: []ast.Expression{&ast.FunctionCall{Token: at(2, 10), Name: "f", Arguments: []ast.Expression{x}}}},
			Alternative: &ast.Block{Token: at(2, 24), Statements: []ast.Expression{&ast.Return{Token: at(2, 26), Value: &ast.Literal{Kind: ast.UnitLiteral}}}},
		},
	}}

	expected := `Block @1:1
  Assignment x @1:1
    BinaryOp + @1:7
      Literal 1 @1:5
      Literal "a" @1:9
  IfExpr @2:1
    Variable x @2:5
    then:
      Block @2:8
        FunctionCall f/1 @2:10
          Variable x @2:5
    else:
      Block @2:24
        Return @2:26
          Literal ()
`
	if got := Tree(root); got != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, got)
	}
}

func TestTreeWithoutPositions(t *testing.T) {
	loop := &ast.WhileLoop{
		Condition: &ast.Variable{Name: "n"},
		Body: &ast.Block{Statements: []ast.Expression{
			&ast.FunctionDef{Name: "g", Parameters: []string{"a", "b"}, Body: &ast.Block{}},
		}},
	}
	expected := "WhileLoop\n  Variable n\n  Block\n    FunctionDef g(a, b)\n      Block\n"
	if got := Tree(loop); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
