package parser_test

import (
	"errors"
	"testing"

	"github.com/funvibe/sim/internal/diagnostics"
	"github.com/funvibe/sim/internal/lexer"
	"github.com/funvibe/sim/internal/parser"
	"github.com/funvibe/sim/internal/pipeline"
)

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		code    diagnostics.ErrorCode
		message string
	}{
		{"missing semicolon after assignment", "x = 1", diagnostics.ErrP001, "expected ';', got end of input"},
		{"two values", "x = 1 2;", diagnostics.ErrP001, "expected ';', got integer 2"},
		{"missing function name", "function (a) {}", diagnostics.ErrP001, "expected identifier, got '('"},
		{"missing comma in parameters", "function f(a b) {}", diagnostics.ErrP001, `expected ')', got identifier "b"`},
		{"literal parameter", "function f(1) {}", diagnostics.ErrP001, "expected identifier, got integer 1"},
		{"if without parens", "if x { }", diagnostics.ErrP001, `expected '(', got identifier "x"`},
		{"unclosed block", "while (x) { x = 1;", diagnostics.ErrP001, "expected '}', got end of input"},
		{"return without semicolon", "return 1", diagnostics.ErrP001, "expected ';', got end of input"},
		{"unclosed call", "f(1, 2", diagnostics.ErrP001, "expected ')', got end of input"},
		{"call statement without semicolon", "add(1) 2;", diagnostics.ErrP001, "expected ';', got integer 2"},
		{"else without block", "if (x) { } else x = 1;", diagnostics.ErrP001, `expected '{', got identifier "x"`},
		{"unclosed group", "x = (1 + 2;", diagnostics.ErrP001, "expected ')', got ';'"},
		{"missing value", "x = ;", diagnostics.ErrP002, "expected expression, got ';'"},
		{"trailing comma", "f(1,);", diagnostics.ErrP002, "expected expression, got ')'"},
		{"dangling operator", "x = 1 +;", diagnostics.ErrP002, "expected expression, got ';'"},
		{"stray brace", "} x = 1;", diagnostics.ErrP002, "expected expression, got '}'"},
		{"keyword as value", "x = while;", diagnostics.ErrP002, "expected expression, got 'while'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lexer.Tokenize(tt.input)
			if err != nil {
				t.Fatalf("tokenize failed: %v", err)
			}
			_, err = parser.Parse(tokens)
			if err == nil {
				t.Fatalf("expected parse error for %q", tt.input)
			}
			var diag *diagnostics.DiagnosticError
			if !errors.As(err, &diag) {
				t.Fatalf("expected *DiagnosticError, got %T", err)
			}
			if diag.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, diag.Code)
			}
			if diag.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, diag.Message)
			}
		})
	}
}

func TestParserErrorPosition(t *testing.T) {
	tokens, err := lexer.Tokenize("x = 1;\ny = (2 + 3;\n")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	_, err = parser.Parse(tokens)
	var diag *diagnostics.DiagnosticError
	if !errors.As(err, &diag) {
		t.Fatalf("expected *DiagnosticError, got %v", err)
	}
	if diag.Line != 2 || diag.Column != 11 {
		t.Errorf("expected error at 2:11, got %d:%d", diag.Line, diag.Column)
	}
	if got := diag.Error(); got != "2:11: P001: expected ')', got ';'" {
		t.Errorf("unexpected error text %q", got)
	}
}

func TestParserProcessor(t *testing.T) {
	ctx := pipeline.NewPipelineContext("x = 1;\nif (x) { y = 2; }")
	ctx.FilePath = "prog.sim"
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if ctx.Failed() {
		t.Fatalf("unexpected errors: %v", ctx.Err())
	}
	if ctx.AstRoot == nil || len(ctx.AstRoot.Statements) != 2 {
		t.Fatalf("expected a root block with 2 statements, got %#v", ctx.AstRoot)
	}

	ctx = pipeline.NewPipelineContext("x = ")
	ctx.FilePath = "prog.sim"
	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if !ctx.Failed() {
		t.Fatal("expected a parse failure")
	}
	if got := ctx.Err().Error(); got != "prog.sim:1:5: P002: expected expression, got end of input" {
		t.Errorf("unexpected error text %q", got)
	}
}

func TestLexerFailureSkipsParser(t *testing.T) {
	ctx := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(pipeline.NewPipelineContext("x = @;"))
	if len(ctx.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %d", len(ctx.Errors))
	}
	if ctx.Errors[0].Code != diagnostics.ErrL001 {
		t.Errorf("expected %s, got %s", diagnostics.ErrL001, ctx.Errors[0].Code)
	}
	if ctx.AstRoot != nil {
		t.Errorf("expected no tree after a lexical error")
	}
}
