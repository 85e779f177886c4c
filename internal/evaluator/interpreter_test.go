package evaluator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/funvibe/sim/internal/config"
	"github.com/funvibe/sim/internal/diagnostics"
	"github.com/funvibe/sim/internal/evaluator"
)

func TestInterpreterRun(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"call result", "function add(a, b) { return a + b; }; add(2, 3);", "5"},
		{"top-level return", "x = 2; return x * 21;", "42"},
		{"no value", "x = 1;", "()"},
		{"string", `return "hi";`, `"hi"`},
		{"empty program", "", "()"},
		{"loop", "x = 0; while (x < 3) { x = x + 1; }; return x;", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := evaluator.NewInterpreter(nil).Run(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := result.Inspect(); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestInterpreterKeepsState(t *testing.T) {
	interp := evaluator.NewInterpreter(config.Default())

	steps := []struct {
		input    string
		expected string
	}{
		{"function double(n) { return n * 2; };", "()"},
		{"x = 21;", "()"},
		{"double(x);", "42"},
		{"x = x + 1; return x;", "22"},
	}
	for _, s := range steps {
		result, err := interp.Run(s.input)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", s.input, err)
		}
		if got := result.Inspect(); got != s.expected {
			t.Errorf("%q: expected %s, got %s", s.input, s.expected, got)
		}
	}

	// A failed run leaves earlier state intact.
	if _, err := interp.Run("y = undefined_name;"); err == nil {
		t.Fatal("expected an error")
	}
	result, err := interp.Run("return double(x);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Inspect() != "44" {
		t.Errorf("expected 44, got %s", result.Inspect())
	}
	if interp.Context().Depth() != 1 {
		t.Errorf("expected only the top-level scope, got %d", interp.Context().Depth())
	}
}

func TestInterpreterErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diagnostics.ErrorCode
		text  string
	}{
		{"lexical", "x = 1 $ 2;", diagnostics.ErrL001, "prog.sim:1:7: L001: unexpected character '$'"},
		{"structural", "x = (1;", diagnostics.ErrP001, "prog.sim:1:7: P001: expected ')', got ';'"},
		{"runtime", "x = 1;\ny = x / 0;", diagnostics.ErrR001, "prog.sim:2:7: R001: division by zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp := evaluator.NewInterpreter(nil)
			interp.FilePath = "prog.sim"
			_, err := interp.Run(tt.input)

			var diag *diagnostics.DiagnosticError
			if !errors.As(err, &diag) {
				t.Fatalf("expected *DiagnosticError, got %v", err)
			}
			if diag.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, diag.Code)
			}
			if diag.Error() != tt.text {
				t.Errorf("expected %q, got %q", tt.text, diag.Error())
			}
		})
	}
}

func TestInterpreterRuntimeErrorKind(t *testing.T) {
	_, err := evaluator.NewInterpreter(nil).Run("function f(a) {}; f(1, 2);")
	if !errors.Is(err, evaluator.ErrArity) {
		t.Fatalf("expected arity error through the diagnostic, got %v", err)
	}
	if !strings.Contains(err.Error(), "R001: function 'f' expects 1 arguments, got 2") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestInterpreterDialect(t *testing.T) {
	d := config.Default()
	d.Precedence = config.PrecedenceStandard
	d.BlockValue = config.BlockValueLast

	result, err := evaluator.NewInterpreter(d).Run("10 - 4 - 3;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Inspect() != "3" {
		t.Errorf("expected 3 under standard precedence, got %s", result.Inspect())
	}

	result, err = evaluator.NewInterpreter(nil).Run("return 10 - 4 - 3;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Inspect() != "9" {
		t.Errorf("expected 9 under flat precedence, got %s", result.Inspect())
	}
}

func TestInterpreterPipeline(t *testing.T) {
	interp := evaluator.NewInterpreter(nil)
	pctx := interp.Pipeline("x = 1; return x;")
	if pctx.Failed() {
		t.Fatalf("unexpected errors: %v", pctx.Err())
	}
	if len(pctx.TokenStream) == 0 || pctx.AstRoot == nil {
		t.Fatal("expected tokens and a tree")
	}
	if pctx.Runtime != interp.Context() {
		t.Error("expected the interpreter's context to be used")
	}
	res, ok := pctx.Result.(evaluator.Result)
	if !ok || !res.IsReturn() {
		t.Fatalf("expected a returning Result, got %#v", pctx.Result)
	}
}
