package evaluator

import (
	"testing"
)

func TestContextScopes(t *testing.T) {
	ctx := NewContext()
	ctx.Set("x", &Integer{Value: 1})

	ctx.PushScope()
	if ctx.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", ctx.Depth())
	}
	if v, ok := ctx.Get("x"); !ok || v.(*Integer).Value != 1 {
		t.Errorf("expected outer x visible, got %v", v)
	}

	ctx.Set("x", &Integer{Value: 2})
	if v, _ := ctx.Get("x"); v.(*Integer).Value != 2 {
		t.Errorf("expected inner x to shadow, got %v", v)
	}
	if v, ok := ctx.Current().Get("x"); !ok || v.(*Integer).Value != 2 {
		t.Errorf("expected x bound in the inner scope, got %v", v)
	}

	ctx.PopScope()
	if v, _ := ctx.Get("x"); v.(*Integer).Value != 1 {
		t.Errorf("expected outer x restored, got %v", v)
	}

	// The top-level scope survives extra pops.
	ctx.PopScope()
	ctx.PopScope()
	if ctx.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", ctx.Depth())
	}
	if _, ok := ctx.Get("x"); !ok {
		t.Error("top-level binding lost")
	}
}

func TestContextFunctions(t *testing.T) {
	ctx := NewContext()
	if _, ok := ctx.Function("f"); ok {
		t.Fatal("unexpected function f")
	}
	ctx.DefineFunction(&Function{Name: "f", Parameters: []string{"a"}})
	ctx.DefineFunction(&Function{Name: "f", Parameters: []string{"a", "b"}})

	fn, ok := ctx.Function("f")
	if !ok || len(fn.Parameters) != 2 {
		t.Errorf("expected the later definition, got %v", fn)
	}
	if got := fn.Inspect(); got != "function f(a, b) { ... }" {
		t.Errorf("unexpected Inspect %q", got)
	}
}

func TestContextIDsDiffer(t *testing.T) {
	if NewContext().ID == NewContext().ID {
		t.Error("expected distinct run IDs")
	}
}

func TestObjectHash(t *testing.T) {
	pairs := []struct {
		name string
		a, b Object
		same bool
	}{
		{"equal integers", &Integer{Value: 42}, &Integer{Value: 42}, true},
		{"different integers", &Integer{Value: 1}, &Integer{Value: 2}, false},
		{"equal strings", &String{Value: "hi"}, &String{Value: "hi"}, true},
		{"different strings", &String{Value: "hi"}, &String{Value: "ho"}, false},
		{"same signature", &Function{Name: "f", Parameters: []string{"a"}}, &Function{Name: "f", Parameters: []string{"a"}}, true},
		{"other parameters", &Function{Name: "f", Parameters: []string{"a"}}, &Function{Name: "f", Parameters: []string{"b"}}, false},
		{"builtins by name", &Builtin{Name: "len"}, &Builtin{Name: "len", Arity: 1}, true},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Hash() == tt.b.Hash(); got != tt.same {
				t.Errorf("expected same hash %v for %s and %s", tt.same, tt.a.Inspect(), tt.b.Inspect())
			}
		})
	}
	if UNIT.Hash() != 0 {
		t.Errorf("expected unit hash 0, got %d", UNIT.Hash())
	}
}

func TestResult(t *testing.T) {
	v := Value(&Integer{Value: 3})
	r := Returning(&Integer{Value: 3})

	if v.IsReturn() || !r.IsReturn() {
		t.Errorf("unexpected kinds %v / %v", v.Kind, r.Kind)
	}
	if v.String() != "3" || r.String() != "return 3" {
		t.Errorf("unexpected strings %q / %q", v.String(), r.String())
	}
	if (Result{}).String() != "<nil>" {
		t.Errorf("unexpected zero Result string %q", Result{}.String())
	}
}

func TestObjects(t *testing.T) {
	tests := []struct {
		obj     Object
		typ     ObjectType
		inspect string
	}{
		{&Integer{Value: -4}, INTEGER_OBJ, "-4"},
		{&String{Value: "a b"}, STRING_OBJ, `"a b"`},
		{UNIT, UNIT_OBJ, "()"},
	}
	for _, tt := range tests {
		if tt.obj.Type() != tt.typ || tt.obj.Inspect() != tt.inspect {
			t.Errorf("expected %s %s, got %s %s", tt.typ, tt.inspect, tt.obj.Type(), tt.obj.Inspect())
		}
	}
}
