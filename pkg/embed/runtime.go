// Package sim embeds the sim interpreter in Go programs.
package sim

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/funvibe/sim/internal/config"
	"github.com/funvibe/sim/internal/evaluator"
	"github.com/funvibe/sim/internal/lexer"
	"github.com/funvibe/sim/internal/token"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Runtime wraps an interpreter session and provides a high-level embedding
// API. Definitions and variables persist across Eval, LoadFile and Call.
// A Runtime is not safe for concurrent use.
type Runtime struct {
	interp     *evaluator.Interpreter
	marshaller *Marshaller
}

// New creates a runtime with the default dialect.
func New() *Runtime {
	return newRuntime(config.Default())
}

// NewFromConfig creates a runtime with the dialect read from a YAML file.
func NewFromConfig(path string) (*Runtime, error) {
	d, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return newRuntime(d), nil
}

func newRuntime(d *config.Dialect) *Runtime {
	return &Runtime{
		interp:     evaluator.NewInterpreter(d),
		marshaller: NewMarshaller(),
	}
}

// SessionID identifies this runtime in error reports.
func (r *Runtime) SessionID() string {
	return r.interp.Context().ID.String()
}

// Bind registers a Go function so programs can call it by name.
// A trailing error result is reported as a runtime error.
func (r *Runtime) Bind(name string, fn interface{}) error {
	if err := checkName(name); err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		return fmt.Errorf("bind %s: %T is not a function, use Set for values", name, fn)
	}
	if fv.IsNil() {
		return fmt.Errorf("bind %s: nil %T", name, fn)
	}

	arity := fv.Type().NumIn()
	if fv.Type().IsVariadic() {
		arity = -1
	}
	r.interp.Context().DefineBuiltin(&evaluator.Builtin{
		Name:  name,
		Arity: arity,
		Fn: func(args ...evaluator.Object) (evaluator.Object, error) {
			return r.hostCall(fv, args)
		},
	})
	return nil
}

func (r *Runtime) hostCall(fn reflect.Value, args []evaluator.Object) (evaluator.Object, error) {
	// Convert args from sim to Go
	fnType := fn.Type()
	numIn := fnType.NumIn()
	isVariadic := fnType.IsVariadic()

	if isVariadic && len(args) < numIn-1 {
		return nil, fmt.Errorf("expected at least %d arguments, got %d", numIn-1, len(args))
	}

	goArgs := make([]reflect.Value, len(args))
	for i, arg := range args {
		var targetType reflect.Type
		if isVariadic && i >= numIn-1 {
			targetType = fnType.In(numIn - 1).Elem()
		} else {
			targetType = fnType.In(i)
		}

		val, err := r.marshaller.FromValue(arg, targetType)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		rv := reflect.ValueOf(val)
		if !rv.IsValid() || !rv.Type().AssignableTo(targetType) {
			return nil, fmt.Errorf("argument %d: cannot use %s as %s", i+1, arg.Type(), targetType)
		}
		goArgs[i] = rv
	}

	results := fn.Call(goArgs)

	// A trailing error is split off first
	if n := len(results); n > 0 && fnType.Out(n-1) == errorType {
		if err, _ := results[n-1].Interface().(error); err != nil {
			return nil, err
		}
		results = results[:n-1]
	}

	switch len(results) {
	case 0:
		return evaluator.UNIT, nil
	case 1:
		return r.marshaller.ToValue(results[0].Interface())
	}
	return nil, errors.New("functions with more than one result are not supported")
}

// Set binds a top-level variable.
func (r *Runtime) Set(name string, val interface{}) error {
	if err := checkName(name); err != nil {
		return fmt.Errorf("set: %w", err)
	}
	obj, err := r.marshaller.ToValue(val)
	if err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	if obj.Type() == evaluator.UNIT_OBJ {
		return fmt.Errorf("set %s: %w", name, evaluator.ErrUnitValue)
	}
	r.interp.Context().Set(name, obj)
	return nil
}

// Get reads a top-level variable.
func (r *Runtime) Get(name string) (interface{}, error) {
	obj, ok := r.interp.Context().Get(name)
	if !ok {
		return nil, fmt.Errorf("variable '%s' not found", name)
	}
	return r.marshaller.FromValue(obj, nil)
}

// Call calls a function defined by an earlier Eval or LoadFile.
func (r *Runtime) Call(funcName string, args ...interface{}) (interface{}, error) {
	simArgs := make([]evaluator.Object, len(args))
	for i, arg := range args {
		obj, err := r.marshaller.ToValue(arg)
		if err != nil {
			return nil, err
		}
		simArgs[i] = obj
	}

	result, err := r.interp.Call(funcName, simArgs...)
	if err != nil {
		return nil, err
	}
	return r.marshaller.FromValue(result, nil)
}

// Eval runs a program text. The result is the value of a top-level
// return or, under block_value: last, of the last statement; nil for unit.
func (r *Runtime) Eval(code string) (interface{}, error) {
	r.interp.FilePath = "<eval>"
	result, err := r.interp.Run(code)
	if err != nil {
		return nil, err
	}
	return r.marshaller.FromValue(result, nil)
}

// LoadFile runs a source file in this runtime.
func (r *Runtime) LoadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	r.interp.FilePath = path
	_, err = r.interp.Run(string(content))
	return err
}

// checkName accepts exactly what a program could write as an identifier.
func checkName(name string) error {
	if token.IsKeyword(name) {
		return fmt.Errorf("%q is a reserved word", name)
	}
	tokens, err := lexer.Tokenize(name)
	if err != nil || len(tokens) != 2 || tokens[0].Type != token.IDENT || tokens[0].Lexeme != name {
		return fmt.Errorf("%q is not a valid name", name)
	}
	return nil
}
