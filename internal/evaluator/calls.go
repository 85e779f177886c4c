package evaluator

import (
	"strconv"

	"github.com/funvibe/sim/internal/ast"
)

// evalFunctionCall binds arguments in a fresh scope and runs the body.
// A returning result from the body is handed back with its tag intact;
// the caller treats it like any other nested result.
func (e *Evaluator) evalFunctionCall(node *ast.FunctionCall, ctx *Context) (Result, error) {
	fn, ok := ctx.Function(node.Name)
	if !ok {
		if b, ok := ctx.Builtin(node.Name); ok {
			return e.evalBuiltinCall(node, b, ctx)
		}
		return Result{}, e.newError(ctx, node, ErrUndefinedFunction, "call", "function '%s' not found", node.Name)
	}
	if len(node.Arguments) != len(fn.Parameters) {
		return Result{}, e.arityError(ctx, node, fn.Name, len(fn.Parameters), len(node.Arguments))
	}

	args, ret, err := e.evalArguments(node, ctx, fn.Parameters)
	if err != nil || ret != nil {
		return derefResult(ret), err
	}
	return e.apply(ctx, fn, args, node.Token.Line, node.Token.Column)
}

// CallFunction calls a defined function with already evaluated arguments,
// as if it were called from the top level.
func (e *Evaluator) CallFunction(ctx *Context, name string, args []Object) (Result, error) {
	fn, ok := ctx.Function(name)
	if !ok {
		return Result{}, e.newError(ctx, nil, ErrUndefinedFunction, "call", "function '%s' not found", name)
	}
	if len(args) != len(fn.Parameters) {
		return Result{}, e.arityError(ctx, nil, name, len(fn.Parameters), len(args))
	}
	for i, arg := range args {
		if arg == nil || arg.Type() == UNIT_OBJ {
			return Result{}, e.newError(ctx, nil, ErrUnitValue, "call",
				"argument '%s' of '%s' is a unit value", fn.Parameters[i], name)
		}
	}
	return e.apply(ctx, fn, args, 0, 0)
}

func (e *Evaluator) apply(ctx *Context, fn *Function, args []Object, line, column int) (Result, error) {
	e.PushCall(fn.Name, line, column)
	ctx.PushScope()
	defer func() {
		ctx.PopScope()
		e.PopCall()
	}()

	for i, param := range fn.Parameters {
		ctx.Set(param, args[i])
	}
	return e.Eval(fn.Body, ctx)
}

func (e *Evaluator) evalBuiltinCall(node *ast.FunctionCall, b *Builtin, ctx *Context) (Result, error) {
	if b.Arity >= 0 && len(node.Arguments) != b.Arity {
		return Result{}, e.arityError(ctx, node, b.Name, b.Arity, len(node.Arguments))
	}

	args, ret, err := e.evalArguments(node, ctx, nil)
	if err != nil || ret != nil {
		return derefResult(ret), err
	}

	obj, err := b.Fn(args...)
	if err != nil {
		return Result{}, e.newError(ctx, node, ErrHost, "call", "%s: %v", b.Name, err)
	}
	if obj == nil {
		obj = UNIT
	}
	return Value(obj), nil
}

// evalArguments evaluates arguments left to right in the caller's scope,
// before the callee's scope exists. A returning argument stops the call and
// comes back as ret.
func (e *Evaluator) evalArguments(node *ast.FunctionCall, ctx *Context, params []string) ([]Object, *Result, error) {
	args := make([]Object, len(node.Arguments))
	for i, arg := range node.Arguments {
		res, err := e.Eval(arg, ctx)
		if err != nil {
			return nil, nil, err
		}
		if res.IsReturn() {
			return nil, &res, nil
		}
		if res.Value.Type() == UNIT_OBJ {
			name := strconv.Itoa(i + 1)
			if i < len(params) {
				name = "'" + params[i] + "'"
			}
			return nil, nil, e.newError(ctx, arg, ErrUnitValue, "call",
				"argument %s of '%s' is a unit value", name, node.Name)
		}
		args[i] = res.Value
	}
	return args, nil, nil
}

func (e *Evaluator) arityError(ctx *Context, node ast.Node, name string, want, got int) *RuntimeError {
	return e.newError(ctx, node, ErrArity, "call", "function '%s' expects %d arguments, got %d", name, want, got)
}

func derefResult(r *Result) Result {
	if r == nil {
		return Result{}
	}
	return *r
}

// PushCall adds a call frame to the stack
func (e *Evaluator) PushCall(name string, line, column int) {
	e.CallStack = append(e.CallStack, CallFrame{
		Name:   name,
		Line:   line,
		Column: column,
	})
}

// PopCall removes the top call frame
func (e *Evaluator) PopCall() {
	if len(e.CallStack) > 0 {
		e.CallStack = e.CallStack[:len(e.CallStack)-1]
	}
}
