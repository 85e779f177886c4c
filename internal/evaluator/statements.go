package evaluator

import (
	"github.com/funvibe/sim/internal/ast"
	"github.com/funvibe/sim/internal/config"
)

// evalBlock runs statements in order and stops at the first returning
// result. Otherwise the block yields unit, or its last statement's value
// when the dialect asks for it.
func (e *Evaluator) evalBlock(block *ast.Block, ctx *Context) (Result, error) {
	last := Value(UNIT)
	for _, stmt := range block.Statements {
		res, err := e.Eval(stmt, ctx)
		if err != nil {
			return Result{}, err
		}
		if res.IsReturn() {
			return res, nil
		}
		last = res
	}
	if e.BlockValue == config.BlockValueLast {
		return last, nil
	}
	return Value(UNIT), nil
}

func (e *Evaluator) evalReturn(node *ast.Return, ctx *Context) (Result, error) {
	res, err := e.Eval(node.Value, ctx)
	if err != nil {
		return Result{}, err
	}
	if res.IsReturn() {
		return res, nil
	}
	return Returning(res.Value), nil
}

func (e *Evaluator) evalIfExpr(node *ast.IfExpr, ctx *Context) (Result, error) {
	cond, err := e.evalCondition(node.Condition, ctx, "if")
	if err != nil || cond.IsReturn() {
		return cond, err
	}

	if cond.Value.(*Integer).Value != 0 {
		return e.Eval(node.Consequence, ctx)
	}
	if node.Alternative != nil {
		return e.Eval(node.Alternative, ctx)
	}
	return Value(&Integer{Value: 0}), nil
}

func (e *Evaluator) evalWhileLoop(node *ast.WhileLoop, ctx *Context) (Result, error) {
	for {
		cond, err := e.evalCondition(node.Condition, ctx, "while")
		if err != nil || cond.IsReturn() {
			return cond, err
		}
		if cond.Value.(*Integer).Value == 0 {
			break
		}

		res, err := e.Eval(node.Body, ctx)
		if err != nil {
			return Result{}, err
		}
		if res.IsReturn() {
			return res, nil
		}
	}
	return Value(&Integer{Value: 0}), nil
}

// evalCondition evaluates an if/while condition. A plain result is
// guaranteed to hold an *Integer.
func (e *Evaluator) evalCondition(node ast.Expression, ctx *Context, op string) (Result, error) {
	cond, err := e.Eval(node, ctx)
	if err != nil {
		return Result{}, err
	}
	if cond.IsReturn() {
		return cond, nil
	}
	if _, ok := cond.Value.(*Integer); !ok {
		return Result{}, e.newError(ctx, node, ErrType, op, "%s condition must be an integer, got %s", op, cond.Value.Type())
	}
	return cond, nil
}

func (e *Evaluator) evalFunctionDef(node *ast.FunctionDef, ctx *Context) (Result, error) {
	ctx.DefineFunction(&Function{
		Name:       node.Name,
		Parameters: node.Parameters,
		Body:       node.Body,
		Line:       node.Token.Line,
		Column:     node.Token.Column,
	})
	return Value(UNIT), nil
}
