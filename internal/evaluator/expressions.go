package evaluator

import (
	"github.com/funvibe/sim/internal/ast"
)

func (e *Evaluator) evalVariable(node *ast.Variable, ctx *Context) (Result, error) {
	val, ok := ctx.Get(node.Name)
	if !ok {
		return Result{}, e.newError(ctx, node, ErrUndefinedVariable, "variable", "variable '%s' not found", node.Name)
	}
	return Value(val), nil
}

func (e *Evaluator) evalAssignment(node *ast.Assignment, ctx *Context) (Result, error) {
	res, err := e.Eval(node.Value, ctx)
	if err != nil {
		return Result{}, err
	}
	if res.IsReturn() {
		return res, nil
	}
	if res.Value.Type() == UNIT_OBJ {
		return Result{}, e.newError(ctx, node, ErrUnitValue, "assignment", "cannot assign a unit value to '%s'", node.Name)
	}
	ctx.Set(node.Name, res.Value)
	return Value(UNIT), nil
}

func (e *Evaluator) evalBinaryOp(node *ast.BinaryOp, ctx *Context) (Result, error) {
	left, err := e.Eval(node.Left, ctx)
	if err != nil {
		return Result{}, err
	}
	if left.IsReturn() {
		return left, nil
	}
	right, err := e.Eval(node.Right, ctx)
	if err != nil {
		return Result{}, err
	}
	if right.IsReturn() {
		return right, nil
	}

	l, lok := left.Value.(*Integer)
	r, rok := right.Value.(*Integer)
	if !lok || !rok {
		if node.Operator == ast.OpEqual {
			if ls, ok := left.Value.(*String); ok {
				if rs, ok := right.Value.(*String); ok {
					return Value(boolToInt(ls.Value == rs.Value)), nil
				}
			}
		}
		return Result{}, e.newError(ctx, node, ErrType, node.Operator.String(),
			"operator '%s' requires integer operands, got %s and %s",
			node.Operator, left.Value.Type(), right.Value.Type())
	}

	return e.evalIntegerOp(node, ctx, l.Value, r.Value)
}

func (e *Evaluator) evalIntegerOp(node *ast.BinaryOp, ctx *Context, l, r int64) (Result, error) {
	switch node.Operator {
	case ast.OpAdd:
		return Value(&Integer{Value: l + r}), nil
	case ast.OpSub:
		return Value(&Integer{Value: l - r}), nil
	case ast.OpMul:
		return Value(&Integer{Value: l * r}), nil
	case ast.OpDiv:
		if r == 0 {
			return Result{}, e.newError(ctx, node, ErrDivisionByZero, "/", "division by zero")
		}
		return Value(&Integer{Value: l / r}), nil
	case ast.OpMod:
		if r == 0 {
			return Result{}, e.newError(ctx, node, ErrDivisionByZero, "%", "modulo by zero")
		}
		return Value(&Integer{Value: l % r}), nil
	case ast.OpLess:
		return Value(boolToInt(l < r)), nil
	case ast.OpGreater:
		return Value(boolToInt(l > r)), nil
	case ast.OpEqual:
		return Value(boolToInt(l == r)), nil
	}
	return Result{}, e.newError(ctx, node, ErrType, node.Operator.String(), "unknown operator %s", node.Operator)
}

func boolToInt(b bool) *Integer {
	if b {
		return &Integer{Value: 1}
	}
	return &Integer{Value: 0}
}
