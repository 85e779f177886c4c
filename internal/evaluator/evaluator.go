package evaluator

import (
	"github.com/funvibe/sim/internal/ast"
	"github.com/funvibe/sim/internal/config"
)

type Option func(*Evaluator)

// WithDialect applies the evaluator settings of a dialect.
func WithDialect(d *config.Dialect) Option {
	return func(e *Evaluator) {
		if d != nil {
			e.BlockValue = d.BlockValue
			e.MaxDepth = d.MaxDepth
		}
	}
}

// WithMaxDepth bounds nested evaluation; 0 disables the check.
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) { e.MaxDepth = n }
}

// WithBlockValue selects what a block yields when no return fires.
func WithBlockValue(mode config.BlockValue) Option {
	return func(e *Evaluator) { e.BlockValue = mode }
}

// Evaluator walks the tree. It holds no program state of its own; that
// lives in the Context passed to Eval.
type Evaluator struct {
	BlockValue config.BlockValue
	MaxDepth   int

	// CallStack for stack traces on errors
	CallStack []CallFrame

	// evalDepth tracks the current nesting depth of Eval calls to prevent stack overflow
	evalDepth int
}

func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		BlockValue: config.BlockValueUnit,
		MaxDepth:   config.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval evaluates node against ctx.
func (e *Evaluator) Eval(node ast.Node, ctx *Context) (Result, error) {
	e.evalDepth++
	defer func() { e.evalDepth-- }()

	if e.MaxDepth > 0 && e.evalDepth > e.MaxDepth {
		return Result{}, e.newError(ctx, node, ErrDepthExceeded, "eval", "maximum recursion depth exceeded (%d)", e.MaxDepth)
	}

	v := &evalVisitor{e: e, ctx: ctx}
	node.Accept(v)
	return v.res, v.err
}

// evalVisitor routes each node kind to its evaluation method. Being an
// ast.Visitor, it stops compiling when a node kind is added without a case.
type evalVisitor struct {
	e   *Evaluator
	ctx *Context
	res Result
	err error
}

func (v *evalVisitor) VisitFunctionDef(n *ast.FunctionDef) {
	v.res, v.err = v.e.evalFunctionDef(n, v.ctx)
}

func (v *evalVisitor) VisitFunctionCall(n *ast.FunctionCall) {
	v.res, v.err = v.e.evalFunctionCall(n, v.ctx)
}

func (v *evalVisitor) VisitIfExpr(n *ast.IfExpr) {
	v.res, v.err = v.e.evalIfExpr(n, v.ctx)
}

func (v *evalVisitor) VisitWhileLoop(n *ast.WhileLoop) {
	v.res, v.err = v.e.evalWhileLoop(n, v.ctx)
}

func (v *evalVisitor) VisitAssignment(n *ast.Assignment) {
	v.res, v.err = v.e.evalAssignment(n, v.ctx)
}

func (v *evalVisitor) VisitBinaryOp(n *ast.BinaryOp) {
	v.res, v.err = v.e.evalBinaryOp(n, v.ctx)
}

func (v *evalVisitor) VisitLiteral(n *ast.Literal) {
	v.res = Value(fromLiteral(n))
}

func (v *evalVisitor) VisitVariable(n *ast.Variable) {
	v.res, v.err = v.e.evalVariable(n, v.ctx)
}

func (v *evalVisitor) VisitBlock(n *ast.Block) {
	v.res, v.err = v.e.evalBlock(n, v.ctx)
}

func (v *evalVisitor) VisitReturn(n *ast.Return) {
	v.res, v.err = v.e.evalReturn(n, v.ctx)
}
