package evaluator

import (
	"github.com/funvibe/sim/internal/config"
	"github.com/funvibe/sim/internal/lexer"
	"github.com/funvibe/sim/internal/parser"
	"github.com/funvibe/sim/internal/pipeline"
)

// Interpreter runs source texts one after another against a single
// Context, so definitions and top-level variables survive between runs.
type Interpreter struct {
	Dialect  *config.Dialect
	FilePath string

	ctx  *Context
	eval *Evaluator
}

func NewInterpreter(dialect *config.Dialect) *Interpreter {
	if dialect == nil {
		dialect = config.Default()
	}
	return &Interpreter{
		Dialect: dialect,
		ctx:     NewContext(),
		eval:    New(WithDialect(dialect)),
	}
}

// Context exposes the persistent run state.
func (in *Interpreter) Context() *Context {
	return in.ctx
}

// Run tokenizes, parses and evaluates source. A return at top level ends
// the program and its value becomes the result.
func (in *Interpreter) Run(source string) (Object, error) {
	pctx := in.Pipeline(source)
	if err := pctx.Err(); err != nil {
		return nil, err
	}
	result, _ := pctx.Result.(Result)
	if result.Value == nil {
		return UNIT, nil
	}
	return result.Value, nil
}

// Call invokes a defined function with the given arguments. A return
// inside it ends the call and its value becomes the result.
func (in *Interpreter) Call(name string, args ...Object) (Object, error) {
	result, err := in.eval.CallFunction(in.ctx, name, args)
	if err != nil {
		return nil, err
	}
	if result.Value == nil {
		return UNIT, nil
	}
	return result.Value, nil
}

// Pipeline runs all stages on source and returns the pipeline context, so
// callers can inspect tokens and the tree as well as the result.
func (in *Interpreter) Pipeline(source string) *pipeline.PipelineContext {
	pctx := pipeline.NewPipelineContext(source)
	pctx.FilePath = in.FilePath
	pctx.Dialect = in.Dialect
	pctx.Runtime = in.ctx

	return pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&EvaluatorProcessor{Evaluator: in.eval},
	).Run(pctx)
}
