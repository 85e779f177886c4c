package evaluator

import (
	"errors"

	"github.com/funvibe/sim/internal/diagnostics"
	"github.com/funvibe/sim/internal/pipeline"
)

type EvaluatorProcessor struct {
	// Evaluator is reused across runs when set; a fresh one is built from
	// the pipeline dialect otherwise.
	Evaluator *Evaluator
}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.Failed() {
		return ctx
	}

	runtime, ok := ctx.Runtime.(*Context)
	if !ok || runtime == nil {
		runtime = NewContext()
		ctx.Runtime = runtime
	}

	eval := ep.Evaluator
	if eval == nil {
		eval = New(WithDialect(ctx.Dialect))
	}

	result, err := eval.Eval(ctx.AstRoot, runtime)
	if err != nil {
		var line, col int
		var rerr *RuntimeError
		if errors.As(err, &rerr) {
			line, col = rerr.Line, rerr.Column
		}
		ctx.AddError(diagnostics.Wrap(diagnostics.ErrR001, line, col, err))
		return ctx
	}
	ctx.Result = result
	return ctx
}
