package parser

import (
	"errors"

	"github.com/funvibe/sim/internal/diagnostics"
	"github.com/funvibe/sim/internal/pipeline"
	"github.com/funvibe/sim/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() {
		return ctx
	}
	if ctx.TokenStream == nil {
		ctx.AddError(diagnostics.NewError(diagnostics.ErrP001, token.Token{}, "parser: token stream is nil"))
		return ctx
	}

	program, err := Parse(ctx.TokenStream, WithDialect(ctx.Dialect))
	if err != nil {
		var diag *diagnostics.DiagnosticError
		if !errors.As(err, &diag) {
			diag = diagnostics.Wrap(diagnostics.ErrP001, 0, 0, err)
		}
		ctx.AddError(diag)
		return ctx
	}
	ctx.AstRoot = program
	return ctx
}
