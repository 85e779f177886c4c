package lexer

import (
	"errors"

	"github.com/funvibe/sim/internal/diagnostics"
	"github.com/funvibe/sim/internal/pipeline"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() {
		return ctx
	}

	tokens, err := Tokenize(ctx.SourceCode)
	if err != nil {
		var diag *diagnostics.DiagnosticError
		if !errors.As(err, &diag) {
			diag = diagnostics.Wrap(diagnostics.ErrL001, 0, 0, err)
		}
		ctx.AddError(diag)
		return ctx
	}
	ctx.TokenStream = tokens
	return ctx
}
