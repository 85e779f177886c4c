package pipeline

import (
	"github.com/funvibe/sim/internal/ast"
	"github.com/funvibe/sim/internal/config"
	"github.com/funvibe/sim/internal/diagnostics"
	"github.com/funvibe/sim/internal/token"
)

// PipelineContext carries the state shared by the lexer, parser and
// evaluator stages of a single run.
type PipelineContext struct {
	SourceCode string
	FilePath   string
	Dialect    *config.Dialect

	TokenStream []token.Token
	AstRoot     *ast.Block

	// Runtime is the evaluator state to run against. It is left untyped so
	// that this package does not depend on the evaluator; the evaluator stage
	// creates one when it is nil and stores it back.
	Runtime interface{}
	// Result is the final value produced by the evaluator stage.
	Result interface{}

	Errors []*diagnostics.DiagnosticError
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{SourceCode: source, Dialect: config.Default()}
}

// Failed reports whether any stage has recorded an error.
func (ctx *PipelineContext) Failed() bool {
	return len(ctx.Errors) > 0
}

// Err returns the first recorded error, or nil.
func (ctx *PipelineContext) Err() error {
	if len(ctx.Errors) == 0 {
		return nil
	}
	return ctx.Errors[0]
}

func (ctx *PipelineContext) AddError(err *diagnostics.DiagnosticError) {
	if err.File == "" {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, err)
}
